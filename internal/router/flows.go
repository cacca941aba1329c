package router

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/recipebook/internal/chat"
	"github.com/dmitrijs2005/recipebook/internal/models"
	"github.com/dmitrijs2005/recipebook/internal/session"
)

// Flow continuations. Each handler owns exactly one Awaiting* state.
// Content-gated states (category, rating) silently ignore input that does
// not match: no handler fires and the state stays put until the user
// supplies something acceptable.

func (r *Router) textTitle(ctx context.Context, ev chat.Event, sess *session.Session) {
	if strings.TrimSpace(ev.Text) == "" {
		return
	}

	sess.Draft.Title = ev.Text
	sess.State = session.StateAwaitingCategory
	r.send(ctx, chat.Message{
		ChatID:   ev.UserID,
		Text:     r.l.Recipe.AskCategory,
		Keyboard: chat.Keyboard{Kind: chat.KeyboardCategories},
	})
}

func (r *Router) textCategory(ctx context.Context, ev chat.Event, sess *session.Session) {
	cat, ok := models.ParseCategory(ev.Text)
	if !ok {
		return
	}

	sess.Draft.Category = string(cat)
	sess.State = session.StateAwaitingIngredients
	r.send(ctx, chat.Message{
		ChatID:   ev.UserID,
		Text:     r.l.Recipe.AskIngredients,
		Keyboard: chat.Keyboard{Kind: chat.KeyboardRemove},
	})
}

func (r *Router) textIngredients(ctx context.Context, ev chat.Event, sess *session.Session) {
	sess.Draft.Ingredients = ev.Text
	sess.State = session.StateAwaitingInstructions
	r.send(ctx, chat.Message{ChatID: ev.UserID, Text: r.l.Recipe.AskInstructions})
}

// textInstructions completes the add or edit flow: the draft either carries
// a target recipe id (edit, full four-field replace) or not (create).
func (r *Router) textInstructions(ctx context.Context, ev chat.Event, sess *session.Session) {
	d := sess.Draft
	category := models.Category(d.Category)

	var (
		template string
		err      error
	)
	if d.RecipeID != 0 {
		template = r.l.Recipe.Updated
		err = r.store.UpdateRecipe(ctx, d.RecipeID, d.Title, category, d.Ingredients, ev.Text)
	} else {
		template = r.l.Recipe.Saved
		_, err = r.store.CreateRecipe(ctx, &models.Recipe{
			UserID:       ev.UserID,
			Title:        d.Title,
			Category:     category,
			Ingredients:  d.Ingredients,
			Instructions: ev.Text,
		})
	}
	if err != nil {
		// State stays at AwaitingInstructions so the user can resend.
		r.failure(ctx, ev.UserID, err)
		return
	}

	sess.Reset()
	r.sendMenu(ctx, ev.UserID, fmt.Sprintf(template, d.Title, category))
}

func (r *Router) textSearchQuery(ctx context.Context, ev chat.Event, sess *session.Session) {
	items, err := r.store.SearchRecipes(ctx, ev.Text)
	if err != nil {
		r.failure(ctx, ev.UserID, err)
		return
	}

	sess.Reset()
	if len(items) == 0 {
		r.sendMenu(ctx, ev.UserID, r.l.Search.NoResults)
		return
	}
	r.sendMenu(ctx, ev.UserID, r.formatList(r.l.Search.ListHeader, items))
}

func (r *Router) textRating(ctx context.Context, ev chat.Event, sess *session.Session) {
	if !r.requireConsent(ctx, ev.UserID) {
		return
	}

	rating, err := strconv.Atoi(ev.Text)
	if err != nil || !models.ValidRating(rating) {
		return
	}

	sess.Draft.Rating = rating
	sess.State = session.StateAwaitingComment
	r.send(ctx, chat.Message{
		ChatID:   ev.UserID,
		Text:     r.l.Review.AskComment,
		Keyboard: chat.Keyboard{Kind: chat.KeyboardRemove},
	})
}

func (r *Router) textComment(ctx context.Context, ev chat.Event, sess *session.Session) {
	if !r.requireConsent(ctx, ev.UserID) {
		return
	}

	comment := ev.Text
	if comment == "-" {
		comment = ""
	}

	_, err := r.store.CreateReview(ctx, &models.Review{
		RecipeID: sess.Draft.RecipeID,
		UserID:   ev.UserID,
		Rating:   sess.Draft.Rating,
		Comment:  comment,
	})
	if err != nil {
		r.failure(ctx, ev.UserID, err)
		return
	}

	sess.Reset()
	r.sendMenu(ctx, ev.UserID, r.l.Review.Saved)
}
