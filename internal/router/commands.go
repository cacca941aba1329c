package router

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/recipebook/internal/chat"
	"github.com/dmitrijs2005/recipebook/internal/common"
	"github.com/dmitrijs2005/recipebook/internal/models"
	"github.com/dmitrijs2005/recipebook/internal/session"
)

// cmdStart upserts the user row and either asks for consent or shows the
// main menu. This is the only place a state is entered automatically rather
// than by an explicit user command.
func (r *Router) cmdStart(ctx context.Context, ev chat.Event, sess *session.Session) {
	if err := r.store.UpsertUser(ctx, ev.UserID, ev.Username); err != nil {
		r.failure(ctx, ev.UserID, err)
		return
	}

	ok, err := r.store.HasConsent(ctx, ev.UserID)
	if err != nil {
		r.failure(ctx, ev.UserID, err)
		return
	}

	if !ok {
		sess.State = session.StateAwaitingConsent
		r.send(ctx, chat.Message{
			ChatID:   ev.UserID,
			Text:     r.l.Consent.Prompt,
			Keyboard: chat.Keyboard{Kind: chat.KeyboardConsent},
		})
		return
	}

	r.sendMenu(ctx, ev.UserID, r.l.Menu.Welcome)
}

// cmdCancel aborts whatever flow is in flight and discards the draft.
func (r *Router) cmdCancel(ctx context.Context, ev chat.Event, sess *session.Session) {
	sess.Reset()
	r.sendMenu(ctx, ev.UserID, r.l.Menu.Cancelled)
}

func (r *Router) cmdAddRecipe(ctx context.Context, ev chat.Event, sess *session.Session) {
	if !r.requireConsent(ctx, ev.UserID) {
		return
	}

	sess.State = session.StateAwaitingTitle
	sess.Draft = session.Draft{}
	r.send(ctx, chat.Message{
		ChatID:   ev.UserID,
		Text:     r.l.Recipe.AskTitle,
		Keyboard: chat.Keyboard{Kind: chat.KeyboardRemove},
	})
}

func (r *Router) cmdMyRecipes(ctx context.Context, ev chat.Event) {
	if !r.requireConsent(ctx, ev.UserID) {
		return
	}

	items, err := r.store.ListRecipesByOwner(ctx, ev.UserID)
	if err != nil {
		r.failure(ctx, ev.UserID, err)
		return
	}
	if len(items) == 0 {
		r.sendMenu(ctx, ev.UserID, r.l.Recipe.ListEmpty)
		return
	}

	r.sendMenu(ctx, ev.UserID, r.formatList(r.l.Recipe.ListHeader, items))
}

func (r *Router) cmdSearch(ctx context.Context, ev chat.Event, sess *session.Session) {
	if !r.requireConsent(ctx, ev.UserID) {
		return
	}

	sess.State = session.StateAwaitingSearchQuery
	r.send(ctx, chat.Message{
		ChatID:   ev.UserID,
		Text:     r.l.Search.Prompt,
		Keyboard: chat.Keyboard{Kind: chat.KeyboardRemove},
	})
}

func (r *Router) cmdRevokeConsent(ctx context.Context, ev chat.Event) {
	ok, err := r.store.HasConsent(ctx, ev.UserID)
	if err != nil {
		r.failure(ctx, ev.UserID, err)
		return
	}
	if !ok {
		r.sendMenu(ctx, ev.UserID, r.l.Revoke.NotConsented)
		return
	}

	r.send(ctx, chat.Message{
		ChatID:   ev.UserID,
		Text:     r.l.Revoke.Confirm,
		Keyboard: chat.Keyboard{Kind: chat.KeyboardRevokeConfirm},
	})
}

// cmdView shows one recipe with its reviews and the inline action buttons.
// Only the owner gets to see it; an absent id yields the same denial so the
// response does not leak which ids exist.
func (r *Router) cmdView(ctx context.Context, ev chat.Event) {
	if !r.requireConsent(ctx, ev.UserID) {
		return
	}

	id, err := strconv.ParseInt(strings.TrimPrefix(ev.Name, "view_"), 10, 64)
	if err != nil {
		r.send(ctx, chat.Message{ChatID: ev.UserID, Text: r.l.Errors.InvalidAction})
		return
	}

	rec, err := r.store.GetRecipeByID(ctx, id)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		r.failure(ctx, ev.UserID, err)
		return
	}
	if rec == nil || rec.UserID != ev.UserID {
		r.send(ctx, chat.Message{ChatID: ev.UserID, Text: r.l.Errors.AccessDenied})
		return
	}

	reviews, err := r.store.ListReviewsByRecipe(ctx, id)
	if err != nil {
		r.failure(ctx, ev.UserID, err)
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, r.l.Recipe.Detail, rec.Title, rec.Category, rec.Ingredients, rec.Instructions)
	if len(reviews) > 0 {
		b.WriteString(r.l.Recipe.ReviewsHeader)
		for _, rv := range reviews {
			fmt.Fprintf(&b, r.l.Recipe.ReviewLine, rv.Rating, rv.Comment)
		}
	}

	r.send(ctx, chat.Message{
		ChatID:   ev.UserID,
		Text:     b.String(),
		Keyboard: chat.Keyboard{Kind: chat.KeyboardRecipeActions, RecipeID: id},
	})
}

func (r *Router) formatList(header string, items []models.RecipeSummary) string {
	var b strings.Builder
	b.WriteString(header)
	for _, it := range items {
		fmt.Fprintf(&b, r.l.Recipe.ListItem, it.Title, it.Category, it.ID)
	}
	return b.String()
}
