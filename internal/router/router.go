// Package router is the conversation core of the bot: it maps each inbound
// chat event to a handler based on the user's current session state and the
// event shape, enforces the consent gate in front of every data-bearing
// operation, and drives the per-flow state transitions.
package router

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/recipebook/internal/chat"
	"github.com/dmitrijs2005/recipebook/internal/logging"
	"github.com/dmitrijs2005/recipebook/internal/models"
	"github.com/dmitrijs2005/recipebook/internal/session"
	"github.com/dmitrijs2005/recipebook/pkg/locales"
	"github.com/google/uuid"
)

// Store is the data-store surface the router needs. *storage.Store
// implements it; tests may substitute their own.
type Store interface {
	UpsertUser(ctx context.Context, id int64, username string) error
	HasConsent(ctx context.Context, id int64) (bool, error)
	GrantConsent(ctx context.Context, id int64) error
	RevokeUser(ctx context.Context, id int64) error

	CreateRecipe(ctx context.Context, rec *models.Recipe) (int64, error)
	ListRecipesByOwner(ctx context.Context, ownerID int64) ([]models.RecipeSummary, error)
	GetRecipeByID(ctx context.Context, id int64) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, id int64, title string, category models.Category, ingredients, instructions string) error
	DeleteRecipe(ctx context.Context, id int64) error
	SearchRecipes(ctx context.Context, query string) ([]models.RecipeSummary, error)

	CreateReview(ctx context.Context, rv *models.Review) (int64, error)
	ListReviewsByRecipe(ctx context.Context, recipeID int64) ([]models.Review, error)
}

// textHandler continues an in-flight flow with the user's next text input.
type textHandler func(ctx context.Context, ev chat.Event, sess *session.Session)

// Router routes inbound events and owns the session store.
type Router struct {
	store    Store
	sessions *session.Store
	sender   chat.Sender
	logger   logging.Logger
	l        *locales.Locales

	// states is the explicit routing table for free-text continuations:
	// current state -> handler. States absent from the table ignore text.
	states map[session.State]textHandler
}

func New(store Store, sessions *session.Store, sender chat.Sender, logger logging.Logger) *Router {
	r := &Router{
		store:    store,
		sessions: sessions,
		sender:   sender,
		logger:   logger,
		l:        locales.Get(),
	}
	r.states = map[session.State]textHandler{
		session.StateAwaitingTitle:        r.textTitle,
		session.StateAwaitingCategory:     r.textCategory,
		session.StateAwaitingIngredients:  r.textIngredients,
		session.StateAwaitingInstructions: r.textInstructions,
		session.StateAwaitingSearchQuery:  r.textSearchQuery,
		session.StateAwaitingRating:       r.textRating,
		session.StateAwaitingComment:      r.textComment,
	}
	return r
}

// HandleEvent processes one inbound event to completion. Events for the
// same user are serialized by the session store; the method never panics
// outward and never returns an error: failures end up as log entries plus a
// generic message to the user.
func (r *Router) HandleEvent(ctx context.Context, ev chat.Event) {
	log := r.logger.With("event_id", uuid.NewString(), "user_id", ev.UserID)

	r.sessions.Do(ev.UserID, func(sess *session.Session) {
		r.route(ctx, log, ev, sess)
	})
}

// route dispatches on event shape. Text input is matched in a fixed,
// documented priority order:
//
//  1. the reserved cancel label, from any state;
//  2. main-menu labels, only while Idle;
//  3. the state table for the active flow.
//
// Text that matches nothing is silently ignored.
func (r *Router) route(ctx context.Context, log logging.Logger, ev chat.Event, sess *session.Session) {
	switch ev.Kind {
	case chat.KindCommand:
		r.routeCommand(ctx, log, ev, sess)

	case chat.KindCallback:
		r.routeCallback(ctx, log, ev, sess)

	case chat.KindText:
		if ev.Text == r.l.Menu.Cancel {
			r.cmdCancel(ctx, ev, sess)
			return
		}

		if sess.State == session.StateIdle {
			switch ev.Text {
			case r.l.Menu.AddRecipe:
				r.cmdAddRecipe(ctx, ev, sess)
			case r.l.Menu.MyRecipes:
				r.cmdMyRecipes(ctx, ev)
			case r.l.Menu.Search:
				r.cmdSearch(ctx, ev, sess)
			case r.l.Menu.RevokeConsent:
				r.cmdRevokeConsent(ctx, ev)
			}
			return
		}

		if h, ok := r.states[sess.State]; ok {
			h(ctx, ev, sess)
		}
	}
}

func (r *Router) routeCommand(ctx context.Context, log logging.Logger, ev chat.Event, sess *session.Session) {
	switch {
	case ev.Name == "start":
		r.cmdStart(ctx, ev, sess)
	case strings.HasPrefix(ev.Name, "view_"):
		r.cmdView(ctx, ev)
	}
}

// requireConsent is the consent gate: it reports whether the user may
// proceed and, if not, sends the fixed gate message. It never touches the
// session, so an unrelated in-flight draft survives a gate refusal.
func (r *Router) requireConsent(ctx context.Context, userID int64) bool {
	ok, err := r.store.HasConsent(ctx, userID)
	if err != nil {
		r.failure(ctx, userID, err)
		return false
	}
	if !ok {
		r.send(ctx, chat.Message{ChatID: userID, Text: r.l.Consent.Required})
		return false
	}
	return true
}

// failure logs a persistence error and tells the user to retry later.
// Session state is deliberately left as is so the retry lands in the same
// spot of the flow.
func (r *Router) failure(ctx context.Context, userID int64, err error) {
	r.logger.Error(ctx, "store operation failed", "user_id", userID, "error", err)
	r.send(ctx, chat.Message{ChatID: userID, Text: r.l.Errors.TryLater})
}

// send delivers an outbound message. Delivery problems are the transport's
// to retry; here they are only logged, never allowed to re-run a mutation.
func (r *Router) send(ctx context.Context, msg chat.Message) {
	if err := r.sender.Send(ctx, msg); err != nil {
		r.logger.Error(ctx, "send failed", "chat_id", msg.ChatID, "error", err)
	}
}

func (r *Router) sendMenu(ctx context.Context, userID int64, text string) {
	r.send(ctx, chat.Message{
		ChatID:   userID,
		Text:     text,
		Keyboard: chat.Keyboard{Kind: chat.KeyboardMainMenu},
	})
}
