package router

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/recipebook/internal/chat"
	"github.com/dmitrijs2005/recipebook/internal/common"
	"github.com/dmitrijs2005/recipebook/internal/logging"
	"github.com/dmitrijs2005/recipebook/internal/session"
)

// Callback tokens that must stay reachable without consent: the consent
// resolution itself, and the revoke confirmation pair.
const (
	tokenConsentAccept  = "consent_accept"
	tokenConsentDecline = "consent_decline"
	tokenRevokeConfirm  = "revoke_confirm"
	tokenRevokeCancel   = "revoke_cancel"
)

// Targeted actions carried as "{action}_{recipeId}" tokens.
const (
	actionEdit   = "edit"
	actionDelete = "delete"
	actionReview = "review"
)

func (r *Router) routeCallback(ctx context.Context, log logging.Logger, ev chat.Event, sess *session.Session) {
	switch ev.Token {
	case tokenConsentAccept:
		r.cbConsentAccept(ctx, ev, sess)
	case tokenConsentDecline:
		r.cbConsentDecline(ctx, ev, sess)
	case tokenRevokeConfirm:
		r.cbRevokeConfirm(ctx, log, ev, sess)
	case tokenRevokeCancel:
		r.cbRevokeCancel(ctx, ev)
	default:
		r.cbRecipeAction(ctx, ev, sess)
	}
}

func (r *Router) cbConsentAccept(ctx context.Context, ev chat.Event, sess *session.Session) {
	if err := r.store.GrantConsent(ctx, ev.UserID); err != nil {
		r.failure(ctx, ev.UserID, err)
		return
	}

	sess.Reset()
	r.send(ctx, chat.Message{ChatID: ev.UserID, Text: r.l.Consent.Accepted, EditMessageID: ev.MessageID})
	r.sendMenu(ctx, ev.UserID, r.l.Menu.ChooseAction)
}

func (r *Router) cbConsentDecline(ctx context.Context, ev chat.Event, sess *session.Session) {
	sess.Reset()
	r.send(ctx, chat.Message{ChatID: ev.UserID, Text: r.l.Consent.Declined, EditMessageID: ev.MessageID})
}

func (r *Router) cbRevokeConfirm(ctx context.Context, log logging.Logger, ev chat.Event, sess *session.Session) {
	if err := r.store.RevokeUser(ctx, ev.UserID); err != nil {
		r.failure(ctx, ev.UserID, err)
		return
	}

	log.Info(ctx, "user revoked consent, all data removed")
	sess.Reset()
	r.send(ctx, chat.Message{ChatID: ev.UserID, Text: r.l.Revoke.Done, EditMessageID: ev.MessageID})
}

func (r *Router) cbRevokeCancel(ctx context.Context, ev chat.Event) {
	r.send(ctx, chat.Message{ChatID: ev.UserID, Text: r.l.Revoke.Cancelled, EditMessageID: ev.MessageID})
	r.sendMenu(ctx, ev.UserID, r.l.Menu.ChooseAction)
}

// cbRecipeAction dispatches a targeted "{action}_{recipeId}" token. The
// checks run in a fixed order: consent gate, token shape, then ownership.
// An absent recipe gets the same denial as a foreign one so callbacks do
// not leak which ids exist.
func (r *Router) cbRecipeAction(ctx context.Context, ev chat.Event, sess *session.Session) {
	if !r.requireConsent(ctx, ev.UserID) {
		return
	}

	action, id, err := parseActionToken(ev.Token)
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

	switch action {
	case actionEdit:
		sess.State = session.StateAwaitingTitle
		sess.Draft = session.Draft{RecipeID: id}
		r.send(ctx, chat.Message{
			ChatID:   ev.UserID,
			Text:     r.l.Recipe.EditTitle,
			Keyboard: chat.Keyboard{Kind: chat.KeyboardRemove},
		})

	case actionDelete:
		// Immediate, no confirmation step (unlike consent revocation).
		if err := r.store.DeleteRecipe(ctx, id); err != nil {
			r.failure(ctx, ev.UserID, err)
			return
		}
		r.send(ctx, chat.Message{ChatID: ev.UserID, Text: r.l.Recipe.Deleted, EditMessageID: ev.MessageID})

	case actionReview:
		sess.State = session.StateAwaitingRating
		sess.Draft = session.Draft{RecipeID: id}
		r.send(ctx, chat.Message{
			ChatID:   ev.UserID,
			Text:     r.l.Review.AskRating,
			Keyboard: chat.Keyboard{Kind: chat.KeyboardRating},
		})
	}
}

// parseActionToken splits "{action}_{recipeId}" and validates both halves.
func parseActionToken(token string) (string, int64, error) {
	action, rest, ok := strings.Cut(token, "_")
	if !ok {
		return "", 0, common.ErrInvalidAction
	}
	switch action {
	case actionEdit, actionDelete, actionReview:
	default:
		return "", 0, common.ErrInvalidAction
	}

	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return "", 0, common.ErrInvalidAction
	}
	return action, id, nil
}
