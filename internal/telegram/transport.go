// Package telegram adapts the Telegram Bot API to the transport contract in
// internal/chat: it turns updates into events, renders keyboard specs, and
// owns delivery retries. Nothing outside this package touches tgbotapi.
package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dmitrijs2005/recipebook/internal/chat"
	"github.com/dmitrijs2005/recipebook/internal/logging"
)

// Handler consumes inbound events. Satisfied by *router.Router.
type Handler interface {
	HandleEvent(ctx context.Context, ev chat.Event)
}

// botAPI is the slice of tgbotapi.BotAPI the transport needs; narrowed to an
// interface so tests can supply a fake.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

// Transport runs the long-poll loop and dispatches updates. Per-user event
// ordering is enforced downstream by the session store, so each update can
// be handled on its own goroutine.
type Transport struct {
	api         botAPI
	handler     Handler
	logger      logging.Logger
	pollTimeout int
}

// New connects to the Bot API with the given token.
func New(token string, handler Handler, logger logging.Logger, pollTimeout int) (*Transport, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	logger.Info(context.Background(), "authorized", "bot", api.Self.UserName)

	return &Transport{api: api, handler: handler, logger: logger, pollTimeout: pollTimeout}, nil
}

// SetHandler installs the event consumer. Must be called before Start.
func (t *Transport) SetHandler(h Handler) {
	t.handler = h
}

// Sender returns a retrying sender bound to the same API client.
func (t *Transport) Sender(attempts int) *Sender {
	return NewSender(t.api, t.logger, attempts)
}

// Start consumes updates until ctx is cancelled. Reconnects after transient
// poll failures are handled inside tgbotapi's update channel.
func (t *Transport) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = t.pollTimeout

	updates := t.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			t.handleUpdate(ctx, update)
		}
	}
}

func (t *Transport) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	ev, ok := toEvent(update)
	if !ok {
		return
	}

	// Acknowledge the button press so the client stops its spinner.
	if update.CallbackQuery != nil {
		if _, err := t.api.Request(tgbotapi.NewCallback(update.CallbackQuery.ID, "")); err != nil {
			t.logger.Warn(ctx, "callback ack failed", "error", err)
		}
	}

	go t.handler.HandleEvent(ctx, ev)
}

// toEvent converts a Telegram update into a transport-agnostic event.
// The chat id doubles as the user id, matching the store's keying.
func toEvent(update tgbotapi.Update) (chat.Event, bool) {
	if cb := update.CallbackQuery; cb != nil && cb.Message != nil {
		return chat.Event{
			Kind:      chat.KindCallback,
			UserID:    cb.Message.Chat.ID,
			Username:  cb.From.UserName,
			Token:     cb.Data,
			MessageID: cb.Message.MessageID,
		}, true
	}

	msg := update.Message
	if msg == nil {
		return chat.Event{}, false
	}

	ev := chat.Event{
		UserID:    msg.Chat.ID,
		MessageID: msg.MessageID,
	}
	if msg.From != nil {
		ev.Username = msg.From.UserName
	}

	if msg.IsCommand() {
		ev.Kind = chat.KindCommand
		ev.Name = msg.Command()
		return ev, true
	}

	ev.Kind = chat.KindText
	ev.Text = msg.Text
	return ev, true
}
