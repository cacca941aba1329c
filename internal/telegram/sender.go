package telegram

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sethvargo/go-retry"

	"github.com/dmitrijs2005/recipebook/internal/chat"
	"github.com/dmitrijs2005/recipebook/internal/logging"
)

// Sender delivers outbound messages with retries. Delivery is strictly a
// notification step: the data mutation has already happened by the time a
// message reaches here, so retrying is always safe.
type Sender struct {
	api      botAPI
	logger   logging.Logger
	attempts int
	backoff  time.Duration
}

func NewSender(api botAPI, logger logging.Logger, attempts int) *Sender {
	if attempts < 1 {
		attempts = 1
	}
	return &Sender{api: api, logger: logger, attempts: attempts, backoff: time.Second}
}

// Send renders and delivers one message, retrying transient failures with
// exponential backoff starting at one second. After the attempts are
// exhausted the error is returned to the caller, which logs and drops it:
// delivery is not guaranteed.
func (s *Sender) Send(ctx context.Context, msg chat.Message) error {
	c := s.render(msg)

	b := retry.WithMaxRetries(uint64(s.attempts-1), retry.NewExponential(s.backoff))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		if _, err := s.api.Send(c); err != nil {
			s.logger.Warn(ctx, "send attempt failed", "chat_id", msg.ChatID, "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	return err
}

func (s *Sender) render(msg chat.Message) tgbotapi.Chattable {
	if msg.EditMessageID != 0 {
		edit := tgbotapi.NewEditMessageText(msg.ChatID, msg.EditMessageID, msg.Text)
		return edit
	}

	m := tgbotapi.NewMessage(msg.ChatID, msg.Text)
	if markup := buildKeyboard(msg.Keyboard); markup != nil {
		m.ReplyMarkup = markup
	}
	return m
}
