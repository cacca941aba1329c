// Package chat defines the transport-agnostic contract between the
// conversation core and the chat transport: inbound events the router
// accepts and outbound messages it emits. The Telegram adapter translates
// both directions.
package chat

import "context"

// EventKind discriminates inbound event shapes.
type EventKind int

const (
	// KindText is free-form text, including fixed menu labels.
	KindText EventKind = iota
	// KindCommand is a slash command with the leading slash stripped.
	KindCommand
	// KindCallback is an inline-button press carrying an opaque token.
	KindCallback
)

// Event is one inbound chat event. UserID doubles as the chat id.
// Token is set for callbacks, Text for text, Name for commands.
// Username is the sender's display handle when the transport knows it.
// MessageID references the message the callback buttons were attached to.
type Event struct {
	Kind      EventKind
	UserID    int64
	Username  string
	Text      string
	Name      string
	Token     string
	MessageID int
}

// KeyboardKind selects which keyboard, if any, accompanies an outbound
// message. KeyboardRemove explicitly hides any active reply keyboard.
type KeyboardKind int

const (
	KeyboardNone KeyboardKind = iota
	KeyboardRemove
	KeyboardMainMenu
	KeyboardCategories
	KeyboardRating
	KeyboardRecipeActions
	KeyboardConsent
	KeyboardRevokeConfirm
)

// Keyboard is a keyboard spec. RecipeID is used only by
// KeyboardRecipeActions, binding the inline edit/delete/review buttons
// to a specific recipe.
type Keyboard struct {
	Kind     KeyboardKind
	RecipeID int64
}

// Message is one outbound response. When EditMessageID is non-zero the
// transport edits that message in place instead of sending a new one
// (used to resolve inline-button prompts).
type Message struct {
	ChatID        int64
	Text          string
	Keyboard      Keyboard
	EditMessageID int
}

// Sender delivers outbound messages. Implementations own retries; the core
// never re-runs a data mutation because delivery failed.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
