// Package session holds per-user conversation state: which input the bot is
// waiting for next, and the draft values accumulated so far. Sessions are
// in-memory only; a restart simply drops in-flight conversations.
package session

// State names the input a user's conversation is currently waiting for.
// StateIdle means no flow is active.
type State int

const (
	StateIdle State = iota
	StateAwaitingTitle
	StateAwaitingCategory
	StateAwaitingIngredients
	StateAwaitingInstructions
	StateAwaitingRecipeIDForEdit
	StateAwaitingRecipeIDForDelete
	StateAwaitingSearchQuery
	StateAwaitingRecipeIDForReview
	StateAwaitingRating
	StateAwaitingComment
	StateAwaitingConsent
)

var stateNames = map[State]string{
	StateIdle:                      "idle",
	StateAwaitingTitle:             "awaiting_title",
	StateAwaitingCategory:          "awaiting_category",
	StateAwaitingIngredients:       "awaiting_ingredients",
	StateAwaitingInstructions:      "awaiting_instructions",
	StateAwaitingRecipeIDForEdit:   "awaiting_recipe_id_for_edit",
	StateAwaitingRecipeIDForDelete: "awaiting_recipe_id_for_delete",
	StateAwaitingSearchQuery:       "awaiting_search_query",
	StateAwaitingRecipeIDForReview: "awaiting_recipe_id_for_review",
	StateAwaitingRating:            "awaiting_rating",
	StateAwaitingComment:           "awaiting_comment",
	StateAwaitingConsent:           "awaiting_consent",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// Draft accumulates the not-yet-committed field values a user enters across
// a multi-step flow. RecipeID is set when a flow targets an existing recipe
// (edit, review); it stays zero while adding a new one.
type Draft struct {
	RecipeID    int64
	Title       string
	Category    string
	Ingredients string
	Rating      int
}

// Session is the transient conversation record for one user.
type Session struct {
	State State
	Draft Draft
}

// Reset returns the session to Idle and discards the draft.
func (s *Session) Reset() {
	s.State = StateIdle
	s.Draft = Draft{}
}
