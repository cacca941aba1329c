// Package locales holds every user-facing string of the bot in one embedded
// JSON document, so wording lives in data rather than scattered literals.
package locales

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed locales.json
var localesJSON []byte

// Locales contains all texts and fixed button labels.
type Locales struct {
	Menu    Menu    `json:"menu"`
	Consent Consent `json:"consent"`
	Recipe  Recipe  `json:"recipe"`
	Review  Review  `json:"review"`
	Search  Search  `json:"search"`
	Revoke  Revoke  `json:"revoke"`
	Errors  Errors  `json:"errors"`
}

// Menu holds the main-menu labels. The router matches incoming text against
// these exact strings, so they double as command identifiers.
type Menu struct {
	Welcome       string `json:"welcome"`
	ChooseAction  string `json:"choose_action"`
	AddRecipe     string `json:"add_recipe"`
	MyRecipes     string `json:"my_recipes"`
	Search        string `json:"search"`
	RevokeConsent string `json:"revoke_consent"`
	Cancel        string `json:"cancel"`
	Cancelled     string `json:"cancelled"`
}

type Consent struct {
	Prompt   string `json:"prompt"`
	Accept   string `json:"accept"`
	Decline  string `json:"decline"`
	Accepted string `json:"accepted"`
	Declined string `json:"declined"`
	Required string `json:"required"`
}

type Recipe struct {
	AskTitle        string `json:"ask_title"`
	AskCategory     string `json:"ask_category"`
	AskIngredients  string `json:"ask_ingredients"`
	AskInstructions string `json:"ask_instructions"`
	Saved           string `json:"saved"`
	Updated         string `json:"updated"`
	Deleted         string `json:"deleted"`
	ListHeader      string `json:"list_header"`
	ListEmpty       string `json:"list_empty"`
	ListItem        string `json:"list_item"`
	Detail          string `json:"detail"`
	ReviewsHeader   string `json:"reviews_header"`
	ReviewLine      string `json:"review_line"`
	EditTitle       string `json:"edit_title"`
	ButtonEdit      string `json:"button_edit"`
	ButtonDelete    string `json:"button_delete"`
	ButtonReview    string `json:"button_review"`
}

type Review struct {
	AskRating  string `json:"ask_rating"`
	AskComment string `json:"ask_comment"`
	Saved      string `json:"saved"`
}

type Search struct {
	Prompt     string `json:"prompt"`
	NoResults  string `json:"no_results"`
	ListHeader string `json:"list_header"`
}

type Revoke struct {
	NotConsented string `json:"not_consented"`
	Confirm      string `json:"confirm"`
	ButtonYes    string `json:"button_yes"`
	ButtonNo     string `json:"button_no"`
	Done         string `json:"done"`
	Cancelled    string `json:"cancelled"`
}

type Errors struct {
	InvalidAction string `json:"invalid_action"`
	AccessDenied  string `json:"access_denied"`
	TryLater      string `json:"try_later"`
}

var (
	once   sync.Once
	parsed Locales
)

// Get returns the parsed locales. The embedded JSON is part of the binary;
// a parse failure is a programming error, hence the panic.
func Get() *Locales {
	once.Do(func() {
		if err := json.Unmarshal(localesJSON, &parsed); err != nil {
			panic("locales: " + err.Error())
		}
	})
	return &parsed
}
