// Package models defines the persistent entities of the recipe notebook:
// users with their data-processing consent, recipes, and reviews.
package models

import "time"

// Category is the recipe category. Only the three fixed values below are
// accepted; everything else is rejected at the store boundary.
type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategoryDinner    Category = "dinner"
)

// Categories lists all valid categories in menu order.
var Categories = []Category{CategoryBreakfast, CategoryLunch, CategoryDinner}

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryBreakfast, CategoryLunch, CategoryDinner:
		return true
	}
	return false
}

// ParseCategory returns the Category matching s, or false if s is not a
// known category label.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, c.Valid()
}

// User is a bot user. ID equals the Telegram chat id. A user row must exist
// before any recipe or review referencing it is created.
type User struct {
	ID           int64
	Username     string
	ConsentGiven bool
	ConsentDate  *time.Time
	CreatedAt    time.Time
}

// Recipe is owned exclusively by its user.
type Recipe struct {
	ID           int64
	UserID       int64
	Title        string
	Category     Category
	Ingredients  string
	Instructions string
	CreatedAt    time.Time
}

// RecipeSummary is the short form returned by listings and search.
type RecipeSummary struct {
	ID       int64
	Title    string
	Category Category
}

// Review is attached to a recipe and authored by a user. Rating is strictly
// in [1,5].
type Review struct {
	ID        int64
	RecipeID  int64
	UserID    int64
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// MinRating and MaxRating bound a review rating.
const (
	MinRating = 1
	MaxRating = 5
)

// ValidRating reports whether r is an acceptable review rating.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
