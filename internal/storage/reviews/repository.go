package reviews

import (
	"context"

	"github.com/dmitrijs2005/recipebook/internal/models"
)

// Repository describes operations over review rows.
type Repository interface {
	// Create inserts a review and returns its generated id. The rating is
	// re-validated here: anything outside [1,5] yields common.ErrInvalidRating.
	Create(ctx context.Context, rv *models.Review) (int64, error)

	// ListByRecipe returns the recipe's reviews, most recent first.
	ListByRecipe(ctx context.Context, recipeID int64) ([]models.Review, error)

	// DeleteByAuthor removes every review authored by the user.
	DeleteByAuthor(ctx context.Context, userID int64) error
}
