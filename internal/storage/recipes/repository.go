package recipes

import (
	"context"

	"github.com/dmitrijs2005/recipebook/internal/models"
)

// Repository describes CRUD and query operations over recipe rows.
// Absent rows are reported with common.ErrNotFound; a failing backend is
// reported as a wrapped db error, never conflated with absence.
type Repository interface {
	// Create inserts a recipe and returns its generated id. The category is
	// re-validated here as a last line of defense: anything outside the
	// three known values yields common.ErrInvalidCategory.
	Create(ctx context.Context, r *models.Recipe) (int64, error)

	// ListByOwner returns the owner's recipes, most recently created first.
	ListByOwner(ctx context.Context, ownerID int64) ([]models.RecipeSummary, error)

	// GetByID returns the full recipe or common.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Recipe, error)

	// Update replaces all four mutable fields. common.ErrNotFound if the
	// recipe does not exist.
	Update(ctx context.Context, id int64, title string, category models.Category, ingredients, instructions string) error

	// Delete removes the recipe; its reviews go with it via cascade.
	Delete(ctx context.Context, id int64) error

	// DeleteByOwner removes every recipe owned by the user.
	DeleteByOwner(ctx context.Context, ownerID int64) error

	// Search matches the substring case-insensitively against title or
	// ingredients, across all owners, newest first.
	Search(ctx context.Context, query string) ([]models.RecipeSummary, error)
}
