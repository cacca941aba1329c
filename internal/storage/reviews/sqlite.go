package reviews

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/recipebook/internal/common"
	"github.com/dmitrijs2005/recipebook/internal/dbx"
	"github.com/dmitrijs2005/recipebook/internal/models"
)

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, rv *models.Review) (int64, error) {
	if !models.ValidRating(rv.Rating) {
		return 0, common.ErrInvalidRating
	}

	query := `INSERT INTO reviews (recipe_id, user_id, rating, comment, created_at)
	          VALUES (?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, rv.RecipeID, rv.UserID, rv.Rating, rv.Comment, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to insert review: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get review id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) ListByRecipe(ctx context.Context, recipeID int64) ([]models.Review, error) {
	query := `SELECT id, recipe_id, user_id, rating, comment, created_at FROM reviews
	          WHERE recipe_id = ?
	          ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to select reviews: %w", err)
	}
	defer rows.Close()

	var result []models.Review
	for rows.Next() {
		var item models.Review
		if err := rows.Scan(&item.ID, &item.RecipeID, &item.UserID, &item.Rating, &item.Comment, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) DeleteByAuthor(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete reviews: %w", err)
	}
	return nil
}
