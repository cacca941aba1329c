package recipes

import (
	"context"
	"database/sql"
	"errors"
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

func (r *SQLiteRepository) Create(ctx context.Context, rec *models.Recipe) (int64, error) {
	if !rec.Category.Valid() {
		return 0, common.ErrInvalidCategory
	}

	query := `INSERT INTO recipes (user_id, title, category, ingredients, instructions, created_at)
	          VALUES (?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		rec.UserID, rec.Title, string(rec.Category), rec.Ingredients, rec.Instructions, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to insert recipe: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get recipe id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.RecipeSummary, error) {
	query := `SELECT id, title, category FROM recipes
	          WHERE user_id = ?
	          ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select recipes: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	query := `SELECT id, user_id, title, category, ingredients, instructions, created_at
	          FROM recipes WHERE id = ?`

	rec := &models.Recipe{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rec.ID, &rec.UserID, &rec.Title, &rec.Category, &rec.Ingredients, &rec.Instructions, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select recipe: %w", err)
	}
	return rec, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, id int64, title string, category models.Category, ingredients, instructions string) error {
	if !category.Valid() {
		return common.ErrInvalidCategory
	}

	query := `UPDATE recipes SET title = ?, category = ?, ingredients = ?, instructions = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, title, string(category), ingredients, instructions, id)
	if err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteByOwner(ctx context.Context, ownerID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE user_id = ?`, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete recipes: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Search(ctx context.Context, query string) ([]models.RecipeSummary, error) {
	// LIKE is case-insensitive for ASCII in SQLite.
	q := `SELECT id, title, category FROM recipes
	      WHERE title LIKE ? OR ingredients LIKE ?
	      ORDER BY created_at DESC, id DESC`

	pattern := "%" + query + "%"
	rows, err := r.db.QueryContext(ctx, q, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

func scanSummaries(rows *sql.Rows) ([]models.RecipeSummary, error) {
	var result []models.RecipeSummary
	for rows.Next() {
		var item models.RecipeSummary
		if err := rows.Scan(&item.ID, &item.Title, &item.Category); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
