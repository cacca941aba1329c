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

// PostgresRepository implements Repository over a DBTX (either *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rec *models.Recipe) (int64, error) {
	if !rec.Category.Valid() {
		return 0, common.ErrInvalidCategory
	}

	query := `INSERT INTO recipes (user_id, title, category, ingredients, instructions, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		rec.UserID, rec.Title, string(rec.Category), rec.Ingredients, rec.Instructions, time.Now().UTC()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert recipe: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.RecipeSummary, error) {
	query := `SELECT id, title, category FROM recipes
	          WHERE user_id = $1
	          ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select recipes: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	query := `SELECT id, user_id, title, category, ingredients, instructions, created_at
	          FROM recipes WHERE id = $1`

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

func (r *PostgresRepository) Update(ctx context.Context, id int64, title string, category models.Category, ingredients, instructions string) error {
	if !category.Valid() {
		return common.ErrInvalidCategory
	}

	query := `UPDATE recipes SET title = $1, category = $2, ingredients = $3, instructions = $4 WHERE id = $5`

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

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteByOwner(ctx context.Context, ownerID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE user_id = $1`, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete recipes: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Search(ctx context.Context, query string) ([]models.RecipeSummary, error) {
	q := `SELECT id, title, category FROM recipes
	      WHERE title ILIKE $1 OR ingredients ILIKE $1
	      ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, q, "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}
