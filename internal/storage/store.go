// Package storage exposes the consent-gated data store of the recipe
// notebook as one facade over per-aggregate repositories. The backend is
// selected by DSN: postgres:// and postgresql:// go to PostgreSQL via pgx,
// anything else is treated as a SQLite file path.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recipebook/internal/dbx"
	"github.com/dmitrijs2005/recipebook/internal/models"
	"github.com/dmitrijs2005/recipebook/internal/storage/repomanager"
)

// Store bundles a database handle with backend-specific repositories.
type Store struct {
	db *sql.DB
	m  repomanager.RepositoryManager
}

// Open connects to the database described by dsn, runs migrations, and
// returns a ready Store.
func Open(ctx context.Context, dsn string) (*Store, error) {
	var (
		driver string
		m      repomanager.RepositoryManager
	)

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		driver = "pgx"
		m = repomanager.NewPostgresRepositoryManager()
	} else {
		driver = "sqlite"
		m = repomanager.NewSQLiteRepositoryManager()
		dsn = sqliteDSN(dsn)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db, m: m}, nil
}

// NewStore wraps an already opened (and migrated) database. Used by tests.
func NewStore(db *sql.DB, m repomanager.RepositoryManager) *Store {
	return &Store{db: db, m: m}
}

// sqliteDSN turns a plain file path into a SQLite DSN with foreign-key
// enforcement on. Without the pragma the ON DELETE CASCADE clauses are inert.
func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_pragma=foreign_keys(1)"
	}
	return "file:" + path + "?_pragma=foreign_keys(1)"
}

func (s *Store) Close() error {
	return s.db.Close()
}

// UpsertUser creates or refreshes the user row. Idempotent.
func (s *Store) UpsertUser(ctx context.Context, id int64, username string) error {
	return s.m.Users(s.db).Upsert(ctx, id, username)
}

// HasConsent reports whether the user has recorded consent. A missing user
// row counts as no consent.
func (s *Store) HasConsent(ctx context.Context, id int64) (bool, error) {
	return s.m.Users(s.db).HasConsent(ctx, id)
}

// GrantConsent flips the consent flag and stamps the current time.
func (s *Store) GrantConsent(ctx context.Context, id int64) error {
	return s.m.Users(s.db).GrantConsent(ctx, id)
}

// CreateRecipe stores a completed recipe and returns its id.
func (s *Store) CreateRecipe(ctx context.Context, rec *models.Recipe) (int64, error) {
	return s.m.Recipes(s.db).Create(ctx, rec)
}

// ListRecipesByOwner returns the owner's recipes, newest first.
func (s *Store) ListRecipesByOwner(ctx context.Context, ownerID int64) ([]models.RecipeSummary, error) {
	return s.m.Recipes(s.db).ListByOwner(ctx, ownerID)
}

// GetRecipeByID returns the full recipe or common.ErrNotFound.
func (s *Store) GetRecipeByID(ctx context.Context, id int64) (*models.Recipe, error) {
	return s.m.Recipes(s.db).GetByID(ctx, id)
}

// UpdateRecipe replaces all four mutable fields of the recipe.
func (s *Store) UpdateRecipe(ctx context.Context, id int64, title string, category models.Category, ingredients, instructions string) error {
	return s.m.Recipes(s.db).Update(ctx, id, title, category, ingredients, instructions)
}

// DeleteRecipe removes the recipe and, via cascade, its reviews.
func (s *Store) DeleteRecipe(ctx context.Context, id int64) error {
	return s.m.Recipes(s.db).Delete(ctx, id)
}

// SearchRecipes matches the substring against titles and ingredients across
// all owners.
func (s *Store) SearchRecipes(ctx context.Context, query string) ([]models.RecipeSummary, error) {
	return s.m.Recipes(s.db).Search(ctx, query)
}

// CreateReview stores a review for a recipe.
func (s *Store) CreateReview(ctx context.Context, rv *models.Review) (int64, error) {
	return s.m.Reviews(s.db).Create(ctx, rv)
}

// ListReviewsByRecipe returns the recipe's reviews, most recent first.
func (s *Store) ListReviewsByRecipe(ctx context.Context, recipeID int64) ([]models.Review, error) {
	return s.m.Reviews(s.db).ListByRecipe(ctx, recipeID)
}

// RevokeUser irreversibly deletes everything the user owns: their reviews,
// their recipes (whose remaining reviews cascade), and finally the user row.
// The three deletes run in one transaction; a partial revoke would leave
// orphaned rows behind.
func (s *Store) RevokeUser(ctx context.Context, id int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.m.Reviews(tx).DeleteByAuthor(ctx, id); err != nil {
			return err
		}
		if err := s.m.Recipes(tx).DeleteByOwner(ctx, id); err != nil {
			return err
		}
		return s.m.Users(tx).Delete(ctx, id)
	})
}
