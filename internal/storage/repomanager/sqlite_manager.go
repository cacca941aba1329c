package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/recipebook/internal/dbx"
	migrations "github.com/dmitrijs2005/recipebook/internal/storage/migrations/sqlite"
	"github.com/dmitrijs2005/recipebook/internal/storage/recipes"
	"github.com/dmitrijs2005/recipebook/internal/storage/reviews"
	"github.com/dmitrijs2005/recipebook/internal/storage/users"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

type SQLiteRepositoryManager struct {
}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Recipes(db dbx.DBTX) recipes.Repository {
	return recipes.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Reviews(db dbx.DBTX) reviews.Repository {
	return reviews.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}
