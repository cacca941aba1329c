// Package repomanager wires repositories to a concrete database backend and
// owns that backend's migrations. Repositories are handed a DBTX so the same
// wiring works inside and outside a transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/recipebook/internal/dbx"
	"github.com/dmitrijs2005/recipebook/internal/storage/recipes"
	"github.com/dmitrijs2005/recipebook/internal/storage/reviews"
	"github.com/dmitrijs2005/recipebook/internal/storage/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Recipes(db dbx.DBTX) recipes.Repository
	Reviews(db dbx.DBTX) reviews.Repository
}
