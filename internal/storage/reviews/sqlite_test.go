package reviews

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/recipebook/internal/common"
	"github.com/dmitrijs2005/recipebook/internal/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE reviews (
  id         INTEGER PRIMARY KEY AUTOINCREMENT,
  recipe_id  INTEGER NOT NULL,
  user_id    INTEGER NOT NULL,
  rating     INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
  comment    TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`)
	require.NoError(t, err)
	return db
}

func TestCreate_PersistsReview(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id, err := r.Create(ctx, &models.Review{RecipeID: 10, UserID: 7, Rating: 4, Comment: "tasty"})
	require.NoError(t, err)
	require.Positive(t, id)

	list, err := r.ListByRecipe(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, int64(7), list[0].UserID)
	assert.Equal(t, 4, list[0].Rating)
	assert.Equal(t, "tasty", list[0].Comment)
	assert.False(t, list[0].CreatedAt.IsZero())
}

func TestCreate_EmptyCommentAllowed(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.Create(ctx, &models.Review{RecipeID: 10, UserID: 7, Rating: 5})
	require.NoError(t, err)
}

func TestCreate_RatingOutOfRangeRejected(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		_, err := r.Create(ctx, &models.Review{RecipeID: 10, UserID: 7, Rating: rating})
		require.ErrorIs(t, err, common.ErrInvalidRating)
	}

	var n int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM reviews`).Scan(&n))
	require.Equal(t, 0, n)
}

func TestListByRecipe_ScopedAndNewestFirst(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	first, err := r.Create(ctx, &models.Review{RecipeID: 10, UserID: 1, Rating: 3})
	require.NoError(t, err)
	second, err := r.Create(ctx, &models.Review{RecipeID: 10, UserID: 2, Rating: 5})
	require.NoError(t, err)
	_, err = r.Create(ctx, &models.Review{RecipeID: 11, UserID: 1, Rating: 1})
	require.NoError(t, err)

	list, err := r.ListByRecipe(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second, list[0].ID)
	assert.Equal(t, first, list[1].ID)
}

func TestListByRecipe_Empty(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	list, err := r.ListByRecipe(context.Background(), 999)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestDeleteByAuthor_RemovesOnlyAuthorsReviews(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.Create(ctx, &models.Review{RecipeID: 10, UserID: 1, Rating: 2})
	require.NoError(t, err)
	keep, err := r.Create(ctx, &models.Review{RecipeID: 10, UserID: 2, Rating: 4})
	require.NoError(t, err)

	require.NoError(t, r.DeleteByAuthor(ctx, 1))

	list, err := r.ListByRecipe(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, keep, list[0].ID)
}

func TestCreate_DBErrorWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Close())

	_, err := r.Create(ctx, &models.Review{RecipeID: 1, UserID: 1, Rating: 3})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to insert review")
}
