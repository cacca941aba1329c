package users

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/recipebook/internal/dbx"
)

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Upsert(ctx context.Context, id int64, username string) error {
	query := `INSERT INTO users (user_id, username, created_at)
	          VALUES (?, ?, ?)
	          ON CONFLICT (user_id) DO UPDATE SET username = excluded.username
	          WHERE excluded.username <> ''`

	_, err := r.db.ExecContext(ctx, query, id, username, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) HasConsent(ctx context.Context, id int64) (bool, error) {
	query := `SELECT count(*) FROM users WHERE user_id = ? AND consent_given = 1`

	var n int
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to check consent: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteRepository) GrantConsent(ctx context.Context, id int64) error {
	query := `UPDATE users SET consent_given = 1, consent_date = ? WHERE user_id = ?`

	_, err := r.db.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to grant consent: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE user_id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
