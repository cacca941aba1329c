package users

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/recipebook/internal/dbx"
)

// PostgresRepository implements Repository over a DBTX (either *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, id int64, username string) error {
	query := `INSERT INTO users (user_id, username, created_at)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (user_id) DO UPDATE SET username = excluded.username
	          WHERE excluded.username <> ''`

	_, err := r.db.ExecContext(ctx, query, id, username, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

func (r *PostgresRepository) HasConsent(ctx context.Context, id int64) (bool, error) {
	query := `SELECT count(*) FROM users WHERE user_id = $1 AND consent_given`

	var n int
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to check consent: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresRepository) GrantConsent(ctx context.Context, id int64) error {
	query := `UPDATE users SET consent_given = TRUE, consent_date = $1 WHERE user_id = $2`

	_, err := r.db.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to grant consent: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
