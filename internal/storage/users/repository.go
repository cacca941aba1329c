package users

import "context"

// Repository describes operations on user rows and their consent flags.
type Repository interface {
	// Upsert creates the user row if absent. A non-empty username always
	// refreshes the stored handle; an empty one leaves it untouched.
	// Idempotent.
	Upsert(ctx context.Context, id int64, username string) error

	// HasConsent reports whether the user has recorded data-processing
	// consent. A missing row counts as no consent, not as an error.
	HasConsent(ctx context.Context, id int64) (bool, error)

	// GrantConsent sets the consent flag and stamps the current time.
	// A missing row is a no-op.
	GrantConsent(ctx context.Context, id int64) error

	// Delete removes the user row. Dependent rows are expected to be gone
	// or to cascade via foreign keys.
	Delete(ctx context.Context, id int64) error
}
