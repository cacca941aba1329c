// Package common defines shared sentinel errors used across the bot,
// router, and storage layers. Callers should use errors.Is to match them.
package common

import "errors"

var (
	// Repository-level errors. Absence of a row is a normal outcome and is
	// reported with ErrNotFound, never conflated with a db failure.
	ErrNotFound = errors.New("not found")

	// Validation errors, rejected before anything reaches the store.
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidRating   = errors.New("invalid rating")
	ErrInvalidAction   = errors.New("invalid action")
)
