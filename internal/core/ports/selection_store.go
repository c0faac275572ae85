package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/selection"
)

// SelectionStore keeps the open delivery-form sessions.
//
// Stores are safe for concurrent use and never hand out a Selection that
// another caller can mutate. A missing or expired session is reported as
// *errs.ObjectNotFoundError.
type SelectionStore interface {
	// Add saves a new session.
	Add(ctx context.Context, s *selection.Selection) error

	// Get returns a copy of the session.
	Get(ctx context.Context, id kernel.UUID) (*selection.Selection, error)

	// Update applies fn to the session atomically and saves the result unless
	// fn returns an error. The returned Selection is a copy of the saved state.
	// fn must not block on remote calls.
	Update(ctx context.Context, id kernel.UUID, fn func(s *selection.Selection) error) (*selection.Selection, error)

	// Delete removes the session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteExpired removes sessions not touched within ttl of now and reports
	// how many were removed.
	DeleteExpired(ctx context.Context, now time.Time, ttl time.Duration) (int, error)
}
