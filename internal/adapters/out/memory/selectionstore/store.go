// Package selectionstore keeps delivery-form sessions in process memory.
// It suits a single instance and tests; the Redis store is used when several
// instances share sessions.
package selectionstore

import (
	"context"
	"sync"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/selection"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

const paramName = "formId"

// Store holds sessions keyed by id. Sessions older than ttl are reported as
// missing even before the sweep job removes them. A zero ttl disables expiry.
type Store struct {
	mu       sync.Mutex
	sessions map[kernel.UUID]*selection.Selection
	ttl      time.Duration
	now      func() time.Time
}

var _ ports.SelectionStore = (*Store)(nil)

func NewStore(ttl time.Duration) *Store {
	return NewStoreWithClock(ttl, time.Now)
}

func NewStoreWithClock(ttl time.Duration, now func() time.Time) *Store {
	return &Store{
		sessions: make(map[kernel.UUID]*selection.Selection),
		ttl:      ttl,
		now:      now,
	}
}

func (st *Store) Add(_ context.Context, s *selection.Selection) error {
	if s == nil {
		return errs.NewValueIsRequiredError("selection")
	}
	if err := s.Validate(); err != nil {
		return err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	st.sessions[s.ID()] = s.Clone()
	return nil
}

func (st *Store) Get(_ context.Context, id kernel.UUID) (*selection.Selection, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, err := st.live(id)
	if err != nil {
		return nil, err
	}
	return s.Clone(), nil
}

// Update runs fn on a working copy so a failing fn leaves the stored session
// untouched.
func (st *Store) Update(
	_ context.Context,
	id kernel.UUID,
	fn func(s *selection.Selection) error,
) (*selection.Selection, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, err := st.live(id)
	if err != nil {
		return nil, err
	}

	working := s.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}

	st.sessions[id] = working
	return working.Clone(), nil
}

func (st *Store) Delete(_ context.Context, id kernel.UUID) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.sessions, id)
	return nil
}

func (st *Store) DeleteExpired(_ context.Context, now time.Time, ttl time.Duration) (int, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if s.IsExpired(now, ttl) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed, nil
}

// Len reports the number of stored sessions, expired ones included.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	return len(st.sessions)
}

func (st *Store) live(id kernel.UUID) (*selection.Selection, error) {
	s, ok := st.sessions[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError(paramName, id.String())
	}
	if s.IsExpired(st.now(), st.ttl) {
		delete(st.sessions, id)
		return nil, errs.NewObjectNotFoundError(paramName, id.String())
	}
	return s, nil
}
