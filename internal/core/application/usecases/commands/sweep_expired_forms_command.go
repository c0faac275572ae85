package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrSweepExpiredFormsCommandIsNotConstructed = errors.New(
	"SweepExpiredFormsCommand must be created via NewSweepExpiredFormsCommand constructor",
)

// SweepExpiredFormsCommand removes forms abandoned for longer than TTL.
type SweepExpiredFormsCommand struct { //nolint:recvcheck //using for validation
	ttl   time.Duration
	guard guard.ConstructorGuard
}

func NewSweepExpiredFormsCommand(ttl time.Duration) (SweepExpiredFormsCommand, error) {
	if ttl <= 0 {
		return SweepExpiredFormsCommand{}, errs.NewValueIsOutOfRangeError("ttl", ttl.String(), "1ns", "unbounded")
	}
	return SweepExpiredFormsCommand{ttl: ttl, guard: guard.NewConstructorGuard()}, nil
}

func (c SweepExpiredFormsCommand) Validate() error {
	return c.guard.Validate(ErrSweepExpiredFormsCommandIsNotConstructed)
}

func (c SweepExpiredFormsCommand) TTL() time.Duration { return c.ttl }

type SweepExpiredFormsCommandHandler struct {
	store ports.SelectionStore
	now   func() time.Time
}

func NewSweepExpiredFormsCommandHandler(store ports.SelectionStore) SweepExpiredFormsCommandHandler {
	return SweepExpiredFormsCommandHandler{store: store, now: time.Now}
}

// Handle reports how many forms were removed.
func (h SweepExpiredFormsCommandHandler) Handle(ctx context.Context, cmd SweepExpiredFormsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	return h.store.DeleteExpired(ctx, h.now(), cmd.TTL())
}
