package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/selection"
	"storefront/internal/core/ports"
)

// StartDeliveryFormCommandHandler creates the session backing a new form.
type StartDeliveryFormCommandHandler struct {
	store ports.SelectionStore
	now   func() time.Time
}

func NewStartDeliveryFormCommandHandler(store ports.SelectionStore) StartDeliveryFormCommandHandler {
	return StartDeliveryFormCommandHandler{store: store, now: time.Now}
}

func (h StartDeliveryFormCommandHandler) Handle(ctx context.Context, cmd StartDeliveryFormCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := selection.NewSelection(cmd.FormID(), cmd.Variant(), h.now())
	if err != nil {
		return err
	}

	return h.store.Add(ctx, s)
}
