package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/guard"
)

var ErrDiscardDeliveryFormCommandIsNotConstructed = errors.New(
	"DiscardDeliveryFormCommand must be created via NewDiscardDeliveryFormCommand constructor",
)

// DiscardDeliveryFormCommand closes a form without submitting it.
type DiscardDeliveryFormCommand struct { //nolint:recvcheck //using for validation
	formID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewDiscardDeliveryFormCommand(formID kernel.UUID) (DiscardDeliveryFormCommand, error) {
	if err := formID.Validate(); err != nil {
		return DiscardDeliveryFormCommand{}, err
	}
	return DiscardDeliveryFormCommand{formID: formID, guard: guard.NewConstructorGuard()}, nil
}

func (c DiscardDeliveryFormCommand) Validate() error {
	return c.guard.Validate(ErrDiscardDeliveryFormCommandIsNotConstructed)
}

func (c DiscardDeliveryFormCommand) FormID() kernel.UUID { return c.formID }

type DiscardDeliveryFormCommandHandler struct {
	store ports.SelectionStore
}

func NewDiscardDeliveryFormCommandHandler(store ports.SelectionStore) DiscardDeliveryFormCommandHandler {
	return DiscardDeliveryFormCommandHandler{store: store}
}

// Handle is idempotent: discarding a closed form succeeds.
func (h DiscardDeliveryFormCommandHandler) Handle(ctx context.Context, cmd DiscardDeliveryFormCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.store.Delete(ctx, cmd.FormID())
}
