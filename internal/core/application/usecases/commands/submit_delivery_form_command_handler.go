package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
)

// SubmitDeliveryFormResult is the record handed to the caller. AddressID is
// set only when the record was saved to the address book.
type SubmitDeliveryFormResult struct {
	Variant   delivery.Variant
	Info      delivery.Info
	AddressID *kernel.UUID
}

// SubmitDeliveryFormCommandHandler validates a form and closes its session.
//
// On a validation failure nothing is saved and the session stays open so the
// buyer can correct the fields. On success the AddAddress variant persists the
// record in a transaction before the session is discarded.
type SubmitDeliveryFormCommandHandler struct {
	store      ports.SelectionStore
	binder     *delivery.Binder
	uowFactory DeliveryAddressUoWFactory
	logger     *slog.Logger
	now        func() time.Time
}

func NewSubmitDeliveryFormCommandHandler(
	store ports.SelectionStore,
	binder *delivery.Binder,
	uowFactory DeliveryAddressUoWFactory,
	logger *slog.Logger,
) SubmitDeliveryFormCommandHandler {
	return SubmitDeliveryFormCommandHandler{
		store:      store,
		binder:     binder,
		uowFactory: uowFactory,
		logger:     logger.With("component", "submit_delivery_form_handler"),
		now:        time.Now,
	}
}

func (h SubmitDeliveryFormCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitDeliveryFormCommand,
) (SubmitDeliveryFormResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitDeliveryFormResult{}, err
	}

	s, err := h.store.Get(ctx, cmd.FormID())
	if err != nil {
		return SubmitDeliveryFormResult{}, err
	}

	info, err := h.binder.Bind(s.Variant(), s.Location(), cmd.Fields(), cmd.Locale())
	if err != nil {
		return SubmitDeliveryFormResult{}, err
	}

	result := SubmitDeliveryFormResult{Variant: s.Variant(), Info: info}

	if s.Variant() == delivery.AddAddress {
		if err = h.saveAddress(ctx, cmd.AddressID(), info); err != nil {
			return SubmitDeliveryFormResult{}, err
		}
		id := cmd.AddressID()
		result.AddressID = &id
	}

	if err = h.store.Delete(ctx, cmd.FormID()); err != nil {
		// the session expires on its own
		h.logger.WarnContext(ctx, "Failed to discard submitted form",
			"form_id", cmd.FormID().String(), "error", err)
	}

	return result, nil
}

func (h SubmitDeliveryFormCommandHandler) saveAddress(ctx context.Context, id kernel.UUID, info delivery.Info) error {
	address, err := delivery.NewAddress(id, info, h.now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryAddressRepository().Add(ctx, address); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
