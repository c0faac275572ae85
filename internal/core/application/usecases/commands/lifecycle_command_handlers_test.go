package commands_test

import (
	"errors"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/selection"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartDeliveryFormCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewStartDeliveryFormCommand(id, delivery.AddAddress)
	require.NoError(t, err)

	store := new(MockSelectionStore)
	store.On("Add", ctx, mock.MatchedBy(func(s *selection.Selection) bool {
		return s.ID().IsEqual(id) && s.Stage() == selection.Empty && s.Variant() == delivery.AddAddress
	})).Return(nil).Once()

	require.NoError(t, commands.NewStartDeliveryFormCommandHandler(store).Handle(ctx, cmd))
	store.AssertExpectations(t)
}

func TestStartDeliveryFormCommandHandler_Handle_StoreError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewStartDeliveryFormCommand(kernel.NewUUID(), delivery.Checkout)

	store := new(MockSelectionStore)
	store.On("Add", ctx, mock.Anything).Return(errors.New("store full")).Once()

	require.Error(t, commands.NewStartDeliveryFormCommandHandler(store).Handle(ctx, cmd))
}

func TestNewStartDeliveryFormCommand(t *testing.T) {
	_, err := commands.NewStartDeliveryFormCommand(kernel.UUID{}, "wholesale")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	err = commands.NewStartDeliveryFormCommandHandler(new(MockSelectionStore)).
		Handle(t.Context(), commands.StartDeliveryFormCommand{})
	require.ErrorIs(t, err, commands.ErrStartDeliveryFormCommandIsNotConstructed)
}

func TestDiscardDeliveryFormCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDiscardDeliveryFormCommand(id)
	require.NoError(t, err)

	store := new(MockSelectionStore)
	store.On("Delete", ctx, id).Return(nil).Once()

	require.NoError(t, commands.NewDiscardDeliveryFormCommandHandler(store).Handle(ctx, cmd))
	store.AssertExpectations(t)

	_, err = commands.NewDiscardDeliveryFormCommand(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestSweepExpiredFormsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSweepExpiredFormsCommand(30 * time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cmd.TTL())

	store := new(MockSelectionStore)
	store.On("DeleteExpired", ctx, mock.AnythingOfType("time.Time"), 30*time.Minute).Return(3, nil).Once()

	removed, err := commands.NewSweepExpiredFormsCommandHandler(store).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 3, removed)
	store.AssertExpectations(t)
}

func TestNewSweepExpiredFormsCommand_RejectsNonPositiveTTL(t *testing.T) {
	_, err := commands.NewSweepExpiredFormsCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
