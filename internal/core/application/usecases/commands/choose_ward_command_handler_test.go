package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/geography"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/selection"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseWardCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	s := selectionWithDistricts(t)
	_, token, err := s.ChooseDistrict(5, testNow)
	require.NoError(t, err)
	require.True(t, s.ApplyWards(token, []geography.Ward{dichVong(t)}))

	cmd, err := commands.NewChooseWardCommand(s.ID(), 100)
	require.NoError(t, err)

	store := new(MockSelectionStore)
	store.On("Update", ctx, s.ID()).Return(s, nil).Once()

	h := commands.NewChooseWardCommandHandler(store)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, selection.WardChosen, s.Stage())
	assert.Equal(t, delivery.Location{Province: "Hà Nội", District: "Cầu Giấy", Ward: "Dịch Vọng"}, s.Location())
	store.AssertExpectations(t)
}

func TestChooseWardCommandHandler_Handle_NoDistrictChosen(t *testing.T) {
	ctx := t.Context()
	s := selectionWithDistricts(t)
	cmd, _ := commands.NewChooseWardCommand(s.ID(), 100)

	store := new(MockSelectionStore)
	store.On("Update", ctx, s.ID()).Return(s, nil).Once()

	err := commands.NewChooseWardCommandHandler(store).Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestNewChooseWardCommand(t *testing.T) {
	_, err := commands.NewChooseWardCommand(kernel.NewUUID(), -3)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	err = commands.NewChooseWardCommandHandler(new(MockSelectionStore)).Handle(t.Context(), commands.ChooseWardCommand{})
	require.ErrorIs(t, err, commands.ErrChooseWardCommandIsNotConstructed)
}
