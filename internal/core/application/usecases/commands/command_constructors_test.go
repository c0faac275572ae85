package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/geography"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChooseDistrictCommand(t *testing.T) {
	_, err := commands.NewChooseDistrictCommand(kernel.UUID{}, -3, testLocale)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	id := kernel.NewUUID()
	cmd, err := commands.NewChooseDistrictCommand(id, 5, testLocale)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.FormID().IsEqual(id))
	assert.Equal(t, geography.Code(5), cmd.DistrictCode())
}

func TestNewDiscardDeliveryFormCommand(t *testing.T) {
	_, err := commands.NewDiscardDeliveryFormCommand(kernel.UUID{})
	require.Error(t, err)

	cmd, err := commands.NewDiscardDeliveryFormCommand(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
}

func TestCommands_NotConstructed(t *testing.T) {
	require.ErrorIs(t, commands.ChooseProvinceCommand{}.Validate(), commands.ErrChooseProvinceCommandIsNotConstructed)
	require.ErrorIs(t, commands.ChooseDistrictCommand{}.Validate(), commands.ErrChooseDistrictCommandIsNotConstructed)
	require.ErrorIs(t, commands.ChooseWardCommand{}.Validate(), commands.ErrChooseWardCommandIsNotConstructed)
	require.ErrorIs(t, commands.StartDeliveryFormCommand{}.Validate(), commands.ErrStartDeliveryFormCommandIsNotConstructed)
	require.ErrorIs(t, commands.DiscardDeliveryFormCommand{}.Validate(), commands.ErrDiscardDeliveryFormCommandIsNotConstructed)
	require.ErrorIs(t, commands.SubmitDeliveryFormCommand{}.Validate(), commands.ErrSubmitDeliveryFormCommandIsNotConstructed)
	require.ErrorIs(t, commands.SweepExpiredFormsCommand{}.Validate(), commands.ErrSweepExpiredFormsCommandIsNotConstructed)
}
