package commands_test

import (
	"errors"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/geography"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/selection"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChooseProvinceCommandHandler_Handle_LoadsDistricts(t *testing.T) {
	ctx := t.Context()
	s := emptySelection(t, delivery.Checkout)
	cmd, err := commands.NewChooseProvinceCommand(s.ID(), 1, testLocale)
	require.NoError(t, err)

	store := new(MockSelectionStore)
	fetcher := new(MockLocationFetcher)
	mock.InOrder(
		fetcher.On("FetchProvinces", ctx, mock.Anything).Return([]geography.Province{haNoi(t)}, nil).Once(),
		store.On("Update", ctx, s.ID()).Return(s, nil).Once(),
		fetcher.On("FetchDistricts", ctx, geography.Code(1), mock.Anything).
			Return([]geography.District{cauGiay(t)}, nil).Once(),
		store.On("Update", ctx, s.ID()).Return(s, nil).Once(),
	)

	h := commands.NewChooseProvinceCommandHandler(store, fetcher, discardLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, selection.ProvinceChosen, s.Stage())
	assert.Equal(t, delivery.Location{Province: "Hà Nội"}, s.Location())
	require.Len(t, s.Districts(), 1)
	assert.Equal(t, "Cầu Giấy", s.Districts()[0].Name())
	store.AssertExpectations(t)
	fetcher.AssertExpectations(t)
}

func TestChooseProvinceCommandHandler_Handle_UnknownProvince(t *testing.T) {
	ctx := t.Context()
	s := emptySelection(t, delivery.Checkout)
	cmd, _ := commands.NewChooseProvinceCommand(s.ID(), 42, testLocale)

	store := new(MockSelectionStore)
	fetcher := new(MockLocationFetcher)
	fetcher.On("FetchProvinces", ctx, mock.Anything).Return([]geography.Province{haNoi(t)}, nil).Once()
	store.On("Update", ctx, s.ID()).Return(s, nil).Once()

	h := commands.NewChooseProvinceCommandHandler(store, fetcher, discardLogger())
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, selection.Empty, s.Stage())
	fetcher.AssertNotCalled(t, "FetchDistricts", mock.Anything, mock.Anything, mock.Anything)
}

func TestChooseProvinceCommandHandler_Handle_ProvincesUnavailable(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewChooseProvinceCommand(kernel.NewUUID(), 1, testLocale)

	store := new(MockSelectionStore)
	fetcher := new(MockLocationFetcher)
	fetcher.On("FetchProvinces", ctx, mock.Anything).Return(nil, errs.NewNetworkError("provinces")).Once()

	h := commands.NewChooseProvinceCommandHandler(store, fetcher, discardLogger())
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrNetwork)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChooseProvinceCommandHandler_Handle_DistrictsUnavailable(t *testing.T) {
	ctx := t.Context()
	s := emptySelection(t, delivery.Checkout)
	cmd, _ := commands.NewChooseProvinceCommand(s.ID(), 1, testLocale)

	store := new(MockSelectionStore)
	fetcher := new(MockLocationFetcher)
	fetcher.On("FetchProvinces", ctx, mock.Anything).Return([]geography.Province{haNoi(t)}, nil).Once()
	store.On("Update", ctx, s.ID()).Return(s, nil).Once()
	fetcher.On("FetchDistricts", ctx, geography.Code(1), mock.Anything).
		Return(nil, errs.NewNetworkError("districts")).Once()

	h := commands.NewChooseProvinceCommandHandler(store, fetcher, discardLogger())
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, selection.ProvinceChosen, s.Stage())
	assert.Empty(t, s.Districts())
	store.AssertNumberOfCalls(t, "Update", 1)
}

func TestChooseProvinceCommandHandler_Handle_LaterChoiceWins(t *testing.T) {
	ctx := t.Context()
	s := emptySelection(t, delivery.Checkout)
	hcm, _ := geography.NewProvince(79, "Hồ Chí Minh")
	cmd, _ := commands.NewChooseProvinceCommand(s.ID(), 1, testLocale)

	store := new(MockSelectionStore)
	fetcher := new(MockLocationFetcher)
	fetcher.On("FetchProvinces", ctx, mock.Anything).Return([]geography.Province{haNoi(t), hcm}, nil).Once()
	store.On("Update", ctx, s.ID()).Return(s, nil).Twice()
	fetcher.On("FetchDistricts", ctx, geography.Code(1), mock.Anything).
		Run(func(mock.Arguments) {
			// the buyer picks another province while Hà Nội districts load
			_, err := s.ChooseProvince(hcm, testNow)
			require.NoError(t, err)
		}).
		Return([]geography.District{cauGiay(t)}, nil).Once()

	h := commands.NewChooseProvinceCommandHandler(store, fetcher, discardLogger())
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Hồ Chí Minh", s.Location().Province)
	assert.Empty(t, s.Districts())
}

func TestChooseProvinceCommandHandler_Handle_FormNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewChooseProvinceCommand(id, 1, testLocale)

	store := new(MockSelectionStore)
	fetcher := new(MockLocationFetcher)
	fetcher.On("FetchProvinces", ctx, mock.Anything).Return([]geography.Province{haNoi(t)}, nil).Once()
	store.On("Update", ctx, id).Return(nil, errs.NewObjectNotFoundError("formId", id.String())).Once()

	h := commands.NewChooseProvinceCommandHandler(store, fetcher, discardLogger())
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestChooseProvinceCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewChooseProvinceCommandHandler(new(MockSelectionStore), new(MockLocationFetcher), discardLogger())
	err := h.Handle(t.Context(), commands.ChooseProvinceCommand{})
	require.ErrorIs(t, err, commands.ErrChooseProvinceCommandIsNotConstructed)
}

func TestChooseProvinceCommandHandler_Handle_FetchFailure(t *testing.T) {
	ctx := t.Context()
	s := emptySelection(t, delivery.Checkout)
	cmd, _ := commands.NewChooseProvinceCommand(s.ID(), 1, testLocale)

	store := new(MockSelectionStore)
	fetcher := new(MockLocationFetcher)
	fetcher.On("FetchProvinces", ctx, mock.Anything).Return([]geography.Province{haNoi(t)}, nil).Once()
	store.On("Update", ctx, s.ID()).Return(s, nil).Once()
	fetcher.On("FetchDistricts", ctx, geography.Code(1), mock.Anything).Return(nil, errors.New("decode")).Once()

	h := commands.NewChooseProvinceCommandHandler(store, fetcher, discardLogger())
	require.Error(t, h.Handle(ctx, cmd))
}

func TestNewChooseProvinceCommand(t *testing.T) {
	_, err := commands.NewChooseProvinceCommand(kernel.UUID{}, 0, testLocale)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	id := kernel.NewUUID()
	cmd, err := commands.NewChooseProvinceCommand(id, 1, testLocale)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.FormID().IsEqual(id))
	assert.Equal(t, geography.Code(1), cmd.ProvinceCode())
}
