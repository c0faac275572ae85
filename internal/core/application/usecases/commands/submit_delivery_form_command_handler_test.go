package commands_test

import (
	"errors"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func buyerFields() delivery.Fields {
	return delivery.Fields{
		Receiver:    "An",
		PhoneNumber: "0912345678",
		Address:     "12 Xuân Thủy",
		Type:        "cod",
	}
}

func TestSubmitDeliveryFormCommandHandler_Handle_Checkout(t *testing.T) {
	ctx := t.Context()
	s := completeSelection(t, delivery.Checkout)
	cmd, err := commands.NewSubmitDeliveryFormCommand(s.ID(), kernel.NewUUID(), buyerFields(), testLocale)
	require.NoError(t, err)

	store := new(MockSelectionStore)
	mock.InOrder(
		store.On("Get", ctx, s.ID()).Return(s, nil).Once(),
		store.On("Delete", ctx, s.ID()).Return(nil).Once(),
	)
	factory := new(MockDeliveryAddressUoWFactory)

	h := commands.NewSubmitDeliveryFormCommandHandler(store, delivery.NewBinder(), factory, discardLogger())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Info{
		Receiver:    "An",
		PhoneNumber: "0912345678",
		Province:    "Hà Nội",
		District:    "Cầu Giấy",
		Ward:        "Dịch Vọng",
		Address:     "12 Xuân Thủy",
		Type:        delivery.CashOnDelivery,
	}, result.Info)
	assert.Nil(t, result.AddressID)
	store.AssertExpectations(t)
	factory.AssertNotCalled(t, "Create")
}

func TestSubmitDeliveryFormCommandHandler_Handle_AddAddress(t *testing.T) {
	ctx := t.Context()
	s := completeSelection(t, delivery.AddAddress)
	addressID := kernel.NewUUID()
	cmd, _ := commands.NewSubmitDeliveryFormCommand(s.ID(), addressID, buyerFields(), testLocale)

	store := new(MockSelectionStore)
	repo := new(MockDeliveryAddressRepository)
	uow := new(MockDeliveryAddressUoW)
	factory := new(MockDeliveryAddressUoWFactory)
	mock.InOrder(
		store.On("Get", ctx, s.ID()).Return(s, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryAddressRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(a *delivery.Address) bool {
			return a.ID().IsEqual(addressID) && a.Info().Type == ""
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		store.On("Delete", ctx, s.ID()).Return(nil).Once(),
	)

	h := commands.NewSubmitDeliveryFormCommandHandler(store, delivery.NewBinder(), factory, discardLogger())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, result.AddressID)
	assert.True(t, result.AddressID.IsEqual(addressID))
	assert.Empty(t, result.Info.Type)
	assert.Equal(t, delivery.AddAddress, result.Variant)
	store.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSubmitDeliveryFormCommandHandler_Handle_IncompleteSelection(t *testing.T) {
	ctx := t.Context()
	s := selectionWithDistricts(t)
	cmd, _ := commands.NewSubmitDeliveryFormCommand(s.ID(), kernel.NewUUID(), buyerFields(), testLocale)

	store := new(MockSelectionStore)
	store.On("Get", ctx, s.ID()).Return(s, nil).Once()

	h := commands.NewSubmitDeliveryFormCommandHandler(store, delivery.NewBinder(), new(MockDeliveryAddressUoWFactory), discardLogger())
	result, err := h.Handle(ctx, cmd)

	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)
	_, ok := validationErr.Field("district")
	assert.True(t, ok)
	_, ok = validationErr.Field("ward")
	assert.True(t, ok)
	assert.Equal(t, commands.SubmitDeliveryFormResult{}, result)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSubmitDeliveryFormCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	s := completeSelection(t, delivery.AddAddress)
	cmd, _ := commands.NewSubmitDeliveryFormCommand(s.ID(), kernel.NewUUID(), buyerFields(), testLocale)

	store := new(MockSelectionStore)
	repo := new(MockDeliveryAddressRepository)
	uow := new(MockDeliveryAddressUoW)
	factory := new(MockDeliveryAddressUoWFactory)
	store.On("Get", ctx, s.ID()).Return(s, nil).Once()
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryAddressRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.Anything).Return(errors.New("insert failed")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewSubmitDeliveryFormCommandHandler(store, delivery.NewBinder(), factory, discardLogger())
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSubmitDeliveryFormCommandHandler_Handle_DeleteFailureIsNotFatal(t *testing.T) {
	ctx := t.Context()
	s := completeSelection(t, delivery.Checkout)
	cmd, _ := commands.NewSubmitDeliveryFormCommand(s.ID(), kernel.NewUUID(), buyerFields(), testLocale)

	store := new(MockSelectionStore)
	store.On("Get", ctx, s.ID()).Return(s, nil).Once()
	store.On("Delete", ctx, s.ID()).Return(errors.New("redis down")).Once()

	h := commands.NewSubmitDeliveryFormCommandHandler(store, delivery.NewBinder(), new(MockDeliveryAddressUoWFactory), discardLogger())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Dịch Vọng", result.Info.Ward)
}

func TestSubmitDeliveryFormCommandHandler_Handle_FormNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewSubmitDeliveryFormCommand(id, kernel.NewUUID(), buyerFields(), testLocale)

	store := new(MockSelectionStore)
	store.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("formId", id.String())).Once()

	h := commands.NewSubmitDeliveryFormCommandHandler(store, delivery.NewBinder(), new(MockDeliveryAddressUoWFactory), discardLogger())
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
