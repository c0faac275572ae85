package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/geography"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/selection"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSelectionStore struct{ mock.Mock }

func (m *MockSelectionStore) Add(ctx context.Context, s *selection.Selection) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSelectionStore) Get(ctx context.Context, id kernel.UUID) (*selection.Selection, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*selection.Selection)
	return s, args.Error(1)
}

func (m *MockSelectionStore) Update(
	ctx context.Context,
	id kernel.UUID,
	_ func(s *selection.Selection) error,
) (*selection.Selection, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*selection.Selection)
	return s, args.Error(1)
}

func (m *MockSelectionStore) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSelectionStore) DeleteExpired(ctx context.Context, now time.Time, ttl time.Duration) (int, error) {
	args := m.Called(ctx, now, ttl)
	return args.Int(0), args.Error(1)
}

func TestGetDeliveryFormQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

	s, err := selection.NewSelection(kernel.NewUUID(), delivery.Checkout, now)
	require.NoError(t, err)
	hn, _ := geography.NewProvince(1, "Hà Nội")
	cg, _ := geography.NewDistrict(5, "Cầu Giấy", 1)
	dd, _ := geography.NewDistrict(6, "Đống Đa", 1)
	token, err := s.ChooseProvince(hn, now)
	require.NoError(t, err)
	s.ApplyDistricts(token, []geography.District{cg, dd})

	store := new(MockSelectionStore)
	store.On("Get", ctx, s.ID()).Return(s, nil).Once()

	query, err := queries.NewGetDeliveryFormQuery(s.ID())
	require.NoError(t, err)
	resp, err := queries.NewGetDeliveryFormQueryHandler(store).Handle(ctx, query)

	require.NoError(t, err)
	assert.True(t, resp.ID.IsEqual(s.ID()))
	assert.Equal(t, "province_chosen", resp.Stage)
	require.NotNil(t, resp.Province)
	assert.Equal(t, "Hà Nội", resp.Province.Name)
	assert.Nil(t, resp.District)
	assert.Nil(t, resp.Ward)
	assert.Len(t, resp.Districts, 2)
	assert.Empty(t, resp.Wards)
	assert.Equal(t, delivery.Location{Province: "Hà Nội"}, resp.Location)
}

func TestGetDeliveryFormQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	store := new(MockSelectionStore)
	store.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("formId", id.String())).Once()

	query, _ := queries.NewGetDeliveryFormQuery(id)
	_, err := queries.NewGetDeliveryFormQueryHandler(store).Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
