package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/geography"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/selection"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/i18n"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSelectionStore struct{ mock.Mock }

func (m *MockSelectionStore) Add(ctx context.Context, s *selection.Selection) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSelectionStore) Get(ctx context.Context, id kernel.UUID) (*selection.Selection, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*selection.Selection)
	return s, args.Error(1)
}

// Update runs fn against the selection given to Return, so tests can inspect
// it afterwards.
func (m *MockSelectionStore) Update(
	ctx context.Context,
	id kernel.UUID,
	fn func(s *selection.Selection) error,
) (*selection.Selection, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*selection.Selection)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (m *MockSelectionStore) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSelectionStore) DeleteExpired(ctx context.Context, now time.Time, ttl time.Duration) (int, error) {
	args := m.Called(ctx, now, ttl)
	return args.Int(0), args.Error(1)
}

type MockLocationFetcher struct{ mock.Mock }

func (m *MockLocationFetcher) FetchProvinces(ctx context.Context, locale i18n.Locale) ([]geography.Province, error) {
	args := m.Called(ctx, locale)
	provinces, _ := args.Get(0).([]geography.Province)
	return provinces, args.Error(1)
}

func (m *MockLocationFetcher) FetchDistricts(
	ctx context.Context,
	code geography.Code,
	locale i18n.Locale,
) ([]geography.District, error) {
	args := m.Called(ctx, code, locale)
	districts, _ := args.Get(0).([]geography.District)
	return districts, args.Error(1)
}

func (m *MockLocationFetcher) FetchWards(
	ctx context.Context,
	code geography.Code,
	locale i18n.Locale,
) ([]geography.Ward, error) {
	args := m.Called(ctx, code, locale)
	wards, _ := args.Get(0).([]geography.Ward)
	return wards, args.Error(1)
}

type MockDeliveryAddressRepository struct{ mock.Mock }

func (m *MockDeliveryAddressRepository) Add(ctx context.Context, a *delivery.Address) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockDeliveryAddressRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Address, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*delivery.Address)
	return a, args.Error(1)
}

type MockDeliveryAddressUoW struct{ mock.Mock }

func (m *MockDeliveryAddressUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeliveryAddressUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeliveryAddressUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeliveryAddressUoW) DeliveryAddressRepository() ports.DeliveryAddressRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryAddressRepository)
}

type MockDeliveryAddressUoWFactory struct{ mock.Mock }

func (m *MockDeliveryAddressUoWFactory) Create() commands.DeliveryAddressUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryAddressUoW)
}

var (
	testNow    = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	testLocale = i18n.Default()
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func haNoi(t *testing.T) geography.Province {
	t.Helper()
	p, err := geography.NewProvince(1, "Hà Nội")
	require.NoError(t, err)
	return p
}

func cauGiay(t *testing.T) geography.District {
	t.Helper()
	d, err := geography.NewDistrict(5, "Cầu Giấy", 1)
	require.NoError(t, err)
	return d
}

func dichVong(t *testing.T) geography.Ward {
	t.Helper()
	w, err := geography.NewWard(100, "Dịch Vọng", 5)
	require.NoError(t, err)
	return w
}

func emptySelection(t *testing.T, variant delivery.Variant) *selection.Selection {
	t.Helper()
	s, err := selection.NewSelection(kernel.NewUUID(), variant, testNow)
	require.NoError(t, err)
	return s
}

// selectionWithDistricts has Hà Nội chosen and its district list loaded.
func selectionWithDistricts(t *testing.T) *selection.Selection {
	t.Helper()
	s := emptySelection(t, delivery.Checkout)
	token, err := s.ChooseProvince(haNoi(t), testNow)
	require.NoError(t, err)
	require.True(t, s.ApplyDistricts(token, []geography.District{cauGiay(t)}))
	return s
}

// completeSelection has Hà Nội / Cầu Giấy / Dịch Vọng chosen.
func completeSelection(t *testing.T, variant delivery.Variant) *selection.Selection {
	t.Helper()
	s := emptySelection(t, variant)
	token, err := s.ChooseProvince(haNoi(t), testNow)
	require.NoError(t, err)
	require.True(t, s.ApplyDistricts(token, []geography.District{cauGiay(t)}))
	_, wardsToken, err := s.ChooseDistrict(5, testNow)
	require.NoError(t, err)
	require.True(t, s.ApplyWards(wardsToken, []geography.Ward{dichVong(t)}))
	_, err = s.ChooseWard(100, testNow)
	require.NoError(t, err)
	return s
}
