package services_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/geography"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/selection"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionCascade_ChooseProvince(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	hn, _ := geography.NewProvince(1, "Hà Nội")
	hcm, _ := geography.NewProvince(79, "Hồ Chí Minh")
	candidates := []geography.Province{hn, hcm}

	t.Run("should move selection to listed province", func(t *testing.T) {
		s, err := selection.NewSelection(kernel.NewUUID(), delivery.Checkout, now)
		require.NoError(t, err)

		province, token, err := services.NewSelectionCascade().ChooseProvince(s, candidates, 79, now)

		require.NoError(t, err)
		assert.Equal(t, "Hồ Chí Minh", province.Name())
		assert.Equal(t, s.DistrictsToken(), token)
		assert.Equal(t, selection.ProvinceChosen, s.Stage())
	})

	t.Run("should reject province not in list", func(t *testing.T) {
		s, err := selection.NewSelection(kernel.NewUUID(), delivery.Checkout, now)
		require.NoError(t, err)

		_, _, err = services.NewSelectionCascade().ChooseProvince(s, candidates, 2, now)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, selection.Empty, s.Stage())
	})

	t.Run("should reject unconstructed selection", func(t *testing.T) {
		_, _, err := services.NewSelectionCascade().ChooseProvince(&selection.Selection{}, candidates, 1, now)
		require.ErrorIs(t, err, selection.ErrSelectionIsNotConstructed)
	})
}
