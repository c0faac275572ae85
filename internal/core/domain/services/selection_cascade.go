package services

import (
	"time"

	"storefront/internal/core/domain/model/geography"
	"storefront/internal/core/domain/model/selection"
	"storefront/internal/pkg/errs"
)

// SelectionCascade moves a Selection to a province chosen from the list the
// buyer was shown.
//
// Business rules:
//   - the province must be one of the candidates
//   - choosing it drops the district and ward levels
//   - the returned token must accompany the district list fetched next
type SelectionCascade struct{}

func NewSelectionCascade() SelectionCascade {
	return SelectionCascade{}
}

// ChooseProvince returns *errs.ObjectNotFoundError when code is not among
// candidates. The selection is left untouched in that case.
func (SelectionCascade) ChooseProvince(
	s *selection.Selection,
	candidates []geography.Province,
	code geography.Code,
	now time.Time,
) (geography.Province, selection.Token, error) {
	if err := s.Validate(); err != nil {
		return geography.Province{}, 0, err
	}

	province, ok := geography.Find(candidates, code)
	if !ok {
		return geography.Province{}, 0, errs.NewObjectNotFoundError("provinceCode", int(code))
	}

	token, err := s.ChooseProvince(province, now)
	if err != nil {
		return geography.Province{}, 0, err
	}
	return province, token, nil
}
