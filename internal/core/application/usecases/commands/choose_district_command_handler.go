package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/selection"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// ChooseDistrictCommandHandler selects a district and loads its wards, with
// the same stale-list and network policy as ChooseProvinceCommandHandler.
type ChooseDistrictCommandHandler struct {
	store   ports.SelectionStore
	fetcher LocationFetcher
	logger  *slog.Logger
	now     func() time.Time
}

func NewChooseDistrictCommandHandler(
	store ports.SelectionStore,
	fetcher LocationFetcher,
	logger *slog.Logger,
) ChooseDistrictCommandHandler {
	return ChooseDistrictCommandHandler{
		store:   store,
		fetcher: fetcher,
		logger:  logger.With("component", "choose_district_handler"),
		now:     time.Now,
	}
}

func (h ChooseDistrictCommandHandler) Handle(ctx context.Context, cmd ChooseDistrictCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var token selection.Token
	if _, err := h.store.Update(ctx, cmd.FormID(), func(s *selection.Selection) error {
		_, t, chooseErr := s.ChooseDistrict(cmd.DistrictCode(), h.now())
		token = t
		return chooseErr
	}); err != nil {
		return err
	}

	wards, err := h.fetcher.FetchWards(ctx, cmd.DistrictCode(), cmd.Locale())
	if err != nil {
		if errors.Is(err, errs.ErrNetwork) {
			h.logger.WarnContext(ctx, "Failed to load wards",
				"form_id", cmd.FormID().String(),
				"district_code", int(cmd.DistrictCode()),
				"error", err)
			return nil
		}
		return err
	}

	var applied bool
	if _, err = h.store.Update(ctx, cmd.FormID(), func(s *selection.Selection) error {
		applied = s.ApplyWards(token, wards)
		return nil
	}); err != nil {
		return err
	}
	if !applied {
		h.logger.DebugContext(ctx, "Discarded stale ward list",
			"form_id", cmd.FormID().String(), "token", uint64(token))
	}

	return nil
}
