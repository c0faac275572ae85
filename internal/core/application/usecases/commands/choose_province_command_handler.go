package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/geography"
	"storefront/internal/core/domain/model/selection"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// ChooseProvinceCommandHandler selects a province and loads its districts.
//
// The province is looked up in the current province list, the selection is
// moved to it under a new token, and the districts are fetched without holding
// the session. The list is applied only if no later choice superseded it.
// A network failure while loading districts leaves the list empty and is only
// logged.
type ChooseProvinceCommandHandler struct {
	store   ports.SelectionStore
	fetcher LocationFetcher
	cascade services.SelectionCascade
	logger  *slog.Logger
	now     func() time.Time
}

func NewChooseProvinceCommandHandler(
	store ports.SelectionStore,
	fetcher LocationFetcher,
	logger *slog.Logger,
) ChooseProvinceCommandHandler {
	return ChooseProvinceCommandHandler{
		store:   store,
		fetcher: fetcher,
		cascade: services.NewSelectionCascade(),
		logger:  logger.With("component", "choose_province_handler"),
		now:     time.Now,
	}
}

func (h ChooseProvinceCommandHandler) Handle(ctx context.Context, cmd ChooseProvinceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	provinces, err := h.fetcher.FetchProvinces(ctx, cmd.Locale())
	if err != nil {
		return err
	}

	var token selection.Token
	if _, err = h.store.Update(ctx, cmd.FormID(), func(s *selection.Selection) error {
		_, t, chooseErr := h.cascade.ChooseProvince(s, provinces, cmd.ProvinceCode(), h.now())
		token = t
		return chooseErr
	}); err != nil {
		return err
	}

	districts, err := h.fetcher.FetchDistricts(ctx, cmd.ProvinceCode(), cmd.Locale())
	if err != nil {
		if errors.Is(err, errs.ErrNetwork) {
			h.logger.WarnContext(ctx, "Failed to load districts",
				"form_id", cmd.FormID().String(),
				"province_code", int(cmd.ProvinceCode()),
				"error", err)
			return nil
		}
		return err
	}

	return h.apply(ctx, cmd, token, districts)
}

func (h ChooseProvinceCommandHandler) apply(
	ctx context.Context,
	cmd ChooseProvinceCommand,
	token selection.Token,
	districts []geography.District,
) error {
	var applied bool
	_, err := h.store.Update(ctx, cmd.FormID(), func(s *selection.Selection) error {
		applied = s.ApplyDistricts(token, districts)
		return nil
	})
	if err != nil {
		return err
	}
	if !applied {
		h.logger.DebugContext(ctx, "Discarded stale district list",
			"form_id", cmd.FormID().String(), "token", uint64(token))
	}
	return nil
}
