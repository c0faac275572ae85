package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/selection"
	"storefront/internal/core/ports"
)

// ChooseWardCommandHandler selects the leaf level. No further fetch follows.
type ChooseWardCommandHandler struct {
	store ports.SelectionStore
	now   func() time.Time
}

func NewChooseWardCommandHandler(store ports.SelectionStore) ChooseWardCommandHandler {
	return ChooseWardCommandHandler{store: store, now: time.Now}
}

func (h ChooseWardCommandHandler) Handle(ctx context.Context, cmd ChooseWardCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := h.store.Update(ctx, cmd.FormID(), func(s *selection.Selection) error {
		_, chooseErr := s.ChooseWard(cmd.WardCode(), h.now())
		return chooseErr
	})
	return err
}
