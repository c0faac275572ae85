package queries

import (
	"context"
	"errors"
	"math/rand/v2"

	"storefront/internal/core/domain/model/bird"
	"storefront/internal/core/domain/model/orderstatus"
	"storefront/internal/core/domain/model/profile"
	"storefront/internal/pkg/guard"
	"storefront/internal/pkg/i18n"
)

var (
	ErrRenderBirdCardsQueryIsNotConstructed = errors.New(
		"RenderBirdCardsQuery must be created via NewRenderBirdCardsQuery constructor",
	)
	ErrGetProfileMenuQueryIsNotConstructed = errors.New(
		"GetProfileMenuQuery must be created via NewGetProfileMenuQuery constructor",
	)
	ErrListOrderStatusesQueryIsNotConstructed = errors.New(
		"ListOrderStatusesQuery must be created via NewListOrderStatusesQuery constructor",
	)
)

type RenderBirdCardsQuery struct {
	birds  []*bird.Bird
	locale i18n.Locale
	guard  guard.ConstructorGuard
}

func NewRenderBirdCardsQuery(birds []*bird.Bird, locale i18n.Locale) (RenderBirdCardsQuery, error) {
	for _, b := range birds {
		if err := b.Validate(); err != nil {
			return RenderBirdCardsQuery{}, err
		}
	}
	return RenderBirdCardsQuery{birds: birds, locale: locale, guard: guard.NewConstructorGuard()}, nil
}

func (q RenderBirdCardsQuery) Validate() error {
	return q.guard.Validate(ErrRenderBirdCardsQueryIsNotConstructed)
}

// RenderBirdCardsQueryHandler turns catalogue entries into product cards in
// the order given.
type RenderBirdCardsQueryHandler struct{}

func NewRenderBirdCardsQueryHandler() RenderBirdCardsQueryHandler {
	return RenderBirdCardsQueryHandler{}
}

func (RenderBirdCardsQueryHandler) Handle(_ context.Context, q RenderBirdCardsQuery) ([]bird.Card, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	cards := make([]bird.Card, 0, len(q.birds))
	for _, b := range q.birds {
		card, err := bird.RenderCard(b, q.locale)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// GetProfileMenuQuery builds the account menu. A nil user means anonymous.
type GetProfileMenuQuery struct {
	user   *profile.User
	locale i18n.Locale
	guard  guard.ConstructorGuard
}

func NewGetProfileMenuQuery(user *profile.User, locale i18n.Locale) GetProfileMenuQuery {
	return GetProfileMenuQuery{user: user, locale: locale, guard: guard.NewConstructorGuard()}
}

func (q GetProfileMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileMenuQueryIsNotConstructed)
}

type GetProfileMenuQueryHandler struct {
	newRand func() *rand.Rand
}

// NewGetProfileMenuQueryHandler seeds a fresh generator per request for the
// avatar fallback colour.
func NewGetProfileMenuQueryHandler() GetProfileMenuQueryHandler {
	return GetProfileMenuQueryHandler{
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
}

func (h GetProfileMenuQueryHandler) Handle(_ context.Context, q GetProfileMenuQuery) (profile.Menu, error) {
	if err := q.Validate(); err != nil {
		return profile.Menu{}, err
	}
	return profile.BuildMenu(q.user, q.locale, h.newRand())
}

type ListOrderStatusesQuery struct {
	locale i18n.Locale
	guard  guard.ConstructorGuard
}

func NewListOrderStatusesQuery(locale i18n.Locale) ListOrderStatusesQuery {
	return ListOrderStatusesQuery{locale: locale, guard: guard.NewConstructorGuard()}
}

func (q ListOrderStatusesQuery) Validate() error {
	return q.guard.Validate(ErrListOrderStatusesQueryIsNotConstructed)
}

type ListOrderStatusesQueryHandler struct{}

func NewListOrderStatusesQueryHandler() ListOrderStatusesQueryHandler {
	return ListOrderStatusesQueryHandler{}
}

func (ListOrderStatusesQueryHandler) Handle(_ context.Context, q ListOrderStatusesQuery) ([]orderstatus.Presentation, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	out := make([]orderstatus.Presentation, 0, len(orderstatus.All()))
	for _, s := range orderstatus.All() {
		p, err := orderstatus.Present(s, q.locale)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
