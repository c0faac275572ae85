package http

import (
	"net/http"
	"strings"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/bird"
	"storefront/internal/core/domain/model/profile"
	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// RenderBirdCards handles POST /api/v1/bird-cards.
func (s *Server) RenderBirdCards(ctx echo.Context, params servers.RenderBirdCardsParams) error {
	var body []servers.Bird
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	birds := make([]*bird.Bird, 0, len(body))
	for _, b := range body {
		domainBird, err := toBird(b)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid bird "+b.Id+": "+err.Error())
		}
		birds = append(birds, domainBird)
	}

	query, err := queries.NewRenderBirdCardsQuery(birds, s.locale(ctx, params.Lang))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid birds: "+err.Error())
	}

	cards, err := s.queries.RenderBirdCards.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to render bird cards")
	}

	response := make([]servers.BirdCard, len(cards))
	for i, card := range cards {
		response[i] = toBirdCard(card)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetProfileMenu handles POST /api/v1/profile-menu. A missing user yields the
// signed-out menu.
func (s *Server) GetProfileMenu(ctx echo.Context, params servers.GetProfileMenuParams) error {
	var body servers.ProfileMenuRequest
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	var user *profile.User
	if body.User != nil {
		var err error
		if user, err = toUser(*body.User); err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid user: "+err.Error())
		}
	}

	query := queries.NewGetProfileMenuQuery(user, s.locale(ctx, params.Lang))
	menu, err := s.queries.GetProfileMenu.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to build profile menu")
	}

	return ctx.JSON(http.StatusOK, toProfileMenu(menu))
}

// ListOrderStatuses handles GET /api/v1/order-statuses.
func (s *Server) ListOrderStatuses(ctx echo.Context, params servers.ListOrderStatusesParams) error {
	query := queries.NewListOrderStatusesQuery(s.locale(ctx, params.Lang))

	statuses, err := s.queries.ListOrderStatuses.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to list order statuses")
	}

	response := make([]servers.OrderStatus, len(statuses))
	for i, p := range statuses {
		response[i] = servers.OrderStatus{
			Status:  string(p.Status),
			Label:   p.Label,
			Message: optional(p.Message),
			Variant: string(p.Variant),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func toBird(b servers.Bird) (*bird.Bird, error) {
	sellPrice, err := parsePrice(b.SellPrice)
	if err != nil {
		return nil, err
	}
	breedPrice, err := parsePrice(b.BreedPrice)
	if err != nil {
		return nil, err
	}

	var gender bird.Gender
	if b.Gender != nil {
		gender = bird.Gender(*b.Gender)
	}
	var images []string
	if b.ImageUrls != nil {
		images = *b.ImageUrls
	}

	return bird.NewBird(b.Id, b.Name, bird.Type(b.Type), gender, sellPrice, breedPrice, images)
}

func parsePrice(value *string) (decimal.Decimal, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(strings.TrimSpace(*value))
}

func toUser(u servers.ProfileUser) (*profile.User, error) {
	role := profile.RoleUser
	if u.Role != nil {
		role = profile.Role(*u.Role)
	}
	return profile.NewUser(deref(u.Name), deref(u.Email), deref(u.Image), role)
}
