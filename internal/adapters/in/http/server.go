package http

import (
	"log/slog"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/i18n"

	"github.com/labstack/echo/v4"
)

// CommandHandlers groups the state-changing use cases the API exposes.
type CommandHandlers struct {
	StartDeliveryForm   commands.StartDeliveryFormCommandHandler
	ChooseProvince      commands.ChooseProvinceCommandHandler
	ChooseDistrict      commands.ChooseDistrictCommandHandler
	ChooseWard          commands.ChooseWardCommandHandler
	SubmitDeliveryForm  commands.SubmitDeliveryFormCommandHandler
	DiscardDeliveryForm commands.DiscardDeliveryFormCommandHandler
}

// QueryHandlers groups the read-only use cases the API exposes.
type QueryHandlers struct {
	Geography             queries.GeographyQueryHandler
	GetDeliveryForm       queries.GetDeliveryFormQueryHandler
	ListDeliveryAddresses queries.ListDeliveryAddressesQueryHandler
	RenderBirdCards       queries.RenderBirdCardsQueryHandler
	GetProfileMenu        queries.GetProfileMenuQueryHandler
	ListOrderStatuses     queries.ListOrderStatusesQueryHandler
}

// Server implements servers.ServerInterface on top of the use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers

	defaultLocale i18n.Locale
	newID         func() kernel.UUID
	logger        *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer wires the handlers. defaultLocale is used when a request names
// no language at all.
func NewServer(
	commandHandlers CommandHandlers,
	queryHandlers QueryHandlers,
	defaultLocale i18n.Locale,
	logger *slog.Logger,
) *Server {
	return &Server{
		commands:      commandHandlers,
		queries:       queryHandlers,
		defaultLocale: defaultLocale,
		newID:         kernel.NewUUID,
		logger:        logger.With("component", "http_server"),
	}
}

// locale resolves the request language from the lang parameter, then
// Accept-Language, then the server default.
func (s *Server) locale(ctx echo.Context, lang *string) i18n.Locale {
	explicit := ""
	if lang != nil {
		explicit = *lang
	}
	accept := ctx.Request().Header.Get("Accept-Language")
	if explicit == "" && accept == "" {
		return s.defaultLocale
	}
	return i18n.NewLocale(i18n.ResolveTag(explicit, accept), s.defaultLocale.Location())
}
