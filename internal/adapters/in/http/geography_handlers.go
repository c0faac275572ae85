package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/geography"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListProvinces handles GET /api/v1/geography/provinces.
func (s *Server) ListProvinces(ctx echo.Context, params servers.ListProvincesParams) error {
	query := queries.NewListProvincesQuery(s.locale(ctx, params.Lang))

	provinces, err := s.queries.Geography.HandleProvinces(ctx.Request().Context(), query)
	return s.respondAreas(ctx, provinces, err, "Failed to retrieve provinces")
}

// ListDistricts handles GET /api/v1/geography/provinces/{code}/districts.
func (s *Server) ListDistricts(ctx echo.Context, code servers.AreaCode, params servers.ListDistrictsParams) error {
	query, err := queries.NewListDistrictsQuery(geography.Code(code), s.locale(ctx, params.Lang))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid province code: "+err.Error())
	}

	districts, err := s.queries.Geography.HandleDistricts(ctx.Request().Context(), query)
	return s.respondAreas(ctx, districts, err, "Failed to retrieve districts")
}

// ListWards handles GET /api/v1/geography/districts/{code}/wards.
func (s *Server) ListWards(ctx echo.Context, code servers.AreaCode, params servers.ListWardsParams) error {
	query, err := queries.NewListWardsQuery(geography.Code(code), s.locale(ctx, params.Lang))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid district code: "+err.Error())
	}

	wards, err := s.queries.Geography.HandleWards(ctx.Request().Context(), query)
	return s.respondAreas(ctx, wards, err, "Failed to retrieve wards")
}

// respondAreas answers an unreachable geography service with an empty list;
// the dropdown stays empty and the failure is only logged.
func (s *Server) respondAreas(ctx echo.Context, areas []queries.AreaResponse, err error, message string) error {
	if errors.Is(err, errs.ErrNetwork) {
		s.logger.WarnContext(ctx.Request().Context(), message,
			"path", ctx.Path(),
			"error", err)
		return ctx.JSON(http.StatusOK, []servers.Area{})
	}
	if err != nil {
		return s.respondError(ctx, err, message)
	}

	return ctx.JSON(http.StatusOK, toAreas(areas))
}
