package http

import (
	"errors"
	"net/http"

	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps use-case errors onto HTTP statuses. message is what the
// client sees for unexpected failures.
func (s *Server) respondError(ctx echo.Context, err error, message string) error {
	var validationErr *errs.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return ctx.JSON(http.StatusUnprocessableEntity, toValidationError(validationErr))
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNetwork):
		s.logger.WarnContext(ctx.Request().Context(), "Geography service unavailable", "error", err)
		return errorJSON(ctx, http.StatusBadGateway, "Geography service is unavailable")
	default:
		s.logger.ErrorContext(ctx.Request().Context(), message, "error", err)
		return errorJSON(ctx, http.StatusInternalServerError, message)
	}
}

func errorJSON(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, servers.Error{
		Code:    int32(status), //nolint:gosec // HTTP status codes fit in int32
		Message: message,
	})
}

func toValidationError(err *errs.ValidationError) servers.ValidationError {
	fields := make([]servers.FieldError, 0, len(err.Fields))
	for _, f := range err.Fields {
		fields = append(fields, servers.FieldError{
			Field:   f.Field,
			Tag:     f.Tag,
			Message: f.Message,
		})
	}
	return servers.ValidationError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Fields:  fields,
	}
}
