package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/geography"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// StartDeliveryForm handles POST /api/v1/delivery-forms - opens an empty form.
func (s *Server) StartDeliveryForm(ctx echo.Context) error {
	var body servers.NewDeliveryForm
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	formID := s.newID()
	cmd, err := commands.NewStartDeliveryFormCommand(formID, delivery.Variant(body.Variant))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid delivery form: "+err.Error())
	}

	if err := s.commands.StartDeliveryForm.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to open delivery form")
	}

	return s.respondForm(ctx, http.StatusCreated, formID)
}

// GetDeliveryForm handles GET /api/v1/delivery-forms/{formId}.
func (s *Server) GetDeliveryForm(ctx echo.Context, formId servers.FormId) error {
	id, err := kernel.UUIDFromString(formId.String())
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid form id")
	}
	return s.respondForm(ctx, http.StatusOK, id)
}

// DiscardDeliveryForm handles DELETE /api/v1/delivery-forms/{formId}.
func (s *Server) DiscardDeliveryForm(ctx echo.Context, formId servers.FormId) error {
	id, err := kernel.UUIDFromString(formId.String())
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid form id")
	}

	cmd, err := commands.NewDiscardDeliveryFormCommand(id)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid form id: "+err.Error())
	}

	if err := s.commands.DiscardDeliveryForm.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to discard delivery form")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChooseProvince handles PUT /api/v1/delivery-forms/{formId}/province.
func (s *Server) ChooseProvince(ctx echo.Context, formId servers.FormId, params servers.ChooseProvinceParams) error {
	id, code, err := s.bindChoice(ctx, formId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChooseProvinceCommand(id, code, s.locale(ctx, params.Lang))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid province choice: "+err.Error())
	}

	if err := s.commands.ChooseProvince.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to choose province")
	}

	return s.respondForm(ctx, http.StatusOK, id)
}

// ChooseDistrict handles PUT /api/v1/delivery-forms/{formId}/district.
func (s *Server) ChooseDistrict(ctx echo.Context, formId servers.FormId, params servers.ChooseDistrictParams) error {
	id, code, err := s.bindChoice(ctx, formId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChooseDistrictCommand(id, code, s.locale(ctx, params.Lang))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid district choice: "+err.Error())
	}

	if err := s.commands.ChooseDistrict.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to choose district")
	}

	return s.respondForm(ctx, http.StatusOK, id)
}

// ChooseWard handles PUT /api/v1/delivery-forms/{formId}/ward.
func (s *Server) ChooseWard(ctx echo.Context, formId servers.FormId) error {
	id, code, err := s.bindChoice(ctx, formId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChooseWardCommand(id, code)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid ward choice: "+err.Error())
	}

	if err := s.commands.ChooseWard.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to choose ward")
	}

	return s.respondForm(ctx, http.StatusOK, id)
}

// SubmitDeliveryForm handles POST /api/v1/delivery-forms/{formId}/submit.
// Field errors come back as 422 and leave the form open.
func (s *Server) SubmitDeliveryForm(
	ctx echo.Context,
	formId servers.FormId,
	params servers.SubmitDeliveryFormParams,
) error {
	id, err := kernel.UUIDFromString(formId.String())
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid form id")
	}

	var body servers.DeliveryFields
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSubmitDeliveryFormCommand(id, s.newID(), toFields(body), s.locale(ctx, params.Lang))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid submission: "+err.Error())
	}

	result, err := s.commands.SubmitDeliveryForm.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to submit delivery form")
	}

	return ctx.JSON(http.StatusOK, toSubmitResult(result))
}

// ListDeliveryAddresses handles GET /api/v1/delivery-addresses.
func (s *Server) ListDeliveryAddresses(ctx echo.Context, params servers.ListDeliveryAddressesParams) error {
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewListDeliveryAddressesQuery(limit)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid limit: "+err.Error())
	}

	addresses, err := s.queries.ListDeliveryAddresses.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve delivery addresses")
	}

	response := make([]servers.DeliveryAddress, len(addresses))
	for i, a := range addresses {
		response[i] = servers.DeliveryAddress{
			Id:        a.ID.Bytes(),
			Info:      toDeliveryInfo(a.Info),
			CreatedAt: a.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) bindChoice(ctx echo.Context, formId servers.FormId) (kernel.UUID, geography.Code, error) {
	id, err := kernel.UUIDFromString(formId.String())
	if err != nil {
		return kernel.UUID{}, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid form id")
	}

	var body servers.AreaChoice
	if err := ctx.Bind(&body); err != nil {
		return kernel.UUID{}, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	return id, geography.Code(body.Code), nil
}

func (s *Server) respondForm(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetDeliveryFormQuery(id)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid form id: "+err.Error())
	}

	form, err := s.queries.GetDeliveryForm.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve delivery form")
	}

	return ctx.JSON(status, toDeliveryForm(form))
}
