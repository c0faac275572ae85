package servers

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (POST /api/v1/bird-cards)
	RenderBirdCards(ctx echo.Context, params RenderBirdCardsParams) error
	// (GET /api/v1/delivery-addresses)
	ListDeliveryAddresses(ctx echo.Context, params ListDeliveryAddressesParams) error
	// (POST /api/v1/delivery-forms)
	StartDeliveryForm(ctx echo.Context) error
	// (DELETE /api/v1/delivery-forms/{formId})
	DiscardDeliveryForm(ctx echo.Context, formId FormId) error
	// (GET /api/v1/delivery-forms/{formId})
	GetDeliveryForm(ctx echo.Context, formId FormId) error
	// (PUT /api/v1/delivery-forms/{formId}/district)
	ChooseDistrict(ctx echo.Context, formId FormId, params ChooseDistrictParams) error
	// (PUT /api/v1/delivery-forms/{formId}/province)
	ChooseProvince(ctx echo.Context, formId FormId, params ChooseProvinceParams) error
	// (POST /api/v1/delivery-forms/{formId}/submit)
	SubmitDeliveryForm(ctx echo.Context, formId FormId, params SubmitDeliveryFormParams) error
	// (PUT /api/v1/delivery-forms/{formId}/ward)
	ChooseWard(ctx echo.Context, formId FormId) error
	// (GET /api/v1/geography/districts/{code}/wards)
	ListWards(ctx echo.Context, code AreaCode, params ListWardsParams) error
	// (GET /api/v1/geography/provinces)
	ListProvinces(ctx echo.Context, params ListProvincesParams) error
	// (GET /api/v1/geography/provinces/{code}/districts)
	ListDistricts(ctx echo.Context, code AreaCode, params ListDistrictsParams) error
	// (GET /api/v1/order-statuses)
	ListOrderStatuses(ctx echo.Context, params ListOrderStatusesParams) error
	// (POST /api/v1/profile-menu)
	GetProfileMenu(ctx echo.Context, params GetProfileMenuParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) RenderBirdCards(ctx echo.Context) error {
	var params RenderBirdCardsParams
	if err := bindLang(ctx, &params.Lang); err != nil {
		return err
	}
	return w.Handler.RenderBirdCards(ctx, params)
}

func (w *ServerInterfaceWrapper) ListDeliveryAddresses(ctx echo.Context) error {
	var err error

	var params ListDeliveryAddressesParams
	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.ListDeliveryAddresses(ctx, params)
}

func (w *ServerInterfaceWrapper) StartDeliveryForm(ctx echo.Context) error {
	return w.Handler.StartDeliveryForm(ctx)
}

func (w *ServerInterfaceWrapper) DiscardDeliveryForm(ctx echo.Context) error {
	formId, err := bindFormID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DiscardDeliveryForm(ctx, formId)
}

func (w *ServerInterfaceWrapper) GetDeliveryForm(ctx echo.Context) error {
	formId, err := bindFormID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetDeliveryForm(ctx, formId)
}

func (w *ServerInterfaceWrapper) ChooseDistrict(ctx echo.Context) error {
	formId, err := bindFormID(ctx)
	if err != nil {
		return err
	}

	var params ChooseDistrictParams
	if err := bindLang(ctx, &params.Lang); err != nil {
		return err
	}
	return w.Handler.ChooseDistrict(ctx, formId, params)
}

func (w *ServerInterfaceWrapper) ChooseProvince(ctx echo.Context) error {
	formId, err := bindFormID(ctx)
	if err != nil {
		return err
	}

	var params ChooseProvinceParams
	if err := bindLang(ctx, &params.Lang); err != nil {
		return err
	}
	return w.Handler.ChooseProvince(ctx, formId, params)
}

func (w *ServerInterfaceWrapper) SubmitDeliveryForm(ctx echo.Context) error {
	formId, err := bindFormID(ctx)
	if err != nil {
		return err
	}

	var params SubmitDeliveryFormParams
	if err := bindLang(ctx, &params.Lang); err != nil {
		return err
	}
	return w.Handler.SubmitDeliveryForm(ctx, formId, params)
}

func (w *ServerInterfaceWrapper) ChooseWard(ctx echo.Context) error {
	formId, err := bindFormID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ChooseWard(ctx, formId)
}

func (w *ServerInterfaceWrapper) ListWards(ctx echo.Context) error {
	code, err := bindAreaCode(ctx)
	if err != nil {
		return err
	}

	var params ListWardsParams
	if err := bindLang(ctx, &params.Lang); err != nil {
		return err
	}
	return w.Handler.ListWards(ctx, code, params)
}

func (w *ServerInterfaceWrapper) ListProvinces(ctx echo.Context) error {
	var params ListProvincesParams
	if err := bindLang(ctx, &params.Lang); err != nil {
		return err
	}
	return w.Handler.ListProvinces(ctx, params)
}

func (w *ServerInterfaceWrapper) ListDistricts(ctx echo.Context) error {
	code, err := bindAreaCode(ctx)
	if err != nil {
		return err
	}

	var params ListDistrictsParams
	if err := bindLang(ctx, &params.Lang); err != nil {
		return err
	}
	return w.Handler.ListDistricts(ctx, code, params)
}

func (w *ServerInterfaceWrapper) ListOrderStatuses(ctx echo.Context) error {
	var params ListOrderStatusesParams
	if err := bindLang(ctx, &params.Lang); err != nil {
		return err
	}
	return w.Handler.ListOrderStatuses(ctx, params)
}

func (w *ServerInterfaceWrapper) GetProfileMenu(ctx echo.Context) error {
	var params GetProfileMenuParams
	if err := bindLang(ctx, &params.Lang); err != nil {
		return err
	}
	return w.Handler.GetProfileMenu(ctx, params)
}

func bindFormID(ctx echo.Context) (FormId, error) {
	var formId FormId

	err := runtime.BindStyledParameterWithOptions("simple", "formId", ctx.Param("formId"), &formId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return formId, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter formId: %s", err))
	}
	return formId, nil
}

func bindAreaCode(ctx echo.Context) (AreaCode, error) {
	var code AreaCode

	err := runtime.BindStyledParameterWithOptions("simple", "code", ctx.Param("code"), &code,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return code, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter code: %s", err))
	}
	return code, nil
}

func bindLang(ctx echo.Context, dest **Lang) error {
	err := runtime.BindQueryParameter("form", true, false, "lang", ctx.QueryParams(), dest)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter lang: %s", err))
	}
	return nil
}

// EchoRouter is the subset of echo routing RegisterHandlers needs. Both
// *echo.Echo and *echo.Group implement it.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers, and prepends baseURL to
// the paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/bird-cards", wrapper.RenderBirdCards)
	router.GET(baseURL+"/api/v1/delivery-addresses", wrapper.ListDeliveryAddresses)
	router.POST(baseURL+"/api/v1/delivery-forms", wrapper.StartDeliveryForm)
	router.DELETE(baseURL+"/api/v1/delivery-forms/:formId", wrapper.DiscardDeliveryForm)
	router.GET(baseURL+"/api/v1/delivery-forms/:formId", wrapper.GetDeliveryForm)
	router.PUT(baseURL+"/api/v1/delivery-forms/:formId/district", wrapper.ChooseDistrict)
	router.PUT(baseURL+"/api/v1/delivery-forms/:formId/province", wrapper.ChooseProvince)
	router.POST(baseURL+"/api/v1/delivery-forms/:formId/submit", wrapper.SubmitDeliveryForm)
	router.PUT(baseURL+"/api/v1/delivery-forms/:formId/ward", wrapper.ChooseWard)
	router.GET(baseURL+"/api/v1/geography/districts/:code/wards", wrapper.ListWards)
	router.GET(baseURL+"/api/v1/geography/provinces", wrapper.ListProvinces)
	router.GET(baseURL+"/api/v1/geography/provinces/:code/districts", wrapper.ListDistricts)
	router.GET(baseURL+"/api/v1/order-statuses", wrapper.ListOrderStatuses)
	router.POST(baseURL+"/api/v1/profile-menu", wrapper.GetProfileMenu)
}

//go:embed openapi.yaml
var rawSpec []byte

// RawSpec returns the OpenAPI document as written.
func RawSpec() []byte {
	return rawSpec
}

// GetSwagger returns the parsed and validated OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	swagger, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	if err := swagger.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("error validating Swagger: %w", err)
	}
	return swagger, nil
}
