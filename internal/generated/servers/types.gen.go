// Package servers holds the HTTP contract of the storefront API in the layout
// oapi-codegen emits for echo: models, parameter structs, the ServerInterface
// and its binding wrapper. openapi.yaml in this package is the source of truth.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for BirdType.
const (
	BirdTypeBreed BirdType = "breed"
	BirdTypeSell  BirdType = "sell"
)

// Defines values for BirdGender.
const (
	BirdGenderFemale BirdGender = "female"
	BirdGenderMale   BirdGender = "male"
)

// Defines values for DeliveryFormStage.
const (
	DeliveryFormStageDistrictChosen DeliveryFormStage = "district_chosen"
	DeliveryFormStageEmpty          DeliveryFormStage = "empty"
	DeliveryFormStageProvinceChosen DeliveryFormStage = "province_chosen"
	DeliveryFormStageWardChosen     DeliveryFormStage = "ward_chosen"
)

// Defines values for DeliveryVariant.
const (
	DeliveryVariantAddAddress DeliveryVariant = "add_address"
	DeliveryVariantCheckout   DeliveryVariant = "checkout"
)

// Defines values for PaymentType.
const (
	PaymentTypeCod    PaymentType = "cod"
	PaymentTypeOnline PaymentType = "online"
)

// Defines values for ProfileUserRole.
const (
	ProfileUserRoleAdmin ProfileUserRole = "admin"
	ProfileUserRoleUser  ProfileUserRole = "user"
)

// Area defines model for Area.
type Area struct {
	Code       int    `json:"code"`
	Name       string `json:"name"`
	ParentCode *int   `json:"parentCode,omitempty"`
}

// AreaChoice defines model for AreaChoice.
type AreaChoice struct {
	Code int `json:"code"`
}

// Bird defines model for Bird.
type Bird struct {
	BreedPrice *string     `json:"breedPrice,omitempty"`
	Gender     *BirdGender `json:"gender,omitempty"`
	Id         string      `json:"id"`
	ImageUrls  *[]string   `json:"imageUrls,omitempty"`
	Name       string      `json:"name"`
	SellPrice  *string     `json:"sellPrice,omitempty"`
	Type       BirdType    `json:"type"`
}

// BirdGender defines model for Bird.Gender.
type BirdGender string

// BirdType defines model for Bird.Type.
type BirdType string

// BirdCard defines model for BirdCard.
type BirdCard struct {
	Actions     []BirdCardAction `json:"actions"`
	Gender      *string          `json:"gender,omitempty"`
	GenderLabel *string          `json:"genderLabel,omitempty"`
	HasImage    bool             `json:"hasImage"`
	Id          string           `json:"id"`
	Image       string           `json:"image"`
	Link        string           `json:"link"`
	Price       string           `json:"price"`
	PriceLabel  string           `json:"priceLabel"`
	Title       string           `json:"title"`
	Type        string           `json:"type"`
	TypeLabel   string           `json:"typeLabel"`
}

// BirdCardAction defines model for BirdCardAction.
type BirdCardAction struct {
	Kind    string  `json:"kind"`
	Label   string  `json:"label"`
	Primary bool    `json:"primary"`
	Toast   *string `json:"toast,omitempty"`
}

// DeliveryAddress defines model for DeliveryAddress.
type DeliveryAddress struct {
	CreatedAt time.Time          `json:"createdAt"`
	Id        openapi_types.UUID `json:"id"`
	Info      DeliveryInfo       `json:"info"`
}

// DeliveryFields defines model for DeliveryFields.
type DeliveryFields struct {
	Address     *string      `json:"address,omitempty"`
	Notice      *string      `json:"notice,omitempty"`
	PhoneNumber *string      `json:"phoneNumber,omitempty"`
	Receiver    *string      `json:"receiver,omitempty"`
	Type        *PaymentType `json:"type,omitempty"`
}

// DeliveryForm defines model for DeliveryForm.
type DeliveryForm struct {
	District  *Area              `json:"district,omitempty"`
	Districts []Area             `json:"districts"`
	Id        openapi_types.UUID `json:"id"`
	Location  Location           `json:"location"`
	Province  *Area              `json:"province,omitempty"`
	Stage     DeliveryFormStage  `json:"stage"`
	TouchedAt time.Time          `json:"touchedAt"`
	Variant   DeliveryVariant    `json:"variant"`
	Ward      *Area              `json:"ward,omitempty"`
	Wards     []Area             `json:"wards"`
}

// DeliveryFormStage defines model for DeliveryForm.Stage.
type DeliveryFormStage string

// DeliveryInfo defines model for DeliveryInfo.
type DeliveryInfo struct {
	Address     string       `json:"address"`
	District    string       `json:"district"`
	Notice      *string      `json:"notice,omitempty"`
	PhoneNumber string       `json:"phoneNumber"`
	Province    string       `json:"province"`
	Receiver    string       `json:"receiver"`
	Type        *PaymentType `json:"type,omitempty"`
	Ward        string       `json:"ward"`
}

// DeliveryVariant defines model for DeliveryForm.Variant.
type DeliveryVariant string

// Error defines model for Error.
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// FieldError defines model for FieldError.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag"`
}

// Location defines model for Location.
type Location struct {
	District string `json:"district"`
	Province string `json:"province"`
	Ward     string `json:"ward"`
}

// NewDeliveryForm defines model for NewDeliveryForm.
type NewDeliveryForm struct {
	Variant DeliveryVariant `json:"variant"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus struct {
	Label   string  `json:"label"`
	Message *string `json:"message,omitempty"`
	Status  string  `json:"status"`
	Variant string  `json:"variant"`
}

// PaymentType defines model for DeliveryFields.Type.
type PaymentType string

// ProfileMenu defines model for ProfileMenu.
type ProfileMenu struct {
	Authenticated bool               `json:"authenticated"`
	Header        *ProfileMenuHeader `json:"header,omitempty"`
	Items         []ProfileMenuItem  `json:"items"`
	Label         string             `json:"label"`
}

// ProfileMenuHeader defines model for ProfileMenuHeader.
type ProfileMenuHeader struct {
	AvatarUrl     string `json:"avatarUrl"`
	Email         string `json:"email"`
	FallbackColor string `json:"fallbackColor"`
	Name          string `json:"name"`
}

// ProfileMenuItem defines model for ProfileMenuItem.
type ProfileMenuItem struct {
	Href            *string `json:"href,omitempty"`
	Kind            string  `json:"kind"`
	Label           string  `json:"label"`
	SeparatorBefore *bool   `json:"separatorBefore,omitempty"`
}

// ProfileMenuRequest defines model for ProfileMenuRequest.
type ProfileMenuRequest struct {
	User *ProfileUser `json:"user,omitempty"`
}

// ProfileUser defines model for ProfileUser.
type ProfileUser struct {
	Email *string          `json:"email,omitempty"`
	Image *string          `json:"image,omitempty"`
	Name  *string          `json:"name,omitempty"`
	Role  *ProfileUserRole `json:"role,omitempty"`
}

// ProfileUserRole defines model for ProfileUser.Role.
type ProfileUserRole string

// SubmitResult defines model for SubmitResult.
type SubmitResult struct {
	AddressId *openapi_types.UUID `json:"addressId,omitempty"`
	Info      DeliveryInfo        `json:"info"`
	Variant   DeliveryVariant     `json:"variant"`
}

// ValidationError defines model for ValidationError.
type ValidationError struct {
	Code    int32        `json:"code"`
	Fields  []FieldError `json:"fields"`
	Message string       `json:"message"`
}

// AreaCode defines model for AreaCode.
type AreaCode = int

// FormId defines model for FormId.
type FormId = openapi_types.UUID

// Lang defines model for Lang.
type Lang = string

// ListProvincesParams defines parameters for ListProvinces.
type ListProvincesParams struct {
	// Lang BCP 47 language; overrides Accept-Language.
	Lang *Lang `form:"lang,omitempty" json:"lang,omitempty"`
}

// ListDistrictsParams defines parameters for ListDistricts.
type ListDistrictsParams struct {
	Lang *Lang `form:"lang,omitempty" json:"lang,omitempty"`
}

// ListWardsParams defines parameters for ListWards.
type ListWardsParams struct {
	Lang *Lang `form:"lang,omitempty" json:"lang,omitempty"`
}

// ChooseProvinceParams defines parameters for ChooseProvince.
type ChooseProvinceParams struct {
	Lang *Lang `form:"lang,omitempty" json:"lang,omitempty"`
}

// ChooseDistrictParams defines parameters for ChooseDistrict.
type ChooseDistrictParams struct {
	Lang *Lang `form:"lang,omitempty" json:"lang,omitempty"`
}

// SubmitDeliveryFormParams defines parameters for SubmitDeliveryForm.
type SubmitDeliveryFormParams struct {
	Lang *Lang `form:"lang,omitempty" json:"lang,omitempty"`
}

// ListDeliveryAddressesParams defines parameters for ListDeliveryAddresses.
type ListDeliveryAddressesParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// RenderBirdCardsParams defines parameters for RenderBirdCards.
type RenderBirdCardsParams struct {
	Lang *Lang `form:"lang,omitempty" json:"lang,omitempty"`
}

// GetProfileMenuParams defines parameters for GetProfileMenu.
type GetProfileMenuParams struct {
	Lang *Lang `form:"lang,omitempty" json:"lang,omitempty"`
}

// ListOrderStatusesParams defines parameters for ListOrderStatuses.
type ListOrderStatusesParams struct {
	Lang *Lang `form:"lang,omitempty" json:"lang,omitempty"`
}

// StartDeliveryFormJSONRequestBody defines body for StartDeliveryForm for application/json ContentType.
type StartDeliveryFormJSONRequestBody = NewDeliveryForm

// ChooseProvinceJSONRequestBody defines body for ChooseProvince for application/json ContentType.
type ChooseProvinceJSONRequestBody = AreaChoice

// ChooseDistrictJSONRequestBody defines body for ChooseDistrict for application/json ContentType.
type ChooseDistrictJSONRequestBody = AreaChoice

// ChooseWardJSONRequestBody defines body for ChooseWard for application/json ContentType.
type ChooseWardJSONRequestBody = AreaChoice

// SubmitDeliveryFormJSONRequestBody defines body for SubmitDeliveryForm for application/json ContentType.
type SubmitDeliveryFormJSONRequestBody = DeliveryFields

// RenderBirdCardsJSONRequestBody defines body for RenderBirdCards for application/json ContentType.
type RenderBirdCardsJSONRequestBody = []Bird

// GetProfileMenuJSONRequestBody defines body for GetProfileMenu for application/json ContentType.
type GetProfileMenuJSONRequestBody = ProfileMenuRequest
