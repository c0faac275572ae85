package delivery

// Location carries the selected area names. Empty strings mean "not chosen".
type Location struct {
	Province string
	District string
	Ward     string
}

// Fields are the values typed by the buyer.
type Fields struct {
	Receiver    string
	PhoneNumber string
	Address     string
	Notice      string
	Type        string
}

// Info is a validated delivery record. Values are only produced by Binder.Bind
// or restored from storage.
type Info struct {
	Receiver    string      `json:"receiver" validate:"required,max=255"`
	PhoneNumber string      `json:"phoneNumber" validate:"required,max=20"`
	Province    string      `json:"province" validate:"required,max=255"`
	District    string      `json:"district" validate:"required,max=255"`
	Ward        string      `json:"ward" validate:"required,max=255"`
	Address     string      `json:"address" validate:"required,max=255"`
	Notice      string      `json:"notice,omitempty" validate:"max=1000"`
	Type        PaymentType `json:"type,omitempty" validate:"omitempty,oneof=cod online"`
}
