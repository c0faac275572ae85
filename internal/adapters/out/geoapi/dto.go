package geoapi

// provinceDTO is one entry of GET /p/ and the body of GET /p/{code}?depth=2.
type provinceDTO struct {
	Code         int           `json:"code"`
	Name         string        `json:"name"`
	DivisionType string        `json:"division_type,omitempty"`
	Codename     string        `json:"codename,omitempty"`
	PhoneCode    int           `json:"phone_code,omitempty"`
	Districts    []districtDTO `json:"districts"`
}

// districtDTO is the body of GET /d/{code}?depth=2.
type districtDTO struct {
	Code         int       `json:"code"`
	Name         string    `json:"name"`
	DivisionType string    `json:"division_type,omitempty"`
	Codename     string    `json:"codename,omitempty"`
	ProvinceCode int       `json:"province_code"`
	Wards        []wardDTO `json:"wards"`
}

type wardDTO struct {
	Code         int    `json:"code"`
	Name         string `json:"name"`
	DivisionType string `json:"division_type,omitempty"`
	Codename     string `json:"codename,omitempty"`
	DistrictCode int    `json:"district_code"`
}
