package model

type CreateSessionDTO struct {
	Lang string `json:"lang" validate:"omitempty,oneof=en ko de ja fr ar ru es zh"`
	Unit string `json:"unit" validate:"omitempty,oneof=C F"`
}

type SearchDTO struct {
	Query      string            `json:"query" validate:"required_without=Lat,omitempty,max=120"`
	Lat        *float64          `json:"lat" validate:"required_with=Lon,omitempty,min=-90,max=90"`
	Lon        *float64          `json:"lon" validate:"required_with=Lat,omitempty,min=-180,max=180"`
	Name       string            `json:"name" validate:"omitempty,max=120"`
	LocalNames map[string]string `json:"localNames"`
	Country    string            `json:"country" validate:"omitempty,max=120"`
	Source     string            `json:"source" validate:"omitempty,oneof=typed autocomplete geolocation map"`
}

type LanguageDTO struct {
	Lang string `json:"lang" validate:"required,oneof=en ko de ja fr ar ru es zh"`
}

type UnitDTO struct {
	Unit string `json:"unit" validate:"required,oneof=C F"`
}

type GeolocationDTO struct {
	Lat   *float64 `json:"lat" validate:"required_without=Error,omitempty,min=-90,max=90"`
	Lon   *float64 `json:"lon" validate:"required_with=Lat,omitempty,min=-180,max=180"`
	Error string   `json:"error" validate:"omitempty,oneof=denied unavailable unsupported"`
}
