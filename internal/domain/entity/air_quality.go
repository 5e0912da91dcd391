package entity

const (
	AQIScaleUSEPA = "us-epa"
	AQIScaleOWM   = "owm"
)

type AirQuality struct {
	Index    *int   `json:"index,omitempty"`
	Scale    string `json:"scale"`
	Provider string `json:"provider"`
}
