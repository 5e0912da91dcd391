package entity

import "time"

type SessionState string

const (
	StateIdle    SessionState = "IDLE"
	StateLoading SessionState = "LOADING"
	StateSuccess SessionState = "SUCCESS"
	StateError   SessionState = "ERROR"
)

type TemperatureUnit string

const (
	UnitCelsius    TemperatureUnit = "C"
	UnitFahrenheit TemperatureUnit = "F"
)

type Session struct {
	ID           string          `json:"id"`
	Lang         string          `json:"lang"`
	Unit         TemperatureUnit `json:"unit"`
	State        SessionState    `json:"state"`
	Loading      bool            `json:"loading"`
	LastSearch   *SearchRequest  `json:"lastSearch,omitempty"`
	Report       *WeatherReport  `json:"report,omitempty"`
	ErrorMessage string          `json:"errorMessage,omitempty"`
	Generation   uint64          `json:"generation"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
