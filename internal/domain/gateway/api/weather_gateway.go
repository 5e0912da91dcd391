package api

import (
	"context"
	"fmt"
	"strings"
	"time"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/locale"
	"weather-dashboard/pkg/http"
)

// WeatherGateway defines the interface for weather-related external API calls.
// Implementations normalize provider payloads: temperatures in °C, wind in km/h, icons as absolute URLs.
type WeatherGateway interface {
	// Name returns the configured provider name
	Name() string

	// GetCurrentConditions gets current conditions, today's min/max, alerts and astronomy when the provider has them
	GetCurrentConditions(ctx context.Context, coord entity.Coordinates, lang string) (*entity.CurrentConditions, error)

	// GetForecast gets daily points and the next hourly points after the location's local now
	GetForecast(ctx context.Context, coord entity.Coordinates, lang string) (*entity.ForecastBundle, error)

	// GetAirQuality gets the provider-native air-quality ordinal, passed through unchanged
	GetAirQuality(ctx context.Context, coord entity.Coordinates) (*entity.AirQuality, error)

	// SearchCities geocodes a free-text query; an empty result is not an error
	SearchCities(ctx context.Context, query string, lang string) ([]entity.GeocodeResult, error)
}

const (
	DefaultHourlyLimit  = 5
	DefaultForecastDays = 7
)

// Config selects and configures the provider behind a WeatherGateway
type Config struct {
	Provider      string
	BaseURL       string
	APIKey        string
	HourlyLimit   int
	ForecastDays  int
	ClientOptions http.ClientOptions

	// Clock supplies "now" for providers that do not report the location's local time
	Clock func() time.Time
}

func (c Config) withDefaults() Config {
	if c.HourlyLimit <= 0 {
		c.HourlyLimit = DefaultHourlyLimit
	}
	if c.ForecastDays <= 0 {
		c.ForecastDays = DefaultForecastDays
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	return c
}

// NewWeatherGateway creates the WeatherGateway named by config.Provider
func NewWeatherGateway(config Config) (WeatherGateway, error) {
	switch strings.ToLower(strings.TrimSpace(config.Provider)) {
	case locale.ProviderWeatherAPI, "":
		return NewWeatherAPIGateway(config), nil
	case locale.ProviderOpenWeatherMap:
		return NewOpenWeatherGateway(config), nil
	default:
		return nil, fmt.Errorf("unknown weather provider %q", config.Provider)
	}
}
