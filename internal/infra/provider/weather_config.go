package provider

import (
	"time"

	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/locale"
	"weather-dashboard/internal/infra/httplog"
	"weather-dashboard/pkg/http"
	"weather-dashboard/pkg/resource"
)

const defaultTimeout = 10 * time.Second

// WeatherGatewayConfig reads the weather.* properties into a gateway configuration
// whose upstream calls are logged and measured under the provider name.
func WeatherGatewayConfig() api.Config {
	name := resource.GetStringOrDefault("weather.provider", locale.ProviderWeatherAPI)
	timeout := resource.GetDurationOrDefault("weather.timeout", defaultTimeout)

	return api.Config{
		Provider:     name,
		BaseURL:      resource.GetString("weather.base-url"),
		APIKey:       resource.GetString("weather.api-key"),
		HourlyLimit:  resource.GetIntOrDefault("weather.hourly-limit", api.DefaultHourlyLimit),
		ForecastDays: resource.GetIntOrDefault("weather.forecast-days", api.DefaultForecastDays),
		ClientOptions: http.ClientOptions{
			DefaultContentType: "application/json",
			ConnectionTimeout:  timeout,
			ReadTimeout:        timeout,
			Logger:             httplog.New(name),
		},
	}
}

// NewWeatherGateway builds the configured provider gateway
func NewWeatherGateway() (api.WeatherGateway, error) {
	return api.NewWeatherGateway(WeatherGatewayConfig())
}
