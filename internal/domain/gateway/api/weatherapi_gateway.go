package api

import (
	"context"
	"strconv"
	"strings"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/locale"
	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/pkg/http"
)

const weatherAPIBaseURL = "https://api.weatherapi.com/v1"

// weatherAPIGateway implements WeatherGateway on top of WeatherAPI.com.
// Current conditions and forecast both come from forecast.json, keyed by "lat,lon".
type weatherAPIGateway struct {
	httpClient   *http.Client
	apiKey       string
	hourlyLimit  int
	forecastDays int
}

var _ WeatherGateway = (*weatherAPIGateway)(nil)

// NewWeatherAPIGateway creates a new instance of WeatherGateway backed by WeatherAPI.com
func NewWeatherAPIGateway(config Config) WeatherGateway {
	config = config.withDefaults()
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = weatherAPIBaseURL
	}

	options := config.ClientOptions
	options.RedactQueryParams = append(options.RedactQueryParams, "key")

	return &weatherAPIGateway{
		httpClient:   http.NewHttpClient(baseURL, options),
		apiKey:       strings.TrimSpace(config.APIKey),
		hourlyLimit:  config.HourlyLimit,
		forecastDays: config.ForecastDays,
	}
}

func (w *weatherAPIGateway) Name() string {
	return locale.ProviderWeatherAPI
}

// GetCurrentConditions gets current conditions together with today's forecast day, alerts and AQI
func (w *weatherAPIGateway) GetCurrentConditions(ctx context.Context, coord entity.Coordinates, lang string) (*entity.CurrentConditions, error) {
	if w.apiKey == "" {
		return nil, missingCredential(w.Name())
	}

	response, err := w.forecast(ctx, coord, lang, 1, true)
	if err != nil {
		return nil, err
	}

	current := &entity.CurrentConditions{
		Name:      response.Location.Name,
		Country:   response.Location.Country,
		LocalTime: response.Location.LocalTime,
		Temp:      response.Current.TempC,
		FeelsLike: response.Current.FeelsLikeC,
		Humidity:  response.Current.Humidity,
		WindSpeed: response.Current.WindKph,
		Condition: response.Current.Condition.Text,
		Icon:      absoluteIcon(response.Current.Condition.Icon),
		Coord:     entity.Coordinates{Lat: response.Location.Lat, Lon: response.Location.Lon},
		Timezone:  response.Location.TzID,
		Alerts:    []entity.WeatherAlert{},
	}

	if aq := response.Current.AirQuality; aq != nil {
		current.AQI = aq.USEPAIndex
	}

	if len(response.Forecast.ForecastDay) > 0 {
		today := response.Forecast.ForecastDay[0]
		current.MinTemp = today.Day.MinTempC
		current.MaxTemp = today.Day.MaxTempC
		current.Astro = &entity.Astronomy{
			Sunrise:          today.Astro.Sunrise,
			Sunset:           today.Astro.Sunset,
			MoonPhase:        today.Astro.MoonPhase,
			MoonIllumination: today.Astro.MoonIllumination.IntPtr(),
		}
	}

	if response.Alerts != nil {
		for _, alert := range response.Alerts.Alert {
			current.Alerts = append(current.Alerts, entity.WeatherAlert{
				Event:       alert.Event,
				Headline:    alert.Headline,
				Description: alert.Desc,
			})
		}
	}

	return current, nil
}

// GetForecast gets the daily forecast and the hourly points after localtime_epoch
func (w *weatherAPIGateway) GetForecast(ctx context.Context, coord entity.Coordinates, lang string) (*entity.ForecastBundle, error) {
	if w.apiKey == "" {
		return nil, missingCredential(w.Name())
	}

	response, err := w.forecast(ctx, coord, lang, w.forecastDays, false)
	if err != nil {
		return nil, err
	}

	bundle := &entity.ForecastBundle{
		Hourly: []entity.HourlyPoint{},
		Daily:  make([]entity.DailyPoint, 0, len(response.Forecast.ForecastDay)),
		City: entity.ForecastCity{
			Name:     response.Location.Name,
			Timezone: response.Location.TzID,
		},
	}

	now := response.Location.LocalTimeEpoch
	for _, day := range response.Forecast.ForecastDay {
		bundle.Daily = append(bundle.Daily, entity.DailyPoint{
			Date:      day.Date,
			DateEpoch: day.DateEpoch,
			Min:       day.Day.MinTempC,
			Max:       day.Day.MaxTempC,
			Condition: day.Day.Condition.Text,
			Icon:      absoluteIcon(day.Day.Condition.Icon),
			ProbRain:  day.Day.DailyChanceOfRain,
		})

		for _, hour := range day.Hour {
			if hour.TimeEpoch <= now || len(bundle.Hourly) >= w.hourlyLimit {
				continue
			}
			bundle.Hourly = append(bundle.Hourly, entity.HourlyPoint{
				Time:      hour.Time,
				TimeEpoch: hour.TimeEpoch,
				Temp:      hour.TempC,
				Condition: hour.Condition.Text,
				Icon:      absoluteIcon(hour.Condition.Icon),
			})
		}
	}

	return bundle, nil
}

// GetAirQuality gets the US EPA index category from current.json
func (w *weatherAPIGateway) GetAirQuality(ctx context.Context, coord entity.Coordinates) (*entity.AirQuality, error) {
	if w.apiKey == "" {
		return nil, missingCredential(w.Name())
	}

	params := map[string]string{
		"key": w.apiKey,
		"q":   coord.Query(),
		"aqi": "yes",
	}

	response, err := fetch[external.WeatherAPICurrentResponse](ctx, w.httpClient, w.Name(), "/current.json", params, weatherAPIMessage)
	if err != nil {
		return nil, err
	}

	airQuality := &entity.AirQuality{Scale: entity.AQIScaleUSEPA, Provider: w.Name()}
	if aq := response.Current.AirQuality; aq != nil {
		airQuality.Index = aq.USEPAIndex
	}
	return airQuality, nil
}

// SearchCities searches for cities by name
func (w *weatherAPIGateway) SearchCities(ctx context.Context, query string, lang string) ([]entity.GeocodeResult, error) {
	if w.apiKey == "" {
		return nil, missingCredential(w.Name())
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.GeocodeResult{}, nil
	}

	params := map[string]string{
		"key": w.apiKey,
		"q":   query,
	}

	response, err := fetch[[]external.WeatherAPISearchResult](ctx, w.httpClient, w.Name(), "/search.json", params, weatherAPIMessage)
	if err != nil {
		return nil, err
	}

	results := make([]entity.GeocodeResult, 0, len(*response))
	for _, item := range *response {
		results = append(results, entity.GeocodeResult{
			Name:    item.Name,
			Country: item.Country,
			Region:  item.Region,
			Coord:   entity.Coordinates{Lat: item.Lat, Lon: item.Lon},
		})
	}
	return results, nil
}

func (w *weatherAPIGateway) forecast(ctx context.Context, coord entity.Coordinates, lang string, days int, extras bool) (*external.WeatherAPIForecastResponse, error) {
	flag := "no"
	if extras {
		flag = "yes"
	}

	params := map[string]string{
		"key":    w.apiKey,
		"q":      coord.Query(),
		"days":   strconv.Itoa(days),
		"aqi":    flag,
		"alerts": flag,
		"lang":   locale.ProviderCode(w.Name(), lang),
	}

	return fetch[external.WeatherAPIForecastResponse](ctx, w.httpClient, w.Name(), "/forecast.json", params, weatherAPIMessage)
}

func weatherAPIMessage(errorResponse *external.WeatherAPIErrorResponse) string {
	return errorResponse.Error.Message
}

// absoluteIcon turns the protocol-relative icon paths WeatherAPI returns into https URLs
func absoluteIcon(icon string) string {
	if strings.HasPrefix(icon, "//") {
		return "https:" + icon
	}
	return icon
}
