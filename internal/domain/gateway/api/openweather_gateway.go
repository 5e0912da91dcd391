package api

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/locale"
	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/pkg/http"
	"weather-dashboard/pkg/util/numberutils"
)

const (
	openWeatherBaseURL  = "https://api.openweathermap.org"
	openWeatherIconURL  = "https://openweathermap.org/img/wn/%s@2x.png"
	openWeatherGeoLimit = "5"
	localTimeLayout     = "2006-01-02 15:04"
	clockLayout         = "03:04 PM"
)

// openWeatherGateway implements WeatherGateway on top of the OpenWeatherMap 2.5 endpoints.
// Current, forecast and air pollution are separate calls and the forecast is a flat 3-hour list.
type openWeatherGateway struct {
	httpClient  *http.Client
	apiKey      string
	hourlyLimit int
	clock       func() time.Time
}

var _ WeatherGateway = (*openWeatherGateway)(nil)

// NewOpenWeatherGateway creates a new instance of WeatherGateway backed by OpenWeatherMap
func NewOpenWeatherGateway(config Config) WeatherGateway {
	config = config.withDefaults()
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = openWeatherBaseURL
	}

	options := config.ClientOptions
	options.RedactQueryParams = append(options.RedactQueryParams, "appid")

	return &openWeatherGateway{
		httpClient:  http.NewHttpClient(baseURL, options),
		apiKey:      strings.TrimSpace(config.APIKey),
		hourlyLimit: config.HourlyLimit,
		clock:       config.Clock,
	}
}

func (o *openWeatherGateway) Name() string {
	return locale.ProviderOpenWeatherMap
}

// GetCurrentConditions gets current weather. This provider has no alerts or moon data.
func (o *openWeatherGateway) GetCurrentConditions(ctx context.Context, coord entity.Coordinates, lang string) (*entity.CurrentConditions, error) {
	if o.apiKey == "" {
		return nil, missingCredential(o.Name())
	}

	response, err := fetch[external.OWMCurrentResponse](ctx, o.httpClient, o.Name(), "/data/2.5/weather", o.coordParams(coord, lang), owmMessage)
	if err != nil {
		return nil, err
	}

	zone := fixedZone(response.Timezone)
	condition, icon := firstWeather(response.Weather)

	return &entity.CurrentConditions{
		Name:      response.Name,
		Country:   response.Sys.Country,
		LocalTime: time.Unix(response.Dt, 0).In(zone).Format(localTimeLayout),
		Temp:      response.Main.Temp,
		FeelsLike: response.Main.FeelsLike,
		Humidity:  response.Main.Humidity,
		WindSpeed: metersPerSecondToKph(response.Wind.Speed),
		Condition: condition,
		Icon:      icon,
		MinTemp:   response.Main.TempMin,
		MaxTemp:   response.Main.TempMax,
		Coord:     entity.Coordinates{Lat: response.Coord.Lat, Lon: response.Coord.Lon},
		Timezone:  offsetLabel(response.Timezone),
		Alerts:    []entity.WeatherAlert{},
		Astro: &entity.Astronomy{
			Sunrise: clockTime(response.Sys.Sunrise, zone),
			Sunset:  clockTime(response.Sys.Sunset, zone),
		},
	}, nil
}

// GetForecast gets the 3-hour forecast and groups it by the location's calendar date
func (o *openWeatherGateway) GetForecast(ctx context.Context, coord entity.Coordinates, lang string) (*entity.ForecastBundle, error) {
	if o.apiKey == "" {
		return nil, missingCredential(o.Name())
	}

	response, err := fetch[external.OWMForecastResponse](ctx, o.httpClient, o.Name(), "/data/2.5/forecast", o.coordParams(coord, lang), owmMessage)
	if err != nil {
		return nil, err
	}

	zone := fixedZone(response.City.Timezone)
	bundle := &entity.ForecastBundle{
		Hourly: hourlyAfter(response.List, o.clock().Unix(), o.hourlyLimit, zone),
		Daily:  groupDaily(response.List, zone),
		City: entity.ForecastCity{
			Name:     response.City.Name,
			Timezone: offsetLabel(response.City.Timezone),
		},
	}
	return bundle, nil
}

// GetAirQuality gets the 1-5 OpenWeatherMap air quality index
func (o *openWeatherGateway) GetAirQuality(ctx context.Context, coord entity.Coordinates) (*entity.AirQuality, error) {
	if o.apiKey == "" {
		return nil, missingCredential(o.Name())
	}

	params := map[string]string{
		"lat":   strconv.FormatFloat(coord.Lat, 'f', -1, 64),
		"lon":   strconv.FormatFloat(coord.Lon, 'f', -1, 64),
		"appid": o.apiKey,
	}

	response, err := fetch[external.OWMAirPollutionResponse](ctx, o.httpClient, o.Name(), "/data/2.5/air_pollution", params, owmMessage)
	if err != nil {
		return nil, err
	}

	airQuality := &entity.AirQuality{Scale: entity.AQIScaleOWM, Provider: o.Name()}
	if len(response.List) > 0 {
		index := response.List[0].Main.AQI
		airQuality.Index = &index
	}
	return airQuality, nil
}

// SearchCities geocodes query with /geo/1.0/direct, which also returns localized names
func (o *openWeatherGateway) SearchCities(ctx context.Context, query string, lang string) ([]entity.GeocodeResult, error) {
	if o.apiKey == "" {
		return nil, missingCredential(o.Name())
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.GeocodeResult{}, nil
	}

	params := map[string]string{
		"q":     query,
		"limit": openWeatherGeoLimit,
		"appid": o.apiKey,
	}

	response, err := fetch[[]external.OWMGeocodingResult](ctx, o.httpClient, o.Name(), "/geo/1.0/direct", params, owmMessage)
	if err != nil {
		return nil, err
	}

	results := make([]entity.GeocodeResult, 0, len(*response))
	for _, item := range *response {
		results = append(results, entity.GeocodeResult{
			Name:       item.Name,
			LocalNames: item.LocalNames,
			Country:    item.Country,
			Region:     item.State,
			Coord:      entity.Coordinates{Lat: item.Lat, Lon: item.Lon},
		})
	}
	return results, nil
}

func (o *openWeatherGateway) coordParams(coord entity.Coordinates, lang string) map[string]string {
	return map[string]string{
		"lat":   strconv.FormatFloat(coord.Lat, 'f', -1, 64),
		"lon":   strconv.FormatFloat(coord.Lon, 'f', -1, 64),
		"appid": o.apiKey,
		"units": "metric",
		"lang":  locale.ProviderCode(o.Name(), lang),
	}
}

// hourlyAfter keeps the items strictly after now, at most limit of them
func hourlyAfter(items []external.OWMForecastItem, now int64, limit int, zone *time.Location) []entity.HourlyPoint {
	hourly := make([]entity.HourlyPoint, 0, limit)
	for _, item := range items {
		if item.Dt <= now {
			continue
		}
		if len(hourly) >= limit {
			break
		}
		condition, icon := firstWeather(item.Weather)
		hourly = append(hourly, entity.HourlyPoint{
			Time:      time.Unix(item.Dt, 0).In(zone).Format(localTimeLayout),
			TimeEpoch: item.Dt,
			Temp:      item.Main.Temp,
			Condition: condition,
			Icon:      icon,
		})
	}
	return hourly
}

// groupDaily buckets 3-hour items by local calendar date. Min and max aggregate over the whole
// bucket, icon and description come from the middle item, rain chance is the highest pop.
func groupDaily(items []external.OWMForecastItem, zone *time.Location) []entity.DailyPoint {
	var dates []string
	buckets := make(map[string][]external.OWMForecastItem)
	for _, item := range items {
		date := time.Unix(item.Dt, 0).In(zone).Format(time.DateOnly)
		if _, seen := buckets[date]; !seen {
			dates = append(dates, date)
		}
		buckets[date] = append(buckets[date], item)
	}

	daily := make([]entity.DailyPoint, 0, len(dates))
	for _, date := range dates {
		bucket := buckets[date]
		point := entity.DailyPoint{
			Date: date,
			Min:  bucket[0].Main.TempMin,
			Max:  bucket[0].Main.TempMax,
		}
		if midnight, err := time.Parse(time.DateOnly, date); err == nil {
			point.DateEpoch = midnight.Unix()
		}

		maxPop := 0.0
		for _, item := range bucket {
			point.Min = min(point.Min, item.Main.TempMin)
			point.Max = max(point.Max, item.Main.TempMax)
			maxPop = max(maxPop, item.Pop)
		}
		point.ProbRain = numberutils.RoundHalfUp(maxPop * 100)
		point.Condition, point.Icon = firstWeather(bucket[len(bucket)/2].Weather)

		daily = append(daily, point)
	}
	return daily
}

func firstWeather(weather []external.OWMWeather) (condition string, icon string) {
	if len(weather) == 0 {
		return "", ""
	}
	return weather[0].Description, fmt.Sprintf(openWeatherIconURL, weather[0].Icon)
}

func owmMessage(errorResponse *external.OWMErrorResponse) string {
	return errorResponse.Message
}

func metersPerSecondToKph(speed float64) float64 {
	return numberutils.RoundTo(speed*3.6, 1)
}

func fixedZone(offsetSeconds int) *time.Location {
	return time.FixedZone(offsetLabel(offsetSeconds), offsetSeconds)
}

func clockTime(epoch int64, zone *time.Location) string {
	if epoch == 0 {
		return ""
	}
	return time.Unix(epoch, 0).In(zone).Format(clockLayout)
}

// offsetLabel renders a UTC offset in seconds as "UTC+09:00"
func offsetLabel(offsetSeconds int) string {
	if offsetSeconds == 0 {
		return "UTC"
	}
	sign := "+"
	if offsetSeconds < 0 {
		sign = "-"
		offsetSeconds = -offsetSeconds
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, offsetSeconds/3600, (offsetSeconds%3600)/60)
}
