package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
)

const weatherAPIForecastFixture = `{
  "location": {"name": "Sokcho", "region": "Kangwon-Do", "country": "South Korea", "lat": 38.21, "lon": 128.59,
               "tz_id": "Asia/Seoul", "localtime_epoch": 1700010000, "localtime": "2023-11-15 10:00"},
  "current": {"temp_c": 12.4, "feelslike_c": 10.9, "humidity": 48, "wind_kph": 14.8,
              "condition": {"text": "Sunny", "icon": "//cdn.weatherapi.com/weather/64x64/day/113.png", "code": 1000},
              "air_quality": {"us-epa-index": 2, "gb-defra-index": 3}},
  "forecast": {"forecastday": [
    {"date": "2023-11-15", "date_epoch": 1700006400,
     "day": {"maxtemp_c": 15.1, "mintemp_c": 6.2, "daily_chance_of_rain": 10,
             "condition": {"text": "Sunny", "icon": "//cdn.weatherapi.com/weather/64x64/day/113.png"}},
     "astro": {"sunrise": "07:02 AM", "sunset": "05:21 PM", "moon_phase": "Waxing Crescent", "moon_illumination": 8},
     "hour": [
       {"time_epoch": 1700006400, "time": "2023-11-15 09:00", "temp_c": 9.0, "condition": {"text": "Clear", "icon": "//cdn/a.png"}},
       {"time_epoch": 1700010000, "time": "2023-11-15 10:00", "temp_c": 10.0, "condition": {"text": "Clear", "icon": "//cdn/b.png"}},
       {"time_epoch": 1700013600, "time": "2023-11-15 11:00", "temp_c": 11.0, "condition": {"text": "Sunny", "icon": "//cdn/c.png"}},
       {"time_epoch": 1700017200, "time": "2023-11-15 12:00", "temp_c": 12.0, "condition": {"text": "Sunny", "icon": "//cdn/d.png"}},
       {"time_epoch": 1700020800, "time": "2023-11-15 13:00", "temp_c": 13.0, "condition": {"text": "Sunny", "icon": "//cdn/e.png"}}
     ]},
    {"date": "2023-11-16", "date_epoch": 1700092800,
     "day": {"maxtemp_c": 13.0, "mintemp_c": 4.5, "daily_chance_of_rain": 80,
             "condition": {"text": "Patchy rain", "icon": "//cdn.weatherapi.com/weather/64x64/day/176.png"}},
     "astro": {"sunrise": "07:03 AM", "sunset": "05:20 PM", "moon_phase": "Waxing Crescent", "moon_illumination": 14},
     "hour": [
       {"time_epoch": 1700092800, "time": "2023-11-16 09:00", "temp_c": 7.0, "condition": {"text": "Rain", "icon": "//cdn/f.png"}},
       {"time_epoch": 1700096400, "time": "2023-11-16 10:00", "temp_c": 8.0, "condition": {"text": "Rain", "icon": "//cdn/g.png"}},
       {"time_epoch": 1700100000, "time": "2023-11-16 11:00", "temp_c": 9.0, "condition": {"text": "Rain", "icon": "//cdn/h.png"}}
     ]}
  ]},
  "alerts": {"alert": [{"headline": "Wind advisory", "event": "Strong wind", "desc": "Gusts up to 70 km/h"}]}
}`

func newWeatherAPITestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestWeatherAPI_GetCurrentConditions(t *testing.T) {
	srv, _ := newWeatherAPITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast.json", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "test-key", query.Get("key"))
		assert.Equal(t, "38.21,128.59", query.Get("q"))
		assert.Equal(t, "1", query.Get("days"))
		assert.Equal(t, "yes", query.Get("aqi"))
		assert.Equal(t, "yes", query.Get("alerts"))
		assert.Equal(t, "ko", query.Get("lang"))
		writeJSON(w, http.StatusOK, weatherAPIForecastFixture)
	})

	gateway := NewWeatherAPIGateway(Config{BaseURL: srv.URL, APIKey: "test-key"})
	current, err := gateway.GetCurrentConditions(context.Background(), entity.Coordinates{Lat: 38.21, Lon: 128.59}, "ko")

	require.NoError(t, err)
	assert.Equal(t, "Sokcho", current.Name)
	assert.Equal(t, "South Korea", current.Country)
	assert.Equal(t, "2023-11-15 10:00", current.LocalTime)
	assert.Equal(t, 12.4, current.Temp)
	assert.Equal(t, 10.9, current.FeelsLike)
	assert.Equal(t, 48, current.Humidity)
	assert.Equal(t, 14.8, current.WindSpeed)
	assert.Equal(t, "Sunny", current.Condition)
	assert.Equal(t, "https://cdn.weatherapi.com/weather/64x64/day/113.png", current.Icon)
	assert.Equal(t, 6.2, current.MinTemp)
	assert.Equal(t, 15.1, current.MaxTemp)
	require.NotNil(t, current.AQI)
	assert.Equal(t, 2, *current.AQI)
	assert.Equal(t, "Asia/Seoul", current.Timezone)
	assert.Equal(t, entity.Coordinates{Lat: 38.21, Lon: 128.59}, current.Coord)
	require.Len(t, current.Alerts, 1)
	assert.Equal(t, entity.WeatherAlert{Event: "Strong wind", Headline: "Wind advisory", Description: "Gusts up to 70 km/h"}, current.Alerts[0])
	require.NotNil(t, current.Astro)
	assert.Equal(t, "07:02 AM", current.Astro.Sunrise)
	assert.Equal(t, "Waxing Crescent", current.Astro.MoonPhase)
	assert.Equal(t, 8, *current.Astro.MoonIllumination)
}

func TestWeatherAPI_GetForecast_HourlyWindowAndCap(t *testing.T) {
	srv, _ := newWeatherAPITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "7", query.Get("days"))
		assert.Equal(t, "no", query.Get("aqi"))
		assert.Equal(t, "no", query.Get("alerts"))
		writeJSON(w, http.StatusOK, weatherAPIForecastFixture)
	})

	gateway := NewWeatherAPIGateway(Config{BaseURL: srv.URL, APIKey: "test-key", HourlyLimit: 4})
	forecast, err := gateway.GetForecast(context.Background(), entity.Coordinates{Lat: 38.21, Lon: 128.59}, "en")

	require.NoError(t, err)
	require.Len(t, forecast.Hourly, 4)
	for _, hour := range forecast.Hourly {
		assert.Greater(t, hour.TimeEpoch, int64(1700010000))
	}
	assert.Equal(t, "2023-11-15 11:00", forecast.Hourly[0].Time)
	assert.Equal(t, "2023-11-16 09:00", forecast.Hourly[3].Time)
	assert.Equal(t, "https://cdn/c.png", forecast.Hourly[0].Icon)

	require.Len(t, forecast.Daily, 2)
	assert.Equal(t, entity.DailyPoint{
		Date:      "2023-11-16",
		DateEpoch: 1700092800,
		Min:       4.5,
		Max:       13.0,
		Condition: "Patchy rain",
		Icon:      "https://cdn.weatherapi.com/weather/64x64/day/176.png",
		ProbRain:  80,
	}, forecast.Daily[1])
	assert.Equal(t, entity.ForecastCity{Name: "Sokcho", Timezone: "Asia/Seoul"}, forecast.City)
}

func TestWeatherAPI_GetForecast_DefaultCap(t *testing.T) {
	srv, _ := newWeatherAPITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, weatherAPIForecastFixture)
	})

	gateway := NewWeatherAPIGateway(Config{BaseURL: srv.URL, APIKey: "test-key"})
	forecast, err := gateway.GetForecast(context.Background(), entity.Coordinates{}, "en")

	require.NoError(t, err)
	assert.Len(t, forecast.Hourly, DefaultHourlyLimit)
}

func TestWeatherAPI_GetAirQuality(t *testing.T) {
	srv, _ := newWeatherAPITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/current.json", r.URL.Path)
		assert.Equal(t, "yes", r.URL.Query().Get("aqi"))
		writeJSON(w, http.StatusOK, `{"location": {"name": "Sokcho"}, "current": {"air_quality": {"us-epa-index": 6}}}`)
	})

	gateway := NewWeatherAPIGateway(Config{BaseURL: srv.URL, APIKey: "test-key"})
	airQuality, err := gateway.GetAirQuality(context.Background(), entity.Coordinates{Lat: 1, Lon: 2})

	require.NoError(t, err)
	require.NotNil(t, airQuality.Index)
	assert.Equal(t, 6, *airQuality.Index)
	assert.Equal(t, entity.AQIScaleUSEPA, airQuality.Scale)
}

func TestWeatherAPI_SearchCities(t *testing.T) {
	srv, _ := newWeatherAPITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.json", r.URL.Path)
		assert.Equal(t, "Sokcho", r.URL.Query().Get("q"))
		writeJSON(w, http.StatusOK, `[{"id": 1, "name": "Sokcho", "region": "Kangwon-Do", "country": "South Korea", "lat": 38.21, "lon": 128.59}]`)
	})

	gateway := NewWeatherAPIGateway(Config{BaseURL: srv.URL, APIKey: "test-key"})
	results, err := gateway.SearchCities(context.Background(), "Sokcho", "ko")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, entity.GeocodeResult{
		Name:    "Sokcho",
		Country: "South Korea",
		Region:  "Kangwon-Do",
		Coord:   entity.Coordinates{Lat: 38.21, Lon: 128.59},
	}, results[0])
}

func TestWeatherAPI_SearchCities_EmptyQuerySkipsNetwork(t *testing.T) {
	srv, calls := newWeatherAPITestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	gateway := NewWeatherAPIGateway(Config{BaseURL: srv.URL, APIKey: "test-key"})
	results, err := gateway.SearchCities(context.Background(), "  ", "en")

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, int32(0), calls.Load())
}

func TestWeatherAPI_MissingCredential(t *testing.T) {
	srv, calls := newWeatherAPITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, weatherAPIForecastFixture)
	})

	gateway := NewWeatherAPIGateway(Config{BaseURL: srv.URL, APIKey: " "})
	ctx := context.Background()
	coord := entity.Coordinates{Lat: 1, Lon: 2}

	_, err := gateway.GetCurrentConditions(ctx, coord, "en")
	assert.ErrorIs(t, err, model.ErrMissingCredential)
	_, err = gateway.GetForecast(ctx, coord, "en")
	assert.ErrorIs(t, err, model.ErrMissingCredential)
	_, err = gateway.GetAirQuality(ctx, coord)
	assert.ErrorIs(t, err, model.ErrMissingCredential)
	_, err = gateway.SearchCities(ctx, "Sokcho", "en")
	assert.ErrorIs(t, err, model.ErrMissingCredential)
	assert.Equal(t, "API Key is missing", err.Error())

	assert.Equal(t, int32(0), calls.Load())
}

func TestWeatherAPI_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantKind    error
		wantMessage string
	}{
		{"bad request carries provider message", http.StatusBadRequest, `{"error": {"code": 1006, "message": "No matching location found."}}`, model.ErrInvalidRequest, "No matching location found."},
		{"unauthorized carries provider message", http.StatusUnauthorized, `{"error": {"code": 2006, "message": "API key is invalid."}}`, model.ErrInvalidRequest, "API key is invalid."},
		{"forbidden without message", http.StatusForbidden, `{}`, model.ErrInvalidRequest, "API Error"},
		{"server error", http.StatusInternalServerError, `{"error": {"code": 9999, "message": "Internal application error."}}`, model.ErrUpstreamUnavailable, "Weather service error"},
		{"not found", http.StatusNotFound, ``, model.ErrUpstreamUnavailable, "Weather service error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newWeatherAPITestServer(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			gateway := NewWeatherAPIGateway(Config{BaseURL: srv.URL, APIKey: "test-key"})
			_, err := gateway.GetCurrentConditions(context.Background(), entity.Coordinates{}, "en")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantKind)
			assert.Equal(t, tt.wantMessage, err.Error())
		})
	}
}

func TestWeatherAPI_UndecodableBody(t *testing.T) {
	srv, _ := newWeatherAPITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"location": `)
	})

	gateway := NewWeatherAPIGateway(Config{BaseURL: srv.URL, APIKey: "test-key"})
	_, err := gateway.GetForecast(context.Background(), entity.Coordinates{}, "en")

	assert.ErrorIs(t, err, model.ErrUpstreamUnavailable)
}

func TestNewWeatherGateway(t *testing.T) {
	gateway, err := NewWeatherGateway(Config{Provider: "weatherapi"})
	require.NoError(t, err)
	assert.Equal(t, "weatherapi", gateway.Name())

	gateway, err = NewWeatherGateway(Config{Provider: " OpenWeatherMap "})
	require.NoError(t, err)
	assert.Equal(t, "openweathermap", gateway.Name())

	_, err = NewWeatherGateway(Config{Provider: "darksky"})
	assert.Error(t, err)
}
