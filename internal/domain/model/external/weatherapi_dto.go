package external

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// WeatherAPIForecastResponse represents forecast.json, which also carries current conditions and alerts
type WeatherAPIForecastResponse struct {
	Location WeatherAPILocation `json:"location"`
	Current  WeatherAPICurrent  `json:"current"`
	Forecast struct {
		ForecastDay []WeatherAPIForecastDay `json:"forecastday"`
	} `json:"forecast"`
	Alerts *struct {
		Alert []WeatherAPIAlert `json:"alert"`
	} `json:"alerts,omitempty"`
}

// WeatherAPICurrentResponse represents current.json
type WeatherAPICurrentResponse struct {
	Location WeatherAPILocation `json:"location"`
	Current  WeatherAPICurrent  `json:"current"`
}

type WeatherAPILocation struct {
	Name           string  `json:"name"`
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	TzID           string  `json:"tz_id"`
	LocalTimeEpoch int64   `json:"localtime_epoch"`
	LocalTime      string  `json:"localtime"`
}

type WeatherAPICurrent struct {
	TempC      float64               `json:"temp_c"`
	FeelsLikeC float64               `json:"feelslike_c"`
	Humidity   int                   `json:"humidity"`
	WindKph    float64               `json:"wind_kph"`
	Condition  WeatherAPICondition   `json:"condition"`
	AirQuality *WeatherAPIAirQuality `json:"air_quality,omitempty"`
}

type WeatherAPICondition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

// WeatherAPIAirQuality keeps only the index categories, the pollutant concentrations are not used
type WeatherAPIAirQuality struct {
	USEPAIndex *int `json:"us-epa-index"`
	GBDefra    *int `json:"gb-defra-index"`
}

type WeatherAPIForecastDay struct {
	Date      string `json:"date"`
	DateEpoch int64  `json:"date_epoch"`
	Day       struct {
		MaxTempC          float64             `json:"maxtemp_c"`
		MinTempC          float64             `json:"mintemp_c"`
		DailyChanceOfRain int                 `json:"daily_chance_of_rain"`
		Condition         WeatherAPICondition `json:"condition"`
	} `json:"day"`
	Astro WeatherAPIAstro  `json:"astro"`
	Hour  []WeatherAPIHour `json:"hour"`
}

type WeatherAPIAstro struct {
	Sunrise          string   `json:"sunrise"`
	Sunset           string   `json:"sunset"`
	MoonPhase        string   `json:"moon_phase"`
	MoonIllumination *FlexInt `json:"moon_illumination"`
}

type WeatherAPIHour struct {
	TimeEpoch int64               `json:"time_epoch"`
	Time      string              `json:"time"`
	TempC     float64             `json:"temp_c"`
	Condition WeatherAPICondition `json:"condition"`
}

type WeatherAPIAlert struct {
	Headline string `json:"headline"`
	Event    string `json:"event"`
	Desc     string `json:"desc"`
}

// WeatherAPISearchResult represents a single entry of search.json
type WeatherAPISearchResult struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// WeatherAPIErrorResponse represents the error body returned with 4xx statuses
type WeatherAPIErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// FlexInt decodes a JSON number or a numeric string, rounding fractions
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric value %s: %w", string(data), err)
	}
	*f = FlexInt(math.Round(value))
	return nil
}

// IntPtr returns the value as *int, nil when f is nil
func (f *FlexInt) IntPtr() *int {
	if f == nil {
		return nil
	}
	value := int(*f)
	return &value
}
