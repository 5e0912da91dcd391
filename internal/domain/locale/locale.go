// Package locale holds the static language table of the dashboard: display strings,
// locale tags, weekday names and the language codes each weather provider expects.
package locale

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Default is used whenever a requested language is not supported.
const Default = "en"

// Label keys
const (
	KeyTitle             = "title"
	KeySearchPlaceholder = "search_placeholder"
	KeyLoading           = "loading"
	KeyErrorFetch        = "error_fetch"
	KeyEnterCity         = "enter_city"
	KeyHumidity          = "humidity"
	KeyWind              = "wind"
	KeyFeelsLike         = "feels_like"
	KeyAQI               = "aqi"
	KeyHourlyForecast    = "hourly_forecast"
	KeyDailyForecast     = "daily_forecast"
	KeyGood              = "good"
	KeyFair              = "fair"
	KeyModerate          = "moderate"
	KeyPoor              = "poor"
	KeyVeryPoor          = "very_poor"
	KeyUnknown           = "unknown"
	KeyCityNotFound      = "city_not_found"
	KeyGeoUnavailable    = "geo_unavailable"
	KeyGeoUnsupported    = "geo_unsupported"
)

// Provider names as configured in weather.provider
const (
	ProviderWeatherAPI     = "weatherapi"
	ProviderOpenWeatherMap = "openweathermap"
)

type Language struct {
	Code     string
	Tag      string
	RTL      bool
	Weekdays [7]string
	strings  map[string]string
}

// order is the presentation order of the language selector.
var order = []string{"en", "ko", "de", "ja", "fr", "ar", "ru", "es", "zh"}

// providerCodes lists only the codes that differ from the internal one.
var providerCodes = map[string]map[string]string{
	ProviderOpenWeatherMap: {"ko": "kr", "zh": "zh_cn"},
	ProviderWeatherAPI:     {},
}

// Supported returns the supported language codes in display order.
func Supported() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

func IsSupported(code string) bool {
	_, ok := languages[code]
	return ok
}

// Normalize lowercases code and falls back to Default when it is not supported.
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if IsSupported(code) {
		return code
	}
	return Default
}

// Get returns the language entry for code, or the Default entry.
func Get(code string) Language {
	return languages[Normalize(code)]
}

// Text returns the display string for key in lang, falling back to English and then to the key itself.
func Text(lang, key string) string {
	if value, ok := Get(lang).strings[key]; ok {
		return value
	}
	if value, ok := languages[Default].strings[key]; ok {
		return value
	}
	return key
}

// Labels returns a copy of every display string for lang, English filling the gaps.
func Labels(lang string) map[string]string {
	labels := make(map[string]string, len(languages[Default].strings))
	for key, value := range languages[Default].strings {
		labels[key] = value
	}
	for key, value := range Get(lang).strings {
		labels[key] = value
	}
	return labels
}

// Weekday returns the short weekday name of day in lang.
func Weekday(lang string, day time.Weekday) string {
	return Get(lang).Weekdays[day]
}

// ProviderCode translates an internal language code to the one provider expects.
func ProviderCode(provider, lang string) string {
	lang = Normalize(lang)
	if code, ok := providerCodes[provider][lang]; ok {
		return code
	}
	return lang
}

// Detect picks the first supported base language of an Accept-Language header.
func Detect(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		return Default
	}
	for _, tag := range tags {
		base, _ := tag.Base()
		if code := base.String(); IsSupported(code) {
			return code
		}
	}
	return Default
}
