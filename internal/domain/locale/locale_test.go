package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProviderCode(t *testing.T) {
	tests := []struct {
		provider string
		lang     string
		want     string
	}{
		{ProviderOpenWeatherMap, "ko", "kr"},
		{ProviderOpenWeatherMap, "zh", "zh_cn"},
		{ProviderOpenWeatherMap, "de", "de"},
		{ProviderOpenWeatherMap, "en", "en"},
		{ProviderOpenWeatherMap, "xx", "en"},
		{ProviderWeatherAPI, "ko", "ko"},
		{ProviderWeatherAPI, "zh", "zh"},
		{ProviderWeatherAPI, "ar", "ar"},
	}

	for _, tt := range tests {
		t.Run(tt.provider+"/"+tt.lang, func(t *testing.T) {
			assert.Equal(t, tt.want, ProviderCode(tt.provider, tt.lang))
		})
	}
}

func TestEveryLanguageHasEveryBaseLabel(t *testing.T) {
	base := []string{
		KeyTitle, KeySearchPlaceholder, KeyLoading, KeyErrorFetch, KeyEnterCity, KeyHumidity,
		KeyWind, KeyFeelsLike, KeyAQI, KeyHourlyForecast, KeyDailyForecast, KeyGood, KeyFair,
		KeyModerate, KeyPoor, KeyVeryPoor, KeyUnknown,
	}

	for _, code := range Supported() {
		lang := Get(code)
		assert.Equal(t, code, lang.Code)
		assert.NotEmpty(t, lang.Tag)
		for _, key := range base {
			assert.NotEmpty(t, lang.strings[key], "%s is missing %s", code, key)
		}
		for _, day := range lang.Weekdays {
			assert.NotEmpty(t, day, "%s has an empty weekday", code)
		}
	}
}

func TestText_Fallbacks(t *testing.T) {
	assert.Equal(t, "습도", Text("ko", KeyHumidity))
	assert.Equal(t, "Humidity", Text("xx", KeyHumidity))
	assert.Equal(t, "City not found", Text("ko", KeyCityNotFound))
	assert.Equal(t, "no_such_key", Text("en", "no_such_key"))
}

func TestLabels_ReturnsCopy(t *testing.T) {
	labels := Labels("fr")
	assert.Equal(t, "Vent", labels[KeyWind])
	assert.Equal(t, "City not found", labels[KeyCityNotFound])

	labels[KeyWind] = "changed"
	assert.Equal(t, "Vent", Text("fr", KeyWind))
}

func TestDetect(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"ko-KR,ko;q=0.9,en-US;q=0.8", "ko"},
		{"zh-TW", "zh"},
		{"pt-BR,pt;q=0.9,es;q=0.5", "es"},
		{"pt-BR", "en"},
		{"", "en"},
		{"not a header;;", "en"},
		{"en-GB;q=0.3,ar-EG;q=0.8", "ar"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.header))
		})
	}
}

func TestGetAndWeekday(t *testing.T) {
	assert.True(t, Get("ar").RTL)
	assert.False(t, Get("en").RTL)
	assert.Equal(t, "en-US", Get("unknown").Tag)
	assert.Equal(t, "ko", Normalize(" KO "))
	assert.Equal(t, "Sun", Weekday("en", time.Sunday))
	assert.Equal(t, "월", Weekday("ko", time.Monday))
	assert.Len(t, Supported(), 9)
}
