package httplog

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"weather-dashboard/internal/infra/metrics"
)

func TestEndpoint(t *testing.T) {
	assert.Equal(t, "/v1/forecast.json", endpoint("https://api.weatherapi.com/v1/forecast.json?key=%2A%2A%2A&q=1,2"))
	assert.Equal(t, "/data/2.5/weather", endpoint("http://127.0.0.1:4000/data/2.5/weather"))
	assert.Equal(t, "unknown", endpoint("https://api.weatherapi.com"))
	assert.Equal(t, "unknown", endpoint("://bad"))
}

func TestLogger_RecordsMetrics(t *testing.T) {
	logger := New("openweathermap")
	counter := metrics.UpstreamRequestsTotal.WithLabelValues("openweathermap", "/geo/1.0/direct", "401")
	before := testutil.ToFloat64(counter)

	logger.LogRequest("GET", "https://api.openweathermap.org/geo/1.0/direct?appid=%2A%2A%2A", nil)
	logger.LogResponseError("GET", "https://api.openweathermap.org/geo/1.0/direct?appid=%2A%2A%2A", 401, `{"cod":401}`, 30*time.Millisecond, errors.New("http error: status 401"))
	logger.LogResponseSuccess("GET", "https://api.openweathermap.org/geo/1.0/direct?appid=%2A%2A%2A", 200, 20*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
