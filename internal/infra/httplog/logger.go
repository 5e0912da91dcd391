// Package httplog connects pkg/http request events to the application logger and metrics.
package httplog

import (
	"net/url"
	"time"

	"go.uber.org/zap"

	"weather-dashboard/internal/infra/metrics"
	"weather-dashboard/pkg/http"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

type Logger struct {
	provider string
}

var _ http.HTTPLogger = (*Logger)(nil)

func New(provider string) *Logger {
	return &Logger{provider: provider}
}

func (l *Logger) LogRequest(method, rawURL string, _ map[string]string) {
	log.Debug(msg.GetMessage("http.request.start", method, rawURL),
		zap.String("provider", l.provider),
		zap.String("method", method),
		zap.String("url", rawURL))
}

func (l *Logger) LogResponseSuccess(method, rawURL string, httpStatus int, latency time.Duration) {
	metrics.RecordUpstreamRequest(l.provider, endpoint(rawURL), httpStatus, latency)
	log.Info(msg.GetMessage("http.request.end", method, rawURL, httpStatus, latency),
		zap.String("provider", l.provider),
		zap.String("method", method),
		zap.String("url", rawURL),
		zap.Int("status", httpStatus),
		zap.Duration("latency", latency))
}

func (l *Logger) LogResponseError(method, rawURL string, httpStatus int, responseBody string, latency time.Duration, err error) {
	metrics.RecordUpstreamRequest(l.provider, endpoint(rawURL), httpStatus, latency)
	log.Error(msg.GetMessage("http.request.fail", method, rawURL, httpStatus, err),
		zap.String("provider", l.provider),
		zap.String("method", method),
		zap.String("url", rawURL),
		zap.Int("status", httpStatus),
		zap.Duration("latency", latency),
		zap.String("body", responseBody),
		zap.Error(err))
}

// endpoint drops host and query so metric labels stay bounded
func endpoint(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Path == "" {
		return "unknown"
	}
	return parsed.Path
}
