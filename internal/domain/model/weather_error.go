package model

import (
	"errors"
	"net/http"
)

// ErrorKind classifies failures of a weather search so callers can react without parsing messages.
type ErrorKind string

const (
	KindMissingCredential   ErrorKind = "missing_credential"
	KindInvalidRequest      ErrorKind = "invalid_request"
	KindNotFound            ErrorKind = "not_found"
	KindUpstreamUnavailable ErrorKind = "upstream_unavailable"
)

const (
	MessageMissingCredential   = "API Key is missing"
	MessageInvalidRequest      = "API Error"
	MessageUpstreamUnavailable = "Weather service error"
	MessageNotFound            = "City not found"
)

// Sentinels for errors.Is checks. They match any WeatherError of the same kind.
var (
	ErrMissingCredential   = &WeatherError{Kind: KindMissingCredential}
	ErrInvalidRequest      = &WeatherError{Kind: KindInvalidRequest}
	ErrNotFound            = &WeatherError{Kind: KindNotFound}
	ErrUpstreamUnavailable = &WeatherError{Kind: KindUpstreamUnavailable}
)

// WeatherError carries a user-facing Message. Err keeps the underlying cause for logs.
type WeatherError struct {
	Kind     ErrorKind `json:"kind"`
	Message  string    `json:"message"`
	Provider string    `json:"provider,omitempty"`
	Err      error     `json:"-"`
}

func NewWeatherError(kind ErrorKind, provider, message string, cause error) *WeatherError {
	return &WeatherError{Kind: kind, Provider: provider, Message: message, Err: cause}
}

func (e *WeatherError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Kind)
}

func (e *WeatherError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a sentinel of the same kind.
func (e *WeatherError) Is(target error) bool {
	t, ok := target.(*WeatherError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == "" && t.Provider == ""
}

// HTTPStatus maps the kind to the status returned by the API.
func (e *WeatherError) HTTPStatus() int {
	switch e.Kind {
	case KindMissingCredential:
		return http.StatusServiceUnavailable
	case KindInvalidRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstreamUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// KindOf returns the kind of the first WeatherError in err's chain, or "" if there is none.
func KindOf(err error) ErrorKind {
	var weatherErr *WeatherError
	if errors.As(err, &weatherErr) {
		return weatherErr.Kind
	}
	return ""
}
