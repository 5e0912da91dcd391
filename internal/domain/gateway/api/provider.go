package api

import (
	"context"
	"errors"
	nethttp "net/http"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/http"
)

var errEmptyResponse = errors.New("http: empty success response")

// fetch executes a GET and converts any failure to a model.WeatherError. messageOf extracts the
// provider message from a decoded error body.
func fetch[T any, E any](ctx context.Context, client *http.Client, provider, path string, params map[string]string, messageOf func(*E) string) (*T, error) {
	successResp, errResp, _, err := client.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithQueryParams(params).
		WithSuccessResp(new(T)).
		WithErrorResp(new(E)).
		Execute()

	if err == nil {
		if body, ok := successResp.(*T); ok && body != nil {
			return body, nil
		}
		err = errEmptyResponse
	}

	message := ""
	if errResp != nil {
		message = messageOf(errResp.(*E))
	}
	return nil, providerError(provider, message, err)
}

// providerError maps an upstream failure to the error taxonomy: 400, 401 and 403 are InvalidRequest
// carrying the provider message, everything else is UpstreamUnavailable.
func providerError(provider, message string, cause error) error {
	var statusErr *http.StatusError
	if errors.As(cause, &statusErr) {
		switch statusErr.StatusCode {
		case nethttp.StatusBadRequest, nethttp.StatusUnauthorized, nethttp.StatusForbidden:
			if message == "" {
				message = model.MessageInvalidRequest
			}
			return model.NewWeatherError(model.KindInvalidRequest, provider, message, cause)
		}
	}
	return model.NewWeatherError(model.KindUpstreamUnavailable, provider, model.MessageUpstreamUnavailable, cause)
}

func missingCredential(provider string) error {
	return model.NewWeatherError(model.KindMissingCredential, provider, model.MessageMissingCredential, nil)
}
