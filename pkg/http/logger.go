package http

import "time"

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent. Redacted query values are already masked in url.
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called after a 2xx response has been decoded
	LogResponseSuccess(method, url string, httpStatus int, latency time.Duration)

	// LogResponseError is called on transport failures, decode failures and non-2xx statuses.
	// httpStatus is zero when no response was received.
	LogResponseError(method, url string, httpStatus int, responseBody string, latency time.Duration, err error)
}
