package autocomplete

import (
	"context"
	"time"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/debounce"
)

// MinQueryLength is the longest query that never reaches the provider
const MinQueryLength = 2

// Allowed range of the quiet period before a suggestion request is sent
const (
	MinDebounce     = 300 * time.Millisecond
	MaxDebounce     = 500 * time.Millisecond
	DefaultDebounce = MaxDebounce
)

// ErrSuperseded is returned to a Suggest call replaced by a newer one for the same key
var ErrSuperseded = debounce.ErrSuperseded

type UseCase interface {
	// Suggest returns city candidates for query once the key has been quiet for the debounce delay.
	// Queries of MinQueryLength characters or fewer return nothing and cancel the pending call.
	Suggest(ctx context.Context, key string, query string, lang string) ([]model.SuggestionView, error)
}

// DebounceDelay bounds a configured delay to [MinDebounce, MaxDebounce]; zero means DefaultDebounce
func DebounceDelay(configured time.Duration) time.Duration {
	switch {
	case configured <= 0:
		return DefaultDebounce
	case configured < MinDebounce:
		return MinDebounce
	case configured > MaxDebounce:
		return MaxDebounce
	default:
		return configured
	}
}
