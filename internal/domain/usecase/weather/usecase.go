package weather

import (
	"context"

	"weather-dashboard/internal/domain/entity"
)

type UseCase interface {
	// Search resolves req to coordinates and a display name, then fetches current conditions,
	// forecast and air quality. Any failing fetch fails the whole search.
	Search(ctx context.Context, req entity.SearchRequest, lang string) (*entity.WeatherReport, error)

	// SearchCities geocodes a free-text query for autocomplete
	SearchCities(ctx context.Context, query string, lang string) ([]entity.GeocodeResult, error)

	// Provider returns the name of the weather provider in use
	Provider() string
}
