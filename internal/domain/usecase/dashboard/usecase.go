package dashboard

import (
	"context"
	"time"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
)

// Geolocation failure reasons reported by clients
const (
	GeoDenied      = "denied"
	GeoUnavailable = "unavailable"
	GeoUnsupported = "unsupported"
)

type UseCase interface {
	// CreateSession opens an idle session. The language comes from options when supported,
	// otherwise from the Accept-Language header.
	CreateSession(ctx context.Context, acceptLanguage string, options model.CreateSessionDTO) (*model.DashboardView, error)

	// Submit runs a search for the session. The session is Loading until the search ends,
	// then Success with the report or Error with the report cleared. A result that arrives
	// after a newer Submit started is discarded.
	Submit(ctx context.Context, id string, req entity.SearchRequest) (*model.DashboardView, error)

	// ChangeLanguage stores lang and replays the last search in it
	ChangeLanguage(ctx context.Context, id string, lang string) (*model.DashboardView, error)

	// ChangeUnit switches the display unit without fetching
	ChangeUnit(ctx context.Context, id string, unit entity.TemperatureUnit) (*model.DashboardView, error)

	// GeolocationFailed records a client-side geolocation failure, keeping any displayed report
	GeolocationFailed(ctx context.Context, id string, reason string) (*model.DashboardView, error)

	View(ctx context.Context, id string) (*model.DashboardView, error)

	// Sweep evicts sessions idle for longer than idle
	Sweep(ctx context.Context, idle time.Duration) (int, error)
}
