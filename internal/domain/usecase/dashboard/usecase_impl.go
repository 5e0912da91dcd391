package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/session"
	"weather-dashboard/internal/domain/locale"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/presenter"
	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/internal/infra/metrics"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

// errStale aborts the commit of a search result whose session has moved on
var errStale = errors.New("stale search result")

type dashboardUseCase struct {
	weatherUseCase weather.UseCase
	sessions       session.SessionGateway
	presenter      *presenter.Presenter
	newID          func() string
}

func NewDashboardUseCase(weatherUseCase weather.UseCase, sessions session.SessionGateway, presenter *presenter.Presenter) UseCase {
	return &dashboardUseCase{
		weatherUseCase: weatherUseCase,
		sessions:       sessions,
		presenter:      presenter,
		newID:          uuid.NewString,
	}
}

func (uc *dashboardUseCase) CreateSession(ctx context.Context, acceptLanguage string, options model.CreateSessionDTO) (*model.DashboardView, error) {
	lang := locale.Detect(acceptLanguage)
	if locale.IsSupported(options.Lang) {
		lang = options.Lang
	}

	unit := entity.UnitCelsius
	if entity.TemperatureUnit(options.Unit) == entity.UnitFahrenheit {
		unit = entity.UnitFahrenheit
	}

	created := entity.Session{
		ID:    uc.newID(),
		Lang:  lang,
		Unit:  unit,
		State: entity.StateIdle,
	}
	if err := uc.sessions.Create(ctx, created); err != nil {
		return nil, err
	}

	log.Info(msg.GetMessage("dashboard.session.created", created.ID, lang),
		zap.String("session_id", created.ID),
		zap.String("lang", lang))
	return uc.View(ctx, created.ID)
}

func (uc *dashboardUseCase) Submit(ctx context.Context, id string, req entity.SearchRequest) (*model.DashboardView, error) {
	if req.Source == "" {
		req.Source = entity.SourceTyped
	}

	started, err := uc.sessions.Update(ctx, id, func(s *entity.Session) error {
		s.State = entity.StateLoading
		s.Loading = true
		s.ErrorMessage = ""
		s.LastSearch = &req
		s.Generation++
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.run(ctx, started.ID, started.Generation, started.Lang, req)
}

// run performs the search and commits its outcome unless a newer search superseded it
func (uc *dashboardUseCase) run(ctx context.Context, id string, generation uint64, lang string, req entity.SearchRequest) (*model.DashboardView, error) {
	report, searchErr := uc.weatherUseCase.Search(ctx, req, lang)

	// The outcome is committed even when the caller went away, so the session never stays Loading.
	commitCtx := context.WithoutCancel(ctx)
	finished, err := uc.sessions.Update(commitCtx, id, func(s *entity.Session) error {
		if s.Generation != generation {
			return errStale
		}
		s.Loading = false
		if searchErr != nil {
			s.State = entity.StateError
			s.Report = nil
			s.ErrorMessage = errorMessage(searchErr, s.Lang)
			return nil
		}
		s.State = entity.StateSuccess
		s.Report = report
		s.ErrorMessage = ""
		return nil
	})

	if errors.Is(err, errStale) {
		metrics.RecordSearch(string(req.Source), "stale")
		log.Debug(msg.GetMessage("dashboard.search.stale", id, generation),
			zap.String("session_id", id),
			zap.Uint64("generation", generation))
		return uc.View(commitCtx, id)
	}
	if err != nil {
		return nil, err
	}

	if searchErr != nil {
		metrics.RecordSearch(string(req.Source), "error")
	} else {
		metrics.RecordSearch(string(req.Source), "success")
	}

	view := uc.presenter.Present(*finished)
	return &view, nil
}

func (uc *dashboardUseCase) ChangeLanguage(ctx context.Context, id string, lang string) (*model.DashboardView, error) {
	if !locale.IsSupported(lang) {
		return nil, model.NewWeatherError(model.KindInvalidRequest, "", model.MessageInvalidRequest, nil)
	}

	updated, err := uc.sessions.Update(ctx, id, func(s *entity.Session) error {
		s.Lang = lang
		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated.LastSearch == nil {
		view := uc.presenter.Present(*updated)
		return &view, nil
	}
	return uc.Submit(ctx, id, *updated.LastSearch)
}

func (uc *dashboardUseCase) ChangeUnit(ctx context.Context, id string, unit entity.TemperatureUnit) (*model.DashboardView, error) {
	if unit != entity.UnitCelsius && unit != entity.UnitFahrenheit {
		return nil, model.NewWeatherError(model.KindInvalidRequest, "", model.MessageInvalidRequest, nil)
	}

	updated, err := uc.sessions.Update(ctx, id, func(s *entity.Session) error {
		s.Unit = unit
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := uc.presenter.Present(*updated)
	return &view, nil
}

func (uc *dashboardUseCase) GeolocationFailed(ctx context.Context, id string, reason string) (*model.DashboardView, error) {
	key := locale.KeyGeoUnavailable
	if reason == GeoUnsupported {
		key = locale.KeyGeoUnsupported
	}

	updated, err := uc.sessions.Update(ctx, id, func(s *entity.Session) error {
		s.ErrorMessage = locale.Text(s.Lang, key)
		s.Loading = false
		switch {
		case s.Report == nil:
			s.State = entity.StateError
		case s.State == entity.StateLoading:
			s.State = entity.StateSuccess
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(msg.GetMessage("dashboard.geolocation.failed", id, reason),
		zap.String("session_id", id),
		zap.String("reason", reason))
	view := uc.presenter.Present(*updated)
	return &view, nil
}

func (uc *dashboardUseCase) View(ctx context.Context, id string) (*model.DashboardView, error) {
	current, err := uc.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	view := uc.presenter.Present(*current)
	return &view, nil
}

func (uc *dashboardUseCase) Sweep(ctx context.Context, idle time.Duration) (int, error) {
	removed, err := uc.sessions.Sweep(ctx, idle)
	if err != nil {
		return 0, err
	}
	metrics.RecordSweep(removed)

	if count, err := uc.sessions.Count(ctx); err == nil {
		metrics.UpdateSessionsOpen(count)
	}
	return removed, nil
}

// errorMessage is the single user-facing message of a failed search
func errorMessage(err error, lang string) string {
	var weatherErr *model.WeatherError
	if errors.As(err, &weatherErr) && weatherErr.Message != "" {
		return weatherErr.Message
	}
	return locale.Text(lang, locale.KeyErrorFetch)
}
