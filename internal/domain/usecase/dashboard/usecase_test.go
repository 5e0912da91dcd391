package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/session"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/presenter"
)

type searchCall struct {
	req  entity.SearchRequest
	lang string
}

// stubWeather answers searches through a function and records every call
type stubWeather struct {
	mu     sync.Mutex
	calls  []searchCall
	search func(ctx context.Context, req entity.SearchRequest, lang string) (*entity.WeatherReport, error)
}

func (s *stubWeather) Search(ctx context.Context, req entity.SearchRequest, lang string) (*entity.WeatherReport, error) {
	s.mu.Lock()
	s.calls = append(s.calls, searchCall{req: req, lang: lang})
	s.mu.Unlock()
	return s.search(ctx, req, lang)
}

func (s *stubWeather) SearchCities(context.Context, string, string) ([]entity.GeocodeResult, error) {
	return nil, nil
}

func (s *stubWeather) Provider() string {
	return "weatherapi"
}

func (s *stubWeather) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *stubWeather) lastCall() searchCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[len(s.calls)-1]
}

func reportFor(name string, temp float64) *entity.WeatherReport {
	return &entity.WeatherReport{
		Current: &entity.CurrentConditions{
			Name:      name,
			Temp:      temp,
			Condition: "Sunny",
			Coord:     entity.Coordinates{Lat: 38.207, Lon: 128.5918},
		},
		Forecast:    &entity.ForecastBundle{Hourly: []entity.HourlyPoint{}, Daily: []entity.DailyPoint{}},
		AirQuality:  &entity.AirQuality{},
		DisplayName: name,
	}
}

// sokchoWeather localizes the city name like the resolver does for the ko local name
func sokchoWeather() *stubWeather {
	return &stubWeather{search: func(_ context.Context, req entity.SearchRequest, lang string) (*entity.WeatherReport, error) {
		if lang == "ko" {
			return reportFor("속초시", 12.4), nil
		}
		return reportFor("Sokcho", 12.4), nil
	}}
}

func newUseCase(weather *stubWeather) (UseCase, *session.MemorySessionGateway) {
	store := session.NewMemorySessionGateway()
	uc := NewDashboardUseCase(weather, store, presenter.New("https://weather.example/"))
	return uc, store
}

func createSession(t *testing.T, uc UseCase, acceptLanguage string) string {
	t.Helper()
	view, err := uc.CreateSession(context.Background(), acceptLanguage, model.CreateSessionDTO{})
	require.NoError(t, err)
	return view.SessionID
}

func TestCreateSession(t *testing.T) {
	uc, _ := newUseCase(sokchoWeather())
	ctx := context.Background()

	view, err := uc.CreateSession(ctx, "ko-KR,ko;q=0.9,en;q=0.8", model.CreateSessionDTO{})
	require.NoError(t, err)
	assert.NotEmpty(t, view.SessionID)
	assert.Equal(t, "ko", view.Lang)
	assert.Equal(t, "C", view.Unit)
	assert.Equal(t, "IDLE", view.State)
	assert.Nil(t, view.Current)

	view, err = uc.CreateSession(ctx, "pt-BR,pt;q=0.9", model.CreateSessionDTO{})
	require.NoError(t, err)
	assert.Equal(t, "en", view.Lang)

	view, err = uc.CreateSession(ctx, "ko-KR", model.CreateSessionDTO{Lang: "ar", Unit: "F"})
	require.NoError(t, err)
	assert.Equal(t, "ar", view.Lang)
	assert.True(t, view.RTL)
	assert.Equal(t, "F", view.Unit)
}

func TestSubmit_SokchoInKoreanThenFahrenheit(t *testing.T) {
	weather := sokchoWeather()
	uc, _ := newUseCase(weather)
	ctx := context.Background()
	id := createSession(t, uc, "ko")

	view, err := uc.Submit(ctx, id, entity.SearchRequest{Query: "Sokcho"})
	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", view.State)
	assert.False(t, view.Loading)
	assert.Empty(t, view.Error)
	require.NotNil(t, view.Current)
	assert.Equal(t, "속초시", view.Current.Name)
	assert.Equal(t, 12, view.Current.Temp)
	assert.Equal(t, entity.SourceTyped, weather.lastCall().req.Source)

	view, err = uc.ChangeUnit(ctx, id, entity.UnitFahrenheit)
	require.NoError(t, err)
	assert.Equal(t, 54, view.Current.Temp)
	assert.Equal(t, "속초시", view.Current.Name)
	assert.Equal(t, 1, weather.callCount(), "unit toggle never fetches")
}

func TestSubmit_FailureClearsReport(t *testing.T) {
	fail := false
	weather := &stubWeather{search: func(context.Context, entity.SearchRequest, string) (*entity.WeatherReport, error) {
		if fail {
			return nil, model.NewWeatherError(model.KindNotFound, "weatherapi", "Failed to fetch weather data: City not found", nil)
		}
		return reportFor("Sokcho", 10), nil
	}}
	uc, _ := newUseCase(weather)
	ctx := context.Background()
	id := createSession(t, uc, "en")

	_, err := uc.Submit(ctx, id, entity.SearchRequest{Query: "Sokcho"})
	require.NoError(t, err)

	fail = true
	view, err := uc.Submit(ctx, id, entity.SearchRequest{Query: "Atlantis"})
	require.NoError(t, err)
	assert.Equal(t, "ERROR", view.State)
	assert.Equal(t, "Failed to fetch weather data: City not found", view.Error)
	assert.Nil(t, view.Current)
	assert.Nil(t, view.Map)
	assert.Empty(t, view.Daily)
}

func TestSubmit_UnclassifiedErrorUsesLocalizedMessage(t *testing.T) {
	weather := &stubWeather{search: func(context.Context, entity.SearchRequest, string) (*entity.WeatherReport, error) {
		return nil, errors.New("boom")
	}}
	uc, _ := newUseCase(weather)
	id := createSession(t, uc, "ko")

	view, err := uc.Submit(context.Background(), id, entity.SearchRequest{Query: "Seoul"})

	require.NoError(t, err)
	assert.Equal(t, "ERROR", view.State)
	assert.Equal(t, "날씨 정보를 가져오는데 실패했습니다", view.Error)
}

func TestSubmit_MissingCredential(t *testing.T) {
	weather := &stubWeather{search: func(context.Context, entity.SearchRequest, string) (*entity.WeatherReport, error) {
		return nil, model.NewWeatherError(model.KindMissingCredential, "weatherapi", model.MessageMissingCredential, nil)
	}}
	uc, _ := newUseCase(weather)
	id := createSession(t, uc, "en")

	view, err := uc.Submit(context.Background(), id, entity.SearchRequest{Query: "Seoul"})

	require.NoError(t, err)
	assert.Equal(t, "ERROR", view.State)
	assert.Equal(t, "API Key is missing", view.Error)
}

func TestSubmit_StaleResultIsDiscarded(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	weather := &stubWeather{search: func(_ context.Context, req entity.SearchRequest, _ string) (*entity.WeatherReport, error) {
		if req.Query == "slow" {
			close(entered)
			<-release
			return reportFor("Slow City", 1), nil
		}
		return reportFor("Fast City", 2), nil
	}}
	uc, store := newUseCase(weather)
	ctx := context.Background()
	id := createSession(t, uc, "en")

	var slowView *model.DashboardView
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		slowView, _ = uc.Submit(ctx, id, entity.SearchRequest{Query: "slow"})
	}()

	<-entered
	fastView, err := uc.Submit(ctx, id, entity.SearchRequest{Query: "fast"})
	require.NoError(t, err)
	assert.Equal(t, "Fast City", fastView.Current.Name)

	close(release)
	wg.Wait()

	require.NotNil(t, slowView)
	assert.Equal(t, "Fast City", slowView.Current.Name, "the late result must not replace the newer one")

	stored, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Fast City", stored.Report.Current.Name)
	assert.Equal(t, "fast", stored.LastSearch.Query)
	assert.Equal(t, uint64(2), stored.Generation)
}

func TestSubmit_LoadingWhileInFlight(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	weather := &stubWeather{search: func(context.Context, entity.SearchRequest, string) (*entity.WeatherReport, error) {
		close(entered)
		<-release
		return reportFor("Sokcho", 3), nil
	}}
	uc, _ := newUseCase(weather)
	ctx := context.Background()
	id := createSession(t, uc, "en")

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = uc.Submit(ctx, id, entity.SearchRequest{Query: "Sokcho"})
	}()

	<-entered
	view, err := uc.View(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "LOADING", view.State)
	assert.True(t, view.Loading)

	close(release)
	<-done

	view, err = uc.View(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", view.State)
	assert.False(t, view.Loading)
}

func TestChangeLanguage_ReplaysLastSearch(t *testing.T) {
	weather := sokchoWeather()
	uc, _ := newUseCase(weather)
	ctx := context.Background()
	id := createSession(t, uc, "en")

	view, err := uc.Submit(ctx, id, entity.SearchRequest{Query: "Sokcho", Source: entity.SourceAutocomplete})
	require.NoError(t, err)
	assert.Equal(t, "Sokcho", view.Current.Name)

	view, err = uc.ChangeLanguage(ctx, id, "ko")
	require.NoError(t, err)
	assert.Equal(t, "ko", view.Lang)
	assert.Equal(t, "속초시", view.Current.Name)

	require.Equal(t, 2, weather.callCount())
	last := weather.lastCall()
	assert.Equal(t, "ko", last.lang)
	assert.Equal(t, "Sokcho", last.req.Query)
	assert.Equal(t, entity.SourceAutocomplete, last.req.Source)
}

func TestChangeLanguage_WithoutSearchDoesNotFetch(t *testing.T) {
	weather := sokchoWeather()
	uc, _ := newUseCase(weather)
	id := createSession(t, uc, "en")

	view, err := uc.ChangeLanguage(context.Background(), id, "ja")

	require.NoError(t, err)
	assert.Equal(t, "ja", view.Lang)
	assert.Equal(t, "IDLE", view.State)
	assert.Zero(t, weather.callCount())
}

func TestChangeLanguage_Unsupported(t *testing.T) {
	uc, _ := newUseCase(sokchoWeather())
	id := createSession(t, uc, "en")

	_, err := uc.ChangeLanguage(context.Background(), id, "pt")

	assert.ErrorIs(t, err, model.ErrInvalidRequest)
}

func TestChangeUnit_Invalid(t *testing.T) {
	uc, _ := newUseCase(sokchoWeather())
	id := createSession(t, uc, "en")

	_, err := uc.ChangeUnit(context.Background(), id, "K")

	assert.ErrorIs(t, err, model.ErrInvalidRequest)
}

func TestGeolocationFailed_KeepsDisplayedData(t *testing.T) {
	uc, _ := newUseCase(sokchoWeather())
	ctx := context.Background()
	id := createSession(t, uc, "en")

	_, err := uc.Submit(ctx, id, entity.SearchRequest{Query: "Sokcho"})
	require.NoError(t, err)

	view, err := uc.GeolocationFailed(ctx, id, GeoDenied)
	require.NoError(t, err)
	assert.Equal(t, "Location access denied or unavailable.", view.Error)
	assert.False(t, view.Loading)
	require.NotNil(t, view.Current)
	assert.Equal(t, "Sokcho", view.Current.Name)
	assert.Equal(t, "SUCCESS", view.State)
}

func TestGeolocationFailed_DuringSearchLeavesLoading(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	calls := 0
	weather := &stubWeather{search: func(context.Context, entity.SearchRequest, string) (*entity.WeatherReport, error) {
		calls++
		if calls == 1 {
			return reportFor("Sokcho", 12.4), nil
		}
		close(entered)
		<-release
		return reportFor("Seoul", 8), nil
	}}
	uc, _ := newUseCase(weather)
	ctx := context.Background()
	id := createSession(t, uc, "en")

	_, err := uc.Submit(ctx, id, entity.SearchRequest{Query: "Sokcho"})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = uc.Submit(ctx, id, entity.SearchRequest{Query: "Seoul"})
	}()
	<-entered

	view, err := uc.GeolocationFailed(ctx, id, GeoDenied)
	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", view.State)
	assert.False(t, view.Loading)
	assert.Equal(t, "Location access denied or unavailable.", view.Error)
	require.NotNil(t, view.Current)
	assert.Equal(t, "Sokcho", view.Current.Name)

	close(release)
	<-done
}

func TestGeolocationFailed_DuringFirstSearchIsError(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	weather := &stubWeather{search: func(context.Context, entity.SearchRequest, string) (*entity.WeatherReport, error) {
		close(entered)
		<-release
		return reportFor("Seoul", 8), nil
	}}
	uc, _ := newUseCase(weather)
	ctx := context.Background()
	id := createSession(t, uc, "en")

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = uc.Submit(ctx, id, entity.SearchRequest{Query: "Seoul"})
	}()
	<-entered

	view, err := uc.GeolocationFailed(ctx, id, GeoUnavailable)
	require.NoError(t, err)
	assert.Equal(t, "ERROR", view.State)
	assert.False(t, view.Loading)

	close(release)
	<-done
}

func TestGeolocationFailed_Unsupported(t *testing.T) {
	uc, _ := newUseCase(sokchoWeather())
	id := createSession(t, uc, "fr")

	view, err := uc.GeolocationFailed(context.Background(), id, GeoUnsupported)

	require.NoError(t, err)
	assert.Equal(t, "Geolocation is not supported by this browser.", view.Error)
	assert.Equal(t, "ERROR", view.State)
}

func TestUnknownSession(t *testing.T) {
	uc, _ := newUseCase(sokchoWeather())
	ctx := context.Background()

	_, err := uc.View(ctx, "missing")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	_, err = uc.Submit(ctx, "missing", entity.SearchRequest{Query: "Sokcho"})
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	_, err = uc.ChangeUnit(ctx, "missing", entity.UnitFahrenheit)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestSweep(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := session.NewMemorySessionGateway().WithClock(func() time.Time { return now })
	uc := NewDashboardUseCase(sokchoWeather(), store, presenter.New(""))
	ctx := context.Background()

	_, err := uc.CreateSession(ctx, "en", model.CreateSessionDTO{})
	require.NoError(t, err)
	now = now.Add(2 * time.Hour)

	removed, err := uc.Sweep(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
