package autocomplete

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/pkg/debounce"
)

type stubCities struct {
	mu      sync.Mutex
	queries []string
}

func (s *stubCities) Search(context.Context, entity.SearchRequest, string) (*entity.WeatherReport, error) {
	return nil, nil
}

func (s *stubCities) SearchCities(_ context.Context, query string, _ string) ([]entity.GeocodeResult, error) {
	s.mu.Lock()
	s.queries = append(s.queries, query)
	s.mu.Unlock()
	return []entity.GeocodeResult{{
		Name:       query,
		LocalNames: map[string]string{"ko": "속초시"},
		Country:    "KR",
		Coord:      entity.Coordinates{Lat: 38.2, Lon: 128.6},
	}}, nil
}

func (s *stubCities) Provider() string {
	return "openweathermap"
}

func (s *stubCities) seen() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

func TestSuggest_ShortQueryNeverCallsProvider(t *testing.T) {
	cities := &stubCities{}
	uc := NewAutocompleteUseCase(cities, debounce.New(10*time.Millisecond))

	for _, query := range []string{"", "a", "ab", " ab ", "서울"} {
		suggestions, err := uc.Suggest(context.Background(), "s1", query, "en")
		require.NoError(t, err)
		assert.Empty(t, suggestions, query)
	}
	assert.Empty(t, cities.seen())
}

func TestSuggest_ReturnsLocalizedCandidates(t *testing.T) {
	cities := &stubCities{}
	uc := NewAutocompleteUseCase(cities, debounce.New(10*time.Millisecond))

	suggestions, err := uc.Suggest(context.Background(), "s1", "Sokcho", "ko")

	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "속초시", suggestions[0].Name)
	assert.Equal(t, "속초시, KR", suggestions[0].Label)
	assert.Equal(t, []string{"Sokcho"}, cities.seen())
}

func TestSuggest_NewerQuerySupersedesOlder(t *testing.T) {
	cities := &stubCities{}
	uc := NewAutocompleteUseCase(cities, debounce.New(100*time.Millisecond))
	ctx := context.Background()

	var olderErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, olderErr = uc.Suggest(ctx, "s1", "Sok", "en")
	}()

	time.Sleep(20 * time.Millisecond)
	suggestions, err := uc.Suggest(ctx, "s1", "Sokcho", "en")
	<-done

	require.NoError(t, err)
	assert.Len(t, suggestions, 1)
	assert.ErrorIs(t, olderErr, ErrSuperseded)
	assert.Equal(t, []string{"Sokcho"}, cities.seen())
}

func TestSuggest_ShortQueryCancelsPending(t *testing.T) {
	cities := &stubCities{}
	uc := NewAutocompleteUseCase(cities, debounce.New(100*time.Millisecond))
	ctx := context.Background()

	var pendingErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, pendingErr = uc.Suggest(ctx, "s1", "Sokcho", "en")
	}()

	time.Sleep(20 * time.Millisecond)
	_, err := uc.Suggest(ctx, "s1", "So", "en")
	<-done

	require.NoError(t, err)
	assert.ErrorIs(t, pendingErr, ErrSuperseded)
	assert.Empty(t, cities.seen())
}

func TestSuggest_KeysAreIndependent(t *testing.T) {
	cities := &stubCities{}
	uc := NewAutocompleteUseCase(cities, debounce.New(30*time.Millisecond))
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, key := range []string{"s1", "s2"} {
		wg.Add(1)
		go func(i int, key string) {
			defer wg.Done()
			_, errs[i] = uc.Suggest(ctx, key, "Seoul", "en")
		}(i, key)
	}
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	assert.Len(t, cities.seen(), 2)
}

func TestDebounceDelay(t *testing.T) {
	assert.Equal(t, DefaultDebounce, DebounceDelay(0))
	assert.Equal(t, MinDebounce, DebounceDelay(50*time.Millisecond))
	assert.Equal(t, 400*time.Millisecond, DebounceDelay(400*time.Millisecond))
	assert.Equal(t, MaxDebounce, DebounceDelay(2*time.Second))
}
