package autocomplete

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/locale"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/presenter"
	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/pkg/debounce"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

type autocompleteUseCase struct {
	weatherUseCase weather.UseCase
	debouncer      *debounce.Debouncer
}

func NewAutocompleteUseCase(weatherUseCase weather.UseCase, debouncer *debounce.Debouncer) UseCase {
	return &autocompleteUseCase{weatherUseCase: weatherUseCase, debouncer: debouncer}
}

func (uc *autocompleteUseCase) Suggest(ctx context.Context, key string, query string, lang string) ([]model.SuggestionView, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) <= MinQueryLength {
		uc.debouncer.Cancel(key)
		return []model.SuggestionView{}, nil
	}

	lang = locale.Normalize(lang)
	var results []entity.GeocodeResult

	err := uc.debouncer.Do(ctx, key, func(callCtx context.Context) error {
		var err error
		results, err = uc.weatherUseCase.SearchCities(callCtx, query, lang)
		return err
	})
	if err != nil {
		log.Debug(msg.GetMessage("autocomplete.suggest.aborted", query, err),
			zap.String("key", key),
			zap.Error(err))
		return nil, err
	}

	return presenter.Suggestions(results, lang), nil
}
