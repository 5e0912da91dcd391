package weather

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/locale"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

type weatherUseCase struct {
	apiGateway api.WeatherGateway
}

func NewWeatherUseCase(apiGateway api.WeatherGateway) UseCase {
	return &weatherUseCase{apiGateway: apiGateway}
}

func (uc *weatherUseCase) Provider() string {
	return uc.apiGateway.Name()
}

// Search resolves the location and fetches the three weather structures in parallel
func (uc *weatherUseCase) Search(ctx context.Context, req entity.SearchRequest, lang string) (*entity.WeatherReport, error) {
	lang = locale.Normalize(lang)

	coord, displayName, err := uc.resolveLocation(ctx, req, lang)
	if err != nil {
		log.Warn(msg.GetMessage("weather.search.failed", describe(req), err),
			zap.String("provider", uc.apiGateway.Name()),
			zap.String("source", string(req.Source)),
			zap.Error(err))
		return nil, err
	}

	report, err := uc.fetchInParallel(ctx, coord, lang)
	if err != nil {
		log.Warn(msg.GetMessage("weather.search.failed", describe(req), err),
			zap.String("provider", uc.apiGateway.Name()),
			zap.String("source", string(req.Source)),
			zap.Error(err))
		return nil, err
	}

	if displayName != "" {
		report.Current.Name = displayName
	}
	report.DisplayName = report.Current.Name

	log.Info(msg.GetMessage("weather.search.completed", report.DisplayName, coord.Query()),
		zap.String("provider", uc.apiGateway.Name()),
		zap.String("source", string(req.Source)),
		zap.String("lang", lang))
	return report, nil
}

func (uc *weatherUseCase) SearchCities(ctx context.Context, query string, lang string) ([]entity.GeocodeResult, error) {
	return uc.apiGateway.SearchCities(ctx, query, locale.Normalize(lang))
}

// resolveLocation turns req into coordinates. A selection is used as is, free text is geocoded
// and the first candidate wins. The returned name already honors lang.
func (uc *weatherUseCase) resolveLocation(ctx context.Context, req entity.SearchRequest, lang string) (entity.Coordinates, string, error) {
	if selection := req.Selection; selection != nil {
		if !selection.Coord.Valid() {
			return entity.Coordinates{}, "", model.NewWeatherError(model.KindInvalidRequest, uc.apiGateway.Name(), model.MessageInvalidRequest, nil)
		}
		name := selection.LocalNames[lang]
		if name == "" {
			name = selection.Name
		}
		return selection.Coord, name, nil
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return entity.Coordinates{}, "", model.NewWeatherError(model.KindInvalidRequest, uc.apiGateway.Name(), locale.Text(lang, locale.KeyEnterCity), nil)
	}

	candidates, err := uc.apiGateway.SearchCities(ctx, query, lang)
	if err != nil {
		return entity.Coordinates{}, "", err
	}
	if len(candidates) == 0 {
		message := fmt.Sprintf("%s: %s", locale.Text(lang, locale.KeyErrorFetch), locale.Text(lang, locale.KeyCityNotFound))
		return entity.Coordinates{}, "", model.NewWeatherError(model.KindNotFound, uc.apiGateway.Name(), message, nil)
	}

	best := candidates[0]
	return best.Coord, best.LocalizedName(lang), nil
}

// fetchInParallel gets current conditions, forecast and air quality at once. The first failure
// cancels the other requests and is returned alone.
func (uc *weatherUseCase) fetchInParallel(ctx context.Context, coord entity.Coordinates, lang string) (*entity.WeatherReport, error) {
	var (
		current    *entity.CurrentConditions
		forecast   *entity.ForecastBundle
		airQuality *entity.AirQuality
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		current, err = uc.apiGateway.GetCurrentConditions(groupCtx, coord, lang)
		return err
	})

	group.Go(func() error {
		var err error
		forecast, err = uc.apiGateway.GetForecast(groupCtx, coord, lang)
		return err
	})

	group.Go(func() error {
		var err error
		airQuality, err = uc.apiGateway.GetAirQuality(groupCtx, coord)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if current.AQI == nil && airQuality != nil {
		current.AQI = airQuality.Index
	}

	return &entity.WeatherReport{
		Current:    current,
		Forecast:   forecast,
		AirQuality: airQuality,
	}, nil
}

func describe(req entity.SearchRequest) string {
	if req.Selection != nil {
		if req.Selection.Name != "" {
			return req.Selection.Name
		}
		return req.Selection.Coord.Query()
	}
	return req.Query
}
