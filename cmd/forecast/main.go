// Command forecast runs one dashboard search from the command line and prints the view as JSON.
//
// Usage:
//
//	go run ./cmd/forecast --query=Sokcho --lang=ko
//	go run ./cmd/forecast --lat=38.207 --lon=128.5918 --unit=F
//
// Properties and messages are read like the server does, so WEATHER_PROVIDER and
// WEATHER_API_KEY (or a .env file) select the provider.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/locale"
	"weather-dashboard/internal/domain/presenter"
	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/internal/infra/provider"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/resource"
)

type options struct {
	query string
	lat   float64
	lon   float64
	lang  string
	unit  string
	coord bool
}

func parseOptions(args []string) (options, error) {
	var opts options
	flags := pflag.NewFlagSet("forecast", pflag.ContinueOnError)
	flags.StringVarP(&opts.query, "query", "q", "", "city name to search")
	flags.Float64Var(&opts.lat, "lat", 0, "latitude of an already known place")
	flags.Float64Var(&opts.lon, "lon", 0, "longitude of an already known place")
	flags.StringVar(&opts.lang, "lang", locale.Default, "display language")
	flags.StringVar(&opts.unit, "unit", string(entity.UnitCelsius), "temperature unit, C or F")

	if err := flags.Parse(args); err != nil {
		return opts, err
	}

	opts.coord = flags.Changed("lat") || flags.Changed("lon")
	if opts.coord && !(flags.Changed("lat") && flags.Changed("lon")) {
		return opts, errors.New("--lat and --lon must be given together")
	}
	if !opts.coord && opts.query == "" && flags.NArg() > 0 {
		opts.query = flags.Arg(0)
	}
	if !opts.coord && opts.query == "" {
		return opts, errors.New("a --query or --lat/--lon is required")
	}
	if entity.TemperatureUnit(opts.unit) != entity.UnitCelsius && entity.TemperatureUnit(opts.unit) != entity.UnitFahrenheit {
		return opts, fmt.Errorf("unknown unit %q", opts.unit)
	}
	if !locale.IsSupported(opts.lang) {
		return opts, fmt.Errorf("unsupported language %q", opts.lang)
	}
	return opts, nil
}

func (opts options) request() entity.SearchRequest {
	if opts.coord {
		return entity.SearchRequest{
			Selection: &entity.LocationSelection{Coord: entity.Coordinates{Lat: opts.lat, Lon: opts.lon}},
			Source:    entity.SourceMap,
		}
	}
	return entity.SearchRequest{Query: opts.query, Source: entity.SourceTyped}
}

func run(ctx context.Context, opts options, useCase weather.UseCase, out io.Writer) error {
	report, err := useCase.Search(ctx, opts.request(), opts.lang)
	if err != nil {
		return err
	}

	view := presenter.New("").Present(entity.Session{
		Lang:   opts.lang,
		Unit:   entity.TemperatureUnit(opts.unit),
		State:  entity.StateSuccess,
		Report: report,
	})

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(view)
}

func main() {
	_ = godotenv.Load()

	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := resource.Load(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	_ = msg.Load()

	gateway, err := provider.NewWeatherGateway()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, weather.NewWeatherUseCase(gateway), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
