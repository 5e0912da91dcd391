package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"weather-dashboard/configs"
	_ "weather-dashboard/docs"
	"weather-dashboard/internal/application/controller"
	"weather-dashboard/internal/application/middleware"
	"weather-dashboard/internal/application/schedule"
	"weather-dashboard/internal/domain/gateway/session"
	"weather-dashboard/internal/domain/presenter"
	"weather-dashboard/internal/domain/usecase/autocomplete"
	"weather-dashboard/internal/domain/usecase/dashboard"
	"weather-dashboard/internal/domain/usecase/health"
	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/internal/infra/provider"
	"weather-dashboard/internal/infra/store"
	"weather-dashboard/pkg/debounce"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/resource"
)

// @title Weather Dashboard API
// @version 1.0
// @description Session based weather dashboard backed by WeatherAPI or OpenWeatherMap.
// @BasePath /weather-dashboard
func main() {
	_ = godotenv.Load()
	configs.Env = configs.LoadEnv()

	if err := msg.Load(); err != nil {
		log.Fatal(err.Error())
	}
	if err := resource.Load(); err != nil {
		log.Fatal(msg.GetMessage("app.error.config", err), zap.Error(err))
	}
	defer log.Sync()

	log.Info(msg.GetMessage("app.start"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Validator = controller.NewRequestValidator()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	middleware.SetupRequestLogger(e)
	api := e.Group(configs.Env.ContextPath)

	// Init Gateways
	weatherGateway, err := provider.NewWeatherGateway()
	if err != nil {
		log.Fatal(msg.GetMessage("app.error.config", err), zap.Error(err))
	}
	sessionGateway, closeSessions, err := store.NewSessionGateway(ctx)
	if err != nil {
		log.Fatal(msg.GetMessage("app.error.config", err), zap.Error(err))
	}
	defer closeSessions()

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway)
	dashboardUseCase := dashboard.NewDashboardUseCase(weatherUseCase, sessionGateway,
		presenter.New(resource.GetString("app.server.share-url")))
	autocompleteUseCase := autocomplete.NewAutocompleteUseCase(weatherUseCase,
		debounce.New(autocomplete.DebounceDelay(resource.GetDuration("app.autocomplete.debounce"))))
	healthUseCase := health.NewHealthUseCase(sessionGateway, weatherGateway.Name(), resource.GetString("weather.api-key"))

	// Init Controller
	healthController := controller.NewHealthController(api, healthUseCase)
	dashboardController := controller.NewDashboardController(api, dashboardUseCase, autocompleteUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	dashboardController.InitDashboardRoutes()
	api.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Schedule
	sessionScheduler := schedule.NewSessionScheduler(dashboardUseCase,
		resource.GetStringOrDefault("app.session.sweep.cron", "@every 5m"),
		resource.GetDurationOrDefault("app.session.ttl", session.DefaultTTL))
	sessionScheduler.InitSessionScheduleTasks()

	// Start Routes
	go func() {
		log.Info(msg.GetMessage("app.started", configs.Env.Port))
		if err := e.Start(":" + configs.Env.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err.Error(), zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stop"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	sessionScheduler.Stop(shutdownCtx)
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error(err.Error(), zap.Error(err))
	}
}
