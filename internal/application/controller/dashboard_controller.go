package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/session"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/autocomplete"
	"weather-dashboard/internal/domain/usecase/dashboard"
	"weather-dashboard/pkg/util/numberutils"
)

const (
	maxSuggestions       = 5
	headerAcceptLanguage = "Accept-Language"
)

type DashboardController struct {
	api                 *echo.Group
	useCase             dashboard.UseCase
	autocompleteUseCase autocomplete.UseCase
}

func NewDashboardController(api *echo.Group, useCase dashboard.UseCase, autocompleteUseCase autocomplete.UseCase) *DashboardController {
	return &DashboardController{api: api, useCase: useCase, autocompleteUseCase: autocompleteUseCase}
}

// InitDashboardRoutes initializes dashboard session routes
func (controller *DashboardController) InitDashboardRoutes() {
	controller.api.POST("/sessions", controller.CreateSession)
	controller.api.GET("/sessions/:id", controller.GetSession)
	controller.api.POST("/sessions/:id/search", controller.Search)
	controller.api.PUT("/sessions/:id/language", controller.ChangeLanguage)
	controller.api.PUT("/sessions/:id/unit", controller.ChangeUnit)
	controller.api.POST("/sessions/:id/geolocation", controller.ReportGeolocation)
	controller.api.GET("/sessions/:id/suggestions", controller.Suggest)
}

// CreateSession godoc
// @Summary Open a dashboard session
// @Description Create an idle session. The language falls back to the Accept-Language header, then to English
// @Tags dashboard
// @Accept json
// @Produce json
// @Param Accept-Language header string false "Browser language preference"
// @Param session body model.CreateSessionDTO false "Initial language and unit"
// @Success 201 {object} model.DashboardView "New session"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /sessions [post]
func (controller *DashboardController) CreateSession(c echo.Context) error {
	var options model.CreateSessionDTO
	if err := bindAndValidate(c, &options); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	view, err := controller.useCase.CreateSession(c.Request().Context(), c.Request().Header.Get(headerAcceptLanguage), options)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, view)
}

// GetSession godoc
// @Summary Get a dashboard session
// @Description Render the current state of a session
// @Tags dashboard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} model.DashboardView "Session view"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id} [get]
func (controller *DashboardController) GetSession(c echo.Context) error {
	view, err := controller.useCase.View(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// Search godoc
// @Summary Search weather for a session
// @Description Search by city name, or by coordinates when the place was already picked from suggestions or the map.
// @Description A failed search still answers 200, with state ERROR and the message in the view error field
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param search body model.SearchDTO true "Query or selected place"
// @Success 200 {object} model.DashboardView "Session view after the search"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/search [post]
func (controller *DashboardController) Search(c echo.Context) error {
	var body model.SearchDTO
	if err := bindAndValidate(c, &body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	view, err := controller.useCase.Submit(c.Request().Context(), c.Param("id"), toSearchRequest(body))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// ChangeLanguage godoc
// @Summary Change the session language
// @Description Store the language and repeat the last search in it
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param language body model.LanguageDTO true "Language code"
// @Success 200 {object} model.DashboardView "Session view in the new language"
// @Failure 400 {object} map[string]string "Unsupported language"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/language [put]
func (controller *DashboardController) ChangeLanguage(c echo.Context) error {
	var body model.LanguageDTO
	if err := bindAndValidate(c, &body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	view, err := controller.useCase.ChangeLanguage(c.Request().Context(), c.Param("id"), body.Lang)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// ChangeUnit godoc
// @Summary Change the temperature unit
// @Description Switch between Celsius and Fahrenheit without fetching again
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param unit body model.UnitDTO true "C or F"
// @Success 200 {object} model.DashboardView "Session view in the new unit"
// @Failure 400 {object} map[string]string "Invalid unit"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/unit [put]
func (controller *DashboardController) ChangeUnit(c echo.Context) error {
	var body model.UnitDTO
	if err := bindAndValidate(c, &body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	view, err := controller.useCase.ChangeUnit(c.Request().Context(), c.Param("id"), entity.TemperatureUnit(body.Unit))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// ReportGeolocation godoc
// @Summary Report the browser position
// @Description Search at the reported coordinates, or record why the position is not available
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param geolocation body model.GeolocationDTO true "Coordinates or failure reason"
// @Success 200 {object} model.DashboardView "Session view"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/geolocation [post]
func (controller *DashboardController) ReportGeolocation(c echo.Context) error {
	var body model.GeolocationDTO
	if err := bindAndValidate(c, &body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	ctx := c.Request().Context()
	id := c.Param("id")

	var view *model.DashboardView
	var err error
	if body.Error != "" {
		view, err = controller.useCase.GeolocationFailed(ctx, id, body.Error)
	} else {
		view, err = controller.useCase.Submit(ctx, id, entity.SearchRequest{
			Selection: &entity.LocationSelection{Coord: entity.Coordinates{Lat: *body.Lat, Lon: *body.Lon}},
			Source:    entity.SourceGeolocation,
		})
	}
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// Suggest godoc
// @Summary City suggestions
// @Description Debounced city autocomplete. Queries of two characters or fewer return an empty list
// @Tags dashboard
// @Produce json
// @Param id path string true "Session ID"
// @Param q query string true "Partial city name"
// @Param limit query int false "Maximum number of candidates" default(5)
// @Success 200 {array} model.SuggestionView "Candidates"
// @Success 204 "Replaced by a newer query"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/suggestions [get]
func (controller *DashboardController) Suggest(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	view, err := controller.useCase.View(ctx, id)
	if err != nil {
		return errorResponse(c, err)
	}

	suggestions, err := controller.autocompleteUseCase.Suggest(ctx, id, c.QueryParam("q"), view.Lang)
	if errors.Is(err, autocomplete.ErrSuperseded) {
		return c.NoContent(http.StatusNoContent)
	}
	if err != nil {
		return errorResponse(c, err)
	}

	limit := numberutils.ClampInt(numberutils.ToIntWithDefault(c.QueryParam("limit"), maxSuggestions), 1, maxSuggestions)
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return c.JSON(http.StatusOK, suggestions)
}

func toSearchRequest(body model.SearchDTO) entity.SearchRequest {
	req := entity.SearchRequest{Query: body.Query, Source: entity.SearchSource(body.Source)}
	if body.Lat != nil && body.Lon != nil {
		req.Selection = &entity.LocationSelection{
			Coord:      entity.Coordinates{Lat: *body.Lat, Lon: *body.Lon},
			Name:       body.Name,
			LocalNames: body.LocalNames,
			Country:    body.Country,
		}
		if req.Source == "" {
			req.Source = entity.SourceAutocomplete
		}
	}
	return req
}

func bindAndValidate(c echo.Context, target interface{}) error {
	if err := c.Bind(target); err != nil {
		return errors.New("Invalid request body")
	}
	return c.Validate(target)
}

func errorResponse(c echo.Context, err error) error {
	if errors.Is(err, session.ErrSessionNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Session not found"})
	}

	var weatherErr *model.WeatherError
	if errors.As(err, &weatherErr) {
		return c.JSON(weatherErr.HTTPStatus(), map[string]string{"error": weatherErr.Message})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
