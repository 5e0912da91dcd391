// Package presenter turns dashboard session state into the view model clients render.
// Nothing here fetches or mutates; temperatures are converted only for display.
package presenter

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/locale"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/util/numberutils"
)

const (
	twitterIntentURL  = "https://twitter.com/intent/tweet?text="
	facebookSharerURL = "https://www.facebook.com/sharer/sharer.php?u="
)

var aqiKeys = map[int]string{
	1: locale.KeyGood,
	2: locale.KeyFair,
	3: locale.KeyModerate,
	4: locale.KeyPoor,
	5: locale.KeyVeryPoor,
}

// moonGlyphs is matched in order against the lowercased phase name
var moonGlyphs = []struct {
	phase string
	glyph string
}{
	{"new", "🌑"},
	{"waxing crescent", "🌒"},
	{"first quarter", "🌓"},
	{"waxing gibbous", "🌔"},
	{"full", "🌕"},
	{"waning gibbous", "🌖"},
	{"last quarter", "🌗"},
	{"waning crescent", "🌘"},
}

type Presenter struct {
	shareURL string
}

// New creates a Presenter. shareURL is the page address handed to the Facebook sharer.
func New(shareURL string) *Presenter {
	return &Presenter{shareURL: shareURL}
}

// DisplayTemp rounds a Celsius value for display in unit, halves rounding up.
func DisplayTemp(celsius float64, unit entity.TemperatureUnit) int {
	if unit == entity.UnitFahrenheit {
		return numberutils.RoundHalfUp(celsius*9/5 + 32)
	}
	return numberutils.RoundHalfUp(celsius)
}

// AQILabelKey maps an air-quality ordinal to its label key. Anything outside 1-5 is unknown.
func AQILabelKey(ordinal *int) string {
	if ordinal == nil {
		return locale.KeyUnknown
	}
	if key, ok := aqiKeys[*ordinal]; ok {
		return key
	}
	return locale.KeyUnknown
}

// MoonGlyph returns the emoji of a moon phase name, new moon when unknown.
func MoonGlyph(phase string) string {
	phase = strings.ToLower(phase)
	for _, candidate := range moonGlyphs {
		if strings.Contains(phase, candidate.phase) {
			return candidate.glyph
		}
	}
	return moonGlyphs[0].glyph
}

// HourlyLabel keeps the HH:MM part of "YYYY-MM-DD HH:MM".
func HourlyLabel(localTime string) string {
	if _, clock, ok := strings.Cut(localTime, " "); ok {
		return clock
	}
	return localTime
}

// DailyLabel renders "YYYY-MM-DD" as "<day>(<weekday>)", e.g. "5(Tue)".
func DailyLabel(date string, lang string) string {
	day, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d(%s)", day.Day(), locale.Weekday(lang, day.Weekday()))
}

// twelveHourLanguages show clock times as "3:04 PM"; the rest use 24 hours
var twelveHourLanguages = map[string]bool{"en": true, "ko": true, "ja": true, "ar": true, "es": true, "zh": true}

// LocalTimeLabel renders a "YYYY-MM-DD HH:MM" local time with the weekday and clock style of lang,
// e.g. "2023-11-15 (Wed) 10:00 AM" or "2023-11-15 (Mi.) 10:00".
func LocalTimeLabel(localTime string, lang string) string {
	moment, err := time.Parse("2006-01-02 15:04", localTime)
	if err != nil {
		return localTime
	}
	lang = locale.Normalize(lang)

	clock := moment.Format("15:04")
	if twelveHourLanguages[lang] {
		clock = moment.Format("3:04 PM")
	}
	return fmt.Sprintf("%s (%s) %s", moment.Format(time.DateOnly), locale.Weekday(lang, moment.Weekday()), clock)
}

func ShareText(name string, temp int, condition string) string {
	return fmt.Sprintf("Check out the weather in %s: %d° - %s", name, temp, condition)
}

// Present builds the view of session
func (p *Presenter) Present(session entity.Session) model.DashboardView {
	language := locale.Get(session.Lang)
	unit := session.Unit
	if unit == "" {
		unit = entity.UnitCelsius
	}

	view := model.DashboardView{
		SessionID: session.ID,
		Lang:      language.Code,
		Locale:    language.Tag,
		RTL:       language.RTL,
		Unit:      string(unit),
		State:     string(session.State),
		Loading:   session.Loading,
		Error:     session.ErrorMessage,
		Labels:    locale.Labels(language.Code),
	}

	report := session.Report
	if report == nil || report.Current == nil {
		return view
	}

	view.Current = p.currentView(report, unit, language.Code)
	view.Map = &model.MapView{Lat: report.Current.Coord.Lat, Lon: report.Current.Coord.Lon}

	if report.Forecast != nil {
		view.Hourly = make([]model.HourlyView, 0, len(report.Forecast.Hourly))
		for _, hour := range report.Forecast.Hourly {
			view.Hourly = append(view.Hourly, model.HourlyView{
				Label:     HourlyLabel(hour.Time),
				Temp:      DisplayTemp(hour.Temp, unit),
				Condition: hour.Condition,
				Icon:      hour.Icon,
			})
		}

		view.Daily = make([]model.DailyView, 0, len(report.Forecast.Daily))
		for _, day := range report.Forecast.Daily {
			view.Daily = append(view.Daily, model.DailyView{
				Label:     DailyLabel(day.Date, language.Code),
				Date:      day.Date,
				Min:       DisplayTemp(day.Min, unit),
				Max:       DisplayTemp(day.Max, unit),
				Condition: day.Condition,
				Icon:      day.Icon,
				ProbRain:  strconv.Itoa(day.ProbRain) + "%",
			})
		}
	}

	return view
}

func (p *Presenter) currentView(report *entity.WeatherReport, unit entity.TemperatureUnit, lang string) *model.CurrentView {
	current := report.Current
	temp := DisplayTemp(current.Temp, unit)

	aqi := current.AQI
	if aqi == nil && report.AirQuality != nil {
		aqi = report.AirQuality.Index
	}

	view := &model.CurrentView{
		Name:      current.Name,
		Country:   current.Country,
		LocalTime:      current.LocalTime,
		LocalTimeLabel: LocalTimeLabel(current.LocalTime, lang),
		Timezone:       current.Timezone,
		Temp:           temp,
		FeelsLike:      DisplayTemp(current.FeelsLike, unit),
		Min:            DisplayTemp(current.MinTemp, unit),
		Max:            DisplayTemp(current.MaxTemp, unit),
		Unit:           string(unit),
		Humidity:       strconv.Itoa(current.Humidity) + "%",
		Wind:           strconv.Itoa(numberutils.RoundHalfUp(current.WindSpeed)) + " km/h",
		Condition:      current.Condition,
		Icon:           current.Icon,
		AQI:            aqi,
		AQILabel:       locale.Text(lang, AQILabelKey(aqi)),
		Share:          p.share(current.Name, temp, current.Condition),
	}

	if astro := current.Astro; astro != nil {
		view.Astronomy = &model.AstronomyView{
			Sunrise:   astro.Sunrise,
			Sunset:    astro.Sunset,
			MoonPhase: astro.MoonPhase,
		}
		if astro.MoonPhase != "" {
			view.Astronomy.MoonGlyph = MoonGlyph(astro.MoonPhase)
		}
		if astro.MoonIllumination != nil {
			view.Astronomy.MoonIllumination = strconv.Itoa(*astro.MoonIllumination) + "%"
		}
	}

	for _, alert := range current.Alerts {
		view.Alerts = append(view.Alerts, model.AlertView{
			Event:       alert.Event,
			Headline:    alert.Headline,
			Description: alert.Description,
		})
	}

	return view
}

func (p *Presenter) share(name string, temp int, condition string) model.ShareView {
	text := ShareText(name, temp, condition)
	return model.ShareView{
		Text:        text,
		TwitterURL:  twitterIntentURL + url.QueryEscape(text),
		FacebookURL: facebookSharerURL + url.QueryEscape(p.shareURL),
	}
}

// Suggestions renders geocoding candidates for the search box
func Suggestions(results []entity.GeocodeResult, lang string) []model.SuggestionView {
	suggestions := make([]model.SuggestionView, 0, len(results))
	for _, result := range results {
		name := result.LocalizedName(lang)

		parts := []string{name}
		if result.Region != "" {
			parts = append(parts, result.Region)
		}
		if result.Country != "" {
			parts = append(parts, result.Country)
		}

		suggestions = append(suggestions, model.SuggestionView{
			Name:       name,
			Label:      strings.Join(parts, ", "),
			Country:    result.Country,
			Region:     result.Region,
			Lat:        result.Coord.Lat,
			Lon:        result.Coord.Lon,
			LocalNames: result.LocalNames,
		})
	}
	return suggestions
}
