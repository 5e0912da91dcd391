package model

// DashboardView is everything a client needs to render one dashboard session.
type DashboardView struct {
	SessionID string            `json:"sessionId"`
	Lang      string            `json:"lang"`
	Locale    string            `json:"locale"`
	RTL       bool              `json:"rtl"`
	Unit      string            `json:"unit"`
	State     string            `json:"state"`
	Loading   bool              `json:"loading"`
	Error     string            `json:"error,omitempty"`
	Labels    map[string]string `json:"labels"`
	Current   *CurrentView      `json:"current,omitempty"`
	Hourly    []HourlyView      `json:"hourly,omitempty"`
	Daily     []DailyView       `json:"daily,omitempty"`
	Map       *MapView          `json:"map,omitempty"`
}

type CurrentView struct {
	Name           string         `json:"name"`
	Country        string         `json:"country"`
	LocalTime      string         `json:"localTime"`
	LocalTimeLabel string         `json:"localTimeLabel"`
	Timezone       string         `json:"timezone"`
	Temp           int            `json:"temp"`
	FeelsLike      int            `json:"feelsLike"`
	Min            int            `json:"min"`
	Max            int            `json:"max"`
	Unit           string         `json:"unit"`
	Humidity       string         `json:"humidity"`
	Wind           string         `json:"wind"`
	Condition      string         `json:"condition"`
	Icon           string         `json:"icon"`
	AQI            *int           `json:"aqi,omitempty"`
	AQILabel       string         `json:"aqiLabel"`
	Astronomy      *AstronomyView `json:"astronomy,omitempty"`
	Alerts         []AlertView    `json:"alerts,omitempty"`
	Share          ShareView      `json:"share"`
}

type HourlyView struct {
	Label     string `json:"label"`
	Temp      int    `json:"temp"`
	Condition string `json:"condition"`
	Icon      string `json:"icon"`
}

type DailyView struct {
	Label     string `json:"label"`
	Date      string `json:"date"`
	Min       int    `json:"min"`
	Max       int    `json:"max"`
	Condition string `json:"condition"`
	Icon      string `json:"icon"`
	ProbRain  string `json:"probRain"`
}

type AstronomyView struct {
	Sunrise          string `json:"sunrise"`
	Sunset           string `json:"sunset"`
	MoonPhase        string `json:"moonPhase,omitempty"`
	MoonGlyph        string `json:"moonGlyph,omitempty"`
	MoonIllumination string `json:"moonIllumination,omitempty"`
}

type AlertView struct {
	Event       string `json:"event"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
}

type ShareView struct {
	Text        string `json:"text"`
	TwitterURL  string `json:"twitterUrl"`
	FacebookURL string `json:"facebookUrl"`
}

type MapView struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type SuggestionView struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Country string  `json:"country"`
	Region  string  `json:"region,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`

	// LocalNames is echoed back so the client can submit the pick as a selection
	LocalNames map[string]string `json:"localNames,omitempty"`
}
