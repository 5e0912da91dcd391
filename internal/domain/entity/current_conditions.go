package entity

type CurrentConditions struct {
	Name      string         `json:"name"`
	Country   string         `json:"country"`
	LocalTime string         `json:"localTime"`
	Temp      float64        `json:"temp"`
	FeelsLike float64        `json:"feelsLike"`
	Humidity  int            `json:"humidity"`
	WindSpeed float64        `json:"windSpeed"`
	Condition string         `json:"condition"`
	Icon      string         `json:"icon"`
	MinTemp   float64        `json:"minTemp"`
	MaxTemp   float64        `json:"maxTemp"`
	AQI       *int           `json:"aqi,omitempty"`
	Coord     Coordinates    `json:"coord"`
	Timezone  string         `json:"timezone"`
	Alerts    []WeatherAlert `json:"alerts"`
	Astro     *Astronomy     `json:"astro,omitempty"`
}

type WeatherAlert struct {
	Event       string `json:"event"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
}

type Astronomy struct {
	Sunrise          string `json:"sunrise"`
	Sunset           string `json:"sunset"`
	MoonPhase        string `json:"moonPhase,omitempty"`
	MoonIllumination *int   `json:"moonIllumination,omitempty"`
}
