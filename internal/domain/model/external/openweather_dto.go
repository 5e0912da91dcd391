package external

// OWMCurrentResponse represents /data/2.5/weather
type OWMCurrentResponse struct {
	Name     string       `json:"name"`
	Dt       int64        `json:"dt"`
	Timezone int          `json:"timezone"`
	Coord    OWMCoord     `json:"coord"`
	Weather  []OWMWeather `json:"weather"`
	Main     OWMMain      `json:"main"`
	Wind     OWMWind      `json:"wind"`
	Sys      struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
}

type OWMCoord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type OWMWeather struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type OWMMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Humidity  int     `json:"humidity"`
}

// OWMWind speed is in meter/sec with units=metric
type OWMWind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

// OWMForecastResponse represents /data/2.5/forecast, a flat list of 3-hour steps
type OWMForecastResponse struct {
	List []OWMForecastItem `json:"list"`
	City struct {
		Name     string   `json:"name"`
		Country  string   `json:"country"`
		Timezone int      `json:"timezone"`
		Coord    OWMCoord `json:"coord"`
	} `json:"city"`
}

type OWMForecastItem struct {
	Dt      int64        `json:"dt"`
	DtTxt   string       `json:"dt_txt"`
	Main    OWMMain      `json:"main"`
	Weather []OWMWeather `json:"weather"`
	Pop     float64      `json:"pop"`
}

// OWMAirPollutionResponse represents /data/2.5/air_pollution
type OWMAirPollutionResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
	} `json:"list"`
}

// OWMGeocodingResult represents a single entry of /geo/1.0/direct
type OWMGeocodingResult struct {
	Name       string            `json:"name"`
	LocalNames map[string]string `json:"local_names"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
	Country    string            `json:"country"`
	State      string            `json:"state"`
}

// OWMErrorResponse is returned with 4xx statuses. cod is a number on some endpoints and a string on others.
type OWMErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
