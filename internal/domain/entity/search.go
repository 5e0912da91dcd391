package entity

type SearchSource string

const (
	SourceTyped        SearchSource = "typed"
	SourceAutocomplete SearchSource = "autocomplete"
	SourceGeolocation  SearchSource = "geolocation"
	SourceMap          SearchSource = "map"
)

type SearchRequest struct {
	Query     string             `json:"query,omitempty"`
	Selection *LocationSelection `json:"selection,omitempty"`
	Source    SearchSource       `json:"source"`
}

// LocationSelection is an already resolved place, e.g. an autocomplete pick or a map click.
type LocationSelection struct {
	Coord      Coordinates       `json:"coord"`
	Name       string            `json:"name,omitempty"`
	LocalNames map[string]string `json:"localNames,omitempty"`
	Country    string            `json:"country,omitempty"`
}

type WeatherReport struct {
	Current    *CurrentConditions `json:"current"`
	Forecast   *ForecastBundle    `json:"forecast"`
	AirQuality *AirQuality        `json:"airQuality"`

	// DisplayName is the name chosen for the location in the requested language
	DisplayName string `json:"displayName"`
}
