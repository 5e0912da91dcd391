package entity

type GeocodeResult struct {
	Name       string            `json:"name"`
	LocalNames map[string]string `json:"localNames,omitempty"`
	Country    string            `json:"country"`
	Region     string            `json:"region,omitempty"`
	Coord      Coordinates       `json:"coord"`
}

// LocalizedName returns the name in lang when the provider supplied one, otherwise Name.
func (g GeocodeResult) LocalizedName(lang string) string {
	if name := g.LocalNames[lang]; name != "" {
		return name
	}
	return g.Name
}
