package entity

type ForecastBundle struct {
	Hourly []HourlyPoint `json:"hourly"`
	Daily  []DailyPoint  `json:"daily"`
	City   ForecastCity  `json:"city"`
}

type ForecastCity struct {
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
}

type HourlyPoint struct {
	Time      string  `json:"time"`
	TimeEpoch int64   `json:"timeEpoch"`
	Temp      float64 `json:"temp"`
	Condition string  `json:"condition"`
	Icon      string  `json:"icon"`
}

type DailyPoint struct {
	Date      string  `json:"date"`
	DateEpoch int64   `json:"dateEpoch"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Condition string  `json:"condition"`
	Icon      string  `json:"icon"`
	ProbRain  int     `json:"probRain"`
}
