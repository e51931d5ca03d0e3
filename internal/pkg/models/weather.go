package models

// Climate holds the subset of weather data the recommendation engine consumes.
// Entries are cached per farmer with a fixed TTL.
type Climate struct {
	Temperature float64 `json:"temperature"` // celsius
	Humidity    int     `json:"humidity"`    // percent
}

// WeatherReport represents a full current-weather reading for a district
type WeatherReport struct {
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
	WindSpeed   float64 `json:"wind_speed"`
	Pressure    int     `json:"pressure"`
	Sunrise     int64   `json:"sunrise"`
	Sunset      int64   `json:"sunset"`
}

// Climate extracts the cacheable climate subset of a report
func (w *WeatherReport) Climate() Climate {
	return Climate{
		Temperature: w.Temperature,
		Humidity:    w.Humidity,
	}
}
