package models

// RecommendationRequest represents a crop recommendation request
type RecommendationRequest struct {
	SoilType string  `json:"soil_type"`
	Acres    float64 `json:"acres"`
}

// Recommendation holds the crops, fertilizers and projected profit for a plot
type Recommendation struct {
	Crops       []string `json:"crops"`
	Fertilizers []string `json:"fertilizers"`
	Profit      int64    `json:"profit"`
	Reason      string   `json:"reason"`
}

// RecommendationResult is the full recommendation response payload
type RecommendationResult struct {
	SoilType       string         `json:"soil_type"`
	ClimateData    Climate        `json:"climate_data"`
	Season         string         `json:"season"`
	Recommendation Recommendation `json:"recommendation"`
}
