package usecase

import (
	"context"
	"math"

	"github.com/agrosmart/agrofarm/internal/pkg/models"
	"github.com/google/uuid"
)

// soilProfile holds the static rule-table entry for one soil type
type soilProfile struct {
	crops         []string
	fertilizers   []string
	profitPerAcre float64
	reason        string
}

var soilProfiles = map[string]soilProfile{
	"Sandy": {
		crops:         []string{"Millets", "Groundnuts"},
		fertilizers:   []string{"Urea", "Potash"},
		profitPerAcre: 50000,
		reason:        "Sandy soil drains quickly, suitable for drought-resistant crops like millets.",
	},
	"Clay": {
		crops:         []string{"Rice", "Wheat"},
		fertilizers:   []string{"Compost", "Phosphate"},
		profitPerAcre: 60000,
		reason:        "Clay soil retains water, ideal for rice and wheat.",
	},
	"Loamy": {
		crops:         []string{"Maize", "Vegetables"},
		fertilizers:   []string{"NPK", "Organic Compost"},
		profitPerAcre: 70000,
		reason:        "Loamy soil is fertile and well-balanced, good for a variety of crops.",
	},
	"Silty": {
		crops:         []string{"Barley", "Potatoes"},
		fertilizers:   []string{"Potash", "Lime"},
		profitPerAcre: 55000,
		reason:        "Silty soil is smooth and retains moisture, suitable for barley and potatoes.",
	},
	"Peaty": {
		crops:         []string{"Berries", "Pasture Grass"},
		fertilizers:   []string{"Lime", "Phosphate"},
		profitPerAcre: 45000,
		reason:        "Peaty soil is acidic and organic-rich, good for berries and grasses.",
	},
}

const (
	unknownSoilReason = "Unknown soil type."
	irrigationCaveat  = " High temperature or low humidity requires irrigation."
	irrigationSuffix  = " (with irrigation)"
)

// seasonFor derives the season from temperature. Boundary values 20 and 30
// fall into Monsoon.
func seasonFor(temperature float64) string {
	switch {
	case temperature > 30:
		return "Summer"
	case temperature < 20:
		return "Winter"
	default:
		return "Monsoon"
	}
}

// BuildRecommendation computes a crop and fertilizer recommendation from soil
// type, climate and land area. Pure and deterministic; an unrecognized soil
// type is a valid outcome with empty lists and zero profit, not an error.
func BuildRecommendation(soilType string, climate models.Climate, acres float64) *models.RecommendationResult {
	rec := models.Recommendation{
		Crops:       []string{},
		Fertilizers: []string{},
	}

	profile, known := soilProfiles[soilType]
	if known {
		rec.Crops = append(rec.Crops, profile.crops...)
		rec.Fertilizers = append(rec.Fertilizers, profile.fertilizers...)
		rec.Reason = profile.reason
		rec.Profit = int64(math.Round(profile.profitPerAcre * acres))
	} else {
		rec.Reason = unknownSoilReason
	}

	// Heat or aridity stress changes presentation only, never the crop choice
	if climate.Temperature > 35 || climate.Humidity < 20 {
		for i := range rec.Crops {
			rec.Crops[i] += irrigationSuffix
		}
		rec.Reason += irrigationCaveat
	}

	return &models.RecommendationResult{
		SoilType:       soilType,
		ClimateData:    climate,
		Season:         seasonFor(climate.Temperature),
		Recommendation: rec,
	}
}

// Recommend produces a recommendation for a farmer's plot, supplying climate
// data from the cache-or-fetch path.
func (u *FarmerUC) Recommend(ctx context.Context, farmerID uuid.UUID, req *models.RecommendationRequest) (*models.RecommendationResult, error) {
	farmer, err := u.farmerRepo.GetByID(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	climate := u.getClimate(ctx, farmer)

	return BuildRecommendation(req.SoilType, climate, req.Acres), nil
}
