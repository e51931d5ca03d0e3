package farmers

import (
	"context"

	"github.com/agrosmart/agrofarm/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/agrosmart/agrofarm/services/farmers FarmerUC

// FarmerUC represents the farmer usecase interface
type FarmerUC interface {
	// OTP issuance and verification
	Signup(ctx context.Context, req *models.SignupRequest) error
	Login(ctx context.Context, phoneNumber string) error
	VerifyOTP(ctx context.Context, phoneNumber, code string) (*models.AuthResponse, error)

	// farmer profile
	GetFarmerByID(ctx context.Context, id uuid.UUID) (*models.Farmer, error)

	// weather and recommendations
	GetWeather(ctx context.Context, farmerID uuid.UUID) (*models.WeatherReport, error)
	Recommend(ctx context.Context, farmerID uuid.UUID, req *models.RecommendationRequest) (*models.RecommendationResult, error)
}
