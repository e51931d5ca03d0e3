package usecase

import (
	"time"

	"github.com/agrosmart/agrofarm/internal/pkg/models"
	"github.com/agrosmart/agrofarm/services/farmers"
)

// otpValidity is how long an issued OTP stays verifiable
const otpValidity = 10 * time.Minute

type FarmerUC struct {
	farmerRepo  farmers.FarmerRepo
	climateRepo farmers.ClimateRepo
	weatherGW   farmers.WeatherGW
	cfg         *models.Config

	// now is the single time source for OTP expiry arithmetic, so issuance
	// and verification cannot disagree on the clock. Tests override it.
	now func() time.Time
}

// NewFarmerUC creates a new farmer usecase instance
func NewFarmerUC(
	farmerRepo farmers.FarmerRepo,
	climateRepo farmers.ClimateRepo,
	weatherGW farmers.WeatherGW,
	cfg *models.Config,
) *FarmerUC {
	return &FarmerUC{
		farmerRepo:  farmerRepo,
		climateRepo: climateRepo,
		weatherGW:   weatherGW,
		cfg:         cfg,
		now:         time.Now,
	}
}
