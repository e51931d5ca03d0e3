package farmers

import (
	"context"

	"github.com/agrosmart/agrofarm/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/agrosmart/agrofarm/services/farmers WeatherGW

// WeatherGW abstracts the external weather provider. It is treated as
// unreliable: callers bound each fetch with a timeout and recover locally.
type WeatherGW interface {
	FetchWeather(ctx context.Context, district string) (*models.WeatherReport, error)
}
