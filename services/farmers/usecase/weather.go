package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/agrosmart/agrofarm/internal/pkg/constants"
	"github.com/agrosmart/agrofarm/internal/pkg/logger"
	"github.com/agrosmart/agrofarm/internal/pkg/models"
	"github.com/google/uuid"
)

// Fallback climate substituted when the weather provider is unavailable
const (
	fallbackTemperature = 25.0
	fallbackHumidity    = 60
)

func (u *FarmerUC) cacheTTL() time.Duration {
	if u.cfg.Weather.CacheTTL > 0 {
		return time.Duration(u.cfg.Weather.CacheTTL) * time.Second
	}
	return 3600 * time.Second
}

func (u *FarmerUC) fetchTimeout() time.Duration {
	if u.cfg.Weather.Timeout > 0 {
		return time.Duration(u.cfg.Weather.Timeout) * time.Second
	}
	return 5 * time.Second
}

// getClimate returns the climate for a farmer, serving from cache when a
// fresh entry exists. On a miss it fetches from the provider under a bounded
// timeout. A provider failure of any kind substitutes the fallback climate,
// and the fallback itself is cached for the full TTL so an outage is not
// retried on every request within the window. A provider that recovers
// mid-TTL will not be observed until the fallback entry expires.
func (u *FarmerUC) getClimate(ctx context.Context, farmer *models.Farmer) models.Climate {
	key := fmt.Sprintf(constants.KeyFarmerClimate, farmer.PhoneNumber)

	cached, err := u.climateRepo.GetClimate(ctx, key)
	if err != nil {
		// Cache is best effort: a broken cache degrades to a fetch
		logger.Warn("Climate cache read failed",
			logger.String("cache_key", key),
			logger.Err(err))
	} else if cached != nil {
		return *cached
	}

	fetchCtx, cancel := context.WithTimeout(ctx, u.fetchTimeout())
	defer cancel()

	var climate models.Climate
	report, err := u.weatherGW.FetchWeather(fetchCtx, farmer.District)
	if err != nil {
		logger.Warn("Failed to fetch weather data, using fallback climate",
			logger.String("district", farmer.District),
			logger.Err(err))
		climate = models.Climate{Temperature: fallbackTemperature, Humidity: fallbackHumidity}
	} else {
		climate = report.Climate()
	}

	if err := u.climateRepo.SetClimate(ctx, key, &climate, u.cacheTTL()); err != nil {
		logger.Warn("Failed to store climate entry",
			logger.String("cache_key", key),
			logger.Err(err))
	}

	return climate
}

// GetWeather fetches a full current-weather report for the farmer's district.
// This path is uncached and provider failures surface to the caller.
func (u *FarmerUC) GetWeather(ctx context.Context, farmerID uuid.UUID) (*models.WeatherReport, error) {
	farmer, err := u.farmerRepo.GetByID(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	fetchCtx, cancel := context.WithTimeout(ctx, u.fetchTimeout())
	defer cancel()

	report, err := u.weatherGW.FetchWeather(fetchCtx, farmer.District)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather for district %s: %w", farmer.District, err)
	}

	return report, nil
}
