package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrosmart/agrofarm/internal/pkg/constants"
	"github.com/agrosmart/agrofarm/internal/pkg/errs"
	"github.com/agrosmart/agrofarm/internal/pkg/models"
)

func testFarmer() *models.Farmer {
	return &models.Farmer{
		ID:          uuid.New(),
		Name:        "Murugan",
		PhoneNumber: "+919876543210",
		District:    "Madurai",
		Version:     1,
	}
}

func TestGetClimate_CacheHitSkipsProvider(t *testing.T) {
	uc, _, mockClimate, _ := setupAuthTest(t)
	farmer := testFarmer()
	key := fmt.Sprintf(constants.KeyFarmerClimate, farmer.PhoneNumber)

	cached := &models.Climate{Temperature: 31.5, Humidity: 48}
	mockClimate.EXPECT().
		GetClimate(gomock.Any(), key).
		Return(cached, nil)
	// No FetchWeather, no SetClimate: a hit never touches the provider

	climate := uc.getClimate(context.Background(), farmer)

	assert.Equal(t, *cached, climate)
}

func TestGetClimate_MissFetchesAndCaches(t *testing.T) {
	uc, _, mockClimate, mockGW := setupAuthTest(t)
	farmer := testFarmer()
	key := fmt.Sprintf(constants.KeyFarmerClimate, farmer.PhoneNumber)

	mockClimate.EXPECT().
		GetClimate(gomock.Any(), key).
		Return(nil, nil)
	mockGW.EXPECT().
		FetchWeather(gomock.Any(), farmer.District).
		Return(&models.WeatherReport{Temperature: 28.4, Humidity: 72}, nil)
	mockClimate.EXPECT().
		SetClimate(gomock.Any(), key, &models.Climate{Temperature: 28.4, Humidity: 72}, 3600*time.Second).
		Return(nil)

	climate := uc.getClimate(context.Background(), farmer)

	assert.Equal(t, models.Climate{Temperature: 28.4, Humidity: 72}, climate)
}

func TestGetClimate_ProviderFailureCachesFallback(t *testing.T) {
	uc, _, mockClimate, mockGW := setupAuthTest(t)
	farmer := testFarmer()
	key := fmt.Sprintf(constants.KeyFarmerClimate, farmer.PhoneNumber)

	mockClimate.EXPECT().
		GetClimate(gomock.Any(), key).
		Return(nil, nil)
	mockGW.EXPECT().
		FetchWeather(gomock.Any(), farmer.District).
		Return(nil, errors.New("connection refused"))
	// The fallback itself is cached for the full TTL so the outage is not
	// retried on every request
	mockClimate.EXPECT().
		SetClimate(gomock.Any(), key, &models.Climate{Temperature: 25, Humidity: 60}, 3600*time.Second).
		Return(nil)

	climate := uc.getClimate(context.Background(), farmer)

	assert.Equal(t, models.Climate{Temperature: 25, Humidity: 60}, climate)
}

func TestGetClimate_CachedFallbackServedWithoutRetry(t *testing.T) {
	uc, _, mockClimate, _ := setupAuthTest(t)
	farmer := testFarmer()
	key := fmt.Sprintf(constants.KeyFarmerClimate, farmer.PhoneNumber)

	fallback := &models.Climate{Temperature: 25, Humidity: 60}
	mockClimate.EXPECT().
		GetClimate(gomock.Any(), key).
		Return(fallback, nil)
	// Provider is not called even though the cached value is the fallback

	climate := uc.getClimate(context.Background(), farmer)

	assert.Equal(t, *fallback, climate)
}

func TestGetClimate_CacheReadErrorDegradesToFetch(t *testing.T) {
	uc, _, mockClimate, mockGW := setupAuthTest(t)
	farmer := testFarmer()
	key := fmt.Sprintf(constants.KeyFarmerClimate, farmer.PhoneNumber)

	mockClimate.EXPECT().
		GetClimate(gomock.Any(), key).
		Return(nil, errors.New("redis: connection pool exhausted"))
	mockGW.EXPECT().
		FetchWeather(gomock.Any(), farmer.District).
		Return(&models.WeatherReport{Temperature: 22, Humidity: 80}, nil)
	mockClimate.EXPECT().
		SetClimate(gomock.Any(), key, gomock.Any(), gomock.Any()).
		Return(nil)

	climate := uc.getClimate(context.Background(), farmer)

	assert.Equal(t, models.Climate{Temperature: 22, Humidity: 80}, climate)
}

func TestGetWeather_Success(t *testing.T) {
	uc, mockRepo, _, mockGW := setupAuthTest(t)
	farmer := testFarmer()

	report := &models.WeatherReport{
		Location:    farmer.District,
		Temperature: 29.1,
		Humidity:    65,
		Description: "scattered clouds",
		WindSpeed:   3.6,
		Pressure:    1012,
	}

	mockRepo.EXPECT().
		GetByID(gomock.Any(), farmer.ID).
		Return(farmer, nil)
	mockGW.EXPECT().
		FetchWeather(gomock.Any(), farmer.District).
		Return(report, nil)

	got, err := uc.GetWeather(context.Background(), farmer.ID)

	require.NoError(t, err)
	assert.Equal(t, report, got)
}

func TestGetWeather_ProviderErrorSurfaces(t *testing.T) {
	uc, mockRepo, _, mockGW := setupAuthTest(t)
	farmer := testFarmer()

	mockRepo.EXPECT().
		GetByID(gomock.Any(), farmer.ID).
		Return(farmer, nil)
	mockGW.EXPECT().
		FetchWeather(gomock.Any(), farmer.District).
		Return(nil, errors.New("status 503"))

	got, err := uc.GetWeather(context.Background(), farmer.ID)

	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestGetWeather_UnknownFarmer(t *testing.T) {
	uc, mockRepo, _, _ := setupAuthTest(t)
	id := uuid.New()

	mockRepo.EXPECT().
		GetByID(gomock.Any(), id).
		Return(nil, errs.ErrFarmerNotFound)

	got, err := uc.GetWeather(context.Background(), id)

	assert.ErrorIs(t, err, errs.ErrFarmerNotFound)
	assert.Nil(t, got)
}
