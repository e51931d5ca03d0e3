package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrosmart/agrofarm/internal/pkg/errs"
	"github.com/agrosmart/agrofarm/internal/pkg/models"
	"github.com/agrosmart/agrofarm/services/farmers/mocks"
)

// newAuthenticatedContext builds a GET context carrying the identity the JWT
// middleware would have set
func newAuthenticatedContext(t *testing.T, path string, farmerID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("farmer_id", farmerID.String())
	return c, rec
}

func TestGetProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFarmerUC := mocks.NewMockFarmerUC(ctrl)
	handler := NewFarmerHandler(mockFarmerUC)

	farmerID := uuid.New()
	c, rec := newAuthenticatedContext(t, "/farmers/profile", farmerID)

	mockFarmerUC.EXPECT().
		GetFarmerByID(gomock.Any(), farmerID).
		Return(&models.Farmer{
			ID:          farmerID,
			Name:        "Murugan",
			PhoneNumber: "+919876543210",
			District:    "Madurai",
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}, nil)

	err := handler.GetProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeResponse(t, rec)
	assert.Equal(t, true, response["success"])

	data, ok := response["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Murugan", data["name"])
	assert.Equal(t, "Madurai", data["district"])
	// OTP material never leaves the service
	assert.NotContains(t, data, "otp_code")
	assert.NotContains(t, data, "otp_expires_at")
	assert.NotContains(t, data, "version")
}

func TestGetProfile_MissingIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFarmerUC := mocks.NewMockFarmerUC(ctrl)
	handler := NewFarmerHandler(mockFarmerUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/farmers/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.GetProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetProfile_FarmerNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFarmerUC := mocks.NewMockFarmerUC(ctrl)
	handler := NewFarmerHandler(mockFarmerUC)

	farmerID := uuid.New()
	c, rec := newAuthenticatedContext(t, "/farmers/profile", farmerID)

	mockFarmerUC.EXPECT().
		GetFarmerByID(gomock.Any(), farmerID).
		Return(nil, errs.ErrFarmerNotFound)

	err := handler.GetProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetWeatherHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFarmerUC := mocks.NewMockFarmerUC(ctrl)
	handler := NewFarmerHandler(mockFarmerUC)

	farmerID := uuid.New()
	c, rec := newAuthenticatedContext(t, "/weather", farmerID)

	mockFarmerUC.EXPECT().
		GetWeather(gomock.Any(), farmerID).
		Return(&models.WeatherReport{
			Location:    "Madurai",
			Temperature: 31.4,
			Humidity:    48,
			Description: "haze",
		}, nil)

	err := handler.GetWeather(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeResponse(t, rec)
	data, ok := response["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Madurai", data["location"])
	assert.Equal(t, 31.4, data["temperature"])
	assert.Equal(t, "haze", data["description"])
}

func TestGetWeatherHandler_ProviderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFarmerUC := mocks.NewMockFarmerUC(ctrl)
	handler := NewFarmerHandler(mockFarmerUC)

	farmerID := uuid.New()
	c, rec := newAuthenticatedContext(t, "/weather", farmerID)

	mockFarmerUC.EXPECT().
		GetWeather(gomock.Any(), farmerID).
		Return(nil, errors.New("weather provider returned status 503"))

	err := handler.GetWeather(c)

	// Uncached path surfaces provider failures as a gateway error
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	response := decodeResponse(t, rec)
	assert.Equal(t, false, response["success"])
}
