package http

import (
	"errors"
	"fmt"
	nethttp "net/http"

	"github.com/agrosmart/agrofarm/internal/pkg/errs"
	"github.com/agrosmart/agrofarm/internal/pkg/logger"
	"github.com/agrosmart/agrofarm/internal/utils"
	"github.com/agrosmart/agrofarm/services/farmers"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// FarmerHandler handles HTTP requests for farmer profile and weather lookups
type FarmerHandler struct {
	farmerUC farmers.FarmerUC
}

// NewFarmerHandler creates a new farmer handler
func NewFarmerHandler(farmerUC farmers.FarmerUC) *FarmerHandler {
	return &FarmerHandler{
		farmerUC: farmerUC,
	}
}

// farmerIDFromContext extracts the authenticated farmer ID set by the JWT middleware
func farmerIDFromContext(c echo.Context) (uuid.UUID, error) {
	raw := c.Get("farmer_id")
	if raw == nil {
		return uuid.UUID{}, fmt.Errorf("missing farmer identity")
	}
	return uuid.Parse(fmt.Sprintf("%v", raw))
}

// GetProfile returns the authenticated farmer's record. OTP fields are never
// serialized.
func (h *FarmerHandler) GetProfile(c echo.Context) error {
	farmerID, err := farmerIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid farmer identity")
	}

	farmer, err := h.farmerUC.GetFarmerByID(c.Request().Context(), farmerID)
	if err != nil {
		if errors.Is(err, errs.ErrFarmerNotFound) {
			return utils.NotFoundResponse(c, "Farmer not found")
		}
		logger.Error("Error fetching profile",
			logger.String("farmer_id", farmerID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Server error fetching profile")
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Profile fetched", farmer)
}

// GetWeather returns the full current-weather report for the farmer's district
func (h *FarmerHandler) GetWeather(c echo.Context) error {
	farmerID, err := farmerIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid farmer identity")
	}

	report, err := h.farmerUC.GetWeather(c.Request().Context(), farmerID)
	if err != nil {
		if errors.Is(err, errs.ErrFarmerNotFound) {
			return utils.NotFoundResponse(c, "Farmer not found")
		}
		logger.Error("Error fetching weather data",
			logger.String("farmer_id", farmerID.String()),
			logger.Err(err))
		return utils.BadGatewayResponse(c, "Error fetching weather data")
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Weather fetched", report)
}
