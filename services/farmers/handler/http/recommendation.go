package http

import (
	"errors"
	nethttp "net/http"
	"strings"

	"github.com/agrosmart/agrofarm/internal/pkg/errs"
	"github.com/agrosmart/agrofarm/internal/pkg/logger"
	"github.com/agrosmart/agrofarm/internal/pkg/models"
	"github.com/agrosmart/agrofarm/internal/utils"
	"github.com/agrosmart/agrofarm/services/farmers"
	"github.com/labstack/echo/v4"
)

// RecommendationHandler handles HTTP requests for crop recommendations
type RecommendationHandler struct {
	farmerUC farmers.FarmerUC
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(farmerUC farmers.FarmerUC) *RecommendationHandler {
	return &RecommendationHandler{
		farmerUC: farmerUC,
	}
}

// Recommend handles crop recommendation requests
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	var req models.RecommendationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	// Soil type is not validated here: an unrecognized soil type is a valid
	// engine outcome, not a rejected request
	if strings.TrimSpace(req.SoilType) == "" {
		return utils.BadRequestResponse(c, "Soil type is required")
	}
	if req.Acres <= 0 {
		return utils.BadRequestResponse(c, "Acres must be a positive number")
	}

	farmerID, err := farmerIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid farmer identity")
	}

	result, err := h.farmerUC.Recommend(c.Request().Context(), farmerID, &req)
	if err != nil {
		if errors.Is(err, errs.ErrFarmerNotFound) {
			return utils.NotFoundResponse(c, "Farmer not found")
		}
		logger.Error("Error generating recommendation",
			logger.String("farmer_id", farmerID.String()),
			logger.String("soil_type", req.SoilType),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Server error generating recommendation")
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Recommendation generated", result)
}
