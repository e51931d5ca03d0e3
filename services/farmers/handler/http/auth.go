package http

import (
	"errors"
	"strings"

	"github.com/agrosmart/agrofarm/internal/pkg/errs"
	"github.com/agrosmart/agrofarm/internal/pkg/logger"
	"github.com/agrosmart/agrofarm/internal/pkg/models"
	"github.com/agrosmart/agrofarm/internal/utils"
	"github.com/labstack/echo/v4"
	nethttp "net/http"

	"github.com/agrosmart/agrofarm/services/farmers"
)

// AuthHandler handles HTTP requests for OTP authentication
type AuthHandler struct {
	farmerUC farmers.FarmerUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(farmerUC farmers.FarmerUC) *AuthHandler {
	return &AuthHandler{
		farmerUC: farmerUC,
	}
}

// Signup handles new farmer registration and first OTP issuance
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if strings.TrimSpace(req.Name) == "" {
		return utils.BadRequestResponse(c, "Name is required")
	}
	if strings.TrimSpace(req.District) == "" {
		return utils.BadRequestResponse(c, "District is required")
	}
	if _, err := utils.ValidatePhoneNumber(req.PhoneNumber); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := h.farmerUC.Signup(c.Request().Context(), &req); err != nil {
		if errors.Is(err, errs.ErrFarmerExists) {
			return utils.ConflictResponse(c, "Farmer already exists")
		}
		logger.Error("Error during signup",
			logger.String("phone_number", req.PhoneNumber),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Server error during signup")
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "OTP sent successfully", nil)
}

// Login handles OTP issuance for an existing farmer
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if _, err := utils.ValidatePhoneNumber(req.PhoneNumber); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := h.farmerUC.Login(c.Request().Context(), req.PhoneNumber); err != nil {
		if errors.Is(err, errs.ErrFarmerNotFound) {
			return utils.NotFoundResponse(c, "Farmer not found")
		}
		logger.Error("Error during login",
			logger.String("phone_number", req.PhoneNumber),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Server error during login")
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "OTP sent successfully", nil)
}

// VerifyOTP handles OTP verification and session token issuance
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if _, err := utils.ValidatePhoneNumber(req.PhoneNumber); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	if err := utils.ValidateOTPFormat(req.OTP); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	resp, err := h.farmerUC.VerifyOTP(c.Request().Context(), req.PhoneNumber, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrFarmerNotFound):
			return utils.NotFoundResponse(c, "Farmer not found")
		case errors.Is(err, errs.ErrInvalidOTP):
			return utils.BadRequestResponse(c, "Invalid or expired OTP")
		case errors.Is(err, errs.ErrVersionConflict):
			return utils.ConflictResponse(c, "OTP was reissued, request a new code")
		default:
			logger.Error("Error during OTP verification",
				logger.String("phone_number", req.PhoneNumber),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Server error during OTP verification")
		}
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "OTP verified successfully", resp)
}
