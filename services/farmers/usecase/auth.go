package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/agrosmart/agrofarm/internal/pkg/errs"
	jwtpkg "github.com/agrosmart/agrofarm/internal/pkg/jwt"
	"github.com/agrosmart/agrofarm/internal/pkg/logger"
	"github.com/agrosmart/agrofarm/internal/pkg/models"
	"github.com/agrosmart/agrofarm/internal/utils"
	"github.com/google/uuid"
)

// generateOTP generates a uniformly random 6-digit code in [100000, 999999]
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// Signup registers a new farmer and issues the first OTP
func (u *FarmerUC) Signup(ctx context.Context, req *models.SignupRequest) error {
	phoneNumber, err := utils.ValidatePhoneNumber(req.PhoneNumber)
	if err != nil {
		return err
	}

	// Signup must not overwrite an existing record
	_, err = u.farmerRepo.GetByPhone(ctx, phoneNumber)
	if err == nil {
		return errs.ErrFarmerExists
	}
	if !errors.Is(err, errs.ErrFarmerNotFound) {
		return fmt.Errorf("failed to look up farmer: %w", err)
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}
	expiresAt := u.now().Add(otpValidity)

	farmer := &models.Farmer{
		Name:         req.Name,
		PhoneNumber:  phoneNumber,
		District:     req.District,
		OTPCode:      &code,
		OTPExpiresAt: &expiresAt,
	}

	if err := u.farmerRepo.Create(ctx, farmer); err != nil {
		return err
	}

	// Delivery happens out of band (SMS gateway); the code never appears in
	// the API response.
	logger.Info("Generated OTP for signup",
		logger.String("phone_number", phoneNumber),
		logger.String("otp_code", code))

	return nil
}

// Login issues a fresh OTP for an existing farmer. A prior pending OTP is
// overwritten, so at most one code is live per farmer.
func (u *FarmerUC) Login(ctx context.Context, phoneNumber string) error {
	formatted, err := utils.ValidatePhoneNumber(phoneNumber)
	if err != nil {
		return err
	}

	farmer, err := u.farmerRepo.GetByPhone(ctx, formatted)
	if err != nil {
		return err
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}
	expiresAt := u.now().Add(otpValidity)

	if err := u.farmerRepo.SetOTP(ctx, farmer.ID, code, expiresAt, farmer.Version); err != nil {
		return err
	}

	logger.Info("Generated OTP for login",
		logger.String("phone_number", formatted),
		logger.String("otp_code", code))

	return nil
}

// VerifyOTP verifies a submitted code and mints a session token. The pending
// OTP is cleared through the same version the verification read, so a
// concurrent reissue fails the clear and the code cannot be replayed.
func (u *FarmerUC) VerifyOTP(ctx context.Context, phoneNumber, code string) (*models.AuthResponse, error) {
	formatted, err := utils.ValidatePhoneNumber(phoneNumber)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateOTPFormat(code); err != nil {
		return nil, err
	}

	farmer, err := u.farmerRepo.GetByPhone(ctx, formatted)
	if err != nil {
		return nil, err
	}

	if !farmer.HasPendingOTP() {
		return nil, errs.ErrInvalidOTP
	}
	if *farmer.OTPCode != code {
		return nil, errs.ErrInvalidOTP
	}
	// Strict greater-than: the exact expiry instant is still valid
	if u.now().After(*farmer.OTPExpiresAt) {
		return nil, errs.ErrInvalidOTP
	}

	if err := u.farmerRepo.ClearOTP(ctx, farmer.ID, farmer.Version); err != nil {
		return nil, err
	}

	token, expiresAt, err := jwtpkg.GenerateToken(farmer.ID, farmer.PhoneNumber, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("OTP verified successfully",
		logger.String("phone_number", formatted),
		logger.String("farmer_id", farmer.ID.String()))

	return &models.AuthResponse{
		Token:     token,
		FarmerID:  farmer.ID.String(),
		ExpiresAt: expiresAt,
	}, nil
}

// GetFarmerByID retrieves a farmer's profile by ID
func (u *FarmerUC) GetFarmerByID(ctx context.Context, id uuid.UUID) (*models.Farmer, error) {
	return u.farmerRepo.GetByID(ctx, id)
}
