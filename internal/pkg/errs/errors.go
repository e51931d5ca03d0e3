package errs

import "errors"

var (
	ErrFarmerExists    = errors.New("farmer already exists")
	ErrFarmerNotFound  = errors.New("farmer not found")
	ErrInvalidOTP      = errors.New("invalid or expired OTP")
	ErrVersionConflict = errors.New("farmer record was modified concurrently")
)
