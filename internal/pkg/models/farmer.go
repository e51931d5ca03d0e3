package models

import (
	"time"

	"github.com/google/uuid"
)

// Farmer represents a registered farmer keyed by phone number
type Farmer struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	PhoneNumber string    `json:"phone_number" db:"phone_number"`
	District    string    `json:"district" db:"district"`
	// Pending OTP sub-record. Both fields are nil when no OTP is outstanding.
	// Never serialized in API responses.
	OTPCode      *string    `json:"-" db:"otp_code"`
	OTPExpiresAt *time.Time `json:"-" db:"otp_expires_at"`
	Version      int64      `json:"-" db:"version"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// HasPendingOTP reports whether the farmer has an outstanding OTP sub-record
func (f *Farmer) HasPendingOTP() bool {
	return f.OTPCode != nil && f.OTPExpiresAt != nil
}

// SignupRequest represents a request to register a new farmer
type SignupRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	District    string `json:"district"`
}

// LoginRequest represents a request to log in with a phone number
type LoginRequest struct {
	PhoneNumber string `json:"phone_number"`
}

// VerifyRequest represents a request to verify an OTP
type VerifyRequest struct {
	PhoneNumber string `json:"phone_number"`
	OTP         string `json:"otp"`
}

// AuthResponse represents the response after successful OTP verification
type AuthResponse struct {
	Token     string `json:"token"`
	FarmerID  string `json:"farmer_id"`
	ExpiresAt int64  `json:"expires_at"`
}
