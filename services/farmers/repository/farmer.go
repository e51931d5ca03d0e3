package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/agrosmart/agrofarm/internal/pkg/errs"
	"github.com/agrosmart/agrofarm/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
)

const uniqueViolationCode = "23505"

// GetByPhone retrieves a farmer by phone number
func (r *FarmerRepo) GetByPhone(ctx context.Context, phoneNumber string) (*models.Farmer, error) {
	query := `
		SELECT id, name, phone_number, district, otp_code, otp_expires_at, version, created_at, updated_at
		FROM farmers
		WHERE phone_number = $1
	`

	var farmer models.Farmer
	err := r.db.QueryRowContext(ctx, query, phoneNumber).Scan(
		&farmer.ID,
		&farmer.Name,
		&farmer.PhoneNumber,
		&farmer.District,
		&farmer.OTPCode,
		&farmer.OTPExpiresAt,
		&farmer.Version,
		&farmer.CreatedAt,
		&farmer.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrFarmerNotFound
		}
		return nil, fmt.Errorf("failed to get farmer: %w", err)
	}

	return &farmer, nil
}

// GetByID retrieves a farmer by ID
func (r *FarmerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Farmer, error) {
	query := `
		SELECT id, name, phone_number, district, otp_code, otp_expires_at, version, created_at, updated_at
		FROM farmers
		WHERE id = $1
	`

	var farmer models.Farmer
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&farmer.ID,
		&farmer.Name,
		&farmer.PhoneNumber,
		&farmer.District,
		&farmer.OTPCode,
		&farmer.OTPExpiresAt,
		&farmer.Version,
		&farmer.CreatedAt,
		&farmer.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrFarmerNotFound
		}
		return nil, fmt.Errorf("failed to get farmer: %w", err)
	}

	return &farmer, nil
}

// Create inserts a new farmer record, including any pending OTP sub-record
func (r *FarmerRepo) Create(ctx context.Context, farmer *models.Farmer) error {
	farmer.ID = uuid.New()
	now := time.Now()
	farmer.CreatedAt = now
	farmer.UpdatedAt = now
	farmer.Version = 1

	query := `
		INSERT INTO farmers (id, name, phone_number, district, otp_code, otp_expires_at, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		farmer.ID,
		farmer.Name,
		farmer.PhoneNumber,
		farmer.District,
		farmer.OTPCode,
		farmer.OTPExpiresAt,
		farmer.Version,
		farmer.CreatedAt,
		farmer.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return errs.ErrFarmerExists
		}
		return fmt.Errorf("failed to create farmer: %w", err)
	}

	return nil
}

// SetOTP attaches a pending OTP to the farmer record. The update only lands if
// the record version is unchanged since the caller's read.
func (r *FarmerRepo) SetOTP(ctx context.Context, id uuid.UUID, code string, expiresAt time.Time, version int64) error {
	query := `
		UPDATE farmers
		SET otp_code = $1, otp_expires_at = $2, version = version + 1, updated_at = $3
		WHERE id = $4 AND version = $5
	`

	result, err := r.db.ExecContext(ctx, query, code, expiresAt, time.Now(), id, version)
	if err != nil {
		return fmt.Errorf("failed to set OTP: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check OTP update result: %w", err)
	}
	if rows == 0 {
		return errs.ErrVersionConflict
	}

	return nil
}

// ClearOTP removes the pending OTP sub-record, versioned like SetOTP so a
// verification cannot clear an OTP issued after its read.
func (r *FarmerRepo) ClearOTP(ctx context.Context, id uuid.UUID, version int64) error {
	query := `
		UPDATE farmers
		SET otp_code = NULL, otp_expires_at = NULL, version = version + 1, updated_at = $1
		WHERE id = $2 AND version = $3
	`

	result, err := r.db.ExecContext(ctx, query, time.Now(), id, version)
	if err != nil {
		return fmt.Errorf("failed to clear OTP: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check OTP clear result: %w", err)
	}
	if rows == 0 {
		return errs.ErrVersionConflict
	}

	return nil
}
