package farmers

import (
	"context"
	"time"

	"github.com/agrosmart/agrofarm/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/agrosmart/agrofarm/services/farmers FarmerRepo,ClimateRepo

// FarmerRepo is the persistent farmer directory keyed by phone number.
// OTP set/clear operations are guarded by an optimistic version check: the
// caller passes the version it read, and a concurrent writer having bumped it
// surfaces as errs.ErrVersionConflict.
type FarmerRepo interface {
	GetByPhone(ctx context.Context, phoneNumber string) (*models.Farmer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Farmer, error)
	Create(ctx context.Context, farmer *models.Farmer) error
	SetOTP(ctx context.Context, id uuid.UUID, code string, expiresAt time.Time, version int64) error
	ClearOTP(ctx context.Context, id uuid.UUID, version int64) error
}

// ClimateRepo is the time-bounded climate cache. GetClimate returns (nil, nil)
// on a cache miss; entries expire via TTL only, with no active invalidation.
type ClimateRepo interface {
	GetClimate(ctx context.Context, key string) (*models.Climate, error)
	SetClimate(ctx context.Context, key string, climate *models.Climate, ttl time.Duration) error
}
