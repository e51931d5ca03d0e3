package repository

import (
	"github.com/agrosmart/agrofarm/internal/pkg/database"
	"github.com/agrosmart/agrofarm/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// FarmerRepo implements the farmer directory and climate cache interfaces
type FarmerRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewFarmerRepo creates a new farmer repository instance
func NewFarmerRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *FarmerRepo {
	return &FarmerRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
