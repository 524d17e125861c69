package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/bloodlink/internal/pkg/database"
	"github.com/piresc/bloodlink/internal/pkg/models"
)

// DonorRepo implements the donor repository interface
type DonorRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewDonorRepository creates a new donor repository
func NewDonorRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *DonorRepo {
	return &DonorRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
