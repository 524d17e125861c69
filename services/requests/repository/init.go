package repository

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/bloodlink/internal/pkg/circuitbreaker"
	"github.com/piresc/bloodlink/internal/pkg/database"
	"github.com/piresc/bloodlink/internal/pkg/logger"
	"github.com/piresc/bloodlink/internal/pkg/models"
)

// RequestRepo implements the request repository interface
type RequestRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
	geoBreaker  *circuitbreaker.CircuitBreaker
}

// NewRequestRepository creates a new request repository
func NewRequestRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *RequestRepo {
	breakerCfg := circuitbreaker.DefaultConfig("requests-geo-index")
	breakerCfg.Timeout = 15 * time.Second

	return &RequestRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
		geoBreaker:  circuitbreaker.New(breakerCfg, logger.GetGlobalLogger()),
	}
}
