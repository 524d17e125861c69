package usecase

import (
	"github.com/piresc/bloodlink/internal/pkg/metrics"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/services/requests"
)

const defaultGeohashPrecision = 7

// RequestUC implements the request use case interface
type RequestUC struct {
	cfg         *models.Config
	requestRepo requests.RequestRepo
	requestGW   requests.RequestGW
	metrics     *metrics.Collector
}

// NewRequestUC creates a new request use case. A nil collector disables
// matcher metrics.
func NewRequestUC(
	cfg *models.Config,
	requestRepo requests.RequestRepo,
	requestGW requests.RequestGW,
	collector *metrics.Collector,
) *RequestUC {
	return &RequestUC{
		cfg:         cfg,
		requestRepo: requestRepo,
		requestGW:   requestGW,
		metrics:     collector,
	}
}
