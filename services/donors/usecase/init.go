package usecase

import (
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/services/donors"
)

// DonorUC implements the donor use case interface
type DonorUC struct {
	cfg       *models.Config
	donorRepo donors.DonorRepo
	donorGW   donors.DonorGW
}

// NewDonorUC creates a new donor use case
func NewDonorUC(
	cfg *models.Config,
	donorRepo donors.DonorRepo,
	donorGW donors.DonorGW,
) *DonorUC {
	return &DonorUC{
		cfg:       cfg,
		donorRepo: donorRepo,
		donorGW:   donorGW,
	}
}
