package http

import (
	"github.com/piresc/bloodlink/services/donors"
)

// DonorHandler handles HTTP requests for donor profiles and searches
type DonorHandler struct {
	donorUC donors.DonorUC
}

// NewDonorHandler creates a new donor HTTP handler
func NewDonorHandler(donorUC donors.DonorUC) *DonorHandler {
	return &DonorHandler{
		donorUC: donorUC,
	}
}
