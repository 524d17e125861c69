package donors

import (
	"context"

	"github.com/piresc/bloodlink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/bloodlink/services/donors DonorUC

// DonorUC defines the interface for donor business logic
type DonorUC interface {
	GetProfile(ctx context.Context, donorID string) (*models.DonorProfile, error)
	UpdateAvailability(ctx context.Context, donorID string, req models.AvailabilityRequest) (*models.DonorProfile, error)
	UpdateLocation(ctx context.Context, donorID string, location models.Location) (*models.DonorProfile, error)
	UpdateBloodType(ctx context.Context, donorID string, bloodType string) (*models.DonorProfile, error)
	FindNearbyDonors(ctx context.Context, origin models.Location, radiusKm float64, recipient models.BloodType) ([]models.NearbyDonor, error)
	HandleDonationCompleted(ctx context.Context, event models.DonationEvent) error
}
