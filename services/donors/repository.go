package donors

import (
	"context"
	"time"

	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/internal/utils"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/bloodlink/services/donors DonorRepo

// DonorRepo defines the interface for donor profile and availability data access
type DonorRepo interface {
	// Profile operations
	GetProfile(ctx context.Context, userID string) (*models.DonorProfile, error)
	UpsertProfile(ctx context.Context, profile *models.DonorProfile) error
	RecordDonation(ctx context.Context, userID string, donatedAt time.Time) error

	// Availability index operations
	AddAvailableDonor(ctx context.Context, userID string, location models.Location, bloodType models.BloodType) error
	RemoveAvailableDonor(ctx context.Context, userID string) error
	IsAvailable(ctx context.Context, userID string) (bool, error)
	NearbyAvailableDonors(ctx context.Context, origin utils.GeoPoint, radiusKm float64) ([]models.NearbyDonor, error)
}
