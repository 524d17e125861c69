package requests

import (
	"context"
	"time"

	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/internal/utils"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/bloodlink/services/requests RequestRepo

// RequestRepo defines the interface for blood request and donation data access
type RequestRepo interface {
	// Blood request operations
	CreateRequest(ctx context.Context, req *models.BloodRequest) error
	GetRequest(ctx context.Context, id string) (*models.BloodRequest, error)
	GetRequestsByIDs(ctx context.Context, ids []string) ([]models.BloodRequest, error)
	ListRequestsByRequester(ctx context.Context, requesterID string) ([]*models.BloodRequest, error)
	ListOpenRequests(ctx context.Context, filter models.RequestFilter) ([]*models.BloodRequest, error)
	UpdateRequestStatus(ctx context.Context, id string, from, to models.RequestStatus) error

	// Open request geo index operations
	IndexOpenRequest(ctx context.Context, id string, location models.Location) error
	RemoveFromIndex(ctx context.Context, id string) error
	NearbyRequestIDs(ctx context.Context, origin utils.GeoPoint, radiusKm float64) ([]string, error)
	FindOpenRequestsInBox(ctx context.Context, origin utils.GeoPoint, radiusKm float64) ([]models.BloodRequest, error)

	// Donation operations
	CreateDonation(ctx context.Context, donation *models.Donation) error
	GetDonation(ctx context.Context, id string) (*models.Donation, error)
	ListDonationsByRequest(ctx context.Context, requestID string) ([]*models.Donation, error)
	ListDonationsByDonor(ctx context.Context, donorID string) ([]*models.Donation, error)
	UpdateDonationStatus(ctx context.Context, id string, from, to models.DonationStatus, donationDate *time.Time) error
	CountDonations(ctx context.Context, requestID string, status models.DonationStatus) (int, int, error)

	// Aggregates
	GetStats(ctx context.Context, userID string) (*models.Stats, error)
}
