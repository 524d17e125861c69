package requests

import (
	"context"

	"github.com/piresc/bloodlink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/bloodlink/services/requests RequestUC

// RequestUC defines the interface for blood request business logic
type RequestUC interface {
	CreateRequest(ctx context.Context, requesterID string, input models.CreateRequestInput) (*models.BloodRequest, error)
	GetRequest(ctx context.Context, id string) (*models.BloodRequest, error)
	ListMyRequests(ctx context.Context, requesterID string) ([]*models.BloodRequest, error)
	ListOpenRequests(ctx context.Context, filter models.RequestFilter) ([]*models.BloodRequest, error)
	UpdateRequestStatus(ctx context.Context, actorID, id string, status models.RequestStatus) (*models.BloodRequest, error)
	FindNearbyRequests(ctx context.Context, query models.NearbyQuery) ([]models.NearbyRequest, error)

	PledgeDonation(ctx context.Context, donorID, requestID string, input models.PledgeInput) (*models.Donation, error)
	CompleteDonation(ctx context.Context, actorID, donationID string) (*models.Donation, error)
	CancelDonation(ctx context.Context, actorID, donationID string) (*models.Donation, error)
	ListDonationsForRequest(ctx context.Context, requestID string) ([]*models.Donation, error)
	ListMyDonations(ctx context.Context, donorID string) ([]*models.Donation, error)

	Stats(ctx context.Context, userID string) (*models.Stats, error)
}
