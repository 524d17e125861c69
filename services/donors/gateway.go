package donors

import (
	"context"

	"github.com/piresc/bloodlink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/bloodlink/services/donors DonorGW

// DonorGW publishes donor events to the message broker
type DonorGW interface {
	PublishAvailabilityChanged(ctx context.Context, event models.DonorAvailabilityEvent) error
}
