package requests

import (
	"context"

	"github.com/piresc/bloodlink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/bloodlink/services/requests RequestGW

// RequestGW publishes request and donation events to the message broker
type RequestGW interface {
	PublishRequestCreated(ctx context.Context, event models.RequestEvent) error
	PublishRequestStatusChanged(ctx context.Context, event models.RequestEvent) error
	PublishDonationEvent(ctx context.Context, event models.DonationEvent) error
}
