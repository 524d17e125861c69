package gateway

import (
	"context"

	"github.com/piresc/bloodlink/internal/pkg/constants"
	"github.com/piresc/bloodlink/internal/pkg/events"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/services/donors"
)

type donorGW struct {
	publisher events.Publisher
}

// NewDonorGW creates a new gateway on top of an events publisher
func NewDonorGW(publisher events.Publisher) donors.DonorGW {
	return &donorGW{publisher: publisher}
}

// PublishAvailabilityChanged announces that a donor went available or unavailable
func (g *donorGW) PublishAvailabilityChanged(ctx context.Context, event models.DonorAvailabilityEvent) error {
	return g.publisher.Publish(ctx, constants.SubjectDonorAvailability, event)
}
