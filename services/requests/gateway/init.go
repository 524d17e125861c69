package gateway

import (
	"context"

	"github.com/piresc/bloodlink/internal/pkg/constants"
	"github.com/piresc/bloodlink/internal/pkg/events"
	"github.com/piresc/bloodlink/internal/pkg/logger"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/internal/pkg/retry"
	"github.com/piresc/bloodlink/services/requests"
)

// requestGW publishes request and donation events
type requestGW struct {
	publisher events.Publisher
	retrier   *retry.Retrier
}

// NewRequestGW creates a new gateway on top of an events publisher. Publishes
// are retried with the default backoff.
func NewRequestGW(publisher events.Publisher) requests.RequestGW {
	return &requestGW{
		publisher: publisher,
		retrier:   retry.NewWithDefaults(logger.GetGlobalLogger()),
	}
}

func (g *requestGW) publish(ctx context.Context, subject string, payload interface{}) error {
	return g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.publisher.Publish(ctx, subject, payload)
	})
}

// PublishRequestCreated announces a newly opened request
func (g *requestGW) PublishRequestCreated(ctx context.Context, event models.RequestEvent) error {
	return g.publish(ctx, constants.SubjectRequestCreated, event)
}

// PublishRequestStatusChanged announces a request status transition
func (g *requestGW) PublishRequestStatusChanged(ctx context.Context, event models.RequestEvent) error {
	return g.publish(ctx, constants.SubjectRequestStatusChanged, event)
}

// PublishDonationEvent routes a donation event to the subject for its status
func (g *requestGW) PublishDonationEvent(ctx context.Context, event models.DonationEvent) error {
	subject := constants.SubjectDonationScheduled
	switch event.Status {
	case models.DonationStatusCompleted:
		subject = constants.SubjectDonationCompleted
	case models.DonationStatusCancelled:
		subject = constants.SubjectDonationCancelled
	}
	return g.publish(ctx, subject, event)
}
