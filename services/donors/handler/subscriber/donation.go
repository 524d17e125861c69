package subscriber

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/bloodlink/internal/pkg/constants"
	"github.com/piresc/bloodlink/internal/pkg/events"
	"github.com/piresc/bloodlink/internal/pkg/logger"
	"github.com/piresc/bloodlink/internal/pkg/models"
	nrpkg "github.com/piresc/bloodlink/internal/pkg/newrelic"
	"github.com/piresc/bloodlink/services/donors"
)

// DonationHandler consumes donation events for the donors service
type DonationHandler struct {
	donorUC    donors.DonorUC
	subscriber events.Subscriber
	nrApp      *newrelic.Application
}

// NewDonationHandler creates a new donation event handler. nrApp may be nil.
func NewDonationHandler(donorUC donors.DonorUC, subscriber events.Subscriber, nrApp *newrelic.Application) *DonationHandler {
	return &DonationHandler{
		donorUC:    donorUC,
		subscriber: subscriber,
		nrApp:      nrApp,
	}
}

// InitConsumers subscribes to the donation subjects the donors service acts on
func (h *DonationHandler) InitConsumers() error {
	return h.subscriber.Subscribe(constants.SubjectDonationCompleted, h.handleDonationCompleted)
}

func (h *DonationHandler) handleDonationCompleted(ctx context.Context, data []byte) error {
	if h.nrApp != nil {
		txn := h.nrApp.StartTransaction("Events.Donors.HandleDonationCompleted")
		defer txn.End()
		txn.AddAttribute("message.subject", constants.SubjectDonationCompleted)
		txn.AddAttribute("message.size", len(data))
		ctx = newrelic.NewContext(ctx, txn)
	}

	event, err := events.Decode[models.DonationEvent](data)
	if err != nil {
		// acknowledged without retry
		logger.WarnCtx(ctx, "Discarding malformed donation event", logger.Err(err))
		return nil
	}

	if err := h.donorUC.HandleDonationCompleted(ctx, event); err != nil {
		nrpkg.NoticeError(ctx, err)
		logger.ErrorCtx(ctx, "Error handling donation completed event",
			logger.String("donation_id", event.DonationID),
			logger.Err(err))
		return err
	}
	return nil
}
