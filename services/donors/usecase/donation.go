package usecase

import (
	"context"

	"github.com/piresc/bloodlink/internal/pkg/logger"
	"github.com/piresc/bloodlink/internal/pkg/models"
)

// HandleDonationCompleted records a completed donation on the donor's profile
// and takes the donor out of nearby searches
func (uc *DonorUC) HandleDonationCompleted(ctx context.Context, event models.DonationEvent) error {
	if event.Status != models.DonationStatusCompleted || event.DonorID == "" {
		return nil
	}

	donatedAt := event.Timestamp
	if donatedAt.IsZero() {
		donatedAt = models.Now()
	}

	wasAvailable, err := uc.donorRepo.IsAvailable(ctx, event.DonorID)
	if err != nil {
		return err
	}
	if err := uc.donorRepo.RecordDonation(ctx, event.DonorID, donatedAt); err != nil {
		return err
	}
	if err := uc.donorRepo.RemoveAvailableDonor(ctx, event.DonorID); err != nil {
		return err
	}

	if wasAvailable {
		uc.publishAvailability(ctx, &models.DonorProfile{UserID: event.DonorID, BloodType: event.BloodType})
	}

	logger.InfoCtx(ctx, "Donation recorded for donor",
		logger.String("donor_id", event.DonorID),
		logger.String("donation_id", event.DonationID))
	return nil
}
