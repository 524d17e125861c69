package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/bloodlink/internal/pkg/logger"
	"github.com/piresc/bloodlink/internal/pkg/models"
)

// PledgeDonation schedules a donation from donorID against an open or
// in-progress request. The first pledge moves an open request to in-progress.
func (uc *RequestUC) PledgeDonation(ctx context.Context, donorID, requestID string, input models.PledgeInput) (*models.Donation, error) {
	bloodType, err := models.ParseBloodType(input.BloodType)
	if err != nil {
		return nil, err
	}
	if err := validateScreening(input.Screening); err != nil {
		return nil, err
	}
	units := input.Units
	if units == 0 {
		units = 1
	}
	if units < 0 {
		return nil, fmt.Errorf("%w: units must be positive", models.ErrInvalidInput)
	}

	req, err := uc.requestRepo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != models.RequestStatusOpen && req.Status != models.RequestStatusInProgress {
		return nil, fmt.Errorf("%w: request is %s", models.ErrInvalidTransition, req.Status)
	}
	if req.RequesterID == donorID {
		return nil, fmt.Errorf("%w: cannot donate to your own request", models.ErrForbidden)
	}
	if !bloodType.CanDonateTo(req.BloodType) {
		return nil, fmt.Errorf("%w: %s cannot donate to %s", models.ErrInvalidInput, bloodType, req.BloodType)
	}

	now := models.Now()
	donation := &models.Donation{
		ID:           uuid.NewString(),
		RequestID:    req.ID,
		DonorID:      donorID,
		RecipientID:  req.RequesterID,
		BloodType:    bloodType,
		Units:        units,
		Status:       models.DonationStatusScheduled,
		HospitalName: req.HospitalName,
		Location:     req.Location,
		Screening:    input.Screening,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	donation.Screening.LastDonationDate = strings.TrimSpace(input.LastDonationDate)

	if err := uc.requestRepo.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}

	if req.Status == models.RequestStatusOpen {
		if err := uc.transitionRequest(ctx, req, models.RequestStatusInProgress); err != nil && !isConflict(err) {
			return nil, err
		}
	}

	uc.publishDonation(ctx, donation)

	logger.InfoCtx(ctx, "Donation scheduled",
		logger.String("donation_id", donation.ID),
		logger.String("request_id", req.ID),
		logger.Int("units", units))

	return donation, nil
}

// CompleteDonation marks a scheduled donation as given. The request completes
// once completed donations cover the units it asked for.
func (uc *RequestUC) CompleteDonation(ctx context.Context, actorID, donationID string) (*models.Donation, error) {
	donation, err := uc.scheduledDonation(ctx, actorID, donationID)
	if err != nil {
		return nil, err
	}

	now := models.Now()
	if err := uc.requestRepo.UpdateDonationStatus(ctx, donation.ID, models.DonationStatusScheduled, models.DonationStatusCompleted, &now); err != nil {
		return nil, err
	}
	donation.Status = models.DonationStatusCompleted
	donation.DonationDate = &now
	donation.UpdatedAt = now

	_, units, err := uc.requestRepo.CountDonations(ctx, donation.RequestID, models.DonationStatusCompleted)
	if err != nil {
		return nil, err
	}
	req, err := uc.requestRepo.GetRequest(ctx, donation.RequestID)
	if err != nil {
		return nil, err
	}
	if units >= req.UnitsRequired && !req.Status.IsTerminal() {
		if err := uc.transitionRequest(ctx, req, models.RequestStatusCompleted); err != nil && !isConflict(err) {
			return nil, err
		}
	}

	uc.publishDonation(ctx, donation)
	return donation, nil
}

// CancelDonation withdraws a scheduled donation. An in-progress request with
// no scheduled donations left goes back to open.
func (uc *RequestUC) CancelDonation(ctx context.Context, actorID, donationID string) (*models.Donation, error) {
	donation, err := uc.scheduledDonation(ctx, actorID, donationID)
	if err != nil {
		return nil, err
	}

	if err := uc.requestRepo.UpdateDonationStatus(ctx, donation.ID, models.DonationStatusScheduled, models.DonationStatusCancelled, nil); err != nil {
		return nil, err
	}
	donation.Status = models.DonationStatusCancelled
	donation.UpdatedAt = models.Now()

	remaining, _, err := uc.requestRepo.CountDonations(ctx, donation.RequestID, models.DonationStatusScheduled)
	if err != nil {
		return nil, err
	}
	if remaining == 0 {
		req, err := uc.requestRepo.GetRequest(ctx, donation.RequestID)
		if err != nil {
			return nil, err
		}
		if req.Status == models.RequestStatusInProgress {
			if err := uc.transitionRequest(ctx, req, models.RequestStatusOpen); err != nil && !isConflict(err) {
				return nil, err
			}
		}
	}

	uc.publishDonation(ctx, donation)
	return donation, nil
}

// ListDonationsForRequest returns the pledges made against a request
func (uc *RequestUC) ListDonationsForRequest(ctx context.Context, requestID string) ([]*models.Donation, error) {
	if _, err := uc.requestRepo.GetRequest(ctx, requestID); err != nil {
		return nil, err
	}
	return uc.requestRepo.ListDonationsByRequest(ctx, requestID)
}

// ListMyDonations returns the donation history of donorID
func (uc *RequestUC) ListMyDonations(ctx context.Context, donorID string) ([]*models.Donation, error) {
	return uc.requestRepo.ListDonationsByDonor(ctx, donorID)
}

// scheduledDonation loads a donation the actor takes part in and checks that
// it can still change
func (uc *RequestUC) scheduledDonation(ctx context.Context, actorID, donationID string) (*models.Donation, error) {
	donation, err := uc.requestRepo.GetDonation(ctx, donationID)
	if err != nil {
		return nil, err
	}
	if actorID != donation.DonorID && actorID != donation.RecipientID {
		return nil, fmt.Errorf("%w: not a party to this donation", models.ErrForbidden)
	}
	if donation.Status != models.DonationStatusScheduled {
		return nil, fmt.Errorf("%w: donation is %s", models.ErrInvalidTransition, donation.Status)
	}
	return donation, nil
}

func (uc *RequestUC) publishDonation(ctx context.Context, donation *models.Donation) {
	event := models.DonationEvent{
		DonationID:  donation.ID,
		RequestID:   donation.RequestID,
		DonorID:     donation.DonorID,
		RecipientID: donation.RecipientID,
		BloodType:   donation.BloodType,
		Units:       donation.Units,
		Status:      donation.Status,
		Timestamp:   models.Now(),
	}
	if err := uc.requestGW.PublishDonationEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish donation event",
			logger.String("donation_id", donation.ID),
			logger.String("status", string(donation.Status)),
			logger.Err(err))
	}
}

// validateScreening checks the donation form answers
func validateScreening(s models.Screening) error {
	date := strings.TrimSpace(s.LastDonationDate)
	if date == "" {
		return fmt.Errorf("%w: last donation date is required", models.ErrInvalidInput)
	}
	parsed, err := models.ParseDate(date)
	if err != nil {
		return fmt.Errorf("%w: last donation date must be YYYY-MM-DD", models.ErrInvalidInput)
	}
	if parsed.After(models.Now()) {
		return fmt.Errorf("%w: last donation date is in the future", models.ErrInvalidInput)
	}
	return nil
}
