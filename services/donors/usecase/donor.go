package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/bloodlink/internal/pkg/logger"
	"github.com/piresc/bloodlink/internal/pkg/models"
)

// GetProfile returns the donor's profile. Donors without one are reported as
// unavailable with no location.
func (uc *DonorUC) GetProfile(ctx context.Context, donorID string) (*models.DonorProfile, error) {
	profile, err := uc.donorRepo.GetProfile(ctx, donorID)
	if errors.Is(err, models.ErrNotFound) {
		return &models.DonorProfile{UserID: donorID}, nil
	}
	return profile, err
}

// UpdateAvailability toggles whether the donor can be found by nearby
// searches. Going available needs a location, either in req or on file.
func (uc *DonorUC) UpdateAvailability(ctx context.Context, donorID string, req models.AvailabilityRequest) (*models.DonorProfile, error) {
	profile, err := uc.GetProfile(ctx, donorID)
	if err != nil {
		return nil, err
	}

	if req.Location != nil {
		if !req.Location.IsValid() {
			return nil, fmt.Errorf("%w: location out of range", models.ErrInvalidInput)
		}
		loc := *req.Location
		profile.Location = &loc
	}
	if req.IsAvailable && profile.Location == nil {
		return nil, fmt.Errorf("%w: a location is required to become available", models.ErrInvalidInput)
	}

	changed := profile.IsAvailable != req.IsAvailable
	profile.IsAvailable = req.IsAvailable
	profile.UpdatedAt = models.Now()

	if err := uc.save(ctx, profile); err != nil {
		return nil, err
	}

	if changed {
		uc.publishAvailability(ctx, profile)
	}

	logger.InfoCtx(ctx, "Donor availability updated",
		logger.String("donor_id", donorID),
		logger.Bool("available", profile.IsAvailable))

	return profile, nil
}

// UpdateLocation stores the donor's position and refreshes the index entry
// of an available donor
func (uc *DonorUC) UpdateLocation(ctx context.Context, donorID string, location models.Location) (*models.DonorProfile, error) {
	if !location.IsValid() {
		return nil, fmt.Errorf("%w: location out of range", models.ErrInvalidInput)
	}

	profile, err := uc.GetProfile(ctx, donorID)
	if err != nil {
		return nil, err
	}
	profile.Location = &location
	profile.UpdatedAt = models.Now()

	if err := uc.save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateBloodType records the donor's blood type
func (uc *DonorUC) UpdateBloodType(ctx context.Context, donorID string, bloodType string) (*models.DonorProfile, error) {
	bt, err := models.ParseBloodType(bloodType)
	if err != nil {
		return nil, err
	}

	profile, err := uc.GetProfile(ctx, donorID)
	if err != nil {
		return nil, err
	}
	profile.BloodType = bt
	profile.UpdatedAt = models.Now()

	if err := uc.save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// save persists the profile and brings the availability index in line with it
func (uc *DonorUC) save(ctx context.Context, profile *models.DonorProfile) error {
	if err := uc.donorRepo.UpsertProfile(ctx, profile); err != nil {
		return err
	}

	if profile.IsAvailable && profile.Location != nil {
		return uc.donorRepo.AddAvailableDonor(ctx, profile.UserID, *profile.Location, profile.BloodType)
	}
	return uc.donorRepo.RemoveAvailableDonor(ctx, profile.UserID)
}

func (uc *DonorUC) publishAvailability(ctx context.Context, profile *models.DonorProfile) {
	event := models.DonorAvailabilityEvent{
		DonorID:     profile.UserID,
		BloodType:   profile.BloodType,
		IsAvailable: profile.IsAvailable,
		Location:    profile.Location,
		Timestamp:   models.Now(),
	}
	if err := uc.donorGW.PublishAvailabilityChanged(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish donor availability event",
			logger.String("donor_id", profile.UserID),
			logger.Err(err))
	}
}
