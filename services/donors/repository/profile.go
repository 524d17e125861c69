package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/bloodlink/internal/pkg/models"
)

// GetProfile retrieves a donor profile. A donor who never set one up gets
// models.ErrNotFound.
func (r *DonorRepo) GetProfile(ctx context.Context, userID string) (*models.DonorProfile, error) {
	query := `
		SELECT user_id, blood_type, is_available, latitude, longitude, address,
			last_donation_date, updated_at
		FROM donor_profiles
		WHERE user_id = $1`

	var dto models.DonorProfileDTO
	if err := r.db.GetContext(ctx, &dto, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("donor profile %s: %w", userID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get donor profile: %w", err)
	}
	return dto.ToProfile(), nil
}

// UpsertProfile creates or replaces a donor profile
func (r *DonorRepo) UpsertProfile(ctx context.Context, profile *models.DonorProfile) error {
	query := `
		INSERT INTO donor_profiles (
			user_id, blood_type, is_available, latitude, longitude, address,
			last_donation_date, updated_at
		) VALUES (
			:user_id, :blood_type, :is_available, :latitude, :longitude, :address,
			:last_donation_date, :updated_at
		)
		ON CONFLICT (user_id) DO UPDATE SET
			blood_type = EXCLUDED.blood_type,
			is_available = EXCLUDED.is_available,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			address = EXCLUDED.address,
			last_donation_date = EXCLUDED.last_donation_date,
			updated_at = EXCLUDED.updated_at`

	if _, err := r.db.NamedExecContext(ctx, query, profile.ToDTO()); err != nil {
		return fmt.Errorf("failed to upsert donor profile: %w", err)
	}
	return nil
}

// RecordDonation stores a completed donation date and marks the donor
// unavailable, creating the profile when needed. Older dates never replace
// a newer one.
func (r *DonorRepo) RecordDonation(ctx context.Context, userID string, donatedAt time.Time) error {
	query := `
		INSERT INTO donor_profiles (user_id, is_available, last_donation_date, updated_at)
		VALUES ($1, false, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			is_available = false,
			last_donation_date = GREATEST(donor_profiles.last_donation_date, EXCLUDED.last_donation_date),
			updated_at = EXCLUDED.updated_at`

	if _, err := r.db.ExecContext(ctx, query, userID, donatedAt, models.Now()); err != nil {
		return fmt.Errorf("failed to record donation: %w", err)
	}
	return nil
}
