package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/bloodlink/internal/pkg/models"
)

const donationColumns = `
	id, request_id, donor_id, recipient_id, blood_type, units, status,
	hospital_name, latitude, longitude, address,
	last_donation_date, medical_conditions, medications,
	has_recent_surgery, has_recent_illness, donation_date,
	created_at, updated_at`

// CreateDonation inserts a donation pledge
func (r *RequestRepo) CreateDonation(ctx context.Context, donation *models.Donation) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO donations (` + donationColumns + `
		) VALUES (
			:id, :request_id, :donor_id, :recipient_id, :blood_type, :units, :status,
			:hospital_name, :latitude, :longitude, :address,
			:last_donation_date, :medical_conditions, :medications,
			:has_recent_surgery, :has_recent_illness, :donation_date,
			:created_at, :updated_at
		)`
	if _, err := tx.NamedExecContext(ctx, query, donation.ToDTO()); err != nil {
		return fmt.Errorf("failed to insert donation: %w", err)
	}

	return tx.Commit()
}

// GetDonation retrieves a donation by ID
func (r *RequestRepo) GetDonation(ctx context.Context, id string) (*models.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE id = $1`

	var dto models.DonationDTO
	if err := r.db.GetContext(ctx, &dto, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("donation %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get donation: %w", err)
	}
	return dto.ToDonation(), nil
}

// ListDonationsByRequest returns the pledges made against a request
func (r *RequestRepo) ListDonationsByRequest(ctx context.Context, requestID string) ([]*models.Donation, error) {
	return r.listDonations(ctx, `WHERE request_id = $1`, requestID)
}

// ListDonationsByDonor returns a donor's donation history
func (r *RequestRepo) ListDonationsByDonor(ctx context.Context, donorID string) ([]*models.Donation, error) {
	return r.listDonations(ctx, `WHERE donor_id = $1`, donorID)
}

func (r *RequestRepo) listDonations(ctx context.Context, where string, arg string) ([]*models.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations ` + where + ` ORDER BY created_at DESC`

	var dtos []models.DonationDTO
	if err := r.db.SelectContext(ctx, &dtos, query, arg); err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}

	out := make([]*models.Donation, 0, len(dtos))
	for i := range dtos {
		out = append(out, dtos[i].ToDonation())
	}
	return out, nil
}

// UpdateDonationStatus moves a donation from one status to another. A nil
// donationDate leaves the stored date untouched.
func (r *RequestRepo) UpdateDonationStatus(ctx context.Context, id string, from, to models.DonationStatus, donationDate *time.Time) error {
	query := `
		UPDATE donations
		SET status = $1, donation_date = COALESCE($2, donation_date), updated_at = $3
		WHERE id = $4 AND status = $5`

	var date sql.NullTime
	if donationDate != nil {
		date = sql.NullTime{Time: *donationDate, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query, to, date, models.Now(), id, from)
	if err != nil {
		return fmt.Errorf("failed to update donation status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("donation %s is no longer %s: %w", id, from, models.ErrConflict)
	}
	return nil
}

// CountDonations returns how many donations against a request are in the
// given status and the units they add up to
func (r *RequestRepo) CountDonations(ctx context.Context, requestID string, status models.DonationStatus) (int, int, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(units), 0)
		FROM donations
		WHERE request_id = $1 AND status = $2`

	var count, units int
	if err := r.db.QueryRowContext(ctx, query, requestID, status).Scan(&count, &units); err != nil {
		return 0, 0, fmt.Errorf("failed to count donations: %w", err)
	}
	return count, units, nil
}
