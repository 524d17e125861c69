package repository

import (
	"context"
	"fmt"

	"github.com/piresc/bloodlink/internal/pkg/models"
)

// GetStats computes the home screen counters. YourDonations counts the
// completed donations of userID.
func (r *RequestRepo) GetStats(ctx context.Context, userID string) (*models.Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM blood_requests) AS total_requests,
			(SELECT COUNT(*) FROM blood_requests WHERE status IN ($1, $2)) AS active_requests,
			(SELECT COUNT(*) FROM donations WHERE status = $3) AS successful_donations,
			(SELECT COUNT(*) FROM donations WHERE status = $3 AND donor_id::text = $4) AS your_donations`

	var stats models.Stats
	err := r.db.GetContext(ctx, &stats, query,
		models.RequestStatusOpen, models.RequestStatusInProgress,
		models.DonationStatusCompleted, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return &stats, nil
}
