package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/internal/utils"
)

const requestColumns = `
	id, requester_id, patient_name, blood_type, units_required, urgency,
	hospital_name, latitude, longitude, address, geohash,
	contact_number, additional_notes, status, created_at, updated_at`

// CreateRequest inserts a new blood request
func (r *RequestRepo) CreateRequest(ctx context.Context, req *models.BloodRequest) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO blood_requests (` + requestColumns + `
		) VALUES (
			:id, :requester_id, :patient_name, :blood_type, :units_required, :urgency,
			:hospital_name, :latitude, :longitude, :address, :geohash,
			:contact_number, :additional_notes, :status, :created_at, :updated_at
		)`
	if _, err := tx.NamedExecContext(ctx, query, req.ToDTO()); err != nil {
		return fmt.Errorf("failed to insert blood request: %w", err)
	}

	return tx.Commit()
}

// GetRequest retrieves a blood request by ID
func (r *RequestRepo) GetRequest(ctx context.Context, id string) (*models.BloodRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM blood_requests WHERE id = $1`

	var dto models.BloodRequestDTO
	if err := r.db.GetContext(ctx, &dto, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("blood request %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get blood request: %w", err)
	}
	return dto.ToRequest(), nil
}

// GetRequestsByIDs loads the given requests. Unknown IDs are skipped and the
// result follows the order of ids.
func (r *RequestRepo) GetRequestsByIDs(ctx context.Context, ids []string) ([]models.BloodRequest, error) {
	if len(ids) == 0 {
		return []models.BloodRequest{}, nil
	}

	query := `SELECT ` + requestColumns + ` FROM blood_requests WHERE id = ANY($1)`

	var dtos []models.BloodRequestDTO
	if err := r.db.SelectContext(ctx, &dtos, query, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("failed to load blood requests: %w", err)
	}

	byID := make(map[string]*models.BloodRequest, len(dtos))
	for i := range dtos {
		byID[dtos[i].ID] = dtos[i].ToRequest()
	}

	out := make([]models.BloodRequest, 0, len(dtos))
	for _, id := range ids {
		if req, ok := byID[id]; ok {
			out = append(out, *req)
		}
	}
	return out, nil
}

// ListRequestsByRequester returns a requester's requests, newest first
func (r *RequestRepo) ListRequestsByRequester(ctx context.Context, requesterID string) ([]*models.BloodRequest, error) {
	query := `SELECT ` + requestColumns + `
		FROM blood_requests
		WHERE requester_id = $1
		ORDER BY created_at DESC`

	var dtos []models.BloodRequestDTO
	if err := r.db.SelectContext(ctx, &dtos, query, requesterID); err != nil {
		return nil, fmt.Errorf("failed to list blood requests: %w", err)
	}
	return toRequests(dtos), nil
}

// ListOpenRequests returns open requests, newest first
func (r *RequestRepo) ListOpenRequests(ctx context.Context, filter models.RequestFilter) ([]*models.BloodRequest, error) {
	query := `SELECT ` + requestColumns + `
		FROM blood_requests
		WHERE status = $1 AND ($2 = '' OR blood_type = $2)
		ORDER BY created_at DESC
		LIMIT $3`

	// LIMIT NULL means no limit
	var limit interface{}
	if filter.Limit > 0 {
		limit = filter.Limit
	}

	var dtos []models.BloodRequestDTO
	if err := r.db.SelectContext(ctx, &dtos, query, models.RequestStatusOpen, string(filter.BloodType), limit); err != nil {
		return nil, fmt.Errorf("failed to list open blood requests: %w", err)
	}
	return toRequests(dtos), nil
}

// UpdateRequestStatus moves a request from one status to another. It fails
// with models.ErrConflict when the stored status is no longer from.
func (r *RequestRepo) UpdateRequestStatus(ctx context.Context, id string, from, to models.RequestStatus) error {
	query := `
		UPDATE blood_requests
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4`

	result, err := r.db.ExecContext(ctx, query, to, models.Now(), id, from)
	if err != nil {
		return fmt.Errorf("failed to update blood request status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("blood request %s is no longer %s: %w", id, from, models.ErrConflict)
	}
	return nil
}

// FindOpenRequestsInBox scans the database for open requests inside the
// bounding box of the search circle. Callers filter by exact distance.
func (r *RequestRepo) FindOpenRequestsInBox(ctx context.Context, origin utils.GeoPoint, radiusKm float64) ([]models.BloodRequest, error) {
	minLat, maxLat, lngRanges := utils.BoundingBox(origin, radiusKm)
	if len(lngRanges) == 1 {
		// a box that does not cross the antimeridian repeats its only range
		lngRanges = append(lngRanges, lngRanges[0])
	}

	query := `SELECT ` + requestColumns + `
		FROM blood_requests
		WHERE status = $1
			AND latitude BETWEEN $2 AND $3
			AND (longitude BETWEEN $4 AND $5 OR longitude BETWEEN $6 AND $7)
		ORDER BY created_at DESC`

	var dtos []models.BloodRequestDTO
	err := r.db.SelectContext(ctx, &dtos, query, models.RequestStatusOpen, minLat, maxLat,
		lngRanges[0].Min, lngRanges[0].Max, lngRanges[1].Min, lngRanges[1].Max)
	if err != nil {
		return nil, fmt.Errorf("failed to scan open blood requests: %w", err)
	}

	out := make([]models.BloodRequest, 0, len(dtos))
	for i := range dtos {
		out = append(out, *dtos[i].ToRequest())
	}
	return out, nil
}

func toRequests(dtos []models.BloodRequestDTO) []*models.BloodRequest {
	out := make([]*models.BloodRequest, 0, len(dtos))
	for i := range dtos {
		out = append(out, dtos[i].ToRequest())
	}
	return out
}
