package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/bloodlink/internal/pkg/logger"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/internal/pkg/newrelic"
	"github.com/piresc/bloodlink/internal/utils"
)

// CreateRequest validates and stores a new open request, then indexes it for
// proximity search
func (uc *RequestUC) CreateRequest(ctx context.Context, requesterID string, input models.CreateRequestInput) (*models.BloodRequest, error) {
	req, err := uc.buildRequest(requesterID, input)
	if err != nil {
		return nil, err
	}

	if err := uc.requestRepo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}

	if req.Location != nil {
		if err := uc.requestRepo.IndexOpenRequest(ctx, req.ID, *req.Location); err != nil {
			// the bounding box fallback still finds the request
			logger.ErrorCtx(ctx, "Failed to index blood request",
				logger.String("request_id", req.ID),
				logger.Err(err))
		}
	}

	newrelic.AddTransactionAttribute(ctx, "request.id", req.ID)
	newrelic.AddTransactionAttribute(ctx, "request.blood_type", string(req.BloodType))

	if err := uc.requestGW.PublishRequestCreated(ctx, requestEvent(req, "")); err != nil {
		logger.WarnCtx(ctx, "Failed to publish request created event",
			logger.String("request_id", req.ID),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Blood request created",
		logger.String("request_id", req.ID),
		logger.String("blood_type", string(req.BloodType)),
		logger.String("urgency", string(req.Urgency)))

	return req, nil
}

func (uc *RequestUC) buildRequest(requesterID string, input models.CreateRequestInput) (*models.BloodRequest, error) {
	bloodType, err := models.ParseBloodType(input.BloodType)
	if err != nil {
		return nil, err
	}
	urgency, err := models.ParseUrgency(input.Urgency)
	if err != nil {
		return nil, err
	}

	patient := utils.SanitizeString(input.PatientName)
	hospital := utils.SanitizeString(input.HospitalName)
	switch {
	case patient == "":
		return nil, fmt.Errorf("%w: patient name is required", models.ErrInvalidInput)
	case hospital == "":
		return nil, fmt.Errorf("%w: hospital name is required", models.ErrInvalidInput)
	case input.UnitsRequired <= 0:
		return nil, fmt.Errorf("%w: units required must be positive", models.ErrInvalidInput)
	case !utils.IsValidPhoneNumber(input.ContactNumber):
		return nil, fmt.Errorf("%w: invalid contact number", models.ErrInvalidInput)
	case input.Location != nil && !input.Location.IsValid():
		return nil, fmt.Errorf("%w: location out of range", models.ErrInvalidInput)
	}

	now := models.Now()
	req := &models.BloodRequest{
		ID:              uuid.NewString(),
		RequesterID:     requesterID,
		PatientName:     patient,
		BloodType:       bloodType,
		UnitsRequired:   input.UnitsRequired,
		Urgency:         urgency,
		HospitalName:    hospital,
		ContactNumber:   strings.TrimSpace(input.ContactNumber),
		AdditionalNotes: utils.SanitizeString(input.AdditionalNotes),
		Status:          models.RequestStatusOpen,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if input.Location != nil {
		loc := *input.Location
		req.Location = &loc
		req.Geohash = utils.EncodeLocation(loc, uc.geohashPrecision())
	}
	return req, nil
}

func (uc *RequestUC) geohashPrecision() uint {
	if uc.cfg.Match.GeohashPrecision > 0 {
		return uc.cfg.Match.GeohashPrecision
	}
	return defaultGeohashPrecision
}

// GetRequest returns a single request
func (uc *RequestUC) GetRequest(ctx context.Context, id string) (*models.BloodRequest, error) {
	return uc.requestRepo.GetRequest(ctx, id)
}

// ListMyRequests returns the requests created by requesterID
func (uc *RequestUC) ListMyRequests(ctx context.Context, requesterID string) ([]*models.BloodRequest, error) {
	return uc.requestRepo.ListRequestsByRequester(ctx, requesterID)
}

// ListOpenRequests returns open requests, newest first
func (uc *RequestUC) ListOpenRequests(ctx context.Context, filter models.RequestFilter) ([]*models.BloodRequest, error) {
	if filter.BloodType != "" && !filter.BloodType.IsValid() {
		return nil, fmt.Errorf("%w: unknown blood type %q", models.ErrInvalidInput, filter.BloodType)
	}
	if filter.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", models.ErrInvalidInput)
	}
	filter.Limit = uc.resultLimit(filter.Limit)
	return uc.requestRepo.ListOpenRequests(ctx, filter)
}

// UpdateRequestStatus lets the requester move their request through its lifecycle
func (uc *RequestUC) UpdateRequestStatus(ctx context.Context, actorID, id string, status models.RequestStatus) (*models.BloodRequest, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", models.ErrInvalidInput, status)
	}

	req, err := uc.requestRepo.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.RequesterID != actorID {
		return nil, fmt.Errorf("%w: only the requester can change the request status", models.ErrForbidden)
	}

	if err := uc.transitionRequest(ctx, req, status); err != nil {
		return nil, err
	}
	return req, nil
}

// transitionRequest persists a status change, keeps the geo index in step with
// the open set and publishes the change. req is updated in place.
func (uc *RequestUC) transitionRequest(ctx context.Context, req *models.BloodRequest, to models.RequestStatus) error {
	from := req.Status
	if !from.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s to %s", models.ErrInvalidTransition, from, to)
	}

	if err := uc.requestRepo.UpdateRequestStatus(ctx, req.ID, from, to); err != nil {
		return err
	}
	req.Status = to
	req.UpdatedAt = models.Now()

	var indexErr error
	switch {
	case to == models.RequestStatusOpen && req.Location != nil:
		indexErr = uc.requestRepo.IndexOpenRequest(ctx, req.ID, *req.Location)
	case from == models.RequestStatusOpen:
		indexErr = uc.requestRepo.RemoveFromIndex(ctx, req.ID)
	}
	if indexErr != nil {
		// stale index entries are dropped by the open filter in the matcher
		logger.WarnCtx(ctx, "Failed to update request geo index",
			logger.String("request_id", req.ID),
			logger.Err(indexErr))
	}

	if err := uc.requestGW.PublishRequestStatusChanged(ctx, requestEvent(req, from)); err != nil {
		logger.WarnCtx(ctx, "Failed to publish request status event",
			logger.String("request_id", req.ID),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Blood request status changed",
		logger.String("request_id", req.ID),
		logger.String("from", string(from)),
		logger.String("to", string(to)))
	return nil
}

// Stats returns the home screen counters for userID
func (uc *RequestUC) Stats(ctx context.Context, userID string) (*models.Stats, error) {
	return newrelic.WithSegmentAndReturn(ctx, "RequestUC.Stats", func() (*models.Stats, error) {
		return uc.requestRepo.GetStats(ctx, userID)
	})
}

func requestEvent(req *models.BloodRequest, previous models.RequestStatus) models.RequestEvent {
	return models.RequestEvent{
		RequestID:      req.ID,
		RequesterID:    req.RequesterID,
		BloodType:      req.BloodType,
		Urgency:        req.Urgency,
		Status:         req.Status,
		PreviousStatus: previous,
		Location:       req.Location,
		Timestamp:      models.Now(),
	}
}

func isConflict(err error) bool {
	return errors.Is(err, models.ErrConflict)
}
