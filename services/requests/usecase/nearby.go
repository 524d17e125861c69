package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/piresc/bloodlink/internal/pkg/database"
	"github.com/piresc/bloodlink/internal/pkg/logger"
	"github.com/piresc/bloodlink/internal/pkg/metrics"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/internal/pkg/newrelic"
	"github.com/piresc/bloodlink/internal/pkg/proximity"
	"github.com/piresc/bloodlink/internal/utils"
)

// FindNearbyRequests returns the open requests within the query radius,
// nearest first. Candidates come from the Redis geo index, or from a
// bounding box scan in Postgres when the index is unavailable, and are ranked
// by proximity.Match.
func (uc *RequestUC) FindNearbyRequests(ctx context.Context, query models.NearbyQuery) ([]models.NearbyRequest, error) {
	start := time.Now()
	source := metrics.SourceGeoIndex

	origin := utils.GeoPointFromLocation(query.Origin)
	radius, err := uc.resolveRadius(query.RadiusKm)
	if err == nil && !origin.IsValid() {
		err = fmt.Errorf("%w: %w: origin (%v, %v)", models.ErrInvalidInput, proximity.ErrInvalidCoordinate,
			origin.Latitude, origin.Longitude)
	}
	if err == nil && query.DonorBloodType != "" && !query.DonorBloodType.IsValid() {
		err = fmt.Errorf("%w: unknown blood type %q", models.ErrInvalidInput, query.DonorBloodType)
	}
	if err != nil {
		uc.metrics.ObserveMatch(metrics.OutcomeInvalid, source, 0, 0, time.Since(start))
		return nil, err
	}

	candidates, source, err := uc.loadCandidates(ctx, origin, radius)
	if err == nil {
		// no point ranking for a caller that has gone away
		err = ctx.Err()
	}
	if err != nil {
		uc.metrics.ObserveMatch(metrics.OutcomeError, source, 0, 0, time.Since(start))
		return nil, err
	}

	ranked, err := newrelic.WithSegmentAndReturn(ctx, "proximity.Match", func() ([]proximity.RankedRequest, error) {
		return proximity.Match(origin, candidates, radius)
	})
	if err != nil {
		uc.metrics.ObserveMatch(metrics.OutcomeInvalid, source, len(candidates), 0, time.Since(start))
		return nil, fmt.Errorf("%w: %w", models.ErrInvalidInput, err)
	}

	limit := uc.resultLimit(query.Limit)
	results := make([]models.NearbyRequest, 0, len(ranked))
	for _, r := range ranked {
		if query.DonorBloodType != "" && !query.DonorBloodType.CanDonateTo(r.Request.BloodType) {
			continue
		}
		results = append(results, models.NearbyRequest{BloodRequest: r.Request, DistanceKm: r.DistanceKm})
		if limit > 0 && len(results) == limit {
			break
		}
	}

	uc.metrics.ObserveMatch(metrics.OutcomeOK, source, len(candidates), len(ranked), time.Since(start))
	newrelic.AddTransactionAttribute(ctx, "match.source", source)
	newrelic.AddTransactionAttribute(ctx, "match.results", len(results))

	logger.DebugCtx(ctx, "Nearby requests matched",
		logger.String("source", source),
		logger.Float64("radius_km", radius),
		logger.Int("candidates", len(candidates)),
		logger.Int("results", len(results)))

	return results, nil
}

// resolveRadius applies the configured default and ceiling to a requested radius
func (uc *RequestUC) resolveRadius(radiusKm float64) (float64, error) {
	if radiusKm == 0 {
		radiusKm = uc.cfg.Match.DefaultRadiusKm
	}
	if math.IsNaN(radiusKm) || radiusKm <= 0 {
		return 0, fmt.Errorf("%w: %w: %v km", models.ErrInvalidInput, proximity.ErrInvalidRadius, radiusKm)
	}
	if maxRadius := uc.cfg.Match.MaxRadiusKm; maxRadius > 0 && radiusKm > maxRadius {
		return 0, fmt.Errorf("%w: radius %v km exceeds the maximum of %v km", models.ErrInvalidInput, radiusKm, maxRadius)
	}
	return radiusKm, nil
}

func (uc *RequestUC) resultLimit(limit int) int {
	maxResults := uc.cfg.Match.MaxResults
	if limit <= 0 || (maxResults > 0 && limit > maxResults) {
		return maxResults
	}
	return limit
}

// loadCandidates fetches the open requests that may lie within radius of
// origin and reports which source served them
func (uc *RequestUC) loadCandidates(ctx context.Context, origin utils.GeoPoint, radiusKm float64) ([]models.BloodRequest, string, error) {
	ids, err := uc.requestRepo.NearbyRequestIDs(ctx, origin, radiusKm)
	if err == nil {
		candidates, err := uc.requestRepo.GetRequestsByIDs(ctx, ids)
		return candidates, metrics.SourceGeoIndex, err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, metrics.SourceGeoIndex, err
	}

	if errors.Is(err, database.ErrOutsideGeoRange) {
		logger.DebugCtx(ctx, "Search reaches past the geo index, scanning database")
	} else {
		logger.WarnCtx(ctx, "Request geo index unavailable, scanning database",
			logger.Err(err))
	}

	candidates, err := uc.requestRepo.FindOpenRequestsInBox(ctx, origin, radiusKm)
	return candidates, metrics.SourceDatabase, err
}
