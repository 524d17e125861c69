// Package proximity ranks blood requests by great-circle distance from a
// donor. It performs no I/O and is safe for concurrent use.
package proximity

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/internal/utils"
)

var (
	// ErrInvalidCoordinate is returned when the origin is outside the WGS84 ranges
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrInvalidRadius is returned for a radius that is not a positive number
	ErrInvalidRadius = errors.New("invalid radius")
)

// RankedRequest pairs an open request with its distance from the origin
type RankedRequest struct {
	Request    models.BloodRequest `json:"request"`
	DistanceKm float64             `json:"distance_km"`
}

// Match returns the open candidates whose location lies within radiusKm of
// origin, nearest first. The boundary is inclusive and equal distances keep
// their input order. Candidates without a location are skipped.
//
// The candidates slice is not modified. An empty candidate list yields an
// empty, non-nil result.
func Match(origin utils.GeoPoint, candidates []models.BloodRequest, radiusKm float64) ([]RankedRequest, error) {
	if !origin.IsValid() {
		return nil, fmt.Errorf("%w: origin (%v, %v)", ErrInvalidCoordinate, origin.Latitude, origin.Longitude)
	}
	if math.IsNaN(radiusKm) || radiusKm <= 0 {
		return nil, fmt.Errorf("%w: %v km", ErrInvalidRadius, radiusKm)
	}

	ranked := make([]RankedRequest, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Status != models.RequestStatusOpen || candidate.Location == nil {
			continue
		}

		distance := utils.CalculateDistance(origin, utils.GeoPointFromLocation(*candidate.Location))
		if distance <= radiusKm {
			ranked = append(ranked, RankedRequest{Request: candidate, DistanceKm: distance})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	return ranked, nil
}
