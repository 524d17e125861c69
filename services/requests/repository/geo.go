package repository

import (
	"context"
	"fmt"
	"math"

	"github.com/piresc/bloodlink/internal/pkg/constants"
	"github.com/piresc/bloodlink/internal/pkg/database"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/internal/utils"
)

// Redis measures distance on a sphere of radius 6372.797 km, slightly larger
// than the one used by utils.CalculateDistance. Searching with a little slack
// keeps requests near the edge of the radius in the candidate set.
const geoRadiusSlack = 1.01

// IndexOpenRequest adds an open request to the geo index. Requests beyond
// database.MaxGeoLatitude are left out; searches that reach that far scan
// the database instead.
func (r *RequestRepo) IndexOpenRequest(ctx context.Context, id string, location models.Location) error {
	if math.Abs(location.Latitude) > database.MaxGeoLatitude {
		return nil
	}
	if err := r.redisClient.GeoAdd(ctx, constants.KeyRequestGeo, location.Longitude, location.Latitude, id); err != nil {
		return fmt.Errorf("failed to index blood request: %w", err)
	}
	return nil
}

// RemoveFromIndex drops a request from the geo index. Removing a request
// that is not indexed is not an error.
func (r *RequestRepo) RemoveFromIndex(ctx context.Context, id string) error {
	if err := r.redisClient.GeoRemove(ctx, constants.KeyRequestGeo, id); err != nil {
		return fmt.Errorf("failed to remove blood request from index: %w", err)
	}
	return nil
}

// NearbyRequestIDs returns the IDs of indexed requests around origin, nearest
// first. It fails fast with circuitbreaker.ErrCircuitBreakerOpen while Redis
// is considered down, and with database.ErrOutsideGeoRange, without touching
// Redis, when the search circle reaches past the indexed latitudes.
func (r *RequestRepo) NearbyRequestIDs(ctx context.Context, origin utils.GeoPoint, radiusKm float64) ([]string, error) {
	minLat, maxLat, _ := utils.BoundingBox(origin, radiusKm*geoRadiusSlack)
	if maxLat > database.MaxGeoLatitude || minLat < -database.MaxGeoLatitude {
		return nil, fmt.Errorf("failed to query request geo index: %w", database.ErrOutsideGeoRange)
	}

	var ids []string
	err := r.geoBreaker.Execute(ctx, func(ctx context.Context) error {
		locations, err := r.redisClient.GeoRadius(ctx, constants.KeyRequestGeo,
			origin.Longitude, origin.Latitude, radiusKm*geoRadiusSlack, "km")
		if err != nil {
			return err
		}
		ids = make([]string, 0, len(locations))
		for _, loc := range locations {
			ids = append(ids, loc.Name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query request geo index: %w", err)
	}
	return ids, nil
}
