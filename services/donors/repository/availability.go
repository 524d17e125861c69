package repository

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/bloodlink/internal/pkg/constants"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/internal/utils"
)

// Redis uses a slightly larger earth radius than utils.CalculateDistance
const geoRadiusSlack = 1.01

// AddAvailableDonor puts a donor into the availability index, replacing any
// previous position
func (r *DonorRepo) AddAvailableDonor(ctx context.Context, userID string, location models.Location, bloodType models.BloodType) error {
	_, err := r.redisClient.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.GeoAdd(ctx, constants.KeyDonorGeo, &redis.GeoLocation{
			Name:      userID,
			Longitude: location.Longitude,
			Latitude:  location.Latitude,
		})
		pipe.SAdd(ctx, constants.KeyAvailableDonor, userID)
		if bloodType != "" {
			pipe.HSet(ctx, constants.KeyDonorBloodType, userID, string(bloodType))
		} else {
			pipe.HDel(ctx, constants.KeyDonorBloodType, userID)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to add available donor: %w", err)
	}
	return nil
}

// RemoveAvailableDonor drops a donor from the availability index
func (r *DonorRepo) RemoveAvailableDonor(ctx context.Context, userID string) error {
	_, err := r.redisClient.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRem(ctx, constants.KeyDonorGeo, userID)
		pipe.SRem(ctx, constants.KeyAvailableDonor, userID)
		pipe.HDel(ctx, constants.KeyDonorBloodType, userID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to remove available donor: %w", err)
	}
	return nil
}

// IsAvailable reports whether a donor is currently in the availability index
func (r *DonorRepo) IsAvailable(ctx context.Context, userID string) (bool, error) {
	ok, err := r.redisClient.SIsMember(ctx, constants.KeyAvailableDonor, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check donor availability: %w", err)
	}
	return ok, nil
}

// NearbyAvailableDonors returns the indexed donors around origin with their
// stored position and blood type. DistanceKm is left for the caller.
func (r *DonorRepo) NearbyAvailableDonors(ctx context.Context, origin utils.GeoPoint, radiusKm float64) ([]models.NearbyDonor, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyDonorGeo,
		origin.Longitude, origin.Latitude, radiusKm*geoRadiusSlack, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query donor geo index: %w", err)
	}
	if len(locations) == 0 {
		return []models.NearbyDonor{}, nil
	}

	ids := make([]string, 0, len(locations))
	for _, loc := range locations {
		ids = append(ids, loc.Name)
	}
	bloodTypes, err := r.redisClient.Client.HMGet(ctx, constants.KeyDonorBloodType, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load donor blood types: %w", err)
	}

	donors := make([]models.NearbyDonor, 0, len(locations))
	for i, loc := range locations {
		donor := models.NearbyDonor{
			UserID:   loc.Name,
			Location: models.Location{Latitude: loc.Latitude, Longitude: loc.Longitude},
		}
		if bt, ok := bloodTypes[i].(string); ok {
			donor.BloodType = models.BloodType(bt)
		}
		donors = append(donors, donor)
	}
	return donors, nil
}
