package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/internal/pkg/newrelic"
	"github.com/piresc/bloodlink/internal/utils"
)

// FindNearbyDonors lists available donors within radiusKm of origin, nearest
// first. A non-empty recipient keeps only donors who can give to that type.
func (uc *DonorUC) FindNearbyDonors(ctx context.Context, origin models.Location, radiusKm float64, recipient models.BloodType) ([]models.NearbyDonor, error) {
	if radiusKm == 0 {
		radiusKm = uc.cfg.Match.DefaultRadiusKm
	}
	if math.IsNaN(radiusKm) || radiusKm <= 0 {
		return nil, fmt.Errorf("%w: radius must be positive", models.ErrInvalidInput)
	}
	if maxRadius := uc.cfg.Match.MaxRadiusKm; maxRadius > 0 && radiusKm > maxRadius {
		return nil, fmt.Errorf("%w: radius %v km exceeds the maximum of %v km", models.ErrInvalidInput, radiusKm, maxRadius)
	}
	if !origin.IsValid() {
		return nil, fmt.Errorf("%w: origin out of range", models.ErrInvalidInput)
	}
	if recipient != "" && !recipient.IsValid() {
		return nil, fmt.Errorf("%w: unknown blood type %q", models.ErrInvalidInput, recipient)
	}

	point := utils.GeoPointFromLocation(origin)
	candidates, err := newrelic.WithSegmentAndReturn(ctx, "DonorRepo.NearbyAvailableDonors", func() ([]models.NearbyDonor, error) {
		return uc.donorRepo.NearbyAvailableDonors(ctx, point, radiusKm)
	})
	if err != nil {
		return nil, err
	}

	donors := make([]models.NearbyDonor, 0, len(candidates))
	for _, d := range candidates {
		if recipient != "" && !d.BloodType.CanDonateTo(recipient) {
			continue
		}
		d.DistanceKm = utils.CalculateDistance(point, utils.GeoPointFromLocation(d.Location))
		if d.DistanceKm > radiusKm {
			continue
		}
		donors = append(donors, d)
	}
	sort.SliceStable(donors, func(i, j int) bool {
		return donors[i].DistanceKm < donors[j].DistanceKm
	})

	if limit := uc.cfg.Match.MaxResults; limit > 0 && len(donors) > limit {
		donors = donors[:limit]
	}
	return donors, nil
}
