package proximity

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var losAngeles = utils.GeoPoint{Latitude: 34.0522, Longitude: -118.2437}

func openRequest(id string, lat, lng float64) models.BloodRequest {
	return models.BloodRequest{
		ID:            id,
		BloodType:     models.BloodTypeOPos,
		UnitsRequired: 2,
		Urgency:       models.UrgencyUrgent,
		Location:      &models.Location{Latitude: lat, Longitude: lng},
		Status:        models.RequestStatusOpen,
	}
}

func ids(ranked []RankedRequest) []string {
	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.Request.ID)
	}
	return out
}

func laCandidates() []models.BloodRequest {
	return []models.BloodRequest{
		openRequest("near", losAngeles.Latitude+0.01, losAngeles.Longitude+0.01),
		openRequest("mid", losAngeles.Latitude+0.10, losAngeles.Longitude+0.10),
		openRequest("far", losAngeles.Latitude+1.0, losAngeles.Longitude+1.0),
	}
}

func TestMatch_LosAngelesScenario(t *testing.T) {
	t.Run("10 km radius", func(t *testing.T) {
		ranked, err := Match(losAngeles, laCandidates(), 10)

		require.NoError(t, err)
		require.Len(t, ranked, 1)
		assert.Equal(t, "near", ranked[0].Request.ID)
		assert.InDelta(t, 1.44, ranked[0].DistanceKm, 0.05)
	})

	t.Run("15 km radius", func(t *testing.T) {
		ranked, err := Match(losAngeles, laCandidates(), 15)

		require.NoError(t, err)
		assert.Equal(t, []string{"near", "mid"}, ids(ranked))
		assert.InDelta(t, 14.44, ranked[1].DistanceKm, 0.05)
	})

	t.Run("input order does not matter", func(t *testing.T) {
		c := laCandidates()
		reversed := []models.BloodRequest{c[2], c[1], c[0]}

		ranked, err := Match(losAngeles, reversed, 200)

		require.NoError(t, err)
		assert.Equal(t, []string{"near", "mid", "far"}, ids(ranked))
	})
}

func TestMatch_NearestFirst(t *testing.T) {
	candidates := []models.BloodRequest{
		openRequest("c", losAngeles.Latitude+0.05, losAngeles.Longitude),
		openRequest("a", losAngeles.Latitude+0.01, losAngeles.Longitude),
		openRequest("d", losAngeles.Latitude+0.08, losAngeles.Longitude),
		openRequest("b", losAngeles.Latitude, losAngeles.Longitude+0.02),
	}

	ranked, err := Match(losAngeles, candidates, 50)

	require.NoError(t, err)
	require.Len(t, ranked, 4)
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].DistanceKm, ranked[i].DistanceKm)
	}
	for _, r := range ranked {
		assert.LessOrEqual(t, r.DistanceKm, 50.0)
	}
}

func TestMatch_TiesKeepInputOrder(t *testing.T) {
	candidates := []models.BloodRequest{
		openRequest("first", 34.0622, -118.2437),
		openRequest("closer", 34.0532, -118.2437),
		openRequest("second", 34.0622, -118.2437),
		openRequest("third", 34.0622, -118.2437),
	}

	ranked, err := Match(losAngeles, candidates, 10)

	require.NoError(t, err)
	assert.Equal(t, []string{"closer", "first", "second", "third"}, ids(ranked))
}

func TestMatch_SamePointIsZeroDistance(t *testing.T) {
	ranked, err := Match(losAngeles, []models.BloodRequest{
		openRequest("here", losAngeles.Latitude, losAngeles.Longitude),
	}, 0.001)

	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, 0.0, ranked[0].DistanceKm)
}

func TestMatch_InclusiveBoundary(t *testing.T) {
	target := openRequest("edge", losAngeles.Latitude+0.10, losAngeles.Longitude+0.10)
	exact := utils.CalculateDistance(losAngeles, utils.GeoPointFromLocation(*target.Location))

	ranked, err := Match(losAngeles, []models.BloodRequest{target}, exact)
	require.NoError(t, err)
	assert.Len(t, ranked, 1)

	ranked, err = Match(losAngeles, []models.BloodRequest{target}, math.Nextafter(exact, 0))
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestMatch_SkipsNonOpenAndMissingLocation(t *testing.T) {
	inProgress := openRequest("in-progress", losAngeles.Latitude, losAngeles.Longitude)
	inProgress.Status = models.RequestStatusInProgress
	completed := openRequest("completed", losAngeles.Latitude, losAngeles.Longitude)
	completed.Status = models.RequestStatusCompleted
	cancelled := openRequest("cancelled", losAngeles.Latitude, losAngeles.Longitude)
	cancelled.Status = models.RequestStatusCancelled
	noLocation := openRequest("no-location", 0, 0)
	noLocation.Location = nil

	candidates := []models.BloodRequest{
		inProgress,
		completed,
		noLocation,
		openRequest("open", losAngeles.Latitude, losAngeles.Longitude+0.001),
		cancelled,
	}

	ranked, err := Match(losAngeles, candidates, 50)

	require.NoError(t, err)
	assert.Equal(t, []string{"open"}, ids(ranked))
}

func TestMatch_EmptyCandidates(t *testing.T) {
	for _, candidates := range [][]models.BloodRequest{nil, {}} {
		ranked, err := Match(losAngeles, candidates, 10)

		require.NoError(t, err)
		assert.NotNil(t, ranked)
		assert.Empty(t, ranked)
	}
}

func TestMatch_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		origin  utils.GeoPoint
		radius  float64
		wantErr error
	}{
		{"latitude out of range", utils.GeoPoint{Latitude: 200, Longitude: 0}, 10, ErrInvalidCoordinate},
		{"longitude out of range", utils.GeoPoint{Latitude: 0, Longitude: -181}, 10, ErrInvalidCoordinate},
		{"NaN origin", utils.GeoPoint{Latitude: math.NaN(), Longitude: 0}, 10, ErrInvalidCoordinate},
		{"zero radius", losAngeles, 0, ErrInvalidRadius},
		{"negative radius", losAngeles, -5, ErrInvalidRadius},
		{"NaN radius", losAngeles, math.NaN(), ErrInvalidRadius},
		// origin is checked first
		{"both invalid", utils.GeoPoint{Latitude: 200}, 0, ErrInvalidCoordinate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked, err := Match(tt.origin, laCandidates(), tt.radius)

			assert.Nil(t, ranked)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestMatch_DoesNotMutateInput(t *testing.T) {
	candidates := laCandidates()
	candidates = append([]models.BloodRequest{candidates[2]}, candidates[:2]...)
	before := make([]models.BloodRequest, len(candidates))
	copy(before, candidates)

	_, err := Match(losAngeles, candidates, 500)

	require.NoError(t, err)
	assert.Equal(t, before, candidates)
}

func TestMatch_DeterministicAndConcurrent(t *testing.T) {
	candidates := laCandidates()
	expected, err := Match(losAngeles, candidates, 200)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]RankedRequest, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Match(losAngeles, candidates, 200)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, expected, r)
	}
}
