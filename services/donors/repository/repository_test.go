package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/bloodlink/internal/pkg/constants"
	"github.com/piresc/bloodlink/internal/pkg/database"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func setupMockRedis(t *testing.T) (*database.RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &database.RedisClient{Client: client}, mr
}

func TestGetProfile(t *testing.T) {
	columns := []string{"user_id", "blood_type", "is_available", "latitude", "longitude", "address", "last_donation_date", "updated_at"}

	t.Run("found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewDonorRepository(&models.Config{}, db, nil)

		donated := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(regexp.QuoteMeta("FROM donor_profiles")).
			WithArgs("donor-1").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("donor-1", "B-", true, 34.05, -118.24, "Downtown", donated, time.Now()))

		profile, err := repo.GetProfile(context.Background(), "donor-1")

		require.NoError(t, err)
		assert.Equal(t, models.BloodTypeBNeg, profile.BloodType)
		assert.True(t, profile.IsAvailable)
		require.NotNil(t, profile.Location)
		assert.Equal(t, "Downtown", profile.Location.Address)
		require.NotNil(t, profile.LastDonationDate)
		assert.True(t, donated.Equal(*profile.LastDonationDate))
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewDonorRepository(&models.Config{}, db, nil)

		mock.ExpectQuery(regexp.QuoteMeta("FROM donor_profiles")).
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.GetProfile(context.Background(), "donor-1")

		assert.True(t, errors.Is(err, models.ErrNotFound))
	})
}

func TestUpsertProfile(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDonorRepository(&models.Config{}, db, nil)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id) DO UPDATE")).
		WithArgs("donor-1", "O+", true, 34.05, -118.24, nil, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertProfile(context.Background(), &models.DonorProfile{
		UserID:      "donor-1",
		BloodType:   models.BloodTypeOPos,
		IsAvailable: true,
		Location:    &models.Location{Latitude: 34.05, Longitude: -118.24},
		UpdatedAt:   time.Now(),
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordDonation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDonorRepository(&models.Config{}, db, nil)

	donated := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("GREATEST(donor_profiles.last_donation_date")).
		WithArgs("donor-1", donated, sqlmock.AnyArg()).
		WillReturnError(errors.New("db down"))

	err := repo.RecordDonation(context.Background(), "donor-1", donated)

	assert.ErrorContains(t, err, "failed to record donation")
}

func TestAvailabilityIndex(t *testing.T) {
	redisClient, mr := setupMockRedis(t)
	repo := NewDonorRepository(&models.Config{}, nil, redisClient)
	ctx := context.Background()

	require.NoError(t, repo.AddAvailableDonor(ctx, "near", models.Location{Latitude: 34.0622, Longitude: -118.2437}, models.BloodTypeONeg))
	require.NoError(t, repo.AddAvailableDonor(ctx, "untyped", models.Location{Latitude: 34.0722, Longitude: -118.2437}, ""))
	require.NoError(t, repo.AddAvailableDonor(ctx, "far", models.Location{Latitude: 36.0522, Longitude: -118.2437}, models.BloodTypeAPos))

	available, err := repo.IsAvailable(ctx, "near")
	require.NoError(t, err)
	assert.True(t, available)

	donors, err := repo.NearbyAvailableDonors(ctx, utils.GeoPoint{Latitude: 34.0522, Longitude: -118.2437}, 10)
	require.NoError(t, err)
	require.Len(t, donors, 2)
	assert.Equal(t, "near", donors[0].UserID)
	assert.Equal(t, models.BloodTypeONeg, donors[0].BloodType)
	assert.InDelta(t, 34.0622, donors[0].Location.Latitude, 1e-4)
	assert.Equal(t, "untyped", donors[1].UserID)
	assert.Empty(t, donors[1].BloodType)

	require.NoError(t, repo.RemoveAvailableDonor(ctx, "near"))

	available, err = repo.IsAvailable(ctx, "near")
	require.NoError(t, err)
	assert.False(t, available)
	assert.Equal(t, "", mr.HGet(constants.KeyDonorBloodType, "near"))
}

func TestNearbyAvailableDonors_Empty(t *testing.T) {
	redisClient, _ := setupMockRedis(t)
	repo := NewDonorRepository(&models.Config{}, nil, redisClient)

	donors, err := repo.NearbyAvailableDonors(context.Background(), utils.GeoPoint{Latitude: 1, Longitude: 1}, 5)

	require.NoError(t, err)
	assert.NotNil(t, donors)
	assert.Empty(t, donors)
}
