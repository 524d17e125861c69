package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/services/donors/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *models.Config {
	return &models.Config{
		Match: models.MatchConfig{
			DefaultRadiusKm: 50,
			MaxRadiusKm:     50,
			MaxResults:      2,
		},
	}
}

func setupUC(t *testing.T) (*DonorUC, *mocks.MockDonorRepo, *mocks.MockDonorGW) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockDonorRepo(ctrl)
	mockGW := mocks.NewMockDonorGW(ctrl)
	return NewDonorUC(testConfig(), mockRepo, mockGW), mockRepo, mockGW
}

var downtown = models.Location{Latitude: 34.0522, Longitude: -118.2437}

func TestGetProfile_DefaultsWhenMissing(t *testing.T) {
	uc, mockRepo, _ := setupUC(t)

	mockRepo.EXPECT().GetProfile(gomock.Any(), "donor-1").Return(nil, models.ErrNotFound)

	profile, err := uc.GetProfile(context.Background(), "donor-1")
	require.NoError(t, err)
	assert.Equal(t, "donor-1", profile.UserID)
	assert.False(t, profile.IsAvailable)
	assert.Nil(t, profile.Location)
}

func TestGetProfile_RepoError(t *testing.T) {
	uc, mockRepo, _ := setupUC(t)

	mockRepo.EXPECT().GetProfile(gomock.Any(), "donor-1").Return(nil, errors.New("db down"))

	_, err := uc.GetProfile(context.Background(), "donor-1")
	assert.EqualError(t, err, "db down")
}

func TestUpdateAvailability_GoAvailable(t *testing.T) {
	uc, mockRepo, mockGW := setupUC(t)

	mockRepo.EXPECT().GetProfile(gomock.Any(), "donor-1").
		Return(&models.DonorProfile{UserID: "donor-1", BloodType: models.BloodTypeONeg}, nil)
	mockRepo.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.DonorProfile) error {
			assert.True(t, p.IsAvailable)
			assert.Equal(t, downtown, *p.Location)
			return nil
		})
	mockRepo.EXPECT().AddAvailableDonor(gomock.Any(), "donor-1", downtown, models.BloodTypeONeg).Return(nil)
	mockGW.EXPECT().PublishAvailabilityChanged(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.DonorAvailabilityEvent) error {
			assert.Equal(t, "donor-1", event.DonorID)
			assert.True(t, event.IsAvailable)
			return nil
		})

	loc := downtown
	profile, err := uc.UpdateAvailability(context.Background(), "donor-1", models.AvailabilityRequest{IsAvailable: true, Location: &loc})
	require.NoError(t, err)
	assert.True(t, profile.IsAvailable)
}

func TestUpdateAvailability_UsesStoredLocation(t *testing.T) {
	uc, mockRepo, mockGW := setupUC(t)

	stored := downtown
	mockRepo.EXPECT().GetProfile(gomock.Any(), "donor-1").
		Return(&models.DonorProfile{UserID: "donor-1", Location: &stored}, nil)
	mockRepo.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().AddAvailableDonor(gomock.Any(), "donor-1", downtown, models.BloodType("")).Return(nil)
	mockGW.EXPECT().PublishAvailabilityChanged(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	_, err := uc.UpdateAvailability(context.Background(), "donor-1", models.AvailabilityRequest{IsAvailable: true})
	assert.NoError(t, err)
}

func TestUpdateAvailability_GoUnavailable(t *testing.T) {
	uc, mockRepo, mockGW := setupUC(t)

	stored := downtown
	mockRepo.EXPECT().GetProfile(gomock.Any(), "donor-1").
		Return(&models.DonorProfile{UserID: "donor-1", IsAvailable: true, Location: &stored}, nil)
	mockRepo.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().RemoveAvailableDonor(gomock.Any(), "donor-1").Return(nil)
	mockGW.EXPECT().PublishAvailabilityChanged(gomock.Any(), gomock.Any()).Return(nil)

	profile, err := uc.UpdateAvailability(context.Background(), "donor-1", models.AvailabilityRequest{IsAvailable: false})
	require.NoError(t, err)
	assert.False(t, profile.IsAvailable)
}

func TestUpdateAvailability_Unchanged(t *testing.T) {
	uc, mockRepo, _ := setupUC(t)

	mockRepo.EXPECT().GetProfile(gomock.Any(), "donor-1").Return(nil, models.ErrNotFound)
	mockRepo.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().RemoveAvailableDonor(gomock.Any(), "donor-1").Return(nil)

	_, err := uc.UpdateAvailability(context.Background(), "donor-1", models.AvailabilityRequest{IsAvailable: false})
	assert.NoError(t, err)
}

func TestUpdateAvailability_Rejected(t *testing.T) {
	tests := []struct {
		name string
		req  models.AvailabilityRequest
	}{
		{"no location", models.AvailabilityRequest{IsAvailable: true}},
		{"bad location", models.AvailabilityRequest{IsAvailable: true, Location: &models.Location{Latitude: 95}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mockRepo, _ := setupUC(t)
			mockRepo.EXPECT().GetProfile(gomock.Any(), "donor-1").Return(nil, models.ErrNotFound)

			_, err := uc.UpdateAvailability(context.Background(), "donor-1", tt.req)
			assert.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}
}

func TestUpdateLocation_RefreshesIndexWhenAvailable(t *testing.T) {
	uc, mockRepo, _ := setupUC(t)

	mockRepo.EXPECT().GetProfile(gomock.Any(), "donor-1").
		Return(&models.DonorProfile{UserID: "donor-1", IsAvailable: true, BloodType: models.BloodTypeAPos}, nil)
	mockRepo.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().AddAvailableDonor(gomock.Any(), "donor-1", downtown, models.BloodTypeAPos).Return(nil)

	profile, err := uc.UpdateLocation(context.Background(), "donor-1", downtown)
	require.NoError(t, err)
	assert.Equal(t, downtown, *profile.Location)
}

func TestUpdateLocation_Invalid(t *testing.T) {
	uc, _, _ := setupUC(t)

	_, err := uc.UpdateLocation(context.Background(), "donor-1", models.Location{Latitude: 10, Longitude: 200})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestUpdateBloodType(t *testing.T) {
	uc, mockRepo, _ := setupUC(t)

	mockRepo.EXPECT().GetProfile(gomock.Any(), "donor-1").Return(nil, models.ErrNotFound)
	mockRepo.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().RemoveAvailableDonor(gomock.Any(), "donor-1").Return(nil)

	profile, err := uc.UpdateBloodType(context.Background(), "donor-1", " b- ")
	require.NoError(t, err)
	assert.Equal(t, models.BloodTypeBNeg, profile.BloodType)
}

func TestUpdateBloodType_Invalid(t *testing.T) {
	uc, _, _ := setupUC(t)

	_, err := uc.UpdateBloodType(context.Background(), "donor-1", "Z+")
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}
