package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pledge(bloodType string) models.PledgeInput {
	return models.PledgeInput{
		BloodType: bloodType,
		Units:     1,
		Screening: models.Screening{LastDonationDate: "2024-01-15"},
	}
}

func scheduled(id string) *models.Donation {
	return &models.Donation{
		ID:          id,
		RequestID:   "req-1",
		DonorID:     "donor-1",
		RecipientID: "owner",
		BloodType:   models.BloodTypeONeg,
		Units:       1,
		Status:      models.DonationStatusScheduled,
	}
}

func TestPledgeDonation_MovesOpenRequestInProgress(t *testing.T) {
	uc, mockRepo, mockGW := setupUC(t)

	mockRepo.EXPECT().GetRequest(gomock.Any(), "req-1").Return(openRequest("req-1", "owner"), nil)
	mockRepo.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().UpdateRequestStatus(gomock.Any(), "req-1", models.RequestStatusOpen, models.RequestStatusInProgress).Return(nil)
	mockRepo.EXPECT().RemoveFromIndex(gomock.Any(), "req-1").Return(nil)
	mockGW.EXPECT().PublishRequestStatusChanged(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishDonationEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.DonationEvent) error {
			assert.Equal(t, models.DonationStatusScheduled, event.Status)
			assert.Equal(t, "owner", event.RecipientID)
			return nil
		})

	donation, err := uc.PledgeDonation(context.Background(), "donor-1", "req-1", pledge("O-"))

	require.NoError(t, err)
	assert.Equal(t, models.DonationStatusScheduled, donation.Status)
	assert.Equal(t, models.BloodTypeONeg, donation.BloodType)
	assert.Equal(t, "General Hospital", donation.HospitalName)
	assert.Equal(t, "2024-01-15", donation.Screening.LastDonationDate)
}

func TestPledgeDonation_InProgressRequestStaysInProgress(t *testing.T) {
	uc, mockRepo, mockGW := setupUC(t)

	req := openRequest("req-1", "owner")
	req.Status = models.RequestStatusInProgress
	mockRepo.EXPECT().GetRequest(gomock.Any(), "req-1").Return(req, nil)
	mockRepo.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishDonationEvent(gomock.Any(), gomock.Any()).Return(nil)

	input := pledge("A+")
	input.Units = 0

	donation, err := uc.PledgeDonation(context.Background(), "donor-1", "req-1", input)

	require.NoError(t, err)
	assert.Equal(t, 1, donation.Units)
}

func TestPledgeDonation_Rejected(t *testing.T) {
	completed := openRequest("req-1", "owner")
	completed.Status = models.RequestStatusCompleted

	tests := []struct {
		name    string
		donorID string
		input   models.PledgeInput
		request *models.BloodRequest
		wantErr error
	}{
		{"own request", "owner", pledge("O-"), openRequest("req-1", "owner"), models.ErrForbidden},
		{"incompatible blood type", "donor-1", pledge("B+"), openRequest("req-1", "owner"), models.ErrInvalidInput},
		{"request already completed", "donor-1", pledge("O-"), completed, models.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mockRepo, _ := setupUC(t)
			mockRepo.EXPECT().GetRequest(gomock.Any(), "req-1").Return(tt.request, nil)

			_, err := uc.PledgeDonation(context.Background(), tt.donorID, "req-1", tt.input)

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestPledgeDonation_InvalidForm(t *testing.T) {
	future := time.Now().AddDate(0, 1, 0).Format(models.DateLayout)

	tests := []struct {
		name  string
		input models.PledgeInput
	}{
		{"missing blood type", models.PledgeInput{Screening: models.Screening{LastDonationDate: "2024-01-15"}}},
		{"missing last donation date", models.PledgeInput{BloodType: "O-"}},
		{"malformed last donation date", models.PledgeInput{BloodType: "O-", Screening: models.Screening{LastDonationDate: "15/01/2024"}}},
		{"last donation in the future", models.PledgeInput{BloodType: "O-", Screening: models.Screening{LastDonationDate: future}}},
		{"negative units", models.PledgeInput{BloodType: "O-", Units: -2, Screening: models.Screening{LastDonationDate: "2024-01-15"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _ := setupUC(t)

			_, err := uc.PledgeDonation(context.Background(), "donor-1", "req-1", tt.input)

			assert.True(t, errors.Is(err, models.ErrInvalidInput), "got %v", err)
		})
	}
}

func TestCompleteDonation_CompletesRequestWhenCovered(t *testing.T) {
	uc, mockRepo, mockGW := setupUC(t)

	req := openRequest("req-1", "owner")
	req.Status = models.RequestStatusInProgress

	mockRepo.EXPECT().GetDonation(gomock.Any(), "don-1").Return(scheduled("don-1"), nil)
	mockRepo.EXPECT().UpdateDonationStatus(gomock.Any(), "don-1", models.DonationStatusScheduled, models.DonationStatusCompleted, gomock.Not(gomock.Nil())).Return(nil)
	mockRepo.EXPECT().CountDonations(gomock.Any(), "req-1", models.DonationStatusCompleted).Return(2, 2, nil)
	mockRepo.EXPECT().GetRequest(gomock.Any(), "req-1").Return(req, nil)
	mockRepo.EXPECT().UpdateRequestStatus(gomock.Any(), "req-1", models.RequestStatusInProgress, models.RequestStatusCompleted).Return(nil)
	mockGW.EXPECT().PublishRequestStatusChanged(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishDonationEvent(gomock.Any(), gomock.Any()).Return(nil)

	donation, err := uc.CompleteDonation(context.Background(), "owner", "don-1")

	require.NoError(t, err)
	assert.Equal(t, models.DonationStatusCompleted, donation.Status)
	assert.NotNil(t, donation.DonationDate)
}

func TestCompleteDonation_PartialUnitsKeepRequestOpen(t *testing.T) {
	uc, mockRepo, mockGW := setupUC(t)

	req := openRequest("req-1", "owner")
	req.Status = models.RequestStatusInProgress

	mockRepo.EXPECT().GetDonation(gomock.Any(), "don-1").Return(scheduled("don-1"), nil)
	mockRepo.EXPECT().UpdateDonationStatus(gomock.Any(), "don-1", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().CountDonations(gomock.Any(), "req-1", models.DonationStatusCompleted).Return(1, 1, nil)
	mockRepo.EXPECT().GetRequest(gomock.Any(), "req-1").Return(req, nil)
	mockGW.EXPECT().PublishDonationEvent(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.CompleteDonation(context.Background(), "donor-1", "don-1")

	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusInProgress, req.Status)
}

func TestCompleteDonation_Rejected(t *testing.T) {
	t.Run("outsider", func(t *testing.T) {
		uc, mockRepo, _ := setupUC(t)
		mockRepo.EXPECT().GetDonation(gomock.Any(), "don-1").Return(scheduled("don-1"), nil)

		_, err := uc.CompleteDonation(context.Background(), "stranger", "don-1")

		assert.True(t, errors.Is(err, models.ErrForbidden))
	})

	t.Run("already cancelled", func(t *testing.T) {
		uc, mockRepo, _ := setupUC(t)
		d := scheduled("don-1")
		d.Status = models.DonationStatusCancelled
		mockRepo.EXPECT().GetDonation(gomock.Any(), "don-1").Return(d, nil)

		_, err := uc.CompleteDonation(context.Background(), "donor-1", "don-1")

		assert.True(t, errors.Is(err, models.ErrInvalidTransition))
	})
}

func TestCancelDonation_ReopensRequest(t *testing.T) {
	uc, mockRepo, mockGW := setupUC(t)

	req := openRequest("req-1", "owner")
	req.Status = models.RequestStatusInProgress

	mockRepo.EXPECT().GetDonation(gomock.Any(), "don-1").Return(scheduled("don-1"), nil)
	mockRepo.EXPECT().UpdateDonationStatus(gomock.Any(), "don-1", models.DonationStatusScheduled, models.DonationStatusCancelled, gomock.Nil()).Return(nil)
	mockRepo.EXPECT().CountDonations(gomock.Any(), "req-1", models.DonationStatusScheduled).Return(0, 0, nil)
	mockRepo.EXPECT().GetRequest(gomock.Any(), "req-1").Return(req, nil)
	mockRepo.EXPECT().UpdateRequestStatus(gomock.Any(), "req-1", models.RequestStatusInProgress, models.RequestStatusOpen).Return(nil)
	mockRepo.EXPECT().IndexOpenRequest(gomock.Any(), "req-1", *req.Location).Return(nil)
	mockGW.EXPECT().PublishRequestStatusChanged(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishDonationEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.DonationEvent) error {
			assert.Equal(t, models.DonationStatusCancelled, event.Status)
			return nil
		})

	donation, err := uc.CancelDonation(context.Background(), "donor-1", "don-1")

	require.NoError(t, err)
	assert.Equal(t, models.DonationStatusCancelled, donation.Status)
	assert.Equal(t, models.RequestStatusOpen, req.Status)
}

func TestCancelDonation_OtherPledgesRemain(t *testing.T) {
	uc, mockRepo, mockGW := setupUC(t)

	mockRepo.EXPECT().GetDonation(gomock.Any(), "don-1").Return(scheduled("don-1"), nil)
	mockRepo.EXPECT().UpdateDonationStatus(gomock.Any(), "don-1", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().CountDonations(gomock.Any(), "req-1", models.DonationStatusScheduled).Return(1, 1, nil)
	mockGW.EXPECT().PublishDonationEvent(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.CancelDonation(context.Background(), "owner", "don-1")

	assert.NoError(t, err)
}

func TestListDonationsForRequest_UnknownRequest(t *testing.T) {
	uc, mockRepo, _ := setupUC(t)

	mockRepo.EXPECT().GetRequest(gomock.Any(), "missing").Return(nil, models.ErrNotFound)

	_, err := uc.ListDonationsForRequest(context.Background(), "missing")

	assert.True(t, errors.Is(err, models.ErrNotFound))
}
