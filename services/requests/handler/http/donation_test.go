package http

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPledgeDonation(t *testing.T) {
	h, mockUC := setupHandler(t)
	body := `{"blood_type":"O-","units":1,"last_donation_date":"2024-01-15","has_recent_surgery":false}`
	c, rec := newContext(http.MethodPost, "/requests/req-1/donations", body, "donor-1")
	c.SetParamNames("id")
	c.SetParamValues("req-1")

	mockUC.EXPECT().PledgeDonation(gomock.Any(), "donor-1", "req-1", models.PledgeInput{
		BloodType: "O-",
		Units:     1,
		Screening: models.Screening{LastDonationDate: "2024-01-15"},
	}).Return(&models.Donation{ID: "don-1", Status: models.DonationStatusScheduled}, nil)

	require.NoError(t, h.PledgeDonation(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"scheduled"`)
}

func TestPledgeDonation_OwnRequest(t *testing.T) {
	h, mockUC := setupHandler(t)
	c, rec := newContext(http.MethodPost, "/requests/req-1/donations", `{}`, "owner")
	c.SetParamNames("id")
	c.SetParamValues("req-1")

	mockUC.EXPECT().PledgeDonation(gomock.Any(), "owner", "req-1", gomock.Any()).Return(nil, models.ErrForbidden)

	require.NoError(t, h.PledgeDonation(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCompleteAndCancelDonation(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		h, mockUC := setupHandler(t)
		c, rec := newContext(http.MethodPost, "/donations/don-1/complete", "", "owner")
		c.SetParamNames("id")
		c.SetParamValues("don-1")

		mockUC.EXPECT().CompleteDonation(gomock.Any(), "owner", "don-1").
			Return(&models.Donation{ID: "don-1", Status: models.DonationStatusCompleted}, nil)

		require.NoError(t, h.CompleteDonation(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("cancel twice", func(t *testing.T) {
		h, mockUC := setupHandler(t)
		c, rec := newContext(http.MethodPost, "/donations/don-1/cancel", "", "donor-1")
		c.SetParamNames("id")
		c.SetParamValues("don-1")

		mockUC.EXPECT().CancelDonation(gomock.Any(), "donor-1", "don-1").Return(nil, models.ErrInvalidTransition)

		require.NoError(t, h.CancelDonation(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestListMyDonations(t *testing.T) {
	h, mockUC := setupHandler(t)
	c, rec := newContext(http.MethodGet, "/donations/mine", "", "donor-1")

	mockUC.EXPECT().ListMyDonations(gomock.Any(), "donor-1").
		Return([]*models.Donation{{ID: "don-1"}, {ID: "don-2"}}, nil)

	require.NoError(t, h.ListMyDonations(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Contains(t, string(env.Data), "don-2")
}
