package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/bloodlink/internal/pkg/middleware"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/internal/pkg/proximity"
	"github.com/piresc/bloodlink/services/requests/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    int             `json:"code"`
}

func setupHandler(t *testing.T) (*RequestHandler, *mocks.MockRequestUC) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockRequestUC(ctrl)
	return NewRequestHandler(mockUC), mockUC
}

func newContext(method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set(middleware.ContextUserID, userID)
	}
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestCreateRequest(t *testing.T) {
	h, mockUC := setupHandler(t)

	body := `{"patient_name":"Jane","blood_type":"O+","units_required":2,"urgency":"Critical",` +
		`"hospital_name":"General","contact_number":"+15551234567","location":{"latitude":34.05,"longitude":-118.24}}`
	c, rec := newContext(http.MethodPost, "/requests", body, "user-1")

	mockUC.EXPECT().CreateRequest(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, in models.CreateRequestInput) (*models.BloodRequest, error) {
			assert.Equal(t, "Critical", in.Urgency)
			require.NotNil(t, in.Location)
			assert.Equal(t, 34.05, in.Location.Latitude)
			return &models.BloodRequest{ID: "req-1", Status: models.RequestStatusOpen}, nil
		})

	require.NoError(t, h.CreateRequest(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decode(t, rec)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"id":"req-1"`)
}

func TestCreateRequest_Errors(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		h, _ := setupHandler(t)
		c, rec := newContext(http.MethodPost, "/requests", `{}`, "")

		require.NoError(t, h.CreateRequest(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _ := setupHandler(t)
		c, rec := newContext(http.MethodPost, "/requests", `{"units_required":"two"`, "user-1")

		require.NoError(t, h.CreateRequest(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		h, mockUC := setupHandler(t)
		c, rec := newContext(http.MethodPost, "/requests", `{}`, "user-1")
		mockUC.EXPECT().CreateRequest(gomock.Any(), "user-1", gomock.Any()).
			Return(nil, models.ErrInvalidInput)

		require.NoError(t, h.CreateRequest(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("internal error hides details", func(t *testing.T) {
		h, mockUC := setupHandler(t)
		c, rec := newContext(http.MethodPost, "/requests", `{}`, "user-1")
		mockUC.EXPECT().CreateRequest(gomock.Any(), "user-1", gomock.Any()).
			Return(nil, errors.New("pq: connection refused"))

		require.NoError(t, h.CreateRequest(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "pq:")
	})
}

func TestFindNearbyRequests(t *testing.T) {
	h, mockUC := setupHandler(t)
	c, rec := newContext(http.MethodGet, "/requests/nearby?lat=34.0522&lng=-118.2437&radius_km=15&blood_type=a%2B&limit=5", "", "user-1")

	mockUC.EXPECT().FindNearbyRequests(gomock.Any(), models.NearbyQuery{
		Origin:         models.Location{Latitude: 34.0522, Longitude: -118.2437},
		RadiusKm:       15,
		DonorBloodType: models.BloodTypeAPos,
		Limit:          5,
	}).Return([]models.NearbyRequest{
		{BloodRequest: models.BloodRequest{ID: "near"}, DistanceKm: 1.44},
	}, nil)

	require.NoError(t, h.FindNearbyRequests(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Contains(t, string(env.Data), `"distance_km":1.44`)
}

func TestFindNearbyRequests_BadQuery(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"missing lat", "/requests/nearby?lng=1"},
		{"missing lng", "/requests/nearby?lat=1"},
		{"non numeric radius", "/requests/nearby?lat=1&lng=1&radius_km=far"},
		{"negative limit", "/requests/nearby?lat=1&lng=1&limit=-1"},
		{"unknown blood type", "/requests/nearby?lat=1&lng=1&blood_type=Q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := setupHandler(t)
			c, rec := newContext(http.MethodGet, tt.target, "", "user-1")

			require.NoError(t, h.FindNearbyRequests(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestFindNearbyRequests_MatcherErrorsAreBadRequests(t *testing.T) {
	h, mockUC := setupHandler(t)
	c, rec := newContext(http.MethodGet, "/requests/nearby?lat=95&lng=0", "", "user-1")

	mockUC.EXPECT().FindNearbyRequests(gomock.Any(), gomock.Any()).
		Return(nil, errors.Join(models.ErrInvalidInput, proximity.ErrInvalidCoordinate))

	require.NoError(t, h.FindNearbyRequests(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateRequestStatus(t *testing.T) {
	tests := []struct {
		name     string
		ucErr    error
		wantCode int
	}{
		{"ok", nil, http.StatusOK},
		{"not the requester", models.ErrForbidden, http.StatusForbidden},
		{"terminal status", models.ErrInvalidTransition, http.StatusConflict},
		{"unknown request", models.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mockUC := setupHandler(t)
			c, rec := newContext(http.MethodPatch, "/requests/req-1/status", `{"status":"cancelled"}`, "user-1")
			c.SetParamNames("id")
			c.SetParamValues("req-1")

			var result *models.BloodRequest
			if tt.ucErr == nil {
				result = &models.BloodRequest{ID: "req-1", Status: models.RequestStatusCancelled}
			}
			mockUC.EXPECT().UpdateRequestStatus(gomock.Any(), "user-1", "req-1", models.RequestStatusCancelled).
				Return(result, tt.ucErr)

			require.NoError(t, h.UpdateRequestStatus(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestListOpenRequests(t *testing.T) {
	h, mockUC := setupHandler(t)
	c, rec := newContext(http.MethodGet, "/requests?blood_type=ab-&limit=3", "", "user-1")

	mockUC.EXPECT().ListOpenRequests(gomock.Any(), models.RequestFilter{BloodType: models.BloodTypeABNeg, Limit: 3}).
		Return([]*models.BloodRequest{{ID: "req-1"}}, nil)

	require.NoError(t, h.ListOpenRequests(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetRequest_NotFound(t *testing.T) {
	h, mockUC := setupHandler(t)
	c, rec := newContext(http.MethodGet, "/requests/missing", "", "user-1")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	mockUC.EXPECT().GetRequest(gomock.Any(), "missing").Return(nil, models.ErrNotFound)

	require.NoError(t, h.GetRequest(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetStats(t *testing.T) {
	h, mockUC := setupHandler(t)
	c, rec := newContext(http.MethodGet, "/stats", "", "user-1")

	mockUC.EXPECT().Stats(gomock.Any(), "user-1").
		Return(&models.Stats{TotalRequests: 3, ActiveRequests: 1, SuccessfulDonations: 2, YourDonations: 1}, nil)

	require.NoError(t, h.GetStats(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"your_donations":1`)
}
