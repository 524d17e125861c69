package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/bloodlink/internal/pkg/jwt"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/services/requests/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRoutes(t *testing.T) (*echo.Echo, *mocks.MockRequestUC, *models.Config) {
	cfg := &models.Config{JWT: models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "bloodlink"}}
	mockUC := mocks.NewMockRequestUC(gomock.NewController(t))

	e := echo.New()
	NewHandler(mockUC, cfg).RegisterRoutes(e)
	return e, mockUC, cfg
}

func TestRoutes_RequireToken(t *testing.T) {
	e, _, _ := setupRoutes(t)

	for _, target := range []string{"/requests", "/requests/nearby?lat=1&lng=1", "/donations/mine", "/stats"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

func TestRoutes_NearbyIsNotShadowedByID(t *testing.T) {
	e, mockUC, cfg := setupRoutes(t)

	userID := uuid.New()
	token, _, err := jwtpkg.GenerateToken(userID, "donor@example.com", string(models.RoleDonor), cfg.JWT)
	require.NoError(t, err)

	mockUC.EXPECT().FindNearbyRequests(gomock.Any(), gomock.Any()).Return([]models.NearbyRequest{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/requests/nearby?lat=34.05&lng=-118.24", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_AuthenticatedUserReachesHandler(t *testing.T) {
	e, mockUC, cfg := setupRoutes(t)

	userID := uuid.New()
	token, _, err := jwtpkg.GenerateToken(userID, "r@example.com", string(models.RoleRecipient), cfg.JWT)
	require.NoError(t, err)

	mockUC.EXPECT().ListMyRequests(gomock.Any(), userID.String()).Return([]*models.BloodRequest{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/requests/mine", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
