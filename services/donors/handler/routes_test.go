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
	"github.com/piresc/bloodlink/services/donors/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes(t *testing.T) {
	cfg := &models.Config{JWT: models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "bloodlink"}}
	mockUC := mocks.NewMockDonorUC(gomock.NewController(t))

	e := echo.New()
	NewHandler(mockUC, cfg).RegisterRoutes(e)

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/donors/me", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("profile of the token subject", func(t *testing.T) {
		userID := uuid.New()
		token, _, err := jwtpkg.GenerateToken(userID, "donor@example.com", string(models.RoleDonor), cfg.JWT)
		require.NoError(t, err)

		mockUC.EXPECT().GetProfile(gomock.Any(), userID.String()).
			Return(&models.DonorProfile{UserID: userID.String()}, nil)

		req := httptest.NewRequest(http.MethodGet, "/donors/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
