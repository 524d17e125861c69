package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/bloodlink/internal/pkg/middleware"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/services/users/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func setupHandler(t *testing.T) (*UserHandler, *mocks.MockUserUC) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockUserUC(ctrl)
	return NewUserHandler(mockUC), mockUC
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

func TestRegister(t *testing.T) {
	h, mockUC := setupHandler(t)
	body := `{"email":"a@example.com","password":"secret1","display_name":"A","role":"recipient"}`
	c, rec := newContext(http.MethodPost, "/auth/register", body, "")

	mockUC.EXPECT().
		Register(gomock.Any(), models.RegisterRequest{
			Email: "a@example.com", Password: "secret1", DisplayName: "A", Role: models.RoleRecipient,
		}).
		Return(&models.AuthResponse{Token: "tok", UserID: "user-1", Role: models.RoleRecipient}, nil)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &resp))
	assert.Equal(t, "tok", resp.Token)
}

func TestRegister_Conflict(t *testing.T) {
	h, mockUC := setupHandler(t)
	c, rec := newContext(http.MethodPost, "/auth/register", `{"email":"a@example.com"}`, "")

	mockUC.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: email is already registered", models.ErrConflict))

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin_BadCredentials(t *testing.T) {
	h, mockUC := setupHandler(t)
	c, rec := newContext(http.MethodPost, "/auth/login", `{"email":"a@example.com","password":"x"}`, "")

	mockUC.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: invalid email or password", models.ErrUnauthorized))

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_InvalidBody(t *testing.T) {
	h, _ := setupHandler(t)
	c, rec := newContext(http.MethodPost, "/auth/login", `{"email":`, "")

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestForgotPassword(t *testing.T) {
	h, mockUC := setupHandler(t)
	c, rec := newContext(http.MethodPost, "/auth/forgot-password", `{"email":"ghost@example.com"}`, "")

	mockUC.EXPECT().RequestPasswordReset(gomock.Any(), "ghost@example.com").Return(nil)

	require.NoError(t, h.ForgotPassword(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	h, mockUC := setupHandler(t)
	c, rec := newContext(http.MethodPost, "/auth/reset-password", `{"token":"old","new_password":"secret2"}`, "")

	mockUC.EXPECT().ResetPassword(gomock.Any(), models.ResetPasswordRequest{Token: "old", NewPassword: "secret2"}).
		Return(fmt.Errorf("%w: reset token is invalid or expired", models.ErrInvalidInput))

	require.NoError(t, h.ResetPassword(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec).Error, "expired")
}

func TestGetProfile(t *testing.T) {
	h, mockUC := setupHandler(t)
	c, rec := newContext(http.MethodGet, "/users/me", "", "user-1")

	mockUC.EXPECT().GetProfile(gomock.Any(), "user-1").
		Return(&models.User{ID: "user-1", PasswordHash: "secret-hash"}, nil)

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestUpdateProfile_InternalError(t *testing.T) {
	h, mockUC := setupHandler(t)
	c, rec := newContext(http.MethodPut, "/users/me", `{"display_name":"B"}`, "user-1")

	mockUC.EXPECT().UpdateProfile(gomock.Any(), "user-1", models.UpdateProfileRequest{DisplayName: "B"}).
		Return(nil, errors.New("db down"))

	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestChangePassword_Unauthenticated(t *testing.T) {
	h, _ := setupHandler(t)
	c, rec := newContext(http.MethodPut, "/users/me/password", `{}`, "")

	require.NoError(t, h.ChangePassword(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
