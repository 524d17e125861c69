package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/bloodlink/internal/pkg/logger"
	"github.com/piresc/bloodlink/internal/pkg/middleware"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/internal/utils"
)

// GetProfile handles GET /users/me
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, "Failed to get profile", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", user)
}

// UpdateProfile handles PUT /users/me
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, req)
	if err != nil {
		return respondError(c, "Failed to update profile", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile updated", user)
}

// ChangePassword handles PUT /users/me/password
func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.userUC.ChangePassword(c.Request().Context(), userID, req); err != nil {
		return respondError(c, "Failed to change password", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Password updated", nil)
}

func respondError(c echo.Context, msg string, err error) error {
	if utils.StatusForError(err) == http.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), msg,
			logger.String("path", c.Path()),
			logger.Err(err))
	}
	return utils.DomainErrorResponse(c, err)
}
