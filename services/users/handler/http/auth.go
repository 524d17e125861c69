package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/internal/utils"
)

// Register handles POST /auth/register
func (h *UserHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Register(c.Request().Context(), req)
	if err != nil {
		return respondError(c, "Failed to register user", err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "User registered", resp)
}

// Login handles POST /auth/login
func (h *UserHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Login(c.Request().Context(), req)
	if err != nil {
		return respondError(c, "Failed to log in", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// ForgotPassword handles POST /auth/forgot-password. The response is the
// same whether or not the email is registered.
func (h *UserHandler) ForgotPassword(c echo.Context) error {
	var req models.ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.userUC.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return respondError(c, "Failed to request password reset", err)
	}
	return utils.SuccessResponse(c, http.StatusAccepted, "If the email is registered, reset instructions have been sent", nil)
}

// ResetPassword handles POST /auth/reset-password
func (h *UserHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.userUC.ResetPassword(c.Request().Context(), req); err != nil {
		return respondError(c, "Failed to reset password", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Password updated", nil)
}
