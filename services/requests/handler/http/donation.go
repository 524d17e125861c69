package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/bloodlink/internal/pkg/middleware"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/internal/utils"
)

// PledgeDonation handles POST /requests/:id/donations
func (h *RequestHandler) PledgeDonation(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var input models.PledgeInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	donation, err := h.requestUC.PledgeDonation(c.Request().Context(), userID, c.Param("id"), input)
	if err != nil {
		return respondError(c, "Failed to schedule donation", err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Donation scheduled", donation)
}

// ListDonationsForRequest handles GET /requests/:id/donations
func (h *RequestHandler) ListDonationsForRequest(c echo.Context) error {
	donations, err := h.requestUC.ListDonationsForRequest(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, "Failed to list donations", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", donations)
}

// ListMyDonations handles GET /donations/mine
func (h *RequestHandler) ListMyDonations(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	donations, err := h.requestUC.ListMyDonations(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, "Failed to list donations", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", donations)
}

// CompleteDonation handles POST /donations/:id/complete
func (h *RequestHandler) CompleteDonation(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	donation, err := h.requestUC.CompleteDonation(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return respondError(c, "Failed to complete donation", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Donation completed", donation)
}

// CancelDonation handles POST /donations/:id/cancel
func (h *RequestHandler) CancelDonation(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	donation, err := h.requestUC.CancelDonation(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return respondError(c, "Failed to cancel donation", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Donation cancelled", donation)
}
