package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/bloodlink/internal/pkg/middleware"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/internal/utils"
)

// SignupInstitution handles POST /institutions/signup
func (h *UserHandler) SignupInstitution(c echo.Context) error {
	var req models.InstitutionSignupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	institution, err := h.userUC.SignupInstitution(c.Request().Context(), req)
	if err != nil {
		return respondError(c, "Failed to sign up institution", err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Institution submitted for review", institution)
}

// ListInstitutions handles GET /admin/institutions?status=
func (h *UserHandler) ListInstitutions(c echo.Context) error {
	status := models.InstitutionStatus(c.QueryParam("status"))

	institutions, err := h.userUC.ListInstitutions(c.Request().Context(), status)
	if err != nil {
		return respondError(c, "Failed to list institutions", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", institutions)
}

// ApproveInstitution handles POST /admin/institutions/:id/approve
func (h *UserHandler) ApproveInstitution(c echo.Context) error {
	return h.reviewInstitution(c, models.InstitutionApproved)
}

// RejectInstitution handles POST /admin/institutions/:id/reject
func (h *UserHandler) RejectInstitution(c echo.Context) error {
	return h.reviewInstitution(c, models.InstitutionRejected)
}

func (h *UserHandler) reviewInstitution(c echo.Context, decision models.InstitutionStatus) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	institution, err := h.userUC.ReviewInstitution(c.Request().Context(), adminID, c.Param("id"), decision)
	if err != nil {
		return respondError(c, "Failed to review institution", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Institution "+string(decision), institution)
}
