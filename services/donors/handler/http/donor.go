package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/bloodlink/internal/pkg/logger"
	"github.com/piresc/bloodlink/internal/pkg/middleware"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/internal/utils"
)

// GetProfile handles GET /donors/me
func (h *DonorHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.donorUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, "Failed to get donor profile", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", profile)
}

// UpdateAvailability handles PUT /donors/me/availability
func (h *DonorHandler) UpdateAvailability(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	profile, err := h.donorUC.UpdateAvailability(c.Request().Context(), userID, req)
	if err != nil {
		return respondError(c, "Failed to update availability", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Availability updated", profile)
}

// UpdateLocation handles PUT /donors/me/location
func (h *DonorHandler) UpdateLocation(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var location models.Location
	if err := c.Bind(&location); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	profile, err := h.donorUC.UpdateLocation(c.Request().Context(), userID, location)
	if err != nil {
		return respondError(c, "Failed to update location", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location updated", profile)
}

// UpdateBloodType handles PUT /donors/me/blood-type
func (h *DonorHandler) UpdateBloodType(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.BloodTypeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	profile, err := h.donorUC.UpdateBloodType(c.Request().Context(), userID, req.BloodType)
	if err != nil {
		return respondError(c, "Failed to update blood type", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Blood type updated", profile)
}

// FindNearbyDonors handles GET /donors/nearby?lat=&lng=&radius_km=&blood_type=
func (h *DonorHandler) FindNearbyDonors(c echo.Context) error {
	lat, err := floatQueryParam(c, "lat", true)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	lng, err := floatQueryParam(c, "lng", true)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	radius, err := floatQueryParam(c, "radius_km", false)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var recipient models.BloodType
	if raw := c.QueryParam("blood_type"); raw != "" {
		if recipient, err = models.ParseBloodType(raw); err != nil {
			return utils.BadRequestResponse(c, err.Error())
		}
	}

	origin := models.Location{Latitude: lat, Longitude: lng}
	donors, err := h.donorUC.FindNearbyDonors(c.Request().Context(), origin, radius, recipient)
	if err != nil {
		return respondError(c, "Failed to find nearby donors", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", donors)
}

func respondError(c echo.Context, msg string, err error) error {
	if utils.StatusForError(err) == http.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), msg,
			logger.String("path", c.Path()),
			logger.Err(err))
	}
	return utils.DomainErrorResponse(c, err)
}

func floatQueryParam(c echo.Context, name string, required bool) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		if required {
			return 0, fmt.Errorf("%s is required", name)
		}
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}
