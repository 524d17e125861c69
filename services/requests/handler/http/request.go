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

// CreateRequest handles POST /requests
func (h *RequestHandler) CreateRequest(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var input models.CreateRequestInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	req, err := h.requestUC.CreateRequest(c.Request().Context(), userID, input)
	if err != nil {
		return respondError(c, "Failed to create blood request", err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Blood request created", req)
}

// GetRequest handles GET /requests/:id
func (h *RequestHandler) GetRequest(c echo.Context) error {
	req, err := h.requestUC.GetRequest(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, "Failed to get blood request", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", req)
}

// ListOpenRequests handles GET /requests?blood_type=&limit=
func (h *RequestHandler) ListOpenRequests(c echo.Context) error {
	var filter models.RequestFilter

	if raw := c.QueryParam("blood_type"); raw != "" {
		bt, err := models.ParseBloodType(raw)
		if err != nil {
			return utils.BadRequestResponse(c, err.Error())
		}
		filter.BloodType = bt
	}

	limit, err := intQueryParam(c, "limit")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	filter.Limit = limit

	reqs, err := h.requestUC.ListOpenRequests(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, "Failed to list blood requests", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", reqs)
}

// ListMyRequests handles GET /requests/mine
func (h *RequestHandler) ListMyRequests(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	reqs, err := h.requestUC.ListMyRequests(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, "Failed to list blood requests", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", reqs)
}

// UpdateRequestStatus handles PATCH /requests/:id/status
func (h *RequestHandler) UpdateRequestStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var body models.StatusUpdateRequest
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	req, err := h.requestUC.UpdateRequestStatus(c.Request().Context(), userID, c.Param("id"), body.Status)
	if err != nil {
		return respondError(c, "Failed to update blood request status", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Blood request status updated", req)
}

// FindNearbyRequests handles GET /requests/nearby?lat=&lng=&radius_km=&blood_type=&limit=
func (h *RequestHandler) FindNearbyRequests(c echo.Context) error {
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
	limit, err := intQueryParam(c, "limit")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	query := models.NearbyQuery{
		Origin:   models.Location{Latitude: lat, Longitude: lng},
		RadiusKm: radius,
		Limit:    limit,
	}
	if raw := c.QueryParam("blood_type"); raw != "" {
		bt, err := models.ParseBloodType(raw)
		if err != nil {
			return utils.BadRequestResponse(c, err.Error())
		}
		query.DonorBloodType = bt
	}

	results, err := h.requestUC.FindNearbyRequests(c.Request().Context(), query)
	if err != nil {
		return respondError(c, "Failed to find nearby blood requests", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", results)
}

// GetStats handles GET /stats
func (h *RequestHandler) GetStats(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	stats, err := h.requestUC.Stats(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, "Failed to load stats", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", stats)
}

// respondError logs unexpected failures and maps domain errors to a status
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

func intQueryParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", name)
	}
	return v, nil
}
