package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/bloodlink/internal/pkg/middleware"
	"github.com/piresc/bloodlink/internal/pkg/models"
	nr "github.com/piresc/bloodlink/internal/pkg/newrelic"
	"github.com/piresc/bloodlink/services/donors"
	httpHandler "github.com/piresc/bloodlink/services/donors/handler/http"
)

// Handler combines all HTTP handlers for the donors service
type Handler struct {
	donorHTTP *httpHandler.DonorHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(donorUC donors.DonorUC, cfg *models.Config) *Handler {
	return &Handler{
		donorHTTP: httpHandler.NewDonorHandler(donorUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	donorsGroup := e.Group("/donors", middleware.JWTAuthMiddleware(h.cfg.JWT))
	donorsGroup.GET("/me", nr.TraceHandler("donors.get_profile", h.donorHTTP.GetProfile))
	donorsGroup.PUT("/me/availability", nr.TraceHandler("donors.update_availability", h.donorHTTP.UpdateAvailability))
	donorsGroup.PUT("/me/location", nr.TraceHandler("donors.update_location", h.donorHTTP.UpdateLocation))
	donorsGroup.PUT("/me/blood-type", nr.TraceHandler("donors.update_blood_type", h.donorHTTP.UpdateBloodType))
	donorsGroup.GET("/nearby", nr.TraceHandler("donors.nearby", h.donorHTTP.FindNearbyDonors))
}
