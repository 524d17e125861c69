package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/bloodlink/internal/pkg/middleware"
	"github.com/piresc/bloodlink/internal/pkg/models"
	nr "github.com/piresc/bloodlink/internal/pkg/newrelic"
	"github.com/piresc/bloodlink/services/requests"
	httpHandler "github.com/piresc/bloodlink/services/requests/handler/http"
)

// Handler combines all handlers for the requests service
type Handler struct {
	requestHTTP *httpHandler.RequestHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(requestUC requests.RequestUC, cfg *models.Config) *Handler {
	return &Handler{
		requestHTTP: httpHandler.NewRequestHandler(requestUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes. Every route requires a valid JWT.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	requestsGroup := e.Group("/requests", auth)
	requestsGroup.POST("", nr.TraceHandler("requests.create", h.requestHTTP.CreateRequest))
	requestsGroup.GET("", nr.TraceHandler("requests.list_open", h.requestHTTP.ListOpenRequests))
	requestsGroup.GET("/mine", nr.TraceHandler("requests.list_mine", h.requestHTTP.ListMyRequests))
	requestsGroup.GET("/nearby", nr.TraceHandler("requests.nearby", h.requestHTTP.FindNearbyRequests))
	requestsGroup.GET("/:id", nr.TraceHandler("requests.get", h.requestHTTP.GetRequest))
	requestsGroup.PATCH("/:id/status", nr.TraceHandler("requests.update_status", h.requestHTTP.UpdateRequestStatus))
	requestsGroup.POST("/:id/donations", nr.TraceHandler("donations.pledge", h.requestHTTP.PledgeDonation))
	requestsGroup.GET("/:id/donations", nr.TraceHandler("donations.list_for_request", h.requestHTTP.ListDonationsForRequest))

	donationsGroup := e.Group("/donations", auth)
	donationsGroup.GET("/mine", nr.TraceHandler("donations.list_mine", h.requestHTTP.ListMyDonations))
	donationsGroup.POST("/:id/complete", nr.TraceHandler("donations.complete", h.requestHTTP.CompleteDonation))
	donationsGroup.POST("/:id/cancel", nr.TraceHandler("donations.cancel", h.requestHTTP.CancelDonation))

	e.GET("/stats", nr.TraceHandler("stats.get", h.requestHTTP.GetStats), auth)
}
