package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/bloodlink/internal/pkg/constants"
	"github.com/piresc/bloodlink/internal/pkg/database"
	"github.com/piresc/bloodlink/internal/pkg/middleware"
	"github.com/piresc/bloodlink/internal/pkg/models"
	nr "github.com/piresc/bloodlink/internal/pkg/newrelic"
	"github.com/piresc/bloodlink/services/users"
	httpHandler "github.com/piresc/bloodlink/services/users/handler/http"
)

// Handler combines all HTTP handlers for the users service
type Handler struct {
	userHTTP    *httpHandler.UserHandler
	redisClient *database.RedisClient
	cfg         *models.Config
}

// NewHandler creates a new combined handler. A nil redisClient disables rate
// limiting of the auth endpoints.
func NewHandler(userUC users.UserUC, redisClient *database.RedisClient, cfg *models.Config) *Handler {
	return &Handler{
		userHTTP:    httpHandler.NewUserHandler(userUC),
		redisClient: redisClient,
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	var limited []echo.MiddlewareFunc
	if h.redisClient != nil {
		limited = append(limited, middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: h.redisClient.Client,
			Key:         constants.KeyRateLimit,
			Limit:       constants.AuthRateLimit,
			Period:      constants.AuthRateLimitPeriod,
		}))
	}

	authGroup := e.Group("/auth")
	authGroup.POST("/register", nr.TraceHandler("auth.register", h.userHTTP.Register))
	authGroup.POST("/login", nr.TraceHandler("auth.login", h.userHTTP.Login), limited...)
	authGroup.POST("/forgot-password", nr.TraceHandler("auth.forgot_password", h.userHTTP.ForgotPassword), limited...)
	authGroup.POST("/reset-password", nr.TraceHandler("auth.reset_password", h.userHTTP.ResetPassword), limited...)

	e.POST("/institutions/signup", nr.TraceHandler("institutions.signup", h.userHTTP.SignupInstitution), limited...)

	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	usersGroup := e.Group("/users", auth)
	usersGroup.GET("/me", nr.TraceHandler("users.get_profile", h.userHTTP.GetProfile))
	usersGroup.PUT("/me", nr.TraceHandler("users.update_profile", h.userHTTP.UpdateProfile))
	usersGroup.PUT("/me/password", nr.TraceHandler("users.change_password", h.userHTTP.ChangePassword))

	adminGroup := e.Group("/admin", auth, middleware.RequireRole(models.RoleAdmin))
	adminGroup.GET("/institutions", nr.TraceHandler("institutions.list", h.userHTTP.ListInstitutions))
	adminGroup.POST("/institutions/:id/approve", nr.TraceHandler("institutions.approve", h.userHTTP.ApproveInstitution))
	adminGroup.POST("/institutions/:id/reject", nr.TraceHandler("institutions.reject", h.userHTTP.RejectInstitution))
}
