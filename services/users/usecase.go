package users

import (
	"context"

	"github.com/piresc/bloodlink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/bloodlink/services/users UserUC

// UserUC defines the interface for account business logic
type UserUC interface {
	// Authentication
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)

	// Profile
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error

	// Password reset
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error

	// Institutions
	SignupInstitution(ctx context.Context, req models.InstitutionSignupRequest) (*models.Institution, error)
	ListInstitutions(ctx context.Context, status models.InstitutionStatus) ([]*models.Institution, error)
	ReviewInstitution(ctx context.Context, adminID, institutionID string, decision models.InstitutionStatus) (*models.Institution, error)
}
