package users

import (
	"context"
	"time"

	"github.com/piresc/bloodlink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/bloodlink/services/users UserRepo

// UserRepo defines the interface for account and institution storage
type UserRepo interface {
	// Users
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error

	// Password reset tokens
	SaveResetToken(ctx context.Context, token, userID string, ttl time.Duration) error
	ConsumeResetToken(ctx context.Context, token string) (string, error)

	// Institutions
	CreateInstitution(ctx context.Context, user *models.User, institution *models.Institution) error
	GetInstitution(ctx context.Context, id string) (*models.Institution, error)
	ListInstitutions(ctx context.Context, status models.InstitutionStatus) ([]*models.Institution, error)
	UpdateInstitutionStatus(ctx context.Context, id string, from, to models.InstitutionStatus, reviewerID string, reviewedAt time.Time) error
}
