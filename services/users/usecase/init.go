package usecase

import (
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/services/users"
	"golang.org/x/crypto/bcrypt"
)

const defaultMinPasswordLength = 6

// UserUC implements the user use case interface
type UserUC struct {
	cfg      *models.Config
	userRepo users.UserRepo
}

// NewUserUC creates a new user use case
func NewUserUC(cfg *models.Config, userRepo users.UserRepo) *UserUC {
	return &UserUC{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

func (uc *UserUC) bcryptCost() int {
	if cost := uc.cfg.Auth.BcryptCost; cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
		return cost
	}
	return bcrypt.DefaultCost
}

func (uc *UserUC) minPasswordLength() int {
	if n := uc.cfg.Auth.MinPasswordLength; n > 0 {
		return n
	}
	return defaultMinPasswordLength
}
