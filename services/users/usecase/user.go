package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/bloodlink/internal/pkg/logger"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// GetProfile returns the account of userID
func (uc *UserUC) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}

// UpdateProfile applies the non-empty fields of req
func (uc *UserUC) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != "" {
		name := utils.SanitizeString(req.DisplayName)
		if name == "" {
			return nil, fmt.Errorf("%w: display name is required", models.ErrInvalidInput)
		}
		user.DisplayName = name
	}
	if req.PhoneNumber != "" {
		if !utils.IsValidPhoneNumber(req.PhoneNumber) {
			return nil, fmt.Errorf("%w: invalid phone number", models.ErrInvalidInput)
		}
		user.PhoneNumber = req.PhoneNumber
	}
	if req.BloodType != "" {
		bt, err := models.ParseBloodType(req.BloodType)
		if err != nil {
			return nil, err
		}
		user.BloodType = bt
	}
	if req.Location != nil {
		if !req.Location.IsValid() {
			return nil, fmt.Errorf("%w: location out of range", models.ErrInvalidInput)
		}
		loc := *req.Location
		user.Location = &loc
	}
	user.UpdatedAt = models.Now()

	if err := uc.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword replaces the password of a signed-in user
func (uc *UserUC) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	if err := uc.validatePassword(req.NewPassword); err != nil {
		return err
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return fmt.Errorf("%w: current password is incorrect", models.ErrUnauthorized)
	}

	hash, err := uc.hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := uc.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Password changed", logger.String("user_id", userID))
	return nil
}
