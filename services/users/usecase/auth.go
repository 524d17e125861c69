package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	jwtpkg "github.com/piresc/bloodlink/internal/pkg/jwt"
	"github.com/piresc/bloodlink/internal/pkg/logger"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

var errBadCredentials = fmt.Errorf("%w: invalid email or password", models.ErrUnauthorized)

// Register creates an account and signs it in
func (uc *UserUC) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	email, err := validateEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if err := uc.validatePassword(req.Password); err != nil {
		return nil, err
	}

	displayName := utils.SanitizeString(req.DisplayName)
	if displayName == "" {
		return nil, fmt.Errorf("%w: display name is required", models.ErrInvalidInput)
	}

	role := req.Role
	if role == "" {
		role = models.RoleDonor
	}
	if !role.IsSelfAssignable() {
		return nil, fmt.Errorf("%w: role %q cannot be chosen at registration", models.ErrInvalidInput, role)
	}

	var bloodType models.BloodType
	if req.BloodType != "" {
		if bloodType, err = models.ParseBloodType(req.BloodType); err != nil {
			return nil, err
		}
	}
	if req.PhoneNumber != "" && !utils.IsValidPhoneNumber(req.PhoneNumber) {
		return nil, fmt.Errorf("%w: invalid phone number", models.ErrInvalidInput)
	}

	hash, err := uc.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := models.Now()
	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		DisplayName:  displayName,
		PhoneNumber:  req.PhoneNumber,
		Role:         role,
		BloodType:    bloodType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "User registered",
		logger.String("user_id", user.ID),
		logger.String("role", string(role)))

	return uc.issueToken(user)
}

// Login checks an email and password and returns a signed token
func (uc *UserUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, utils.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, errBadCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		logger.WarnCtx(ctx, "Failed login attempt", logger.String("email", utils.MaskEmail(user.Email)))
		return nil, errBadCredentials
	}

	return uc.issueToken(user)
}

// RequestPasswordReset issues a single-use reset token. Unknown emails
// succeed without issuing one.
func (uc *UserUC) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetUserByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			logger.DebugCtx(ctx, "Password reset requested for unknown email",
				logger.String("email", utils.MaskEmail(utils.NormalizeEmail(email))))
			return nil
		}
		return err
	}

	token, err := utils.GenerateRandomHex(32)
	if err != nil {
		return err
	}

	ttl := time.Duration(uc.cfg.Auth.ResetTokenTTL) * time.Minute
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if err := uc.userRepo.SaveResetToken(ctx, token, user.ID, ttl); err != nil {
		return err
	}

	// delivery by email happens outside this service
	logger.InfoCtx(ctx, "Password reset token issued",
		logger.String("user_id", user.ID),
		logger.String("email", utils.MaskEmail(user.Email)),
		logger.Duration("ttl", ttl))
	return nil
}

// ResetPassword sets a new password using a token from RequestPasswordReset
func (uc *UserUC) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if req.Token == "" {
		return fmt.Errorf("%w: reset token is required", models.ErrInvalidInput)
	}
	if err := uc.validatePassword(req.NewPassword); err != nil {
		return err
	}

	userID, err := uc.userRepo.ConsumeResetToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("%w: reset token is invalid or expired", models.ErrInvalidInput)
		}
		return err
	}

	hash, err := uc.hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := uc.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Password reset", logger.String("user_id", userID))
	return nil
}

func (uc *UserUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	id, err := uuid.Parse(user.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", user.ID, err)
	}

	token, expiresAt, err := jwtpkg.GenerateToken(id, user.Email, string(user.Role), uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}

func (uc *UserUC) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.bcryptCost())
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (uc *UserUC) validatePassword(password string) error {
	if len(password) < uc.minPasswordLength() {
		return fmt.Errorf("%w: password must be at least %d characters", models.ErrInvalidInput, uc.minPasswordLength())
	}
	// bcrypt rejects longer input
	if len(password) > 72 {
		return fmt.Errorf("%w: password must be at most 72 bytes", models.ErrInvalidInput)
	}
	return nil
}

func validateEmail(raw string) (string, error) {
	email := utils.NormalizeEmail(raw)
	if !utils.IsValidEmail(email) {
		return "", fmt.Errorf("%w: invalid email address", models.ErrInvalidInput)
	}
	return email, nil
}
