package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/bloodlink/internal/pkg/logger"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/piresc/bloodlink/internal/utils"
)

// SignupInstitution creates a hospital account and its institution pending
// admin review
func (uc *UserUC) SignupInstitution(ctx context.Context, req models.InstitutionSignupRequest) (*models.Institution, error) {
	email, err := validateEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if err := uc.validatePassword(req.Password); err != nil {
		return nil, err
	}

	name := utils.SanitizeString(req.Name)
	regNumber := utils.SanitizeString(req.RegNumber)
	contactPerson := utils.SanitizeString(req.ContactPerson)
	switch {
	case name == "":
		return nil, fmt.Errorf("%w: institution name is required", models.ErrInvalidInput)
	case regNumber == "":
		return nil, fmt.Errorf("%w: registration number is required", models.ErrInvalidInput)
	case contactPerson == "":
		return nil, fmt.Errorf("%w: contact person is required", models.ErrInvalidInput)
	case !utils.IsValidPhoneNumber(req.ContactNumber):
		return nil, fmt.Errorf("%w: invalid contact number", models.ErrInvalidInput)
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
		DisplayName:  name,
		PhoneNumber:  req.ContactNumber,
		Role:         models.RoleHospital,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	institution := &models.Institution{
		ID:            uuid.New().String(),
		UserID:        user.ID,
		Name:          name,
		RegNumber:     regNumber,
		ContactPerson: contactPerson,
		ContactNumber: req.ContactNumber,
		Email:         email,
		Status:        models.InstitutionPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.userRepo.CreateInstitution(ctx, user, institution); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Institution signed up",
		logger.String("institution_id", institution.ID),
		logger.String("user_id", user.ID))
	return institution, nil
}

// ListInstitutions lists institutions in status, or all of them when status
// is empty
func (uc *UserUC) ListInstitutions(ctx context.Context, status models.InstitutionStatus) ([]*models.Institution, error) {
	switch status {
	case "", models.InstitutionPending, models.InstitutionApproved, models.InstitutionRejected:
	default:
		return nil, fmt.Errorf("%w: unknown institution status %q", models.ErrInvalidInput, status)
	}
	return uc.userRepo.ListInstitutions(ctx, status)
}

// ReviewInstitution approves or rejects a pending institution
func (uc *UserUC) ReviewInstitution(ctx context.Context, adminID, institutionID string, decision models.InstitutionStatus) (*models.Institution, error) {
	if decision != models.InstitutionApproved && decision != models.InstitutionRejected {
		return nil, fmt.Errorf("%w: decision must be approved or rejected", models.ErrInvalidInput)
	}

	admin, err := uc.userRepo.GetUserByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin.Role != models.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins can review institutions", models.ErrForbidden)
	}

	institution, err := uc.userRepo.GetInstitution(ctx, institutionID)
	if err != nil {
		return nil, err
	}
	if institution.Status != models.InstitutionPending {
		return nil, fmt.Errorf("%w: institution is already %s", models.ErrInvalidTransition, institution.Status)
	}

	now := models.Now()
	if err := uc.userRepo.UpdateInstitutionStatus(ctx, institutionID, models.InstitutionPending, decision, adminID, now); err != nil {
		return nil, err
	}

	institution.Status = decision
	institution.ReviewedBy = &adminID
	institution.ReviewedAt = &now
	institution.UpdatedAt = now

	logger.InfoCtx(ctx, "Institution reviewed",
		logger.String("institution_id", institutionID),
		logger.String("decision", string(decision)),
		logger.String("admin_id", adminID))
	return institution, nil
}
