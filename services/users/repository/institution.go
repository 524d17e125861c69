package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/bloodlink/internal/pkg/database"
	"github.com/piresc/bloodlink/internal/pkg/models"
)

const institutionColumns = `id, user_id, name, reg_number, contact_person, contact_number, email,
	status, reviewed_by, reviewed_at, created_at, updated_at`

// CreateInstitution inserts the institution together with its hospital account
func (r *UserRepo) CreateInstitution(ctx context.Context, user *models.User, institution *models.Institution) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.NamedExecContext(ctx, insertUserQuery, user.ToDTO()); err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("%w: email is already registered", models.ErrConflict)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	query := `
		INSERT INTO institutions (id, user_id, name, reg_number, contact_person, contact_number,
			email, status, created_at, updated_at)
		VALUES (:id, :user_id, :name, :reg_number, :contact_person, :contact_number,
			:email, :status, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, institution); err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("%w: registration number is already registered", models.ErrConflict)
		}
		return fmt.Errorf("failed to insert institution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetInstitution retrieves an institution by id
func (r *UserRepo) GetInstitution(ctx context.Context, id string) (*models.Institution, error) {
	query := fmt.Sprintf(`SELECT %s FROM institutions WHERE id = $1`, institutionColumns)

	var institution models.Institution
	if err := r.db.GetContext(ctx, &institution, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("institution %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get institution: %w", err)
	}
	return &institution, nil
}

// ListInstitutions returns institutions in the given status, oldest first.
// An empty status lists all of them.
func (r *UserRepo) ListInstitutions(ctx context.Context, status models.InstitutionStatus) ([]*models.Institution, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM institutions
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at ASC
	`, institutionColumns)

	institutions := []*models.Institution{}
	if err := r.db.SelectContext(ctx, &institutions, query, string(status)); err != nil {
		return nil, fmt.Errorf("failed to list institutions: %w", err)
	}
	return institutions, nil
}

// UpdateInstitutionStatus records a review decision. It only applies while
// the institution is still in from, otherwise models.ErrConflict is returned.
func (r *UserRepo) UpdateInstitutionStatus(ctx context.Context, id string, from, to models.InstitutionStatus, reviewerID string, reviewedAt time.Time) error {
	query := `
		UPDATE institutions
		SET status = $1, reviewed_by = $2, reviewed_at = $3, updated_at = $3
		WHERE id = $4 AND status = $5
	`
	result, err := r.db.ExecContext(ctx, query, string(to), reviewerID, reviewedAt, id, string(from))
	if err != nil {
		return fmt.Errorf("failed to update institution: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: institution is no longer %s", models.ErrConflict, from)
	}
	return nil
}
