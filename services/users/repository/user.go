package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/piresc/bloodlink/internal/pkg/database"
	"github.com/piresc/bloodlink/internal/pkg/models"
)

const userColumns = `id, email, password_hash, display_name, phone_number, role, blood_type,
	latitude, longitude, address, created_at, updated_at`

const insertUserQuery = `
	INSERT INTO users (id, email, password_hash, display_name, phone_number, role, blood_type,
		latitude, longitude, address, created_at, updated_at)
	VALUES (:id, :email, :password_hash, :display_name, :phone_number, :role, :blood_type,
		:latitude, :longitude, :address, :created_at, :updated_at)
`

// CreateUser inserts a new account. A taken email returns models.ErrConflict.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	if _, err := r.db.NamedExecContext(ctx, insertUserQuery, user.ToDTO()); err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("%w: email is already registered", models.ErrConflict)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by id
func (r *UserRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return r.getUserByField(ctx, "id", id)
}

// GetUserByEmail retrieves a user by normalized email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUserByField(ctx, "email", email)
}

// getUserByField is a helper to get a user by a trusted column name
func (r *UserRepo) getUserByField(ctx context.Context, field, value string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1`, userColumns, field)

	var dto models.UserDTO
	if err := r.db.GetContext(ctx, &dto, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return dto.ToUser(), nil
}

// UpdateProfile saves the editable profile fields
func (r *UserRepo) UpdateProfile(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET display_name = :display_name, phone_number = :phone_number, blood_type = :blood_type,
			latitude = :latitude, longitude = :longitude, address = :address, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, user.ToDTO())
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return expectOneRow(result, "user")
}

// UpdatePassword replaces the stored password hash
func (r *UserRepo) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, passwordHash, models.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return expectOneRow(result, "user")
}

func expectOneRow(result sql.Result, entity string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%s %w", entity, models.ErrNotFound)
	}
	return nil
}
