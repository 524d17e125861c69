package models

import (
	"database/sql"
	"time"
)

// UserRole is the role a user registered with
type UserRole string

const (
	RoleDonor     UserRole = "donor"
	RoleRecipient UserRole = "recipient"
	RoleHospital  UserRole = "hospital"
	RoleAdmin     UserRole = "admin"
)

// IsSelfAssignable reports whether a user may pick this role at registration
func (r UserRole) IsSelfAssignable() bool {
	return r == RoleDonor || r == RoleRecipient || r == RoleHospital
}

// User represents an account in the system
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	DisplayName  string    `json:"display_name" db:"display_name"`
	PhoneNumber  string    `json:"phone_number,omitempty" db:"phone_number"`
	Role         UserRole  `json:"role" db:"role"`
	BloodType    BloodType `json:"blood_type,omitempty" db:"blood_type"`
	Location     *Location `json:"location,omitempty" db:"-"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// UserDTO is used for database operations
type UserDTO struct {
	ID           string          `db:"id"`
	Email        string          `db:"email"`
	PasswordHash string          `db:"password_hash"`
	DisplayName  string          `db:"display_name"`
	PhoneNumber  sql.NullString  `db:"phone_number"`
	Role         string          `db:"role"`
	BloodType    sql.NullString  `db:"blood_type"`
	Latitude     sql.NullFloat64 `db:"latitude"`
	Longitude    sql.NullFloat64 `db:"longitude"`
	Address      sql.NullString  `db:"address"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

// ToDTO converts a User to a UserDTO
func (u *User) ToDTO() *UserDTO {
	dto := &UserDTO{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		DisplayName:  u.DisplayName,
		PhoneNumber:  sql.NullString{String: u.PhoneNumber, Valid: u.PhoneNumber != ""},
		Role:         string(u.Role),
		BloodType:    sql.NullString{String: string(u.BloodType), Valid: u.BloodType != ""},
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if u.Location != nil {
		dto.Latitude = sql.NullFloat64{Float64: u.Location.Latitude, Valid: true}
		dto.Longitude = sql.NullFloat64{Float64: u.Location.Longitude, Valid: true}
		dto.Address = sql.NullString{String: u.Location.Address, Valid: u.Location.Address != ""}
	}
	return dto
}

// ToUser converts a UserDTO to a User
func (dto *UserDTO) ToUser() *User {
	u := &User{
		ID:           dto.ID,
		Email:        dto.Email,
		PasswordHash: dto.PasswordHash,
		DisplayName:  dto.DisplayName,
		PhoneNumber:  dto.PhoneNumber.String,
		Role:         UserRole(dto.Role),
		BloodType:    BloodType(dto.BloodType.String),
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	}
	if dto.Latitude.Valid && dto.Longitude.Valid {
		u.Location = &Location{
			Latitude:  dto.Latitude.Float64,
			Longitude: dto.Longitude.Float64,
			Address:   dto.Address.String,
		}
	}
	return u
}

// RegisterRequest is the sign-up payload
type RegisterRequest struct {
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	DisplayName string   `json:"display_name"`
	PhoneNumber string   `json:"phone_number"`
	Role        UserRole `json:"role"`
	BloodType   string   `json:"blood_type"`
}

// LoginRequest is the email/password sign-in payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned after a successful sign-in or sign-up
type AuthResponse struct {
	Token     string   `json:"token"`
	UserID    string   `json:"user_id"`
	Role      UserRole `json:"role"`
	ExpiresAt int64    `json:"expires_at"`
}

// UpdateProfileRequest holds the editable profile fields
type UpdateProfileRequest struct {
	DisplayName string    `json:"display_name"`
	PhoneNumber string    `json:"phone_number"`
	BloodType   string    `json:"blood_type"`
	Location    *Location `json:"location"`
}

// ChangePasswordRequest is the payload for changing a password while signed in
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ForgotPasswordRequest starts a password reset
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest completes a password reset
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}
