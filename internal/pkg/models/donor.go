package models

import (
	"database/sql"
	"time"
)

// DonorProfile is a donor's availability state
type DonorProfile struct {
	UserID           string     `json:"user_id"`
	BloodType        BloodType  `json:"blood_type,omitempty"`
	IsAvailable      bool       `json:"is_available"`
	Location         *Location  `json:"location,omitempty"`
	LastDonationDate *time.Time `json:"last_donation_date,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// DonorProfileDTO is used for database operations
type DonorProfileDTO struct {
	UserID           string          `db:"user_id"`
	BloodType        sql.NullString  `db:"blood_type"`
	IsAvailable      bool            `db:"is_available"`
	Latitude         sql.NullFloat64 `db:"latitude"`
	Longitude        sql.NullFloat64 `db:"longitude"`
	Address          sql.NullString  `db:"address"`
	LastDonationDate sql.NullTime    `db:"last_donation_date"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

// ToDTO converts a DonorProfile to a DonorProfileDTO
func (p *DonorProfile) ToDTO() *DonorProfileDTO {
	dto := &DonorProfileDTO{
		UserID:      p.UserID,
		BloodType:   sql.NullString{String: string(p.BloodType), Valid: p.BloodType != ""},
		IsAvailable: p.IsAvailable,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Location != nil {
		dto.Latitude = sql.NullFloat64{Float64: p.Location.Latitude, Valid: true}
		dto.Longitude = sql.NullFloat64{Float64: p.Location.Longitude, Valid: true}
		dto.Address = sql.NullString{String: p.Location.Address, Valid: p.Location.Address != ""}
	}
	if p.LastDonationDate != nil {
		dto.LastDonationDate = sql.NullTime{Time: *p.LastDonationDate, Valid: true}
	}
	return dto
}

// ToProfile converts a DonorProfileDTO to a DonorProfile
func (dto *DonorProfileDTO) ToProfile() *DonorProfile {
	p := &DonorProfile{
		UserID:      dto.UserID,
		BloodType:   BloodType(dto.BloodType.String),
		IsAvailable: dto.IsAvailable,
		UpdatedAt:   dto.UpdatedAt,
	}
	if dto.Latitude.Valid && dto.Longitude.Valid {
		p.Location = &Location{
			Latitude:  dto.Latitude.Float64,
			Longitude: dto.Longitude.Float64,
			Address:   dto.Address.String,
		}
	}
	if dto.LastDonationDate.Valid {
		t := dto.LastDonationDate.Time
		p.LastDonationDate = &t
	}
	return p
}

// AvailabilityRequest toggles whether a donor can be matched
type AvailabilityRequest struct {
	IsAvailable bool      `json:"is_available"`
	Location    *Location `json:"location"`
}

// BloodTypeRequest sets the donor's blood type
type BloodTypeRequest struct {
	BloodType string `json:"blood_type"`
}

// NearbyDonor is an available donor with distance from the search origin
type NearbyDonor struct {
	UserID     string    `json:"user_id"`
	BloodType  BloodType `json:"blood_type"`
	Location   Location  `json:"location"`
	DistanceKm float64   `json:"distance_km"`
}
