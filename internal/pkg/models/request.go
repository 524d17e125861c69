package models

import (
	"database/sql"
	"time"
)

// BloodRequest is a request for blood units at a hospital
type BloodRequest struct {
	ID              string        `json:"id"`
	RequesterID     string        `json:"requester_id"`
	PatientName     string        `json:"patient_name"`
	BloodType       BloodType     `json:"blood_type"`
	UnitsRequired   int           `json:"units_required"`
	Urgency         Urgency       `json:"urgency"`
	HospitalName    string        `json:"hospital_name"`
	Location        *Location     `json:"location,omitempty"`
	Geohash         string        `json:"geohash,omitempty"`
	ContactNumber   string        `json:"contact_number"`
	AdditionalNotes string        `json:"additional_notes,omitempty"`
	Status          RequestStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// BloodRequestDTO flattens the optional Location for database operations
type BloodRequestDTO struct {
	ID              string          `db:"id"`
	RequesterID     string          `db:"requester_id"`
	PatientName     string          `db:"patient_name"`
	BloodType       string          `db:"blood_type"`
	UnitsRequired   int             `db:"units_required"`
	Urgency         string          `db:"urgency"`
	HospitalName    string          `db:"hospital_name"`
	Latitude        sql.NullFloat64 `db:"latitude"`
	Longitude       sql.NullFloat64 `db:"longitude"`
	Address         sql.NullString  `db:"address"`
	Geohash         sql.NullString  `db:"geohash"`
	ContactNumber   string          `db:"contact_number"`
	AdditionalNotes sql.NullString  `db:"additional_notes"`
	Status          string          `db:"status"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// ToDTO converts a BloodRequest to a BloodRequestDTO
func (r *BloodRequest) ToDTO() *BloodRequestDTO {
	dto := &BloodRequestDTO{
		ID:              r.ID,
		RequesterID:     r.RequesterID,
		PatientName:     r.PatientName,
		BloodType:       string(r.BloodType),
		UnitsRequired:   r.UnitsRequired,
		Urgency:         string(r.Urgency),
		HospitalName:    r.HospitalName,
		Geohash:         sql.NullString{String: r.Geohash, Valid: r.Geohash != ""},
		ContactNumber:   r.ContactNumber,
		AdditionalNotes: sql.NullString{String: r.AdditionalNotes, Valid: r.AdditionalNotes != ""},
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.Location != nil {
		dto.Latitude = sql.NullFloat64{Float64: r.Location.Latitude, Valid: true}
		dto.Longitude = sql.NullFloat64{Float64: r.Location.Longitude, Valid: true}
		dto.Address = sql.NullString{String: r.Location.Address, Valid: r.Location.Address != ""}
	}
	return dto
}

// ToRequest converts a BloodRequestDTO back to a BloodRequest.
// A row missing either coordinate has no location.
func (dto *BloodRequestDTO) ToRequest() *BloodRequest {
	r := &BloodRequest{
		ID:              dto.ID,
		RequesterID:     dto.RequesterID,
		PatientName:     dto.PatientName,
		BloodType:       BloodType(dto.BloodType),
		UnitsRequired:   dto.UnitsRequired,
		Urgency:         Urgency(dto.Urgency),
		HospitalName:    dto.HospitalName,
		Geohash:         dto.Geohash.String,
		ContactNumber:   dto.ContactNumber,
		AdditionalNotes: dto.AdditionalNotes.String,
		Status:          RequestStatus(dto.Status),
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	}
	if dto.Latitude.Valid && dto.Longitude.Valid {
		r.Location = &Location{
			Latitude:  dto.Latitude.Float64,
			Longitude: dto.Longitude.Float64,
			Address:   dto.Address.String,
		}
	}
	return r
}

// CreateRequestInput is the payload for submitting a new blood request
type CreateRequestInput struct {
	PatientName     string    `json:"patient_name"`
	BloodType       string    `json:"blood_type"`
	UnitsRequired   int       `json:"units_required"`
	Urgency         string    `json:"urgency"`
	HospitalName    string    `json:"hospital_name"`
	Location        *Location `json:"location"`
	ContactNumber   string    `json:"contact_number"`
	AdditionalNotes string    `json:"additional_notes"`
}

// RequestFilter narrows request listings
type RequestFilter struct {
	BloodType BloodType
	Limit     int
}

// StatusUpdateRequest is the payload for changing a request's status
type StatusUpdateRequest struct {
	Status RequestStatus `json:"status"`
}

// NearbyQuery describes a proximity search around a donor.
// A zero RadiusKm means the configured default radius; DonorBloodType, when
// set, keeps only requests the donor can give to.
type NearbyQuery struct {
	Origin         Location
	RadiusKm       float64
	DonorBloodType BloodType
	Limit          int
}

// NearbyRequest is a blood request with its distance from the query origin
type NearbyRequest struct {
	BloodRequest
	DistanceKm float64 `json:"distance_km"`
}

// Stats are the aggregate counters shown on the home screen
type Stats struct {
	TotalRequests       int `json:"total_requests" db:"total_requests"`
	ActiveRequests      int `json:"active_requests" db:"active_requests"`
	SuccessfulDonations int `json:"successful_donations" db:"successful_donations"`
	YourDonations       int `json:"your_donations" db:"your_donations"`
}
