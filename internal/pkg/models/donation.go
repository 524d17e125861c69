package models

import (
	"database/sql"
	"time"
)

// DonationStatus is the lifecycle state of a donation pledge
type DonationStatus string

const (
	DonationStatusScheduled DonationStatus = "scheduled"
	DonationStatusCompleted DonationStatus = "completed"
	DonationStatusCancelled DonationStatus = "cancelled"
)

// Screening holds the donor's answers from the donation form
type Screening struct {
	LastDonationDate  string `json:"last_donation_date"`
	MedicalConditions string `json:"medical_conditions,omitempty"`
	Medications       string `json:"medications,omitempty"`
	HasRecentSurgery  bool   `json:"has_recent_surgery"`
	HasRecentIllness  bool   `json:"has_recent_illness"`
}

// Donation is a donor's pledge against a blood request
type Donation struct {
	ID           string         `json:"id"`
	RequestID    string         `json:"request_id"`
	DonorID      string         `json:"donor_id"`
	RecipientID  string         `json:"recipient_id"`
	BloodType    BloodType      `json:"blood_type"`
	Units        int            `json:"units"`
	Status       DonationStatus `json:"status"`
	HospitalName string         `json:"hospital_name"`
	Location     *Location      `json:"location,omitempty"`
	Screening    Screening      `json:"screening"`
	DonationDate *time.Time     `json:"donation_date,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// DonationDTO is used for database operations
type DonationDTO struct {
	ID                string          `db:"id"`
	RequestID         string          `db:"request_id"`
	DonorID           string          `db:"donor_id"`
	RecipientID       string          `db:"recipient_id"`
	BloodType         string          `db:"blood_type"`
	Units             int             `db:"units"`
	Status            string          `db:"status"`
	HospitalName      string          `db:"hospital_name"`
	Latitude          sql.NullFloat64 `db:"latitude"`
	Longitude         sql.NullFloat64 `db:"longitude"`
	Address           sql.NullString  `db:"address"`
	LastDonationDate  string          `db:"last_donation_date"`
	MedicalConditions sql.NullString  `db:"medical_conditions"`
	Medications       sql.NullString  `db:"medications"`
	HasRecentSurgery  bool            `db:"has_recent_surgery"`
	HasRecentIllness  bool            `db:"has_recent_illness"`
	DonationDate      sql.NullTime    `db:"donation_date"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
}

// ToDTO converts a Donation to a DonationDTO
func (d *Donation) ToDTO() *DonationDTO {
	dto := &DonationDTO{
		ID:                d.ID,
		RequestID:         d.RequestID,
		DonorID:           d.DonorID,
		RecipientID:       d.RecipientID,
		BloodType:         string(d.BloodType),
		Units:             d.Units,
		Status:            string(d.Status),
		HospitalName:      d.HospitalName,
		LastDonationDate:  d.Screening.LastDonationDate,
		MedicalConditions: sql.NullString{String: d.Screening.MedicalConditions, Valid: d.Screening.MedicalConditions != ""},
		Medications:       sql.NullString{String: d.Screening.Medications, Valid: d.Screening.Medications != ""},
		HasRecentSurgery:  d.Screening.HasRecentSurgery,
		HasRecentIllness:  d.Screening.HasRecentIllness,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
	if d.Location != nil {
		dto.Latitude = sql.NullFloat64{Float64: d.Location.Latitude, Valid: true}
		dto.Longitude = sql.NullFloat64{Float64: d.Location.Longitude, Valid: true}
		dto.Address = sql.NullString{String: d.Location.Address, Valid: d.Location.Address != ""}
	}
	if d.DonationDate != nil {
		dto.DonationDate = sql.NullTime{Time: *d.DonationDate, Valid: true}
	}
	return dto
}

// ToDonation converts a DonationDTO to a Donation
func (dto *DonationDTO) ToDonation() *Donation {
	d := &Donation{
		ID:           dto.ID,
		RequestID:    dto.RequestID,
		DonorID:      dto.DonorID,
		RecipientID:  dto.RecipientID,
		BloodType:    BloodType(dto.BloodType),
		Units:        dto.Units,
		Status:       DonationStatus(dto.Status),
		HospitalName: dto.HospitalName,
		Screening: Screening{
			LastDonationDate:  dto.LastDonationDate,
			MedicalConditions: dto.MedicalConditions.String,
			Medications:       dto.Medications.String,
			HasRecentSurgery:  dto.HasRecentSurgery,
			HasRecentIllness:  dto.HasRecentIllness,
		},
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}
	if dto.Latitude.Valid && dto.Longitude.Valid {
		d.Location = &Location{
			Latitude:  dto.Latitude.Float64,
			Longitude: dto.Longitude.Float64,
			Address:   dto.Address.String,
		}
	}
	if dto.DonationDate.Valid {
		t := dto.DonationDate.Time
		d.DonationDate = &t
	}
	return d
}

// PledgeInput is the donation form payload
type PledgeInput struct {
	BloodType string `json:"blood_type"`
	Units     int    `json:"units"`
	Screening
}
