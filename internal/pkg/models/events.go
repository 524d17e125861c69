package models

import "time"

// RequestEvent is published when a blood request is created or changes status
type RequestEvent struct {
	RequestID      string        `json:"request_id"`
	RequesterID    string        `json:"requester_id"`
	BloodType      BloodType     `json:"blood_type"`
	Urgency        Urgency       `json:"urgency"`
	Status         RequestStatus `json:"status"`
	PreviousStatus RequestStatus `json:"previous_status,omitempty"`
	Location       *Location     `json:"location,omitempty"`
	Timestamp      time.Time     `json:"timestamp"`
}

// DonationEvent is published on every donation status change
type DonationEvent struct {
	DonationID  string         `json:"donation_id"`
	RequestID   string         `json:"request_id"`
	DonorID     string         `json:"donor_id"`
	RecipientID string         `json:"recipient_id"`
	BloodType   BloodType      `json:"blood_type"`
	Units       int            `json:"units"`
	Status      DonationStatus `json:"status"`
	Timestamp   time.Time      `json:"timestamp"`
}

// DonorAvailabilityEvent is published when a donor toggles availability
type DonorAvailabilityEvent struct {
	DonorID     string    `json:"donor_id"`
	BloodType   BloodType `json:"blood_type,omitempty"`
	IsAvailable bool      `json:"is_available"`
	Location    *Location `json:"location,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
