package models

import (
	"fmt"
	"strings"
)

// BloodType is one of the eight ABO/Rh groups
type BloodType string

const (
	BloodTypeAPos  BloodType = "A+"
	BloodTypeANeg  BloodType = "A-"
	BloodTypeBPos  BloodType = "B+"
	BloodTypeBNeg  BloodType = "B-"
	BloodTypeABPos BloodType = "AB+"
	BloodTypeABNeg BloodType = "AB-"
	BloodTypeOPos  BloodType = "O+"
	BloodTypeONeg  BloodType = "O-"
)

// AllBloodTypes lists the supported blood types in display order
var AllBloodTypes = []BloodType{
	BloodTypeAPos, BloodTypeANeg,
	BloodTypeBPos, BloodTypeBNeg,
	BloodTypeABPos, BloodTypeABNeg,
	BloodTypeOPos, BloodTypeONeg,
}

// donorCompatibility maps a donor's blood type to the recipient types it can serve (red cells)
var donorCompatibility = map[BloodType][]BloodType{
	BloodTypeONeg:  AllBloodTypes,
	BloodTypeOPos:  {BloodTypeOPos, BloodTypeAPos, BloodTypeBPos, BloodTypeABPos},
	BloodTypeANeg:  {BloodTypeANeg, BloodTypeAPos, BloodTypeABNeg, BloodTypeABPos},
	BloodTypeAPos:  {BloodTypeAPos, BloodTypeABPos},
	BloodTypeBNeg:  {BloodTypeBNeg, BloodTypeBPos, BloodTypeABNeg, BloodTypeABPos},
	BloodTypeBPos:  {BloodTypeBPos, BloodTypeABPos},
	BloodTypeABNeg: {BloodTypeABNeg, BloodTypeABPos},
	BloodTypeABPos: {BloodTypeABPos},
}

// ParseBloodType normalizes user input such as " ab+ " into a BloodType
func ParseBloodType(s string) (BloodType, error) {
	bt := BloodType(strings.ToUpper(strings.TrimSpace(s)))
	if !bt.IsValid() {
		return "", fmt.Errorf("%w: unknown blood type %q", ErrInvalidInput, s)
	}
	return bt, nil
}

// IsValid reports whether bt is one of the eight supported groups
func (bt BloodType) IsValid() bool {
	_, ok := donorCompatibility[bt]
	return ok
}

// CanDonateTo reports whether a donor of type bt can give red cells to recipient
func (bt BloodType) CanDonateTo(recipient BloodType) bool {
	for _, t := range donorCompatibility[bt] {
		if t == recipient {
			return true
		}
	}
	return false
}

// CompatibleRecipients returns the recipient types a donor of type bt can serve
func (bt BloodType) CompatibleRecipients() []BloodType {
	return donorCompatibility[bt]
}

// CompatibleDonors returns the donor types that can give to a recipient of type bt
func (bt BloodType) CompatibleDonors() []BloodType {
	var donors []BloodType
	for _, donor := range AllBloodTypes {
		if donor.CanDonateTo(bt) {
			donors = append(donors, donor)
		}
	}
	return donors
}

// Urgency is the ordered urgency of a blood request
type Urgency string

const (
	UrgencyNormal    Urgency = "normal"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyEmergency Urgency = "emergency"
)

// legacyUrgency maps the Low/Medium/High/Critical scale used by the web client
var legacyUrgency = map[string]Urgency{
	"low":      UrgencyNormal,
	"medium":   UrgencyNormal,
	"high":     UrgencyUrgent,
	"critical": UrgencyEmergency,
}

// ParseUrgency accepts both the canonical and the legacy web scale.
// An empty value defaults to normal.
func ParseUrgency(s string) (Urgency, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch Urgency(v) {
	case "":
		return UrgencyNormal, nil
	case UrgencyNormal, UrgencyUrgent, UrgencyEmergency:
		return Urgency(v), nil
	}
	if u, ok := legacyUrgency[v]; ok {
		return u, nil
	}
	return "", fmt.Errorf("%w: unknown urgency %q", ErrInvalidInput, s)
}

// Rank orders urgencies: normal < urgent < emergency. Unknown values rank 0.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyNormal:
		return 1
	case UrgencyUrgent:
		return 2
	case UrgencyEmergency:
		return 3
	}
	return 0
}

// RequestStatus is the lifecycle state of a blood request
type RequestStatus string

const (
	RequestStatusOpen       RequestStatus = "open"
	RequestStatusInProgress RequestStatus = "in-progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusOpen:       {RequestStatusInProgress, RequestStatusCompleted, RequestStatusCancelled},
	RequestStatusInProgress: {RequestStatusOpen, RequestStatusCompleted, RequestStatusCancelled},
}

// IsValid reports whether s is a known request status
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusOpen, RequestStatusInProgress, RequestStatusCompleted, RequestStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusCancelled
}

// CanTransitionTo reports whether a request may move from s to next
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
