package constants

// Event subjects. The same names are used as NATS subjects and NSQ topics.
const (
	// Requests service
	SubjectRequestCreated       = "request.created"
	SubjectRequestStatusChanged = "request.status_changed"

	// Donations
	SubjectDonationScheduled = "donation.scheduled"
	SubjectDonationCompleted = "donation.completed"
	SubjectDonationCancelled = "donation.cancelled"

	// Donors service
	SubjectDonorAvailability = "donor.availability"
)
