package constants

import "time"

// Redis key formats
const (
	// Requests Service
	KeyRequestGeo = "requests:geo" // GEO set of open blood requests

	// Donors Service
	KeyDonorGeo       = "donors:geo"        // GEO set of available donors
	KeyAvailableDonor = "donors:available"  // Set of available donor IDs
	KeyDonorBloodType = "donors:blood_type" // Hash of available donor ID to blood type

	// Users Service
	KeyPasswordReset = "user:reset:%s" // Format: user:reset:{token}

	// Rate Limiting
	KeyRateLimit = "rate:auth"
)

// Rate limits applied to unauthenticated auth endpoints
const (
	AuthRateLimit       = 10
	AuthRateLimitPeriod = time.Minute
)
