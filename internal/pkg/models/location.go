package models

// Location represents a geographical location with latitude and longitude
type Location struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Address   string  `json:"address,omitempty" db:"address"`
}

// IsValid reports whether the coordinate lies inside the WGS84 ranges.
// NaN fails both comparisons and is therefore invalid.
func (l Location) IsValid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}
