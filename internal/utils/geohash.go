package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/bloodlink/internal/pkg/models"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances
const EarthRadiusKm = 6371.0

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// IsValid reports whether the point is a finite coordinate in range
func (p GeoPoint) IsValid() bool {
	return models.Location{Latitude: p.Latitude, Longitude: p.Longitude}.IsValid()
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// CalculateDistance returns the great-circle distance between two points in
// kilometers using the haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	lat1 := toRadians(point1.Latitude)
	lat2 := toRadians(point2.Latitude)
	dLat := toRadians(point2.Latitude - point1.Latitude)
	dLon := toRadians(point2.Longitude - point1.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// rounding can push a marginally past 1 for antipodal points
	a = math.Min(1, math.Max(0, a))

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(a))
}

// boxSlackDeg pads box edges so points exactly on the circle survive rounding
const boxSlackDeg = 1e-9

// LngRange is an inclusive longitude interval in degrees
type LngRange struct {
	Min float64
	Max float64
}

// BoundingBox returns the latitude bounds and the longitude ranges of a box
// enclosing the circle of radiusKm around point. The east-west reach is
// asin(sin(r/R)/cos(lat)). A box crossing the antimeridian comes back as two
// ranges, and a circle reaching a pole covers every longitude.
func BoundingBox(point GeoPoint, radiusKm float64) (minLat, maxLat float64, lngRanges []LngRange) {
	angular := radiusKm / EarthRadiusKm
	dLat := toDegrees(angular) + boxSlackDeg
	minLat = point.Latitude - dLat
	maxLat = point.Latitude + dLat

	allLongitudes := []LngRange{{Min: -180, Max: 180}}
	if minLat <= -90 || maxLat >= 90 {
		return math.Max(-90, minLat), math.Min(90, maxLat), allLongitudes
	}

	ratio := math.Sin(angular) / math.Cos(toRadians(point.Latitude))
	if ratio >= 1 {
		return minLat, maxLat, allLongitudes
	}

	dLng := toDegrees(math.Asin(ratio)) + boxSlackDeg
	if dLng >= 180 {
		return minLat, maxLat, allLongitudes
	}

	minLng := point.Longitude - dLng
	maxLng := point.Longitude + dLng
	switch {
	case minLng < -180:
		return minLat, maxLat, []LngRange{{Min: minLng + 360, Max: 180}, {Min: -180, Max: maxLng}}
	case maxLng > 180:
		return minLat, maxLat, []LngRange{{Min: minLng, Max: 180}, {Min: -180, Max: maxLng - 360}}
	}
	return minLat, maxLat, []LngRange{{Min: minLng, Max: maxLng}}
}

// LocationFromGeoPoint converts a GeoPoint to a Location model
func LocationFromGeoPoint(point GeoPoint) models.Location {
	return models.Location{
		Latitude:  point.Latitude,
		Longitude: point.Longitude,
	}
}

// GeoPointFromLocation converts a Location model to a GeoPoint
func GeoPointFromLocation(location models.Location) GeoPoint {
	return GeoPoint{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func toDegrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
