// Package geo gates store visibility and order placement by planar distance.
//
// Coordinates are treated as plain Cartesian points; this is not a great-circle
// distance and the unit is only nominally miles.
package geo

import "math"

// MaxDistance is the proximity threshold for listing stores and placing orders.
const MaxDistance = 30.0

// Distance returns the Euclidean distance between (lat1, lon1) and (lat2, lon2).
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := lat1 - lat2
	dLon := lon1 - lon2
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// WithinRange reports whether a store at this distance is listed as nearby.
// The bound is strict: exactly MaxDistance is out of range.
func WithinRange(distance float64) bool {
	return distance < MaxDistance
}

// TooFar reports whether an order from this distance is rejected.
// Orders only fail above MaxDistance, so a store exactly at the threshold
// is unlisted but still orderable. A NaN distance is too far.
func TooFar(distance float64) bool {
	return !(distance <= MaxDistance)
}

// Bounds returns the axis-aligned box that contains every point within
// MaxDistance of (lat, lon). It is a cheap SQL prefilter for WithinRange.
func Bounds(lat, lon float64) (minLat, maxLat, minLon, maxLon float64) {
	return lat - MaxDistance, lat + MaxDistance, lon - MaxDistance, lon + MaxDistance
}
