package airly

import (
	"fmt"
	"math"
)

// Coordinate bounds in degrees accepted by the Airly API.
const (
	maxLatitude  = 90.0
	maxLongitude = 180.0
)

// maxRadiusKM bounds a search radius to Earth's mean radius; a wider circle
// cannot describe a meaningful search area.
const maxRadiusKM = 6371

// GeoPoint is a validated WGS84 coordinate pair in degrees. Values are
// immutable once constructed; build them with NewGeoPoint.
type GeoPoint struct {
	lat float64
	lng float64
}

// NewGeoPoint validates the given latitude and longitude and returns the
// point. It fails with ErrInvalidParam when the latitude is outside
// [-90, 90] or the longitude is outside [-180, 180].
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	if !within(lat, maxLatitude) || !within(lng, maxLongitude) {
		return GeoPoint{}, fmt.Errorf("%w: latitude must be within +/-%v and longitude within +/-%v, got lat=%v lng=%v",
			ErrInvalidParam, maxLatitude, maxLongitude, lat, lng)
	}
	return GeoPoint{lat: lat, lng: lng}, nil
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 { return p.lat }

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 { return p.lng }

// within reports whether |v| <= bound. NaN compares false and is rejected.
func within(v, bound float64) bool {
	return math.Abs(v) <= bound
}

// GeoCircle is a search area: a center point plus a radius in kilometers.
// Values are immutable once constructed; build them with NewGeoCircle.
type GeoCircle struct {
	point    GeoPoint
	radiusKM int
}

// NewGeoCircle validates the radius and returns the circle. It fails with
// ErrInvalidParam when the radius is negative or not smaller than Earth's
// radius of 6371 km.
func NewGeoCircle(point GeoPoint, radiusKM int) (GeoCircle, error) {
	if radiusKM < 0 || radiusKM >= maxRadiusKM {
		return GeoCircle{}, fmt.Errorf("%w: radius must be within [0, %d) km, got %d",
			ErrInvalidParam, maxRadiusKM, radiusKM)
	}
	return GeoCircle{point: point, radiusKM: radiusKM}, nil
}

// Point returns the center of the circle.
func (c GeoCircle) Point() GeoPoint { return c.point }

// RadiusKM returns the radius in kilometers.
func (c GeoCircle) RadiusKM() int { return c.radiusKM }
