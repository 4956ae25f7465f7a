package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Position is a geographic location: latitude and longitude in degrees,
// elevation in meters above the reference surface.
type Position struct {
	Lat       float64
	Lon       float64
	Elevation float64
}

// NewPosition builds a Position from degrees latitude/longitude and meters elevation.
func NewPosition(lat, lon, elevation float64) Position {
	return Position{Lat: lat, Lon: lon, Elevation: elevation}
}

// Equal reports whether two positions have identical coordinates.
func (p Position) Equal(other Position) bool {
	return p.Lat == other.Lat && p.Lon == other.Lon && p.Elevation == other.Elevation
}

// Interpolate returns the linear interpolation between a and b at fraction t,
// where t=0 yields a and t=1 yields b. t is clamped to [0, 1].
func Interpolate(a, b Position, t float64) Position {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return Position{
		Lat:       a.Lat + (b.Lat-a.Lat)*t,
		Lon:       a.Lon + (b.Lon-a.Lon)*t,
		Elevation: a.Elevation + (b.Elevation-a.Elevation)*t,
	}
}

// NormalizeLat clamps latitude to [-90, 90] by folding values past the poles.
func NormalizeLat(lat float64) float64 {
	lat = math.Mod(lat, 180)
	if lat > 90 {
		return 180 - lat
	}
	if lat < -90 {
		return -180 - lat
	}
	return lat
}

// NormalizeLon wraps longitude into [-180, 180).
func NormalizeLon(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}

// Cartesian converts the position to a point on a sphere of the given radius,
// with the Y axis through the poles and the prime meridian along +Z.
func (p Position) Cartesian(radius float64) mgl64.Vec3 {
	latRad := mgl64.DegToRad(p.Lat)
	lonRad := mgl64.DegToRad(p.Lon)
	r := radius + p.Elevation

	cosLat := math.Cos(latRad)
	return mgl64.Vec3{
		r * cosLat * math.Sin(lonRad),
		r * math.Sin(latRad),
		r * cosLat * math.Cos(lonRad),
	}
}
