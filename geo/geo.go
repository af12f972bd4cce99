package geo

import (
	"math"

	"github.com/watchmen-in/cisadex-engine/entity"
)

// EarthRadiusMiles is the mean Earth radius in statute miles used for all
// great-circle distance computations.
const EarthRadiusMiles = 3959.0

// Haversine returns the great-circle distance between two WGS84 coordinate
// pairs in statute miles. The result is symmetric and zero for identical
// inputs. Callers must check Coordinates.Valid before calling; the formula
// itself does not range-check.
func Haversine(a, b entity.Coordinates) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	return 2 * EarthRadiusMiles * math.Asin(math.Min(1, math.Sqrt(h)))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// zoomRadiiMiles maps map zoom levels 0..9 to the clustering radius in
// miles. Zoom levels beyond the table clamp to the last entry.
var zoomRadiiMiles = []float64{1000, 500, 200, 100, 50, 25, 12, 6, 3, 1.5}

// DefaultZoomRadii returns a copy of the built-in zoom radius table.
func DefaultZoomRadii() []float64 {
	out := make([]float64, len(zoomRadiiMiles))
	copy(out, zoomRadiiMiles)
	return out
}

// RadiusForZoom returns the clustering radius in miles for a zoom level,
// clamping out-of-range levels to the nearest defined entry. The radii
// argument overrides the built-in table when non-empty.
func RadiusForZoom(zoom int, radii []float64) float64 {
	if len(radii) == 0 {
		radii = zoomRadiiMiles
	}
	if zoom < 0 {
		zoom = 0
	}
	if zoom >= len(radii) {
		zoom = len(radii) - 1
	}
	return radii[zoom]
}
