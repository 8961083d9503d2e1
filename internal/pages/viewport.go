package pages

import (
	"fmt"
	"math"

	"safeguard/internal/models"
)

const (
	DefaultLatitude  = 13.0827
	DefaultLongitude = 80.2707
	DefaultZoom      = 10

	maxLatitude = 85.05112878
)

// MapViewport is the fixed view shown by the map page.
type MapViewport struct {
	Center models.Coordinates
	Zoom   int
}

// DefaultViewport centres on Chennai.
func DefaultViewport() MapViewport {
	return MapViewport{
		Center: models.Coordinates{Latitude: DefaultLatitude, Longitude: DefaultLongitude},
		Zoom:   DefaultZoom,
	}
}

// CenterTile returns the Web Mercator tile containing the centre.
func (v MapViewport) CenterTile() models.Tile {
	n := math.Exp2(float64(v.Zoom))
	lat := math.Max(-maxLatitude, math.Min(maxLatitude, v.Center.Latitude))
	latRad := lat * math.Pi / 180

	x := int(math.Floor((v.Center.Longitude + 180) / 360 * n))
	y := int(math.Floor((1 - math.Log(math.Tan(latRad)+1/math.Cos(latRad))/math.Pi) / 2 * n))

	return models.Tile{X: clampTile(x, n), Y: clampTile(y, n), Z: v.Zoom}
}

// Tiles returns the (2r+1)x(2r+1) block around the centre tile, row by row.
// X wraps around the antimeridian; rows beyond the poles are clamped.
func (v MapViewport) Tiles(radius int) []models.Tile {
	center := v.CenterTile()
	n := int(math.Exp2(float64(v.Zoom)))

	tiles := make([]models.Tile, 0, (2*radius+1)*(2*radius+1))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			x := ((center.X+dx)%n + n) % n
			y := clampTile(center.Y+dy, float64(n))
			tiles = append(tiles, models.Tile{X: x, Y: y, Z: v.Zoom})
		}
	}
	return tiles
}

// OpenStreetMapURL links to the same view on openstreetmap.org.
func (v MapViewport) OpenStreetMapURL() string {
	return fmt.Sprintf("https://www.openstreetmap.org/#map=%d/%.4f/%.4f", v.Zoom, v.Center.Latitude, v.Center.Longitude)
}

func clampTile(v int, n float64) int {
	if v < 0 {
		return 0
	}
	if last := int(n) - 1; v > last {
		return last
	}
	return v
}
