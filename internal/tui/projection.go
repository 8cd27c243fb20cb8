package tui

import (
	"math"

	"github.com/san-kum/quadsim/internal/flight"
)

// projection maps lat/lon onto canvas sub-pixels, north up.
type projection struct {
	minLat, minLon float64
	scale          float64
	pw, ph         int
}

// minSpan keeps a single-point mission from zooming in to nothing.
const minSpan = 2e-4

func newProjection(points []flight.Position, pw, ph int) projection {
	minLat, maxLat := math.Inf(1), math.Inf(-1)
	minLon, maxLon := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		minLat, maxLat = math.Min(minLat, p.Lat), math.Max(maxLat, p.Lat)
		minLon, maxLon = math.Min(minLon, p.Lon), math.Max(maxLon, p.Lon)
	}
	if len(points) == 0 {
		minLat, maxLat, minLon, maxLon = 0, 0, 0, 0
	}

	span := math.Max(math.Max(maxLat-minLat, maxLon-minLon), minSpan) * 1.2
	cLat, cLon := (minLat+maxLat)/2, (minLon+maxLon)/2

	return projection{
		minLat: cLat - span/2,
		minLon: cLon - span/2,
		scale:  float64(ph-1) / span,
		pw:     pw,
		ph:     ph,
	}
}

func (p projection) point(pos flight.Position) (int, int) {
	y := float64(p.ph-1) - (pos.Lat-p.minLat)*p.scale
	x := float64(p.pw-p.ph)/2 + (pos.Lon-p.minLon)*p.scale
	return int(math.Round(x)), int(math.Round(y))
}
