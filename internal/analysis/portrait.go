package analysis

import (
	"strings"

	"github.com/san-kum/quadsim/internal/flight"
)

type Point struct{ X, Y float64 }

// Portrait is a 2D trajectory through any two frame quantities.
type Portrait struct {
	Points []Point
}

func NewPortrait(frames []flight.Frame, x, y func(flight.Frame) float64) *Portrait {
	p := &Portrait{Points: make([]Point, 0, len(frames))}
	for _, f := range frames {
		p.Points = append(p.Points, Point{X: x(f), Y: y(f)})
	}
	return p
}

// GroundTrack plots longitude against latitude, north up.
func GroundTrack(frames []flight.Frame) *Portrait {
	return NewPortrait(frames,
		func(f flight.Frame) float64 { return f.Position.Lon },
		func(f flight.Frame) float64 { return f.Position.Lat },
	)
}

// ASCII renders the portrait on a width x height character grid. Marks
// are added after the trajectory and drawn as '+'.
func (p *Portrait) ASCII(width, height int, marks ...Point) string {
	if p == nil || len(p.Points) == 0 || width < 2 || height < 2 {
		return ""
	}

	all := append(append([]Point(nil), p.Points...), marks...)
	minX, maxX := all[0].X, all[0].X
	minY, maxY := all[0].Y, all[0].Y
	for _, pt := range all {
		minX, maxX = min(minX, pt.X), max(maxX, pt.X)
		minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	plot := func(pt Point, c rune) {
		col := int((pt.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((pt.Y-minY)/rangeY*float64(height-1))
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = c
		}
	}
	for _, pt := range p.Points {
		plot(pt, '•')
	}
	for _, pt := range marks {
		plot(pt, '+')
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
