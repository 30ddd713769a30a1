package ui

import (
	"image/color"
	"math"
)

// strokeExtent is the side of the square that fully contains a stroked ring
func strokeExtent() float32 {
	return 2 * (RingRadius + RingLineWidth/2)
}

// strokeCovers reports whether pixel (x, y) of a w×h raster lies on the drawn
// part of the progress stroke. The stroke starts at 12 o'clock, runs
// clockwise for trimEnd of a full turn and has round caps. Nothing is drawn at
// trimEnd 0.
func strokeCovers(x, y, w, h int, trimEnd float64) bool {
	if trimEnd <= 0 || w <= 0 || h <= 0 {
		return false
	}
	if trimEnd > 1 {
		trimEnd = 1
	}

	side := math.Min(float64(w), float64(h))
	scale := side / float64(strokeExtent())
	radius := float64(RingRadius) * scale
	half := float64(RingLineWidth) / 2 * scale

	// Pixel centre relative to the ring centre; y grows downwards
	px := float64(x) + 0.5 - float64(w)/2
	py := float64(y) + 0.5 - float64(h)/2

	sweep := trimEnd * 2 * math.Pi
	angle := math.Atan2(px, -py)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	if math.Abs(math.Hypot(px, py)-radius) <= half && angle <= sweep {
		return true
	}

	// Caps
	if math.Hypot(px, py+radius) <= half {
		return true
	}
	ex, ey := radius*math.Sin(sweep), -radius*math.Cos(sweep)
	return math.Hypot(px-ex, py-ey) <= half
}

// strokePixels returns the raster generator for a ring whose trim end is read
// from trimEnd on every redraw
func strokePixels(trimEnd func() float64) func(x, y, w, h int) color.Color {
	return func(x, y, w, h int) color.Color {
		if strokeCovers(x, y, w, h, trimEnd()) {
			return OutlineStrokeColor
		}
		return color.Transparent
	}
}
