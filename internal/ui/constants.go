package ui

import (
	"image/color"
	"time"
)

// Ring geometry shared by all three circle layers
const (
	RingRadius    float32 = 100
	RingLineWidth float32 = 20
)

// Pulsation
const (
	PulseScale    float32 = 1.3
	PulseDuration         = 1200 * time.Millisecond
)

// Simulated fill
const (
	FillDuration = 2 * time.Second
)

// Label
const (
	LabelTextSize float32 = 38
)

// Palette
var (
	BackgroundColor      = color.NRGBA{R: 21, G: 22, B: 33, A: 255}
	OutlineStrokeColor   = color.NRGBA{R: 234, G: 46, B: 111, A: 255}
	TrackStrokeColor     = color.NRGBA{R: 56, G: 25, B: 49, A: 255}
	PulsatingFillColor   = color.NRGBA{R: 86, G: 30, B: 63, A: 255}
	LabelForegroundColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)
