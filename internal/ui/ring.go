package ui

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/circular-loader/internal/model"
)

// ProgressRing draws three concentric circles (pulsating glow, track and
// progress stroke) with a label in the middle. All setters must be called on
// the UI thread.
type ProgressRing struct {
	widget.BaseWidget

	trimEnd    float64
	pulseScale float32
	center     fyne.Position

	pulse  *canvas.Circle
	track  *canvas.Circle
	stroke *canvas.Raster
	label  *canvas.Text
}

// NewProgressRing creates a ring with an empty stroke and the "Start" label
func NewProgressRing() *ProgressRing {
	r := &ProgressRing{pulseScale: 1}

	r.pulse = canvas.NewCircle(PulsatingFillColor)

	r.track = canvas.NewCircle(BackgroundColor)
	r.track.StrokeColor = TrackStrokeColor
	r.track.StrokeWidth = RingLineWidth

	r.stroke = canvas.NewRasterWithPixels(strokePixels(r.TrimEnd))

	r.label = canvas.NewText(model.StartLabel, LabelForegroundColor)
	r.label.TextSize = LabelTextSize
	r.label.TextStyle = fyne.TextStyle{Bold: true}
	r.label.Alignment = fyne.TextAlignCenter

	r.ExtendBaseWidget(r)
	return r
}

// TrimEnd returns the drawn fraction of the progress stroke
func (r *ProgressRing) TrimEnd() float64 {
	return r.trimEnd
}

// SetTrimEnd jumps the progress stroke to f (clamped to [0,1]) without animating
func (r *ProgressRing) SetTrimEnd(f float64) {
	switch {
	case f < 0 || math.IsNaN(f):
		f = 0
	case f > 1:
		f = 1
	}
	if f == r.trimEnd {
		return
	}
	r.trimEnd = f
	canvas.Refresh(r.stroke)
}

// Text returns the label text
func (r *ProgressRing) Text() string {
	return r.label.Text
}

// SetText replaces the label text
func (r *ProgressRing) SetText(text string) {
	if r.label.Text == text {
		return
	}
	r.label.Text = text
	r.layoutLabel()
	canvas.Refresh(r.label)
}

// SetProgress shows fraction f: the stroke trim end and the percentage label
func (r *ProgressRing) SetProgress(f float64) {
	r.SetTrimEnd(f)
	r.SetText(model.FormatPercent(f))
}

// PulseScale returns the current scale of the pulsating layer
func (r *ProgressRing) PulseScale() float32 {
	return r.pulseScale
}

// SetPulseScale resizes the pulsating layer around the ring centre
func (r *ProgressRing) SetPulseScale(scale float32) {
	r.pulseScale = scale
	r.layoutPulse()
	canvas.Refresh(r.pulse)
}

// CreateRenderer is a private method to Fyne which links this widget to its renderer
func (r *ProgressRing) CreateRenderer() fyne.WidgetRenderer {
	return &ringRenderer{ring: r}
}

func (r *ProgressRing) layoutPulse() {
	pos, size := circleBounds(r.center, RingRadius*r.pulseScale)
	r.pulse.Move(pos)
	r.pulse.Resize(size)
}

func (r *ProgressRing) layoutLabel() {
	size := r.label.MinSize()
	r.label.Move(fyne.NewPos(r.center.X-size.Width/2, r.center.Y-size.Height/2))
	r.label.Resize(size)
}

// circleBounds returns the top-left corner and size of a circle of radius
// around center
func circleBounds(center fyne.Position, radius float32) (fyne.Position, fyne.Size) {
	return fyne.NewPos(center.X-radius, center.Y-radius), fyne.NewSquareSize(2 * radius)
}

type ringRenderer struct {
	ring *ProgressRing
}

func (rr *ringRenderer) Destroy() {}

// Layout centres every layer; the stroke is centred on RingRadius, so the
// track and stroke boxes include half the line width on each side.
func (rr *ringRenderer) Layout(size fyne.Size) {
	r := rr.ring
	r.center = fyne.NewPos(size.Width/2, size.Height/2)

	r.layoutPulse()

	pos, box := circleBounds(r.center, strokeExtent()/2)
	r.track.Move(pos)
	r.track.Resize(box)
	r.stroke.Move(pos)
	r.stroke.Resize(box)

	r.layoutLabel()
}

func (rr *ringRenderer) MinSize() fyne.Size {
	return fyne.NewSquareSize(strokeExtent() * PulseScale)
}

// Objects are stacked back to front: glow, track, stroke, label
func (rr *ringRenderer) Objects() []fyne.CanvasObject {
	r := rr.ring
	return []fyne.CanvasObject{r.pulse, r.track, r.stroke, r.label}
}

func (rr *ringRenderer) Refresh() {
	r := rr.ring
	r.pulse.FillColor = PulsatingFillColor
	r.track.FillColor = BackgroundColor
	r.track.StrokeColor = TrackStrokeColor
	r.label.Color = LabelForegroundColor
	for _, o := range rr.Objects() {
		o.Refresh()
	}
}

var _ fyne.Widget = (*ProgressRing)(nil)
