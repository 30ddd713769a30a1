package ui

import (
	"fyne.io/fyne/v2"
)

// Pulsator runs the endless glow animation of the ring. The animation does not
// survive app suspension on every platform, so Start may be called again at
// any time: it replaces the running animation instead of toggling it.
type Pulsator struct {
	ring       *ProgressRing
	anim       *fyne.Animation
	generation int
}

// NewPulsator creates a stopped pulsator for ring
func NewPulsator(ring *ProgressRing) *Pulsator {
	return &Pulsator{ring: ring}
}

// Start (re)starts the pulsation: scale 1 → PulseScale, ease-out, auto
// reversing, repeating forever
func (p *Pulsator) Start() {
	if p.anim != nil {
		p.anim.Stop()
	}

	p.anim = newPulseAnimation(p.ring.SetPulseScale)
	p.generation++
	p.anim.Start()
}

// Stop halts the pulsation and restores the natural size
func (p *Pulsator) Stop() {
	if p.anim == nil {
		return
	}
	p.anim.Stop()
	p.anim = nil
	p.ring.SetPulseScale(1)
}

// Running reports whether an animation is installed
func (p *Pulsator) Running() bool {
	return p.anim != nil
}

// Generation counts how many animations have been started
func (p *Pulsator) Generation() int {
	return p.generation
}

func newPulseAnimation(apply func(scale float32)) *fyne.Animation {
	anim := fyne.NewAnimation(PulseDuration, func(f float32) {
		apply(pulseScaleAt(f))
	})
	anim.AutoReverse = true
	anim.Curve = fyne.AnimationEaseOut
	anim.RepeatCount = fyne.AnimationRepeatForever
	return anim
}

// pulseScaleAt maps animation progress to a layer scale
func pulseScaleAt(f float32) float32 {
	return 1 + (PulseScale-1)*f
}

// newFillAnimation sweeps the stroke from 0 to 1 over FillDuration and leaves
// it full; done runs once on the final tick.
func newFillAnimation(apply func(f float64), done func()) *fyne.Animation {
	finished := false
	anim := fyne.NewAnimation(FillDuration, func(f float32) {
		apply(float64(f))
		if f >= 1 && !finished {
			finished = true
			done()
		}
	})
	anim.Curve = fyne.AnimationLinear
	return anim
}
