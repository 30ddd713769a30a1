package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func TestPulseScaleAt(t *testing.T) {
	tests := []struct {
		progress float32
		expected float32
	}{
		{0, 1},
		{1, PulseScale},
	}

	for _, test := range tests {
		if result := pulseScaleAt(test.progress); result != test.expected {
			t.Errorf("pulseScaleAt(%v) = %v, expected %v", test.progress, result, test.expected)
		}
	}
}

func TestNewPulseAnimation(t *testing.T) {
	var applied float32
	anim := newPulseAnimation(func(scale float32) { applied = scale })

	if anim.Duration != PulseDuration {
		t.Errorf("Expected duration %v, got %v", PulseDuration, anim.Duration)
	}
	if !anim.AutoReverse {
		t.Error("Expected auto reverse")
	}
	if anim.RepeatCount != fyne.AnimationRepeatForever {
		t.Errorf("Expected endless repeat, got %d", anim.RepeatCount)
	}

	anim.Tick(1)
	if applied != PulseScale {
		t.Errorf("Expected scale %v at the end of a half cycle, got %v", PulseScale, applied)
	}
}

func TestNewFillAnimation(t *testing.T) {
	var values []float64
	doneCalls := 0
	anim := newFillAnimation(func(f float64) { values = append(values, f) }, func() { doneCalls++ })

	if anim.Duration != FillDuration {
		t.Errorf("Expected duration %v, got %v", FillDuration, anim.Duration)
	}
	if anim.RepeatCount != 0 {
		t.Errorf("Expected a single run, got repeat %d", anim.RepeatCount)
	}

	anim.Tick(0.5)
	anim.Tick(1)
	anim.Tick(1)
	if doneCalls != 1 {
		t.Errorf("Expected done once, got %d", doneCalls)
	}
	if values[len(values)-1] != 1 {
		t.Errorf("Expected stroke to stay full, got %v", values[len(values)-1])
	}
}

func TestPulsator_Restart(t *testing.T) {
	test.NewApp()
	ring := NewProgressRing()
	p := NewPulsator(ring)

	if p.Running() {
		t.Fatal("Expected new pulsator to be stopped")
	}

	p.Start()
	first := p.anim
	if !p.Running() || p.Generation() != 1 {
		t.Fatalf("Expected running first generation, got running=%v gen=%d", p.Running(), p.Generation())
	}

	p.Start()
	if !p.Running() || p.Generation() != 2 {
		t.Fatalf("Expected running second generation, got running=%v gen=%d", p.Running(), p.Generation())
	}
	if p.anim == first {
		t.Error("Expected restart to install a new animation")
	}

	p.Stop()
	if p.Running() {
		t.Error("Expected pulsator to be stopped")
	}
	if ring.PulseScale() != 1 {
		t.Errorf("Expected natural size after stop, got %v", ring.PulseScale())
	}

	// Stopping twice is a no-op
	p.Stop()
}
