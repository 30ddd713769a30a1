package model

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Label formatting
const (
	StartLabel          = "Start"
	ProgressLabelFormat = "%d%%"
	MaxPercent          = 100
)

// percentEpsilon absorbs binary representation error so that 0.29 renders as
// 29% rather than 28%.
const percentEpsilon = 1e-9

// Progress is a snapshot of a single download attempt: bytes written so far and
// the bytes the server announced. Total <= 0 means the size is unknown.
type Progress struct {
	Written int64
	Total   int64
}

// Known reports whether the expected size is known, i.e. a fraction exists
func (p Progress) Known() bool {
	return p.Total > 0
}

// Fraction returns Written/Total clamped to [0,1]. The boolean is false when
// the total is unknown; the fraction is then 0 and must not be rendered.
func (p Progress) Fraction() (float64, bool) {
	if !p.Known() {
		return 0, false
	}
	return clampFraction(float64(p.Written) / float64(p.Total)), true
}

// Percent returns the floor of the completed percentage, computed in integers.
// Unknown totals report 0.
func (p Progress) Percent() int {
	if !p.Known() {
		return 0
	}
	written := p.Written
	if written < 0 {
		written = 0
	}
	if written > p.Total {
		written = p.Total
	}
	return int(written * MaxPercent / p.Total)
}

// Label returns the text shown in the middle of the ring for this snapshot.
// Indeterminate progress shows the amount received instead of a percentage.
func (p Progress) Label() string {
	if !p.Known() {
		written := p.Written
		if written < 0 {
			written = 0
		}
		return humanize.Bytes(uint64(written))
	}
	return fmt.Sprintf(ProgressLabelFormat, p.Percent())
}

// PercentOf returns floor(f*100) for a fraction, clamped to [0,100]
func PercentOf(f float64) int {
	return int(math.Floor(clampFraction(f)*MaxPercent + percentEpsilon))
}

// FormatPercent returns the ring label for a fraction, e.g. "55%"
func FormatPercent(f float64) string {
	return fmt.Sprintf(ProgressLabelFormat, PercentOf(f))
}

func clampFraction(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
