package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

func TestLoaderTheme_Colors(t *testing.T) {
	th := NewLoaderTheme()

	tests := []struct {
		name     fyne.ThemeColorName
		expected any
	}{
		{theme.ColorNameBackground, BackgroundColor},
		{theme.ColorNameForeground, LabelForegroundColor},
		{ColorNameOutlineStroke, OutlineStrokeColor},
		{ColorNameTrackStroke, TrackStrokeColor},
		{ColorNamePulsatingFill, PulsatingFillColor},
	}

	for _, variant := range []fyne.ThemeVariant{theme.VariantDark, theme.VariantLight} {
		for _, test := range tests {
			if result := th.Color(test.name, variant); result != test.expected {
				t.Errorf("Color(%s, %d) = %v, expected %v", test.name, variant, result, test.expected)
			}
		}
	}
}

func TestLoaderTheme_Size(t *testing.T) {
	th := NewLoaderTheme()

	if size := th.Size(theme.SizeNameHeadingText); size != LabelTextSize {
		t.Errorf("Expected heading size %v, got %v", LabelTextSize, size)
	}
	if size := th.Size(theme.SizeNamePadding); size != theme.DefaultTheme().Size(theme.SizeNamePadding) {
		t.Errorf("Expected default padding, got %v", size)
	}
}
