package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme color names for the ring layers
const (
	ColorNameOutlineStroke fyne.ThemeColorName = "outlineStroke"
	ColorNameTrackStroke   fyne.ThemeColorName = "trackStroke"
	ColorNamePulsatingFill fyne.ThemeColorName = "pulsatingFill"
)

// LoaderTheme is a dark theme built around the loader palette. The variant is
// ignored so the screen looks the same in light and dark mode.
type LoaderTheme struct{}

// NewLoaderTheme creates a new loader theme
func NewLoaderTheme() fyne.Theme {
	return &LoaderTheme{}
}

// Color returns theme colors
func (t *LoaderTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return BackgroundColor
	case theme.ColorNameForeground:
		return LabelForegroundColor
	case theme.ColorNamePrimary, ColorNameOutlineStroke:
		return OutlineStrokeColor
	case ColorNameTrackStroke:
		return TrackStrokeColor
	case ColorNamePulsatingFill:
		return PulsatingFillColor
	}

	// Use default dark colors for everything else
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *LoaderTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *LoaderTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *LoaderTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameHeadingText:
		return LabelTextSize
	}
	return theme.DefaultTheme().Size(name)
}
