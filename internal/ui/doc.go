package ui

// Package ui contains the Fyne-based loader screen: a pulsating ring whose
// stroke tracks the progress of a download started by tapping anywhere.
// Widgets are only mutated on the UI thread; download callbacks reach them
// through a Dispatcher.
