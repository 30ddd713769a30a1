package platform

// Package platform contains OS/app integration glue: foreground re-entry
// notifications fanned out from the Fyne lifecycle, and the scratch directory
// used for downloads that are thrown away once complete.
