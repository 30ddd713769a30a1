package download

// Package download implements the one-shot streaming HTTP download behind the
// loader screen. Progress and completion are reported through a Handler on the
// download goroutine; callers are responsible for moving work to the UI thread.
