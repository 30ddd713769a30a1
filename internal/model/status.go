package model

// InteractionState represents what the loader screen is currently doing
type InteractionState int

const (
	// StateIdle means no download is running and a tap starts one
	StateIdle InteractionState = iota

	// StateDownloading means a download is in flight and taps are ignored
	StateDownloading
)

// String returns the string representation of InteractionState
func (s InteractionState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDownloading:
		return "Downloading"
	default:
		return "Unknown"
	}
}

// IsActive returns true while a download (real or simulated) is running
func (s InteractionState) IsActive() bool {
	return s == StateDownloading
}

// AcceptsTap returns true if a tap should start a new download
func (s InteractionState) AcceptsTap() bool {
	return s == StateIdle
}
