package config

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"github.com/kelseyhightower/envconfig"
)

// Settings keys for Fyne preferences
const (
	KeySourceURL         = "source_url"
	KeyInactivityTimeout = "inactivity_timeout_sec"
	KeySimulateProgress  = "simulate_progress"
)

// Default values
const (
	DefaultSourceURL            = "http://file-examples.com/wp-content/uploads/2017/04/file_example_MP4_480_1_5MG.mp4"
	DefaultInactivityTimeoutSec = 0
	DefaultSimulateProgress     = false

	MaxInactivityTimeoutSec = 600
)

// EnvPrefix is the prefix of environment variables overriding preferences
const EnvPrefix = "CIRCULARLOADER"

// Overrides holds values read from the environment. Nil fields were not set.
type Overrides struct {
	SourceURL         *string        `envconfig:"SOURCE_URL"`
	InactivityTimeout *time.Duration `envconfig:"INACTIVITY_TIMEOUT"`
	SimulateProgress  *bool          `envconfig:"SIMULATE_PROGRESS"`
}

// LoadOverrides parses CIRCULARLOADER_* environment variables
func LoadOverrides() (*Overrides, error) {
	var o Overrides
	if err := envconfig.Process(EnvPrefix, &o); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}
	return &o, nil
}

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// Apply stores every override that was set into preferences
func (s *Settings) Apply(o *Overrides) {
	if o == nil {
		return
	}
	if o.SourceURL != nil {
		s.SetSourceURL(*o.SourceURL)
	}
	if o.InactivityTimeout != nil {
		s.SetInactivityTimeout(*o.InactivityTimeout)
	}
	if o.SimulateProgress != nil {
		s.SetSimulateProgress(*o.SimulateProgress)
	}
}

// GetSourceURL returns the URL of the file downloaded on tap
func (s *Settings) GetSourceURL() string {
	u := s.app.Preferences().String(KeySourceURL)
	if u == "" {
		s.SetSourceURL(DefaultSourceURL)
		return DefaultSourceURL
	}
	return u
}

// SetSourceURL sets the download URL. The URL is not validated here; an
// unusable URL makes the tap a no-op.
func (s *Settings) SetSourceURL(u string) {
	if u == "" {
		u = DefaultSourceURL
	}
	s.app.Preferences().SetString(KeySourceURL, u)
}

// GetInactivityTimeout returns how long a download may go without receiving
// data before it is aborted. Zero disables the watchdog.
func (s *Settings) GetInactivityTimeout() time.Duration {
	sec := s.app.Preferences().IntWithFallback(KeyInactivityTimeout, DefaultInactivityTimeoutSec)
	return time.Duration(sec) * time.Second
}

// SetInactivityTimeout sets the inactivity timeout, clamped to [0, 10m]
func (s *Settings) SetInactivityTimeout(d time.Duration) {
	sec := int(d / time.Second)
	if sec < 0 {
		sec = 0
	}
	if sec > MaxInactivityTimeoutSec {
		sec = MaxInactivityTimeoutSec
	}
	s.app.Preferences().SetInt(KeyInactivityTimeout, sec)
}

// GetSimulateProgress returns whether a tap plays the canned fill animation
// instead of downloading
func (s *Settings) GetSimulateProgress() bool {
	return s.app.Preferences().BoolWithFallback(KeySimulateProgress, DefaultSimulateProgress)
}

// SetSimulateProgress enables or disables the simulated progress mode
func (s *Settings) SetSimulateProgress(simulate bool) {
	s.app.Preferences().SetBool(KeySimulateProgress, simulate)
}
