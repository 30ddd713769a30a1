package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/circular-loader/internal/config"
	"github.com/ytget/circular-loader/internal/download"
	"github.com/ytget/circular-loader/internal/model"
	"github.com/ytget/circular-loader/internal/platform"
)

// Dispatcher runs fn on the UI thread. Download callbacks arrive on a worker
// goroutine and must pass through it before touching any widget.
type Dispatcher func(fn func())

// Screen is the single loader screen: a full-window tap target around a
// ProgressRing. It owns the interaction state and the displayed progress.
type Screen struct {
	widget.BaseWidget

	ring       *ProgressRing
	pulsator   *Pulsator
	settings   *config.Settings
	downloader download.Downloader
	dispatch   Dispatcher

	// UI thread only
	state    model.InteractionState
	progress model.Progress
	fill     *fyne.Animation

	ctx         context.Context
	cancel      context.CancelFunc
	unsubscribe func()
}

// NewScreen builds the ring, starts pulsating and subscribes to foreground
// re-entry. Call Close when the window goes away.
func NewScreen(settings *config.Settings, downloader download.Downloader, lifecycle *platform.LifecycleNotifier) *Screen {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Screen{
		ring:       NewProgressRing(),
		settings:   settings,
		downloader: downloader,
		dispatch:   fyne.Do,
		ctx:        ctx,
		cancel:     cancel,
	}
	s.pulsator = NewPulsator(s.ring)
	s.ExtendBaseWidget(s)

	s.pulsator.Start()
	s.unsubscribe = lifecycle.Subscribe(s.handleEnterForeground)

	log.Printf("Loader screen initialized, source: %s", settings.GetSourceURL())
	return s
}

// SetDispatcher replaces the function used to reach the UI thread
func (s *Screen) SetDispatcher(d Dispatcher) {
	if d == nil {
		d = fyne.Do
	}
	s.dispatch = d
}

// Ring returns the progress ring shown by the screen
func (s *Screen) Ring() *ProgressRing {
	return s.ring
}

// Pulsator returns the glow animation controller
func (s *Screen) Pulsator() *Pulsator {
	return s.pulsator
}

// State returns the current interaction state
func (s *Screen) State() model.InteractionState {
	return s.state
}

// Progress returns the last rendered progress snapshot
func (s *Screen) Progress() model.Progress {
	return s.progress
}

// CreateRenderer is a private method to Fyne which links this widget to its renderer
func (s *Screen) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewCenter(s.ring))
}

// Tapped starts a download when idle; taps during a download are ignored
func (s *Screen) Tapped(*fyne.PointEvent) {
	if !s.state.AcceptsTap() {
		log.Printf("Download already in progress, ignoring tap")
		return
	}

	if s.settings.GetSimulateProgress() {
		s.beginSimulatedProgress()
		return
	}
	s.beginDownloadingFile()
}

// Close releases the lifecycle subscription, stops every animation and
// abandons an in-flight download
func (s *Screen) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.pulsator.Stop()
	if s.fill != nil {
		s.fill.Stop()
		s.fill = nil
	}
	s.cancel()
}

// OnProgress implements download.Handler. Called on the download goroutine.
func (s *Screen) OnProgress(written, total int64) {
	p := model.Progress{Written: written, Total: total}
	s.dispatch(func() {
		s.render(p)
	})
}

// OnComplete implements download.Handler. The file is left to the download
// service to discard; the ring keeps showing the last progress.
func (s *Screen) OnComplete(location string) {
	log.Printf("Finished downloading to %s", location)
	s.dispatch(func() {
		s.state = model.StateIdle
	})
}

// OnFailure implements download.Handler. Failures are not shown to the user;
// the ring stays at its last value.
func (s *Screen) OnFailure(err error) {
	log.Printf("Download failed: %v", err)
	s.dispatch(func() {
		s.state = model.StateIdle
	})
}

func (s *Screen) handleEnterForeground() {
	s.pulsator.Start()
}

func (s *Screen) beginDownloadingFile() {
	log.Printf("Attempting to download file")

	s.reset()
	s.state = model.StateDownloading

	if _, err := s.downloader.Start(s.ctx, s.settings.GetSourceURL(), s); err != nil {
		log.Printf("Download not started: %v", err)
		s.state = model.StateIdle
	}
}

// beginSimulatedProgress fills the stroke over FillDuration without any
// network activity
func (s *Screen) beginSimulatedProgress() {
	log.Printf("Simulating progress")

	s.reset()
	s.state = model.StateDownloading

	s.fill = newFillAnimation(s.ring.SetProgress, func() {
		s.progress = model.Progress{Written: 1, Total: 1}
		s.state = model.StateIdle
	})
	s.fill.Start()
}

func (s *Screen) reset() {
	s.progress = model.Progress{}
	s.ring.SetProgress(0)
}

// render shows p. Each call jumps straight to the new value; an unknown total
// shows the bytes received and leaves the stroke where it is.
func (s *Screen) render(p model.Progress) {
	s.progress = p
	if f, ok := p.Fraction(); ok {
		s.ring.SetProgress(f)
		return
	}
	s.ring.SetText(p.Label())
}

var _ download.Handler = (*Screen)(nil)
var _ fyne.Tappable = (*Screen)(nil)
