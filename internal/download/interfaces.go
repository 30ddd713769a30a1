package download

import (
	"context"
)

// Handler receives download notifications. All methods are called on the
// download goroutine, never on the UI thread.
type Handler interface {
	// OnProgress is called after every chunk written to disk. total is the
	// announced Content-Length, or -1 when the server did not send one.
	OnProgress(written, total int64)

	// OnComplete is called once when every byte has been written to location.
	// The file is removed as soon as OnComplete returns.
	OnComplete(location string)

	// OnFailure is called once if the transfer fails after it was started
	OnFailure(err error)
}

// Downloader defines the interface for the download service.
type Downloader interface {
	// Start validates rawURL and begins the transfer in the background
	Start(ctx context.Context, rawURL string, handler Handler) (*Task, error)

	// Active reports whether any transfer is still running
	Active() bool
}
