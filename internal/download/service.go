package download

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/ytget/circular-loader/internal/platform"
)

// CopyBufferSize is the chunk size of the copy loop; one progress
// notification is sent per chunk.
const CopyBufferSize = 32 * 1024

// Task describes one download attempt
type Task struct {
	ID        string
	URL       string
	Path      string // scratch file the body is written to
	StartedAt time.Time
}

// Service runs one-shot HTTP downloads into a scratch directory
type Service struct {
	client            *http.Client
	tempDir           string
	inactivityTimeout time.Duration

	mu     sync.Mutex
	active int
}

// NewService creates a new download service. A zero inactivityTimeout lets a
// stalled transfer hang forever.
func NewService(tempDir string, inactivityTimeout time.Duration) *Service {
	return &Service{
		client:            http.DefaultClient,
		tempDir:           tempDir,
		inactivityTimeout: inactivityTimeout,
	}
}

// SetHTTPClient replaces the client used for requests
func (s *Service) SetHTTPClient(client *http.Client) {
	if client == nil {
		client = http.DefaultClient
	}
	s.client = client
}

// Start validates rawURL and runs the download on its own goroutine.
// Cancelling ctx aborts the transfer and reports the error to OnFailure.
func (s *Service) Start(ctx context.Context, rawURL string, handler Handler) (*Task, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	task := &Task{
		ID:        id,
		URL:       rawURL,
		Path:      platform.TempFilePath(s.tempDir, id),
		StartedAt: time.Now(),
	}

	s.mu.Lock()
	s.active++
	s.mu.Unlock()

	go s.run(ctx, task, handler)

	return task, nil
}

// Active reports whether any transfer is still running
func (s *Service) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active > 0
}

func (s *Service) run(ctx context.Context, task *Task, handler Handler) {
	defer func() {
		s.mu.Lock()
		s.active--
		s.mu.Unlock()
	}()

	ctx, wd := newWatchdog(ctx, s.inactivityTimeout)
	defer wd.Stop()

	written, err := s.fetch(ctx, task, handler, wd)
	if err != nil {
		if cause := context.Cause(ctx); cause != nil {
			err = fmt.Errorf("%w (after %s)", cause, humanize.Bytes(uint64(written)))
		}
		log.Printf("Download %s failed: %v", task.ID, err)
		_ = platform.DiscardFile(task.Path)
		handler.OnFailure(err)
		return
	}

	log.Printf("Download %s finished: %s in %s", task.ID,
		humanize.Bytes(uint64(written)), time.Since(task.StartedAt).Round(time.Millisecond))
	handler.OnComplete(task.Path)

	if err := platform.DiscardFile(task.Path); err != nil {
		log.Printf("Failed to discard downloaded file: %v", err)
	}
}

// fetch performs the GET and streams the body into the scratch file
func (s *Service) fetch(ctx context.Context, task *Task, handler Handler, wd *watchdog) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, task.URL, nil)
	if err != nil {
		return 0, fmt.Errorf("setting up HTTP request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("performing GET request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, &HTTPStatusError{URL: task.URL, StatusCode: resp.StatusCode}
	}

	out, err := platform.CreateTempFile(s.tempDir, task.ID)
	if err != nil {
		return 0, err
	}

	written, err := copyWithProgress(out, resp.Body, resp.ContentLength, handler, wd)
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("closing output file: %w", closeErr)
	}
	return written, err
}

// copyWithProgress copies in chunks, notifying handler after every write
func copyWithProgress(out io.Writer, in io.Reader, total int64, handler Handler, wd *watchdog) (int64, error) {
	var written int64
	buf := make([]byte, CopyBufferSize)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			wd.Kick()
			if _, werr := out.Write(buf[:n]); werr != nil {
				return written, fmt.Errorf("writing output file: %w", werr)
			}
			written += int64(n)
			handler.OnProgress(written, total)
		}
		if err == io.EOF {
			return written, nil
		}
		if err != nil {
			return written, fmt.Errorf("reading response body: %w", err)
		}
	}
}

// validateURL rejects URLs that do not parse or are not http(s)
func validateURL(rawURL string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%w: URL must start with http:// or https://", ErrInvalidURL)
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return nil
}
