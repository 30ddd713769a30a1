package download

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidURL is returned by Start when the URL cannot be downloaded
var ErrInvalidURL = errors.New("invalid download URL")

// HTTPStatusError is reported when the server answers with a non-2xx status
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (err *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s - got status code %d while fetching %s",
		http.StatusText(err.StatusCode), err.StatusCode, err.URL)
}
