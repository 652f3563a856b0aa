// internal/writers/brokenpipe.go
package writers

import (
	"errors"
	"io"
	"syscall"
)

var closedReader = []error{syscall.EPIPE, io.ErrClosedPipe}

// IsBrokenPipe reports whether err means the reader went away, e.g. a sheet
// piped into `head`. Callers treat it as success.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	for _, target := range closedReader {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
