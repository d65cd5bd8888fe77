package sys

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	stdinMu sync.Mutex

	// stdinReader is shared between handles so bytes buffered by one handle
	// are still seen by the next. Guarded by stdinMu.
	stdinReader *bufio.Reader
)

// StdinHandle is a buffered reader over standard input that holds the
// process-wide stdin lock until Close. It must not be used after Close.
type StdinHandle struct {
	*bufio.Reader
	once sync.Once
}

// Stdin locks standard input for the caller. It blocks while another handle
// is open.
func Stdin() (*StdinHandle, error) {
	if os.Stdin == nil {
		return nil, fmt.Errorf("failed to acquire stdin: %w", os.ErrInvalid)
	}
	if _, err := os.Stdin.Stat(); err != nil {
		return nil, fmt.Errorf("failed to acquire stdin: %w", err)
	}

	stdinMu.Lock()
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}
	return &StdinHandle{Reader: stdinReader}, nil
}

// Close releases the stdin lock. Calling it more than once is harmless.
func (h *StdinHandle) Close() error {
	h.once.Do(stdinMu.Unlock)
	return nil
}

var _ io.ReadCloser = (*StdinHandle)(nil)
