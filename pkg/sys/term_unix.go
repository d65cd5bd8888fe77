//go:build unix

package sys

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// TermPlatform drives a real terminal through golang.org/x/term.
type TermPlatform struct {
	inFd  int
	outFd int

	mu    sync.Mutex
	saved *term.State
	sigCh chan os.Signal

	changed atomic.Bool
}

// Ensure TermPlatform implements Platform
var _ Platform = (*TermPlatform)(nil)

// NewTermPlatform creates a platform reading modes from in and sizes from out.
func NewTermPlatform(in, out *os.File) *TermPlatform {
	return &TermPlatform{
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
	}
}

func newDefaultPlatform() Platform {
	return NewTermPlatform(os.Stdin, os.Stdout)
}

func newTermBackend() (Platform, error) {
	return newDefaultPlatform(), nil
}

func (p *TermPlatform) ConfDirs() []string { return noDirs() }

func (p *TermPlatform) DataDirs() []string { return noDirs() }

// WindowSize reports the size of the output terminal. A failed query means
// the size is unavailable and is reported as ErrInvalidWindowSize.
func (p *TermPlatform) WindowSize() (WindowSize, error) {
	cols, rows, err := term.GetSize(p.outFd)
	if err != nil {
		return WindowSize{}, fmt.Errorf("%w: %v", ErrInvalidWindowSize, err)
	}
	if rows < 0 || cols < 0 {
		return WindowSize{}, ErrInvalidWindowSize
	}
	return newWindowSize(uint(rows), uint(cols))
}

// RegisterWinsizeChangeSignalHandler subscribes to SIGWINCH. Registering
// twice keeps the first subscription.
func (p *TermPlatform) RegisterWinsizeChangeSignalHandler() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sigCh != nil {
		return nil
	}
	p.sigCh = make(chan os.Signal, 1)
	signal.Notify(p.sigCh, unix.SIGWINCH)

	go func(ch <-chan os.Signal) {
		for range ch {
			p.changed.Store(true)
		}
	}(p.sigCh)

	return nil
}

// HasWindowSizeChanged reports whether SIGWINCH arrived since the last call
// and clears the flag.
func (p *TermPlatform) HasWindowSizeChanged() bool {
	return p.changed.Swap(false)
}

// Close stops resize tracking.
func (p *TermPlatform) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sigCh != nil {
		signal.Stop(p.sigCh)
		close(p.sigCh)
		p.sigCh = nil
	}
	return nil
}

// EnableRawMode puts stdin in raw mode. Entering raw mode again before a
// restore keeps the original canonical state for SetTermMode.
func (p *TermPlatform) EnableRawMode() (*TermMode, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	state, err := term.MakeRaw(p.inFd)
	if err != nil {
		return nil, fmt.Errorf("failed to enable raw mode: %w", err)
	}
	if p.saved == nil {
		p.saved = state
	}
	return &TermMode{}, nil
}

// SetTermMode restores the state saved by EnableRawMode. Without a saved
// state it does nothing.
func (p *TermPlatform) SetTermMode(*TermMode) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.saved == nil {
		return nil
	}
	if err := term.Restore(p.inFd, p.saved); err != nil {
		return fmt.Errorf("failed to restore terminal mode: %w", err)
	}
	p.saved = nil
	return nil
}
