// Package sys is the platform layer of the editor. It puts the terminal in
// raw or canonical mode, reports the window size and whether it changed,
// hands out the locked standard input, and lists the configuration and data
// directories of the host.
//
// Two implementations of Platform exist. TermPlatform goes through
// golang.org/x/term and is the default on unix. SyscallPlatform decodes the
// packed result of a single screen-size system call and treats every mode
// switch as a no-op, for hosts that deliver unprocessed input already.
package sys

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidWindowSize is returned when the platform reports zero rows or
// zero columns, which usually means the output is not a terminal.
var ErrInvalidWindowSize = errors.New("invalid window size")

// TermMode proves that raw mode was entered. It carries no data; whatever
// state is needed to leave raw mode stays inside the Platform.
type TermMode struct{}

// WindowSize is the visible terminal area in character cells.
type WindowSize struct {
	Rows uint
	Cols uint
}

// String implements fmt.Stringer
func (w WindowSize) String() string {
	return fmt.Sprintf("%dx%d", w.Rows, w.Cols)
}

func newWindowSize(rows, cols uint) (WindowSize, error) {
	if rows == 0 || cols == 0 {
		return WindowSize{}, ErrInvalidWindowSize
	}
	return WindowSize{Rows: rows, Cols: cols}, nil
}

// Platform defines the terminal and filesystem operations the editor needs
// from the host.
type Platform interface {
	// ConfDirs returns the system configuration directories, most important first.
	ConfDirs() []string
	// DataDirs returns the system data directories, most important first.
	DataDirs() []string
	// WindowSize issues one query to the host. Zero dimensions are an error.
	WindowSize() (WindowSize, error)
	// RegisterWinsizeChangeSignalHandler arranges for HasWindowSizeChanged to
	// observe resizes, where the host can signal them.
	RegisterWinsizeChangeSignalHandler() error
	// HasWindowSizeChanged reports whether a resize happened since the last
	// call. Platforms without resize signals always report false.
	HasWindowSizeChanged() bool
	// SetTermMode restores the mode that was active before EnableRawMode.
	SetTermMode(mode *TermMode) error
	// EnableRawMode switches stdin to byte-at-a-time input without echo.
	EnableRawMode() (*TermMode, error)
}

// Backend names accepted by NewPlatform.
const (
	BackendAuto    = "auto"
	BackendTerm    = "term"
	BackendSyscall = "syscall"
)

// NewPlatform builds the named backend. BackendAuto (or an empty name)
// picks the build's default.
func NewPlatform(backend string) (Platform, error) {
	switch backend {
	case "", BackendAuto:
		return newDefaultPlatform(), nil
	case BackendTerm:
		return newTermBackend()
	case BackendSyscall:
		return NewSyscallPlatform(nil), nil
	default:
		return nil, fmt.Errorf("unknown platform backend %q", backend)
	}
}

var (
	defaultMu       sync.RWMutex
	defaultPlatform Platform
)

// Default returns the process-wide platform used by the package-level functions.
func Default() Platform {
	defaultMu.RLock()
	p := defaultPlatform
	defaultMu.RUnlock()
	if p != nil {
		return p
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultPlatform == nil {
		defaultPlatform = newDefaultPlatform()
	}
	return defaultPlatform
}

// SetDefault replaces the process-wide platform and returns the previous one.
func SetDefault(p Platform) Platform {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultPlatform
	defaultPlatform = p
	return prev
}

// ConfDirs returns the configuration directories of the default platform.
func ConfDirs() []string { return Default().ConfDirs() }

// DataDirs returns the data directories of the default platform.
func DataDirs() []string { return Default().DataDirs() }

// GetWindowSize returns the current window size as rows and columns.
func GetWindowSize() (WindowSize, error) { return Default().WindowSize() }

// RegisterWinsizeChangeSignalHandler starts resize tracking on the default platform.
func RegisterWinsizeChangeSignalHandler() error {
	return Default().RegisterWinsizeChangeSignalHandler()
}

// HasWindowSizeChanged reports a resize observed by the default platform.
// The syscall backend never observes one; the term backend reports SIGWINCH
// once RegisterWinsizeChangeSignalHandler has been called.
func HasWindowSizeChanged() bool { return Default().HasWindowSizeChanged() }

// SetTermMode restores the terminal mode on the default platform.
func SetTermMode(mode *TermMode) error { return Default().SetTermMode(mode) }

// EnableRawMode enters raw mode on the default platform.
func EnableRawMode() (*TermMode, error) { return Default().EnableRawMode() }
