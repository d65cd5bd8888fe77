// Package session runs a command inside a pseudo-terminal and keeps it in
// step with the real terminal through the sys platform: raw mode while the
// session copies input, and the window size whenever it changes.
package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/nakkulla/termsys/pkg/sys"
)

// nestedEnv marks processes started by a session.
const nestedEnv = "TERMSYS_SESSION"

// Runner is a process wrapped in a terminal session.
type Runner interface {
	Start(command string, args []string, env []string) error
	CopyIO(stdin io.Reader, stdout io.Writer) error
	Wait() error
	Stop() error
	ExitCode() int
}

// Session handles PTY-based process execution
type Session struct {
	platform     sys.Platform
	logger       *slog.Logger
	pollInterval time.Duration

	cmd      *exec.Cmd
	pty      *os.File
	mode     *sys.TermMode
	exitCode int
	waited   bool
	mu       sync.Mutex
	stopChan chan struct{}
	sigChan  chan os.Signal
	wg       sync.WaitGroup
}

// Ensure Session implements Runner
var _ Runner = (*Session)(nil)

// New creates a session that reads sizes and modes from platform and polls
// for resizes every pollInterval.
func New(platform sys.Platform, logger *slog.Logger, pollInterval time.Duration) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		platform:     platform,
		logger:       logger,
		pollInterval: pollInterval,
		stopChan:     make(chan struct{}),
	}
}

// Start starts command in a new PTY. A nil env inherits the current
// environment.
func (s *Session) Start(command string, args []string, env []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cmd != nil {
		return fmt.Errorf("process already started")
	}
	if os.Getenv(nestedEnv) == "1" {
		return fmt.Errorf("already inside a termsys session")
	}
	if s.pollInterval <= 0 {
		return fmt.Errorf("resize poll interval must be positive")
	}
	if env == nil {
		env = os.Environ()
	}

	cmd := exec.Command(command, args...)
	cmd.Env = markNested(env)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("failed to start PTY: %w", err)
	}
	s.cmd, s.pty = cmd, ptmx

	// Some environments have no terminal to copy from; keep going.
	if err := s.copyWindowSize(); err != nil {
		s.logger.Warn("failed to copy window size", "error", err)
	}

	if err := s.platform.RegisterWinsizeChangeSignalHandler(); err != nil {
		s.logger.Warn("failed to register resize handler", "error", err)
	}

	s.wg.Add(1)
	go s.monitorWindowSize()

	s.setupSignalForwarding()

	s.logger.Debug("session started", "command", command, "args", args)
	return nil
}

// markNested returns env with the nested-session marker set exactly once.
func markNested(env []string) []string {
	out := make([]string, 0, len(env)+1)
	for _, e := range env {
		if !strings.HasPrefix(e, nestedEnv+"=") {
			out = append(out, e)
		}
	}
	return append(out, nestedEnv+"=1")
}

// Wait waits for the process to complete and restores the terminal mode
func (s *Session) Wait() error {
	s.mu.Lock()
	cmd, waited := s.cmd, s.waited
	if cmd != nil {
		s.waited = true
	}
	s.mu.Unlock()
	if cmd == nil {
		return fmt.Errorf("process not started")
	}
	if waited {
		return fmt.Errorf("process already waited")
	}

	err := cmd.Wait()

	// Signal stop to goroutines
	close(s.stopChan)
	s.wg.Wait()
	s.cleanupSignals()

	s.mu.Lock()
	if cmd.ProcessState != nil {
		s.exitCode = cmd.ProcessState.ExitCode()
	}
	if s.pty != nil {
		_ = s.pty.Close()
	}
	s.mu.Unlock()

	if rerr := s.restoreMode(); rerr != nil {
		s.logger.Warn("failed to restore terminal mode", "error", rerr)
	}

	s.logger.Debug("session finished", "exit_code", s.ExitCode())
	return err
}

// ExitCode returns the exit code of the process
func (s *Session) ExitCode() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exitCode
}

// Stop restores the terminal mode and asks the process to terminate
func (s *Session) Stop() error {
	if err := s.restoreMode(); err != nil {
		s.logger.Warn("failed to restore terminal mode", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cmd == nil || s.cmd.Process == nil {
		return nil
	}
	// Send SIGTERM first for graceful shutdown
	if err := s.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		// If SIGTERM fails, force kill
		if !errors.Is(err, os.ErrProcessDone) {
			return s.cmd.Process.Kill()
		}
	}
	return nil
}

// CopyIO copies stdin to the PTY and the PTY to stdout until the process
// closes its side. When stdin is a terminal it is held in raw mode for the
// duration.
func (s *Session) CopyIO(stdin io.Reader, stdout io.Writer) error {
	s.mu.Lock()
	ptmx := s.pty
	s.mu.Unlock()
	if ptmx == nil {
		return fmt.Errorf("PTY not initialized")
	}

	if file, ok := stdin.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		mode, err := s.platform.EnableRawMode()
		if err != nil {
			return fmt.Errorf("failed to enable raw mode: %w", err)
		}
		s.mu.Lock()
		s.mode = mode
		s.mu.Unlock()
		defer func() {
			if err := s.restoreMode(); err != nil {
				s.logger.Warn("failed to restore terminal mode", "error", err)
			}
		}()
	}

	// Input blocks until the user types, so it is not waited for.
	go func() {
		if _, err := io.Copy(ptmx, stdin); err != nil && !isClosedPTY(err) {
			s.logger.Debug("stdin copy stopped", "error", err)
		}
	}()

	if _, err := io.Copy(stdout, ptmx); err != nil && !isClosedPTY(err) {
		return fmt.Errorf("stdout copy error: %w", err)
	}
	return nil
}

// isClosedPTY reports errors that only mean the other side went away.
// Linux returns EIO from the master once the last slave fd closes.
func isClosedPTY(err error) bool {
	return errors.Is(err, syscall.EIO) || errors.Is(err, os.ErrClosed)
}

func (s *Session) restoreMode() error {
	s.mu.Lock()
	mode := s.mode
	s.mode = nil
	s.mu.Unlock()

	if mode == nil {
		return nil
	}
	return s.platform.SetTermMode(mode)
}

// copyWindowSize copies the platform's window size to the PTY
func (s *Session) copyWindowSize() error {
	size, err := s.platform.WindowSize()
	if err != nil {
		return err
	}
	return pty.Setsize(s.pty, &pty.Winsize{
		Rows: clampUint16(size.Rows),
		Cols: clampUint16(size.Cols),
	})
}

func clampUint16(v uint) uint16 {
	if v > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(v)
}

// monitorWindowSize polls the platform for resizes
func (s *Session) monitorWindowSize() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !s.platform.HasWindowSizeChanged() {
				continue
			}
			s.mu.Lock()
			if s.pty != nil {
				if err := s.copyWindowSize(); err != nil {
					s.logger.Warn("failed to resize PTY", "error", err)
				}
			}
			s.mu.Unlock()
		case <-s.stopChan:
			return
		}
	}
}

// setupSignalForwarding forwards termination signals to the child process
func (s *Session) setupSignalForwarding() {
	s.sigChan = make(chan os.Signal, 1)
	signal.Notify(s.sigChan, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)

	s.wg.Add(1)
	go s.forwardSignals(s.cmd.Process)
}

func (s *Session) forwardSignals(proc *os.Process) {
	defer s.wg.Done()

	for {
		select {
		case sig := <-s.sigChan:
			if err := proc.Signal(sig); err != nil && !errors.Is(err, os.ErrProcessDone) {
				s.logger.Warn("signal forward error", "signal", sig, "error", err)
			}
		case <-s.stopChan:
			return
		}
	}
}

// cleanupSignals stops signal forwarding
func (s *Session) cleanupSignals() {
	if s.sigChan != nil {
		signal.Stop(s.sigChan)
	}
}
