package main

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/nakkulla/termsys/pkg/config"
	"github.com/nakkulla/termsys/pkg/logging"
	"github.com/nakkulla/termsys/pkg/sys"
)

// Application holds the configuration, logger and platform shared by all commands
type Application struct {
	Config   *config.Config
	Logger   *slog.Logger
	Platform sys.Platform

	logCloser io.Closer
	mu        sync.Mutex
	mode      *sys.TermMode
	exitCode  int
}

// NewApplication creates an application that is configured by the root command
func NewApplication() *Application {
	return &Application{}
}

// Setup loads configuration, applies flag overrides and installs the
// platform. A platform that is already set is kept.
func (a *Application) Setup(opts *globalOptions) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if opts.backend != "" {
		cfg.Backend = opts.backend
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	logger, closer, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("error creating logger: %w", err)
	}

	if a.Platform == nil {
		platform, err := cfg.Platform()
		if err != nil {
			_ = closer.Close()
			return fmt.Errorf("error creating platform: %w", err)
		}
		a.Platform = platform
	}
	sys.SetDefault(a.Platform)

	a.Config, a.Logger, a.logCloser = cfg, logger, closer
	a.Logger.Debug("configured", "backend", cfg.Backend, "log_file", cfg.LogFile)
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// EnterRawMode switches the terminal to raw mode and remembers the token
// for Restore.
func (a *Application) EnterRawMode() error {
	mode, err := sys.EnableRawMode()
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.mode = mode
	a.mu.Unlock()
	return nil
}

// Restore leaves raw mode if it was entered
func (a *Application) Restore() {
	a.mu.Lock()
	mode := a.mode
	a.mode = nil
	a.mu.Unlock()

	if mode == nil {
		return
	}
	if err := sys.SetTermMode(mode); err != nil && a.Logger != nil {
		a.Logger.Warn("failed to restore terminal mode", "error", err)
	}
}

// SetExitCode records the code the process exits with
func (a *Application) SetExitCode(code int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.exitCode = code
}

// ExitCode returns the code the process exits with
func (a *Application) ExitCode() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.exitCode
}

// Close restores the terminal, stops the platform's resize tracking and
// releases the log file
func (a *Application) Close() {
	a.Restore()
	if closer, ok := a.Platform.(io.Closer); ok {
		if err := closer.Close(); err != nil && a.Logger != nil {
			a.Logger.Warn("failed to close platform", "error", err)
		}
	}
	if a.logCloser != nil {
		_ = a.logCloser.Close()
		a.logCloser = nil
	}
}
