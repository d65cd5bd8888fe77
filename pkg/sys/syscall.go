package sys

import "os"

// ScreenSizeFunc issues the host's screen-size call. The result packs the
// row count in the upper 32 bits and the column count in the lower 32 bits.
type ScreenSizeFunc func() uint64

// EncodeScreenSize packs rows and columns the way the screen-size call does.
func EncodeScreenSize(rows, cols uint32) uint64 {
	return uint64(rows)<<32 | uint64(cols)
}

// DecodeScreenSize unpacks a screen-size result.
func DecodeScreenSize(packed uint64) (rows, cols uint32) {
	return uint32(packed >> 32), uint32(packed & 0xffffffff)
}

// SyscallPlatform talks to the host through a single screen-size call.
// The host delivers unprocessed input, so there are no terminal modes to
// switch, and it has no signals, so resizes are never reported.
type SyscallPlatform struct {
	screenSize ScreenSizeFunc
}

// Ensure SyscallPlatform implements Platform
var _ Platform = (*SyscallPlatform)(nil)

// NewSyscallPlatform creates a platform around fn. A nil fn queries the
// process's standard output.
func NewSyscallPlatform(fn ScreenSizeFunc) *SyscallPlatform {
	if fn == nil {
		fn = ScreenSizeOf(os.Stdout)
	}
	return &SyscallPlatform{screenSize: fn}
}

func (p *SyscallPlatform) ConfDirs() []string { return noDirs() }

func (p *SyscallPlatform) DataDirs() []string { return noDirs() }

// WindowSize decodes one screen-size call and rejects zero dimensions.
func (p *SyscallPlatform) WindowSize() (WindowSize, error) {
	rows, cols := DecodeScreenSize(p.screenSize())
	return newWindowSize(uint(rows), uint(cols))
}

func (p *SyscallPlatform) RegisterWinsizeChangeSignalHandler() error { return nil }

func (p *SyscallPlatform) HasWindowSizeChanged() bool { return false }

func (p *SyscallPlatform) SetTermMode(*TermMode) error { return nil }

func (p *SyscallPlatform) EnableRawMode() (*TermMode, error) { return &TermMode{}, nil }
