//go:build linux

package sys

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// ScreenSizeOf returns a ScreenSizeFunc that issues TIOCGWINSZ on f directly
// and packs the answer. A failed call reports zero rows and columns.
func ScreenSizeOf(f *os.File) ScreenSizeFunc {
	fd := f.Fd()
	return func() uint64 {
		var ws unix.Winsize
		// #nosec G103 -- Required for terminal operations
		if _, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, unix.TIOCGWINSZ, uintptr(unsafe.Pointer(&ws))); errno != 0 {
			return 0
		}
		return EncodeScreenSize(uint32(ws.Row), uint32(ws.Col))
	}
}
