//go:build unix && !linux

package sys

import (
	"os"

	"golang.org/x/sys/unix"
)

// ScreenSizeOf returns a ScreenSizeFunc that issues TIOCGWINSZ on f and
// packs the answer. A failed call reports zero rows and columns.
func ScreenSizeOf(f *os.File) ScreenSizeFunc {
	fd := int(f.Fd())
	return func() uint64 {
		ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
		if err != nil {
			return 0
		}
		return EncodeScreenSize(uint32(ws.Row), uint32(ws.Col))
	}
}
