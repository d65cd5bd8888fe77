//go:build !unix

package sys

import (
	"errors"
	"os"
)

// ScreenSizeOf has no screen-size call to issue on this host and always
// reports zero rows and columns.
func ScreenSizeOf(*os.File) ScreenSizeFunc {
	return func() uint64 { return 0 }
}

func newDefaultPlatform() Platform {
	return NewSyscallPlatform(nil)
}

func newTermBackend() (Platform, error) {
	return nil, errors.New("term backend is not available on this platform")
}
