//go:build darwin

package sys

import "golang.org/x/sys/unix"

const ioctlReadTermios = unix.TIOCGETA
