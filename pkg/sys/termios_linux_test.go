//go:build linux

package sys

import "golang.org/x/sys/unix"

const ioctlReadTermios = unix.TCGETS
