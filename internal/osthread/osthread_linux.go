//go:build linux

package osthread

import "golang.org/x/sys/unix"

func id() uint64 {
	return uint64(unix.Gettid())
}

// On Linux the main thread's tid equals the process id.
func isMain() bool {
	return unix.Gettid() == unix.Getpid()
}
