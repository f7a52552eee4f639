//go:build !linux && !windows

package osthread

// Thread identity is unavailable here; every thread reports the same id.
func id() uint64 {
	return 1
}

func isMain() bool {
	return false
}
