// Package osthread identifies the operating system thread a goroutine is
// currently running on. Callers that need a stable answer across calls must
// hold runtime.LockOSThread.
package osthread

// ID returns an identifier of the calling OS thread.
func ID() uint64 {
	return id()
}

// IsMain reports whether the calling OS thread is the process's main thread.
func IsMain() bool {
	return isMain()
}
