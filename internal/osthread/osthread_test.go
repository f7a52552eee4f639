//go:build linux || windows

package osthread

import (
	"runtime"
	"testing"
)

func TestIDStableWhileLocked(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	first := ID()
	if first == 0 {
		t.Fatal("thread id must not be zero")
	}
	if second := ID(); second != first {
		t.Errorf("thread id changed while locked: %d != %d", first, second)
	}
}

func TestIDDiffersAcrossThreads(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	mine := ID()

	other := make(chan uint64)
	go func() {
		// A locked goroutine that never unlocks gets its thread destroyed on exit,
		// so it cannot share an OS thread with this one.
		runtime.LockOSThread()
		other <- ID()
	}()

	if theirs := <-other; theirs == mine {
		t.Errorf("distinct locked goroutines reported the same thread %d", mine)
	}
}
