//go:build windows

package osthread

import (
	"sync"

	"golang.org/x/sys/windows"
)

var (
	mainOnce sync.Once
	mainID   uint32
)

func id() uint64 {
	return uint64(windows.GetCurrentThreadId())
}

// The first thread to ask is assumed to be the main thread; package init of a
// Go program runs there.
func isMain() bool {
	mainOnce.Do(func() { mainID = windows.GetCurrentThreadId() })
	return windows.GetCurrentThreadId() == mainID
}

func init() {
	isMain()
}
