//go:build windows

package osutils

import (
	"golang.org/x/sys/windows"
)

// RaisePriority moves the process into the high priority class so the
// spin-tail sleeps are scheduled tightly.
func RaisePriority() error {
	return windows.SetPriorityClass(windows.CurrentProcess(), windows.HIGH_PRIORITY_CLASS)
}
