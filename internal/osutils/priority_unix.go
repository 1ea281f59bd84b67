//go:build darwin || linux

package osutils

import (
	"golang.org/x/sys/unix"
)

// RaisePriority asks the scheduler to favor this process. Raising
// priority usually needs elevated rights on Unix; callers treat a
// failure as a logged warning.
func RaisePriority() error {
	return unix.Setpriority(unix.PRIO_PROCESS, 0, -10)
}
