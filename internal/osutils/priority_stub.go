//go:build !windows && !darwin && !linux

package osutils

import (
	"fmt"
	"runtime"
)

// RaisePriority is unavailable on this platform.
func RaisePriority() error {
	return fmt.Errorf("priority elevation not supported on %s", runtime.GOOS)
}
