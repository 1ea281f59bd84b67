//go:build !windows

package input

import (
	"fmt"
)

// No low-level click path outside Windows; callers fall back to the
// generic injector.

// NewClicker reports that no direct click path exists on this platform
func NewClicker() (Clicker, error) {
	return nil, fmt.Errorf("direct click path not supported on this platform")
}
