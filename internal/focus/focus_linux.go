//go:build linux

package focus

import (
	"fmt"
	"os/exec"
	"strings"
)

// LinuxChecker reads the active window title through xdotool (X11).
// Wayland sessions without XWayland will fail the query, which the
// monitor treats as active.
type LinuxChecker struct {
	// displayName is matched case-insensitively against the window title
	displayName string
}

// NewChecker creates the Linux foreground checker.
func NewChecker(displayName, processName string) Checker {
	return &LinuxChecker{displayName: strings.ToLower(displayName)}
}

// Active reports whether the active window title contains the target name.
func (c *LinuxChecker) Active() (bool, error) {
	out, err := exec.Command("xdotool", "getactivewindow", "getwindowname").Output()
	if err != nil {
		return false, fmt.Errorf("xdotool: %w", err)
	}

	return strings.Contains(strings.ToLower(string(out)), c.displayName), nil
}
