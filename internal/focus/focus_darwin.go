//go:build darwin

package focus

import (
	"fmt"
	"os/exec"
	"strings"
)

// DarwinChecker asks LaunchServices (lsappinfo) for the frontmost
// application's display name. Best effort; may require accessibility
// permissions.
type DarwinChecker struct {
	// displayName is the bundle display name to match, e.g. "Warframe"
	displayName string
}

// NewChecker creates the macOS foreground checker.
func NewChecker(displayName, processName string) Checker {
	return &DarwinChecker{displayName: displayName}
}

// Active reports whether the frontmost app's name contains the target name.
func (c *DarwinChecker) Active() (bool, error) {
	front, err := exec.Command("lsappinfo", "front").Output()
	if err != nil {
		return false, fmt.Errorf("lsappinfo front: %w", err)
	}
	asn := strings.TrimSpace(string(front))
	if asn == "" {
		return false, nil
	}

	info, err := exec.Command("lsappinfo", "info", "-only", "name", asn).Output()
	if err != nil {
		return false, fmt.Errorf("lsappinfo info: %w", err)
	}

	// Output looks like: "LSDisplayName"="Warframe"
	return strings.Contains(string(info), c.displayName), nil
}
