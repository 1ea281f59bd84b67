package input

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

// RobotgoInjector injects input through robotgo's generic event path.
// Works on Windows, macOS (requires accessibility permissions) and X11.
type RobotgoInjector struct{}

// NewInjector creates the generic cross-platform injector
func NewInjector() *RobotgoInjector {
	return &RobotgoInjector{}
}

// KeyDown presses and holds a keyboard key
func (i *RobotgoInjector) KeyDown(key string) error {
	if err := robotgo.KeyToggle(key, "down"); err != nil {
		return fmt.Errorf("key down %q: %w", key, err)
	}
	return nil
}

// KeyUp releases a keyboard key
func (i *RobotgoInjector) KeyUp(key string) error {
	if err := robotgo.KeyToggle(key, "up"); err != nil {
		return fmt.Errorf("key up %q: %w", key, err)
	}
	return nil
}

// KeyTap presses and releases a keyboard key
func (i *RobotgoInjector) KeyTap(key string) error {
	if err := robotgo.KeyTap(key); err != nil {
		return fmt.Errorf("key tap %q: %w", key, err)
	}
	return nil
}

// ButtonDown presses and holds a mouse button
func (i *RobotgoInjector) ButtonDown(button string) error {
	if err := robotgo.Toggle(button, "down"); err != nil {
		return fmt.Errorf("button down %q: %w", button, err)
	}
	return nil
}

// ButtonUp releases a mouse button
func (i *RobotgoInjector) ButtonUp(button string) error {
	if err := robotgo.Toggle(button, "up"); err != nil {
		return fmt.Errorf("button up %q: %w", button, err)
	}
	return nil
}

// Click presses and releases a mouse button
func (i *RobotgoInjector) Click(button string) error {
	robotgo.Click(button, false)
	return nil
}
