//go:build windows

package input

import (
	"golang.org/x/sys/windows"
)

const (
	mouseeventfLeftdown = 0x0002
	mouseeventfLeftup   = 0x0004
)

var (
	user32         = windows.NewLazySystemDLL("user32.dll")
	procMouseEvent = user32.NewProc("mouse_event")
)

// DirectClicker clicks via the user32 mouse_event API. Unlike the
// generic path this never routes through an accessibility layer, so
// rapid bursts do not set off the system alert sound.
type DirectClicker struct{}

// NewClicker returns the low-level Windows click path
func NewClicker() (Clicker, error) {
	if err := procMouseEvent.Find(); err != nil {
		return nil, err
	}
	return &DirectClicker{}, nil
}

// Press pushes the left mouse button down at the current position
func (c *DirectClicker) Press() error {
	procMouseEvent.Call(mouseeventfLeftdown, 0, 0, 0, 0)
	return nil
}

// Release lets the left mouse button up
func (c *DirectClicker) Release() error {
	procMouseEvent.Call(mouseeventfLeftup, 0, 0, 0, 0)
	return nil
}
