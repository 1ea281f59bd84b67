// Package input provides cross-platform synthetic input injection.
package input

// Injector delivers synthetic key and mouse button events. Keys are
// robotgo key names ("e", "space", "f11", "."); buttons are "left",
// "right", "center".
type Injector interface {
	KeyDown(key string) error
	KeyUp(key string) error
	KeyTap(key string) error
	ButtonDown(button string) error
	ButtonUp(button string) error
	Click(button string) error
}

// Clicker is a lower-level platform path for the fire button. The
// generic injector can trigger an audible system alert during rapid
// click bursts on some platforms; a Clicker bypasses that at the cost
// of portability.
type Clicker interface {
	Press() error
	Release() error
}
