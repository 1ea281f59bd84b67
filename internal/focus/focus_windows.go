//go:build windows

package focus

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/shirou/gopsutil/v4/process"
	"golang.org/x/sys/windows"
)

var (
	user32                       = windows.NewLazySystemDLL("user32.dll")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
)

// WindowsChecker resolves the foreground window to its process
// executable name and compares it against the target.
type WindowsChecker struct {
	// processName is the expected executable name, e.g. "Warframe.x64.exe"
	processName string
}

// NewChecker creates the Windows foreground checker.
func NewChecker(displayName, processName string) Checker {
	return &WindowsChecker{processName: strings.ToLower(processName)}
}

// Active reports whether the foreground window belongs to the target process.
func (c *WindowsChecker) Active() (bool, error) {
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		// No foreground window (desktop, lock screen). Not the target.
		return false, nil
	}

	var pid uint32
	tid, _, _ := procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	if tid == 0 || pid == 0 {
		return false, fmt.Errorf("GetWindowThreadProcessId failed for HWND %X", hwnd)
	}

	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return false, fmt.Errorf("open process %d: %w", pid, err)
	}
	name, err := proc.Name()
	if err != nil {
		return false, fmt.Errorf("query process name %d: %w", pid, err)
	}

	return strings.ToLower(name) == c.processName, nil
}
