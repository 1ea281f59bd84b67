// Package autostart manages launching the macro at login.
//
// Implemented on macOS (LaunchAgents plist) and Windows (Run registry
// key); other platforms report unsupported.
package autostart
