// Package config provides configuration management for the contagion macro.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// Keybinds maps logical actions to physical keys and mouse buttons.
// Key names follow robotgo/gohook conventions ("e", "space", "f11", ".").
// Mouse buttons are named "left", "right", "center"; trigger buttons are
// numeric gohook button codes (side buttons report as 4 and 5).
type Keybinds struct {
	// Melee is the melee attack key
	Melee string `json:"melee"`

	// Jump is the jump key
	Jump string `json:"jump"`

	// Aim is the aim (hold) mouse button
	Aim string `json:"aim"`

	// Fire is the fire mouse button
	Fire string `json:"fire"`

	// Emote is the emote wheel key
	Emote string `json:"emote"`

	// RapidClick is the keyboard key that starts the rapid-click burst
	RapidClick string `json:"rapid_click"`

	// Toggle is the key that enables/disables all macros
	Toggle string `json:"toggle"`

	// TriggerButton is the mouse button held to run the sequence
	TriggerButton uint16 `json:"trigger_button"`

	// AltTriggerButton is a second hold-to-run mouse button (optional)
	AltTriggerButton uint16 `json:"alt_trigger_button"`

	// EnableAltTrigger enables AltTriggerButton
	EnableAltTrigger bool `json:"enable_alt_trigger"`
}

// Timing contains all delay settings in milliseconds. Derived values
// (double-jump delay, emote preparation delay) are computed once at
// startup by the timing package.
type Timing struct {
	// FPS is the in-game frame rate the delays are tuned against
	FPS float64 `json:"fps"`

	// JumpDelayMS is divided by FPS to get the inter-jump delay
	JumpDelayMS float64 `json:"jump_delay_ms"`

	// AimMeleeDelayMS is the delay between pressing aim and pressing melee
	AimMeleeDelayMS float64 `json:"aim_melee_delay_ms"`

	// MeleeHoldMS is how long the melee key is held
	MeleeHoldMS float64 `json:"melee_hold_ms"`

	// UseEmoteFormula selects the FPS-derived emote delay over the manual one
	UseEmoteFormula bool `json:"use_emote_formula"`

	// EmotePrepManualMS is the manual emote delay when the formula is off
	EmotePrepManualMS float64 `json:"emote_prep_manual_ms"`

	// RapidFireDurationMS bounds the rapid-fire loop inside the sequence
	RapidFireDurationMS float64 `json:"rapid_fire_duration_ms"`

	// RapidFireClickDelayMS is the delay between rapid-fire clicks
	RapidFireClickDelayMS float64 `json:"rapid_fire_click_delay_ms"`

	// SequenceEndDelayMS is the delay at the end of each sequence
	SequenceEndDelayMS float64 `json:"sequence_end_delay_ms"`

	// LoopDelayMS is the delay between sequence repetitions
	LoopDelayMS float64 `json:"loop_delay_ms"`

	// RapidClickCount is the number of clicks in the secondary burst
	RapidClickCount int `json:"rapid_click_count"`

	// RapidClickDelayMS is the delay between secondary burst clicks
	RapidClickDelayMS float64 `json:"rapid_click_delay_ms"`

	// SpinThresholdMS: delays above this sleep coarsely then spin; at or
	// below it the whole delay is spun
	SpinThresholdMS float64 `json:"spin_threshold_ms"`

	// SleepCompensationMS is subtracted from coarse sleeps to leave a spin tail
	SleepCompensationMS float64 `json:"sleep_compensation_ms"`
}

// GeneralConfig contains general application settings
type GeneralConfig struct {
	// TargetDisplayName is the bundle/display name matched on macOS
	TargetDisplayName string `json:"target_display_name"`

	// TargetProcessName is the executable name matched on Windows
	TargetProcessName string `json:"target_process_name"`

	// PollIntervalMS is the foreground-window poll interval
	PollIntervalMS int `json:"poll_interval_ms"`

	// HighPriority requests process priority elevation at startup
	HighPriority bool `json:"high_priority"`
}

// Config represents the application configuration
type Config struct {
	Keybinds Keybinds      `json:"keybinds"`
	Timing   Timing        `json:"timing"`
	General  GeneralConfig `json:"general"`
}

// DefaultConfig returns a new Config with the tuned defaults
func DefaultConfig() *Config {
	return &Config{
		Keybinds: Keybinds{
			Melee:            "e",
			Jump:             "space",
			Aim:              "right",
			Fire:             "left",
			Emote:            ".",
			RapidClick:       "j",
			Toggle:           "f11",
			TriggerButton:    4,
			AltTriggerButton: 5,
			EnableAltTrigger: true,
		},
		Timing: Timing{
			FPS:                   115,
			JumpDelayMS:           1100,
			AimMeleeDelayMS:       25,
			MeleeHoldMS:           50,
			UseEmoteFormula:       true,
			EmotePrepManualMS:     100,
			RapidFireDurationMS:   230,
			RapidFireClickDelayMS: 1,
			SequenceEndDelayMS:    50,
			LoopDelayMS:           0.5,
			RapidClickCount:       10,
			RapidClickDelayMS:     50,
			SpinThresholdMS:       40,
			SleepCompensationMS:   20,
		},
		General: GeneralConfig{
			TargetDisplayName: "Warframe",
			TargetProcessName: "Warframe.x64.exe",
			PollIntervalMS:    1000,
			HighPriority:      true,
		},
	}
}

// Manager handles loading and saving configuration
type Manager struct {
	mu         sync.Mutex
	configPath string
	config     *Config
}

// NewManager creates a new configuration manager
func NewManager() (*Manager, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	return &Manager{
		configPath: configPath,
		config:     DefaultConfig(),
	}, nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, "Library", "Application Support", "contagion")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		configDir = filepath.Join(appData, "contagion")
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".config", "contagion")
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(configDir, "config.json"), nil
}

// Load reads the configuration from disk. A missing file is not an
// error; the defaults are written out so the user has something to edit.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.configPath)
	if os.IsNotExist(err) {
		return m.saveLocked()
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, m.config)
}

// Save writes the configuration to disk
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveLocked()
}

func (m *Manager) saveLocked() error {
	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(m.configPath, data, 0644)
}

// Get returns the current configuration
func (m *Manager) Get() *Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.config
}

// Path returns the location of the config file
func (m *Manager) Path() string {
	return m.configPath
}
