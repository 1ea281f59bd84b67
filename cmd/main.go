// Contagion - Exodia Contagion macro for Warframe
// Replays the timed jump/aim/melee/emote/fire combo while a side mouse
// button is held, gated on the game window having focus.
//
// Ensure "Melee with Fire Weapon Input" is OFF in-game. macOS needs
// accessibility permissions for both the event hook and injection.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"

	"contagion/internal/autostart"
	"contagion/internal/config"
	"contagion/internal/focus"
	"contagion/internal/hotkey"
	"contagion/internal/input"
	"contagion/internal/macro"
	"contagion/internal/osutils"
	"contagion/internal/timing"
	"contagion/internal/tray"
)

var (
	version   = "1.0.0"
	showVer   = flag.Bool("version", false, "Show version")
	showCfg   = flag.Bool("show-config", false, "Print the effective configuration and exit")
	useTray   = flag.Bool("tray", false, "Show a system tray icon with an enable toggle")
	autoStart = flag.String("autostart", "", "Manage start-on-login: on, off or status")
)

func main() {
	flag.Parse()

	if *showVer {
		fmt.Printf("contagion version %s\n", version)
		return
	}

	if *autoStart != "" {
		handleAutostart(*autoStart)
		return
	}

	cfgMgr, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}
	if err := cfgMgr.Load(); err != nil {
		log.Printf("Warning: failed to load config, using defaults: %v", err)
	}
	cfg := cfgMgr.Get()

	delays := timing.Compute(cfg.Timing)
	if delays.EmotePrepClamped {
		log.Printf("Warning: FPS %.0f is too high for optimal emote cancel timing, using minimum delay", cfg.Timing.FPS)
	}

	if *showCfg {
		printConfig(cfg, delays, cfgMgr.Path())
		return
	}

	runService(cfg, delays, cfgMgr.Path())
}

func runService(cfg *config.Config, delays timing.Values, cfgPath string) {
	if cfg.General.HighPriority {
		if err := osutils.RaisePriority(); err != nil {
			log.Printf("Warning: failed to raise process priority: %v", err)
		}
	}

	state := macro.NewState()

	inj := input.NewInjector()
	clicker, err := input.NewClicker()
	if err != nil {
		log.Printf("Warning: direct click path unavailable, rapid clicks use the generic injector: %v", err)
		clicker = nil
	}

	checker := focus.NewChecker(cfg.General.TargetDisplayName, cfg.General.TargetProcessName)
	monitor := focus.NewMonitor(checker, time.Duration(cfg.General.PollIntervalMS)*time.Millisecond, state)

	exec := macro.NewExecutor(inj, cfg.Keybinds, delays, state)
	runner := macro.NewRunner(exec, state)
	burst := macro.NewBurst(inj, clicker, cfg.Keybinds, cfg.Timing, delays, state)

	var tr *tray.Tray

	toggle := func() {
		if state.ToggleEnabled() {
			log.Printf("Macros enabled")
		} else {
			log.Printf("Macros disabled")
		}
		if tr != nil {
			tr.SetEnabled(state.Enabled())
		}
	}

	listener := hotkey.NewListener(cfg.Keybinds, hotkey.Actions{
		TriggerDown: func() {
			// Re-check focus on the press itself; the poll may be stale.
			monitor.Poll()
			runner.TriggerDown()
		},
		TriggerUp: runner.TriggerUp,
		RapidClick: func() {
			if monitor.Poll() {
				burst.Trigger()
			}
		},
		Toggle: toggle,
	})

	banner(cfg, delays, cfgPath)

	monitor.Start()
	listener.Start()
	log.Printf("Macro listener running")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	shutdown := func() {
		state.StopRun()
		state.SetEnabled(false)
		listener.Stop()
		monitor.Stop()
		runner.Wait()
		burst.Wait()
		// Belt and braces: nothing may stay held down past exit.
		exec.ReleaseAll()
	}

	if *useTray {
		tr = tray.New("Contagion", "Exodia Contagion macro", state.Enabled())
		tr.OnToggle = func(enabled bool) {
			state.SetEnabled(enabled)
			if enabled {
				log.Printf("Macros enabled")
			} else {
				log.Printf("Macros disabled")
			}
		}
		tr.OnQuit = func() { tr.Stop() }
		go func() {
			<-sigCh
			tr.Stop()
		}()
		tr.Run()
	} else {
		<-sigCh
	}

	shutdown()

	fmt.Println("\nShutting down macro...")
	fmt.Println("Goodbye!")
}

func banner(cfg *config.Config, delays timing.Values, cfgPath string) {
	title := color.New(color.FgCyan, color.Bold)
	title.Printf("=== Exodia Contagion Macro (%s) ===\n", platformName())

	fmt.Println("\nKEY SETTINGS:")
	triggers := fmt.Sprintf("mouse button %d", cfg.Keybinds.TriggerButton)
	if cfg.Keybinds.EnableAltTrigger {
		triggers = fmt.Sprintf("mouse button %d or %d", cfg.Keybinds.TriggerButton, cfg.Keybinds.AltTriggerButton)
	}
	fmt.Printf("  - Hold %s to run the contagion sequence\n", triggers)
	fmt.Printf("  - Press '%s' to perform %d rapid clicks\n", cfg.Keybinds.RapidClick, cfg.Timing.RapidClickCount)
	fmt.Printf("  - Press %s to toggle all macros on/off\n", strings.ToUpper(cfg.Keybinds.Toggle))

	fmt.Println("\nKEYBINDS:")
	fmt.Printf("  - Melee key:  '%s'\n", cfg.Keybinds.Melee)
	fmt.Printf("  - Jump key:   '%s'\n", cfg.Keybinds.Jump)
	fmt.Printf("  - Aim button: %s\n", cfg.Keybinds.Aim)
	fmt.Printf("  - Fire button: %s\n", cfg.Keybinds.Fire)
	fmt.Printf("  - Emote key:  '%s'\n", cfg.Keybinds.Emote)

	fmt.Println("\nTIMING:")
	fmt.Printf("  - Target FPS: %.0f\n", cfg.Timing.FPS)
	fmt.Printf("  - Inter-jump delay: %.3fms\n", float64(delays.DoubleJump)/float64(time.Millisecond))
	fmt.Printf("  - Emote preparation delay: %.3fms\n", float64(delays.EmotePrep)/float64(time.Millisecond))

	fmt.Printf("\nConfig file: %s\n", cfgPath)
	fmt.Println("Press Ctrl+C to exit")
	fmt.Println()
}

func printConfig(cfg *config.Config, delays timing.Values, cfgPath string) {
	banner(cfg, delays, cfgPath)
}

func handleAutostart(mode string) {
	switch mode {
	case "on":
		if err := autostart.Enable(); err != nil {
			log.Fatalf("Failed to enable autostart: %v", err)
		}
		fmt.Println("Autostart enabled")
	case "off":
		if err := autostart.Disable(); err != nil {
			log.Fatalf("Failed to disable autostart: %v", err)
		}
		fmt.Println("Autostart disabled")
	case "status":
		if autostart.IsEnabled() {
			fmt.Println("Autostart is enabled")
		} else {
			fmt.Println("Autostart is disabled")
		}
	default:
		log.Fatalf("Unknown autostart mode %q (want on, off or status)", mode)
	}
}

func platformName() string {
	switch runtime.GOOS {
	case "darwin":
		return "macOS"
	case "windows":
		return "Windows"
	case "linux":
		return "Linux"
	}
	return runtime.GOOS
}
