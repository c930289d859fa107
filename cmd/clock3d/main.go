package main

import (
	"flag"
	"os"

	"clock3d/internal/config"
	"clock3d/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	configPath := flag.String("config", "", "Path to a clock3d.toml settings file (default ~/.config/clock3d/clock3d.toml)")
	watch := flag.Bool("watch", true, "Reload the settings file when it changes")
	writeConfig := flag.String("write-config", "", "Write the effective settings to this file and exit")

	variant := flag.String("variant", "", "Clock variant (only \"analog\")")
	pointers := flag.String("pointers", "", "Pointers to show: any combination of h, m and s")
	utc := flag.Bool("utc", false, "Show UTC instead of local time")
	tz := flag.String("tz", "", "IANA time zone to show, e.g. Europe/Berlin")
	at := flag.String("at", "", "Show a fixed time: RFC 3339, HH:MM[:SS] or Unix seconds")

	fps := flag.Int("fps", 0, "Target frame rate")
	width := flag.Int("width", 0, "Window width (default: X screen height)")
	height := flag.Int("height", 0, "Window height (default: X screen height)")
	tilt := flag.Float64("tilt", 0, "Camera elevation in degrees")
	parallax := flag.Float64("parallax", 0, "Camera sway following the pointer, 0 disables")

	dial := flag.String("dial", "", "Dial image: .png, .jpg, .webp, .tex or archive.pkg:entry")
	tick := flag.String("tick", "", "Sound played every second")
	chime := flag.String("chime", "", "Sound struck on the hour")

	debugFlag := flag.Bool("debug", false, "Enable verbose debug logging and the overlay")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// flags given on the command line win over the settings file, also
	// after a reload
	overrides := func(s *config.Settings) {
		if set["variant"] {
			s.Variant = *variant
		}
		if set["pointers"] {
			s.Pointers = *pointers
		}
		if set["utc"] {
			s.UTC = *utc
		}
		if set["tz"] {
			s.Timezone = *tz
		}
		if set["fps"] {
			s.FPS = *fps
		}
		if set["width"] {
			s.Width = *width
		}
		if set["height"] {
			s.Height = *height
		}
		if set["tilt"] {
			s.Tilt = *tilt
		}
		if set["parallax"] {
			s.Parallax = *parallax
		}
		if set["dial"] {
			s.Dial = *dial
		}
		if set["tick"] {
			s.Tick = *tick
		}
		if set["chime"] {
			s.Chime = *chime
		}
		if set["log-level"] {
			s.LogLevel = *logLevel
		}
		if *debugFlag {
			s.LogLevel = utils.LevelDebug.String()
		}
	}

	path := *configPath
	if path == "" {
		path = utils.DefaultConfigPath()
	}

	settings := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			utils.Error("Failed to load settings %s: %v", path, err)
			os.Exit(1)
		}
		settings = loaded
	}
	overrides(&settings)
	if err := settings.Validate(); err != nil {
		utils.Error("Invalid settings: %v", err)
		os.Exit(1)
	}
	applyLogLevel(settings.LogLevel)
	utils.ShowDebugUI = *debugFlag

	if *writeConfig != "" {
		if err := settings.Save(*writeConfig); err != nil {
			utils.Error("Failed to write settings: %v", err)
			os.Exit(1)
		}
		utils.Info("Settings written to %s", *writeConfig)
		return
	}

	loc, _ := settings.Location()
	fixed := parseAt(*at, loc)

	utils.Info("--- clock3d start ---")
	utils.InstallRaylibLogger()
	defer utils.CloseX11()

	w, h := windowSize(settings.Width, settings.Height)
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(int32(w), int32(h), "clock3d")
	defer rl.CloseWindow()

	window, err := NewWindow(settings, overrides, fixed)
	if err != nil {
		utils.Error("Failed to build clock: %v", err)
		os.Exit(1)
	}
	defer window.Close()

	if path != "" && *watch {
		watcher, err := config.Watch(path)
		if err != nil {
			utils.Warn("Settings will not reload: %v", err)
		} else {
			window.watcher = watcher
		}
	}

	utils.Info("Starting render loop...")
	window.Run()
}

func applyLogLevel(name string) {
	if name == "" {
		return
	}
	level, err := utils.ParseLevel(name)
	if err != nil {
		utils.Warn("%v", err)
		return
	}
	utils.CurrentLevel = level
}

// windowSize fills unset dimensions with a square as tall as half the X
// screen, or 800 pixels without a display connection.
func windowSize(w, h int) (int, int) {
	side := 800
	if _, sh, err := utils.ScreenSize(); err == nil && sh > 0 {
		side = sh / 2
	} else if err != nil {
		utils.Debug("X11 screen size unavailable: %v", err)
	}
	if w <= 0 {
		w = side
	}
	if h <= 0 {
		h = side
	}
	return w, h
}
