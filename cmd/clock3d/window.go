package main

import (
	"time"

	"clock3d/internal/audio"
	"clock3d/internal/clock"
	"clock3d/internal/config"
	"clock3d/internal/convert"
	"clock3d/internal/debug"
	"clock3d/internal/render"
	"clock3d/internal/scene"
	"clock3d/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Window struct {
	settings  config.Settings
	overrides func(*config.Settings)
	watcher   *config.Watcher

	world        *scene.Frame
	widget       *clock.Widget
	renderer     *render.Renderer
	audioManager *audio.AudioManager
	debugOverlay *debug.DebugOverlay
	font         rl.Font

	fixed          time.Time
	shown          time.Time
	mouseX, mouseY float64
}

func NewWindow(settings config.Settings, overrides func(*config.Settings), fixed time.Time) (*Window, error) {
	window := &Window{
		settings:  settings,
		overrides: overrides,
		world:     scene.NewFrame(nil, "world"),
		fixed:     fixed,
	}

	if path := utils.FindFont(); path != "" {
		window.font = rl.LoadFontEx(path, 96, nil)
		rl.SetTextureFilter(window.font.Texture, rl.FilterBilinear)
	}
	window.debugOverlay = debug.NewDebugOverlay(window.font)

	if err := window.apply(settings); err != nil {
		window.Close()
		return nil, err
	}
	return window, nil
}

// apply builds the clock, renderer and sounds for s. The previous clock
// stays in place if the new one cannot be built.
func (window *Window) apply(s config.Settings) error {
	cfg, err := s.ClockConfig()
	if err != nil {
		return err
	}
	widget, err := clock.Create(s.Variant, cfg)
	if err != nil {
		return err
	}

	if window.widget != nil {
		window.widget.Release()
	}
	window.widget = widget
	widget.Frame().Attach(window.world)

	// pointers sit at 12 until the first update
	window.shown = window.displayTime()
	widget.Update(window.shown, s.UTC)

	old := window.settings
	first := window.renderer == nil
	window.settings = s

	rl.SetTargetFPS(int32(s.FPS))

	if first || old.Tilt != s.Tilt || old.Dial != s.Dial {
		window.rebuildRenderer(s)
	}
	if first || old.Tick != s.Tick || old.Chime != s.Chime {
		if window.audioManager != nil {
			window.audioManager.Close()
		}
		window.audioManager = audio.NewAudioManager(s.Tick, s.Chime, 1.0)
	}

	utils.Info("Clock built: variant=%s pointers=%q utc=%v zone=%s", s.Variant, cfg.Pointers, s.UTC, cfg.Location)
	return nil
}

func (window *Window) rebuildRenderer(s config.Settings) {
	if window.renderer != nil {
		window.renderer.Close()
	}
	opts := render.DefaultOptions()
	opts.Tilt = s.Tilt
	opts.Font = window.font
	window.renderer = render.NewRenderer(opts)

	if s.Dial == "" {
		return
	}
	img, err := convert.LoadDialImage(s.Dial)
	if err != nil {
		utils.Error("Failed to load dial image: %v", err)
		return
	}
	rlImg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	window.renderer.BindTexture(clock.NameBack, tex)
}

func (window *Window) displayTime() time.Time {
	if !window.fixed.IsZero() {
		return window.fixed
	}
	return time.Now()
}

func (window *Window) Run() {
	for !rl.WindowShouldClose() {
		window.Update()

		rl.BeginDrawing()
		window.Draw()
		rl.EndDrawing()
	}
}

func (window *Window) Update() {
	if window.watcher != nil {
		if s, ok := window.watcher.Poll(); ok {
			window.reload(s)
		}
	}

	window.shown = window.displayTime()
	window.widget.Update(window.shown, window.settings.UTC)

	cfg := window.widget.Config()
	window.audioManager.Update(clock.SecondsOfDay(window.shown, window.settings.UTC, cfg.Location))

	if window.settings.Parallax > 0 {
		window.updateMouse()
		window.renderer.UpdateParallax(window.mouseX, window.mouseY, window.settings.Parallax)
	}

	if rl.IsKeyPressed(rl.KeyF8) {
		utils.ShowDebugUI = !utils.ShowDebugUI
	}
	if utils.ShowDebugUI {
		window.debugOverlay.Update()
	}
}

func (window *Window) reload(s config.Settings) {
	window.overrides(&s)
	if err := s.Validate(); err != nil {
		utils.Warn("Keeping previous settings: %v", err)
		return
	}
	applyLogLevel(s.LogLevel)
	if err := window.apply(s); err != nil {
		utils.Warn("Keeping previous clock: %v", err)
	}
}

// updateMouse stores the pointer in normalized coordinates (-1 to 1). While
// unfocused the window gets no mouse events, so the X root pointer is used
// relative to the whole screen.
func (window *Window) updateMouse() {
	if rl.IsWindowFocused() {
		mPos := rl.GetMousePosition()
		window.mouseX = float64(mPos.X)/float64(rl.GetScreenWidth())*2 - 1
		window.mouseY = float64(mPos.Y)/float64(rl.GetScreenHeight())*2 - 1
		return
	}

	x, y, err := utils.GlobalPointer()
	if err != nil {
		return
	}
	sw, sh, err := utils.ScreenSize()
	if err != nil || sw == 0 || sh == 0 {
		return
	}
	window.mouseX = float64(x)/float64(sw)*2 - 1
	window.mouseY = float64(y)/float64(sh)*2 - 1
}

func (window *Window) Draw() {
	window.renderer.Render(window.world)

	if utils.ShowDebugUI {
		window.debugOverlay.Draw(debug.Snapshot{
			Shown:    window.shown.In(window.widget.Config().Location),
			UTC:      window.settings.UTC,
			Pointers: window.widget.Pointers(),
			Angles:   window.widget.Angles(),
			Root:     window.world,
			Drawn:    window.renderer.Drawn,
			Camera:   window.renderer.Camera(),
		})
	}
}

func (window *Window) Close() {
	if window.watcher != nil {
		window.watcher.Close()
	}
	if window.widget != nil {
		window.widget.Release()
	}
	if window.renderer != nil {
		window.renderer.Close()
	}
	if window.audioManager != nil {
		window.audioManager.Close()
	}
	if window.font.BaseSize > 0 {
		rl.UnloadFont(window.font)
	}
}
