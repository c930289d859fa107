// Package audio plays the optional tick and hour chime.
package audio

import (
	"clock3d/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type clip struct {
	sound  rl.Sound
	loaded bool
}

func loadClip(path string, volume float64) clip {
	if path == "" {
		return clip{}
	}
	resolved := utils.ResolveAssetPath(path)
	s := rl.LoadSound(resolved)
	if !rl.IsSoundValid(s) {
		utils.Error("Failed to load sound %s", resolved)
		return clip{}
	}
	rl.SetSoundVolume(s, float32(volume))
	utils.Info("Raylib: Loaded %s (Vol: %.2f)", resolved, volume)
	return clip{sound: s, loaded: true}
}

// AudioManager ticks on every new displayed second and strikes the hour.
type AudioManager struct {
	tick  clip
	chime clip

	clock   Schedule
	strikes int
	device  bool
}

// NewAudioManager loads the given sounds. With neither path set it stays
// silent and never opens the audio device.
func NewAudioManager(tickPath, chimePath string, volume float64) *AudioManager {
	am := &AudioManager{clock: NewSchedule()}
	if tickPath == "" && chimePath == "" {
		return am
	}

	if !rl.IsAudioDeviceReady() {
		rl.InitAudioDevice()
		am.device = true
	}
	am.tick = loadClip(tickPath, volume)
	am.chime = loadClip(chimePath, volume)
	return am
}

// Silent reports whether no sound could be loaded.
func (am *AudioManager) Silent() bool {
	return !am.tick.loaded && !am.chime.loaded
}

// Update is called once per frame with the displayed seconds since midnight.
func (am *AudioManager) Update(secondsOfDay int) {
	if am.Silent() {
		return
	}

	ev := am.clock.Advance(secondsOfDay)
	if ev.Tick && am.tick.loaded {
		rl.PlaySound(am.tick.sound)
	}
	if ev.Strikes > 0 && am.chime.loaded {
		utils.Debug("Striking %d", ev.Strikes)
		am.strikes = ev.Strikes
	}

	if am.strikes > 0 && !rl.IsSoundPlaying(am.chime.sound) {
		rl.PlaySound(am.chime.sound)
		am.strikes--
	}
}

func (am *AudioManager) Close() {
	for _, c := range []*clip{&am.tick, &am.chime} {
		if c.loaded {
			rl.UnloadSound(c.sound)
			c.loaded = false
		}
	}
	if am.device && rl.IsAudioDeviceReady() {
		rl.CloseAudioDevice()
	}
}
