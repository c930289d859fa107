// Package config loads the clock3d settings file and watches it for edits.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"clock3d/internal/clock"
	"clock3d/internal/utils"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
)

// Colors holds one color string per clock part. Empty means default.
type Colors struct {
	Ring          string `toml:"ring,omitempty"`
	Back          string `toml:"back,omitempty"`
	MajorTick     string `toml:"major_tick,omitempty"`
	MinorTick     string `toml:"minor_tick,omitempty"`
	MinuteDot     string `toml:"minute_dot,omitempty"`
	Numeral       string `toml:"numeral,omitempty"`
	HourPointer   string `toml:"hour_pointer,omitempty"`
	MinutePointer string `toml:"minute_pointer,omitempty"`
	SecondPointer string `toml:"second_pointer,omitempty"`
}

// Settings is the content of clock3d.toml.
type Settings struct {
	Variant  string  `toml:"variant"`
	Pointers string  `toml:"pointers"`
	UTC      bool    `toml:"utc"`
	Timezone string  `toml:"timezone"`
	FPS      int     `toml:"fps"`
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
	Tilt     float64 `toml:"tilt"`
	Parallax float64 `toml:"parallax"`
	Dial     string  `toml:"dial"`
	Tick     string  `toml:"tick"`
	Chime    string  `toml:"chime"`
	LogLevel string  `toml:"log_level"`
	Colors   Colors  `toml:"colors"`
}

func Default() Settings {
	return Settings{
		Variant:  clock.VariantAnalog,
		Pointers: clock.AllPointers.String(),
		FPS:      60,
		Parallax: 0.15,
		LogLevel: utils.LevelWarn.String(),
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values; unknown keys are errors.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	return Parse(data)
}

// Parse decodes TOML settings over the defaults.
func Parse(data []byte) (Settings, error) {
	s := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return s, fmt.Errorf("unknown settings: %s", strict.String())
		}
		return s, fmt.Errorf("parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Save writes s as TOML.
func (s Settings) Save(path string) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate reports every invalid field at once.
func (s Settings) Validate() error {
	var errs []error

	switch s.Variant {
	case "", clock.VariantAnalog:
	default:
		errs = append(errs, fmt.Errorf("variant: %w: %q", clock.ErrUnsupportedVariant, s.Variant))
	}
	if s.FPS < 0 {
		errs = append(errs, fmt.Errorf("fps: must not be negative, got %d", s.FPS))
	}
	if s.Width < 0 || s.Height < 0 {
		errs = append(errs, fmt.Errorf("size: must not be negative, got %dx%d", s.Width, s.Height))
	}
	if s.Parallax < 0 {
		errs = append(errs, fmt.Errorf("parallax: must not be negative, got %g", s.Parallax))
	}
	if _, err := s.Location(); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if s.LogLevel != "" {
		if _, err := utils.ParseLevel(s.LogLevel); err != nil {
			errs = append(errs, fmt.Errorf("log_level: %w", err))
		}
	}
	if _, err := s.Colors.Palette(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Location resolves Timezone. Empty means the system zone.
func (s Settings) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(s.Timezone)
}

// ClockConfig converts the settings into a widget configuration.
func (s Settings) ClockConfig() (clock.Config, error) {
	cfg := clock.DefaultConfig()
	cfg.Pointers = clock.ParsePointers(s.Pointers)

	palette, err := s.Colors.Palette()
	if err != nil {
		return cfg, err
	}
	cfg.Palette = palette

	loc, err := s.Location()
	if err != nil {
		return cfg, fmt.Errorf("timezone: %w", err)
	}
	cfg.Location = loc
	return cfg, nil
}

// Palette parses every color. Unset colors stay zero so the widget fills
// in its defaults.
func (c Colors) Palette() (clock.Palette, error) {
	var p clock.Palette
	fields := []struct {
		key string
		val string
		dst *color.RGBA
	}{
		{"ring", c.Ring, &p.Ring},
		{"back", c.Back, &p.Back},
		{"major_tick", c.MajorTick, &p.MajorTick},
		{"minor_tick", c.MinorTick, &p.MinorTick},
		{"minute_dot", c.MinuteDot, &p.MinuteDot},
		{"numeral", c.Numeral, &p.Numeral},
		{"hour_pointer", c.HourPointer, &p.HourPointer},
		{"minute_pointer", c.MinutePointer, &p.MinutePointer},
		{"second_pointer", c.SecondPointer, &p.SecondPointer},
	}

	for _, f := range fields {
		if f.val == "" {
			continue
		}
		rgba, err := ParseColor(f.val)
		if err != nil {
			return p, fmt.Errorf("colors.%s: %w", f.key, err)
		}
		*f.dst = rgba
	}
	return p, nil
}

// ParseColor accepts SVG color names ("gold", "slategray") and hex colors
// in "#rgb" or "#rrggbb" form, with or without the leading '#'.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}

	hex := s
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 4 && len(hex) != 7 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}
