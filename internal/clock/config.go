package clock

import (
	"image/color"
	"strings"
	"time"

	"clock3d/internal/scene"
)

// Pointers is the set of pointers a clock shows.
type Pointers uint8

const (
	HourPointer Pointers = 1 << iota
	MinutePointer
	SecondPointer

	NoPointers  Pointers = 0
	AllPointers          = HourPointer | MinutePointer | SecondPointer
)

// ParsePointers reads a combination of 'h', 'm' and 's'. Other characters
// are ignored.
func ParsePointers(s string) Pointers {
	var p Pointers
	for _, r := range strings.ToLower(s) {
		switch r {
		case 'h':
			p |= HourPointer
		case 'm':
			p |= MinutePointer
		case 's':
			p |= SecondPointer
		}
	}
	return p
}

func (p Pointers) Has(kind Pointer) bool {
	return p&kind.flag() != 0
}

func (p Pointers) String() string {
	var sb strings.Builder
	for _, kind := range pointerKinds {
		if p.Has(kind) {
			sb.WriteByte(kind.Letter())
		}
	}
	return sb.String()
}

// Palette holds one color per clock part. Zero fields take the default.
type Palette struct {
	Ring          color.RGBA
	Back          color.RGBA
	MajorTick     color.RGBA
	MinorTick     color.RGBA
	MinuteDot     color.RGBA
	Numeral       color.RGBA
	HourPointer   color.RGBA
	MinutePointer color.RGBA
	SecondPointer color.RGBA
}

var (
	yellow = color.RGBA{255, 255, 0, 255}
	white  = color.RGBA{255, 255, 255, 255}
	red    = color.RGBA{255, 0, 0, 255}
	blue   = color.RGBA{0, 0, 255, 255}
	gray   = color.RGBA{102, 102, 102, 255}
	black  = color.RGBA{0, 0, 0, 255}
)

func DefaultPalette() Palette {
	return Palette{
		Ring:          yellow,
		Back:          white,
		MajorTick:     red,
		MinorTick:     blue,
		MinuteDot:     gray,
		Numeral:       black,
		HourPointer:   red,
		MinutePointer: blue,
		SecondPointer: gray,
	}
}

func orDefault(c, def color.RGBA) color.RGBA {
	if c == (color.RGBA{}) {
		return def
	}
	return c
}

// WithDefaults fills every unset color from DefaultPalette.
func (p Palette) WithDefaults() Palette {
	def := DefaultPalette()
	return Palette{
		Ring:          orDefault(p.Ring, def.Ring),
		Back:          orDefault(p.Back, def.Back),
		MajorTick:     orDefault(p.MajorTick, def.MajorTick),
		MinorTick:     orDefault(p.MinorTick, def.MinorTick),
		MinuteDot:     orDefault(p.MinuteDot, def.MinuteDot),
		Numeral:       orDefault(p.Numeral, def.Numeral),
		HourPointer:   orDefault(p.HourPointer, def.HourPointer),
		MinutePointer: orDefault(p.MinutePointer, def.MinutePointer),
		SecondPointer: orDefault(p.SecondPointer, def.SecondPointer),
	}
}

func (p Palette) pointer(kind Pointer) color.RGBA {
	switch kind {
	case Hour:
		return p.HourPointer
	case Minute:
		return p.MinutePointer
	default:
		return p.SecondPointer
	}
}

// Config is captured by value when a clock is built.
//
// Start from DefaultConfig: the zero Config shows no pointers. Parent, when
// set, is the frame the clock builds into; otherwise the clock owns a new
// root frame. Location selects the zone for local time (time.Local when
// nil) and Now is the time source for updates without an explicit time.
type Config struct {
	Pointers Pointers
	Palette  Palette
	Parent   *scene.Frame
	Location *time.Location
	Now      func() time.Time
}

func DefaultConfig() Config {
	return Config{
		Pointers: AllPointers,
		Palette:  DefaultPalette(),
	}
}

func (c Config) withDefaults() Config {
	c.Palette = c.Palette.WithDefaults()
	if c.Location == nil {
		c.Location = time.Local
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}
