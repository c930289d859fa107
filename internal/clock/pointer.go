package clock

import (
	"image/color"

	"clock3d/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
)

// Pointer identifies one of the clock's hands.
type Pointer int

const (
	Hour Pointer = iota
	Minute
	Second
)

var pointerKinds = [...]Pointer{Hour, Minute, Second}

func (p Pointer) String() string {
	switch p {
	case Hour:
		return "hour"
	case Minute:
		return "minute"
	case Second:
		return "second"
	}
	return "unknown"
}

// Letter is the pointer's letter in a pointer set string, or '?' for an
// unknown pointer.
func (p Pointer) Letter() byte {
	switch p {
	case Hour:
		return 'h'
	case Minute:
		return 'm'
	case Second:
		return 's'
	}
	return '?'
}

func (p Pointer) flag() Pointers {
	return HourPointer << p
}

// Period is the number of seconds for one full turn of the pointer. The
// hour pointer turns twice a day on a 12-hour dial.
func (p Pointer) Period() int {
	switch p {
	case Hour:
		return 12 * 3600
	case Minute:
		return 3600
	default:
		return 60
	}
}

// TurnsPerSecond is the pointer's angular velocity in full turns per second.
func (p Pointer) TurnsPerSecond() float64 {
	switch p {
	case Hour:
		return 2.0 / 86400.0
	case Minute:
		return 1.0 / 3600.0
	default:
		return 1.0 / 60.0
	}
}

// pointerProfile keeps overlapping pointers distinguishable: each sits at
// its own depth, the second pointer is the thinnest with the smallest hub.
type pointerProfile struct {
	hubZ      float64
	hubRadius float64
	length    float64
	thickness float64
	armZ      float64
}

var pointerProfiles = [...]pointerProfile{
	Hour:   {hubZ: -0.01, hubRadius: 0.08, length: 0.5, thickness: 0.04, armZ: 0.005},
	Minute: {hubZ: 0.01, hubRadius: 0.06, length: 0.7, thickness: 0.03, armZ: 0.025},
	Second: {hubZ: 0.03, hubRadius: 0.04, length: 0.8, thickness: 0.02, armZ: 0.045},
}

const (
	hubDepth = 0.02
	armWidth = 0.01
)

// buildPointer adds a frame for kind under root. The arm lies along the
// frame's local +X, and the frame starts at the 12 o'clock orientation.
func buildPointer(root *scene.Frame, kind Pointer, c color.RGBA) *scene.Frame {
	prof := pointerProfiles[kind]

	f := scene.NewFrame(root, "pointer."+kind.String())
	axis, up := Orientation(0)
	f.SetOrientation(axis, up)

	scene.AddCylinder(f, "hub", mgl64.Vec3{0, 0, prof.hubZ}, mgl64.Vec3{0, 0, hubDepth}, prof.hubRadius, c)
	scene.AddBox(f, "arm",
		mgl64.Vec3{prof.length / 2, 0, prof.armZ},
		scene.XAxis, scene.YAxis,
		prof.length, prof.thickness, armWidth, c)

	return f
}
