package clock

import (
	"math"
	"strconv"

	"clock3d/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	minutePositions = 60

	ringRadius    = 1.0
	ringThickness = 0.05

	backZ     = -0.03
	backDepth = 0.02

	tickRadius      = 0.99
	tickLength      = 0.14
	tickWidth       = 0.12
	majorTickHeight = 0.12
	minorTickHeight = 0.06

	numeralRadius = 0.8
	numeralDrop   = 0.06
	numeralHeight = 0.12
	numeralDepth  = 0.02

	dotRadius = 0.01
	dotZ      = 0.05
)

// Primitive names used for the face.
const (
	NameRing      = "ring"
	NameBack      = "back"
	NameMajorTick = "tick.major"
	NameMinorTick = "tick.minor"
	NameNumeral   = "numeral"
	NameDot       = "dot"
)

// NumeralLabel is the dial label for hour position j (0..11).
func NumeralLabel(j int) string {
	if j == 0 {
		return "12"
	}
	return strconv.Itoa(j)
}

// buildFace adds the static dial under root and returns what it created.
func buildFace(root *scene.Frame, p Palette) []*scene.Primitive {
	var out []*scene.Primitive

	out = append(out,
		scene.AddRing(root, NameRing, mgl64.Vec3{}, scene.ZAxis, ringRadius, ringThickness, p.Ring),
		scene.AddCylinder(root, NameBack, mgl64.Vec3{0, 0, backZ}, mgl64.Vec3{0, 0, backDepth}, ringRadius, p.Back),
	)

	for i := 0; i < minutePositions; i++ {
		// clockwise from 12 o'clock
		a := 2 * math.Pi * float64(i) / minutePositions

		if i%5 != 0 {
			dot := scene.AddSphere(root, NameDot, mgl64.Vec3{0, ringRadius, dotZ}, dotRadius, p.MinuteDot)
			out = append(out, dot.Rotate(-a, scene.ZAxis, mgl64.Vec3{}))
			continue
		}

		j := i / 5
		name, height, c := NameMinorTick, minorTickHeight, p.MinorTick
		if j%3 == 0 {
			name, height, c = NameMajorTick, majorTickHeight, p.MajorTick
		}

		tick := scene.AddBox(root, name,
			mgl64.Vec3{0, tickRadius, 0},
			scene.YAxis, mgl64.Vec3{-1, 0, 0},
			tickLength, height, tickWidth, c)
		tick.Rotate(-a, scene.ZAxis, mgl64.Vec3{})

		pos := mgl64.Vec3{numeralRadius * math.Sin(a), numeralRadius*math.Cos(a) - numeralDrop, 0}
		label := scene.AddText(root, NameNumeral, pos, NumeralLabel(j), numeralHeight, numeralDepth, p.Numeral)

		out = append(out, tick, label)
	}

	return out
}
