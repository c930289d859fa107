package debug

import (
	"image/color"
	"math"
	"testing"
	"time"

	"clock3d/internal/clock"
	"clock3d/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAngleLines(t *testing.T) {
	lines := AngleLines(map[clock.Pointer]float64{
		clock.Second: math.Pi,
		clock.Hour:   math.Pi / 2,
	})
	assert.Equal(t, []string{"hour:  90.00°", "second: 180.00°"}, lines)
	assert.Empty(t, AngleLines(nil))
}

func TestCountLines(t *testing.T) {
	w := clock.New(clock.DefaultConfig())
	lines := CountLines(w.Frame())

	assert.Contains(t, lines, "dot: 48")
	assert.Contains(t, lines, "numeral: 12")
	assert.Contains(t, lines, "tick.major: 4")
	assert.Contains(t, lines, "hub: 3")
	assert.IsIncreasing(t, lines)
}

func TestBoundsFollowsFrame(t *testing.T) {
	root := scene.NewFrame(nil, "root")
	f := scene.NewFrame(root, "turned")
	// quarter turn: local +X now points along world -Y
	f.SetOrientation(mgl64.Vec3{0, -1, 0}, mgl64.Vec3{1, 0, 0})
	box := scene.AddBox(f, "arm", mgl64.Vec3{0.5, 0, 0}, scene.XAxis, scene.YAxis, 1, 0.1, 0.2, color.RGBA{A: 255})

	var world mgl64.Mat4
	root.Walk(func(fr *scene.Frame, m mgl64.Mat4) bool {
		if fr == f {
			world = m
		}
		return true
	})

	lo, hi := Bounds(box, world)
	want := mgl64.Vec3{-0.05, -1, -0.1}
	require.InDeltaSlice(t, want[:], lo[:], 1e-9, "lo %v", lo)
	want = mgl64.Vec3{0.05, 0, 0.1}
	require.InDeltaSlice(t, want[:], hi[:], 1e-9, "hi %v", hi)
}

func TestClockLines(t *testing.T) {
	cet := time.FixedZone("CET", 3600)
	s := Snapshot{
		Shown:    time.Date(2024, 3, 1, 13, 5, 9, 0, cet),
		Pointers: clock.HourPointer | clock.SecondPointer,
		Angles:   map[clock.Pointer]float64{clock.Hour: math.Pi},
	}
	assert.Equal(t, []string{`Shown: 13:05:09 CET`, `Pointers: "hs"`, "hour: 180.00°"}, ClockLines(s))

	s.UTC = true
	assert.Equal(t, "Shown: 12:05:09 UTC", ClockLines(s)[0])
}

func TestSceneLines(t *testing.T) {
	assert.Empty(t, SceneLines(Snapshot{}))

	w := clock.New(clock.Config{Pointers: clock.HourPointer})
	lines := SceneLines(Snapshot{
		Root:  w.Frame(),
		Drawn: map[scene.Shape]int{scene.ShapeBox: 61, scene.ShapeText: 0},
	})
	assert.Contains(t, lines, "hub: 1")
	assert.Equal(t, "drawn box: 61", lines[len(lines)-1])
}

func TestToggleHit(t *testing.T) {
	box := rl.NewRectangle(15, 12, 12, 12)
	assert.True(t, toggleHit(box, rl.NewVector2(20, 18)))
	assert.True(t, toggleHit(box, rl.NewVector2(100, 18)), "label area")
	assert.False(t, toggleHit(box, rl.NewVector2(20, 40)))
	assert.False(t, toggleHit(box, rl.NewVector2(200, 18)))
}
