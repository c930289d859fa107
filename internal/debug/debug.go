// Package debug draws the F8 overlay: timing, the displayed time and the
// state of the clock's scene.
package debug

import (
	"fmt"
	"math"
	"runtime"
	"sort"
	"time"

	"clock3d/internal/clock"
	"clock3d/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
)

// Snapshot is what the overlay shows for one frame.
type Snapshot struct {
	Shown    time.Time
	UTC      bool
	Pointers clock.Pointers
	Angles   map[clock.Pointer]float64
	Root     *scene.Frame
	Drawn    map[scene.Shape]int
	Camera   rl.Camera3D
}

type DebugOverlay struct {
	ShowBoundingBoxes bool

	fontHeight float32
	lineHeight float32
	panelWidth int32

	prevLeftMouseButton bool
	mouse               rl.Vector2
	clicked             bool

	font rl.Font

	lastUpdateTime time.Time
	memStats       runtime.MemStats
}

func NewDebugOverlay(font rl.Font) *DebugOverlay {
	d := &DebugOverlay{
		font:           font,
		lastUpdateTime: time.Now(),
	}
	d.updateLayout()
	runtime.ReadMemStats(&d.memStats)
	return d
}

func (d *DebugOverlay) updateLayout() {
	scale := math.Max(1.0, float64(rl.GetScreenHeight())/1080.0)
	d.fontHeight = float32(16 * scale)
	d.lineHeight = float32(22 * scale)
	d.panelWidth = int32(340 * scale)
}

func (d *DebugOverlay) Update() {
	d.updateLayout()

	now := time.Now()
	if now.Sub(d.lastUpdateTime) >= time.Second {
		d.lastUpdateTime = now
		runtime.ReadMemStats(&d.memStats)
	}

	d.mouse = rl.GetMousePosition()
	leftPressed := rl.IsMouseButtonDown(rl.MouseLeftButton)
	d.clicked = leftPressed && !d.prevLeftMouseButton
	d.prevLeftMouseButton = leftPressed
}

func (d *DebugOverlay) Draw(s Snapshot) {
	if d.ShowBoundingBoxes && s.Root != nil {
		d.drawSceneBoundingBoxes(s.Root, s.Camera)
	}

	rl.DrawRectangle(0, 0, d.panelWidth, int32(rl.GetScreenHeight()), rl.NewColor(0, 0, 0, 180))

	p := &panel{
		font:       d.font,
		fontHeight: d.fontHeight,
		lineHeight: d.lineHeight,
		x:          10,
		y:          10,
		mouse:      d.mouse,
		clicked:    d.clicked,
	}
	p.section("Timing:", []string{
		fmt.Sprintf("FPS: %d", rl.GetFPS()),
		fmt.Sprintf("Frame Time: %.2f ms", rl.GetFrameTime()*1000),
		fmt.Sprintf("Heap Alloc: %.2f MB", float64(d.memStats.HeapAlloc)/1024/1024),
	})
	p.section("Clock:", ClockLines(s))
	p.section("Scene:", SceneLines(s))
	p.toggle("Show Bounding Boxes", &d.ShowBoundingBoxes)
}

// ClockLines describes the displayed time, the pointer set and each
// pointer's angle.
func ClockLines(s Snapshot) []string {
	shown := s.Shown
	if s.UTC {
		shown = shown.UTC()
	}
	zone, _ := shown.Zone()
	lines := []string{
		fmt.Sprintf("Shown: %s %s", shown.Format("15:04:05"), zone),
		fmt.Sprintf("Pointers: %q", s.Pointers.String()),
	}
	return append(lines, AngleLines(s.Angles)...)
}

// SceneLines lists primitive counts under the root, then what the renderer
// drew per shape in the last frame.
func SceneLines(s Snapshot) []string {
	var lines []string
	if s.Root != nil {
		lines = CountLines(s.Root)
	}
	for _, shape := range []scene.Shape{scene.ShapeRing, scene.ShapeCylinder, scene.ShapeBox, scene.ShapeSphere, scene.ShapeText} {
		if n := s.Drawn[shape]; n > 0 {
			lines = append(lines, fmt.Sprintf("drawn %s: %d", shape, n))
		}
	}
	return lines
}

// AngleLines formats pointer angles in degrees, hour first.
func AngleLines(angles map[clock.Pointer]float64) []string {
	var lines []string
	for _, kind := range []clock.Pointer{clock.Hour, clock.Minute, clock.Second} {
		a, ok := angles[kind]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %6.2f°", kind, mgl64.RadToDeg(a)))
	}
	return lines
}

// CountLines lists primitive counts per name, sorted by name.
func CountLines(root *scene.Frame) []string {
	counts := map[string]int{}
	root.Count(func(p *scene.Primitive) bool {
		counts[p.Name]++
		return false
	})

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("%s: %d", name, counts[name])
	}
	return lines
}
