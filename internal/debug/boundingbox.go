package debug

import (
	"math"

	"clock3d/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
)

// Bounds returns the world-space axis-aligned box around a primitive.
func Bounds(p *scene.Primitive, world mgl64.Mat4) (lo, hi mgl64.Vec3) {
	var corners []mgl64.Vec3
	switch p.Shape {
	case scene.ShapeBox:
		hx, hy, hz := p.Length/2, p.Height/2, p.Width/2
		for _, sx := range []float64{-1, 1} {
			for _, sy := range []float64{-1, 1} {
				for _, sz := range []float64{-1, 1} {
					corners = append(corners, mgl64.Vec3{sx * hx, sy * hy, sz * hz})
				}
			}
		}
		m := world.Mul4(p.Transform())
		for i, c := range corners {
			corners[i] = mgl64.TransformCoordinate(c, m)
		}
	case scene.ShapeCylinder:
		start := mgl64.TransformCoordinate(p.Pos, world)
		end := mgl64.TransformCoordinate(p.Pos.Add(p.Axis), world)
		r := mgl64.Vec3{p.Radius, p.Radius, p.Radius}
		corners = []mgl64.Vec3{start.Sub(r), start.Add(r), end.Sub(r), end.Add(r)}
	case scene.ShapeRing:
		c := mgl64.TransformCoordinate(p.Pos, world)
		r := p.Radius + p.Thickness
		ext := mgl64.Vec3{r, r, r}
		corners = []mgl64.Vec3{c.Sub(ext), c.Add(ext)}
	default:
		c := mgl64.TransformCoordinate(p.Pos, world)
		r := math.Max(p.Radius, p.Height/2)
		ext := mgl64.Vec3{r, r, r}
		corners = []mgl64.Vec3{c.Sub(ext), c.Add(ext)}
	}

	lo, hi = corners[0], corners[0]
	for _, c := range corners[1:] {
		for i := 0; i < 3; i++ {
			lo[i] = math.Min(lo[i], c[i])
			hi[i] = math.Max(hi[i], c[i])
		}
	}
	return lo, hi
}

// drawSceneBoundingBoxes outlines pointer parts in yellow and everything
// else in translucent green.
func (d *DebugOverlay) drawSceneBoundingBoxes(root *scene.Frame, camera rl.Camera3D) {
	rl.BeginMode3D(camera)
	root.Walk(func(f *scene.Frame, world mgl64.Mat4) bool {
		col := rl.NewColor(0, 255, 0, 100)
		if f != root {
			col = rl.NewColor(255, 255, 0, 255)
		}
		for _, p := range f.Primitives() {
			if p.Shape == scene.ShapeSphere {
				continue
			}
			lo, hi := Bounds(p, world)
			rl.DrawBoundingBox(rl.NewBoundingBox(toRl(lo), toRl(hi)), col)
		}
		return true
	})
	rl.EndMode3D()
}

func toRl(v mgl64.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X()), float32(v.Y()), float32(v.Z()))
}
