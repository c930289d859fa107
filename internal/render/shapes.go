package render

import (
	"clock3d/internal/scene"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
)

// drawRing tessellates the rim into short cylinders. The ring's Axis is its
// normal, so the circle lies in the primitive's local YZ plane.
func (r *Renderer) drawRing(p *scene.Primitive, world mgl64.Mat4) {
	m := world.Mul4(p.Transform())
	n := r.opts.RingSegments
	radius := float32(p.Radius)
	step := 2 * math32.Pi / float32(n)

	point := func(i int) rl.Vector3 {
		s, c := math32.Sincos(step * float32(i))
		local := mgl64.Vec3{0, float64(radius * c), float64(radius * s)}
		return vec3(mgl64.TransformCoordinate(local, m))
	}

	thickness := float32(p.Thickness)
	prev := point(0)
	for i := 1; i <= n; i++ {
		next := point(i)
		rl.DrawCylinderEx(prev, next, thickness, thickness, 8, p.Color)
		prev = next
	}
}

// drawCylinder draws from Pos to Pos+Axis.
func (r *Renderer) drawCylinder(p *scene.Primitive, world mgl64.Mat4) {
	start := mgl64.TransformCoordinate(p.Pos, world)
	end := mgl64.TransformCoordinate(p.Pos.Add(p.Axis), world)
	radius := float32(p.Radius)
	rl.DrawCylinderEx(vec3(start), vec3(end), radius, radius, r.opts.Sides, p.Color)
}

// drawBox loads the primitive's world transform so the cube lines up with
// its axis and up vectors.
func (r *Renderer) drawBox(p *scene.Primitive, world mgl64.Mat4) {
	rl.PushMatrix()
	rl.MultMatrix(matrix(world.Mul4(p.Transform())))
	rl.DrawCube(rl.NewVector3(0, 0, 0), float32(p.Length), float32(p.Height), float32(p.Width), p.Color)
	rl.PopMatrix()
}

func (r *Renderer) drawSphere(p *scene.Primitive, world mgl64.Mat4) {
	pos := mgl64.TransformCoordinate(p.Pos, world)
	rl.DrawSphereEx(vec3(pos), float32(p.Radius), 6, 8, p.Color)
}

// drawDial lays a textured plane just in front of the cylinder's far face.
func (r *Renderer) drawDial(d *dial, p *scene.Primitive, world mgl64.Mat4) {
	if !rl.IsTextureValid(d.texture) {
		return
	}
	if !d.loaded {
		size := float32(2 * p.Radius)
		d.model = rl.LoadModelFromMesh(rl.GenMeshPlane(size, size, 1, 1))
		rl.SetMaterialTexture(d.model.Materials, rl.MapDiffuse, d.texture)
		d.loaded = true
	}

	normal := p.Axis.Normalize()
	up := p.Up.Sub(normal.Mul(p.Up.Dot(normal))).Normalize()
	front := p.Pos.Add(p.Axis).Add(normal.Mul(1e-3))
	// planes are generated facing +Y with image rows along +Z
	orient := mgl64.Mat3FromCols(up.Cross(normal), normal, up.Mul(-1)).Mat4()
	m := world.Mul4(mgl64.Translate3D(front.X(), front.Y(), front.Z())).Mul4(orient)
	d.model.Transform = matrix(m)
	rl.DrawModel(d.model, rl.NewVector3(0, 0, 0), 1, rl.White)
}

// drawLabel centers text on its projected position. The font size is the
// on-screen length of the label height.
func (r *Renderer) drawLabel(l label) {
	base := rl.GetWorldToScreen(vec3(l.pos), r.camera)
	top := rl.GetWorldToScreen(vec3(l.top), r.camera)
	size := math32.Hypot(top.X-base.X, top.Y-base.Y)
	if size < 1 {
		return
	}

	font := r.opts.Font
	if font.BaseSize == 0 {
		font = rl.GetFontDefault()
	}
	spacing := size / 10
	dim := rl.MeasureTextEx(font, l.text, size, spacing)
	pos := rl.NewVector2(base.X-dim.X/2, base.Y-size)
	rl.DrawTextEx(font, l.text, pos, size, spacing, l.color)
}
