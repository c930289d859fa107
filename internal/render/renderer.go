// Package render draws a scene.Frame tree with raylib.
package render

import (
	"image/color"
	"math"

	"clock3d/internal/scene"
	"clock3d/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
)

// Options configures the camera and the drawing style.
type Options struct {
	// Distance from the camera to the scene origin.
	Distance float64
	// Fovy is the vertical field of view in degrees.
	Fovy float32
	// Tilt raises the camera above the dial plane, in degrees.
	Tilt       float64
	Background color.RGBA
	// Font draws text primitives. The raylib default font is used when unset.
	Font         rl.Font
	RingSegments int
	Sides        int32
}

func DefaultOptions() Options {
	return Options{
		Distance:     3.2,
		Fovy:         45,
		Tilt:         0,
		Background:   color.RGBA{30, 30, 36, 255},
		RingSegments: 96,
		Sides:        24,
	}
}

type label struct {
	text   string
	pos    mgl64.Vec3
	top    mgl64.Vec3
	color  color.RGBA
	height float64
}

// dial is a textured plane laid over the front face of a named cylinder.
type dial struct {
	texture rl.Texture2D
	model   rl.Model
	loaded  bool
}

// Renderer handles 3D rendering of a scene tree.
type Renderer struct {
	opts   Options
	camera rl.Camera3D
	eye    mgl64.Vec3

	ParallaxX float64
	ParallaxY float64

	labels []label
	dials  map[string]*dial

	// Drawn counts primitives per shape in the last frame.
	Drawn map[scene.Shape]int
}

func NewRenderer(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.Distance <= 0 {
		opts.Distance = def.Distance
	}
	if opts.Fovy <= 0 {
		opts.Fovy = def.Fovy
	}
	if opts.RingSegments < 3 {
		opts.RingSegments = def.RingSegments
	}
	if opts.Sides < 3 {
		opts.Sides = def.Sides
	}

	r := &Renderer{
		opts:  opts,
		eye:   eyePosition(opts.Distance, opts.Tilt),
		dials: make(map[string]*dial),
		Drawn: make(map[scene.Shape]int),
	}
	r.camera = rl.NewCamera3D(vec3(r.eye), rl.NewVector3(0, 0, 0), rl.NewVector3(0, 1, 0), opts.Fovy, rl.CameraPerspective)
	return r
}

// eyePosition places the camera on the +Z side, raised by tilt degrees.
func eyePosition(distance, tilt float64) mgl64.Vec3 {
	rad := mgl64.DegToRad(tilt)
	return mgl64.Vec3{0, distance * math.Sin(rad), distance * math.Cos(rad)}
}

// UpdateParallax sways the camera from normalized pointer coordinates
// (-1 to 1).
func (r *Renderer) UpdateParallax(mouseX, mouseY, amount float64) {
	r.ParallaxX = mouseX * amount
	r.ParallaxY = -mouseY * amount
	r.camera.Position = vec3(r.eye.Add(mgl64.Vec3{r.ParallaxX, r.ParallaxY, 0}))
}

func (r *Renderer) Camera() rl.Camera3D { return r.camera }

// BindTexture draws tex on the front face of every cylinder primitive named
// name. The renderer owns the texture from then on.
func (r *Renderer) BindTexture(name string, tex rl.Texture2D) {
	if old, ok := r.dials[name]; ok {
		old.unload()
	}
	r.dials[name] = &dial{texture: tex}
	utils.Debug("Bound %dx%d texture to %q", tex.Width, tex.Height, name)
}

// Render draws root and everything below it. Call between BeginDrawing and
// EndDrawing.
func (r *Renderer) Render(root *scene.Frame) {
	rl.ClearBackground(r.opts.Background)

	r.labels = r.labels[:0]
	for k := range r.Drawn {
		delete(r.Drawn, k)
	}

	rl.BeginMode3D(r.camera)
	root.Walk(func(f *scene.Frame, world mgl64.Mat4) bool {
		for _, p := range f.Primitives() {
			r.renderPrimitive(p, world)
		}
		return true
	})
	rl.EndMode3D()

	for _, l := range r.labels {
		r.drawLabel(l)
	}
}

func (r *Renderer) renderPrimitive(p *scene.Primitive, world mgl64.Mat4) {
	switch p.Shape {
	case scene.ShapeRing:
		r.drawRing(p, world)
	case scene.ShapeCylinder:
		r.drawCylinder(p, world)
		if d, ok := r.dials[p.Name]; ok {
			r.drawDial(d, p, world)
		}
	case scene.ShapeBox:
		r.drawBox(p, world)
	case scene.ShapeSphere:
		r.drawSphere(p, world)
	case scene.ShapeText:
		// text is drawn in screen space after the 3D pass
		up := world.Mul4(p.Transform()).Mat3().Col(1).Normalize()
		pos := mgl64.TransformCoordinate(p.Pos, world)
		r.labels = append(r.labels, label{
			text:   p.Text,
			pos:    pos,
			top:    pos.Add(up.Mul(p.Height)),
			color:  p.Color,
			height: p.Height,
		})
	default:
		return
	}
	r.Drawn[p.Shape]++
}

// Close unloads every model and texture the renderer owns.
func (r *Renderer) Close() {
	for name, d := range r.dials {
		d.unload()
		delete(r.dials, name)
	}
}

func (d *dial) unload() {
	if d.loaded {
		rl.UnloadModel(d.model)
		d.loaded = false
	}
	if rl.IsTextureValid(d.texture) {
		rl.UnloadTexture(d.texture)
	}
}

func vec3(v mgl64.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X()), float32(v.Y()), float32(v.Z()))
}

// matrix converts a column-major mgl matrix; raylib's Mn is element n of
// the same layout.
func matrix(m mgl64.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: float32(m[0]), M1: float32(m[1]), M2: float32(m[2]), M3: float32(m[3]),
		M4: float32(m[4]), M5: float32(m[5]), M6: float32(m[6]), M7: float32(m[7]),
		M8: float32(m[8]), M9: float32(m[9]), M10: float32(m[10]), M11: float32(m[11]),
		M12: float32(m[12]), M13: float32(m[13]), M14: float32(m[14]), M15: float32(m[15]),
	}
}
