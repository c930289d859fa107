package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

type Shape int

const (
	ShapeRing Shape = iota
	ShapeCylinder
	ShapeBox
	ShapeSphere
	ShapeText
)

func (s Shape) String() string {
	switch s {
	case ShapeRing:
		return "ring"
	case ShapeCylinder:
		return "cylinder"
	case ShapeBox:
		return "box"
	case ShapeSphere:
		return "sphere"
	case ShapeText:
		return "text"
	}
	return "unknown"
}

// Primitive is a drawable leaf owned by exactly one frame. Coordinates are
// in the owning frame's space.
//
// Axis means, per shape: the ring normal, the cylinder axis (its length is
// the cylinder length) or the box length direction. Up orients boxes and
// text around Axis.
type Primitive struct {
	Name  string
	Shape Shape
	Pos   mgl64.Vec3
	Axis  mgl64.Vec3
	Up    mgl64.Vec3
	Color color.RGBA

	// box extents along axis, up and axis × up
	Length, Height, Width float64

	Radius    float64
	Thickness float64

	Text  string
	Depth float64

	frame *Frame
}

// Frame returns the owning frame, or nil once removed.
func (p *Primitive) Frame() *Frame { return p.frame }

func add(parent *Frame, p *Primitive) *Primitive {
	if parent == nil {
		panic("scene: primitive " + p.Name + " needs a parent frame")
	}
	p.frame = parent
	parent.primitives = append(parent.primitives, p)
	return p
}

// AddRing adds a torus-like rim of the given radius around normal.
func AddRing(parent *Frame, name string, pos, normal mgl64.Vec3, radius, thickness float64, c color.RGBA) *Primitive {
	return add(parent, &Primitive{
		Name:      name,
		Shape:     ShapeRing,
		Pos:       pos,
		Axis:      normal,
		Up:        YAxis,
		Radius:    radius,
		Thickness: thickness,
		Color:     c,
	})
}

// AddCylinder adds a cylinder from pos to pos+axis.
func AddCylinder(parent *Frame, name string, pos, axis mgl64.Vec3, radius float64, c color.RGBA) *Primitive {
	return add(parent, &Primitive{
		Name:   name,
		Shape:  ShapeCylinder,
		Pos:    pos,
		Axis:   axis,
		Up:     YAxis,
		Radius: radius,
		Color:  c,
	})
}

// AddBox adds a box centered on pos.
func AddBox(parent *Frame, name string, pos, axis, up mgl64.Vec3, length, height, width float64, c color.RGBA) *Primitive {
	return add(parent, &Primitive{
		Name:   name,
		Shape:  ShapeBox,
		Pos:    pos,
		Axis:   axis,
		Up:     up,
		Length: length,
		Height: height,
		Width:  width,
		Color:  c,
	})
}

func AddSphere(parent *Frame, name string, pos mgl64.Vec3, radius float64, c color.RGBA) *Primitive {
	return add(parent, &Primitive{
		Name:   name,
		Shape:  ShapeSphere,
		Pos:    pos,
		Axis:   XAxis,
		Up:     YAxis,
		Radius: radius,
		Color:  c,
	})
}

// AddText adds a centered label reading along +X with its baseline at pos.
func AddText(parent *Frame, name string, pos mgl64.Vec3, text string, height, depth float64, c color.RGBA) *Primitive {
	return add(parent, &Primitive{
		Name:   name,
		Shape:  ShapeText,
		Pos:    pos,
		Axis:   XAxis,
		Up:     YAxis,
		Height: height,
		Depth:  depth,
		Text:   text,
		Color:  c,
	})
}

// Rotate turns the primitive by angle radians about an axis through origin.
func (p *Primitive) Rotate(angle float64, axis, origin mgl64.Vec3) *Primitive {
	q := mgl64.QuatRotate(angle, axis.Normalize())
	p.Pos = origin.Add(q.Rotate(p.Pos.Sub(origin)))
	p.Axis = q.Rotate(p.Axis)
	p.Up = q.Rotate(p.Up)
	return p
}

// Basis is the primitive's orientation within its frame.
func (p *Primitive) Basis() mgl64.Mat3 {
	return Basis(p.Axis, p.Up)
}

// Transform maps primitive-local coordinates (centered on Pos, X along Axis)
// into the owning frame's space.
func (p *Primitive) Transform() mgl64.Mat4 {
	return mgl64.Translate3D(p.Pos.X(), p.Pos.Y(), p.Pos.Z()).Mul4(p.Basis().Mat4())
}
