// Package scene is a small retained scene graph: frames group primitives and
// other frames, and every node is created against an explicit parent.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	XAxis = mgl64.Vec3{1, 0, 0}
	YAxis = mgl64.Vec3{0, 1, 0}
	ZAxis = mgl64.Vec3{0, 0, 1}
)

// Frame is a transform node. Axis is the frame's local +X expressed in the
// parent's space and Up is a hint for local +Y; children inherit both.
type Frame struct {
	Name    string
	Pos     mgl64.Vec3
	Axis    mgl64.Vec3
	Up      mgl64.Vec3
	Visible bool

	parent     *Frame
	children   []*Frame
	primitives []*Primitive
}

// NewFrame creates a frame attached to parent. A nil parent makes a root.
func NewFrame(parent *Frame, name string) *Frame {
	f := &Frame{
		Name:    name,
		Axis:    XAxis,
		Up:      YAxis,
		Visible: true,
	}
	if parent != nil {
		f.parent = parent
		parent.children = append(parent.children, f)
	}
	return f
}

func (f *Frame) Parent() *Frame           { return f.parent }
func (f *Frame) Children() []*Frame       { return f.children }
func (f *Frame) Primitives() []*Primitive { return f.primitives }

// SetOrientation overwrites the frame orientation.
func (f *Frame) SetOrientation(axis, up mgl64.Vec3) {
	f.Axis = axis
	f.Up = up
}

// RemoveChild detaches child if it belongs to f.
func (f *Frame) RemoveChild(child *Frame) bool {
	for i, c := range f.children {
		if c == child {
			f.children = append(f.children[:i], f.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// RemovePrimitive drops p from f's primitives.
func (f *Frame) RemovePrimitive(p *Primitive) bool {
	for i, q := range f.primitives {
		if q == p {
			f.primitives = append(f.primitives[:i], f.primitives[i+1:]...)
			p.frame = nil
			return true
		}
	}
	return false
}

// Detach removes f from its parent. The subtree stays intact.
func (f *Frame) Detach() {
	if f.parent != nil {
		f.parent.RemoveChild(f)
	}
}

// Attach moves f under parent, detaching it from any previous parent.
func (f *Frame) Attach(parent *Frame) {
	f.Detach()
	if parent != nil {
		f.parent = parent
		parent.children = append(parent.children, f)
	}
}

// Basis returns the orthonormal rotation for an axis/up pair: columns are
// local X (along axis), Y (up made perpendicular) and Z (axis × up).
func Basis(axis, up mgl64.Vec3) mgl64.Mat3 {
	x := axis
	if x.Len() < 1e-12 {
		x = XAxis
	}
	x = x.Normalize()

	z := x.Cross(up)
	if z.Len() < 1e-12 {
		// up is parallel to axis; pick any perpendicular hint
		hint := YAxis
		if math.Abs(x.Dot(hint)) > 0.9 {
			hint = ZAxis
		}
		z = x.Cross(hint)
	}
	z = z.Normalize()
	y := z.Cross(x)

	return mgl64.Mat3FromCols(x, y, z)
}

func (f *Frame) Basis() mgl64.Mat3 {
	return Basis(f.Axis, f.Up)
}

// Local maps frame coordinates into the parent's coordinates.
func (f *Frame) Local() mgl64.Mat4 {
	return mgl64.Translate3D(f.Pos.X(), f.Pos.Y(), f.Pos.Z()).Mul4(f.Basis().Mat4())
}

// World maps frame coordinates into root coordinates.
func (f *Frame) World() mgl64.Mat4 {
	m := f.Local()
	for p := f.parent; p != nil; p = p.parent {
		m = p.Local().Mul4(m)
	}
	return m
}

// ToWorld transforms a point given in f's coordinates.
func (f *Frame) ToWorld(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(p, f.World())
}

// Walk visits f and its visible descendants depth-first. fn receives each
// frame with its world transform; returning false skips that subtree.
func (f *Frame) Walk(fn func(frame *Frame, world mgl64.Mat4) bool) {
	var parentWorld mgl64.Mat4
	if f.parent != nil {
		parentWorld = f.parent.World()
	} else {
		parentWorld = mgl64.Ident4()
	}
	f.walk(parentWorld, fn)
}

func (f *Frame) walk(parentWorld mgl64.Mat4, fn func(*Frame, mgl64.Mat4) bool) {
	if !f.Visible {
		return
	}
	world := parentWorld.Mul4(f.Local())
	if !fn(f, world) {
		return
	}
	for _, c := range f.children {
		c.walk(world, fn)
	}
}

// Count returns how many primitives in the subtree satisfy pred,
// invisible frames included.
func (f *Frame) Count(pred func(*Primitive) bool) int {
	n := 0
	for _, p := range f.primitives {
		if pred(p) {
			n++
		}
	}
	for _, c := range f.children {
		n += c.Count(pred)
	}
	return n
}

// Find returns every primitive in the subtree with the given name.
func (f *Frame) Find(name string) []*Primitive {
	var out []*Primitive
	for _, p := range f.primitives {
		if p.Name == name {
			out = append(out, p)
		}
	}
	for _, c := range f.children {
		out = append(out, c.Find(name)...)
	}
	return out
}

// Child returns the direct child frame with the given name.
func (f *Frame) Child(name string) *Frame {
	for _, c := range f.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}
