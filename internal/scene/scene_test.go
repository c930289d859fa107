package scene

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func assertVec(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], eps, "want %v, got %v", want, got)
}

func TestNewFrameParenting(t *testing.T) {
	root := NewFrame(nil, "root")
	a := NewFrame(root, "a")
	b := NewFrame(a, "b")

	assert.Nil(t, root.Parent())
	assert.Same(t, root, a.Parent())
	assert.Same(t, a, b.Parent())
	assert.Equal(t, []*Frame{a}, root.Children())
	assert.Same(t, a, root.Child("a"))
	assert.Nil(t, root.Child("b"))
	assert.True(t, b.Visible)
}

func TestDetach(t *testing.T) {
	root := NewFrame(nil, "root")
	a := NewFrame(root, "a")
	AddSphere(a, "dot", mgl64.Vec3{}, 1, color.RGBA{A: 255})

	a.Detach()
	assert.Empty(t, root.Children())
	assert.Nil(t, a.Parent())
	assert.Len(t, a.Primitives(), 1, "subtree stays intact")

	a.Detach()
	assert.False(t, root.RemoveChild(a))
}

func TestRemovePrimitive(t *testing.T) {
	root := NewFrame(nil, "root")
	p := AddSphere(root, "dot", mgl64.Vec3{}, 1, color.RGBA{})
	q := AddSphere(root, "dot", mgl64.Vec3{}, 1, color.RGBA{})

	require.True(t, root.RemovePrimitive(p))
	assert.Nil(t, p.Frame())
	assert.Equal(t, []*Primitive{q}, root.Primitives())
	assert.False(t, root.RemovePrimitive(p))
}

func TestAddWithoutParentPanics(t *testing.T) {
	assert.Panics(t, func() {
		AddBox(nil, "box", mgl64.Vec3{}, XAxis, YAxis, 1, 1, 1, color.RGBA{})
	})
}

func TestBasis(t *testing.T) {
	tests := []struct {
		name     string
		axis, up mgl64.Vec3
		x, y, z  mgl64.Vec3
	}{
		{"identity", XAxis, YAxis, XAxis, YAxis, ZAxis},
		{"twelve o'clock", YAxis, mgl64.Vec3{-1, 0, 0}, YAxis, mgl64.Vec3{-1, 0, 0}, ZAxis},
		{"unnormalized", mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 2, 0}, ZAxis, YAxis, mgl64.Vec3{-1, 0, 0}},
		{"skewed up", XAxis, mgl64.Vec3{1, 1, 0}, XAxis, YAxis, ZAxis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Basis(tt.axis, tt.up)
			assertVec(t, tt.x, m.Col(0))
			assertVec(t, tt.y, m.Col(1))
			assertVec(t, tt.z, m.Col(2))
		})
	}
}

func TestBasisDegenerateUp(t *testing.T) {
	m := Basis(YAxis, YAxis)
	x, y, z := m.Col(0), m.Col(1), m.Col(2)
	assertVec(t, YAxis, x)
	assert.InDelta(t, 0, x.Dot(y), eps)
	assert.InDelta(t, 0, x.Dot(z), eps)
	assert.InDelta(t, 1, z.Len(), eps)
}

func TestWorldComposesParents(t *testing.T) {
	root := NewFrame(nil, "root")
	root.Pos = mgl64.Vec3{1, 0, 0}

	child := NewFrame(root, "child")
	child.Pos = mgl64.Vec3{0, 2, 0}
	// quarter turn: local X points along parent Y
	child.SetOrientation(YAxis, mgl64.Vec3{-1, 0, 0})

	assertVec(t, mgl64.Vec3{1, 3, 0}, child.ToWorld(XAxis))
	assertVec(t, mgl64.Vec3{0, 2, 0}, child.ToWorld(YAxis))
}

func TestWalkSkipsInvisible(t *testing.T) {
	root := NewFrame(nil, "root")
	NewFrame(root, "shown")
	hidden := NewFrame(root, "hidden")
	NewFrame(hidden, "inner")
	hidden.Visible = false

	var visited []string
	root.Walk(func(f *Frame, _ mgl64.Mat4) bool {
		visited = append(visited, f.Name)
		return true
	})
	assert.Equal(t, []string{"root", "shown"}, visited)

	visited = nil
	root.Walk(func(f *Frame, _ mgl64.Mat4) bool {
		visited = append(visited, f.Name)
		return f != root
	})
	assert.Equal(t, []string{"root"}, visited)
}

func TestRotateAboutOrigin(t *testing.T) {
	root := NewFrame(nil, "root")
	p := AddBox(root, "tick", mgl64.Vec3{0, 1, 0}, YAxis, mgl64.Vec3{-1, 0, 0}, 1, 1, 1, color.RGBA{})

	// clockwise quarter turn seen from +Z
	p.Rotate(-math.Pi/2, ZAxis, mgl64.Vec3{})

	assertVec(t, mgl64.Vec3{1, 0, 0}, p.Pos)
	assertVec(t, XAxis, p.Axis)
	assertVec(t, YAxis, p.Up)
}

func TestCountAndFind(t *testing.T) {
	root := NewFrame(nil, "root")
	sub := NewFrame(root, "sub")
	sub.Visible = false
	AddSphere(root, "dot", mgl64.Vec3{}, 1, color.RGBA{})
	AddSphere(sub, "dot", mgl64.Vec3{}, 1, color.RGBA{})
	AddText(sub, "label", mgl64.Vec3{}, "7", 0.1, 0.01, color.RGBA{})

	assert.Len(t, root.Find("dot"), 2)
	assert.Equal(t, 1, root.Count(func(p *Primitive) bool { return p.Shape == ShapeText }))
	assert.Equal(t, "text", ShapeText.String())
}
