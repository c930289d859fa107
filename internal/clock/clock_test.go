package clock

import (
	"errors"
	"image/color"
	"math"
	"sort"
	"strconv"
	"testing"

	"clock3d/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertVec compares per component with an absolute tolerance; trig leaves
// ~1e-16 residue where the exact value is zero.
func assertVec(t *testing.T, want, got mgl64.Vec3, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], 1e-9, msgAndArgs...)
}

func TestParsePointers(t *testing.T) {
	tests := []struct {
		in   string
		want Pointers
	}{
		{"", NoPointers},
		{"hms", AllPointers},
		{"smh", AllPointers},
		{"h", HourPointer},
		{"mm", MinutePointer},
		{"HS", HourPointer | SecondPointer},
		{"hxq", HourPointer},
		{"xyz", NoPointers},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePointers(tt.in))
		})
	}

	assert.Equal(t, "hs", (HourPointer | SecondPointer).String())
	assert.Equal(t, "", NoPointers.String())
}

func TestPointerFramesMatchConfig(t *testing.T) {
	subsets := []string{"", "h", "m", "s", "hm", "hs", "ms", "hms"}

	for _, s := range subsets {
		t.Run("pointers="+s, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Pointers = ParsePointers(s)
			w := New(cfg)

			for _, kind := range pointerKinds {
				f, ok := w.PointerFrame(kind)
				want := cfg.Pointers.Has(kind)
				assert.Equal(t, want, ok, kind.String())
				if want {
					require.NotNil(t, f)
					assert.Equal(t, "pointer."+kind.String(), f.Name)
					assert.Same(t, w.Frame(), f.Parent())
				} else {
					assert.Nil(t, f)
				}
			}

			assert.Len(t, w.Frame().Children(), len(s))
			assert.Equal(t, cfg.Pointers, w.Pointers())
		})
	}
}

func TestPointerFrameUnknownKind(t *testing.T) {
	w := New(DefaultConfig())
	_, ok := w.PointerFrame(Pointer(7))
	assert.False(t, ok)

	for _, kind := range []Pointer{Pointer(-1), Pointer(3), Pointer(7)} {
		assert.NotPanics(t, func() { assert.Equal(t, byte('?'), kind.Letter()) })
		assert.Equal(t, "unknown", kind.String())
	}
	assert.Equal(t, "hms", string([]byte{Hour.Letter(), Minute.Letter(), Second.Letter()}))
}

func TestFaceLayout(t *testing.T) {
	w := New(DefaultConfig())
	root := w.Frame()

	assert.Len(t, root.Find(NameRing), 1)
	assert.Len(t, root.Find(NameBack), 1)
	assert.Len(t, root.Find(NameMajorTick), 4)
	assert.Len(t, root.Find(NameMinorTick), 8)
	assert.Len(t, root.Find(NameDot), 48)

	numerals := root.Find(NameNumeral)
	require.Len(t, numerals, 12)

	var values []int
	for _, n := range numerals {
		v, err := strconv.Atoi(n.Text)
		require.NoError(t, err)
		values = append(values, v)
	}
	sort.Ints(values)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, values)

	// first numeral sits at the top and reads 12
	assert.Equal(t, "12", numerals[0].Text)
	assert.Greater(t, numerals[0].Pos.Y(), 0.7)
	assert.InDelta(t, 0, numerals[0].Pos.X(), 1e-12)
}

func TestMajorTicksAtQuarterHours(t *testing.T) {
	w := New(DefaultConfig())

	want := []mgl64.Vec3{
		{0, tickRadius, 0},
		{tickRadius, 0, 0},
		{0, -tickRadius, 0},
		{-tickRadius, 0, 0},
	}
	ticks := w.Frame().Find(NameMajorTick)
	require.Len(t, ticks, len(want))

	for i, tick := range ticks {
		assertVec(t, want[i], tick.Pos, "tick %d", i)
		// ticks point radially outward
		radial := tick.Pos.Normalize()
		assert.InDelta(t, 1, tick.Axis.Normalize().Dot(radial), 1e-9)
		assert.Equal(t, majorTickHeight, tick.Height)
	}

	for _, tick := range w.Frame().Find(NameMinorTick) {
		assert.Equal(t, minorTickHeight, tick.Height)
	}
}

func TestDotsOnRing(t *testing.T) {
	w := New(DefaultConfig())
	for _, dot := range w.Frame().Find(NameDot) {
		r := math.Hypot(dot.Pos.X(), dot.Pos.Y())
		assert.InDelta(t, ringRadius, r, 1e-9)
		assert.InDelta(t, dotZ, dot.Pos.Z(), 1e-9)
	}
}

func TestNumeralLabel(t *testing.T) {
	assert.Equal(t, "12", NumeralLabel(0))
	assert.Equal(t, "1", NumeralLabel(1))
	assert.Equal(t, "11", NumeralLabel(11))
}

func TestPaletteOverrides(t *testing.T) {
	green := color.RGBA{0, 200, 0, 255}
	cfg := DefaultConfig()
	cfg.Palette = Palette{Ring: green, SecondPointer: green}
	w := New(cfg)

	assert.Equal(t, green, w.Frame().Find(NameRing)[0].Color)
	assert.Equal(t, white, w.Frame().Find(NameBack)[0].Color)
	assert.Equal(t, black, w.Frame().Find(NameNumeral)[0].Color)

	sf, ok := w.PointerFrame(Second)
	require.True(t, ok)
	for _, p := range sf.Primitives() {
		assert.Equal(t, green, p.Color)
	}
	hf, _ := w.PointerFrame(Hour)
	assert.Equal(t, red, hf.Primitives()[0].Color)
}

func TestPointerProfilesDistinct(t *testing.T) {
	w := New(DefaultConfig())

	arm := func(kind Pointer) *scene.Primitive {
		f, ok := w.PointerFrame(kind)
		require.True(t, ok)
		return f.Find("arm")[0]
	}
	hub := func(kind Pointer) *scene.Primitive {
		f, _ := w.PointerFrame(kind)
		return f.Find("hub")[0]
	}

	assert.Greater(t, arm(Hour).Height, arm(Minute).Height)
	assert.Greater(t, arm(Minute).Height, arm(Second).Height)
	assert.Greater(t, hub(Hour).Radius, hub(Minute).Radius)
	assert.Greater(t, hub(Minute).Radius, hub(Second).Radius)
	assert.Less(t, arm(Hour).Length, arm(Second).Length)
}

func TestCreateVariants(t *testing.T) {
	w, err := Create(VariantAnalog, DefaultConfig())
	require.NoError(t, err)
	assert.NotNil(t, w)

	w, err = Create("", DefaultConfig())
	require.NoError(t, err)
	assert.NotNil(t, w)

	w, err = Create("cuckoo", DefaultConfig())
	assert.Nil(t, w)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedVariant))
	assert.Contains(t, err.Error(), `"cuckoo"`)
}

func TestBuildIntoSuppliedFrame(t *testing.T) {
	parent := scene.NewFrame(nil, "desk")
	other := scene.AddSphere(parent, "lamp", mgl64.Vec3{}, 1, color.RGBA{A: 255})

	cfg := DefaultConfig()
	cfg.Parent = parent
	w := New(cfg)

	assert.Same(t, parent, w.Frame())
	assert.Len(t, parent.Children(), 3)
	assert.Len(t, parent.Find(NameDot), 48)

	w.Release()
	assert.Empty(t, parent.Children())
	assert.Equal(t, []*scene.Primitive{other}, parent.Primitives())

	_, ok := w.PointerFrame(Hour)
	assert.False(t, ok)
	w.Release()
}

func TestReleaseOwnedFrame(t *testing.T) {
	world := scene.NewFrame(nil, "world")
	w := New(DefaultConfig())
	w.Frame().Attach(world)
	require.Same(t, world, w.Frame().Parent())

	w.Release()
	assert.Empty(t, world.Children())
	assert.Nil(t, w.Frame().Parent())
	assert.Len(t, w.Frame().Find(NameNumeral), 12, "owned subtree stays whole")
}
