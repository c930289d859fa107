// Package clock builds a 3D analog clock into a scene graph and turns its
// pointers to show a given time.
//
// A clock is built once with New or Create. Pointer frames start at the
// 12 o'clock position; call Update (or UpdateNow) after construction to show
// a time, then again on every tick of the driving loop.
package clock

import (
	"errors"
	"fmt"

	"clock3d/internal/scene"
)

// ErrUnsupportedVariant is returned by Create for unknown clock styles.
var ErrUnsupportedVariant = errors.New("unsupported clock variant")

const VariantAnalog = "analog"

// Widget is an analog clock: a static dial plus one rotatable frame per
// pointer. It is not safe for concurrent use.
type Widget struct {
	cfg   Config
	frame *scene.Frame
	owned bool

	pointers [len(pointerKinds)]*scene.Frame
	face     []*scene.Primitive
	released bool
}

// Create builds a clock of the named variant. Only "analog" exists; the
// empty string selects it.
func Create(variant string, cfg Config) (*Widget, error) {
	switch variant {
	case "", VariantAnalog:
		return New(cfg), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedVariant, variant)
}

// New builds an analog clock. The pointers are not oriented to any time
// until the first Update.
func New(cfg Config) *Widget {
	cfg = cfg.withDefaults()

	w := &Widget{cfg: cfg}
	if cfg.Parent != nil {
		w.frame = cfg.Parent
	} else {
		w.frame = scene.NewFrame(nil, "clock")
		w.owned = true
	}

	w.face = buildFace(w.frame, cfg.Palette)
	for _, kind := range pointerKinds {
		if cfg.Pointers.Has(kind) {
			w.pointers[kind] = buildPointer(w.frame, kind, cfg.Palette.pointer(kind))
		}
	}

	return w
}

// Frame returns the frame the clock is built in.
func (w *Widget) Frame() *scene.Frame { return w.frame }

// Config returns the configuration the clock was built with, defaults applied.
func (w *Widget) Config() Config { return w.cfg }

// PointerFrame returns the frame of a pointer, or false when the clock was
// built without it.
func (w *Widget) PointerFrame(kind Pointer) (*scene.Frame, bool) {
	if kind < Hour || kind > Second {
		return nil, false
	}
	f := w.pointers[kind]
	return f, f != nil
}

// Pointers reports which pointer frames exist.
func (w *Widget) Pointers() Pointers {
	var p Pointers
	for _, kind := range pointerKinds {
		if w.pointers[kind] != nil {
			p |= kind.flag()
		}
	}
	return p
}

// Release gives up the clock's scene nodes. An owned root is detached from
// any parent; a caller-supplied frame only loses what the clock added.
func (w *Widget) Release() {
	if w.released {
		return
	}
	w.released = true

	if w.owned {
		w.frame.Detach()
		return
	}
	for _, p := range w.face {
		w.frame.RemovePrimitive(p)
	}
	for i, f := range w.pointers {
		if f != nil {
			w.frame.RemoveChild(f)
			w.pointers[i] = nil
		}
	}
	w.face = nil
}
