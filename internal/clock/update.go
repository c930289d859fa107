package clock

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidTimestamp is returned for timestamps that cannot be turned into
// a time: NaN, infinities and values outside the int64 second range.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// TimeFromUnix converts real-valued seconds since the epoch. Negative
// values are valid and land before 1970.
func TimeFromUnix(seconds float64) (time.Time, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidTimestamp, seconds)
	}
	whole := math.Floor(seconds)
	if whole < math.MinInt64 || whole >= math.MaxInt64 {
		return time.Time{}, fmt.Errorf("%w: %v out of range", ErrInvalidTimestamp, seconds)
	}
	nsec := int64((seconds - whole) * 1e9)
	return time.Unix(int64(whole), nsec), nil
}

// SecondsOfDay returns h*3600 + m*60 + s for t in UTC or in loc.
func SecondsOfDay(t time.Time, utc bool, loc *time.Location) int {
	if utc {
		t = t.UTC()
	} else if loc != nil {
		t = t.In(loc)
	}
	h, m, s := t.Clock()
	return h*3600 + m*60 + s
}

// Angle is the clockwise angle from 12 o'clock, in radians, of a pointer
// at totalSeconds. The turn count 2π·totalSeconds·TurnsPerSecond is first
// reduced by the pointer's period using integer arithmetic, so inputs one
// period apart give identical angles and PM hours wrap onto the 12-hour dial.
func Angle(kind Pointer, totalSeconds int) float64 {
	period := kind.Period()
	phase := totalSeconds % period
	if phase < 0 {
		phase += period
	}
	return 2 * math.Pi * float64(phase) / float64(period)
}

// Orientation returns the frame axis and up vectors for a pointer turned
// clockwise by angle about the dial normal (+Z).
func Orientation(angle float64) (axis, up mgl64.Vec3) {
	sin, cos := math.Sincos(angle)
	axis = mgl64.Vec3{sin, cos, 0}
	// +Z × axis
	up = mgl64.Vec3{-cos, sin, 0}
	return axis, up
}

// Update turns every pointer to show at, or Config.Now() when at is zero.
// Orientation is absolute, so calls may come in any order or frequency.
func (w *Widget) Update(at time.Time, utc bool) {
	if at.IsZero() {
		at = w.cfg.Now()
	}
	w.apply(SecondsOfDay(at, utc, w.cfg.Location))
}

func (w *Widget) UpdateNow(utc bool) {
	w.Update(time.Time{}, utc)
}

// UpdateUnix is Update for real-valued seconds since the epoch. Invalid
// timestamps are returned as errors and leave the pointers untouched.
func (w *Widget) UpdateUnix(seconds float64, utc bool) error {
	t, err := TimeFromUnix(seconds)
	if err != nil {
		return err
	}
	w.apply(SecondsOfDay(t, utc, w.cfg.Location))
	return nil
}

// UpdateSeconds shows a time given directly as seconds since midnight.
func (w *Widget) UpdateSeconds(totalSeconds int) {
	w.apply(totalSeconds)
}

func (w *Widget) apply(totalSeconds int) {
	for _, kind := range pointerKinds {
		f := w.pointers[kind]
		if f == nil {
			continue
		}
		axis, up := Orientation(Angle(kind, totalSeconds))
		f.SetOrientation(axis, up)
	}
}

// Angles reads the current angle of each existing pointer back from its
// frame, in radians within [0, 2π).
func (w *Widget) Angles() map[Pointer]float64 {
	out := make(map[Pointer]float64, len(pointerKinds))
	for _, kind := range pointerKinds {
		f := w.pointers[kind]
		if f == nil {
			continue
		}
		a := math.Atan2(f.Axis.X(), f.Axis.Y())
		if a < 0 {
			a += 2 * math.Pi
		}
		out[kind] = a
	}
	return out
}
