package mapview

import "math"

// Vec2 is a 2D vector used for positions, offsets, sizes, and deltas
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns v scaled by s on both axes.
func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Mid returns the point halfway between v and o.
func (v Vec2) Mid(o Vec2) Vec2 { return Vec2{(v.X + o.X) / 2, (v.Y + o.Y) / 2} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsPoint is Contains for a Vec2.
func (r Rect) ContainsPoint(p Vec2) bool {
	return r.Contains(p.X, p.Y)
}

// Viewport is the transform of the content layer inside its container:
// container-local position of the content's center and its uniform scale.
type Viewport struct {
	Position Vec2
	Scale    float64
}

// Gesture identifies what a touch event was resolved to.
type Gesture uint8

const (
	GestureNone  Gesture = iota // idle; the event produced no change
	GesturePan                  // single contact drag
	GesturePinch                // two contact pinch (scale and anchor move)
	GestureTap                  // release without any pan or pinch in the session
)

// String returns a lowercase name for the gesture.
func (g Gesture) String() string {
	switch g {
	case GesturePan:
		return "pan"
	case GesturePinch:
		return "pinch"
	case GestureTap:
		return "tap"
	default:
		return "none"
	}
}

// isFinite reports whether f is neither NaN nor infinite.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
