package canvas

import "math"

// DefaultAngle is the camera's half field-of-view.
var DefaultAngle = Radians(30)

// CameraPosition is where the camera sits: X, Y is the scene point it looks at
// and Z is its distance from the projection plane.
type CameraPosition struct {
	X, Y, Z float64
}

// Point is a location in scene space.
type Point struct {
	X, Y float64
}

// Vec is a per-axis pair, used for scale factors.
type Vec struct {
	X, Y float64
}

// Size is a container size in screen pixels.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

func (r Rect) Right() float64  { return r.Left + r.Width }
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.Left += dx
	r.Top += dy
	return r
}

func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Project returns the scene rectangle visible from a camera at (x, y, z)
// with the given half field-of-view angle and aspect ratio (width/height).
func Project(x, y, z, angle, aspect float64) Rect {
	halfH := z * math.Tan(angle)
	halfW := halfH * aspect
	return Rect{
		Left:   x - halfW,
		Top:    y - halfH,
		Width:  2 * halfW,
		Height: 2 * halfH,
	}
}

// ZoomAnchored returns the new camera centre that keeps the scene point
// under the pointer on the same screen pixel when the scale changes from
// old to new.
func ZoomAnchored(pointerX, pointerY, oldX, oldY, oldScaleX, oldScaleY, newScaleX, newScaleY float64) (float64, float64) {
	x := pointerX - (pointerX-oldX)*(oldScaleX/newScaleX)
	y := pointerY - (pointerY-oldY)*(oldScaleY/newScaleY)
	return x, y
}
