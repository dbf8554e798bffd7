package canvas

import "math"

// InBounds reports whether candidate overlaps bounds. Rectangles that only
// touch along an edge count as overlapping.
func InBounds(candidate, bounds Rect) bool {
	return !(candidate.Right() < bounds.Left ||
		candidate.Left > bounds.Right() ||
		candidate.Bottom() < bounds.Top ||
		candidate.Top > bounds.Bottom())
}

// Position is an offset accumulated through nested containers, in scene
// units relative to the visible rectangle's top left.
type Position struct {
	Top, Left float64
}

// Frame carries the accumulated offset of one nesting level together with
// the cull window it is tested against. Frames are recomputed every pass.
type Frame struct {
	pos    Position
	window Rect
	scale  Vec
}

// Root returns the outermost frame for the current camera: scene
// coordinates shifted so the visible rectangle starts at (0, 0).
func (s *Store) Root() Frame {
	screen := s.Screen()
	scale := s.scaleFor(screen)
	f := Frame{
		window: Rect{
			Width:  screen.Width * math.Max(scale.X, 1),
			Height: screen.Height * math.Max(scale.Y, 1),
		},
		scale: scale,
	}
	return f.Offset(-screen.Top, -screen.Left)
}

func (f Frame) Position() Position { return f.pos }

// Window is the rectangle Bounds tests against.
func (f Frame) Window() Rect { return f.window }

// Offset nests a child frame at (top, left) inside f.
func (f Frame) Offset(top, left float64) Frame {
	f.pos.Top += top
	f.pos.Left += left
	return f
}

// Bounds nests a child frame of the given size at (top, left) if it
// intersects the cull window. When it does not, ok is false and the
// caller should skip the subtree.
func (f Frame) Bounds(top, left, width, height float64) (Frame, bool) {
	candidate := Rect{
		Left:   f.pos.Left + left,
		Top:    f.pos.Top + top,
		Width:  width,
		Height: height,
	}
	if !InBounds(candidate, f.window) {
		return Frame{}, false
	}
	return f.Offset(top, left), true
}

// ScreenRect returns the frame's origin and a size of (width, height)
// scene units as a rectangle in container pixels.
func (f Frame) ScreenRect(width, height float64) Rect {
	return Rect{
		Left:   f.pos.Left * f.scale.X,
		Top:    f.pos.Top * f.scale.Y,
		Width:  width * f.scale.X,
		Height: height * f.scale.Y,
	}
}

// ScreenPoint converts a point local to the frame into container pixels.
func (f Frame) ScreenPoint(x, y float64) (float64, float64) {
	return (f.pos.Left + x) * f.scale.X, (f.pos.Top + y) * f.scale.Y
}
