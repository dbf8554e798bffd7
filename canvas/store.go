package canvas

import "math"

const (
	DefaultScrollFactor = 1.5
	DefaultZoomFactor   = 10.0
)

// state is everything Initialize replaces wholesale.
type state struct {
	shouldRender bool
	pixelRatio   float64
	container    Size
	pointer      Point
	camera       CameraPosition
}

// Store holds the camera, container size and tracked pointer for one
// canvas. It is owned by the composition root and is not safe for
// concurrent use; all calls are expected on the update/draw goroutine.
type Store struct {
	state
	initialized bool

	angle        float64
	scrollFactor float64
	zoomFactor   float64
	ratioSource  func() float64
}

type Option func(*Store)

// WithAngle sets the half field-of-view in radians.
func WithAngle(angle float64) Option {
	return func(s *Store) { s.angle = angle }
}

func WithScrollFactor(f float64) Option {
	return func(s *Store) { s.scrollFactor = f }
}

func WithZoomFactor(f float64) Option {
	return func(s *Store) { s.zoomFactor = f }
}

// WithPixelRatio sets the source of the device pixel ratio, sampled on
// every Initialize.
func WithPixelRatio(fn func() float64) Option {
	return func(s *Store) { s.ratioSource = fn }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		angle:        DefaultAngle,
		scrollFactor: DefaultScrollFactor,
		zoomFactor:   DefaultZoomFactor,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = s.initialState()
	return s
}

func (s *Store) initialState() state {
	ratio := 1.0
	if s.ratioSource != nil {
		if r := s.ratioSource(); r > 0 {
			ratio = r
		}
	}
	return state{shouldRender: true, pixelRatio: ratio}
}

// Initialize resets the store for a container of the given pixel size. The
// camera is centred so that the visible rectangle starts at the scene
// origin with one scene unit per pixel. Non-positive sizes are ignored.
func (s *Store) Initialize(width, height float64) {
	if !(width > 0 && height > 0) || !finite(width, height) {
		return
	}
	s.state = s.initialState()
	s.container = Size{Width: width, Height: height}
	s.camera = CameraPosition{
		X: 0.5 * width,
		Y: 0.5 * height,
		Z: height / (2 * math.Tan(s.angle)),
	}
	s.initialized = true
}

func (s *Store) Initialized() bool { return s.initialized }

func (s *Store) Camera() CameraPosition { return s.camera }

func (s *Store) Pointer() Point { return s.pointer }

func (s *Store) Container() Size { return s.container }

func (s *Store) PixelRatio() float64 { return s.pixelRatio }

func (s *Store) Angle() float64 { return s.angle }

func (s *Store) Aspect() float64 {
	return s.container.Width / s.container.Height
}

// Screen returns the scene rectangle currently visible.
func (s *Store) Screen() Rect {
	c := s.camera
	return Project(c.X, c.Y, c.Z, s.angle, s.Aspect())
}

// Scale returns screen pixels per scene unit on each axis.
func (s *Store) Scale() Vec {
	return s.scaleFor(s.Screen())
}

func (s *Store) scaleFor(screen Rect) Vec {
	return Vec{
		X: s.container.Width / screen.Width,
		Y: s.container.Height / screen.Height,
	}
}

// ShouldRender reports whether any camera or pointer state changed since
// the last MarkRendered.
func (s *Store) ShouldRender() bool { return s.shouldRender }

func (s *Store) MarkRendered() { s.shouldRender = false }

func (s *Store) inBounds(p CameraPosition) bool {
	return p.Z > 0 && finite(p.X, p.Y, p.Z)
}

// ScrollCamera moves the camera by a discrete scroll delta and shifts the
// pointer with it so it keeps its screen position.
func (s *Store) ScrollCamera(mx, my float64) {
	if !s.initialized {
		return
	}
	dx, dy := mx*s.scrollFactor, my*s.scrollFactor
	next := CameraPosition{X: s.camera.X + dx, Y: s.camera.Y + dy, Z: s.camera.Z}
	if !s.inBounds(next) {
		return
	}
	s.camera = next
	s.shouldRender = true
	s.pointer.X += dx
	s.pointer.Y += dy
}

// PanCamera drags the scene: the camera moves against the pointer
// movement (mx, my).
func (s *Store) PanCamera(mx, my float64) {
	if !s.initialized {
		return
	}
	next := CameraPosition{X: s.camera.X - mx, Y: s.camera.Y - my, Z: s.camera.Z}
	if !s.inBounds(next) {
		return
	}
	s.camera = next
	s.shouldRender = true
	s.movePointer(mx, my)
}

// ZoomCamera moves the camera along z by delta, keeping the scene point
// under the tracked pointer fixed on screen.
func (s *Store) ZoomCamera(delta float64) {
	s.ZoomCameraAt(delta, s.pointer)
}

// ZoomCameraAt is ZoomCamera anchored at an explicit scene point. A zoom
// that would put the camera at or behind the projection plane is dropped
// and leaves the store untouched.
func (s *Store) ZoomCameraAt(delta float64, anchor Point) {
	if !s.initialized || !finite(delta, anchor.X, anchor.Y) {
		return
	}
	amount := delta * s.zoomFactor
	old := s.camera
	oldScale := s.Scale()

	z := old.Z + amount
	if z <= 0 {
		return
	}
	newScale := s.scaleFor(Project(old.X, old.Y, z, s.angle, s.Aspect()))
	x, y := ZoomAnchored(anchor.X, anchor.Y, old.X, old.Y, oldScale.X, oldScale.Y, newScale.X, newScale.Y)

	next := CameraPosition{X: x, Y: y, Z: z}
	if !s.inBounds(next) {
		return
	}
	s.camera = next
	s.shouldRender = true
}

// SetPointer records the pointer from a position in container pixels,
// measured from the top left.
func (s *Store) SetPointer(screenX, screenY float64) {
	if !s.initialized || !finite(screenX, screenY) {
		return
	}
	s.pointer = s.ScreenToScene(screenX, screenY)
	s.shouldRender = true
}

// movePointer shifts the pointer by a pixel delta.
func (s *Store) movePointer(dx, dy float64) {
	scale := s.Scale()
	s.pointer.X += dx / scale.X
	s.pointer.Y += dy / scale.Y
}

// ScreenToScene converts container pixels to scene coordinates.
func (s *Store) ScreenToScene(sx, sy float64) Point {
	screen := s.Screen()
	scale := s.scaleFor(screen)
	return Point{
		X: screen.Left + sx/scale.X,
		Y: screen.Top + sy/scale.Y,
	}
}

// SceneToScreen converts scene coordinates to container pixels.
func (s *Store) SceneToScreen(p Point) (float64, float64) {
	screen := s.Screen()
	scale := s.scaleFor(screen)
	return (p.X - screen.Left) * scale.X, (p.Y - screen.Top) * scale.Y
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
