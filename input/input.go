package input

// Buttons is a pressed-button mask in pointer-event order: bit 0 is the
// primary button, bit 1 the secondary, bit 2 the middle.
type Buttons uint8

const (
	ButtonPrimary Buttons = 1 << iota
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent is one pointer sample. X, Y are container pixels;
// MovementX, MovementY is the motion since the previous sample.
type PointerEvent struct {
	X, Y                 float64
	MovementX, MovementY float64
	Buttons              Buttons
}

// WheelEvent carries wheel deltas in pixels. Positive DeltaY scrolls down.
type WheelEvent struct {
	DeltaX, DeltaY float64
}

// Intent is a camera mutation decided from raw input.
type Intent interface {
	intent()
}

// Hover tracks the pointer without moving the camera.
type Hover struct{ X, Y float64 }

// Pan drags the scene by a pointer movement in pixels.
type Pan struct{ DX, DY float64 }

// Zoom moves the camera in depth, anchored at the pointer.
type Zoom struct{ Delta float64 }

// Scroll moves the camera by a discrete step.
type Scroll struct{ DX, DY float64 }

func (Hover) intent()  {}
func (Pan) intent()    {}
func (Zoom) intent()   {}
func (Scroll) intent() {}

// Camera is what intents are applied to. *canvas.Store implements it.
type Camera interface {
	SetPointer(screenX, screenY float64)
	PanCamera(mx, my float64)
	ZoomCamera(delta float64)
	ScrollCamera(mx, my float64)
}

// WheelFriction scales wheel deltas before zooming.
const WheelFriction = 1.0

// Translator turns raw events into intents.
type Translator struct {
	Friction float64

	dragged bool
}

func NewTranslator() *Translator {
	return &Translator{Friction: WheelFriction}
}

// Wheel maps a wheel event to a zoom. Only the vertical delta is used.
func (t *Translator) Wheel(ev WheelEvent) Intent {
	return Zoom{Delta: ev.DeltaY * t.Friction}
}

// Pointer maps a pointer sample to an intent. ok is false for button
// combinations that are ignored. A pan captures the gesture: Dragged
// reports true until the next sample with no buttons pressed.
func (t *Translator) Pointer(ev PointerEvent) (in Intent, ok bool) {
	switch ev.Buttons {
	case 0:
		t.dragged = false
		return Hover{X: ev.X, Y: ev.Y}, true
	case ButtonPrimary:
		if ev.MovementX == 0 && ev.MovementY == 0 {
			return nil, false
		}
		t.dragged = true
		return Pan{DX: ev.MovementX, DY: ev.MovementY}, true
	}
	return nil, false
}

// Dragged reports whether the current primary-button press has panned.
// The scene uses it to avoid treating the release as a click.
func (t *Translator) Dragged() bool { return t.dragged }

// Apply performs an intent on the camera.
func Apply(cam Camera, in Intent) {
	switch in := in.(type) {
	case Hover:
		cam.SetPointer(in.X, in.Y)
	case Pan:
		cam.PanCamera(in.DX, in.DY)
	case Zoom:
		cam.ZoomCamera(in.Delta)
	case Scroll:
		cam.ScrollCamera(in.DX, in.DY)
	}
}
