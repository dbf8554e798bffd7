package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// DefaultLineHeight converts one wheel notch into pixels.
	DefaultLineHeight = 10.0
	DefaultScrollStep = 8.0
)

// Result is what one Poll produced.
type Result struct {
	Intents []Intent
	// Click is set when the primary button was released without panning.
	Click          bool
	ClickX, ClickY float64
}

// Poller samples ebiten's input state once per tick and translates it.
type Poller struct {
	Translator *Translator
	LineHeight float64
	ScrollStep float64

	lastX, lastY int
	lastButtons  Buttons
	primed       bool
}

func NewPoller() *Poller {
	return &Poller{
		Translator: NewTranslator(),
		LineHeight: DefaultLineHeight,
		ScrollStep: DefaultScrollStep,
	}
}

func currentButtons() Buttons {
	var b Buttons
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		b |= ButtonPrimary
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		b |= ButtonSecondary
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		b |= ButtonMiddle
	}
	return b
}

// Poll reads the cursor, buttons, wheel and arrow keys. Overlay UI that
// already consumed the cursor should pass blocked=true so no hover, pan
// or click reaches the scene.
func (p *Poller) Poll(blocked bool) Result {
	var res Result
	mx, my := ebiten.CursorPosition()
	buttons := currentButtons()

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && !p.Translator.Dragged() && !blocked {
		res.Click = true
		res.ClickX, res.ClickY = float64(mx), float64(my)
	}

	if !p.primed {
		p.lastX, p.lastY = mx, my
		p.primed = true
	}
	moved := mx != p.lastX || my != p.lastY
	if (moved || buttons != p.lastButtons) && !blocked {
		ev := PointerEvent{
			X:         float64(mx),
			Y:         float64(my),
			MovementX: float64(mx - p.lastX),
			MovementY: float64(my - p.lastY),
			Buttons:   buttons,
		}
		if in, ok := p.Translator.Pointer(ev); ok {
			res.Intents = append(res.Intents, in)
		}
	}
	p.lastX, p.lastY = mx, my
	p.lastButtons = buttons

	// ebiten reports positive y for wheel-up; wheel events count down.
	if wx, wy := ebiten.Wheel(); wy != 0 {
		res.Intents = append(res.Intents, p.Translator.Wheel(WheelEvent{
			DeltaX: -wx * p.LineHeight,
			DeltaY: -wy * p.LineHeight,
		}))
	}

	res.Intents = append(res.Intents, p.keyScroll()...)
	return res
}

func (p *Poller) keyScroll() []Intent {
	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= p.ScrollStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += p.ScrollStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= p.ScrollStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += p.ScrollStep
	}
	if dx == 0 && dy == 0 {
		return nil
	}
	return []Intent{Scroll{DX: dx, DY: dy}}
}
