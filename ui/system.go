package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// TextDrawer draws multiline text with its top left at (x, y).
type TextDrawer func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)

const (
	// ZoomStep is the zoom delta one button press animates.
	ZoomStep = 15.0
	// ZoomDuration is how long a button zoom takes, in seconds.
	ZoomDuration = 0.25
)

type UISystem struct {
	buttons       []*Button
	getFontFace   func() font.Face
	getScreenSize func() (int, int)
	zoom          func(delta float64)
	drawText      TextDrawer
	Zoom          *ZoomAnimator
	Debug         *DebugPanel
}

// NewUISystem builds the overlay. zoom receives animated deltas each tick;
// onRecenter resets the camera.
func NewUISystem(getFontFace func() font.Face, getScreenSize func() (int, int), zoom func(delta float64), onRecenter func(), drawText TextDrawer) *UISystem {
	ui := &UISystem{
		getFontFace:   getFontFace,
		getScreenSize: getScreenSize,
		zoom:          zoom,
		drawText:      drawText,
		Zoom:          NewZoomAnimator(ZoomDuration),
		Debug:         &DebugPanel{},
	}
	ui.buttons = []*Button{
		{Label: "+", W: 30, H: 30, OnClick: func() { ui.Zoom.Start(-ZoomStep) }},
		{Label: "-", W: 30, H: 30, OnClick: func() { ui.Zoom.Start(ZoomStep) }},
		{Label: "o", W: 30, H: 30, OnClick: onRecenter},
	}
	ui.updateButtonPositions()
	return ui
}

// updateButtonPositions lays the buttons out right to left from the top
// right corner.
func (ui *UISystem) updateButtonPositions() {
	w, _ := ui.getScreenSize()
	x := float32(w) - 10
	for _, b := range ui.buttons {
		x -= b.W
		b.X = x
		b.Y = 10
		x -= 10
	}
}

func (ui *UISystem) IsMouseOver(mx, my int) bool {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			return true
		}
	}
	return false
}

// Click runs the handler of the button under (mx, my), if any.
func (ui *UISystem) Click(mx, my int) bool {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			if b.OnClick != nil {
				b.OnClick()
			}
			return true
		}
	}
	return false
}

// Update handles button presses and advances the zoom animation by dt
// seconds.
func (ui *UISystem) Update(dt float32) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		ui.Click(mx, my)
	}
	if ui.Zoom.Active() {
		if d := ui.Zoom.Step(dt); d != 0 && ui.zoom != nil {
			ui.zoom(d)
		}
	}
}

func (ui *UISystem) Draw(screen *ebiten.Image) {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		b.Draw(screen, ui.getFontFace, ui.drawText)
	}
	if ui.Debug != nil {
		ui.Debug.Draw(screen, ui.getScreenSize, ui.getFontFace, ui.drawText)
	}
}
