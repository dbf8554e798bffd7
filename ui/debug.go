package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// DebugPanel shows camera stats in the top left and the last error in the
// bottom right.
type DebugPanel struct {
	Lines []string
	Error string
}

func (d *DebugPanel) SetError(msg string) {
	d.Error = msg
}

func (d *DebugPanel) Clear() {
	d.Error = ""
}

func (d *DebugPanel) Draw(screen *ebiten.Image, getScreenSize func() (int, int), getFace func() font.Face, drawText TextDrawer) {
	if d == nil || getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}
	if len(d.Lines) > 0 {
		text := ""
		for i, l := range d.Lines {
			if i > 0 {
				text += "\n"
			}
			text += l
		}
		drawText(screen, face, text, 10, 10, color.RGBA{200, 200, 200, 255})
	}
	if d.Error == "" {
		return
	}
	w, h := getScreenSize()
	pw, ph := 300, 80
	x := w - pw - 10
	y := h - ph - 10
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(pw), float32(ph), color.RGBA{40, 40, 40, 220}, false)
	drawText(screen, face, d.Error, x+8, y+8, color.RGBA{255, 200, 50, 255})
}
