package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tree-canvas/canvas"
)

// MarkInset is the gap between a mark and its square's edge.
const MarkInset = 14.0

func turnColor(m Mark) color.Color {
	if m == O {
		return ColorO
	}
	return ColorX
}

// DrawBoard renders one visible board. hover is the hovered square or -1.
func DrawBoard(screen *ebiten.Image, v BoardView, scale canvas.Vec, hover int) {
	r := v.Frame.ScreenRect(BoardWidth, BoardHeight)

	// Body
	vector.DrawFilledRect(screen, float32(r.Left), float32(r.Top), float32(r.Width), float32(r.Height), ColorBoard, false)

	// Turn outline
	thickness := float32(BoardOutline * scale.X)
	vector.StrokeRect(screen,
		float32(r.Left)-thickness/2,
		float32(r.Top)-thickness/2,
		float32(r.Width)+thickness,
		float32(r.Height)+thickness,
		thickness, turnColor(TurnFor(v.Node.Depth())), false)

	for i, m := range v.Node.Value.Board {
		sq := SquareRect(i)
		sr := v.Frame.Offset(sq.Top, sq.Left).ScreenRect(sq.Width, sq.Height)
		fill := ColorSquare
		if i == hover {
			fill = ColorSquareHover
		}
		vector.DrawFilledRect(screen, float32(sr.Left), float32(sr.Top), float32(sr.Width), float32(sr.Height), fill, false)
		drawMark(screen, m, sr, scale)
	}
}

func drawMark(screen *ebiten.Image, m Mark, r canvas.Rect, scale canvas.Vec) {
	inset := MarkInset * scale.X
	width := float32(6 * scale.X)
	if width < 1 {
		width = 1
	}
	switch m {
	case X:
		x0, y0 := float32(r.Left+inset), float32(r.Top+inset)
		x1, y1 := float32(r.Right()-inset), float32(r.Bottom()-inset)
		vector.StrokeLine(screen, x0, y0, x1, y1, width, ColorX, true)
		vector.StrokeLine(screen, x0, y1, x1, y0, width, ColorX, true)
	case O:
		cx := float32(r.Left + r.Width/2)
		cy := float32(r.Top + r.Height/2)
		radius := float32(r.Width/2 - inset)
		vector.StrokeCircle(screen, cx, cy, radius, width, ColorO, true)
	}
}

// DrawScene draws links first so boards cover their ends.
func DrawScene(screen *ebiten.Image, sc *Scene, scale canvas.Vec, pointer canvas.Point) {
	for _, l := range sc.Links {
		DrawLink(screen, l.Frame, l.Segments, scale, ColorLink)
	}
	hoverNode, hoverSquare, ok := sc.HitTest(pointer)
	for _, v := range sc.Boards {
		hover := -1
		if ok && v.Node == hoverNode {
			hover = hoverSquare
		}
		DrawBoard(screen, v, scale, hover)
	}
}
