package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tree-canvas/canvas"
)

// CurveSegments is how many straight pieces approximate one elbow.
const CurveSegments = 12

// Segment is a straight piece of a link, local to its link group.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// path builds segments from move/line/quad commands.
type path struct {
	segs   []Segment
	cx, cy float64
}

func (p *path) moveTo(x, y float64) { p.cx, p.cy = x, y }

func (p *path) lineTo(x, y float64) {
	p.segs = append(p.segs, Segment{p.cx, p.cy, x, y})
	p.cx, p.cy = x, y
}

// quadTo flattens a quadratic curve from the current point.
func (p *path) quadTo(cpx, cpy, x, y float64) {
	sx, sy := p.cx, p.cy
	for i := 1; i <= CurveSegments; i++ {
		t := float64(i) / CurveSegments
		u := 1 - t
		p.lineTo(
			u*u*sx+2*u*t*cpx+t*t*x,
			u*u*sy+2*u*t*cpy+t*t*y,
		)
	}
}

func (p *path) straight(center float64) {
	p.moveTo(BoardNextXCenter, center)
	p.lineTo(BoardXCenter, center)
}

// LinkPaths connects a parent board to its children. parentCenter and
// childCenters are vertical centres relative to the link group's top.
// The outermost children bend into the parent's column with an elbow and
// the rest join with straight connectors.
func LinkPaths(parentCenter float64, childCenters []float64) []Segment {
	var p path
	switch len(childCenters) {
	case 0:
		return nil
	case 1:
		p.straight(childCenters[0])
		return p.segs
	case 2:
		top, bottom := childCenters[0], childCenters[1]
		p.straight((top + bottom) / 2)
		p.moveTo(BoardNextXCenter, top)
		p.lineTo(BoardNextXCenter, bottom)
		return p.segs
	}

	top := childCenters[0]
	bottom := childCenters[len(childCenters)-1]

	if top < parentCenter {
		c := math.Min(parentCenter-BoardYCenter, top+BoardXSpacing-BoardXCenter)
		p.moveTo(BoardXSpacing, top)
		p.quadTo(BoardXCenter, top, BoardXCenter, c)
	} else {
		p.straight(top)
	}
	p.lineTo(BoardXCenter, parentCenter)

	if bottom > parentCenter {
		c := math.Max(parentCenter+BoardYCenter, bottom-(BoardXSpacing-BoardXCenter))
		p.moveTo(BoardXSpacing, bottom)
		p.quadTo(BoardXCenter, bottom, BoardXCenter, c)
	} else {
		p.straight(bottom)
	}
	p.lineTo(BoardXCenter, parentCenter)

	for _, center := range childCenters[1 : len(childCenters)-1] {
		p.straight(center)
	}
	return p.segs
}

// DrawLink strokes a link group placed at frame.
func DrawLink(screen *ebiten.Image, frame canvas.Frame, segs []Segment, scale canvas.Vec, clr color.Color) {
	width := float32(BoardLineWidth * scale.X)
	if width < 1 {
		width = 1
	}
	for _, s := range segs {
		x0, y0 := frame.ScreenPoint(s.X0, s.Y0)
		x1, y1 := frame.ScreenPoint(s.X1, s.Y1)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
	}
}
