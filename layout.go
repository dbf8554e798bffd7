package main

import (
	"math"

	"tree-canvas/canvas"
)

// BoardView is a visible board and where it sits.
type BoardView struct {
	Node  *BoardTree
	Frame canvas.Frame
	// Top and Left are the board's scene coordinates.
	Top, Left float64
}

// LinkView is a visible group of links from one parent to its children.
type LinkView struct {
	Frame    canvas.Frame
	Segments []Segment
}

// Scene is one layout pass over the board tree.
type Scene struct {
	Boards []BoardView
	Links  []LinkView
	// Total counts every board; Culled counts those outside the window.
	Total, Culled int
	// Height is the scene height of the whole tree.
	Height float64
}

// Compose lays the tree out under root. Boards at depth d sit at
// d*BoardXSpacing; children stack downwards and a parent is centred on the
// span of its children. Only boards and link groups that intersect the
// frame's cull window are kept.
func Compose(tree *BoardTree, root canvas.Frame) *Scene {
	sc := &Scene{}
	sc.Height = sc.layout(tree, root, 0) + BoardHeight
	return sc
}

// layout places node's subtree starting at top and returns the top of the
// last board placed in it.
func (sc *Scene) layout(node *BoardTree, root canvas.Frame, top float64) float64 {
	left := float64(node.Depth()) * BoardXSpacing
	childTop := top
	myTop := top

	if branches := node.Branches(); len(branches) > 0 {
		centers := make([]float64, 0, len(branches))
		childTop -= BoardYSpacing
		for _, child := range branches {
			childTop += BoardYSpacing
			newTop := sc.layout(child, root, childTop)
			centers = append(centers, childTop-top+(newTop-childTop)/2+BoardYCenter)
			childTop = newTop
		}

		childHeight := childTop - top
		myTop = top + childHeight/2

		if frame, ok := root.Bounds(top, left, BoardNextXCenter+BoardLineWidth, childHeight+BoardHeight); ok {
			sc.Links = append(sc.Links, LinkView{
				Frame:    frame,
				Segments: LinkPaths(myTop-top+BoardYCenter, centers),
			})
		}
	}

	sc.Total++
	if frame, ok := root.Bounds(myTop, left, BoardWidth, BoardHeight); ok {
		sc.Boards = append(sc.Boards, BoardView{Node: node, Frame: frame, Top: myTop, Left: left})
	} else {
		sc.Culled++
	}
	return childTop
}

// SquareRect is square i's rectangle relative to its board's top left.
func SquareRect(i int) canvas.Rect {
	row, col := i/4, i%4
	return canvas.Rect{
		Left:   BoardMargin + float64(col)*(SquareSize+SquareGap),
		Top:    BoardMargin + float64(row)*(SquareSize+SquareGap),
		Width:  SquareSize,
		Height: SquareSize,
	}
}

// squareAt returns the square under (x, y) relative to a board's top left.
func squareAt(x, y float64) (int, bool) {
	const pitch = SquareSize + SquareGap
	x -= BoardMargin
	y -= BoardMargin
	if x < 0 || y < 0 {
		return 0, false
	}
	col, row := math.Floor(x/pitch), math.Floor(y/pitch)
	if col > 3 || row > 3 {
		return 0, false
	}
	if x-col*pitch >= SquareSize || y-row*pitch >= SquareSize {
		return 0, false
	}
	return int(row)*4 + int(col), true
}

// HitTest finds the visible board and square under a scene point.
func (sc *Scene) HitTest(p canvas.Point) (*BoardTree, int, bool) {
	for _, v := range sc.Boards {
		if p.X < v.Left || p.X >= v.Left+BoardWidth || p.Y < v.Top || p.Y >= v.Top+BoardHeight {
			continue
		}
		if sq, ok := squareAt(p.X-v.Left, p.Y-v.Top); ok {
			return v.Node, sq, true
		}
		return v.Node, 0, false
	}
	return nil, 0, false
}
