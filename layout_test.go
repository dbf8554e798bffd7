package main

import (
	"math"
	"testing"

	"tree-canvas/canvas"
)

func testFrame(t *testing.T) (*canvas.Store, canvas.Frame) {
	t.Helper()
	s := canvas.NewStore()
	s.Initialize(1000, 500)
	return s, s.Root()
}

func TestComposeSingleBoard(t *testing.T) {
	_, root := testFrame(t)
	sc := Compose(NewBoards().Root, root)
	if sc.Total != 1 || len(sc.Boards) != 1 || len(sc.Links) != 0 {
		t.Fatalf("scene = %d boards, %d links, total %d", len(sc.Boards), len(sc.Links), sc.Total)
	}
	if v := sc.Boards[0]; v.Top != 0 || v.Left != 0 {
		t.Errorf("root board at (%f,%f), want origin", v.Left, v.Top)
	}
	if sc.Height != BoardHeight {
		t.Errorf("Height = %f, want %f", sc.Height, BoardHeight)
	}
}

func TestComposeCentresParent(t *testing.T) {
	b := NewBoards()
	b.Dispatch(BranchAction{Square: 0})
	b.Dispatch(BranchAction{Square: 1})

	_, root := testFrame(t)
	sc := Compose(b.Root, root)
	if sc.Total != 3 || sc.Culled != 0 {
		t.Fatalf("total %d culled %d, want 3 and 0", sc.Total, sc.Culled)
	}

	pos := map[*BoardTree]BoardView{}
	for _, v := range sc.Boards {
		pos[v.Node] = v
	}
	branches := b.Root.Branches()
	if v := pos[branches[0]]; v.Top != 0 || v.Left != BoardXSpacing {
		t.Errorf("first child at (%f,%f)", v.Left, v.Top)
	}
	if v := pos[branches[1]]; v.Top != BoardYSpacing || v.Left != BoardXSpacing {
		t.Errorf("second child at (%f,%f)", v.Left, v.Top)
	}
	if v := pos[b.Root]; v.Top != BoardYSpacing/2 {
		t.Errorf("parent top = %f, want %f", v.Top, BoardYSpacing/2)
	}

	if len(sc.Links) != 1 {
		t.Fatalf("got %d link groups, want 1", len(sc.Links))
	}
	segs := sc.Links[0].Segments
	if segs[0].Y0 != BoardYSpacing/2+BoardYCenter {
		t.Errorf("connector at %f, want parent centre", segs[0].Y0)
	}
}

func TestComposeCullsOffscreenBoards(t *testing.T) {
	b := NewBoards()
	path := []int{}
	for i := 0; i < 4; i++ {
		if err := b.Dispatch(BranchAction{Path: path, Square: i}); err != nil {
			t.Fatal(err)
		}
		path = append(path, 0)
	}

	s, root := testFrame(t)
	sc := Compose(b.Root, root)
	// Depth 4 starts at 1320, past the 1000 wide window.
	if sc.Total != 5 || sc.Culled != 1 || len(sc.Boards) != 4 {
		t.Fatalf("total %d culled %d visible %d", sc.Total, sc.Culled, len(sc.Boards))
	}

	s.PanCamera(-1300, 0)
	sc = Compose(b.Root, s.Root())
	if sc.Culled != 4 || len(sc.Boards) != 1 || sc.Boards[0].Node.Depth() != 4 {
		t.Fatalf("after pan: culled %d visible %d", sc.Culled, len(sc.Boards))
	}
	r := sc.Boards[0].Frame.ScreenRect(BoardWidth, BoardHeight)
	if math.Abs(r.Left-20) > 1e-6 || math.Abs(r.Width-BoardWidth) > 1e-6 {
		t.Errorf("screen rect = %+v, want left 20", r)
	}
}

func TestSquareRect(t *testing.T) {
	r := SquareRect(5)
	if r.Left != BoardMargin+SquareSize+SquareGap || r.Top != r.Left || r.Width != SquareSize {
		t.Errorf("SquareRect(5) = %+v", r)
	}
	last := SquareRect(15)
	if last.Right()+BoardMargin != BoardWidth {
		t.Errorf("last square ends at %f, want board edge minus margin", last.Right())
	}
}

func TestHitTest(t *testing.T) {
	b := NewBoards()
	b.Dispatch(BranchAction{Square: 0})
	b.Dispatch(BranchAction{Square: 1})
	_, root := testFrame(t)
	sc := Compose(b.Root, root)

	top := BoardYSpacing / 2
	tests := []struct {
		name   string
		p      canvas.Point
		node   *BoardTree
		square int
		ok     bool
	}{
		{"square 1", canvas.Point{X: 80, Y: top + 14}, b.Root, 1, true},
		{"square 15", canvas.Point{X: 260, Y: top + 260}, b.Root, 15, true},
		{"gap", canvas.Point{X: 69, Y: top + 14}, b.Root, 0, false},
		{"child", canvas.Point{X: BoardXSpacing + 10, Y: BoardYSpacing + 10}, b.Root.Branches()[1], 0, true},
		{"empty scene", canvas.Point{X: 300, Y: 10}, nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, sq, ok := sc.HitTest(tt.p)
			if node != tt.node || sq != tt.square || ok != tt.ok {
				t.Errorf("HitTest(%+v) = %p, %d, %v; want %p, %d, %v", tt.p, node, sq, ok, tt.node, tt.square, tt.ok)
			}
		})
	}
}
