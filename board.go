package main

import (
	"errors"
	"fmt"

	"tree-canvas/graph"
)

// Mark is the content of one square.
type Mark byte

const (
	Empty Mark = ' '
	X     Mark = 'X'
	O     Mark = 'O'
)

const BoardSquares = 16

// Board is a 4x4 tic-tac-toe grid in row-major order.
type Board [BoardSquares]Mark

func NewBoard() Board {
	var b Board
	for i := range b {
		b[i] = Empty
	}
	return b
}

func (b Board) String() string {
	s := make([]byte, BoardSquares)
	for i, m := range b {
		s[i] = byte(m)
	}
	return string(s)
}

// TurnFor is the player to move on a board at depth.
func TurnFor(depth int) Mark {
	if depth%2 == 0 {
		return X
	}
	return O
}

// Node is the value held by each board tree node.
type Node struct {
	ID    string
	Board Board
}

type BoardTree = graph.Tree[Node]

var ErrOccupied = errors.New("square already taken")

// Action is a change to the board tree.
type Action interface {
	action()
}

// SetAction marks Square on the board at Path for the player to move there.
type SetAction struct {
	Path   []int
	Square int
}

// BranchAction grows a copy of the board at Path with Square marked.
type BranchAction struct {
	Path   []int
	Square int
}

// ResetAction clears the tree back to a single empty board.
type ResetAction struct{}

func (SetAction) action()    {}
func (BranchAction) action() {}
func (ResetAction) action()  {}

// Boards owns the tree of branching games.
type Boards struct {
	Root *BoardTree
	// Version increases on every successful change.
	Version int
}

func NewBoards() *Boards {
	return &Boards{Root: graph.From(Node{ID: NewID(), Board: NewBoard()})}
}

func (b *Boards) Dispatch(a Action) error {
	switch a := a.(type) {
	case SetAction:
		n, err := b.square(a.Path, a.Square)
		if err != nil {
			return err
		}
		n.Value.Board[a.Square] = TurnFor(n.Depth())
	case BranchAction:
		n, err := b.square(a.Path, a.Square)
		if err != nil {
			return err
		}
		board := n.Value.Board
		board[a.Square] = TurnFor(n.Depth())
		n.GrowBranch(Node{ID: NewID(), Board: board})
	case ResetAction:
		b.Root = graph.From(Node{ID: NewID(), Board: NewBoard()})
	default:
		return fmt.Errorf("unknown action %T", a)
	}
	b.Version++
	return nil
}

// square resolves path and checks that square can be played.
func (b *Boards) square(path []int, square int) (*BoardTree, error) {
	if square < 0 || square >= BoardSquares {
		return nil, fmt.Errorf("square %d out of range", square)
	}
	n, err := b.Root.At(path)
	if err != nil {
		return nil, fmt.Errorf("board %v: %w", path, err)
	}
	if n.Value.Board[square] != Empty {
		return nil, fmt.Errorf("board %v square %d: %w", path, square, ErrOccupied)
	}
	return n, nil
}
