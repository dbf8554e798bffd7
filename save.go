package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tree-canvas/graph"
)

// BoardState is one board in a snapshot, with its branches nested.
type BoardState struct {
	ID       string       `yaml:"id"`
	Squares  string       `yaml:"squares"`
	Branches []BoardState `yaml:"branches,omitempty"`
}

type AppState struct {
	Root BoardState `yaml:"root"`
}

func SaveBoards(b *Boards, filename string) error {
	state := AppState{Root: boardState(b.Root)}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save boards: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&state); err != nil {
		return fmt.Errorf("save boards: %w", err)
	}
	return enc.Close()
}

func boardState(t *BoardTree) BoardState {
	bs := BoardState{ID: t.Value.ID, Squares: t.Value.Board.String()}
	for _, child := range t.Branches() {
		bs.Branches = append(bs.Branches, boardState(child))
	}
	return bs
}

func LoadBoards(filename string) (*Boards, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("load boards: %w", err)
	}

	var state AppState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse boards %s: %w", filename, err)
	}

	root, err := parseNode(state.Root)
	if err != nil {
		return nil, fmt.Errorf("boards %s: %w", filename, err)
	}
	tree := graph.From(root)
	if err := growBranches(tree, state.Root.Branches); err != nil {
		return nil, fmt.Errorf("boards %s: %w", filename, err)
	}
	return &Boards{Root: tree}, nil
}

func growBranches(t *BoardTree, branches []BoardState) error {
	for _, bs := range branches {
		n, err := parseNode(bs)
		if err != nil {
			return err
		}
		if err := growBranches(t.GrowBranch(n), bs.Branches); err != nil {
			return err
		}
	}
	return nil
}

func parseNode(bs BoardState) (Node, error) {
	// Trailing spaces may be trimmed by hand editing.
	squares := bs.Squares + strings.Repeat(" ", max(0, BoardSquares-len(bs.Squares)))
	if len(squares) != BoardSquares {
		return Node{}, fmt.Errorf("board %q has %d squares, want %d", bs.ID, len(bs.Squares), BoardSquares)
	}
	n := Node{ID: bs.ID, Board: NewBoard()}
	if n.ID == "" {
		n.ID = NewID()
	}
	for i := 0; i < BoardSquares; i++ {
		switch m := Mark(squares[i]); m {
		case Empty, X, O:
			n.Board[i] = m
		default:
			return Node{}, fmt.Errorf("board %q square %d: bad mark %q", n.ID, i, squares[i])
		}
	}
	return n, nil
}
