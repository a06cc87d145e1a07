package engine

import (
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// sq parses an algebraic square for test tables.
func sq(s string) chess.Square {
	return chess.MustParseSquare(s)
}

func mustMatch(t testing.TB, placement string, toMove chess.Colour) *Match {
	t.Helper()
	m, err := NewMatchFromPlacement(placement, toMove)
	if err != nil {
		t.Fatalf("NewMatchFromPlacement(%q) error: %v", placement, err)
	}
	return m
}

// play submits each "e2e4" style move in order, resolving promotions to a
// Queen, and returns the outcome of the last one.
func play(t testing.TB, m *Match, moves ...string) Outcome {
	t.Helper()
	var out Outcome
	for _, mv := range moves {
		var err error
		out, err = m.SubmitMove(sq(mv[:2]), sq(mv[2:4]))
		if err != nil {
			t.Fatalf("SubmitMove(%s) error: %v", mv, err)
		}
		if out.Promotion {
			if out, err = m.ResolvePromotion(chess.Queen); err != nil {
				t.Fatalf("ResolvePromotion after %s error: %v", mv, err)
			}
		}
	}
	return out
}

type pieceState struct {
	ID      chess.PieceID
	Kind    chess.Kind
	Colour  chess.Colour
	Moves   int
	Square  chess.Square
	OnBoard bool
}

type matchState struct {
	Pieces   []pieceState
	Captured []chess.PieceID
	Board    chess.Snapshot
}

// stateOf captures everything apply and revert touch.
func stateOf(m *Match) matchState {
	var s matchState
	for _, p := range m.pieces {
		s.Pieces = append(s.Pieces, pieceState{p.ID, p.Kind, p.Colour, p.Moves, p.Square, p.OnBoard})
	}
	for _, p := range m.captured {
		s.Captured = append(s.Captured, p.ID)
	}
	s.Board = m.board.Snapshot()
	return s
}
