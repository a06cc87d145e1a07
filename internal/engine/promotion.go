package engine

import (
	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// ResolvePromotion replaces the pawn awaiting promotion with a new piece of
// kind, keeping its colour and square, and then completes the move: check,
// checkmate and stalemate are evaluated with the new piece in place.
//
// Any kind other than Knight, Bishop, Rook or Queen produces a Queen.
func (m *Match) ResolvePromotion(kind chess.Kind) (Outcome, error) {
	if m.promoted == nil {
		return Outcome{}, &errors.MoveError{Err: errors.ErrNoPendingPromotion}
	}
	if !kind.IsPromotion() {
		kind = chess.Queen
	}

	pawn := m.promoted
	sq := pawn.Square
	m.board.Remove(sq)
	m.board.Place(m.newPiece(kind, pawn.Colour), sq)
	m.promoted = nil

	var out Outcome
	m.finishTurn(&out)
	return out, nil
}
