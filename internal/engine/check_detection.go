package engine

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// attackMask returns the squares p threatens. It matches PossibleMoves for
// every capture p could make, except that pawn diagonals are marked whether
// or not they are occupied, and castling (which never captures) is left out.
func attackMask(board *chess.Board, p *chess.Piece) chess.Mask {
	var mask chess.Mask

	switch p.Kind {
	case chess.Pawn:
		pawnAttacks(p, &mask)
	case chess.Knight:
		stepMoves(board, p, knightOffsets, &mask)
	case chess.Bishop:
		slideMoves(board, p, diagonalDirs, &mask)
	case chess.Rook:
		slideMoves(board, p, straightDirs, &mask)
	case chess.Queen:
		slideMoves(board, p, diagonalDirs, &mask)
		slideMoves(board, p, straightDirs, &mask)
	case chess.King:
		stepMoves(board, p, kingOffsets, &mask)
	}

	return mask
}

// Attacked reports whether any piece of colour by attacks sq.
func (m *Match) Attacked(sq chess.Square, by chess.Colour) bool {
	for _, p := range m.pieces {
		if !p.OnBoard || p.Colour != by {
			continue
		}
		mask := attackMask(m.board, p)
		if mask.Has(sq) {
			return true
		}
	}
	return false
}

// InCheck reports whether colour's king is attacked by any opposing piece.
func (m *Match) InCheck(colour chess.Colour) bool {
	king := m.king(colour)
	return m.Attacked(king.Square, colour.Opposite())
}

// king returns colour's king. A board without one is corrupt, so this panics
// with an error wrapping ErrMissingKing.
func (m *Match) king(colour chess.Colour) *chess.Piece {
	for _, p := range m.pieces {
		if p.OnBoard && p.Kind == chess.King && p.Colour == colour {
			return p
		}
	}
	panic(fmt.Errorf("%w: no %v king", errors.ErrMissingKing, colour))
}
