package engine

import (
	"cmp"

	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// castleSide describes where the rook stands relative to the king and which
// way the king travels.
type castleSide struct {
	rookOffset int
	step       int
}

var castleSides = [...]castleSide{
	chess.KingSide:  {rookOffset: 3, step: 1},
	chess.QueenSide: {rookOffset: -4, step: -1},
}

// castlingMoves marks the king's castling targets. Both pieces must be
// unmoved, the king must not be in check, the squares between them must be
// empty, and neither square the king crosses or lands on may be attacked.
func castlingMoves(board *chess.Board, king *chess.Piece, ctx MoveContext, mask *chess.Mask) {
	if king.Moves != 0 || ctx.InCheck(king.Colour) {
		return
	}
	opponent := king.Colour.Opposite()

	for _, side := range castleSides {
		rookSq := king.Square.Offset(0, side.rookOffset)
		if !canCastleWith(board.At(rookSq), king) {
			continue
		}
		if !isPathClear(board, king.Square, rookSq) {
			continue
		}
		cross := king.Square.Offset(0, side.step)
		land := king.Square.Offset(0, 2*side.step)
		if ctx.Attacked(cross, opponent) || ctx.Attacked(land, opponent) {
			continue
		}
		mask.Set(land)
	}
}

// canCastleWith reports whether rook is an unmoved rook of the king's colour.
func canCastleWith(rook, king *chess.Piece) bool {
	return rook != nil && rook.Kind == chess.Rook && rook.Colour == king.Colour && rook.Moves == 0
}

// isCastle reports whether moving p from origin to target is a castling move.
func isCastle(p *chess.Piece, origin, target chess.Square) bool {
	return p.Kind == chess.King && origin.Row == target.Row && abs(target.Col-origin.Col) == 2
}

// castleRookSquares returns where the rook starts and ends for a king moving
// from origin to target. The rook finishes beside the king on the inner side.
func castleRookSquares(origin, target chess.Square) (from, to chess.Square) {
	step := cmp.Compare(target.Col, origin.Col)
	for _, side := range castleSides {
		if side.step == step {
			from = origin.Offset(0, side.rookOffset)
		}
	}
	return from, target.Offset(0, -step)
}
