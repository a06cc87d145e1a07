package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// MoveContext answers the questions move generation cannot answer from the
// board alone. Match implements it; pieces never hold a reference to it.
type MoveContext interface {
	// InCheck reports whether colour's king is currently attacked.
	InCheck(colour chess.Colour) bool
	// Attacked reports whether any piece of colour by attacks sq.
	Attacked(sq chess.Square, by chess.Colour) bool
	// EnPassantPawn returns the pawn that just advanced two ranks, or nil.
	EnPassantPawn() *chess.Piece
}

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// PossibleMoves returns the pseudo-legal targets of p: every square its
// movement rules allow, without regard to whether the move would leave its
// own king in check.
func PossibleMoves(board *chess.Board, p *chess.Piece, ctx MoveContext) chess.Mask {
	var mask chess.Mask

	switch p.Kind {
	case chess.Pawn:
		pawnMoves(board, p, ctx, &mask)
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
		castlingMoves(board, p, ctx, &mask)
	}

	return mask
}

// HasAnyMove reports whether p has at least one pseudo-legal target.
func HasAnyMove(board *chess.Board, p *chess.Piece, ctx MoveContext) bool {
	mask := PossibleMoves(board, p, ctx)
	return mask.Any()
}

// stepMoves marks each on-board offset square that is empty or holds an opponent.
func stepMoves(board *chess.Board, p *chess.Piece, offsets [][2]int, mask *chess.Mask) {
	for _, off := range offsets {
		sq := p.Square.Offset(off[0], off[1])
		if canLandOn(board, p, sq) {
			mask.Set(sq)
		}
	}
}

// canLandOn reports whether sq is on the board and not held by p's own side.
func canLandOn(board *chess.Board, p *chess.Piece, sq chess.Square) bool {
	if !sq.Valid() {
		return false
	}
	occupant := board.At(sq)
	return occupant == nil || occupant.Colour != p.Colour
}

// isOpponent reports whether sq holds a piece of the other colour.
func isOpponent(board *chess.Board, p *chess.Piece, sq chess.Square) bool {
	occupant := board.At(sq)
	return occupant != nil && occupant.Colour != p.Colour
}
