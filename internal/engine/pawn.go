package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// pawnDirection returns the row step of a forward pawn move: White moves
// towards row 0 (rank 8), Black towards row 7.
func pawnDirection(colour chess.Colour) int {
	if colour == chess.White {
		return -1
	}
	return 1
}

// pawnStartRow returns the row pawns of colour start on.
func pawnStartRow(colour chess.Colour) int {
	if colour == chess.White {
		return 6
	}
	return 1
}

// promotionRow returns the farthest row for pawns of colour.
func promotionRow(colour chess.Colour) int {
	if colour == chess.White {
		return 0
	}
	return chess.BoardSize - 1
}

// pawnMoves marks pushes, captures and en passant captures for p.
func pawnMoves(board *chess.Board, p *chess.Piece, ctx MoveContext, mask *chess.Mask) {
	dir := pawnDirection(p.Colour)

	one := p.Square.Offset(dir, 0)
	if one.Valid() && !board.Occupied(one) {
		mask.Set(one)

		two := p.Square.Offset(2*dir, 0)
		if p.Moves == 0 && p.Square.Row == pawnStartRow(p.Colour) && !board.Occupied(two) {
			mask.Set(two)
		}
	}

	for _, dc := range []int{-1, 1} {
		sq := p.Square.Offset(dir, dc)
		if sq.Valid() && isOpponent(board, p, sq) {
			mask.Set(sq)
		}
	}

	if target, ok := enPassantTarget(board, p, ctx); ok {
		mask.Set(target)
	}
}

// enPassantTarget returns the square p would land on when capturing the
// en passant eligible pawn. The victim must stand directly beside p.
func enPassantTarget(board *chess.Board, p *chess.Piece, ctx MoveContext) (chess.Square, bool) {
	victim := ctx.EnPassantPawn()
	if victim == nil || !victim.OnBoard || victim.Colour == p.Colour {
		return chess.Square{}, false
	}
	if victim.Square.Row != p.Square.Row || abs(victim.Square.Col-p.Square.Col) != 1 {
		return chess.Square{}, false
	}
	target := victim.Square.Offset(pawnDirection(p.Colour), 0)
	if !target.Valid() || board.Occupied(target) {
		return chess.Square{}, false
	}
	return target, true
}

// pawnAttacks marks both forward diagonals of p whether or not they are occupied.
func pawnAttacks(p *chess.Piece, mask *chess.Mask) {
	dir := pawnDirection(p.Colour)
	mask.Set(p.Square.Offset(dir, -1))
	mask.Set(p.Square.Offset(dir, 1))
}
