package engine

import (
	"cmp"

	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// Ray directions as (row, column) steps.
var (
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// slideMoves walks each ray from p until it leaves the board or is blocked.
// Empty squares are marked and the walk continues; an opponent's square is
// marked and ends the ray; an own piece ends the ray unmarked.
func slideMoves(board *chess.Board, p *chess.Piece, dirs [][2]int, mask *chess.Mask) {
	for _, dir := range dirs {
		sq := p.Square.Offset(dir[0], dir[1])
		for sq.Valid() {
			occupant := board.At(sq)
			if occupant != nil {
				if occupant.Colour != p.Colour {
					mask.Set(sq)
				}
				break // Blocked
			}
			mask.Set(sq)
			sq = sq.Offset(dir[0], dir[1])
		}
	}
}

// isPathClear reports whether every square strictly between from and to on
// the same row is empty.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	step := cmp.Compare(to.Col, from.Col)
	for sq := from.Offset(0, step); sq.Col != to.Col; sq = sq.Offset(0, step) {
		if board.Occupied(sq) {
			return false
		}
	}
	return true
}

func abs(x int) int { return max(x, -x) }
