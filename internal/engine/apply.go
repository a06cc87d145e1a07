package engine

import (
	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// moveRecord holds everything revert needs to undo one apply exactly.
type moveRecord struct {
	origin chess.Square
	target chess.Square
	mover  *chess.Piece

	// captured stood on capturedAt, which is the target except for en passant.
	captured   *chess.Piece
	capturedAt chess.Square

	// rook is set for castling.
	rook     *chess.Piece
	rookFrom chess.Square
	rookTo   chess.Square
}

// apply moves the piece on origin to target, capturing whatever stands there,
// and performs the castling and en passant side effects. It does not check
// legality; callers validate first and revert when needed.
func (m *Match) apply(origin, target chess.Square) moveRecord {
	mover := m.board.Remove(origin)
	rec := moveRecord{origin: origin, target: target, mover: mover}

	if victim := m.board.Remove(target); victim != nil {
		rec.captured, rec.capturedAt = victim, target
	} else if mover.Kind == chess.Pawn && origin.Col != target.Col {
		// En passant: the victim stands beside the origin, behind the target.
		beside := chess.Square{Row: origin.Row, Col: target.Col}
		if victim := m.board.Remove(beside); victim != nil {
			rec.captured, rec.capturedAt = victim, beside
		}
	}

	m.board.Place(mover, target)
	mover.Moves++

	if rec.captured != nil {
		m.captured = append(m.captured, rec.captured)
	}

	if isCastle(mover, origin, target) {
		rec.rookFrom, rec.rookTo = castleRookSquares(origin, target)
		rec.rook = m.board.Remove(rec.rookFrom)
		m.board.Place(rec.rook, rec.rookTo)
		rec.rook.Moves++
	}

	return rec
}

// revert undoes rec, restoring positions, move counters, the capture history
// and roster membership.
func (m *Match) revert(rec moveRecord) {
	if rec.rook != nil {
		m.board.Remove(rec.rookTo)
		m.board.Place(rec.rook, rec.rookFrom)
		rec.rook.Moves--
	}

	m.board.Remove(rec.target)
	m.board.Place(rec.mover, rec.origin)
	rec.mover.Moves--

	if rec.captured != nil {
		m.captured = m.captured[:len(m.captured)-1]
		m.board.Place(rec.captured, rec.capturedAt)
	}
}
