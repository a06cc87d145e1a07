package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// Rights returns the castling and en passant rights of the position.
//
// A colour may castle on a side while its king and that side's rook are
// both unmoved; whether the castle is playable this turn does not matter.
// En passant counts only when the side to move has a capture that does not
// expose its own king.
func (m *Match) Rights() chess.Rights {
	var r chess.Rights
	for _, king := range m.pieces {
		if king.Kind != chess.King || !king.OnBoard || king.Moves != 0 {
			continue
		}
		for side, cs := range castleSides {
			rook := m.board.At(king.Square.Offset(0, cs.rookOffset))
			r.Castling[king.Colour][side] = canCastleWith(rook, king)
		}
	}

	if m.state == Idle && m.enPassant != nil {
		for _, p := range m.pieces {
			if !p.OnBoard || p.Kind != chess.Pawn || p.Colour != m.current {
				continue
			}
			target, ok := enPassantTarget(m.board, p, m)
			if ok && m.tryMove(p.Square, target) {
				r.EnPassant = true
				r.EnPassantCol = target.Col
				break
			}
		}
	}
	return r
}
