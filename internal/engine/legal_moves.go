package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// SafeMoves returns the LegalMoves mask of origin with every move that would
// leave the mover's own king in check removed. Each candidate is applied,
// tested and reverted, so the match is unchanged afterwards.
func (m *Match) SafeMoves(origin chess.Square) (chess.Mask, error) {
	mask, err := m.LegalMoves(origin)
	if err != nil {
		return chess.Mask{}, err
	}

	for _, target := range mask.Squares() {
		if !m.tryMove(origin, target) {
			mask[target.Row][target.Col] = false
		}
	}
	return mask, nil
}

// hasSafeMove reports whether colour has any move that leaves its king safe.
// Pieces are tried in arena order and targets in row-major order; the search
// stops at the first escape.
func (m *Match) hasSafeMove(colour chess.Colour) bool {
	for _, p := range m.pieces {
		if !p.OnBoard || p.Colour != colour {
			continue
		}
		origin := p.Square
		mask := PossibleMoves(m.board, p, m)
		for _, target := range mask.Squares() {
			if m.tryMove(origin, target) {
				return true
			}
		}
	}
	return false
}

// tryMove applies the move, checks whether the mover's king is safe, and
// reverts unconditionally.
func (m *Match) tryMove(origin, target chess.Square) bool {
	colour := m.board.At(origin).Colour
	rec := m.apply(origin, target)
	safe := !m.InCheck(colour)
	m.revert(rec)
	return safe
}
