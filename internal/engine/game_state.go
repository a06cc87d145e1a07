package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// IsCheckmate reports whether colour is in check with no move that escapes it.
func (m *Match) IsCheckmate(colour chess.Colour) bool {
	if !m.InCheck(colour) {
		return false
	}
	return !m.hasSafeMove(colour)
}

// IsStalemate reports whether colour is not in check but has no safe move.
func (m *Match) IsStalemate(colour chess.Colour) bool {
	if m.InCheck(colour) {
		return false
	}
	return !m.hasSafeMove(colour)
}
