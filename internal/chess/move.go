package chess

// Move is one coordinate move read from a replay script.
type Move struct {
	// Text is the token as it appeared in the input.
	Text string

	From Square
	To   Square

	// Promotion is the piece named by the token, NoKind if none was given.
	Promotion Kind
}

// IsPromotion reports whether the token named a promotion piece.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

// UCI returns the move in long coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Letter() + 'a' - 'A')
	}
	return s
}
