package chess

// PieceID is a stable handle for a piece. Zero is never assigned.
type PieceID int

// Piece is a single chess piece. Square and OnBoard are maintained by the Board;
// nothing else writes them.
type Piece struct {
	ID     PieceID
	Kind   Kind
	Colour Colour

	// Moves counts how many times the piece has moved. Apply increments it and
	// revert decrements it; castling and the pawn double step require zero.
	Moves int

	Square  Square
	OnBoard bool
}

// Occupant returns the piece's value tag.
func (p *Piece) Occupant() Occupant {
	if p == nil {
		return Occupant{}
	}
	return Occupant{Kind: p.Kind, Colour: p.Colour}
}

// Board is an 8x8 grid of optional pieces. It knows nothing about chess rules.
type Board struct {
	cells [BoardSize][BoardSize]*Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// At returns the piece on sq, or nil if the square is empty or off the board.
func (b *Board) At(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	return b.cells[sq.Row][sq.Col]
}

// Occupied reports whether a piece stands on sq.
func (b *Board) Occupied(sq Square) bool {
	return b.At(sq) != nil
}

// Place puts p on sq and records the square on the piece.
// The square must be valid and empty.
func (b *Board) Place(p *Piece, sq Square) {
	if !sq.Valid() {
		panic("chess: place on invalid square " + sq.String())
	}
	if b.cells[sq.Row][sq.Col] != nil {
		panic("chess: place on occupied square " + sq.String())
	}
	b.cells[sq.Row][sq.Col] = p
	p.Square = sq
	p.OnBoard = true
}

// Remove takes the piece off sq and returns it, or returns nil if sq is empty.
func (b *Board) Remove(sq Square) *Piece {
	p := b.At(sq)
	if p == nil {
		return nil
	}
	b.cells[sq.Row][sq.Col] = nil
	p.OnBoard = false
	return p
}

// Snapshot returns the occupant tag of every square.
func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			s[row][col] = b.cells[row][col].Occupant()
		}
	}
	return s
}
