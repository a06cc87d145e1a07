// Package chess provides core chess types: colours, piece kinds, squares,
// move masks and the board grid.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// ParseKind converts a piece letter in either case to a piece kind.
// It returns NoKind for anything it does not recognise.
func ParseKind(c byte) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'P', 'p':
		return Pawn
	default:
		return NoKind
	}
}

// IsPromotion reports whether a pawn may be promoted to k.
func (k Kind) IsPromotion() bool {
	return k == Knight || k == Bishop || k == Rook || k == Queen
}

// ParsePromotion maps a player's promotion letter (B/N/R/Q, any case) to a kind.
// Anything else, including the empty string, yields Queen.
func ParsePromotion(s string) Kind {
	if len(s) == 1 {
		if k := ParseKind(s[0]); k.IsPromotion() {
			return k
		}
	}
	return Queen
}

// Occupant is the value tag of whatever stands on a square.
// The zero value is an empty square.
type Occupant struct {
	Kind   Kind
	Colour Colour
}

// IsEmpty reports whether the occupant describes an empty square.
func (o Occupant) IsEmpty() bool {
	return o.Kind == NoKind
}

// Letter returns the placement letter: uppercase for White, lowercase for Black,
// and a space for an empty square.
func (o Occupant) Letter() byte {
	letter := o.Kind.Letter()
	if o.Kind != NoKind && o.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight", or "empty".
func (o Occupant) String() string {
	if o.IsEmpty() {
		return "empty"
	}
	return o.Colour.String() + " " + o.Kind.String()
}

// Snapshot is a full view of the board for rendering, indexed [row][col].
type Snapshot [BoardSize][BoardSize]Occupant

// Mask marks target squares, indexed [row][col].
type Mask [BoardSize][BoardSize]bool

// Set marks sq. Invalid squares are ignored.
func (m *Mask) Set(sq Square) {
	if sq.Valid() {
		m[sq.Row][sq.Col] = true
	}
}

// Has reports whether sq is marked.
func (m *Mask) Has(sq Square) bool {
	return sq.Valid() && m[sq.Row][sq.Col]
}

// Any reports whether at least one square is marked.
func (m *Mask) Any() bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if m[row][col] {
				return true
			}
		}
	}
	return false
}

// Count returns the number of marked squares.
func (m *Mask) Count() int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if m[row][col] {
				n++
			}
		}
	}
	return n
}

// Squares returns the marked squares in row-major order.
func (m *Mask) Squares() []Square {
	var squares []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if m[row][col] {
				squares = append(squares, Square{Row: row, Col: col})
			}
		}
	}
	return squares
}

// Castling sides, the second index of Rights.Castling.
const (
	KingSide = iota
	QueenSide
)

// Rights holds the parts of a position that the placement does not show.
// Castling is indexed [colour][side]. EnPassant is set only when the side
// to move can actually capture en passant, onto column EnPassantCol.
// The zero value grants no rights.
type Rights struct {
	Castling     [2][2]bool
	EnPassant    bool
	EnPassantCol int
}
