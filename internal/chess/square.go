package chess

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Constants for board dimensions and algebraic coordinates.
const (
	BoardSize = 8

	FirstFile = 'a'
	LastFile  = FirstFile + BoardSize - 1
	FirstRank = 1
	LastRank  = FirstRank + BoardSize - 1
)

// Square is an internal grid coordinate. Row 0 is rank 8 and row 7 is rank 1;
// column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square dRow rows and dCol columns away. The result may be invalid.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// File returns the algebraic file letter of the square.
func (s Square) File() byte {
	return byte(FirstFile + s.Col)
}

// Rank returns the algebraic rank number of the square.
func (s Square) Rank() int {
	return BoardSize - s.Row
}

// String returns the algebraic form, e.g. "e4", or "-" for an invalid square.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", s.File(), s.Rank())
}

// FromAlgebraic converts a file letter and rank number to a square.
func FromAlgebraic(file byte, rank int) (Square, error) {
	if file < FirstFile || file > LastFile || rank < FirstRank || rank > LastRank {
		return Square{}, fmt.Errorf("%c%d: %w", file, rank, errors.ErrInvalidSquare)
	}
	return Square{Row: BoardSize - rank, Col: int(file - FirstFile)}, nil
}

// ParseSquare converts an algebraic coordinate such as "e2" to a square.
// Upper-case files are accepted.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	file := s[0]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if s[1] < '0' || s[1] > '9' {
		return Square{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	return FromAlgebraic(file, int(s[1]-'0'))
}

// MustParseSquare is like ParseSquare but panics on error. It is meant for
// constant coordinates in setup code and tests.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}
