package engine

import (
	"fmt"
	"unicode"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// InitialPlacement is the piece placement of the standard starting position,
// written rank 8 first as in the placement field of a FEN string.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// NewMatch creates a match in the standard starting position, White to move.
func NewMatch() *Match {
	m, err := NewMatchFromPlacement(InitialPlacement, chess.White)
	if err != nil {
		panic(err)
	}
	return m
}

// NewMatchFromPlacement creates a match from a piece placement string such as
// "6k1/5ppp/8/8/8/8/8/R5K1" with toMove to play. Every piece starts with a
// zero move counter, so unmoved kings and rooks on their usual squares may
// castle. The position must hold exactly one king per colour and the side
// not to move must not be in check.
func NewMatchFromPlacement(placement string, toMove chess.Colour) (*Match, error) {
	m := newMatch()
	m.current = toMove

	if err := m.placePieces(placement); err != nil {
		return nil, err
	}
	if err := m.validateKings(); err != nil {
		return nil, err
	}
	if m.InCheck(toMove.Opposite()) {
		return nil, fmt.Errorf("%v is in check with %v to move: %w", toMove.Opposite(), toMove, errors.ErrInvalidPlacement)
	}

	m.check = m.InCheck(toMove)
	switch {
	case m.check && !m.hasSafeMove(toMove):
		m.checkmate = true
		m.current = toMove.Opposite()
		m.state = Finished
	case !m.check && !m.hasSafeMove(toMove):
		m.stalemate = true
		m.current = toMove.Opposite()
		m.state = Finished
	}
	return m, nil
}

// placePieces parses the placement string onto the board.
func (m *Match) placePieces(placement string) error {
	row, col := 0, 0

	for _, c := range placement {
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return fmt.Errorf("row %d has %d squares: %w", row+1, col, errors.ErrInvalidPlacement)
			}
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
			if col > chess.BoardSize {
				return fmt.Errorf("row %d overflows: %w", row+1, errors.ErrInvalidPlacement)
			}
		default:
			kind := chess.NoKind
			if c < unicode.MaxASCII {
				kind = chess.ParseKind(byte(c))
			}
			if kind == chess.NoKind {
				return fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidPlacement)
			}
			sq := chess.Square{Row: row, Col: col}
			if !sq.Valid() {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidPlacement)
			}
			if kind == chess.Pawn && (row == 0 || row == chess.BoardSize-1) {
				return fmt.Errorf("pawn on %v: %w", sq, errors.ErrInvalidPlacement)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			m.board.Place(m.newPiece(kind, colour), sq)
			col++
		}
	}

	if row != chess.BoardSize-1 || col != chess.BoardSize {
		return fmt.Errorf("placement must describe 8 full rows: %w", errors.ErrInvalidPlacement)
	}
	return nil
}

// validateKings checks that each colour has exactly one king.
func (m *Match) validateKings() error {
	var kings [2]int
	for _, p := range m.pieces {
		if p.Kind == chess.King {
			kings[p.Colour]++
		}
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if kings[colour] != 1 {
			return fmt.Errorf("%v has %d kings: %w", colour, kings[colour], errors.ErrInvalidPlacement)
		}
	}
	return nil
}
