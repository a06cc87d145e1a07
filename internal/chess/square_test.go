package chess

import (
	"errors"
	"fmt"
	"testing"

	chesserrors "github.com/lgbarn/chessmatch-go/internal/errors"
)

func TestSquareRoundTrip(t *testing.T) {
	t.Parallel()
	seen := make(map[Square]string)

	for file := byte('a'); file <= 'h'; file++ {
		for rank := 1; rank <= 8; rank++ {
			text := fmt.Sprintf("%c%d", file, rank)
			sq, err := ParseSquare(text)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", text, err)
			}
			if !sq.Valid() {
				t.Errorf("ParseSquare(%q) = %+v, not a valid square", text, sq)
			}
			if got := sq.String(); got != text {
				t.Errorf("ParseSquare(%q).String() = %q", text, got)
			}
			if prev, dup := seen[sq]; dup {
				t.Errorf("ParseSquare(%q) and ParseSquare(%q) both map to %+v", prev, text, sq)
			}
			seen[sq] = text
		}
	}

	if len(seen) != 64 {
		t.Errorf("distinct squares = %d; want 64", len(seen))
	}
}

func TestParseSquareOrientation(t *testing.T) {
	tests := []struct {
		text string
		want Square
	}{
		{"a8", Square{Row: 0, Col: 0}},
		{"h8", Square{Row: 0, Col: 7}},
		{"a1", Square{Row: 7, Col: 0}},
		{"e2", Square{Row: 6, Col: 4}},
		{"E2", Square{Row: 6, Col: 4}},
	}

	for _, tt := range tests {
		got, err := ParseSquare(tt.text)
		if err != nil {
			t.Errorf("ParseSquare(%q) error: %v", tt.text, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSquare(%q) = %+v; want %+v", tt.text, got, tt.want)
		}
	}
}

func TestParseSquareInvalid(t *testing.T) {
	t.Parallel()
	invalid := []string{"", "e", "e22", "i1", "a0", "a9", "`1", "11", "ee", "e-", " e2", "e2 "}

	for _, text := range invalid {
		t.Run(fmt.Sprintf("%q", text), func(t *testing.T) {
			_, err := ParseSquare(text)
			if !errors.Is(err, chesserrors.ErrInvalidSquare) {
				t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", text, err)
			}
		})
	}
}

func TestFromAlgebraicInvalid(t *testing.T) {
	if _, err := FromAlgebraic('h', 9); !errors.Is(err, chesserrors.ErrInvalidSquare) {
		t.Errorf("FromAlgebraic('h', 9) error = %v; want ErrInvalidSquare", err)
	}
	if _, err := FromAlgebraic('z', 1); !errors.Is(err, chesserrors.ErrInvalidSquare) {
		t.Errorf("FromAlgebraic('z', 1) error = %v; want ErrInvalidSquare", err)
	}
}

func TestInvalidSquareString(t *testing.T) {
	if got := (Square{Row: 8, Col: 0}).String(); got != "-" {
		t.Errorf("String() of off-board square = %q; want \"-\"", got)
	}
}
