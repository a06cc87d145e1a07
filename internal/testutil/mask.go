package testutil

import (
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// MaskOf builds a mask with the given algebraic squares marked.
// It calls t.Fatal on a malformed square.
func MaskOf(t *testing.T, squares ...string) chess.Mask {
	t.Helper()
	var m chess.Mask
	for _, s := range squares {
		sq, err := chess.ParseSquare(s)
		if err != nil {
			t.Fatalf("MaskOf(%q): %v", s, err)
		}
		m.Set(sq)
	}
	return m
}

// MaskSquares lists the marked squares of m in algebraic form, row-major.
// Comparing these lists gives readable cmp diffs.
func MaskSquares(m chess.Mask) []string {
	var out []string
	for _, sq := range m.Squares() {
		out = append(out, sq.String())
	}
	return out
}

// AssertMask fails unless got marks exactly the want squares.
func AssertMask(t *testing.T, got chess.Mask, want ...string) {
	t.Helper()
	AssertEqual(t, MaskSquares(got), MaskSquares(MaskOf(t, want...)))
}
