package matching

import (
	"strings"
	"unicode"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/processing"
)

// materialCount holds piece counts indexed by colour and then kind.
type materialCount [2][chess.NumKinds]int

// MaterialMatcher matches games by the material left on the final board.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern    string
	exactMatch bool
	want       materialCount
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces)
// Use uppercase for white, lowercase for black
// K=King, Q=Queen, R=Rook, B=Bishop, N=Knight, P=Pawn
//
// With exact set the final position must hold precisely the listed pieces;
// otherwise it must hold at least them.
func NewMaterialMatcher(pattern string, exact bool) *MaterialMatcher {
	mm := &MaterialMatcher{
		pattern:    pattern,
		exactMatch: exact,
	}
	mm.parsePattern(pattern)
	return mm
}

// parsePattern counts the letters of a pattern like "QR:qrr". The case of
// each letter gives its colour, so the separator is optional.
func (mm *MaterialMatcher) parsePattern(pattern string) {
	for _, c := range strings.ReplaceAll(pattern, ":", "") {
		if c >= unicode.MaxASCII {
			continue
		}
		kind := chess.ParseKind(byte(c))
		if kind == chess.NoKind {
			continue
		}
		colour := chess.White
		if unicode.IsLower(c) {
			colour = chess.Black
		}
		mm.want[colour][kind]++
	}
}

// Match implements GameMatcher.
func (mm *MaterialMatcher) Match(ga *processing.GameAnalysis) bool {
	return mm.matchPosition(ga.FinalBoard)
}

// Name implements GameMatcher.
func (mm *MaterialMatcher) Name() string {
	if mm.exactMatch {
		return "Material(exact " + mm.pattern + ")"
	}
	return "Material(" + mm.pattern + ")"
}

// matchPosition checks if a position matches the material pattern.
func (mm *MaterialMatcher) matchPosition(snap chess.Snapshot) bool {
	var have materialCount
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			occ := snap[row][col]
			if !occ.IsEmpty() {
				have[occ.Colour][occ.Kind]++
			}
		}
	}

	for colour := range have {
		for kind := chess.Pawn; kind < chess.NumKinds; kind++ {
			want, got := mm.want[colour][kind], have[colour][kind]
			if mm.exactMatch && got != want {
				return false
			}
			if got < want {
				return false
			}
		}
	}
	return true
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}
