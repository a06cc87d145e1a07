package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// FilterConfig selects which replayed games are reported.
type FilterConfig struct {
	// CheckMoveBounds enables the ply count bounds below
	CheckMoveBounds bool `json:"check_move_bounds"`
	LowerMoveBound  int  `json:"lower_move_bound"`
	UpperMoveBound  int  `json:"upper_move_bound"`

	// Outcome filters
	MatchCheckmate      bool `json:"checkmate"`
	MatchStalemate      bool `json:"stalemate"`
	MatchUnderpromotion bool `json:"underpromotion"`
	MatchRepetition     bool `json:"repetition"`

	// Material balance of the final position, e.g. "KQ:k"
	MaterialPattern string `json:"material"`
	ExactMaterial   bool   `json:"exact_material"`
}

// NewFilterConfig creates a FilterConfig that matches every game.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{}
}

// Validate checks the ply bounds and the material pattern.
func (f *FilterConfig) Validate() error {
	if f.CheckMoveBounds {
		if f.LowerMoveBound < 0 || f.UpperMoveBound < 0 {
			return fmt.Errorf("move bounds must not be negative: %w", errors.ErrInvalidConfig)
		}
		if f.LowerMoveBound > f.UpperMoveBound {
			return fmt.Errorf("lower move bound %d exceeds upper bound %d: %w", f.LowerMoveBound, f.UpperMoveBound, errors.ErrInvalidConfig)
		}
	}
	if strings.Count(f.MaterialPattern, ":") > 1 {
		return fmt.Errorf("material pattern %q has more than one ':': %w", f.MaterialPattern, errors.ErrInvalidConfig)
	}
	if i := strings.IndexFunc(f.MaterialPattern, notMaterialLetter); i >= 0 {
		bad, _ := utf8.DecodeRuneInString(f.MaterialPattern[i:])
		return fmt.Errorf("material pattern %q: bad character %q: %w", f.MaterialPattern, bad, errors.ErrInvalidConfig)
	}
	return nil
}

func notMaterialLetter(r rune) bool {
	return !strings.ContainsRune("KQRBNPkqrbnp:", r)
}
