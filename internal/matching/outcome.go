package matching

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/processing"
)

// Outcome names a way a replayed game can end on the board.
type Outcome int

const (
	Checkmate Outcome = iota
	Stalemate
)

// String returns "checkmate" or "stalemate".
func (o Outcome) String() string {
	if o == Stalemate {
		return "stalemate"
	}
	return "checkmate"
}

// OutcomeMatcher matches games that were replayed without error and
// ended in the given outcome.
type OutcomeMatcher struct {
	outcome Outcome
}

// NewOutcomeMatcher creates a matcher for outcome.
func NewOutcomeMatcher(outcome Outcome) *OutcomeMatcher {
	return &OutcomeMatcher{outcome: outcome}
}

// Match implements GameMatcher.
func (om *OutcomeMatcher) Match(ga *processing.GameAnalysis) bool {
	if !ga.OK() {
		return false
	}
	if om.outcome == Stalemate {
		return ga.Stalemate
	}
	return ga.Checkmate
}

// Name implements GameMatcher.
func (om *OutcomeMatcher) Name() string {
	return "Outcome(" + om.outcome.String() + ")"
}

// PlyRangeMatcher matches games whose accepted ply count lies in [lower, upper].
type PlyRangeMatcher struct {
	lower, upper int
}

// NewPlyRangeMatcher creates a matcher for the inclusive range [lower, upper].
func NewPlyRangeMatcher(lower, upper int) *PlyRangeMatcher {
	return &PlyRangeMatcher{lower: lower, upper: upper}
}

// Match implements GameMatcher.
func (pm *PlyRangeMatcher) Match(ga *processing.GameAnalysis) bool {
	return ga.Plies >= pm.lower && ga.Plies <= pm.upper
}

// Name implements GameMatcher.
func (pm *PlyRangeMatcher) Name() string {
	return fmt.Sprintf("PlyRange(%d-%d)", pm.lower, pm.upper)
}

// UnderpromotionMatcher matches games with a promotion to anything but a Queen.
type UnderpromotionMatcher struct{}

// Match implements GameMatcher.
func (UnderpromotionMatcher) Match(ga *processing.GameAnalysis) bool {
	return ga.HasUnderpromotion
}

// Name implements GameMatcher.
func (UnderpromotionMatcher) Name() string {
	return "Underpromotion"
}

// RepetitionMatcher matches games in which some position occurred three times.
type RepetitionMatcher struct{}

// Match implements GameMatcher.
func (RepetitionMatcher) Match(ga *processing.GameAnalysis) bool {
	return ga.HasRepetition
}

// Name implements GameMatcher.
func (RepetitionMatcher) Name() string {
	return "Repetition"
}
