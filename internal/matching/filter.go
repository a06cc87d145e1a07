package matching

import (
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/processing"
)

// GameFilter combines the configured matchers. Checkmate and stalemate
// criteria are alternatives; every other criterion must also hold.
type GameFilter struct {
	outcomes *CompositeMatcher
	criteria *CompositeMatcher
}

// NewGameFilter creates an empty filter that matches every game.
func NewGameFilter() *GameFilter {
	return &GameFilter{
		outcomes: NewCompositeMatcher(MatchAny),
		criteria: NewCompositeMatcher(MatchAll),
	}
}

// NewGameFilterFromConfig builds a filter from the filter section of the
// configuration.
func NewGameFilterFromConfig(cfg *config.FilterConfig) *GameFilter {
	gf := NewGameFilter()
	if cfg == nil {
		return gf
	}
	if cfg.MatchCheckmate {
		gf.AddOutcome(Checkmate)
	}
	if cfg.MatchStalemate {
		gf.AddOutcome(Stalemate)
	}
	if cfg.CheckMoveBounds {
		gf.Add(NewPlyRangeMatcher(cfg.LowerMoveBound, cfg.UpperMoveBound))
	}
	if cfg.MatchUnderpromotion {
		gf.Add(UnderpromotionMatcher{})
	}
	if cfg.MatchRepetition {
		gf.Add(RepetitionMatcher{})
	}
	if cfg.MaterialPattern != "" {
		gf.Add(NewMaterialMatcher(cfg.MaterialPattern, cfg.ExactMaterial))
	}
	return gf
}

// AddOutcome accepts games ending in outcome, in addition to any outcome
// added before.
func (gf *GameFilter) AddOutcome(outcome Outcome) {
	gf.outcomes.Add(NewOutcomeMatcher(outcome))
}

// Add adds a criterion that every matched game must meet.
func (gf *GameFilter) Add(m GameMatcher) {
	gf.criteria.Add(m)
}

// MatchGame checks if an analysed game matches the filter criteria.
func (gf *GameFilter) MatchGame(ga *processing.GameAnalysis) bool {
	if len(gf.outcomes.Matchers()) > 0 && !gf.outcomes.Match(ga) {
		return false
	}
	return gf.criteria.Match(ga)
}

// HasCriteria returns true if any filter criteria are set.
func (gf *GameFilter) HasCriteria() bool {
	return len(gf.outcomes.Matchers()) > 0 || len(gf.criteria.Matchers()) > 0
}

// Match implements GameMatcher interface.
func (gf *GameFilter) Match(ga *processing.GameAnalysis) bool {
	return gf.MatchGame(ga)
}

// Name implements GameMatcher interface.
func (gf *GameFilter) Name() string {
	return "GameFilter"
}
