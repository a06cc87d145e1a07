// Package matching selects replayed games by outcome, length and final
// material.
package matching

import (
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/processing"
)

// GameMatcher decides whether a replayed game should be reported.
type GameMatcher interface {
	Match(ga *processing.GameAnalysis) bool
	Name() string
}

// MatchMode says how the members of a CompositeMatcher combine.
type MatchMode int

const (
	MatchAll MatchMode = iota // every member must accept
	MatchAny                  // one member is enough
)

func (m MatchMode) String() string {
	if m == MatchAny {
		return "OR"
	}
	return "AND"
}

// CompositeMatcher accepts a game when its members do, combined by mode.
// With no members, MatchAll accepts everything and MatchAny nothing.
type CompositeMatcher struct {
	matchers []GameMatcher
	mode     MatchMode
}

// NewCompositeMatcher returns a composite of matchers combined by mode.
func NewCompositeMatcher(mode MatchMode, matchers ...GameMatcher) *CompositeMatcher {
	return &CompositeMatcher{matchers: matchers, mode: mode}
}

// Match implements GameMatcher.
func (c *CompositeMatcher) Match(ga *processing.GameAnalysis) bool {
	// An AND fails on the first rejection and an OR succeeds on the first
	// acceptance; either way the loop stops when a member's verdict differs
	// from the identity of the mode.
	identity := c.mode == MatchAll
	for _, m := range c.matchers {
		if m.Match(ga) != identity {
			return !identity
		}
	}
	return identity
}

// Name implements GameMatcher.
func (c *CompositeMatcher) Name() string {
	if len(c.matchers) == 0 {
		return "CompositeMatcher(empty)"
	}

	var sb strings.Builder
	sb.WriteString("CompositeMatcher(")
	sb.WriteString(c.mode.String())
	sb.WriteString(": ")
	for i, m := range c.matchers {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.Name())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Add appends m to the composite.
func (c *CompositeMatcher) Add(m GameMatcher) {
	c.matchers = append(c.matchers, m)
}

// Matchers returns the members in the order they were added.
func (c *CompositeMatcher) Matchers() []GameMatcher {
	return c.matchers
}

// Mode returns how the members combine.
func (c *CompositeMatcher) Mode() MatchMode {
	return c.mode
}
