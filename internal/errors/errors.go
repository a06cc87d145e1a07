// Package errors provides sentinel errors and error types for chessmatch.
// It defines the engine's rejection kinds and structured error types that
// preserve context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for engine rejections. Use these with errors.Is().
var (
	// ErrIllegalOrigin indicates an empty origin, an opponent's piece, or a
	// piece with no moves.
	ErrIllegalOrigin = errors.New("illegal origin")

	// ErrIllegalTarget indicates a target outside the origin piece's move mask.
	ErrIllegalTarget = errors.New("illegal target")

	// ErrSelfCheck indicates a move that would leave the mover's king attacked.
	ErrSelfCheck = errors.New("move leaves own king in check")

	// ErrNoPendingPromotion indicates a promotion request with nothing to promote.
	ErrNoPendingPromotion = errors.New("no pending promotion")

	// ErrPromotionPending indicates a move submitted before a promotion was resolved.
	ErrPromotionPending = errors.New("promotion pending")

	// ErrGameOver indicates a move submitted after the match finished.
	ErrGameOver = errors.New("match is over")

	// ErrInvalidSquare indicates malformed or off-board algebraic coordinates.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidPlacement indicates a malformed setup placement string.
	ErrInvalidPlacement = errors.New("invalid placement")

	// ErrMissingKing indicates a corrupted position without a king of some colour.
	// It is raised by panic and is never retried.
	ErrMissingKing = errors.New("king missing from board")

	// ErrParseFailure indicates a malformed replay script.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps an engine rejection with the squares involved.
type MoveError struct {
	Err    error  // The underlying sentinel
	Origin string // Origin square in algebraic form (if known)
	Target string // Target square in algebraic form (if known)
	Reason string // Short human explanation
}

// Error returns e.g. "e2-e5: illegal target: pawn cannot reach it".
func (e *MoveError) Error() string {
	var b strings.Builder
	switch {
	case e.Origin != "" && e.Target != "":
		fmt.Fprintf(&b, "%s-%s: ", e.Origin, e.Target)
	case e.Origin != "":
		fmt.Fprintf(&b, "%s: ", e.Origin)
	}
	if e.Err != nil {
		b.WriteString(e.Err.Error())
	} else {
		b.WriteString("move rejected")
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// GameError wraps errors with replay context, including game number,
// ply position, and move information. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameNum  int    // 1-based game number in the input
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	File     string // Source file name (if known)
	Line     int    // Line number in source file (if known)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	}

	parts = append(parts, fmt.Sprintf("game %d", e.GameNum))

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
// It forwards to the standard library so callers need only this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
