// Package engine provides the chess rules engine: move generation, the match
// state machine, move application and reversal, and check/checkmate search.
package engine

import (
	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// State is the lifecycle state of a match between calls.
type State int

const (
	// Idle waits for the current player's move.
	Idle State = iota
	// AwaitingPromotion holds a move whose pawn reached the last rank until
	// ResolvePromotion names the new piece.
	AwaitingPromotion
	// Finished means checkmate or stalemate; no further moves are accepted.
	Finished
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case AwaitingPromotion:
		return "AwaitingPromotion"
	case Finished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Outcome describes the effect of a completed move.
type Outcome struct {
	Captured  chess.Occupant // Empty if nothing was captured
	Promotion bool           // A promotion must be resolved before the next move
	Check     bool           // The opponent is now in check
	Checkmate bool           // The opponent is checkmated; the match is finished
	Stalemate bool           // The opponent has no safe move and is not in check
}

// Match is a two-player game. It owns the board, every piece ever created
// (indexed by PieceID), the capture history and the turn bookkeeping.
// A Match is not safe for concurrent use.
type Match struct {
	board    *chess.Board
	pieces   []*chess.Piece // arena; pieces[i].ID == i+1
	captured []*chess.Piece // capture history, most recent last

	turn      int
	current   chess.Colour
	check     bool
	checkmate bool
	stalemate bool
	state     State

	enPassant *chess.Piece // pawn that just advanced two ranks
	promoted  *chess.Piece // pawn awaiting promotion
}

// newMatch creates an empty match with White to move on turn 1.
func newMatch() *Match {
	return &Match{
		board:   chess.NewBoard(),
		turn:    1,
		current: chess.White,
	}
}

// newPiece creates a piece in the arena. The piece is not yet on the board.
func (m *Match) newPiece(kind chess.Kind, colour chess.Colour) *chess.Piece {
	p := &chess.Piece{
		ID:     chess.PieceID(len(m.pieces) + 1),
		Kind:   kind,
		Colour: colour,
	}
	m.pieces = append(m.pieces, p)
	return p
}

// Turn returns the turn number, starting at 1.
func (m *Match) Turn() int { return m.turn }

// CurrentPlayer returns the colour to move. Once the match is finished it is
// the side that made the last move, which after checkmate is the winner.
func (m *Match) CurrentPlayer() chess.Colour { return m.current }

// Check reports whether the opponent of the last mover is in check. After
// checkmate that is the losing side, not CurrentPlayer.
func (m *Match) Check() bool { return m.check }

// Checkmate reports whether the match ended in checkmate.
func (m *Match) Checkmate() bool { return m.checkmate }

// Stalemate reports whether the match ended in stalemate.
func (m *Match) Stalemate() bool { return m.stalemate }

// State returns the lifecycle state.
func (m *Match) State() State { return m.state }

// EnPassantPawn returns the pawn that may be captured en passant, or nil.
func (m *Match) EnPassantPawn() *chess.Piece { return m.enPassant }

// Winner returns the winning colour once the match ended in checkmate.
func (m *Match) Winner() (chess.Colour, bool) {
	return m.current, m.checkmate
}

// PendingPromotion returns the square of the pawn awaiting promotion.
func (m *Match) PendingPromotion() (chess.Square, bool) {
	if m.promoted == nil {
		return chess.Square{}, false
	}
	return m.promoted.Square, true
}

// Pieces returns a snapshot of the board for rendering.
func (m *Match) Pieces() chess.Snapshot {
	return m.board.Snapshot()
}

// Captured returns every captured piece in the order it was taken.
func (m *Match) Captured() []chess.Occupant {
	out := make([]chess.Occupant, len(m.captured))
	for i, p := range m.captured {
		out[i] = p.Occupant()
	}
	return out
}

// LegalMoves returns the move mask of the current player's piece on origin.
// It fails with ErrIllegalOrigin if origin is empty, holds an opponent's
// piece, or holds a piece without moves.
func (m *Match) LegalMoves(origin chess.Square) (chess.Mask, error) {
	p, err := m.validateOrigin(origin)
	if err != nil {
		return chess.Mask{}, err
	}
	return PossibleMoves(m.board, p, m), nil
}

// SubmitMove plays origin to target for the current player.
//
// Rejected moves leave the match exactly as it was: ErrIllegalOrigin,
// ErrIllegalTarget, ErrSelfCheck (the move is applied, found to expose the
// mover's king, and reverted), ErrPromotionPending and ErrGameOver.
//
// When a pawn reaches the last rank the outcome has Promotion set and the
// match waits in AwaitingPromotion; check, checkmate and the turn change are
// settled by ResolvePromotion.
func (m *Match) SubmitMove(origin, target chess.Square) (Outcome, error) {
	switch m.state {
	case Finished:
		return Outcome{}, &errors.MoveError{Err: errors.ErrGameOver, Origin: origin.String(), Target: target.String()}
	case AwaitingPromotion:
		return Outcome{}, &errors.MoveError{
			Err:    errors.ErrPromotionPending,
			Origin: origin.String(),
			Target: target.String(),
			Reason: "resolve the promotion on " + m.promoted.Square.String() + " first",
		}
	}

	p, err := m.validateOrigin(origin)
	if err != nil {
		return Outcome{}, err
	}
	if err := m.validateTarget(p, target); err != nil {
		return Outcome{}, err
	}

	rec := m.apply(origin, target)
	if m.InCheck(m.current) {
		m.revert(rec)
		return Outcome{}, &errors.MoveError{
			Err:    errors.ErrSelfCheck,
			Origin: origin.String(),
			Target: target.String(),
			Reason: "the " + m.current.String() + " king would be attacked",
		}
	}

	m.enPassant = nil
	if p.Kind == chess.Pawn && abs(target.Row-origin.Row) == 2 {
		m.enPassant = p
	}

	out := Outcome{Captured: rec.captured.Occupant()}

	if p.Kind == chess.Pawn && target.Row == promotionRow(p.Colour) {
		m.promoted = p
		m.state = AwaitingPromotion
		out.Promotion = true
		return out, nil
	}

	m.finishTurn(&out)
	return out, nil
}

// finishTurn updates check, checkmate and stalemate for the opponent and
// hands them the move unless the match is over.
func (m *Match) finishTurn(out *Outcome) {
	opponent := m.current.Opposite()

	m.check = m.InCheck(opponent)
	switch {
	case m.check && m.IsCheckmate(opponent):
		m.checkmate = true
		m.state = Finished
	case !m.check && !m.hasSafeMove(opponent):
		m.stalemate = true
		m.state = Finished
	default:
		m.state = Idle
		m.nextTurn()
	}

	out.Check = m.check
	out.Checkmate = m.checkmate
	out.Stalemate = m.stalemate
}

func (m *Match) nextTurn() {
	m.turn++
	m.current = m.current.Opposite()
}

// validateOrigin returns the current player's movable piece on origin.
func (m *Match) validateOrigin(origin chess.Square) (*chess.Piece, error) {
	if !origin.Valid() {
		return nil, &errors.MoveError{Err: errors.ErrInvalidSquare, Reason: "origin is off the board"}
	}

	p := m.board.At(origin)
	reason := ""
	switch {
	case p == nil:
		reason = "there is no piece on the origin square"
	case p.Colour != m.current:
		reason = "the chosen piece is not yours"
	case !HasAnyMove(m.board, p, m):
		reason = "there are no possible moves for the chosen piece"
	}
	if reason != "" {
		return nil, &errors.MoveError{Err: errors.ErrIllegalOrigin, Origin: origin.String(), Reason: reason}
	}
	return p, nil
}

// validateTarget checks that target is in p's move mask.
func (m *Match) validateTarget(p *chess.Piece, target chess.Square) error {
	if !target.Valid() {
		return &errors.MoveError{Err: errors.ErrInvalidSquare, Origin: p.Square.String(), Reason: "target is off the board"}
	}
	mask := PossibleMoves(m.board, p, m)
	if !mask.Has(target) {
		return &errors.MoveError{
			Err:    errors.ErrIllegalTarget,
			Origin: p.Square.String(),
			Target: target.String(),
			Reason: "the chosen piece can't move to the target square",
		}
	}
	return nil
}
