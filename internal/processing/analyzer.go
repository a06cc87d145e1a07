// Package processing replays parsed games through the rules engine and
// reports what happened in them.
package processing

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/hashing"
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	Game *chess.Game

	// Plies counts the moves that were played before the game ended or failed
	Plies    int
	Captures []chess.Occupant

	Check     bool
	Checkmate bool
	Stalemate bool
	Winner    chess.Colour // Meaningful only with Checkmate
	ToMove    chess.Colour

	// Result is the result decided on the board, "*" if the game is unfinished
	Result string
	// ResultMismatch is set when the script claims a different decided result
	ResultMismatch bool

	Promotions        int
	HasUnderpromotion bool
	HasRepetition     bool // Some position, rights included, occurred three times

	FinalBoard chess.Snapshot

	// Err is a *errors.GameError describing the first rejected move
	Err error
}

// OK reports whether every move in the game was accepted.
func (ga *GameAnalysis) OK() bool {
	return ga.Err == nil
}

// Options controls how promotions without a named piece are resolved.
type Options struct {
	Promotion chess.Kind
}

// DefaultOptions promotes to a Queen when a move names no piece.
func DefaultOptions() Options {
	return Options{Promotion: chess.Queen}
}

// AnalyzeGame replays game from the initial position. Replay stops at the
// first rejected move; the analysis then describes the position before it.
func AnalyzeGame(game *chess.Game, opts Options) *GameAnalysis {
	if !opts.Promotion.IsPromotion() {
		opts.Promotion = chess.Queen
	}

	m := engine.NewMatch()
	analysis := &GameAnalysis{Game: game}
	positions := hashing.NewRepetitionTracker()
	positions.Add(m.Pieces(), m.CurrentPlayer(), m.Rights())

	for i, move := range game.Moves {
		if err := checkPromotionLetter(m, move); err != nil {
			analysis.Err = moveError(game, i+1, move, err)
			break
		}

		out, err := m.SubmitMove(move.From, move.To)
		if err != nil {
			analysis.Err = moveError(game, i+1, move, err)
			break
		}
		if out.Promotion {
			kind := move.Promotion
			if kind == chess.NoKind {
				kind = opts.Promotion
			}
			if _, err := m.ResolvePromotion(kind); err != nil {
				analysis.Err = moveError(game, i+1, move, err)
				break
			}
			analysis.Promotions++
			if kind != chess.Queen {
				analysis.HasUnderpromotion = true
			}
		}
		analysis.Plies++

		if positions.Add(m.Pieces(), m.CurrentPlayer(), m.Rights()) >= 3 {
			analysis.HasRepetition = true
		}
	}

	analysis.Captures = m.Captured()
	analysis.Check = m.Check()
	analysis.Checkmate = m.Checkmate()
	analysis.Stalemate = m.Stalemate()
	analysis.Winner, _ = m.Winner()
	analysis.ToMove = sideToMove(m)
	analysis.FinalBoard = m.Pieces()
	analysis.Result = decidedResult(m)
	analysis.ResultMismatch = analysis.Err == nil &&
		game.Result != "" && analysis.Result != chess.NoResult && game.Result != analysis.Result

	return analysis
}

// checkPromotionLetter rejects a promotion piece on a move that cannot
// promote. The match is not touched.
func checkPromotionLetter(m *engine.Match, move chess.Move) error {
	if !move.IsPromotion() {
		return nil
	}
	snap := m.Pieces()
	var occ chess.Occupant
	if move.From.Valid() {
		occ = snap[move.From.Row][move.From.Col]
	}
	if occ.Kind == chess.Pawn && (move.To.Row == 0 || move.To.Row == chess.BoardSize-1) {
		return nil
	}
	return fmt.Errorf("promotion piece given for a move that does not promote: %w", errors.ErrParseFailure)
}

// sideToMove returns the colour that would play next. A finished match keeps
// the last mover as current player, so the other side is reported.
func sideToMove(m *engine.Match) chess.Colour {
	if m.State() == engine.Finished {
		return m.CurrentPlayer().Opposite()
	}
	return m.CurrentPlayer()
}

// decidedResult returns the result token for the final state of m.
func decidedResult(m *engine.Match) string {
	switch {
	case m.Checkmate() && m.CurrentPlayer() == chess.White:
		return chess.WhiteWins
	case m.Checkmate():
		return chess.BlackWins
	case m.Stalemate():
		return chess.DrawResult
	default:
		return chess.NoResult
	}
}

func moveError(game *chess.Game, ply int, move chess.Move, err error) error {
	return &errors.GameError{
		Err:      err,
		GameNum:  game.Number,
		PlyNum:   ply,
		MoveText: move.Text,
		File:     game.Source,
		Line:     game.StartLine,
	}
}

// Signature returns the duplicate-detection signature of the final position.
func (ga *GameAnalysis) Signature() hashing.GameSignature {
	return hashing.Signature(ga.FinalBoard, ga.ToMove, ga.Plies)
}
