package parser

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// DecodeMove parses a coordinate move: origin and target squares with an
// optional '-' or 'x' between them, then an optional promotion letter with
// or without '='. Trailing check and annotation marks are ignored.
//
//	e2e4  e2-e4  e4xd5  e7e8q  e7xd8=N  d1h5+
func DecodeMove(text string) (chess.Move, error) {
	move := chess.Move{Text: text}
	s := strings.TrimRight(text, "+#!?")

	if len(s) < 4 {
		return move, decodeError(text, "too short")
	}
	from, err := chess.ParseSquare(s[:2])
	if err != nil {
		return move, decodeError(text, err.Error())
	}

	rest := s[2:]
	if c := rest[0]; c == '-' || c == 'x' || c == 'X' {
		rest = rest[1:]
	}
	if len(rest) < 2 {
		return move, decodeError(text, "missing target square")
	}
	to, err := chess.ParseSquare(rest[:2])
	if err != nil {
		return move, decodeError(text, err.Error())
	}
	rest = rest[2:]

	if strings.HasPrefix(rest, "=") {
		rest = rest[1:]
		if rest == "" {
			return move, decodeError(text, "missing promotion piece")
		}
	}
	switch len(rest) {
	case 0:
	case 1:
		kind := chess.ParseKind(rest[0])
		if !kind.IsPromotion() {
			return move, decodeError(text, fmt.Sprintf("cannot promote to %q", rest))
		}
		move.Promotion = kind
	default:
		return move, decodeError(text, fmt.Sprintf("unexpected %q after the target square", rest))
	}

	move.From, move.To = from, to
	return move, nil
}

func decodeError(text, reason string) error {
	return fmt.Errorf("%q: %s: %w", text, reason, errors.ErrParseFailure)
}
