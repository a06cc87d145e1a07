package parser

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Parser parses replay scripts into Game structures.
type Parser struct {
	lexer        *Lexer
	currentToken *Token
	source       string
	gameCount    int
}

// NewParser creates a new parser for the given reader. source names the
// input in error messages and on each Game.
func NewParser(r io.Reader, source string) *Parser {
	return &Parser{
		lexer:  NewLexer(r),
		source: source,
	}
}

// nextToken gets the next token from the lexer.
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// ParseGame parses the next game from the input. It returns nil, nil once
// the input is exhausted.
//
// A malformed move or a move after the result token fails the game with a
// *errors.GameError wrapping ErrParseFailure. The partial game is returned
// with the error so callers can report its number, and the rest of its line
// is skipped so the next call starts on the following game.
func (p *Parser) ParseGame() (*chess.Game, error) {
	if p.currentToken == nil {
		p.nextToken()
	}

	// Skip blank and comment-only lines
	for p.currentToken.Type == EndOfLine {
		p.nextToken()
	}
	if p.currentToken.Type == EOFToken {
		if err := p.lexer.Err(); err != nil {
			return nil, errors.Wrapf(err, "reading %s", p.source)
		}
		return nil, nil
	}

	p.gameCount++
	game := chess.NewGame(p.source, p.gameCount, p.currentToken.Line)

	for {
		tok := p.currentToken
		switch tok.Type {
		case EOFToken:
			return game, nil
		case EndOfLine:
			p.nextToken()
			return game, nil
		case MoveNumber:
			// Move numbers carry no information
		case TerminatingResult:
			if game.Result != "" {
				return game, p.fail(game, tok, "second result token")
			}
			game.Result = tok.Text
		case MoveToken:
			if game.Result != "" {
				return game, p.fail(game, tok, "move after the result")
			}
			move, err := DecodeMove(tok.Text)
			if err != nil {
				p.skipLine()
				return game, p.gameError(game, tok, err)
			}
			game.AddMove(move)
		}
		p.nextToken()
	}
}

// ParseAll reads every game. Games that fail to parse are left out of games
// and their errors are collected in errs, in input order.
func (p *Parser) ParseAll() (games []*chess.Game, errs []error) {
	for {
		game, err := p.ParseGame()
		if err != nil {
			errs = append(errs, err)
			if game == nil {
				return games, errs
			}
			continue
		}
		if game == nil {
			return games, errs
		}
		games = append(games, game)
	}
}

// fail skips the rest of the line and returns a parse failure for tok.
func (p *Parser) fail(game *chess.Game, tok *Token, reason string) error {
	p.skipLine()
	return p.gameError(game, tok, fmt.Errorf("%s: %w", reason, errors.ErrParseFailure))
}

func (p *Parser) gameError(game *chess.Game, tok *Token, err error) error {
	return &errors.GameError{
		Err:      err,
		GameNum:  game.Number,
		PlyNum:   game.PlyCount() + 1,
		MoveText: tok.Text,
		File:     p.source,
		Line:     tok.Line,
	}
}

// skipLine consumes tokens up to and including the end of the current line.
func (p *Parser) skipLine() {
	for p.currentToken.Type != EndOfLine && p.currentToken.Type != EOFToken {
		p.nextToken()
	}
	if p.currentToken.Type == EndOfLine {
		p.nextToken()
	}
}
