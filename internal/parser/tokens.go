// Package parser reads coordinate move scripts. Each non-blank line holds one
// game; move numbers and result tokens may appear between moves and a '#'
// starts a comment that runs to the end of the line.
package parser

// TokenType represents the type of a lexical token.
type TokenType int

const (
	EOFToken TokenType = iota
	MoveToken
	MoveNumber
	TerminatingResult
	EndOfLine
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:          "EOF",
	MoveToken:         "MOVE",
	MoveNumber:        "MOVE_NUMBER",
	TerminatingResult: "TERMINATING_RESULT",
	EndOfLine:         "END_OF_LINE",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its text.
type Token struct {
	Type TokenType
	Text string

	// Line and column for error reporting, both 1-based
	Line   int
	Column int
}

// NewToken creates a new token of the given type.
func NewToken(tokenType TokenType, text string, line, column int) *Token {
	return &Token{Type: tokenType, Text: text, Line: line, Column: column}
}
