package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// CommentChar starts a comment that runs to the end of the line when it
// begins a word. Inside a word it is the checkmate suffix of a move.
const CommentChar = '#'

// Lexer tokenizes replay scripts line by line.
type Lexer struct {
	reader   *bufio.Reader
	line     string
	pos      int
	lineNum  int
	needLine bool
	eof      bool
	err      error
}

// NewLexer creates a lexer reading from r.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		reader:   bufio.NewReader(r),
		needLine: true,
	}
}

// LineNumber returns the number of the line being read.
func (l *Lexer) LineNumber() int {
	return l.lineNum
}

// Err returns the first read error other than io.EOF.
func (l *Lexer) Err() error {
	return l.err
}

// NextToken returns the next token. Every input line, including blank and
// comment-only lines, ends with an EndOfLine token; the input ends with
// EOFToken, which is returned on every later call.
func (l *Lexer) NextToken() *Token {
	if l.needLine && !l.readLine() {
		return NewToken(EOFToken, "", l.lineNum, 0)
	}

	for l.pos < len(l.line) && isSpace(l.line[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.line) {
		l.needLine = true
		return NewToken(EndOfLine, "", l.lineNum, l.pos+1)
	}

	start := l.pos
	for l.pos < len(l.line) && !isSpace(l.line[l.pos]) {
		l.pos++
	}
	word := l.line[start:l.pos]
	return NewToken(classify(word), word, l.lineNum, start+1)
}

// readLine loads the next line with any comment removed.
func (l *Lexer) readLine() bool {
	if l.eof {
		return false
	}

	line, err := l.reader.ReadString('\n')
	if err != nil {
		l.eof = true
		if err != io.EOF {
			l.err = err
		}
		if line == "" {
			return false
		}
	}

	if i := commentStart(line); i >= 0 {
		line = line[:i]
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	l.needLine = false
	return true
}

// commentStart returns the index of the first CommentChar that begins a
// word, or -1.
func commentStart(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] == CommentChar && (i == 0 || isSpace(line[i-1])) {
			return i
		}
	}
	return -1
}

// classify picks the token type of a whitespace-delimited word.
func classify(word string) TokenType {
	switch {
	case chess.IsResult(word):
		return TerminatingResult
	case isMoveNumber(word):
		return MoveNumber
	default:
		return MoveToken
	}
}

// isMoveNumber matches "12." and "12...".
func isMoveNumber(word string) bool {
	digits := 0
	for digits < len(word) && word[digits] >= '0' && word[digits] <= '9' {
		digits++
	}
	if digits == 0 || digits == len(word) {
		return false
	}
	return strings.Trim(word[digits:], ".") == ""
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
