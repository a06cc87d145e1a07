package chess

// Result tokens that may close a game in a replay script.
const (
	WhiteWins  = "1-0"
	BlackWins  = "0-1"
	DrawResult = "1/2-1/2"
	NoResult   = "*"
)

// IsResult reports whether s is a result token.
func IsResult(s string) bool {
	switch s {
	case WhiteWins, BlackWins, DrawResult, NoResult:
		return true
	}
	return false
}

// Game is a single game read from a replay script: its coordinate moves and
// where it came from.
type Game struct {
	// Source is the input file name, or "-" for standard input.
	Source string

	// Number is the 1-based position of the game in its input.
	Number int

	// StartLine is the input line the game was read from.
	StartLine int

	// Moves in the order they are played.
	Moves []Move

	// Result is the claimed result token, if the script gave one.
	Result string
}

// NewGame creates a new empty game.
func NewGame(source string, number, line int) *Game {
	return &Game{Source: source, Number: number, StartLine: line}
}

// AddMove appends m to the move list.
func (g *Game) AddMove(m Move) {
	g.Moves = append(g.Moves, m)
}

// PlyCount returns the number of moves in the game.
func (g *Game) PlyCount() int {
	return len(g.Moves)
}

// LastMove returns the final move, or nil for an empty game.
func (g *Game) LastMove() *Move {
	if len(g.Moves) == 0 {
		return nil
	}
	return &g.Moves[len(g.Moves)-1]
}
