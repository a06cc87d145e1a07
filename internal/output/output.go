// Package output writes replay reports as plain text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/processing"
)

// maxLineLength is the width at which the move list wraps.
const maxLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	indent        string
	needsSpace    bool
}

// NewOutputWriter creates a new output writer. Continuation lines start
// with indent.
func NewOutputWriter(w io.Writer, maxLineLength int, indent string) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
		indent:        indent,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			fmt.Fprint(o.w, o.indent)
			o.lineLength = len(o.indent)
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes the text report of one replayed game to cfg.OutputFile.
func OutputGame(ga *processing.GameAnalysis, cfg *config.Config) {
	writeGameText(cfg.OutputFile, ga, cfg)
}

func writeGameText(w io.Writer, ga *processing.GameAnalysis, cfg *config.Config) {
	fmt.Fprintf(w, "%s %s\n", gameHeading(ga.Game), summary(ga))

	outputMoves(ga, w)

	if ga.Err != nil {
		fmt.Fprintf(w, "  error: %v\n", ga.Err)
	}
	if ga.ResultMismatch {
		fmt.Fprintf(w, "  claimed result %s, board gives %s\n", ga.Game.Result, ga.Result)
	}
	if cfg.Output.ShowCaptures {
		fmt.Fprintf(w, "  captures: %s\n", captureList(ga.Captures))
	}
	fmt.Fprintf(w, "  final: %s %s to move\n", Placement(ga.FinalBoard), ga.ToMove)
	if cfg.Output.ShowBoard {
		outputBoard(ga.FinalBoard, w)
	}

	// Blank line between games
	fmt.Fprintln(w)
}

// gameHeading returns e.g. "Game 3 (games.txt:12)".
func gameHeading(game *chess.Game) string {
	if game.Source == "" {
		return fmt.Sprintf("Game %d", game.Number)
	}
	return fmt.Sprintf("Game %d (%s:%d)", game.Number, game.Source, game.StartLine)
}

// summary describes how the replay ended, e.g. "7 plies, checkmate, 1-0".
func summary(ga *processing.GameAnalysis) string {
	parts := []string{plural(ga.Plies, "ply", "plies")}
	switch {
	case ga.Err != nil:
		parts = append(parts, "rejected")
	case ga.Checkmate:
		parts = append(parts, "checkmate")
	case ga.Stalemate:
		parts = append(parts, "stalemate")
	case ga.Check:
		parts = append(parts, "check")
	}
	if ga.Promotions > 0 {
		parts = append(parts, plural(ga.Promotions, "promotion", "promotions"))
	}
	if ga.HasRepetition {
		parts = append(parts, "threefold repetition")
	}
	parts = append(parts, ga.Result)
	return strings.Join(parts, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}

// outputMoves writes the accepted moves with move numbers.
func outputMoves(ga *processing.GameAnalysis, w io.Writer) {
	if ga.Plies == 0 {
		return
	}
	fmt.Fprint(w, "  ")
	ow := NewOutputWriter(w, maxLineLength, "  ")
	ow.lineLength = 2

	for i, move := range ga.Game.Moves[:ga.Plies] {
		if i%2 == 0 {
			ow.Write(fmt.Sprintf("%d.", i/2+1))
		}
		ow.Write(move.UCI())
	}
	ow.NewLine()
}

// captureList returns e.g. "Black Pawn, White Knight", or "none".
func captureList(captures []chess.Occupant) string {
	if len(captures) == 0 {
		return "none"
	}
	names := make([]string, len(captures))
	for i, occ := range captures {
		names[i] = occ.String()
	}
	return strings.Join(names, ", ")
}

// outputBoard draws the position rank 8 first, with '.' for empty squares.
func outputBoard(snap chess.Snapshot, w io.Writer) {
	for row := 0; row < chess.BoardSize; row++ {
		var sb strings.Builder
		fmt.Fprintf(&sb, "  %d ", chess.BoardSize-row)
		for col := 0; col < chess.BoardSize; col++ {
			letter := snap[row][col].Letter()
			if letter == ' ' {
				letter = '.'
			}
			sb.WriteByte(' ')
			sb.WriteByte(letter)
		}
		fmt.Fprintln(w, sb.String())
	}
	fmt.Fprintln(w, "     a b c d e f g h")
}

// Placement returns the placement field of a FEN string for snap, rank 8
// first, with runs of empty squares written as digits.
func Placement(snap chess.Snapshot) string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < chess.BoardSize; col++ {
			occ := snap[row][col]
			if occ.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(occ.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}
