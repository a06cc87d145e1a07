package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/processing"
)

// JSONGame represents a replay report in JSON format.
type JSONGame struct {
	Number         int         `json:"number"`
	Source         string      `json:"source,omitempty"`
	Line           int         `json:"line,omitempty"`
	Moves          []string    `json:"moves"`
	PlyCount       int         `json:"plyCount"`
	Result         string      `json:"result"`
	ClaimedResult  string      `json:"claimedResult,omitempty"`
	ResultMismatch bool        `json:"resultMismatch,omitempty"`
	Check          bool        `json:"check,omitempty"`
	Checkmate      bool        `json:"checkmate,omitempty"`
	Stalemate      bool        `json:"stalemate,omitempty"`
	Winner         string      `json:"winner,omitempty"`
	ToMove         string      `json:"toMove"`
	Captures       []JSONPiece `json:"captures,omitempty"`
	Promotions     int         `json:"promotions,omitempty"`
	Underpromotion bool        `json:"underpromotion,omitempty"`
	Repetition     bool        `json:"repetition,omitempty"`
	FinalPlacement string      `json:"finalPlacement"`
	Board          []string    `json:"board,omitempty"`
	Error          string      `json:"error,omitempty"`
}

// JSONPiece represents a captured piece in JSON format.
type JSONPiece struct {
	Color string `json:"color"` // "white" or "black"
	Piece string `json:"piece"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGamesJSON outputs multiple reports as a JSON array.
func OutputGamesJSON(analyses []*processing.GameAnalysis, cfg *config.Config, w io.Writer) error {
	jsonGames := make([]*JSONGame, len(analyses))
	for i, ga := range analyses {
		jsonGames[i] = GameToJSON(ga, cfg)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONOutput{Games: jsonGames})
}

// GameToJSON converts a replay report to JSON format.
func GameToJSON(ga *processing.GameAnalysis, cfg *config.Config) *JSONGame {
	jg := &JSONGame{
		Number:         ga.Game.Number,
		Source:         ga.Game.Source,
		Line:           ga.Game.StartLine,
		Moves:          make([]string, 0, ga.Plies),
		PlyCount:       ga.Plies,
		Result:         ga.Result,
		ClaimedResult:  ga.Game.Result,
		ResultMismatch: ga.ResultMismatch,
		Check:          ga.Check,
		Checkmate:      ga.Checkmate,
		Stalemate:      ga.Stalemate,
		ToMove:         colorName(ga.ToMove),
		Promotions:     ga.Promotions,
		Underpromotion: ga.HasUnderpromotion,
		Repetition:     ga.HasRepetition,
		FinalPlacement: Placement(ga.FinalBoard),
	}

	for _, move := range ga.Game.Moves[:ga.Plies] {
		jg.Moves = append(jg.Moves, move.UCI())
	}
	if ga.Checkmate {
		jg.Winner = colorName(ga.Winner)
	}
	if cfg.Output.ShowCaptures {
		jg.Captures = convertCaptures(ga.Captures)
	}
	if cfg.Output.ShowBoard {
		jg.Board = boardRows(ga.FinalBoard)
	}
	if ga.Err != nil {
		jg.Error = ga.Err.Error()
	}
	return jg
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// convertCaptures converts the captured pieces in capture order.
func convertCaptures(captures []chess.Occupant) []JSONPiece {
	if len(captures) == 0 {
		return nil
	}
	result := make([]JSONPiece, len(captures))
	for i, occ := range captures {
		result[i] = JSONPiece{
			Color: colorName(occ.Colour),
			Piece: strings.ToLower(occ.Kind.String()),
		}
	}
	return result
}

// boardRows returns one string of placement letters per rank, rank 8 first.
func boardRows(snap chess.Snapshot) []string {
	rows := make([]string, chess.BoardSize)
	for row := range rows {
		b := make([]byte, chess.BoardSize)
		for col := range b {
			b[col] = snap[row][col].Letter()
			if b[col] == ' ' {
				b[col] = '.'
			}
		}
		rows[row] = string(b)
	}
	return rows
}
