package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/parser"
	"github.com/lgbarn/chessmatch-go/internal/processing"
	"github.com/lgbarn/chessmatch-go/internal/testutil"
)

const foolsMate = "f2f3 e7e5 g2g4 d8h4"

// replayTestGame parses and analyses a single-line script.
func replayTestGame(t *testing.T, script string) *processing.GameAnalysis {
	t.Helper()
	game, err := parser.NewParser(strings.NewReader(script), "test.txt").ParseGame()
	if err != nil || game == nil {
		t.Fatalf("ParseGame(%q) = %v, %v", script, game, err)
	}
	return processing.AnalyzeGame(game, processing.DefaultOptions())
}

// TestTextWriter_WriteGame verifies the text report layout
func TestTextWriter_WriteGame(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()
	cfg.SetOutput(&buf)

	writer := NewTextWriter(&buf, cfg)
	testutil.AssertNoError(t, writer.WriteGame(replayTestGame(t, foolsMate)))

	want := strings.Join([]string{
		"Game 1 (test.txt:1) 4 plies, checkmate, 0-1",
		"  1. f2f3 e7e5 2. g2g4 d8h4",
		"  captures: none",
		"  final: rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR White to move",
		"",
		"",
	}, "\n")
	testutil.AssertEqual(t, buf.String(), want)
}

func TestTextWriter_Options(t *testing.T) {
	ga := replayTestGame(t, "e2e4 d7d5 e4xd5 d8xd5 e1e3")

	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutput(&buf).WithBoard(true).Build()
	testutil.AssertNoError(t, NewTextWriter(&buf, cfg).WriteGame(ga))
	out := buf.String()

	for _, want := range []string{
		"4 plies, rejected, *",
		"  1. e2e4 d7d5 2. e4d5 d8d5\n",
		`error: test.txt:1, game 1, ply 5, move "e1e3"`,
		"captures: Black Pawn, White Pawn",
		"final: rnb1kbnr/ppp1pppp/8/3q4/8/8/PPPP1PPP/RNBQKBNR White to move",
		"  8  r n b . k b n r\n",
		"  1  R N B Q K B N R\n     a b c d e f g h\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	cfg.Output.ShowCaptures = false
	cfg.Output.ShowBoard = false
	testutil.AssertNoError(t, NewTextWriter(&buf, cfg).WriteGame(ga))
	testutil.AssertFalse(t, strings.Contains(buf.String(), "captures:"), "captures shown")
	testutil.AssertFalse(t, strings.Contains(buf.String(), "a b c d"), "board shown")
}

func TestTextWriter_ResultMismatch(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutput(&buf).Build()
	testutil.AssertNoError(t, NewTextWriter(&buf, cfg).WriteGame(replayTestGame(t, foolsMate+" 1-0")))

	if !strings.Contains(buf.String(), "claimed result 1-0, board gives 0-1") {
		t.Errorf("missing mismatch line:\n%s", buf.String())
	}
}

// TestJSONWriter_WriteGame verifies JSON writer outputs correct format
func TestJSONWriter_WriteGame(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()

	writer := NewJSONWriter(&buf, cfg)
	if err := writer.WriteGame(replayTestGame(t, foolsMate)); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	testutil.AssertEqual(t, buf.Len(), 0, "output before Flush")

	// Flush to ensure all output is written
	if err := writer.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	var got JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if len(got.Games) != 1 {
		t.Fatalf("len(Games) = %d, want 1", len(got.Games))
	}

	jg := got.Games[0]
	testutil.AssertEqual(t, jg.Moves, []string{"f2f3", "e7e5", "g2g4", "d8h4"})
	testutil.AssertEqual(t, jg.PlyCount, 4)
	testutil.AssertEqual(t, jg.Result, "0-1")
	testutil.AssertTrue(t, jg.Checkmate, "checkmate")
	testutil.AssertEqual(t, jg.Winner, "black")
	testutil.AssertEqual(t, jg.ToMove, "white")
	testutil.AssertEqual(t, jg.Source, "test.txt")
	testutil.AssertEqual(t, jg.Error, "")
}

func TestGameToJSON_Options(t *testing.T) {
	ga := replayTestGame(t, "e2e4 d7d5 e4xd5 d8xd5 e1e3")
	cfg := config.NewConfigBuilder().WithBoard(true).Build()

	jg := GameToJSON(ga, cfg)
	testutil.AssertEqual(t, jg.Captures, []JSONPiece{
		{Color: "black", Piece: "pawn"},
		{Color: "white", Piece: "pawn"},
	})
	testutil.AssertEqual(t, len(jg.Board), 8)
	testutil.AssertEqual(t, jg.Board[0], "rnb.kbnr")
	testutil.AssertTrue(t, strings.Contains(jg.Error, "ply 5"), "error = %q", jg.Error)

	cfg.Output.ShowCaptures = false
	cfg.Output.ShowBoard = false
	jg = GameToJSON(ga, cfg)
	testutil.AssertEqual(t, len(jg.Captures), 0)
	testutil.AssertEqual(t, len(jg.Board), 0)
}

// TestGameWriter_Interface verifies that writers implement the interface
func TestGameWriter_Interface(t *testing.T) {
	cfg := config.NewConfig()
	var buf bytes.Buffer

	// Verify TextWriter implements GameWriter
	var _ GameWriter = NewTextWriter(&buf, cfg)

	// Verify JSONWriter implements GameWriter
	var _ GameWriter = NewJSONWriter(&buf, cfg)
}

func TestNewGameWriter(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.NewConfigBuilder().WithOutput(&buf).Build()
	if _, ok := NewGameWriter(cfg).(*TextWriter); !ok {
		t.Error("expected *TextWriter by default")
	}

	cfg = config.NewConfigBuilder().WithOutput(&buf).WithJSONOutput(true).Build()
	if _, ok := NewGameWriter(cfg).(*JSONWriter); !ok {
		t.Error("expected *JSONWriter with JSON output")
	}
}

// TestTextWriter_Close verifies Close and Flush don't error
func TestTextWriter_Close(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()

	writer := NewTextWriter(&buf, cfg)
	testutil.AssertNoError(t, writer.Flush())
	testutil.AssertNoError(t, writer.Close())
}

// TestJSONWriter_Close verifies Close flushes pending games
func TestJSONWriter_Close(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()

	writer := NewJSONWriter(&buf, cfg)
	testutil.AssertNoError(t, writer.WriteGame(replayTestGame(t, "e2e4")))
	testutil.AssertNoError(t, writer.Close())

	// Output should have content after close
	if buf.Len() == 0 {
		t.Error("Expected output after Close")
	}
}

func TestJSONWriterSingle(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()

	writer := NewJSONWriterSingle(&buf, cfg)
	testutil.AssertNoError(t, writer.WriteGame(replayTestGame(t, "e2e4")))
	testutil.AssertNoError(t, writer.WriteGame(replayTestGame(t, "d2d4")))
	testutil.AssertNoError(t, writer.Close())

	dec := json.NewDecoder(&buf)
	var moves []string
	for dec.More() {
		var jg JSONGame
		if err := dec.Decode(&jg); err != nil {
			t.Fatalf("Decode: %v", err)
		}
		moves = append(moves, jg.Moves...)
	}
	testutil.AssertEqual(t, moves, []string{"e2e4", "d2d4"})
}

func TestPlacement(t *testing.T) {
	testutil.AssertEqual(t, Placement(engine.NewMatch().Pieces()), engine.InitialPlacement)

	m, err := engine.NewMatchFromPlacement("6k1/5ppp/8/8/8/8/8/R5K1", 1)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, Placement(m.Pieces()), "6k1/5ppp/8/8/8/8/8/R5K1")
}

func TestOutputWriter_Wraps(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 10, "  ")
	ow.Write("aaaa")
	ow.Write("bbbb")
	ow.Write("cccc")
	ow.WriteNoSpace(".")
	ow.NewLine()

	testutil.AssertEqual(t, buf.String(), "aaaa bbbb\n  cccc.\n")
}
