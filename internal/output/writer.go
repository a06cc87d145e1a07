package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/processing"
)

// GameWriter receives the report of each game in input order. Close must
// be called once at the end of a run; batching writers emit their output
// there.
type GameWriter interface {
	WriteGame(ga *processing.GameAnalysis) error
	Flush() error
	Close() error
}

// NewGameWriter returns a JSON writer when cfg asks for JSON output and a
// text writer otherwise. Both write to cfg.OutputFile.
func NewGameWriter(cfg *config.Config) GameWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(cfg.OutputFile, cfg)
	}
	return NewTextWriter(cfg.OutputFile, cfg)
}

// TextWriter writes reports as indented plain text.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes a report in text format.
func (tw *TextWriter) WriteGame(ga *processing.GameAnalysis) error {
	writeGameText(tw.w, ga, tw.cfg)
	return nil
}

// Flush does nothing; reports are written as they arrive.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter collects reports and writes them as one JSONOutput document
// on Flush or Close. In single mode each report is encoded as soon as it
// arrives instead.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	games  []*processing.GameAnalysis
	single bool
}

// NewJSONWriter returns a batching JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

// NewJSONWriterSingle returns a JSON writer that encodes one object per game.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg, single: true}
}

// WriteGame encodes ga in single mode and queues it otherwise.
func (jw *JSONWriter) WriteGame(ga *processing.GameAnalysis) error {
	if !jw.single {
		jw.games = append(jw.games, ga)
		return nil
	}
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(ga, jw.cfg))
}

// Flush writes the queued reports, if any, and empties the queue.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}
	err := OutputGamesJSON(jw.games, jw.cfg, jw.w)
	jw.games = jw.games[:0]
	return err
}

// Close flushes the queue.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
