// processor.go - Parsing, parallel replay and report output
package main

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/hashing"
	"github.com/lgbarn/chessmatch-go/internal/matching"
	"github.com/lgbarn/chessmatch-go/internal/output"
	"github.com/lgbarn/chessmatch-go/internal/parser"
	"github.com/lgbarn/chessmatch-go/internal/processing"
	"github.com/lgbarn/chessmatch-go/internal/worker"
)

// maxBufferSize caps the worker pool channel buffers.
const maxBufferSize = 100

// Stats counts what happened to the games of one run.
type Stats struct {
	Games       int // Games read, including those that failed to parse
	ParseErrors int
	Rejected    int // Games with an illegal move
	Reported    int
	Duplicates  int
}

// Failed returns the number of games that could not be fully replayed.
func (s Stats) Failed() int {
	return s.ParseErrors + s.Rejected
}

// ProcessingContext holds the shared state of a run. It is used only from
// the consumer goroutine.
type ProcessingContext struct {
	cfg      *config.Config
	opts     processing.Options
	detector *hashing.DuplicateDetector
	filter   *matching.GameFilter
	writer   output.GameWriter
	stats    Stats
	stopped  bool
}

// newProcessingContext builds the filter, duplicate detector and writer
// described by cfg.
func newProcessingContext(cfg *config.Config) *ProcessingContext {
	ctx := &ProcessingContext{
		cfg:    cfg,
		opts:   processing.Options{Promotion: chess.ParsePromotion(cfg.Replay.Promotion)},
		filter: matching.NewGameFilterFromConfig(&cfg.Filter),
		writer: output.NewGameWriter(cfg),
	}
	if cfg.Duplicate.Suppress {
		ctx.detector = hashing.NewDuplicateDetector(cfg.Duplicate.ExactMatch)
	}
	return ctx
}

// processInput parses every game in r. Parse failures are logged and
// counted; the games that parsed are returned in input order. With
// StopOnError set, parsing ends at the first failure and stop is true.
func (ctx *ProcessingContext) processInput(r io.Reader, name string) (games []*chess.Game, stop bool) {
	p := parser.NewParser(r, name)

	for {
		game, err := p.ParseGame()
		if err != nil {
			ctx.stats.ParseErrors++
			fmt.Fprintf(ctx.cfg.LogFile, "%v\n", err)
			if game != nil {
				ctx.stats.Games++
			}
			if ctx.cfg.Replay.StopOnError {
				stop = true
				break
			}
			if game == nil {
				break
			}
			continue
		}
		if game == nil {
			break
		}
		ctx.stats.Games++
		games = append(games, game)
	}

	if ctx.cfg.Verbosity >= config.Commentary {
		fmt.Fprintf(ctx.cfg.LogFile, "%s: %d game(s) parsed\n", name, len(games))
	}
	return games, stop
}

// replayGames replays games on the worker pool and handles the results in
// input order.
// Workers replay in parallel; the loop below is the only consumer, and it
// alone touches the duplicate detector, the filter and the writer.
func (ctx *ProcessingContext) replayGames(games []*chess.Game) {
	if len(games) == 0 || ctx.stopped {
		return
	}

	bufferSize := min(len(games), maxBufferSize)
	pool := worker.NewPoolWithOptions(worker.ReplayFunc(ctx.opts),
		worker.WithWorkers(ctx.cfg.Replay.Workers),
		worker.WithBufferSize(bufferSize))
	pool.Start()

	go func() {
		for i, game := range games {
			if pool.IsStopped() {
				break
			}
			pool.Submit(worker.WorkItem{Game: game, Index: i})
		}
		pool.Close()
	}()

	reorder := worker.NewReorderer()
	for result := range pool.Results() {
		for _, ready := range reorder.Push(result) {
			if ctx.stopped {
				continue
			}
			if !ctx.handleResult(ready) {
				ctx.stopped = true
				pool.Stop()
			}
		}
	}
}

// handleResult logs, filters, deduplicates and writes one replayed game.
// It returns false when the run should stop.
func (ctx *ProcessingContext) handleResult(result worker.ProcessResult) bool {
	cfg := ctx.cfg
	ga := result.Analysis

	if result.Error != nil {
		ctx.stats.Rejected++
		fmt.Fprintf(cfg.LogFile, "%v\n", result.Error)
		if cfg.Replay.StopOnError {
			return false
		}
	} else if cfg.Verbosity >= config.Commentary {
		logGame(cfg.LogFile, ga)
	}
	if ga.ResultMismatch && cfg.Verbosity > config.Quiet {
		fmt.Fprintf(cfg.LogFile, "game %d: result %s does not match the board (%s)\n",
			ga.Game.Number, ga.Game.Result, ga.Result)
	}

	if !ctx.filter.MatchGame(ga) {
		return true
	}
	if ctx.detector != nil && ctx.detector.CheckAndAdd(ga.Signature()) {
		ctx.stats.Duplicates++
		return true
	}

	if err := ctx.writer.WriteGame(ga); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error writing game %d: %v\n", ga.Game.Number, err)
		return false
	}
	ctx.stats.Reported++
	return true
}

// logGame writes the one-line commentary for a replayed game.
func logGame(w io.Writer, ga *processing.GameAnalysis) {
	switch {
	case ga.Checkmate:
		fmt.Fprintf(w, "game %d: %v checkmated after %d plies\n", ga.Game.Number, ga.ToMove, ga.Plies)
	case ga.Stalemate:
		fmt.Fprintf(w, "game %d: %v stalemated after %d plies\n", ga.Game.Number, ga.ToMove, ga.Plies)
	default:
		fmt.Fprintf(w, "game %d: %d plies, %v to move\n", ga.Game.Number, ga.Plies, ga.ToMove)
	}
}

// finish flushes pending output.
func (ctx *ProcessingContext) finish() error {
	return ctx.writer.Close()
}
