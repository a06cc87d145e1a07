// Package worker provides a worker pool that replays games in parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/processing"
)

// WorkItem represents a game to be replayed.
type WorkItem struct {
	Game  *chess.Game
	Index int // position in the input, used to restore order
}

// ProcessResult represents the result of replaying a game.
type ProcessResult struct {
	Game     *chess.Game
	Index    int
	Analysis *processing.GameAnalysis
	Error    error // First rejected move, same as Analysis.Err
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// ReplayFunc returns a ProcessFunc that replays each game with opts.
// Every game gets its own match, so workers share no engine state.
func ReplayFunc(opts processing.Options) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		analysis := processing.AnalyzeGame(item.Game, opts)
		return ProcessResult{
			Game:     item.Game,
			Index:    item.Index,
			Analysis: analysis,
			Error:    analysis.Err,
		}
	}
}

const (
	defaultWorkers    = 1
	defaultBufferSize = 10
)

// Pool replays games on a fixed set of goroutines. Results arrive on
// Results in completion order; use a Reorderer to restore input order.
type Pool struct {
	numWorkers int
	bufferSize int
	work       chan WorkItem
	results    chan ProcessResult
	process    ProcessFunc
	wg         sync.WaitGroup
	stopped    atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of goroutines. Values below one are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the work and result channels. Values
// below one are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool returns a pool of numWorkers goroutines with channels of
// bufferSize, both clamped to at least one.
func NewPool(numWorkers, bufferSize int, process ProcessFunc) *Pool {
	return NewPoolWithOptions(process,
		WithWorkers(max(numWorkers, 1)),
		WithBufferSize(max(bufferSize, 1)))
}

// NewPoolWithOptions returns a pool running process, one worker and a
// buffer of ten unless the options say otherwise.
func NewPoolWithOptions(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: defaultWorkers,
		bufferSize: defaultBufferSize,
		process:    process,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.work = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.numWorkers)
	for range p.numWorkers {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for item := range p.work {
		// After Stop, queued items are consumed but not replayed.
		if p.IsStopped() {
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues item, blocking while the work channel is full.
func (p *Pool) Submit(item WorkItem) {
	p.work <- item
}

// Stop makes the workers skip every item not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of finished replays.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of goroutines the pool runs.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
