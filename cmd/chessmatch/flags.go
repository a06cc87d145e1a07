// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"math"

	"github.com/lgbarn/chessmatch-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	showBoard    = flag.Bool("board", false, "Draw the final position of each game")
	noCaptures   = flag.Bool("nocaptures", false, "Don't list captured pieces")

	// Replay options
	promotion   = flag.String("promote", "q", "Promotion piece for moves that name none: q, r, b or n")
	stopOnError = flag.Bool("stop-on-error", false, "Stop at the first game that fails to parse or replay")
	workers     = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress games whose final position repeats an earlier game")
	exactDuplicates    = flag.Bool("exactdups", false, "Also require equal ply counts for duplicates")

	// Ply bounds
	minPly = flag.Int("minply", 0, "Minimum ply count")
	maxPly = flag.Int("maxply", 0, "Maximum ply count (0 = no limit)")

	// Ending filters
	checkmateFilter = flag.Bool("checkmate", false, "Only output games ending in checkmate")
	stalemateFilter = flag.Bool("stalemate", false, "Only output games ending in stalemate")

	// Game feature filters
	repetitionFilter     = flag.Bool("repetition", false, "Games with 3-fold repetition")
	underpromotionFilter = flag.Bool("underpromotion", false, "Games with underpromotion")

	// Material matching
	materialMatch      = flag.String("z", "", "Final material to match, at least (e.g., 'QR:qrr')")
	materialMatchExact = flag.String("y", "", "Exact final material to match")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	quiet     = flag.Bool("s", false, "Silent mode (errors only)")
	verbose   = flag.Bool("v", false, "Log one line per game")

	// File input options
	fileListFile = flag.String("f", "", "File containing list of script files to process (one per line)")
	configFile   = flag.String("config", "", "Configuration file (default: search the XDG config directories)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// setFlags returns the names of the flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags overlays the flags named in set onto cfg, so that values from
// the config file survive unless the command line overrides them.
func applyFlags(cfg *config.Config, set map[string]bool) {
	applyOutputFlags(cfg, set)
	applyReplayFlags(cfg, set)
	applyMoveBoundsFlags(cfg, set)
	applyFilterFlags(cfg, set)
	applyDuplicateFlags(cfg, set)

	switch {
	case set["s"] && *quiet:
		cfg.Verbosity = config.Quiet
	case set["v"] && *verbose:
		cfg.Verbosity = config.Commentary
	}
}

// applyOutputFlags configures report output settings.
func applyOutputFlags(cfg *config.Config, set map[string]bool) {
	if set["J"] {
		cfg.Output.JSONFormat = *jsonOutput
	}
	if set["board"] {
		cfg.Output.ShowBoard = *showBoard
	}
	if set["nocaptures"] {
		cfg.Output.ShowCaptures = !*noCaptures
	}
}

// applyReplayFlags configures replay settings.
func applyReplayFlags(cfg *config.Config, set map[string]bool) {
	if set["promote"] {
		cfg.Replay.Promotion = *promotion
	}
	if set["stop-on-error"] {
		cfg.Replay.StopOnError = *stopOnError
	}
	if set["workers"] && *workers > 0 {
		cfg.Replay.Workers = *workers
	}
}

// applyMoveBoundsFlags configures ply bounds.
func applyMoveBoundsFlags(cfg *config.Config, set map[string]bool) {
	if !set["minply"] && !set["maxply"] {
		return
	}

	cfg.Filter.CheckMoveBounds = true
	cfg.Filter.LowerMoveBound = *minPly
	cfg.Filter.UpperMoveBound = *maxPly
	if *maxPly == 0 {
		cfg.Filter.UpperMoveBound = math.MaxInt
	}
}

// applyFilterFlags configures game filter settings.
func applyFilterFlags(cfg *config.Config, set map[string]bool) {
	if set["checkmate"] {
		cfg.Filter.MatchCheckmate = *checkmateFilter
	}
	if set["stalemate"] {
		cfg.Filter.MatchStalemate = *stalemateFilter
	}
	if set["repetition"] {
		cfg.Filter.MatchRepetition = *repetitionFilter
	}
	if set["underpromotion"] {
		cfg.Filter.MatchUnderpromotion = *underpromotionFilter
	}

	switch {
	case set["y"]:
		cfg.Filter.MaterialPattern = *materialMatchExact
		cfg.Filter.ExactMaterial = true
	case set["z"]:
		cfg.Filter.MaterialPattern = *materialMatch
		cfg.Filter.ExactMaterial = false
	}
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config, set map[string]bool) {
	if set["D"] {
		cfg.Duplicate.Suppress = *suppressDuplicates
	}
	if set["exactdups"] {
		cfg.Duplicate.ExactMatch = *exactDuplicates
	}
}
