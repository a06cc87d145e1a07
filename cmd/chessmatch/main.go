// chessmatch replays chess move scripts through the rules engine and reports
// how each game ended.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessmatch version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	loadConfigFile(cfg)
	applyFlags(cfg, setFlags())
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	inputs := flag.Args()
	if *fileListFile != "" {
		names, err := loadFileList(*fileListFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file list %s: %v\n", *fileListFile, err)
			os.Exit(1)
		}
		inputs = append(inputs, names...)
	}

	ctx := newProcessingContext(cfg)
	processAllInputs(ctx, inputs)
	if err := ctx.finish(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	// Report statistics
	if cfg.Verbosity > config.Quiet {
		reportStatistics(cfg, ctx.stats, ctx.detector != nil)
	}
	if ctx.stats.Failed() > 0 {
		os.Exit(1)
	}
}

// loadConfigFile reads the -config file, or the first chessmatch config
// found in the XDG config directories.
func loadConfigFile(cfg *config.Config) {
	if *configFile != "" {
		if err := config.LoadFile(cfg, *configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config file %s: %v\n", *configFile, err)
			os.Exit(1)
		}
		return
	}

	path, err := config.Load(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config file %s: %v\n", path, err)
		os.Exit(1)
	}
	if path != "" && cfg.Verbosity >= config.Commentary {
		fmt.Fprintf(os.Stderr, "Using config file %s\n", path)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
	cfg.OutputFilename = *outputFile
}

// loadFileList reads input file names, one per line. Blank lines and lines
// starting with '#' are skipped.
func loadFileList(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var names []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, scanner.Err()
}

// processAllInputs processes all input files, or stdin when there are none.
func processAllInputs(ctx *ProcessingContext, inputs []string) {
	if len(inputs) == 0 {
		games, stop := ctx.processInput(os.Stdin, "stdin")
		ctx.replayGames(games)
		ctx.stopped = ctx.stopped || stop
		return
	}

	for _, filename := range inputs {
		if ctx.stopped {
			break
		}

		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(ctx.cfg.LogFile, "Error opening file %s: %v\n", filename, err)
			ctx.stats.ParseErrors++
			ctx.stopped = ctx.cfg.Replay.StopOnError
			continue
		}

		games, stop := ctx.processInput(file, filename)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		ctx.replayGames(games)
		ctx.stopped = ctx.stopped || stop
	}
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(cfg *config.Config, stats Stats, dedup bool) {
	msg := fmt.Sprintf("%d game(s) reported out of %d", stats.Reported, stats.Games)
	if dedup {
		msg += fmt.Sprintf(", %d duplicate(s)", stats.Duplicates)
	}
	if stats.Failed() > 0 {
		msg += fmt.Sprintf(", %d failed", stats.Failed())
	}
	fmt.Fprintln(cfg.LogFile, msg+".")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessmatch [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess games written as coordinate moves (e2e4, e7-e8=Q) and\n")
	fmt.Fprintf(os.Stderr, "reports checks, captures, checkmate and stalemate.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nScript format:\n")
	fmt.Fprintf(os.Stderr, "  One game per line. Move numbers are ignored, a word starting with '#'\n")
	fmt.Fprintf(os.Stderr, "  begins a comment, and a result token (1-0, 0-1, 1/2-1/2, *) may end the line.\n")
}
