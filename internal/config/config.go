// Package config provides configuration for the chessmatch replay driver.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Verbosity levels for the log stream.
const (
	Quiet      = 0 // errors only
	Summary    = 1 // one line per run
	Commentary = 2 // one line per game
)

// Config holds all program configuration. Fields with a json tag may be set
// from the config file; the streams are always set by the driver.
type Config struct {
	Verbosity int `json:"verbosity"`

	Output    OutputConfig    `json:"output"`
	Replay    ReplayConfig    `json:"replay"`
	Filter    FilterConfig    `json:"filter"`
	Duplicate DuplicateConfig `json:"duplicate"`

	// Output streams
	OutputFile     io.Writer `json:"-"`
	LogFile        io.Writer `json:"-"`
	OutputFilename string    `json:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Output:     *NewOutputConfig(),
		Replay:     *NewReplayConfig(),
		Filter:     *NewFilterConfig(),
		Duplicate:  *NewDuplicateConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the report stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate reports the first invalid setting, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Verbosity < Quiet || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d out of range %d-%d: %w", c.Verbosity, Quiet, Commentary, errors.ErrInvalidConfig)
	}
	if err := c.Replay.Validate(); err != nil {
		return err
	}
	return c.Filter.Validate()
}

// ReplayConfig holds settings for replaying move scripts.
type ReplayConfig struct {
	// Workers is the number of games replayed concurrently.
	Workers int `json:"workers"`

	// StopOnError abandons the run after the first failed game.
	StopOnError bool `json:"stop_on_error"`

	// Promotion is the piece letter used when a promoting move names none.
	Promotion string `json:"promotion"`
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{
		Workers:   runtime.NumCPU(),
		Promotion: "q",
	}
}

// Validate checks the replay settings.
func (r *ReplayConfig) Validate() error {
	if r.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", r.Workers, errors.ErrInvalidConfig)
	}
	switch r.Promotion {
	case "q", "r", "b", "n", "Q", "R", "B", "N":
		return nil
	default:
		return fmt.Errorf("promotion %q is not one of q, r, b, n: %w", r.Promotion, errors.ErrInvalidConfig)
	}
}
