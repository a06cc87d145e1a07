package main

import (
	"math"
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/testutil"
)

// saveRestoreBool is a helper to save and defer-restore a bool flag pointer.
// Usage: defer saveRestoreBool(quiet, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func setOf(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

func TestApplyFlags_UnsetFlagsKeepConfig(t *testing.T) {
	defer saveRestoreBool(jsonOutput, true)()
	defer saveRestoreInt(workers, 7)()

	cfg := config.NewConfig()
	cfg.Output.JSONFormat = false
	cfg.Replay.Workers = 3
	cfg.Filter.MatchStalemate = true

	applyFlags(cfg, setOf())

	testutil.AssertFalse(t, cfg.Output.JSONFormat, "JSONFormat")
	testutil.AssertEqual(t, cfg.Replay.Workers, 3)
	testutil.AssertTrue(t, cfg.Filter.MatchStalemate, "MatchStalemate")
}

func TestApplyOutputFlags(t *testing.T) {
	defer saveRestoreBool(jsonOutput, true)()
	defer saveRestoreBool(showBoard, true)()
	defer saveRestoreBool(noCaptures, true)()

	cfg := config.NewConfig()
	applyOutputFlags(cfg, setOf("J", "board", "nocaptures"))

	testutil.AssertEqual(t, cfg.Output, config.OutputConfig{JSONFormat: true, ShowBoard: true, ShowCaptures: false})
}

func TestApplyReplayFlags(t *testing.T) {
	t.Run("explicit values", func(t *testing.T) {
		defer saveRestoreString(promotion, "n")()
		defer saveRestoreBool(stopOnError, true)()
		defer saveRestoreInt(workers, 2)()

		cfg := config.NewConfig()
		applyReplayFlags(cfg, setOf("promote", "stop-on-error", "workers"))

		testutil.AssertEqual(t, cfg.Replay, config.ReplayConfig{Workers: 2, StopOnError: true, Promotion: "n"})
	})

	t.Run("zero workers keeps auto-detect", func(t *testing.T) {
		defer saveRestoreInt(workers, 0)()

		cfg := config.NewConfig()
		want := cfg.Replay.Workers
		applyReplayFlags(cfg, setOf("workers"))

		testutil.AssertEqual(t, cfg.Replay.Workers, want)
	})
}

func TestApplyMoveBoundsFlags(t *testing.T) {
	tests := []struct {
		name      string
		set       []string
		min, max  int
		wantCheck bool
		wantLower int
		wantUpper int
	}{
		{"no bounds", nil, 0, 0, false, 0, 0},
		{"both bounds", []string{"minply", "maxply"}, 10, 40, true, 10, 40},
		{"minimum only", []string{"minply"}, 20, 0, true, 20, math.MaxInt},
		{"maximum only", []string{"maxply"}, 0, 30, true, 0, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreInt(minPly, tt.min)()
			defer saveRestoreInt(maxPly, tt.max)()

			cfg := config.NewConfig()
			applyMoveBoundsFlags(cfg, setOf(tt.set...))

			testutil.AssertEqual(t, cfg.Filter.CheckMoveBounds, tt.wantCheck)
			testutil.AssertEqual(t, cfg.Filter.LowerMoveBound, tt.wantLower)
			testutil.AssertEqual(t, cfg.Filter.UpperMoveBound, tt.wantUpper)
		})
	}
}

func TestApplyFilterFlags(t *testing.T) {
	t.Run("ending and feature filters", func(t *testing.T) {
		defer saveRestoreBool(checkmateFilter, true)()
		defer saveRestoreBool(stalemateFilter, true)()
		defer saveRestoreBool(repetitionFilter, true)()
		defer saveRestoreBool(underpromotionFilter, true)()

		cfg := config.NewConfig()
		applyFilterFlags(cfg, setOf("checkmate", "stalemate", "repetition", "underpromotion"))

		testutil.AssertTrue(t, cfg.Filter.MatchCheckmate, "MatchCheckmate")
		testutil.AssertTrue(t, cfg.Filter.MatchStalemate, "MatchStalemate")
		testutil.AssertTrue(t, cfg.Filter.MatchRepetition, "MatchRepetition")
		testutil.AssertTrue(t, cfg.Filter.MatchUnderpromotion, "MatchUnderpromotion")
	})

	t.Run("exact material wins over minimal", func(t *testing.T) {
		defer saveRestoreString(materialMatch, "Q:q")()
		defer saveRestoreString(materialMatchExact, "K:k")()

		cfg := config.NewConfig()
		applyFilterFlags(cfg, setOf("z", "y"))

		testutil.AssertEqual(t, cfg.Filter.MaterialPattern, "K:k")
		testutil.AssertTrue(t, cfg.Filter.ExactMaterial, "ExactMaterial")
	})

	t.Run("minimal material", func(t *testing.T) {
		defer saveRestoreString(materialMatch, "QR:qrr")()

		cfg := config.NewConfig()
		cfg.Filter.ExactMaterial = true
		applyFilterFlags(cfg, setOf("z"))

		testutil.AssertEqual(t, cfg.Filter.MaterialPattern, "QR:qrr")
		testutil.AssertFalse(t, cfg.Filter.ExactMaterial, "ExactMaterial")
	})
}

func TestApplyDuplicateFlags(t *testing.T) {
	defer saveRestoreBool(suppressDuplicates, true)()
	defer saveRestoreBool(exactDuplicates, true)()

	cfg := config.NewConfig()
	applyDuplicateFlags(cfg, setOf("D", "exactdups"))

	testutil.AssertEqual(t, cfg.Duplicate, config.DuplicateConfig{Suppress: true, ExactMatch: true})
}

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name   string
		quiet  bool
		loud   bool
		set    []string
		start  int
		expect int
	}{
		{"default unchanged", false, false, nil, config.Summary, config.Summary},
		{"config value kept", false, false, nil, config.Commentary, config.Commentary},
		{"quiet", true, false, []string{"s"}, config.Summary, config.Quiet},
		{"verbose", false, true, []string{"v"}, config.Summary, config.Commentary},
		{"quiet wins", true, true, []string{"s", "v"}, config.Summary, config.Quiet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(verbose, tt.loud)()

			cfg := config.NewConfig()
			cfg.Verbosity = tt.start
			applyFlags(cfg, setOf(tt.set...))

			testutil.AssertEqual(t, cfg.Verbosity, tt.expect)
		})
	}
}
