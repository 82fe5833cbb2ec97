// Package controller provides the output adapters for displaying augmentation results.
package controller

import (
	"context"
	"time"

	m "textaug.dev/pkg/textaug/internal/model"
)

// Variant is one augmented output next to the input it came from.
type Variant struct {
	// Source labels where the input came from, e.g. "arg 1" or "notes.txt:12".
	Source    string
	Original  string
	Augmented string
}

// Changed reports whether augmentation altered the text.
func (v Variant) Changed() bool {
	return v.Original != v.Augmented
}

// RunInfo describes the augmenter and concurrency settings of a run.
type RunInfo struct {
	Level   m.Level
	Action  m.Action
	Model   string
	Inputs  int
	Threads int
	Seed    *uint64
}

// Summary aggregates a finished run.
type Summary struct {
	Outputs int
	Changed int
	Elapsed time.Duration
}

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeAugment StartMode = iota
	ModeStats
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode        StartMode
	diff        bool
	interactive bool
}

// WithAugmentMode sets the UI to augmentation mode.
func WithAugmentMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeAugment
	}
}

// WithStatsMode sets the UI to table statistics mode.
func WithStatsMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeStats
	}
}

// WithDiff renders each variant as a unified diff against its input.
func WithDiff(enabled bool) StartOption {
	return func(c *StartConfig) {
		c.diff = enabled
	}
}

// WithInteractive asks for the pager when the output is a terminal.
func WithInteractive(enabled bool) StartOption {
	return func(c *StartConfig) {
		c.interactive = enabled
	}
}

func newStartConfig(options []StartOption) StartConfig {
	config := StartConfig{mode: ModeAugment}
	for _, option := range options {
		option(&config)
	}

	return config
}

// UI defines how the workflow reports progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayRunInfo(ctx context.Context, info RunInfo)
	DisplayVariants(ctx context.Context, variants []Variant) error
	DisplayTableStats(ctx context.Context, name string, stats m.TableStats) error
	DisplaySummary(ctx context.Context, summary Summary)
}
