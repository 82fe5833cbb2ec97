package controller

import (
	"context"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	m "textaug.dev/pkg/textaug/internal/model"
)

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return f != nil && term.IsTerminal(f.Fd())
}

// switchUI picks the TUI or the simple UI each time it is started.
type switchUI struct {
	simple UI
	tui    UI
	tty    bool
	active UI
}

// NewUI returns a UI printing through cmd that switches to the pager when
// started with WithInteractive and tty is set.
func NewUI(cmd *cobra.Command, tty bool) UI {
	simple := NewSimpleUI(cmd)

	return &switchUI{
		simple: simple,
		tui:    NewTUI(os.Stdout),
		tty:    tty,
		active: simple,
	}
}

func (s *switchUI) Start(ctx context.Context, options ...StartOption) error {
	config := newStartConfig(options)

	s.active = s.simple
	if config.interactive && s.tty {
		s.active = s.tui
	}

	return s.active.Start(ctx, options...)
}

func (s *switchUI) Close(ctx context.Context) {
	s.active.Close(ctx)
}

func (s *switchUI) Wait(ctx context.Context) {
	s.active.Wait(ctx)
}

func (s *switchUI) DisplayRunInfo(ctx context.Context, info RunInfo) {
	s.active.DisplayRunInfo(ctx, info)
}

func (s *switchUI) DisplayVariants(ctx context.Context, variants []Variant) error {
	return s.active.DisplayVariants(ctx, variants)
}

func (s *switchUI) DisplayTableStats(ctx context.Context, name string, stats m.TableStats) error {
	return s.active.DisplayTableStats(ctx, name, stats)
}

func (s *switchUI) DisplaySummary(ctx context.Context, summary Summary) {
	s.active.DisplaySummary(ctx, summary)
}
