package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "textaug.dev/pkg/textaug/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd    *cobra.Command
	config StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, config: newStartConfig(nil)}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.config = newStartConfig(options)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayRunInfo reports the run settings on the error stream so the
// augmented text on standard output stays pipeable.
func (s *SimpleUI) DisplayRunInfo(ctx context.Context, info RunInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.errPrintf("%s", renderRunInfo(info))
}

// DisplayVariants prints one augmented line per variant, or a diff per variant.
func (s *SimpleUI) DisplayVariants(ctx context.Context, variants []Variant) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	text, err := renderVariants(variants, s.config.diff)
	if err != nil {
		return err
	}

	s.printf("%s", text)

	return nil
}

// DisplayTableStats prints the shape of a substitution table.
func (s *SimpleUI) DisplayTableStats(ctx context.Context, name string, stats m.TableStats) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderTableStats(name, stats))

	return nil
}

// DisplaySummary prints the run totals on the error stream.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.errPrintf("\n%s", renderSummary(summary))
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errPrintf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
