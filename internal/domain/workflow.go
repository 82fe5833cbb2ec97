package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"textaug.dev/pkg/textaug/internal/adapter"
	"textaug.dev/pkg/textaug/internal/controller"
	m "textaug.dev/pkg/textaug/internal/model"
)

// Character models selectable from the CLI.
const (
	ModelOCR      = "ocr"
	ModelKeyboard = "keyboard"
	ModelRandom   = "random"
)

// DefaultLanguage selects the bundled tables and alphabet when none is given.
const DefaultLanguage = "en"

// TableArgs selects and shapes the substitution table of a run.
type TableArgs struct {
	Level m.Level
	// Model is one of ModelOCR, ModelKeyboard or ModelRandom at char level.
	Model string
	// Path overrides the bundled table. At word level it is a mapping file.
	Path     string
	Lang     string
	Keyboard m.KeyboardOptions
	Alphabet m.AlphabetOptions
	// Targets are the word-level candidates offered for every word.
	Targets []string
}

// AugmentArgs contains the arguments for an augmentation run.
type AugmentArgs struct {
	TableArgs

	Action   string
	SwapMode string
	// Strict rejects unknown action and swap mode names instead of defaulting.
	Strict bool

	// CharPolicy and WordPolicy override the preset fields that are set.
	CharPolicy m.CountPolicy
	WordPolicy m.CountPolicy
	MinChars   *int
	Stopwords  []string

	// Texts are augmented N times each.
	Texts []string
	N     int
	// Inputs are file patterns whose lines are augmented once each.
	Inputs  []string
	Exclude []string

	Threads int
	Seed    *uint64

	Output      string
	Diff        bool
	Interactive bool
	MetricsFile string
}

// StatsArgs contains the arguments for describing a substitution table.
type StatsArgs struct {
	TableArgs
}

// Workflow defines the use-cases the CLI exposes.
type Workflow interface {
	Augment(ctx context.Context, args AugmentArgs) error
	Stats(ctx context.Context, args StatsArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.TableStore
	adapter.Metrics
	controller.UI
	newOrchestrator func(Augmenter, ...Option) Orchestrator
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	tableStore adapter.TableStore,
	metrics adapter.Metrics,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		TableStore:      tableStore,
		Metrics:         metrics,
		UI:              ui,
		newOrchestrator: NewOrchestrator,
	}
}

func (w *workflow) Augment(ctx context.Context, args AugmentArgs) error {
	augmenter, err := w.buildAugmenter(ctx, args)
	if err != nil {
		return err
	}

	options := []Option{WithObserver(w.Metrics)}
	if args.Seed != nil {
		options = append(options, WithSeed(*args.Seed))
	}

	orchestrator := w.newOrchestrator(augmenter, options...)

	if err := w.Start(ctx,
		controller.WithAugmentMode(),
		controller.WithDiff(args.Diff),
		controller.WithInteractive(args.Interactive),
	); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	started := time.Now()

	variants, err := w.collectVariants(ctx, args, augmenter, orchestrator)
	if err != nil {
		slog.Error("Augmentation failed", "error", err)
		return fmt.Errorf("augment: %w", err)
	}

	if err := w.emit(ctx, args, variants); err != nil {
		return err
	}

	w.DisplaySummary(ctx, summarize(variants, time.Since(started)))

	if err := w.Flush(args.MetricsFile); err != nil {
		return err
	}

	w.Wait(ctx)

	return nil
}

func (w *workflow) collectVariants(ctx context.Context, args AugmentArgs, augmenter Augmenter, orchestrator Orchestrator) ([]controller.Variant, error) {
	if len(args.Inputs) > 0 {
		return w.augmentFiles(ctx, args, augmenter, orchestrator)
	}

	return w.augmentTexts(ctx, args, augmenter, orchestrator)
}

func (w *workflow) augmentTexts(ctx context.Context, args AugmentArgs, augmenter Augmenter, orchestrator Orchestrator) ([]controller.Variant, error) {
	n := max(1, args.N)

	w.DisplayRunInfo(ctx, runInfo(args, augmenter, len(args.Texts)))

	variants := make([]controller.Variant, 0, len(args.Texts)*n)

	for i, text := range args.Texts {
		started := time.Now()

		outputs, err := orchestrator.AugmentString(ctx, text, n, args.Threads)
		if err != nil {
			return nil, err
		}

		w.ObserveBatch("repeat", len(outputs), time.Since(started))

		source := "arg " + strconv.Itoa(i+1)
		for _, output := range outputs {
			variants = append(variants, controller.Variant{Source: source, Original: text, Augmented: output})
		}
	}

	return variants, nil
}

func (w *workflow) augmentFiles(ctx context.Context, args AugmentArgs, augmenter Augmenter, orchestrator Orchestrator) ([]controller.Variant, error) {
	files, err := w.Expand(ctx, args.Inputs, args.Exclude...)
	if err != nil {
		return nil, fmt.Errorf("expand inputs: %w", err)
	}

	type fileLines struct {
		path  string
		lines []string
	}

	inputs := make([]fileLines, 0, len(files))
	total := 0

	for _, path := range files {
		lines, err := w.ReadLines(ctx, path)
		if err != nil {
			slog.Error("Failed to read input", "path", path, "error", err)
			return nil, fmt.Errorf("read input %s: %w", path, err)
		}

		inputs = append(inputs, fileLines{path: path, lines: lines})
		total += len(lines)
	}

	w.DisplayRunInfo(ctx, runInfo(args, augmenter, total))

	variants := make([]controller.Variant, 0, total)

	for _, input := range inputs {
		started := time.Now()

		outputs, err := orchestrator.AugmentList(ctx, input.lines, args.Threads)
		if err != nil {
			return nil, err
		}

		w.ObserveBatch("list", len(outputs), time.Since(started))

		for i, output := range outputs {
			variants = append(variants, controller.Variant{
				Source:    input.path + ":" + strconv.Itoa(i+1),
				Original:  input.lines[i],
				Augmented: output,
			})
		}
	}

	return variants, nil
}

// emit writes the variants to the output file when one is set and shows them
// otherwise. Diffs are always shown.
func (w *workflow) emit(ctx context.Context, args AugmentArgs, variants []controller.Variant) error {
	if args.Output != "" {
		lines := make([]string, 0, len(variants))
		for _, variant := range variants {
			lines = append(lines, variant.Augmented)
		}

		if err := w.WriteLines(ctx, args.Output, lines); err != nil {
			slog.Error("Failed to write output", "path", args.Output, "error", err)
			return fmt.Errorf("write output: %w", err)
		}

		if !args.Diff {
			return nil
		}
	}

	if err := w.DisplayVariants(ctx, variants); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) Stats(ctx context.Context, args StatsArgs) error {
	table, name, err := w.buildTable(ctx, args.TableArgs)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithStatsMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	if err := w.DisplayTableStats(ctx, name, table.Stats()); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}

func runInfo(args AugmentArgs, augmenter Augmenter, inputs int) controller.RunInfo {
	return controller.RunInfo{
		Level:   augmenter.Level(),
		Action:  augmenter.Action(),
		Model:   args.Model,
		Inputs:  inputs,
		Threads: max(1, args.Threads),
		Seed:    args.Seed,
	}
}

func summarize(variants []controller.Variant, elapsed time.Duration) controller.Summary {
	summary := controller.Summary{Outputs: len(variants), Elapsed: elapsed}

	for _, variant := range variants {
		if variant.Changed() {
			summary.Changed++
		}
	}

	return summary
}
