package domain

import (
	"context"
	"fmt"
	"log/slog"

	"textaug.dev/pkg/textaug/internal/adapter"
	m "textaug.dev/pkg/textaug/internal/model"
)

// buildTable resolves TableArgs to a table and a display name.
func (w *workflow) buildTable(ctx context.Context, args TableArgs) (m.Table, string, error) {
	lang := args.Lang
	if lang == "" {
		lang = DefaultLanguage
	}

	if args.Level == m.LevelWord {
		return w.buildWordTable(ctx, args)
	}

	switch args.Model {
	case ModelOCR, "":
		mapping, path, err := w.loadMapping(ctx, args.Path, ModelOCR, lang)
		if err != nil {
			return nil, "", err
		}

		return m.NewOCRTable(mapping), path, nil

	case ModelKeyboard:
		mapping, path, err := w.loadMapping(ctx, args.Path, ModelKeyboard, lang)
		if err != nil {
			return nil, "", err
		}

		return m.NewKeyboardTable(mapping, args.Keyboard), path, nil

	case ModelRandom:
		alphabet := args.Alphabet
		if alphabet.Language == "" {
			alphabet.Language = lang
		}

		if args.Path != "" {
			candidates, err := w.LoadList(ctx, args.Path)
			if err != nil {
				return nil, "", fmt.Errorf("load alphabet: %w", err)
			}

			alphabet.Candidates = candidates
		}

		return m.NewAlphabetTable(alphabet), "alphabet " + alphabet.Language, nil

	default:
		return nil, "", fmt.Errorf("unknown character model %q", args.Model)
	}
}

func (w *workflow) buildWordTable(ctx context.Context, args TableArgs) (m.Table, string, error) {
	var mapping m.Mapping

	if args.Path != "" {
		loaded, err := w.LoadMapping(ctx, args.Path)
		if err != nil {
			return nil, "", fmt.Errorf("load word table: %w", err)
		}

		mapping = loaded
	}

	targets := args.Targets
	if len(targets) == 0 && len(mapping) == 0 {
		targets = m.DefaultWordCandidates
	}

	if len(targets) > 0 {
		return m.NewWordTable(targets, nil), "word targets", nil
	}

	return m.NewWordTable(nil, mapping), args.Path, nil
}

func (w *workflow) loadMapping(ctx context.Context, path, model, lang string) (m.Mapping, string, error) {
	if path == "" {
		path = adapter.BuiltinTablePath(model, lang)
	}

	mapping, err := w.LoadMapping(ctx, path)
	if err != nil {
		return nil, "", fmt.Errorf("load %s table: %w", model, err)
	}

	return mapping, path, nil
}

// buildAugmenter applies the preset of the requested model and then every
// override set in args.
func (w *workflow) buildAugmenter(ctx context.Context, args AugmentArgs) (Augmenter, error) {
	action, err := parseAction(args.Action, args.Strict)
	if err != nil {
		return nil, err
	}

	mode, err := parseSwapMode(args.SwapMode, args.Strict)
	if err != nil {
		return nil, err
	}

	table, name, err := w.buildTable(ctx, args.TableArgs)
	if err != nil {
		return nil, err
	}

	slog.Debug("Building augmenter", "level", args.Level, "model", args.Model, "table", name, "action", action)

	if args.Level == m.LevelWord {
		opts := RandomWordPreset(nil, nil, action)
		opts.Table = table
		opts.Policy = mergePolicy(opts.Policy, args.WordPolicy)
		opts.Stopwords = m.NewStopwords(args.Stopwords...)

		return NewWordAugmenter(opts)
	}

	var opts CharOptions

	switch args.Model {
	case ModelKeyboard:
		opts = KeyboardPreset(table, args.Keyboard.AllowSpecial)
	case ModelRandom:
		opts = RandomCharPreset(args.Alphabet, action, mode)
		opts.Table = table
	default:
		opts = OCRPreset(table)
	}

	if action != "" {
		opts.Action = action
	}

	if mode != "" {
		opts.SwapMode = mode
	}

	opts.CharPolicy = mergePolicy(opts.CharPolicy, args.CharPolicy)
	opts.WordPolicy = mergePolicy(opts.WordPolicy, args.WordPolicy)
	opts.Stopwords = m.NewStopwords(args.Stopwords...)

	if args.MinChars != nil {
		opts.MinChars = *args.MinChars
	}

	return NewCharAugmenter(opts)
}

// parseAction maps a name to an action; an empty name keeps the preset's action.
func parseAction(name string, strict bool) (m.Action, error) {
	if name == "" {
		return "", nil
	}

	if strict {
		return m.ParseActionStrict(name)
	}

	return m.ParseAction(name), nil
}

func parseSwapMode(name string, strict bool) (m.SwapMode, error) {
	if name == "" {
		return "", nil
	}

	if strict {
		return m.ParseSwapModeStrict(name)
	}

	return m.ParseSwapMode(name), nil
}

func mergePolicy(base, override m.CountPolicy) m.CountPolicy {
	if override.Min != nil {
		base.Min = override.Min
	}

	if override.Max != nil {
		base.Max = override.Max
	}

	if override.Fraction != nil {
		base.Fraction = override.Fraction
	}

	return base
}
