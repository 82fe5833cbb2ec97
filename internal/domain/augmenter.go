// Package domain contains the augmentation workflow and the batch orchestration logic.
package domain

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"textaug.dev/pkg/textaug/internal/domain/mutagens"
	m "textaug.dev/pkg/textaug/internal/model"
)

// ErrUnsupportedAction is returned when an action has no definition at the requested level.
var ErrUnsupportedAction = errors.New("unsupported action")

// Augmenter applies one mutation strategy to a document.
// Implementations hold only read-only state and may be shared across goroutines.
type Augmenter interface {
	// Augment mutates doc in place and returns the number of mutations applied.
	Augment(doc *m.Document, rng *rand.Rand) int
	Action() m.Action
	Level() m.Level
}

// CharOptions configures a character-level augmenter.
type CharOptions struct {
	Action         m.Action
	SwapMode       m.SwapMode
	Table          m.Table
	CharPolicy     m.CountPolicy
	WordPolicy     m.CountPolicy
	MinChars       int
	Stopwords      m.Stopwords
	IncludeSymbols bool
}

// WordOptions configures a word-level augmenter.
type WordOptions struct {
	Action         m.Action
	Table          m.Table
	Policy         m.CountPolicy
	Stopwords      m.Stopwords
	IncludeSymbols bool
}

type charStrategy func(*m.Document, mutagens.CharConfig, m.SwapMode, *rand.Rand) int

type wordStrategy func(*m.Document, mutagens.WordConfig, *rand.Rand) int

var charStrategies = map[m.Action]charStrategy{
	m.ActionInsert: func(doc *m.Document, cfg mutagens.CharConfig, _ m.SwapMode, rng *rand.Rand) int {
		return mutagens.CharInsert(doc, cfg, rng)
	},
	m.ActionSubstitute: func(doc *m.Document, cfg mutagens.CharConfig, _ m.SwapMode, rng *rand.Rand) int {
		return mutagens.CharSubstitute(doc, cfg, rng)
	},
	m.ActionDelete: func(doc *m.Document, cfg mutagens.CharConfig, _ m.SwapMode, rng *rand.Rand) int {
		return mutagens.CharDelete(doc, cfg, rng)
	},
	m.ActionSwap: mutagens.CharSwap,
}

var wordStrategies = map[m.Action]wordStrategy{
	m.ActionSubstitute: mutagens.WordSubstitute,
	m.ActionDelete:     mutagens.WordDelete,
	m.ActionSwap:       mutagens.WordSwap,
}

type charAugmenter struct {
	action   m.Action
	mode     m.SwapMode
	config   mutagens.CharConfig
	strategy charStrategy
}

// NewCharAugmenter builds a character-level augmenter. An empty action means substitute.
func NewCharAugmenter(opts CharOptions) (Augmenter, error) {
	action := resolveAction(opts.Action)

	strategy, ok := charStrategies[action]
	if !ok {
		return nil, fmt.Errorf("%w: %q", m.ErrUnknownAction, opts.Action)
	}

	if opts.Table == nil {
		return nil, fmt.Errorf("missing substitution table")
	}

	mode := opts.SwapMode
	if mode == "" {
		mode = m.SwapAdjacent
	}

	return &charAugmenter{
		action: action,
		mode:   mode,
		config: mutagens.CharConfig{
			Table: opts.Table,
			Filter: mutagens.Filter{
				MinChars:       opts.MinChars,
				Stopwords:      opts.Stopwords,
				IncludeSymbols: opts.IncludeSymbols,
			},
			WordPolicy: opts.WordPolicy,
			CharPolicy: opts.CharPolicy,
		},
		strategy: strategy,
	}, nil
}

func (a *charAugmenter) Augment(doc *m.Document, rng *rand.Rand) int {
	return a.strategy(doc, a.config, a.mode, rng)
}

func (a *charAugmenter) Action() m.Action {
	return a.action
}

func (a *charAugmenter) Level() m.Level {
	return m.LevelChar
}

type wordAugmenter struct {
	action   m.Action
	config   mutagens.WordConfig
	strategy wordStrategy
}

// NewWordAugmenter builds a word-level augmenter. Insert has no word-level
// definition and fails with ErrUnsupportedAction.
func NewWordAugmenter(opts WordOptions) (Augmenter, error) {
	action := resolveAction(opts.Action)
	if action == m.ActionInsert {
		return nil, fmt.Errorf("%w: %s at %s level", ErrUnsupportedAction, action, m.LevelWord)
	}

	strategy, ok := wordStrategies[action]
	if !ok {
		return nil, fmt.Errorf("%w: %q", m.ErrUnknownAction, opts.Action)
	}

	table := opts.Table
	if table == nil {
		table = m.NewMappingTable(nil)
	}

	return &wordAugmenter{
		action: action,
		config: mutagens.WordConfig{
			Table: table,
			Filter: mutagens.Filter{
				Stopwords:      opts.Stopwords,
				IncludeSymbols: opts.IncludeSymbols,
			},
			Policy: opts.Policy,
		},
		strategy: strategy,
	}, nil
}

func (a *wordAugmenter) Augment(doc *m.Document, rng *rand.Rand) int {
	return a.strategy(doc, a.config, rng)
}

func (a *wordAugmenter) Action() m.Action {
	return a.action
}

func (a *wordAugmenter) Level() m.Level {
	return m.LevelWord
}

func resolveAction(action m.Action) m.Action {
	if action == "" {
		return m.ActionSubstitute
	}

	return action
}
