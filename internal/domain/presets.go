package domain

import (
	m "textaug.dev/pkg/textaug/internal/model"
)

func defaultPolicy(minCount int) m.CountPolicy {
	return m.NewCountPolicy(m.Int(minCount), m.Int(10), m.Float(m.DefaultFraction))
}

// OCRPreset returns the options for confusable-character substitution.
func OCRPreset(table m.Table) CharOptions {
	return CharOptions{
		Action:     m.ActionSubstitute,
		SwapMode:   m.SwapAdjacent,
		Table:      table,
		CharPolicy: defaultPolicy(2),
		WordPolicy: defaultPolicy(1),
		MinChars:   1,
	}
}

// KeyboardPreset returns the options for keyboard-typo substitution.
// Symbol tokens are only touched when the table allows special characters.
func KeyboardPreset(table m.Table, allowSpecial bool) CharOptions {
	return CharOptions{
		Action:         m.ActionSubstitute,
		SwapMode:       m.SwapAdjacent,
		Table:          table,
		CharPolicy:     defaultPolicy(1),
		WordPolicy:     defaultPolicy(1),
		MinChars:       4,
		IncludeSymbols: allowSpecial,
	}
}

// RandomCharPreset returns the options for random character edits drawn from
// a synthesized alphabet.
func RandomCharPreset(alphabet m.AlphabetOptions, action m.Action, mode m.SwapMode) CharOptions {
	return CharOptions{
		Action:     resolveAction(action),
		SwapMode:   mode,
		Table:      m.NewAlphabetTable(alphabet),
		CharPolicy: defaultPolicy(1),
		WordPolicy: defaultPolicy(1),
		MinChars:   4,
	}
}

// RandomWordPreset returns the options for random word edits. The default
// action is delete; with no targets every word may become "_".
func RandomWordPreset(targets []string, mapping m.Mapping, action m.Action) WordOptions {
	if action == "" {
		action = m.ActionDelete
	}

	if len(targets) == 0 && len(mapping) == 0 {
		targets = m.DefaultWordCandidates
	}

	return WordOptions{
		Action: action,
		Table:  m.NewWordTable(targets, mapping),
		Policy: defaultPolicy(1),
	}
}
