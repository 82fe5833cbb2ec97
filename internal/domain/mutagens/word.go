package mutagens

import (
	"math/rand/v2"
	"sort"

	m "textaug.dev/pkg/textaug/internal/model"
)

// WordConfig binds a word-level mutation to its table and policy.
type WordConfig struct {
	Table  m.Table
	Filter Filter
	Policy m.CountPolicy
}

// WordSubstitute replaces selected words with one of their candidates.
// Only words that are keys of the table are eligible.
func WordSubstitute(doc *m.Document, cfg WordConfig, rng *rand.Rand) int {
	filter := cfg.Filter
	filter.UseTable = true

	changed := 0

	for _, index := range SelectTargets(doc, cfg.Table, filter, cfg.Policy, rng) {
		original := doc.Token(index).Original()

		candidate, ok := pickOne(rng, cfg.Table.Candidates(original.Text))
		if !ok {
			continue
		}

		doc.ApplyReplacement(index, candidate, original.Kind)
		changed++
	}

	doc.SetChangedCount(changed)

	return changed
}

// WordDelete empties selected words. The slot stays in the document as an
// empty whitespace token, so surrounding separators are kept verbatim.
func WordDelete(doc *m.Document, cfg WordConfig, rng *rand.Rand) int {
	filter := cfg.Filter
	filter.UseTable = false

	changed := 0

	for _, index := range SelectTargets(doc, cfg.Table, filter, cfg.Policy, rng) {
		doc.ApplyReplacement(index, "", m.TokenWhitespace)
		changed++
	}

	doc.SetChangedCount(changed)

	return changed
}

// WordSwap exchanges selected words with a neighbouring eligible word.
//
// Pairs are resolved against the eligible indexes first and then applied in
// selection order, so a word picked as a partner more than once moves again.
// Every applied pair counts, even when the pairs cancel out.
func WordSwap(doc *m.Document, cfg WordConfig, rng *rand.Rand) int {
	filter := cfg.Filter
	filter.UseTable = false

	eligible := doc.EligibleIndexes(filter.IncludeSymbols)
	if len(eligible) < 2 {
		doc.SetChangedCount(0)
		return 0
	}

	selected := SelectTargets(doc, cfg.Table, filter, cfg.Policy, rng)
	pairs := make([][2]int, 0, len(selected))

	for _, index := range selected {
		partner, ok := neighbour(eligible, index, rng)
		if !ok {
			continue
		}

		pairs = append(pairs, [2]int{index, partner})
	}

	for _, pair := range pairs {
		doc.Swap(pair[0], pair[1])
	}

	doc.SetChangedCount(len(pairs))

	return len(pairs)
}

func neighbour(sorted []int, index int, rng *rand.Rand) (int, bool) {
	pos := sort.SearchInts(sorted, index)
	if pos >= len(sorted) || sorted[pos] != index || len(sorted) < 2 {
		return 0, false
	}

	switch {
	case pos == 0:
		return sorted[1], true
	case pos == len(sorted)-1:
		return sorted[pos-1], true
	case rng.IntN(2) == 0:
		return sorted[pos-1], true
	default:
		return sorted[pos+1], true
	}
}
