// Package mutagens implements the character- and word-level text mutations.
package mutagens

import (
	"math/rand/v2"
	"unicode/utf8"

	m "textaug.dev/pkg/textaug/internal/model"
)

// Filter decides which tokens of a document may be mutated.
// All set predicates must hold for a token to stay eligible.
type Filter struct {
	// UseTable drops tokens whose original text is not a key of the table.
	UseTable bool
	// MinChars drops tokens shorter than this many code points. Zero disables it.
	MinChars int
	// Stopwords are never mutated.
	Stopwords m.Stopwords
	// IncludeSymbols makes symbol tokens eligible alongside words.
	IncludeSymbols bool
}

func (f Filter) keep(token m.Token, table m.Table) bool {
	if f.UseTable && (table == nil || !table.Exists(token.Text)) {
		return false
	}

	if f.MinChars > 0 && token.RuneLen() < f.MinChars {
		return false
	}

	if f.Stopwords.Contains(token.Text) {
		return false
	}

	return true
}

// SelectTargets returns the indexes of the document tokens chosen for mutation.
//
// The target count comes from policy applied to the number of eligible tokens
// before filtering. When the filtered set is no larger than that count, all of
// it is returned in document order; otherwise a uniform sample without
// replacement is returned in draw order.
func SelectTargets(doc *m.Document, table m.Table, filter Filter, policy m.CountPolicy, rng *rand.Rand) []int {
	eligible := doc.EligibleIndexes(filter.IncludeSymbols)
	count := policy.Calculate(len(eligible))

	filtered := eligible[:0]

	for _, index := range eligible {
		if filter.keep(doc.Token(index).Original(), table) {
			filtered = append(filtered, index)
		}
	}

	return sample(rng, filtered, count)
}

// SelectChars returns the code point indexes of token chosen for mutation.
// Only characters that exist in table are eligible.
func SelectChars(token m.Token, table m.Table, policy m.CountPolicy, rng *rand.Rand) []int {
	chars := SplitChars(token.Text)
	count := policy.Calculate(len(chars))

	eligible := make([]int, 0, len(chars))

	for i, ch := range chars {
		if table != nil && table.Exists(ch) {
			eligible = append(eligible, i)
		}
	}

	return sample(rng, eligible, count)
}

// SplitChars splits text into one string per code point. Invalid bytes are
// kept as single-byte entries so joining the result reproduces text.
func SplitChars(text string) []string {
	chars := make([]string, 0, len(text))

	for len(text) > 0 {
		_, width := utf8.DecodeRuneInString(text)
		chars = append(chars, text[:width])
		text = text[width:]
	}

	return chars
}

func sample(rng *rand.Rand, items []int, count int) []int {
	if len(items) == 0 || count <= 0 {
		return nil
	}

	if count >= len(items) {
		return items
	}

	pool := append([]int(nil), items...)

	for i := 0; i < count; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:count]
}

func pickOne(rng *rand.Rand, candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}

	return candidates[rng.IntN(len(candidates))], true
}

func toSet(indexes []int) map[int]struct{} {
	set := make(map[int]struct{}, len(indexes))
	for _, index := range indexes {
		set[index] = struct{}{}
	}

	return set
}
