package mutagens

import (
	"math/rand/v2"
	"strings"

	m "textaug.dev/pkg/textaug/internal/model"
)

// CharConfig binds a character-level mutation to its table and policies.
type CharConfig struct {
	Table  m.Table
	Filter Filter
	// WordPolicy decides how many tokens are touched.
	WordPolicy m.CountPolicy
	// CharPolicy decides how many characters inside each token are touched.
	CharPolicy m.CountPolicy
}

type charEdit func(ch string, rng *rand.Rand) string

// CharSubstitute replaces selected characters with one of their candidates
// and returns the number of tokens changed. Characters without candidates are
// not eligible.
func CharSubstitute(doc *m.Document, cfg CharConfig, rng *rand.Rand) int {
	cfg.Table = withCandidates(cfg.Table)

	return rewriteChars(doc, cfg, rng, func(ch string, rng *rand.Rand) string {
		candidate, ok := pickOne(rng, cfg.Table.Candidates(ch))
		if !ok {
			return ch
		}

		return candidate
	})
}

// CharInsert places a candidate in front of each selected character.
// Characters without candidates are not eligible.
func CharInsert(doc *m.Document, cfg CharConfig, rng *rand.Rand) int {
	cfg.Table = withCandidates(cfg.Table)

	return rewriteChars(doc, cfg, rng, func(ch string, rng *rand.Rand) string {
		candidate, _ := pickOne(rng, cfg.Table.Candidates(ch))
		return candidate + ch
	})
}

// CharDelete removes selected characters. The table only decides eligibility.
func CharDelete(doc *m.Document, cfg CharConfig, rng *rand.Rand) int {
	return rewriteChars(doc, cfg, rng, func(string, *rand.Rand) string {
		return ""
	})
}

func rewriteChars(doc *m.Document, cfg CharConfig, rng *rand.Rand, edit charEdit) int {
	changed := 0

	for _, index := range SelectTargets(doc, cfg.Table, cfg.Filter, cfg.WordPolicy, rng) {
		latest := doc.Token(index).Latest()

		selected := SelectChars(latest, cfg.Table, cfg.CharPolicy, rng)
		if len(selected) == 0 {
			continue
		}

		chars := SplitChars(latest.Text)
		picked := toSet(selected)

		var b strings.Builder

		b.Grow(len(latest.Text))

		for i, ch := range chars {
			if _, ok := picked[i]; ok {
				b.WriteString(edit(ch, rng))
				continue
			}

			b.WriteString(ch)
		}

		doc.ApplyReplacement(index, b.String(), latest.Kind)
		changed++
	}

	doc.SetChangedCount(changed)

	return changed
}

// candidateTable narrows Exists to keys that have at least one candidate.
type candidateTable struct {
	m.Table
}

func (t candidateTable) Exists(key string) bool {
	return t.Table.Exists(key) && len(t.Table.Candidates(key)) > 0
}

func withCandidates(table m.Table) m.Table {
	if table == nil {
		return nil
	}

	return candidateTable{Table: table}
}
