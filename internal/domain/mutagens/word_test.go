package mutagens

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	m "textaug.dev/pkg/textaug/internal/model"
)

func TestWordSubstitute(t *testing.T) {
	text := "My new input string!"
	table := everyWord(text, "word")

	t.Run("replaces every word", func(t *testing.T) {
		doc := m.NewDocument(text)
		cfg := WordConfig{Table: table, Policy: m.CountPolicy{Fraction: m.Float(1)}}

		changed := WordSubstitute(doc, cfg, newRand())

		assert.Equal(t, 4, changed)
		assert.Equal(t, "word word word word!", doc.Reconstruct())
	})

	t.Run("stopwords are kept", func(t *testing.T) {
		doc := m.NewDocument(text)
		cfg := WordConfig{
			Table:  table,
			Filter: Filter{Stopwords: m.NewStopwords("My", "new")},
			Policy: m.CountPolicy{Fraction: m.Float(1)},
		}

		changed := WordSubstitute(doc, cfg, newRand())

		assert.Equal(t, 2, changed)
		assert.Equal(t, "My new word word!", doc.Reconstruct())
	})

	t.Run("words missing from the table are not eligible", func(t *testing.T) {
		doc := m.NewDocument("alpha beta")
		cfg := WordConfig{
			Table:  m.NewMappingTable(m.Mapping{"beta": {"gamma"}}),
			Policy: m.CountPolicy{Fraction: m.Float(1)},
		}

		assert.Equal(t, 1, WordSubstitute(doc, cfg, newRand()))
		assert.Equal(t, "alpha gamma", doc.Reconstruct())
	})

	t.Run("empty table leaves text unchanged", func(t *testing.T) {
		doc := m.NewDocument(text)
		cfg := WordConfig{Table: m.NewMappingTable(nil), Policy: m.CountPolicy{Fraction: m.Float(1)}}

		assert.Equal(t, 0, WordSubstitute(doc, cfg, newRand()))
		assert.Equal(t, text, doc.Reconstruct())
	})

	t.Run("reset restores the original", func(t *testing.T) {
		doc := m.NewDocument(text)
		cfg := WordConfig{Table: table, Policy: m.CountPolicy{Fraction: m.Float(1)}}

		WordSubstitute(doc, cfg, newRand())
		doc.ResetAll()

		assert.Equal(t, text, doc.Reconstruct())
		assert.Equal(t, 0, doc.ChangedCount())
	})
}

func TestWordDelete(t *testing.T) {
	doc := m.NewDocument("My new!! input string!")
	cfg := WordConfig{Table: m.NewMappingTable(nil), Policy: m.CountPolicy{Fraction: m.Float(1)}}

	changed := WordDelete(doc, cfg, newRand())

	assert.Equal(t, 4, changed)
	assert.Equal(t, " !!  !", doc.Reconstruct())
	assert.Equal(t, 10, doc.Len())
	assert.Equal(t, m.TokenWhitespace, doc.Token(0).Latest().Kind)
}

func TestWordSwap(t *testing.T) {
	t.Run("symmetric pair cancels out", func(t *testing.T) {
		doc := m.NewDocument("Test string!")
		cfg := WordConfig{Policy: m.CountPolicy{Fraction: m.Float(1)}}

		changed := WordSwap(doc, cfg, newRand())

		assert.Equal(t, 2, changed)
		assert.Equal(t, "Test string!", doc.Reconstruct())
	})

	t.Run("single swap moves words", func(t *testing.T) {
		doc := m.NewDocument("Test string!")
		cfg := WordConfig{Policy: m.CountPolicy{Max: m.Int(1), Fraction: m.Float(1)}}

		changed := WordSwap(doc, cfg, newRand())

		assert.Equal(t, 1, changed)
		assert.Equal(t, "string Test!", doc.Reconstruct())
		assert.Equal(t, "Test string!", doc.Original())
	})

	t.Run("partner chosen twice moves again", func(t *testing.T) {
		// "b" is not selectable, so both selected words pair with it:
		// (0,2) gives "b a c", then (4,2) moves "a" on to the end.
		doc := m.NewDocument("a b c")
		cfg := WordConfig{
			Filter: Filter{Stopwords: m.NewStopwords("b")},
			Policy: m.CountPolicy{Fraction: m.Float(1)},
		}

		changed := WordSwap(doc, cfg, newRand())

		assert.Equal(t, 2, changed)
		assert.Equal(t, "b c a", doc.Reconstruct())
		assert.Equal(t, "a b c", doc.Original())
	})

	t.Run("every word selected compounds", func(t *testing.T) {
		// Pairs (0,2), (2,0 or 4), (4,2) applied in that order.
		for seed := range uint64(32) {
			doc := m.NewDocument("a b c")
			cfg := WordConfig{Policy: m.CountPolicy{Fraction: m.Float(1)}}

			changed := WordSwap(doc, cfg, rand.New(rand.NewPCG(seed, seed+1)))

			assert.Equal(t, 3, changed)
			assert.Contains(t, []string{"a c b", "b a c"}, doc.Reconstruct(), "seed %d", seed)
		}
	})

	t.Run("single word has no partner", func(t *testing.T) {
		doc := m.NewDocument("alone!")
		cfg := WordConfig{Policy: m.CountPolicy{Fraction: m.Float(1)}}

		assert.Equal(t, 0, WordSwap(doc, cfg, newRand()))
		assert.Equal(t, "alone!", doc.Reconstruct())
	})

	t.Run("keeps the multiset of words", func(t *testing.T) {
		doc := m.NewDocument("one two three four five")
		cfg := WordConfig{Policy: m.CountPolicy{Fraction: m.Float(0.6)}}

		WordSwap(doc, cfg, newRand())

		assert.ElementsMatch(t,
			[]string{"one", "two", "three", "four", "five"},
			wordsOf(doc))
	})
}

func TestNeighbour(t *testing.T) {
	sorted := []int{0, 2, 4, 6}
	rng := newRand()

	partner, ok := neighbour(sorted, 0, rng)
	assert.True(t, ok)
	assert.Equal(t, 2, partner)

	partner, ok = neighbour(sorted, 6, rng)
	assert.True(t, ok)
	assert.Equal(t, 4, partner)

	partner, ok = neighbour(sorted, 2, rng)
	assert.True(t, ok)
	assert.Contains(t, []int{0, 4}, partner)

	_, ok = neighbour(sorted, 3, rng)
	assert.False(t, ok)
}

func wordsOf(doc *m.Document) []string {
	var words []string

	for _, token := range doc.Tokens() {
		if token.Latest().Kind == m.TokenWord {
			words = append(words, token.Latest().Text)
		}
	}

	return words
}
