package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymmetrize(t *testing.T) {
	mapping := Mapping{
		"0": {"o", "O"},
		"o": {"0"},
	}

	got := Symmetrize(mapping)

	assert.Equal(t, []string{"o", "O"}, got["0"])
	assert.Equal(t, []string{"0"}, got["o"])
	assert.Equal(t, []string{"0"}, got["O"])
	assert.Equal(t, []string{"0"}, mapping["o"], "input must not be modified")
	assert.NotContains(t, mapping, "O")
}

func TestDeduplicate(t *testing.T) {
	got := Deduplicate(Mapping{"a": {"b", "c", "b", "a", "c"}})
	assert.Equal(t, []string{"b", "c", "a"}, got["a"])
}

func TestNewOCRTable(t *testing.T) {
	table := NewOCRTable(Mapping{"l": {"1", "I"}, "1": {"l"}, "x": nil})

	assert.True(t, table.Exists("I"))
	assert.Equal(t, []string{"l"}, table.Candidates("I"))
	assert.Equal(t, []string{"1", "I"}, table.Candidates("l"))
	assert.False(t, table.Exists("x"), "keys without candidates are dropped")
	assert.Nil(t, table.Candidates("z"))

	stats := table.Stats()
	assert.Equal(t, 3, stats.Keys)
	assert.Equal(t, 4, stats.Candidates)
	assert.Equal(t, 1, stats.MinPerKey)
	assert.Equal(t, 2, stats.MaxPerKey)
	assert.False(t, stats.AnyKey)
}

func TestMappingTable_Isolation(t *testing.T) {
	source := Mapping{"a": {"b"}}
	table := NewMappingTable(source)
	source["a"][0] = "changed"

	copied := table.Mapping()
	copied["a"][0] = "also changed"

	assert.Equal(t, []string{"b"}, table.Candidates("a"))
}

func TestNewKeyboardTable(t *testing.T) {
	mapping := Mapping{
		"a": {"q", "s", "1", "!"},
		"1": {"2", "q"},
		"!": {"@"},
	}

	t.Run("letters only", func(t *testing.T) {
		table := NewKeyboardTable(mapping, KeyboardOptions{})

		assert.Equal(t, []string{"q", "s"}, table.Candidates("a"))
		assert.False(t, table.Exists("1"))
		assert.False(t, table.Exists("!"))
		assert.False(t, table.Exists("A"))
	})

	t.Run("numeric and special", func(t *testing.T) {
		table := NewKeyboardTable(mapping, KeyboardOptions{AllowNumeric: true, AllowSpecial: true})

		assert.Equal(t, []string{"q", "s", "1", "!"}, table.Candidates("a"))
		assert.Equal(t, []string{"2", "q"}, table.Candidates("1"))
		assert.Equal(t, []string{"@"}, table.Candidates("!"))
	})

	t.Run("upper case", func(t *testing.T) {
		table := NewKeyboardTable(mapping, KeyboardOptions{UpperCase: true})

		assert.Equal(t, []string{"Q", "q", "S", "s"}, table.Candidates("a"))
		assert.Equal(t, []string{"Q", "q", "S", "s"}, table.Candidates("A"))
	})
}

func TestNewWordTable(t *testing.T) {
	t.Run("list makes every word eligible", func(t *testing.T) {
		table := NewWordTable([]string{"x", "y"}, Mapping{"a": {"b"}})

		assert.True(t, table.Exists("anything"))
		assert.Equal(t, []string{"x", "y"}, table.Candidates("anything"))
		assert.True(t, table.Stats().AnyKey)
	})

	t.Run("mapping restricts eligibility", func(t *testing.T) {
		table := NewWordTable(nil, Mapping{"good": {"fine", "nice"}})

		assert.True(t, table.Exists("good"))
		assert.False(t, table.Exists("bad"))
		assert.Equal(t, []string{"fine", "nice"}, table.Candidates("good"))
	})

	t.Run("empty", func(t *testing.T) {
		table := NewWordTable(nil, nil)

		assert.False(t, table.Exists("word"))
		assert.Equal(t, TableStats{}, table.Stats())
	})
}

func TestBuildAlphabet(t *testing.T) {
	t.Run("english lower and digits", func(t *testing.T) {
		got := BuildAlphabet(AlphabetOptions{Lower: true, Digits: true, Language: "en"})

		require.Len(t, got, 36)
		assert.Equal(t, "a", got[0])
		assert.Equal(t, "9", got[35])
	})

	t.Run("russian upper", func(t *testing.T) {
		got := BuildAlphabet(AlphabetOptions{Upper: true, Language: "ru"})

		require.Len(t, got, 33)
		assert.Equal(t, "Ё", got[6])
	})

	t.Run("custom specials", func(t *testing.T) {
		special := "#%"
		got := BuildAlphabet(AlphabetOptions{Special: true, SpecialChars: &special})

		assert.Equal(t, []string{"#", "%"}, got)
	})

	t.Run("default specials", func(t *testing.T) {
		got := BuildAlphabet(AlphabetOptions{Special: true})

		assert.Len(t, got, len(DefaultSpecialChars))
	})

	t.Run("unknown language has no letters", func(t *testing.T) {
		assert.Empty(t, BuildAlphabet(AlphabetOptions{Upper: true, Lower: true, Language: "xx"}))
	})

	t.Run("explicit candidates win", func(t *testing.T) {
		got := BuildAlphabet(AlphabetOptions{Upper: true, Language: "en", Candidates: []string{"ß"}})

		assert.Equal(t, []string{"ß"}, got)
	})

	t.Run("table", func(t *testing.T) {
		table := NewAlphabetTable(AlphabetOptions{Digits: true})

		assert.True(t, table.Exists("anything"))
		assert.Len(t, table.Candidates(""), 10)
	})
}
