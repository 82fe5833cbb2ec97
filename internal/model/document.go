package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Document is an ordered sequence of tracked tokens produced from one input string.
//
// Concatenating the original tokens always reproduces the input exactly; mutations
// only ever record replacements, so ResetAll returns the document to that state.
type Document struct {
	tokens  []TrackedToken
	changed int
}

// NewDocument tokenizes text into a Document.
func NewDocument(text string) *Document {
	return &Document{tokens: Tokenize(text)}
}

// Tokenize splits text into word runs and single whitespace/symbol characters.
// No normalization or case folding is applied.
func Tokenize(text string) []TrackedToken {
	tokens := make([]TrackedToken, 0, len(text)/4+1)
	wordStart := -1

	for pos, r := range text {
		if isWordRune(r) {
			if wordStart < 0 {
				wordStart = pos
			}

			continue
		}

		if wordStart >= 0 {
			tokens = append(tokens, NewTrackedToken(NewToken(TokenWord, text[wordStart:pos])))
			wordStart = -1
		}

		// Invalid bytes decode as a one-byte RuneError; the raw byte is kept.
		_, width := utf8.DecodeRuneInString(text[pos:])

		kind := TokenSymbol
		if unicode.IsSpace(r) {
			kind = TokenWhitespace
		}

		tokens = append(tokens, NewTrackedToken(NewToken(kind, text[pos:pos+width])))
	}

	if wordStart >= 0 {
		tokens = append(tokens, NewTrackedToken(NewToken(TokenWord, text[wordStart:])))
	}

	return tokens
}

// isWordRune reports whether r is alphabetic or numeric. Combining marks
// outside Other_Alphabetic, such as U+0301, are symbols.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Other_Alphabetic, r)
}

// Len returns the number of tokens.
func (d *Document) Len() int {
	return len(d.tokens)
}

// Token returns a pointer to the tracked token at index, or nil when out of range.
func (d *Document) Token(index int) *TrackedToken {
	if index < 0 || index >= len(d.tokens) {
		return nil
	}

	return &d.tokens[index]
}

// Tokens returns the tracked tokens. Callers must not retain the slice across mutations.
func (d *Document) Tokens() []TrackedToken {
	return d.tokens
}

func eligible(kind TokenKind, includeSymbols bool) bool {
	switch kind {
	case TokenWord:
		return true
	case TokenSymbol:
		return includeSymbols
	default:
		return false
	}
}

// EligibleIndexes returns the indexes of word tokens, plus symbol tokens when
// includeSymbols is set. Whitespace is never eligible.
func (d *Document) EligibleIndexes(includeSymbols bool) []int {
	indexes := make([]int, 0, len(d.tokens))

	for i := range d.tokens {
		if eligible(d.tokens[i].original.Kind, includeSymbols) {
			indexes = append(indexes, i)
		}
	}

	return indexes
}

// WordTokenCount returns len(EligibleIndexes(includeSymbols)) without allocating.
func (d *Document) WordTokenCount(includeSymbols bool) int {
	count := 0

	for i := range d.tokens {
		if eligible(d.tokens[i].original.Kind, includeSymbols) {
			count++
		}
	}

	return count
}

// Swap exchanges the current contents of two token slots.
// Out-of-range indexes are ignored.
func (d *Document) Swap(i, j int) {
	if i < 0 || j < 0 || i >= len(d.tokens) || j >= len(d.tokens) || i == j {
		return
	}

	left := d.tokens[i].Latest()
	right := d.tokens[j].Latest()

	d.tokens[i].Replace(right.Kind, right.Text)
	d.tokens[j].Replace(left.Kind, left.Text)
}

// ApplyReplacement records a replacement for the token at index.
// Out-of-range indexes are ignored.
func (d *Document) ApplyReplacement(index int, text string, kind TokenKind) {
	if index < 0 || index >= len(d.tokens) {
		return
	}

	d.tokens[index].Replace(kind, text)
}

// ResetAll discards every replacement and the changed count.
func (d *Document) ResetAll() {
	for i := range d.tokens {
		d.tokens[i].Reset()
	}

	d.changed = 0
}

// Reconstruct concatenates the latest text of every token.
func (d *Document) Reconstruct() string {
	var b strings.Builder

	for i := range d.tokens {
		b.WriteString(d.tokens[i].Latest().Text)
	}

	return b.String()
}

// Original concatenates the original text of every token.
func (d *Document) Original() string {
	var b strings.Builder

	for i := range d.tokens {
		b.WriteString(d.tokens[i].original.Text)
	}

	return b.String()
}

// ChangedCount returns the number of mutations recorded by the last pass.
func (d *Document) ChangedCount() int {
	return d.changed
}

// SetChangedCount records the number of mutations applied by a pass.
func (d *Document) SetChangedCount(count int) {
	d.changed = count
}
