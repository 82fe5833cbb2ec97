// Package model defines the data structures for text augmentation.
package model

import "unicode/utf8"

// TokenKind represents the category of a token.
type TokenKind int

const (
	// TokenWord is a maximal run of alphabetic and numeric characters.
	TokenWord TokenKind = iota
	// TokenWhitespace is a single whitespace character.
	TokenWhitespace
	// TokenSymbol is a single character that is neither a word character nor whitespace.
	TokenSymbol
)

func (k TokenKind) String() string {
	switch k {
	case TokenWord:
		return "word"
	case TokenWhitespace:
		return "whitespace"
	case TokenSymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// Token is an immutable unit of text.
type Token struct {
	Kind TokenKind
	Text string
}

// NewToken creates a token of the given kind.
func NewToken(kind TokenKind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// ByteLen returns the UTF-8 encoded length of the token.
func (t Token) ByteLen() int {
	return len(t.Text)
}

// RuneLen returns the number of Unicode code points in the token.
// Every length filter works on this value, never on ByteLen.
func (t Token) RuneLen() int {
	return utf8.RuneCountInString(t.Text)
}

// TrackedToken owns an original token and at most one replacement.
type TrackedToken struct {
	original    Token
	replacement *Token
}

// NewTrackedToken wraps an original token.
func NewTrackedToken(original Token) TrackedToken {
	return TrackedToken{original: original}
}

// Original returns the token as it was tokenized.
func (t *TrackedToken) Original() Token {
	return t.original
}

// Latest returns the replacement if present, otherwise the original.
func (t *TrackedToken) Latest() Token {
	if t.replacement != nil {
		return *t.replacement
	}

	return t.original
}

// Replace records a replacement, discarding any previous one.
func (t *TrackedToken) Replace(kind TokenKind, text string) {
	replacement := NewToken(kind, text)
	t.replacement = &replacement
}

// Reset discards the replacement.
func (t *TrackedToken) Reset() {
	t.replacement = nil
}

// Changed reports whether a replacement is recorded.
func (t *TrackedToken) Changed() bool {
	return t.replacement != nil
}
