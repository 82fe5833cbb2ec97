package model

import (
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		kinds []TokenKind
		texts []string
	}{
		{
			name:  "words and punctuation",
			text:  "Hi, you!",
			kinds: []TokenKind{TokenWord, TokenSymbol, TokenWhitespace, TokenWord, TokenSymbol},
			texts: []string{"Hi", ",", " ", "you", "!"},
		},
		{
			name:  "digits belong to words",
			text:  "abc123 4",
			kinds: []TokenKind{TokenWord, TokenWhitespace, TokenWord},
			texts: []string{"abc123", " ", "4"},
		},
		{
			name:  "each whitespace character is its own token",
			text:  "a \t\nb",
			kinds: []TokenKind{TokenWord, TokenWhitespace, TokenWhitespace, TokenWhitespace, TokenWord},
			texts: []string{"a", " ", "\t", "\n", "b"},
		},
		{
			name:  "cyrillic",
			text:  "Привет мир",
			kinds: []TokenKind{TokenWord, TokenWhitespace, TokenWord},
			texts: []string{"Привет", " ", "мир"},
		},
		{
			name:  "combining acute accent is a symbol",
			text:  "cafe\u0301 x",
			kinds: []TokenKind{TokenWord, TokenSymbol, TokenWhitespace, TokenWord},
			texts: []string{"cafe", "\u0301", " ", "x"},
		},
		{
			name:  "other alphabetic marks stay in the word",
			text:  "\u0915\u093e!",
			kinds: []TokenKind{TokenWord, TokenSymbol},
			texts: []string{"\u0915\u093e", "!"},
		},
		{
			name: "empty",
			text: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.text)
			if len(tokens) != len(tt.texts) {
				t.Fatalf("expected %d tokens, got %d", len(tt.texts), len(tokens))
			}

			for i := range tokens {
				got := tokens[i].Original()
				if got.Kind != tt.kinds[i] || got.Text != tt.texts[i] {
					t.Errorf("token %d: expected %v %q, got %v %q", i, tt.kinds[i], tt.texts[i], got.Kind, got.Text)
				}
			}
		})
	}
}

func TestDocument_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"  leading and trailing  ",
		"Mixed: ünïcödé, Привет, 日本語!",
		"tabs\tand\r\nnewlines",
		"bad \xff\xfe bytes",
	}

	for _, input := range inputs {
		doc := NewDocument(input)
		if got := doc.Reconstruct(); got != input {
			t.Errorf("Reconstruct() = %q, want %q", got, input)
		}

		if got := doc.Original(); got != input {
			t.Errorf("Original() = %q, want %q", got, input)
		}
	}
}

func TestDocument_InvalidBytesAreSymbols(t *testing.T) {
	doc := NewDocument("a\xffb")
	if doc.Len() != 3 {
		t.Fatalf("expected 3 tokens, got %d", doc.Len())
	}

	middle := doc.Token(1).Original()
	if middle.Kind != TokenSymbol || middle.Text != "\xff" {
		t.Errorf("expected raw symbol byte, got %v %q", middle.Kind, middle.Text)
	}
}

func TestDocument_EligibleIndexes(t *testing.T) {
	doc := NewDocument("Hi, you!")

	words := doc.EligibleIndexes(false)
	if len(words) != 2 || words[0] != 0 || words[1] != 3 {
		t.Errorf("unexpected word indexes %v", words)
	}

	all := doc.EligibleIndexes(true)
	if len(all) != 4 {
		t.Errorf("expected 4 eligible tokens with symbols, got %v", all)
	}

	if doc.WordTokenCount(false) != 2 || doc.WordTokenCount(true) != 4 {
		t.Errorf("WordTokenCount disagrees with EligibleIndexes")
	}
}

func TestDocument_ReplaceAndReset(t *testing.T) {
	doc := NewDocument("one two")
	doc.ApplyReplacement(0, "1", TokenWord)
	doc.ApplyReplacement(2, "2", TokenWord)
	doc.ApplyReplacement(2, "II", TokenWord)
	doc.ApplyReplacement(99, "ignored", TokenWord)
	doc.SetChangedCount(2)

	if got := doc.Reconstruct(); got != "1 II" {
		t.Fatalf("Reconstruct() = %q", got)
	}

	if got := doc.Original(); got != "one two" {
		t.Fatalf("Original() = %q", got)
	}

	if !doc.Token(0).Changed() || doc.Token(1).Changed() {
		t.Errorf("unexpected Changed flags")
	}

	doc.ResetAll()

	if got := doc.Reconstruct(); got != "one two" {
		t.Errorf("after reset Reconstruct() = %q", got)
	}

	if doc.ChangedCount() != 0 {
		t.Errorf("after reset ChangedCount() = %d", doc.ChangedCount())
	}
}

func TestDocument_Swap(t *testing.T) {
	doc := NewDocument("a b c")
	doc.Swap(0, 4)

	if got := doc.Reconstruct(); got != "c b a" {
		t.Fatalf("Reconstruct() = %q", got)
	}

	// Swapping again uses the latest contents.
	doc.Swap(0, 2)

	if got := doc.Reconstruct(); got != "b c a" {
		t.Fatalf("Reconstruct() = %q", got)
	}

	if doc.Token(0).Original().Text != "a" {
		t.Errorf("original moved: %q", doc.Token(0).Original().Text)
	}

	doc.Swap(-1, 0)
	doc.Swap(0, 5)
	doc.Swap(1, 1)

	if got := doc.Reconstruct(); got != "b c a" {
		t.Errorf("out-of-range swap changed the document: %q", got)
	}
}

func TestDocument_TokenOutOfRange(t *testing.T) {
	doc := NewDocument("x")
	if doc.Token(-1) != nil || doc.Token(1) != nil {
		t.Errorf("expected nil for out-of-range token")
	}
}

func TestToken_Lengths(t *testing.T) {
	token := NewToken(TokenWord, "мир")
	if token.RuneLen() != 3 {
		t.Errorf("RuneLen() = %d", token.RuneLen())
	}

	if token.ByteLen() != 6 {
		t.Errorf("ByteLen() = %d", token.ByteLen())
	}
}

func TestTokenKind_String(t *testing.T) {
	if TokenWord.String() != "word" || TokenWhitespace.String() != "whitespace" || TokenSymbol.String() != "symbol" {
		t.Errorf("unexpected kind names")
	}

	if TokenKind(42).String() != "unknown" {
		t.Errorf("expected unknown for out-of-range kind")
	}
}
