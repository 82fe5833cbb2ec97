package model

// Stopwords is a set of exact-match strings that are never mutated.
type Stopwords map[string]struct{}

// NewStopwords builds a set from words.
func NewStopwords(words ...string) Stopwords {
	if len(words) == 0 {
		return nil
	}

	set := make(Stopwords, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}

	return set
}

// Contains reports whether word is in the set. A nil set contains nothing.
func (s Stopwords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}
