package model

// DefaultSpecialChars is the symbol set used when no custom set is given.
const DefaultSpecialChars = "!@#$%^&*()_+"

const digits = "0123456789"

type alphabet struct {
	upper string
	lower string
}

var alphabets = map[string]alphabet{
	"en": {
		upper: "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		lower: "abcdefghijklmnopqrstuvwxyz",
	},
	"ru": {
		upper: "АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ",
		lower: "абвгдеёжзийклмнопрстуфхцчшщъыьэюя",
	},
}

// AlphabetOptions selects the character classes of a synthesized alphabet.
type AlphabetOptions struct {
	Upper    bool
	Lower    bool
	Digits   bool
	Special  bool
	Language string
	// SpecialChars overrides DefaultSpecialChars when non-nil.
	SpecialChars *string
	// Candidates, when set, is used as-is and every flag is ignored.
	Candidates []string
}

// BuildAlphabet returns the flat candidate list described by opts.
// Unknown languages contribute no letters.
func BuildAlphabet(opts AlphabetOptions) []string {
	if opts.Candidates != nil {
		return append([]string(nil), opts.Candidates...)
	}

	letters := alphabets[opts.Language]
	candidates := make([]string, 0, 100)

	if opts.Upper {
		candidates = appendRunes(candidates, letters.upper)
	}

	if opts.Lower {
		candidates = appendRunes(candidates, letters.lower)
	}

	if opts.Digits {
		candidates = appendRunes(candidates, digits)
	}

	if opts.Special {
		special := DefaultSpecialChars
		if opts.SpecialChars != nil {
			special = *opts.SpecialChars
		}

		candidates = appendRunes(candidates, special)
	}

	return candidates
}

func appendRunes(dst []string, s string) []string {
	for _, r := range s {
		dst = append(dst, string(r))
	}

	return dst
}

// NewAlphabetTable builds a CandidateTable from alphabet options.
func NewAlphabetTable(opts AlphabetOptions) *CandidateTable {
	return NewCandidateTable(BuildAlphabet(opts))
}
