package mutagens

import (
	"math/rand/v2"
	"unicode"

	m "textaug.dev/pkg/textaug/internal/model"
)

// CharSwap moves selected characters to another position in their token.
//
// Swaps are applied one after another to a single buffer per token, so a
// character moved by an earlier swap can be moved again. Letter case stays
// with the position: when exactly one of the two letters was upper case, the
// letter landing in that slot becomes upper case and the other lower case.
func CharSwap(doc *m.Document, cfg CharConfig, mode m.SwapMode, rng *rand.Rand) int {
	changed := 0

	for _, index := range SelectTargets(doc, cfg.Table, cfg.Filter, cfg.WordPolicy, rng) {
		latest := doc.Token(index).Latest()
		if latest.RuneLen() < 2 {
			continue
		}

		selected := SelectChars(latest, cfg.Table, cfg.CharPolicy, rng)
		if len(selected) == 0 {
			continue
		}

		buf := []rune(latest.Text)
		swapped := false

		for _, from := range selected {
			to, ok := swapTarget(mode, from, len(buf), rng)
			if !ok {
				continue
			}

			swapRunes(buf, from, to)
			swapped = true
		}

		if !swapped {
			continue
		}

		doc.ApplyReplacement(index, string(buf), latest.Kind)
		changed++
	}

	doc.SetChangedCount(changed)

	return changed
}

func swapTarget(mode m.SwapMode, from, length int, rng *rand.Rand) (int, bool) {
	switch mode {
	case m.SwapMiddle:
		return pickOther(from, 1, length-2, rng)
	case m.SwapRandom:
		return pickOther(from, 0, length-1, rng)
	default:
		switch {
		case length < 2:
			return 0, false
		case from == 0:
			return 1, true
		case from == length-1:
			return from - 1, true
		case rng.IntN(2) == 0:
			return from - 1, true
		default:
			return from + 1, true
		}
	}
}

// pickOther draws uniformly from [lo, hi] without from.
func pickOther(from, lo, hi int, rng *rand.Rand) (int, bool) {
	if hi < lo {
		return 0, false
	}

	size := hi - lo + 1
	if from >= lo && from <= hi {
		size--
	}

	if size <= 0 {
		return 0, false
	}

	to := lo + rng.IntN(size)
	if from >= lo && to >= from {
		to++
	}

	return to, true
}

func swapRunes(buf []rune, i, j int) {
	a, b := buf[i], buf[j]

	if unicode.IsLetter(a) && unicode.IsLetter(b) {
		upperA, upperB := unicode.IsUpper(a), unicode.IsUpper(b)
		if upperA != upperB {
			if upperA {
				a, b = unicode.ToLower(a), unicode.ToUpper(b)
			} else {
				a, b = unicode.ToUpper(a), unicode.ToLower(b)
			}
		}
	}

	buf[i], buf[j] = b, a
}
