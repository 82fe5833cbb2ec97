package model

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Mapping is a trigger string mapped to its ordered replacement candidates.
type Mapping map[string][]string

// TableStats summarizes the size and shape of a Table.
type TableStats struct {
	Keys       int
	Candidates int
	MinPerKey  int
	MaxPerKey  int
	AnyKey     bool
}

// Table is a read-only source of replacement candidates.
// Implementations are immutable after construction and safe for concurrent use.
type Table interface {
	Exists(key string) bool
	Candidates(key string) []string
	Stats() TableStats
}

// MappingTable answers lookups from a keyed Mapping.
type MappingTable struct {
	mapping Mapping
}

// NewMappingTable copies mapping into a table, dropping keys without candidates.
func NewMappingTable(mapping Mapping) *MappingTable {
	owned := make(Mapping, len(mapping))

	for key, candidates := range mapping {
		if len(candidates) == 0 {
			continue
		}

		owned[key] = append([]string(nil), candidates...)
	}

	return &MappingTable{mapping: owned}
}

// Exists reports whether key has candidates.
func (t *MappingTable) Exists(key string) bool {
	_, ok := t.mapping[key]
	return ok
}

// Candidates returns the candidates for key, or nil.
func (t *MappingTable) Candidates(key string) []string {
	return t.mapping[key]
}

// Mapping returns a copy of the underlying mapping.
func (t *MappingTable) Mapping() Mapping {
	return cloneMapping(t.mapping)
}

// Stats implements Table.
func (t *MappingTable) Stats() TableStats {
	stats := TableStats{Keys: len(t.mapping)}

	for _, candidates := range t.mapping {
		n := len(candidates)
		stats.Candidates += n

		if stats.MinPerKey == 0 || n < stats.MinPerKey {
			stats.MinPerKey = n
		}

		if n > stats.MaxPerKey {
			stats.MaxPerKey = n
		}
	}

	return stats
}

// CandidateTable offers the same candidates for every key.
type CandidateTable struct {
	candidates []string
}

// NewCandidateTable builds a table where any key is eligible.
func NewCandidateTable(candidates []string) *CandidateTable {
	return &CandidateTable{candidates: append([]string(nil), candidates...)}
}

// Exists always reports true: any key may be replaced by any candidate.
func (t *CandidateTable) Exists(string) bool {
	return true
}

// Candidates returns the flat candidate list regardless of key.
func (t *CandidateTable) Candidates(string) []string {
	return t.candidates
}

// Stats implements Table.
func (t *CandidateTable) Stats() TableStats {
	return TableStats{
		Candidates: len(t.candidates),
		MinPerKey:  len(t.candidates),
		MaxPerKey:  len(t.candidates),
		AnyKey:     true,
	}
}

func cloneMapping(mapping Mapping) Mapping {
	cloned := make(Mapping, len(mapping))
	for key, candidates := range mapping {
		cloned[key] = append([]string(nil), candidates...)
	}

	return cloned
}

func sortedKeys(mapping Mapping) []string {
	keys := make([]string, 0, len(mapping))
	for key := range mapping {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Symmetrize returns a copy of mapping where every A→B also has B→A.
// Reverse pairs are appended in sorted key order so the result is deterministic.
func Symmetrize(mapping Mapping) Mapping {
	result := cloneMapping(mapping)

	for _, key := range sortedKeys(mapping) {
		for _, value := range mapping[key] {
			if contains(result[value], key) {
				continue
			}

			result[value] = append(result[value], key)
		}
	}

	return result
}

// Deduplicate returns a copy of mapping with repeated candidates removed,
// keeping the first occurrence of each.
func Deduplicate(mapping Mapping) Mapping {
	result := make(Mapping, len(mapping))

	for key, candidates := range mapping {
		seen := make(map[string]struct{}, len(candidates))
		unique := make([]string, 0, len(candidates))

		for _, candidate := range candidates {
			if _, ok := seen[candidate]; ok {
				continue
			}

			seen[candidate] = struct{}{}
			unique = append(unique, candidate)
		}

		result[key] = unique
	}

	return result
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}

	return false
}

// NewOCRTable builds a confusable-character table: if A looks like B then B looks like A.
func NewOCRTable(mapping Mapping) *MappingTable {
	return NewMappingTable(Deduplicate(Symmetrize(mapping)))
}

// KeyboardOptions controls which keyboard-neighbour candidates are kept.
type KeyboardOptions struct {
	AllowSpecial bool
	AllowNumeric bool
	UpperCase    bool
}

func (o KeyboardOptions) accepts(value string) bool {
	if value == "" {
		return false
	}

	r, _ := utf8.DecodeRuneInString(value)

	alphanumeric := unicode.IsLetter(r) || unicode.IsNumber(r)
	if !o.AllowSpecial && !alphanumeric {
		return false
	}

	if !o.AllowNumeric && unicode.IsNumber(r) {
		return false
	}

	return true
}

// NewKeyboardTable builds a typo table from keyboard neighbours.
//
// Keys and candidates starting with a disallowed character are dropped. With
// UpperCase set every candidate is offered in both cases and every key with a
// distinct upper-case form gets that form as an extra key.
func NewKeyboardTable(mapping Mapping, opts KeyboardOptions) *MappingTable {
	result := make(Mapping, len(mapping)*2)

	for _, key := range sortedKeys(mapping) {
		if !opts.accepts(key) {
			continue
		}

		upperKey := strings.ToUpper(key)
		upperDiffers := opts.UpperCase && upperKey != key

		var forKey, forUpperKey []string

		for _, value := range mapping[key] {
			if !opts.accepts(value) {
				continue
			}

			if upperDiffers {
				forUpperKey = append(forUpperKey, strings.ToUpper(value), value)
			}

			if opts.UpperCase {
				forKey = append(forKey, strings.ToUpper(value))
			}

			forKey = append(forKey, value)
		}

		if len(forUpperKey) > 0 {
			result[upperKey] = append(result[upperKey], forUpperKey...)
		}

		if len(forKey) > 0 {
			result[key] = append(result[key], forKey...)
		}
	}

	return NewMappingTable(Deduplicate(result))
}

// DefaultWordCandidates is used by word substitution when no targets are given.
var DefaultWordCandidates = []string{"_"}

// NewWordTable builds a word table from either a flat list or a keyed mapping.
// A list makes every word eligible; a mapping restricts eligibility to its keys.
// With neither, the table is empty.
func NewWordTable(list []string, mapping Mapping) Table {
	switch {
	case len(list) > 0:
		return NewCandidateTable(list)
	case len(mapping) > 0:
		return NewMappingTable(mapping)
	default:
		return NewMappingTable(nil)
	}
}
