// Package placeholder implements the bracketed-placeholder mini-scanner
// of spec.md §4.6: a hand-written, single-pass scanner over a template
// side string that extracts Group references ("[group]"/"[group:variant]")
// and Pair-Group references ("<pairgroup:alias>"/"<pairgroup:alias:variant>").
// Bracketed spans are treated as opaque; only the extracted interior is
// split further, matching spec.md §9's scanning guidance.
package placeholder

import "strings"

// GroupRef is one "[group]" or "[group:variant]" occurrence.
type GroupRef struct {
	Group   string
	Variant string // "" if omitted; caller applies the governing default.
}

// PairGroupRef is one "<pairgroup:alias>" or "<pairgroup:alias:variant>"
// occurrence. Parts holds the raw colon-split interior so callers can
// detect "too few parts" themselves (spec.md §4.6.2).
type PairGroupRef struct {
	Parts   []string
	PairGroup string
	Alias   string
	Variant string // "" if omitted.
}

// Scan walks side left to right, collecting every "[...]" and "<...>"
// span in the order they appear. Spans do not nest; a "[" is matched by
// the next "]", a "<" by the next ">". An unterminated span at the end
// of the string is dropped silently, mirroring a non-greedy regex scan
// that simply finds no match.
func Scan(side string) (groups []GroupRef, pairGroups []PairGroupRef) {
	runes := []rune(side)
	i := 0
	for i < len(runes) {
		switch runes[i] {
		case '[':
			if end := indexFrom(runes, i+1, ']'); end >= 0 {
				groups = append(groups, parseGroupRef(string(runes[i+1:end])))
				i = end + 1
				continue
			}
		case '<':
			if end := indexFrom(runes, i+1, '>'); end >= 0 {
				pairGroups = append(pairGroups, parsePairGroupRef(string(runes[i+1:end])))
				i = end + 1
				continue
			}
		}
		i++
	}
	return groups, pairGroups
}

func indexFrom(runes []rune, start int, target rune) int {
	for i := start; i < len(runes); i++ {
		if runes[i] == target {
			return i
		}
	}
	return -1
}

func parseGroupRef(interior string) GroupRef {
	parts := strings.SplitN(interior, ":", 2)
	ref := GroupRef{Group: parts[0]}
	if len(parts) == 2 {
		ref.Variant = parts[1]
	}
	return ref
}

func parsePairGroupRef(interior string) PairGroupRef {
	parts := strings.Split(interior, ":")
	ref := PairGroupRef{Parts: parts}
	if len(parts) >= 1 {
		ref.PairGroup = parts[0]
	}
	if len(parts) >= 2 {
		ref.Alias = parts[1]
	}
	if len(parts) >= 3 {
		ref.Variant = parts[2]
	}
	return ref
}
