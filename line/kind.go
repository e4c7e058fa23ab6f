// Package line classifies a single tokenized input line — an ordered
// sequence of string fields, already split on ';' by an external
// tokenizer — into one of the tagged shapes the deck parser's
// dispatcher routes on (spec.md §4.1, §6, §9's "dynamic row shapes"
// design note).
package line

import "strings"

// Kind tags the shape of a line, the way token.Type tags a lexical
// token in a conventional lexer/parser split.
type Kind int

const (
	// Blank is an empty line, ignored by the dispatcher.
	Blank Kind = iota
	// Comment is a "//" or "<!--"-prefixed line, ignored.
	Comment
	// Header is a "# <Header>" section header.
	Header
	// Subheader is a "## <Name>" entity subheader.
	Subheader
	// InfoRow is a ">"-prefixed subheader info row (variant names or
	// column typings).
	InfoRow
	// VocabRow is a ">vocab"-prefixed line (the Chapter-local vocab
	// entry marker). A prefix match, not an exact one: a line like
	// ">vocabFoo" (a missing semicolon merged extra text into the
	// marker) is still classified as VocabRow so the Chapter handler
	// can raise its specific "missing semicolon" diagnostic instead of
	// silently treating it as an ordinary info row.
	VocabRow
	// CardOpen is a "{"-prefixed card-open line.
	CardOpen
	// CardClose is a "}"-prefixed card-close line.
	CardClose
	// Data is any other line: a data row, a Group declaration, or a
	// Template side, depending on which section handler is active.
	Data
)

var kindNames = map[Kind]string{
	Blank:     "Blank",
	Comment:   "Comment",
	Header:    "Header",
	Subheader: "Subheader",
	InfoRow:   "InfoRow",
	VocabRow:  "VocabRow",
	CardOpen:  "CardOpen",
	CardClose: "CardClose",
	Data:      "Data",
}

// String renders the Kind's name, or "Unknown" if out of range.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Classify inspects fields[0] and returns the line's Kind along with
// the "payload" string a handler needs next: the header name for
// Header, the entity name for Subheader, or "" otherwise. Fields
// beyond fields[0] are left untouched — callers that need the
// remaining fields (e.g. InfoRow's column list) read fields directly.
//
// Classify never looks past fields[0]; distinguishing InfoRow/VocabRow/
// CardOpen/CardClose/Data from a plain Data row is purely a function
// of that first field's prefix, matching spec.md §6's marker table.
func Classify(fields []string) (Kind, string) {
	if len(fields) == 0 || fields[0] == "" {
		return Blank, ""
	}
	first := fields[0]
	switch {
	case strings.HasPrefix(first, "//"):
		return Comment, ""
	case strings.HasPrefix(first, "<!--"):
		return Comment, ""
	case strings.HasPrefix(first, "# "):
		return Header, strings.TrimPrefix(first, "# ")
	case strings.HasPrefix(first, "## "):
		return Subheader, strings.TrimPrefix(first, "## ")
	case strings.HasPrefix(first, ">vocab"):
		return VocabRow, ""
	case strings.HasPrefix(first, ">"):
		return InfoRow, ""
	case strings.HasPrefix(first, "{"):
		return CardOpen, ""
	case strings.HasPrefix(first, "}"):
		return CardClose, ""
	default:
		return Data, ""
	}
}
