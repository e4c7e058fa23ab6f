// Package lacuna parses the literate deck-description format into a
// Deck document tree plus a diagnostic stream.
//
// Example usage:
//
//	d := lacuna.NewDriver()
//	d.BeginFile()
//	for _, fields := range tokenizedLines {
//		d.Feed(fields)
//	}
//	d.EndOfFile()
//	data, err := lacuna.Marshal(d.Deck)
package lacuna

import (
	"encoding/json"

	"github.com/hierophect/lacuna-tools/ast"
	"github.com/hierophect/lacuna-tools/parser"
)

// NewDriver returns a Driver ready to accept tokenized lines via Feed.
func NewDriver() *parser.Driver {
	return parser.NewDriver()
}

// Marshal renders a Deck as indented JSON, the §6 document output.
func Marshal(deck *ast.Deck) ([]byte, error) {
	return json.MarshalIndent(deck, "", "  ")
}

// Re-export types for convenience, so callers of this package don't
// need to import the ast subpackage directly.
type (
	Driver     = parser.Driver
	Deck       = ast.Deck
	Category   = ast.Category
	Selectable = ast.Selectable
	Group      = ast.Group
	PairGroup  = ast.PairGroup
	Chapter    = ast.Chapter
	Template   = ast.Template
	Diagnostic = ast.Diagnostic
	Severity   = ast.Severity
	Sink       = ast.Sink
)

// Severity values, re-exported.
const (
	Issue = ast.Issue
	Info  = ast.Info
)
