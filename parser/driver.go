// Package parser implements the deck parser and cross-reference
// validator described in spec.md §2–§5: a line-driven state machine
// that tokenizes each record (externally, by a CSV-like splitter),
// routes it to one of four section handlers, accretes partially built
// entities across many lines, resolves symbolic references, and
// enforces the structural invariants of §3.
package parser

import (
	"fmt"

	"github.com/hierophect/lacuna-tools/ast"
)

// section names the currently active top-level section.
type section int

const (
	sectionNone section = iota
	sectionCategories
	sectionGroups
	sectionPairGroups
	sectionTemplates
)

// Driver owns the single mutable in-flight parsing state described in
// spec.md §5 and §9: the current section, the entity under
// construction, the pending-subheader flag, the expected column count,
// the card-side counter, and the extension index. The Deck and
// diagnostic Sink persist across files (§5's "begin file"/"end of
// file" replay); every other field is transient and reset by
// EndOfFile.
type Driver struct {
	Deck *ast.Deck
	Sink *ast.Sink

	// OnFault, if set, is invoked whenever the per-line fault boundary
	// (spec.md §4.1, §7) recovers from an unexpected failure. It
	// exists purely so a caller's --debug mode can print the
	// underlying error; the core never logs on its own.
	OnFault func(line int, err error)

	lineIndex int
	section   section

	// Category in-flight state.
	currentSubheaderStr   string
	currentCategory       *ast.Category
	extendingCategoryIdx  int // -1 when not extending
	awaitingSubheaderInfo bool
	numSubheaderColumns   int

	// Pair Group in-flight state.
	currentPairGroup *ast.PairGroup

	// Chapter / Template in-flight state.
	currentChapter  *ast.Chapter
	currentTemplate *ast.Template
	numCardSides    int

	hasPairGroupsHeader bool
}

// NewDriver creates a Driver with an empty Deck and Sink, ready to
// accept lines via Feed.
func NewDriver() *Driver {
	return &Driver{
		Deck:                 &ast.Deck{},
		Sink:                 &ast.Sink{},
		extendingCategoryIdx: -1,
	}
}

// BeginFile resets the per-file line counter but preserves the
// accumulated Deck and diagnostics, per spec.md §5's sequential-replay
// model for prior files layered under a primary file.
func (d *Driver) BeginFile() {
	d.lineIndex = 0
}

// EndOfFile finalizes whatever entity is in flight in the currently
// active section — a file is not required to end with a trailing
// section header just to flush its last Category, Pair Group or
// Chapter — and resets all other transient state so a subsequent file
// can be fed without cross-file leakage, per spec.md §9.
func (d *Driver) EndOfFile() {
	switch d.section {
	case sectionCategories:
		d.finalizeCategory()
	case sectionPairGroups:
		d.finalizePairGroup()
	case sectionTemplates:
		d.finalizeChapter()
	}

	d.lineIndex = 0
	d.section = sectionNone
	d.currentSubheaderStr = ""
	d.currentCategory = nil
	d.extendingCategoryIdx = -1
	d.awaitingSubheaderInfo = false
	d.numSubheaderColumns = 0
	d.currentPairGroup = nil
	d.currentChapter = nil
	d.currentTemplate = nil
	d.numCardSides = 0
	d.hasPairGroupsHeader = false
}

// Feed processes one already-tokenized input line. It increments the
// line counter, then dispatches under a fault boundary: any panic
// raised by a handler is recovered and downgraded to a single issue
// diagnostic (spec.md §4.1, §7), and processing continues with the
// next line.
func (d *Driver) Feed(fields []string) {
	d.lineIndex++
	defer func() {
		if r := recover(); r != nil {
			err := toError(r)
			d.Sink.Issue(d.lineIndex, "Unidentifiable error - may be caused by prior errors")
			if d.OnFault != nil {
				d.OnFault(d.lineIndex, err)
			}
		}
	}()
	d.dispatch(fields)
}

func toError(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}

// line returns the current line number, for use by handlers.
func (d *Driver) line() int {
	return d.lineIndex
}
