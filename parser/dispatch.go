package parser

import (
	"github.com/hierophect/lacuna-tools/line"
)

// dispatch is the section dispatcher of spec.md §4.1: it classifies
// the line, ignores blanks/comments, transitions section on a header,
// and otherwise routes to the handler for the active section. Lines
// seen before any valid header are silently ignored.
func (d *Driver) dispatch(fields []string) {
	kind, payload := line.Classify(fields)

	switch kind {
	case line.Blank, line.Comment:
		return
	case line.Header:
		d.changeState(payload)
		return
	}

	switch d.section {
	case sectionCategories:
		d.handleCategoryLine(kind, fields)
	case sectionGroups:
		d.handleGroupLine(fields)
	case sectionPairGroups:
		d.handlePairGroupLine(kind, fields)
	case sectionTemplates:
		d.handleChapterLine(kind, fields)
	default:
		// before any valid header: ignore.
	}
}

// changeState transitions the active section, finalizing whatever
// in-flight entity belongs to the outgoing section per spec.md §4.1's
// section-change finalization rules.
func (d *Driver) changeState(header string) {
	switch d.section {
	case sectionCategories:
		d.finalizeCategory()
	case sectionPairGroups:
		d.finalizePairGroup()
	}

	switch header {
	case "Selectables":
		d.section = sectionCategories
	case "Groups":
		d.section = sectionGroups
	case "Pair Groups", "PairGroups":
		d.hasPairGroupsHeader = true
		d.section = sectionPairGroups
	case "Templates", "Cards":
		d.section = sectionTemplates
	default:
		d.Sink.Issue(d.line(), "Bad header '%s'", header)
		d.section = sectionNone
	}
}

func (d *Driver) finalizeCategory() {
	if d.currentCategory != nil {
		d.Deck.Categories = append(d.Deck.Categories, d.currentCategory)
	}
	d.currentCategory = nil
	d.currentSubheaderStr = ""
	d.extendingCategoryIdx = -1
	d.awaitingSubheaderInfo = false
}

func (d *Driver) finalizePairGroup() {
	if d.hasPairGroupsHeader && d.currentPairGroup != nil {
		d.Deck.PairGroups = append(d.Deck.PairGroups, d.currentPairGroup)
	}
	d.currentPairGroup = nil
	d.currentSubheaderStr = ""
	d.awaitingSubheaderInfo = false
}

// finalizeChapter appends the in-flight Chapter to the Deck, if any.
// A Template left open (no closing "}" seen) is dropped along with it,
// matching the original implementation, which only ever appends a
// card on its explicit close.
func (d *Driver) finalizeChapter() {
	if d.currentChapter != nil {
		d.Deck.Chapters = append(d.Deck.Chapters, d.currentChapter)
	}
	d.currentChapter = nil
	d.currentTemplate = nil
	d.currentSubheaderStr = ""
	d.awaitingSubheaderInfo = false
}
