package parser

import (
	"strings"

	"github.com/hierophect/lacuna-tools/ast"
	"github.com/hierophect/lacuna-tools/line"
)

// handleChapterLine implements spec.md §4.5: the Chapter (Templates)
// handler's subheader, vocab row, card open/close, and side-line
// shapes, plus the forced-first-side bookkeeping of §4.8.
func (d *Driver) handleChapterLine(kind line.Kind, fields []string) {
	switch kind {
	case line.Subheader:
		d.startChapter(fields)
	case line.VocabRow:
		d.handleVocabRow(fields)
	case line.CardOpen:
		d.numCardSides = 0
		d.currentTemplate = &ast.Template{}
	case line.CardClose:
		d.closeTemplate()
	default:
		if d.awaitingSubheaderInfo {
			d.readChapterColumns(fields)
			return
		}
		d.readSide(fields)
	}
}

func (d *Driver) startChapter(fields []string) {
	name := strings.TrimPrefix(fields[0], "## ")

	if d.currentChapter != nil {
		d.Deck.Chapters = append(d.Deck.Chapters, d.currentChapter)
	}
	d.currentChapter = nil
	d.currentTemplate = nil
	d.currentSubheaderStr = name
	d.awaitingSubheaderInfo = true
}

// readChapterColumns parses the column-variants subheader info row,
// applying the forced-first-side rotation of §4.8: the label marked
// with a leading "^" is rotated to output index 0, and
// ForcedFirstSide records its original input position. If more than
// one label is marked, the last one wins (matching the original
// implementation's unconditional overwrite) but every marker after
// the first is additionally logged as an issue, per spec.md §9(d)'s
// redesign instruction.
func (d *Driver) readChapterColumns(fields []string) {
	labels := append([]string(nil), fields...)
	if strings.HasPrefix(labels[0], ">") {
		labels[0] = strings.TrimPrefix(labels[0], ">")
	} else {
		d.Sink.Issue(d.line(), "Subheader info line not indented, needs '>'")
	}
	d.numSubheaderColumns = len(labels)

	forcedIdx := 0
	markedCount := 0
	for i, l := range labels {
		if strings.HasPrefix(l, "^") {
			if markedCount > 0 {
				d.Sink.Issue(d.line(), "Multiple forced-first markers in chapter subheader, using last")
			}
			markedCount++
			forcedIdx = i
			labels[i] = strings.TrimPrefix(l, "^")
		}
	}

	rotated := make([]string, 0, len(labels))
	rotated = append(rotated, labels[forcedIdx])
	for i, l := range labels {
		if i != forcedIdx {
			rotated = append(rotated, l)
		}
	}

	d.currentChapter = ast.NewChapter(d.currentSubheaderStr, rotated, forcedIdx)
	d.awaitingSubheaderInfo = false
	d.numCardSides = 0
}

func (d *Driver) handleVocabRow(fields []string) {
	if len(fields[0]) > len(">vocab") {
		d.Sink.Issue(d.line(), "vocab sections must be separated by semicolons (;)")
		return
	}
	if len(fields) != 4 {
		d.Sink.Issue(d.line(), "Wrong separators, check semicolon use")
		return
	}

	categoryName, keyVariant, keys := fields[1], fields[2], splitKeys(fields[3])
	d.checkGroupIntegrity(categoryName, keyVariant, keys)

	d.currentChapter.Vocab = append(d.currentChapter.Vocab, &ast.Group{
		Name:           "vocab",
		CategoryName:   categoryName,
		KeyVariantName: keyVariant,
		Keys:           keys,
	})
}

func (d *Driver) closeTemplate() {
	if d.numCardSides != len(d.currentChapter.ColumnVariants) {
		d.Sink.Issue(d.line(), "Number of card sides [%d] does not match header [%d]", d.numCardSides, len(d.currentChapter.ColumnVariants))
	}
	d.currentChapter.Templates = append(d.currentChapter.Templates, d.currentTemplate)
	d.currentTemplate = nil
}

// readSide implements the side-line shape of §4.5: fields are joined
// with no separator (no trimming is performed, per §9(c)), the
// governing default variant is computed per §4.8, and the side is
// appended only if placeholder integrity (§4.6) passes — but the side
// counter always advances, per §9(e), so a later card-close still sees
// the correct count.
func (d *Driver) readSide(fields []string) {
	text := strings.Join(fields, "")

	s := d.numCardSides
	f := d.currentChapter.ForcedFirstSide

	var isForcedFirst bool
	var trueLabelIndex int
	switch {
	case s == f:
		isForcedFirst = true
		trueLabelIndex = 0
	case s < f:
		trueLabelIndex = s + 1
	default:
		trueLabelIndex = s
	}

	defaultLabel := d.currentChapter.ColumnVariants[trueLabelIndex]
	defaultVariant := strings.TrimPrefix(defaultLabel, "~")

	if d.validateSide(text, defaultVariant) {
		if isForcedFirst {
			d.currentTemplate.Sides = append([]string{text}, d.currentTemplate.Sides...)
		} else {
			d.currentTemplate.Sides = append(d.currentTemplate.Sides, text)
		}
	}

	d.numCardSides++
}
