package parser

import (
	"strings"

	"github.com/hierophect/lacuna-tools/ast"
	"github.com/hierophect/lacuna-tools/line"
)

// handleCategoryLine implements spec.md §4.2: the Category (Selectables)
// handler's three line shapes — subheader, variant-name info row, and
// selectable data rows — including extension of a previously declared
// Category.
func (d *Driver) handleCategoryLine(kind line.Kind, fields []string) {
	switch kind {
	case line.Subheader:
		d.startOrExtendCategory(fields)
	default:
		if d.awaitingSubheaderInfo {
			d.readCategoryColumns(fields)
			return
		}
		d.readSelectableRow(fields)
	}
}

func (d *Driver) startOrExtendCategory(fields []string) {
	name := strings.TrimPrefix(fields[0], "## ")

	d.finalizeCategory()

	d.currentSubheaderStr = name
	d.extendingCategoryIdx = -1
	for i, c := range d.Deck.Categories {
		if c.Name == name {
			d.Sink.Note(d.line(), "duplicated category '%s'", name)
			d.extendingCategoryIdx = i
			break
		}
	}
	d.awaitingSubheaderInfo = true
}

func (d *Driver) readCategoryColumns(fields []string) {
	variantNames := append([]string(nil), fields...)
	if strings.HasPrefix(variantNames[0], ">") {
		variantNames[0] = strings.TrimPrefix(variantNames[0], ">")
	} else {
		d.Sink.Issue(d.line(), "Subheader info line not indented, needs '>'")
	}

	d.numSubheaderColumns = len(variantNames)

	if d.extendingCategoryIdx >= 0 {
		existing := d.Deck.Categories[d.extendingCategoryIdx]
		if !equalStrings(existing.VariantNames, variantNames) {
			d.Sink.Issue(d.line(),
				"Category extension variant names '%s' do not match prior variant names '%s'",
				strings.Join(variantNames, ","), strings.Join(existing.VariantNames, ","))
		}
	} else {
		d.currentCategory = ast.NewCategory(d.currentSubheaderStr, variantNames)
	}
	d.awaitingSubheaderInfo = false
}

func (d *Driver) readSelectableRow(fields []string) {
	if len(fields) != d.numSubheaderColumns {
		d.Sink.Issue(d.line(), "Number of selectable columns [%d] does not match header [%d]",
			len(fields), d.numSubheaderColumns)
		return
	}

	variants := append([]string(nil), fields...)

	if d.extendingCategoryIdx >= 0 {
		existing := d.Deck.Categories[d.extendingCategoryIdx]
		if existing.HasSelectableTuple(variants) {
			d.Sink.Note(d.line(), "Found duplicate selectable '%s' while extending category, skipping", fields[0])
			return
		}
		d.Sink.Note(d.line(), "Extending category %s with selectable %s", existing.Name, strings.Join(variants, ","))
		existing.Selectables = append(existing.Selectables, &ast.Selectable{Variants: variants})
		return
	}

	if d.currentCategory != nil {
		d.currentCategory.Selectables = append(d.currentCategory.Selectables, &ast.Selectable{Variants: variants})
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
