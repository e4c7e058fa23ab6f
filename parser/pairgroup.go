package parser

import (
	"strings"

	"github.com/hierophect/lacuna-tools/ast"
	"github.com/hierophect/lacuna-tools/line"
)

// handlePairGroupLine implements spec.md §4.4: the Pair-Group handler's
// three line shapes, typed column subheader, and per-row cross-reference
// validation (group membership, column-category consistency, and
// selectable lookups).
func (d *Driver) handlePairGroupLine(kind line.Kind, fields []string) {
	switch kind {
	case line.Subheader:
		d.startPairGroup(fields)
	default:
		if d.awaitingSubheaderInfo {
			d.readPairGroupColumns(fields)
			return
		}
		d.readPairRow(fields)
	}
}

func (d *Driver) startPairGroup(fields []string) {
	name := strings.TrimPrefix(fields[0], "## ")

	if d.currentPairGroup != nil {
		d.Deck.PairGroups = append(d.Deck.PairGroups, d.currentPairGroup)
		d.currentPairGroup = nil
	}
	d.currentSubheaderStr = name
	d.awaitingSubheaderInfo = true
}

func (d *Driver) readPairGroupColumns(fields []string) {
	raw := append([]string(nil), fields...)
	if strings.HasPrefix(raw[0], ">") {
		raw[0] = strings.TrimPrefix(raw[0], ">")
	} else {
		d.Sink.Issue(d.line(), "Subheader info line not indented, needs '>'")
	}
	d.numSubheaderColumns = len(raw)

	names := make([]string, len(raw))
	types := make([]string, len(raw))
	for i, section := range raw {
		parts := strings.SplitN(section, "=", 2)
		names[i] = parts[0]
		types[i] = parts[1]
	}

	valid := true
	for i, typ := range types {
		category := strings.SplitN(typ, ":", 2)[0]
		switch category {
		case "selectable":
			parts := strings.Split(typ, ":")
			if len(parts) < 3 {
				d.Sink.Issue(d.line(), "Insufficient type information for column '%s'", names[i])
				valid = false
				continue
			}
			categoryName, variantName := parts[1], parts[2]
			found := d.Deck.FindCategory(categoryName)
			if found == nil {
				valid = false
				d.Sink.Issue(d.line(), "Category '%s' for column '%s' not found", categoryName, names[i])
				continue
			}
			if found.IndexOfVariant(variantName) < 0 {
				valid = false
				d.Sink.Issue(d.line(), "Variant '%s' not found in '%s' for column '%s'", variantName, categoryName, names[i])
			}
		case "group":
			// no further subheader-time validation.
		default:
			valid = false
			d.Sink.Issue(d.line(), "Pair members must be either groups or selectables")
		}
	}

	if d.Deck.FindPairGroup(d.currentSubheaderStr) != nil {
		d.Sink.Issue(d.line(), "Extending pairgroup %s is not supported", d.currentSubheaderStr)
		valid = false
	}

	d.currentPairGroup = ast.NewPairGroup(d.currentSubheaderStr, names, types, valid)
	d.awaitingSubheaderInfo = false
}

func (d *Driver) readPairRow(fields []string) {
	pg := d.currentPairGroup
	if pg == nil {
		return
	}

	if len(fields) != d.numSubheaderColumns {
		d.Sink.Issue(d.line(), "Number of pair columns [%d] does not match header [%d]", len(fields), d.numSubheaderColumns)
	}

	if !pg.Valid {
		d.Sink.Issue(d.line(), "Pair not parsed as pair group is invalid")
		return
	}

	for i, member := range fields {
		typeCategory := strings.SplitN(pg.ColumnTypes[i], ":", 2)[0]
		switch typeCategory {
		case "group":
			group := d.Deck.FindGroup(member)
			if group == nil {
				d.Sink.Issue(d.line(), "No matching group for pair member '%s' at index %d", member, i)
				return
			}
			if pg.ColumnConsistency[i] == "" {
				pg.ColumnConsistency[i] = group.CategoryName
			} else if pg.ColumnConsistency[i] != group.CategoryName {
				d.Sink.Issue(d.line(), "Group's subgroup '%s' must match subgroups in other groups of this column (%s)",
					group.CategoryName, pg.ColumnConsistency[i])
			}
		case "selectable":
			parts := strings.Split(pg.ColumnTypes[i], ":")
			categoryName, variantName := parts[1], parts[2]
			category := d.Deck.FindCategory(categoryName)
			if category == nil {
				d.Sink.Issue(d.line(), "Could not find category '%s' for column %d", categoryName, i)
				return
			}
			variantIndex := category.IndexOfVariant(variantName)
			if variantIndex < 0 {
				d.Sink.Issue(d.line(), "Did not find variant '%s' in category '%s'", variantName, categoryName)
				return
			}
			if !category.HasSelectable(variantIndex, member) {
				d.Sink.Issue(d.line(), "Could not find selectable '%s' in subgroup '%s', column %d", member, category.Name, variantIndex)
				return
			}
		}
	}

	pg.Pairs = append(pg.Pairs, append([]string(nil), fields...))
}
