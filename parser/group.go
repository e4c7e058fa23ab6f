package parser

import (
	"strings"

	"github.com/hierophect/lacuna-tools/ast"
)

// handleGroupLine implements spec.md §4.3: every line in the Groups
// section is a complete Group declaration, with extension semantics
// for a re-declared name.
func (d *Driver) handleGroupLine(fields []string) {
	if len(fields) != 4 {
		d.Sink.Issue(d.line(), "Wrong separators, check semicolon use")
		return
	}

	name, categoryName, keyVariant, keys := fields[0], fields[1], fields[2], splitKeys(fields[3])

	d.checkGroupIntegrity(categoryName, keyVariant, keys)

	if existing := d.Deck.FindGroup(name); existing != nil {
		d.extendGroup(existing, categoryName, keyVariant, keys)
		return
	}

	d.Deck.Groups = append(d.Deck.Groups, &ast.Group{
		Name:           name,
		CategoryName:   categoryName,
		KeyVariantName: keyVariant,
		Keys:           keys,
	})
}

// extendGroup implements the extension branch of spec.md §4.3: the
// category name and key-variant name must match exactly, and each new
// key not already present is appended with an info diagnostic.
func (d *Driver) extendGroup(existing *ast.Group, categoryName, keyVariant string, keys []string) {
	if existing.CategoryName != categoryName {
		d.Sink.Issue(d.line(), "Expanding group with %s does not match prior %s", categoryName, existing.CategoryName)
		return
	}
	if existing.KeyVariantName != keyVariant {
		d.Sink.Issue(d.line(), "Expanding group with %s does not match prior %s", keyVariant, existing.KeyVariantName)
		return
	}

	extended := false
	for _, key := range keys {
		if !existing.HasKey(key) {
			d.Sink.Note(d.line(), "Extended group %s with key %s", existing.Name, key)
			existing.Keys = append(existing.Keys, key)
			extended = true
		}
	}
	if !extended {
		d.Sink.Note(d.line(), "Duplicate group %s had no new keys", existing.Name)
	}
}

// checkGroupIntegrity implements spec.md §4.3's integrity check, shared
// by top-level Group declarations and Chapter-local vocab entries
// (§4.5): the named Category must exist, the key variant must be one
// of its columns, and every key must occur in that column.
func (d *Driver) checkGroupIntegrity(categoryName, keyVariant string, keys []string) {
	category := d.Deck.FindCategory(categoryName)
	if category == nil {
		d.Sink.Issue(d.line(), "No selectable subgroup '%s' found for group", categoryName)
		return
	}

	variantIndex := category.IndexOfVariant(keyVariant)
	if variantIndex < 0 {
		d.Sink.Issue(d.line(), "No selectable variant '%s' found in selectable subgroup '%s'", keyVariant, categoryName)
		return
	}

	for _, key := range keys {
		if !category.HasSelectable(variantIndex, key) {
			d.Sink.Issue(d.line(), "No selectable '%s' under column '%s' found in selectable subgroup '%s'", key, keyVariant, categoryName)
		}
	}
}

// splitKeys strips the leading and trailing single character of field
// (the surrounding "{" "}" braces) and splits on ",". No trimming and
// no escaping is performed, per spec.md §9(c): spaces are significant.
func splitKeys(field string) []string {
	if len(field) < 2 {
		return strings.Split(field, ",")
	}
	return strings.Split(field[1:len(field)-1], ",")
}
