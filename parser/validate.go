package parser

import (
	"strings"

	"github.com/hierophect/lacuna-tools/placeholder"
)

// validateSide implements spec.md §4.6: it scans a Template side's text
// for Group and Pair-Group placeholders and checks each one resolves
// against the Deck built so far. It reports every integrity failure it
// finds (it does not stop at the first one) and returns whether the
// side passed cleanly — the caller uses that to decide whether the
// side is kept or dropped, per §9(e).
func (d *Driver) validateSide(text, defaultVariant string) bool {
	groups, pairGroups := placeholder.Scan(text)
	ok := true

	for _, ref := range groups {
		if !d.validateGroupRef(ref, defaultVariant) {
			ok = false
		}
	}

	if len(pairGroups) == 0 {
		return ok
	}

	if len(d.Deck.PairGroups) == 0 {
		d.Sink.Issue(d.line(), "Contains pair group, but no pair groups in deck")
		return false
	}

	var firstPGName string
	for _, ref := range pairGroups {
		if len(ref.Parts) < 2 {
			d.Sink.Issue(d.line(), "Not enough type information in Pair Group replaceable '%s'", strings.Join(ref.Parts, ":"))
			ok = false
			if firstPGName == "" {
				firstPGName = ref.PairGroup
			}
			continue
		}

		if firstPGName == "" {
			firstPGName = ref.PairGroup
		} else if ref.PairGroup != firstPGName {
			d.Sink.Issue(d.line(), "Pair group name '%s' does not match others in the side", ref.PairGroup)
			ok = false
		}

		if !d.validatePairGroupRef(ref, defaultVariant) {
			ok = false
		}
	}

	return ok
}

func (d *Driver) validateGroupRef(ref placeholder.GroupRef, defaultVariant string) bool {
	group := d.Deck.FindGroup(ref.Group)
	if group == nil {
		d.Sink.Issue(d.line(), "No group '%s' found for side", ref.Group)
		return false
	}

	variant := ref.Variant
	if variant == "" {
		variant = defaultVariant
	}

	category := d.Deck.FindCategory(group.CategoryName)
	if category.IndexOfVariant(variant) < 0 {
		d.Sink.Issue(d.line(), "No variant '%s' in subgroup '%s', used in group '%s'", variant, group.CategoryName, ref.Group)
		return false
	}
	return true
}

func (d *Driver) validatePairGroupRef(ref placeholder.PairGroupRef, defaultVariant string) bool {
	pairGroup := d.Deck.FindPairGroup(ref.PairGroup)
	if pairGroup == nil {
		d.Sink.Issue(d.line(), "Could not find pair group '%s'", ref.PairGroup)
		return false
	}

	colIdx := pairGroup.ColumnIndex(ref.Alias)
	if colIdx < 0 {
		d.Sink.Issue(d.line(), "Could not find alias '%s'", ref.Alias)
		return false
	}

	typ := pairGroup.ColumnTypes[colIdx]
	category := strings.SplitN(typ, ":", 2)[0]

	checkVariant := ref.Variant
	if checkVariant == "" {
		checkVariant = defaultVariant
	}

	switch category {
	case "selectable":
		parts := strings.Split(typ, ":")
		categoryName := parts[1]
		cat := d.Deck.FindCategory(categoryName)
		if cat.IndexOfVariant(checkVariant) < 0 {
			if ref.Variant != "" {
				d.Sink.Issue(d.line(), "No variant in '%s' named '%s'", categoryName, ref.Variant)
			} else {
				d.Sink.Issue(d.line(), "Autoassigned variant for '%s' does not match '%s'", categoryName, defaultVariant)
			}
			return false
		}
	case "group":
		repGroupName := pairGroup.Pairs[0][colIdx]
		repGroup := d.Deck.FindGroup(repGroupName)
		cat := d.Deck.FindCategory(repGroup.CategoryName)
		if cat.IndexOfVariant(checkVariant) < 0 {
			if ref.Variant != "" {
				d.Sink.Issue(d.line(), "No variant for group's subgroup '%s' named '%s'", cat.Name, ref.Variant)
			} else {
				d.Sink.Issue(d.line(), "Autoassigned variant for group '%s' does not match '%s'", cat.Name, defaultVariant)
			}
			return false
		}
	}

	return true
}
