// Package ast defines the data model produced by the deck parser: the
// Deck and its four owned collections, plus the lookup helpers used to
// resolve symbolic (by-name) cross-references between them.
package ast

// Deck is the top-level document tree. Categories, Groups, PairGroups
// and Chapters are owned exclusively by the Deck; all cross-entity
// references elsewhere in the tree are by name.
type Deck struct {
	Categories []*Category `json:"categories"`
	Groups     []*Group    `json:"groups"`
	PairGroups []*PairGroup `json:"pair_groups"`
	Chapters   []*Chapter  `json:"chapters"`
}

// Category is a named table of Selectables with named columns called
// variants. The variant-name list is immutable after first declaration;
// every Selectable must carry exactly len(VariantNames) fields.
type Category struct {
	Name         string        `json:"name"`
	VariantNames []string      `json:"variant_names"`
	NumVariants  int           `json:"num_variants"`
	Selectables  []*Selectable `json:"selectables"`
}

// Selectable is one row of a Category: a tuple of variant values,
// positionally aligned with the parent Category's VariantNames.
type Selectable struct {
	Variants []string `json:"variants"`
}

// Group is a named subset of a Category, identified by a key-variant
// column and a list of keys drawn from that column.
type Group struct {
	Name            string   `json:"name"`
	CategoryName    string   `json:"subgroup_name"`
	KeyVariantName  string   `json:"key_variant_name"`
	Keys            []string `json:"keys"`
}

// PairGroup is a named table whose columns are typed as either a group
// reference or a selectable reference into a named Category/variant
// pair. ColumnConsistency[i] records the Category name that every
// "group"-typed cell in column i must share, set on first occurrence.
type PairGroup struct {
	Name               string     `json:"name"`
	ColumnNames        []string   `json:"column_names"`
	ColumnTypes        []string   `json:"column_types"`
	ColumnConsistency  []string   `json:"subgroup_checking"`
	Pairs              [][]string `json:"pairs"`
	Valid              bool       `json:"valid"`
}

// Chapter is a named group of Templates sharing a column-variants
// layout, plus a set of Chapter-local vocab entries.
type Chapter struct {
	Name             string      `json:"name"`
	ColumnVariants   []string    `json:"column_variants"`
	ForcedFirstSide  int         `json:"forced_first_side"`
	Templates        []*Template `json:"cards"`
	Vocab            []*Group    `json:"vocab"`
}

// Template is a multi-sided card definition. Sides are positionally
// aligned with the parent Chapter's ColumnVariants, except that the
// side written at the chapter's ForcedFirstSide input position is
// stored at output index 0 (spec §4.8).
type Template struct {
	Sides []string `json:"sides"`
}

// NewCategory creates a Category from its name and variant-name list.
func NewCategory(name string, variantNames []string) *Category {
	return &Category{
		Name:         name,
		VariantNames: append([]string(nil), variantNames...),
		NumVariants:  len(variantNames),
	}
}

// NewPairGroup creates a PairGroup with an unset consistency slot per
// column.
func NewPairGroup(name string, columnNames, columnTypes []string, valid bool) *PairGroup {
	return &PairGroup{
		Name:              name,
		ColumnNames:       columnNames,
		ColumnTypes:       columnTypes,
		ColumnConsistency: make([]string, len(columnNames)),
		Valid:             valid,
	}
}

// NewChapter creates a Chapter from its name, column-variant labels and
// the forced-first-side input position (0 if none was marked).
func NewChapter(name string, columnVariants []string, forcedFirstSide int) *Chapter {
	return &Chapter{
		Name:            name,
		ColumnVariants:  columnVariants,
		ForcedFirstSide: forcedFirstSide,
	}
}

// FindCategory returns the Category with the given name, or nil.
func (d *Deck) FindCategory(name string) *Category {
	for _, c := range d.Categories {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// FindGroup returns the Group with the given name, or nil.
func (d *Deck) FindGroup(name string) *Group {
	for _, g := range d.Groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// FindPairGroup returns the PairGroup with the given name, or nil.
func (d *Deck) FindPairGroup(name string) *PairGroup {
	for _, pg := range d.PairGroups {
		if pg.Name == name {
			return pg
		}
	}
	return nil
}

// FindChapter returns the Chapter with the given name, or nil.
func (d *Deck) FindChapter(name string) *Chapter {
	for _, c := range d.Chapters {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// IndexOfVariant returns the index of variantName within the Category's
// VariantNames, or -1 if not present.
func (c *Category) IndexOfVariant(variantName string) int {
	for i, v := range c.VariantNames {
		if v == variantName {
			return i
		}
	}
	return -1
}

// HasSelectable reports whether some Selectable's value at
// variantIndex equals value.
func (c *Category) HasSelectable(variantIndex int, value string) bool {
	for _, s := range c.Selectables {
		if variantIndex < len(s.Variants) && s.Variants[variantIndex] == value {
			return true
		}
	}
	return false
}

// HasSelectableTuple reports whether an existing Selectable has the
// exact same ordered variant tuple as variants.
func (c *Category) HasSelectableTuple(variants []string) bool {
	for _, s := range c.Selectables {
		if sameStrings(s.Variants, variants) {
			return true
		}
	}
	return false
}

func sameStrings(a, b []string) bool {
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

// HasKey reports whether the Group already contains key.
func (g *Group) HasKey(key string) bool {
	for _, k := range g.Keys {
		if k == key {
			return true
		}
	}
	return false
}

// ColumnIndex returns the index of columnName in the PairGroup's
// ColumnNames, or -1 if not present.
func (pg *PairGroup) ColumnIndex(columnName string) int {
	for i, n := range pg.ColumnNames {
		if n == columnName {
			return i
		}
	}
	return -1
}
