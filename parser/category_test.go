package parser

import "testing"

func newTestDriver() *Driver {
	d := NewDriver()
	d.BeginFile()
	return d
}

func feed(d *Driver, lines ...[]string) {
	for _, l := range lines {
		d.Feed(l)
	}
}

// TestMinimalRoundTrip is spec.md §8 scenario 1.
func TestMinimalRoundTrip(t *testing.T) {
	d := newTestDriver()
	feed(d,
		[]string{"# Selectables"},
		[]string{"## Color"},
		[]string{">name", "hex"},
		[]string{"red", "#f00"},
		[]string{"green", "#0f0"},
	)
	d.EndOfFile()

	if len(d.Deck.Categories) != 1 {
		t.Fatalf("Categories = %d, want 1", len(d.Deck.Categories))
	}
	cat := d.Deck.Categories[0]
	if cat.Name != "Color" {
		t.Errorf("Name = %q, want Color", cat.Name)
	}
	if cat.NumVariants != 2 || len(cat.VariantNames) != 2 {
		t.Errorf("variant count = %d/%d, want 2/2", cat.NumVariants, len(cat.VariantNames))
	}
	if len(cat.Selectables) != 2 {
		t.Fatalf("Selectables = %d, want 2", len(cat.Selectables))
	}
	if d.Sink.HasIssues() {
		t.Errorf("unexpected issues: %v", d.Sink.Issues())
	}
}

func TestCategoryColumnCountMismatch(t *testing.T) {
	d := newTestDriver()
	feed(d,
		[]string{"# Selectables"},
		[]string{"## Color"},
		[]string{">name", "hex"},
		[]string{"red"},
	)
	d.EndOfFile()

	if len(d.Deck.Categories[0].Selectables) != 0 {
		t.Errorf("mismatched row should be dropped")
	}
	if len(d.Sink.Issues()) != 1 {
		t.Fatalf("Issues = %d, want 1", len(d.Sink.Issues()))
	}
}

func TestCategoryExtension(t *testing.T) {
	d := newTestDriver()
	feed(d,
		[]string{"# Selectables"},
		[]string{"## Color"},
		[]string{">name", "hex"},
		[]string{"red", "#f00"},
		[]string{"# Groups"},
		[]string{"# Selectables"},
		[]string{"## Color"},
		[]string{">name", "hex"},
		[]string{"green", "#0f0"},
	)
	d.EndOfFile()

	if len(d.Deck.Categories) != 1 {
		t.Fatalf("Categories = %d, want 1 (extension, not duplication)", len(d.Deck.Categories))
	}
	if len(d.Deck.Categories[0].Selectables) != 2 {
		t.Fatalf("Selectables = %d, want 2", len(d.Deck.Categories[0].Selectables))
	}
	if len(d.Sink.Infos()) == 0 {
		t.Errorf("expected an info diagnostic for the duplicated subheader")
	}
}

func TestCategoryExtensionVariantMismatch(t *testing.T) {
	d := newTestDriver()
	feed(d,
		[]string{"# Selectables"},
		[]string{"## Color"},
		[]string{">name", "hex"},
		[]string{"red", "#f00"},
		[]string{"# Groups"},
		[]string{"# Selectables"},
		[]string{"## Color"},
		[]string{">name", "rgb"},
		[]string{"green", "0,255,0"},
	)
	d.EndOfFile()

	if len(d.Sink.Issues()) != 1 {
		t.Fatalf("Issues = %d, want 1", len(d.Sink.Issues()))
	}
}

func TestCategoryExtensionDuplicateSelectableSkipped(t *testing.T) {
	d := newTestDriver()
	feed(d,
		[]string{"# Selectables"},
		[]string{"## Color"},
		[]string{">name", "hex"},
		[]string{"red", "#f00"},
		[]string{"# Groups"},
		[]string{"# Selectables"},
		[]string{"## Color"},
		[]string{">name", "hex"},
		[]string{"red", "#f00"},
	)
	d.EndOfFile()

	if len(d.Deck.Categories[0].Selectables) != 1 {
		t.Fatalf("Selectables = %d, want 1 (duplicate tuple skipped)", len(d.Deck.Categories[0].Selectables))
	}
}
