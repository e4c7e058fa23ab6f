package parser

import "testing"

// TestForcedFirstSide is spec.md §8 scenario 5.
func TestForcedFirstSide(t *testing.T) {
	d := newTestDriver()
	feed(d,
		[]string{"# Templates"},
		[]string{"## Deck"},
		[]string{">front", "^back", "example"},
		[]string{"{"},
		[]string{"A"},
		[]string{"B"},
		[]string{"C"},
		[]string{"}"},
	)
	d.EndOfFile()

	if len(d.Deck.Chapters) != 1 {
		t.Fatalf("Chapters = %d, want 1", len(d.Deck.Chapters))
	}
	ch := d.Deck.Chapters[0]
	wantVariants := []string{"back", "front", "example"}
	for i, v := range wantVariants {
		if ch.ColumnVariants[i] != v {
			t.Errorf("ColumnVariants[%d] = %q, want %q", i, ch.ColumnVariants[i], v)
		}
	}
	if ch.ForcedFirstSide != 1 {
		t.Errorf("ForcedFirstSide = %d, want 1", ch.ForcedFirstSide)
	}
	if len(ch.Templates) != 1 {
		t.Fatalf("Templates = %d, want 1", len(ch.Templates))
	}
	wantSides := []string{"B", "A", "C"}
	for i, s := range wantSides {
		if ch.Templates[0].Sides[i] != s {
			t.Errorf("Sides[%d] = %q, want %q", i, ch.Templates[0].Sides[i], s)
		}
	}
}

// TestPlaceholderDefaultVariant is spec.md §8 scenario 6.
func TestPlaceholderDefaultVariant(t *testing.T) {
	d := newTestDriver()
	feed(d,
		[]string{"# Selectables"},
		[]string{"## Lang"},
		[]string{">english", "japanese"},
		[]string{"see", "miru"},
		[]string{"# Groups"},
		[]string{"verb", "Lang", "english", "{see}"},
		[]string{"# Templates"},
		[]string{"## Deck"},
		[]string{">~english", "japanese"},
		[]string{"{"},
		[]string{"front text"},
		[]string{"I saw [verb]"},
		[]string{"}"},
	)
	d.EndOfFile()

	if d.Sink.HasIssues() {
		t.Fatalf("unexpected issues: %v", d.Sink.Issues())
	}
	ch := d.Deck.Chapters[0]
	if len(ch.Templates) != 1 || len(ch.Templates[0].Sides) != 2 {
		t.Fatalf("Templates = %+v", ch.Templates)
	}
	if ch.Templates[0].Sides[1] != "I saw [verb]" {
		t.Errorf("side 1 = %q", ch.Templates[0].Sides[1])
	}
}

func TestPlaceholderDefaultVariantOnFirstSide(t *testing.T) {
	d := newTestDriver()
	feed(d,
		[]string{"# Selectables"},
		[]string{"## Lang"},
		[]string{">english", "japanese"},
		[]string{"see", "miru"},
		[]string{"# Groups"},
		[]string{"verb", "Lang", "english", "{see}"},
		[]string{"# Templates"},
		[]string{"## Deck"},
		[]string{">~english", "japanese"},
		[]string{"{"},
		[]string{"I saw [verb]"},
		[]string{"back text"},
		[]string{"}"},
	)
	d.EndOfFile()

	if d.Sink.HasIssues() {
		t.Fatalf("unexpected issues: %v", d.Sink.Issues())
	}
	ch := d.Deck.Chapters[0]
	if ch.Templates[0].Sides[0] != "I saw [verb]" {
		t.Errorf("side 0 = %q", ch.Templates[0].Sides[0])
	}
}

func TestCardSideCountMismatchStillAppends(t *testing.T) {
	d := newTestDriver()
	feed(d,
		[]string{"# Templates"},
		[]string{"## Deck"},
		[]string{">front", "back"},
		[]string{"{"},
		[]string{"A"},
		[]string{"}"},
	)
	d.EndOfFile()

	ch := d.Deck.Chapters[0]
	if len(ch.Templates) != 1 {
		t.Fatalf("Templates = %d, want 1 (appended despite mismatch)", len(ch.Templates))
	}
	if len(d.Sink.Issues()) != 1 {
		t.Fatalf("Issues = %d, want 1: %v", len(d.Sink.Issues()), d.Sink.Issues())
	}
}

func TestUnclosedTemplateDroppedAtEOF(t *testing.T) {
	d := newTestDriver()
	feed(d,
		[]string{"# Templates"},
		[]string{"## Deck"},
		[]string{">front", "back"},
		[]string{"{"},
		[]string{"A"},
		[]string{"B"},
	)
	d.EndOfFile()

	ch := d.Deck.Chapters[0]
	if len(ch.Templates) != 0 {
		t.Fatalf("Templates = %d, want 0 (unclosed card dropped)", len(ch.Templates))
	}
}

func TestVocabRow(t *testing.T) {
	d := newTestDriver()
	feed(d,
		[]string{"# Selectables"},
		[]string{"## Lang"},
		[]string{">english", "japanese"},
		[]string{"see", "miru"},
		[]string{"# Templates"},
		[]string{"## Deck"},
		[]string{">english", "japanese"},
		[]string{">vocab", "Lang", "english", "{see}"},
	)
	d.EndOfFile()

	ch := d.Deck.Chapters[0]
	if len(ch.Vocab) != 1 {
		t.Fatalf("Vocab = %d, want 1", len(ch.Vocab))
	}
	if d.Sink.HasIssues() {
		t.Errorf("unexpected issues: %v", d.Sink.Issues())
	}
}

func TestVocabRowBadSeparators(t *testing.T) {
	d := newTestDriver()
	feed(d,
		[]string{"# Templates"},
		[]string{"## Deck"},
		[]string{">english", "japanese"},
		[]string{">vocab", "Lang", "english"},
	)
	d.EndOfFile()

	if len(d.Sink.Issues()) != 1 {
		t.Fatalf("Issues = %d, want 1: %v", len(d.Sink.Issues()), d.Sink.Issues())
	}
}

func TestPlaceholderMissingGroup(t *testing.T) {
	d := newTestDriver()
	feed(d,
		[]string{"# Templates"},
		[]string{"## Deck"},
		[]string{">front"},
		[]string{"{"},
		[]string{"I saw [verb]"},
		[]string{"}"},
	)
	d.EndOfFile()

	ch := d.Deck.Chapters[0]
	if len(ch.Templates[0].Sides) != 0 {
		t.Errorf("side with unresolved placeholder should be dropped")
	}
	if len(d.Sink.Issues()) != 1 {
		t.Fatalf("Issues = %d, want 1: %v", len(d.Sink.Issues()), d.Sink.Issues())
	}
}
