package textmetrics

import "testing"

func TestTopTerms(t *testing.T) {
	text := "The cats chased the cat. Walking walked walks, then walked again."
	terms := TopTerms(text, 10)

	if len(terms) == 0 {
		t.Fatal("expected at least one term")
	}
	if terms[0].Stem != "walk" || terms[0].Count != 4 {
		t.Errorf("top term = %+v, want stem walk with count 4", terms[0])
	}

	var cat *Term
	for i := range terms {
		if terms[i].Stem == "cat" {
			cat = &terms[i]
		}
		if terms[i].Stem == "the" || terms[i].Stem == "then" {
			t.Errorf("stop word %q leaked into terms", terms[i].Stem)
		}
	}
	if cat == nil || cat.Count != 2 {
		t.Fatalf("expected cat with count 2, got %+v", terms)
	}
	if cat.Word != "cat" && cat.Word != "cats" {
		t.Errorf("surface form %q is not a form of cat", cat.Word)
	}
}

func TestTopTermsSurfaceForm(t *testing.T) {
	// "walked" appears twice, more than any other form of the stem.
	terms := TopTerms("walked walked walking walks", 1)
	if len(terms) != 1 {
		t.Fatalf("got %d terms, want 1", len(terms))
	}
	if terms[0].Word != "walked" {
		t.Errorf("surface form = %q, want walked", terms[0].Word)
	}
}

func TestTopTermsTruncation(t *testing.T) {
	text := "alpha bravo charlie delta echo foxtrot"
	if got := len(TopTerms(text, 3)); got != 3 {
		t.Errorf("got %d terms, want 3", got)
	}
	if got := TopTerms(text, 0); got != nil {
		t.Errorf("n=0 should return nil, got %v", got)
	}
}

func TestTopTermsSkipsNoise(t *testing.T) {
	terms := TopTerms("a I 42 1999 x cat", 10)
	for _, term := range terms {
		if term.Stem != "cat" {
			t.Errorf("unexpected term %+v; single letters, numbers, and stop words should be skipped", term)
		}
	}
}
