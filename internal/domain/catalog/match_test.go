package catalog

import "testing"

func TestNormalizeName_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Kai'Sa",
		"KAI’SA",
		"  Darius - Trifarian  ",
		"",
		"  '' ’ ",
	}
	for _, in := range inputs {
		once := NormalizeName(in)
		twice := NormalizeName(once)
		if once != twice {
			t.Fatalf("normalize not idempotent for %q: first=%q second=%q", in, once, twice)
		}
	}
}

func TestNormalizeName_CaseAndApostropheInsensitive(t *testing.T) {
	t.Parallel()

	want := "kaisa"
	for _, in := range []string{"Kai'Sa", "kaisa", "KAI’SA", " Kai'sa "} {
		if got := NormalizeName(in); got != want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolveProduct_ExactCleanNameWinsOverSubstring(t *testing.T) {
	t.Parallel()

	candidates := []ProductWithPrice{
		{Product: Product{ProductID: 1, CleanName: "Kai'Sa - Survivor"}},
		{Product: Product{ProductID: 2, CleanName: "Kai'Sa - Daughter of the Void"}},
	}

	got := ResolveProduct("Kai'Sa - Survivor", candidates)
	if got == nil {
		t.Fatal("expected a match")
	}
	if got.ProductID != 1 {
		t.Fatalf("expected exact match on product 1, got %d", got.ProductID)
	}
}

func TestResolveProduct_RawNameBeforeSubstring(t *testing.T) {
	t.Parallel()

	candidates := []ProductWithPrice{
		{Product: Product{ProductID: 1, Name: "Fury Rune Promo", CleanName: "Fury Rune Promo Pack"}},
		{Product: Product{ProductID: 2, Name: "Fury Rune", CleanName: "Fury Rune Card"}},
	}

	got := ResolveProduct("Fury Rune", candidates)
	if got == nil {
		t.Fatal("expected a match")
	}
	// Product 2 matches the raw-name-equals tier; the substring hit on
	// product 1 must not be considered first.
	if got.ProductID != 2 {
		t.Fatalf("expected product 2, got %d", got.ProductID)
	}
}

func TestResolveProduct_SubstringFallbackKeepsInputOrder(t *testing.T) {
	t.Parallel()

	candidates := []ProductWithPrice{
		{Product: Product{ProductID: 10, CleanName: "Origins Booster Box"}},
		{Product: Product{ProductID: 11, CleanName: "Origins Booster Pack"}},
	}

	got := ResolveProduct("booster", candidates)
	if got == nil {
		t.Fatal("expected a match")
	}
	if got.ProductID != 10 {
		t.Fatalf("expected first candidate in order, got %d", got.ProductID)
	}
}

func TestResolveProduct_NoMatchReturnsNil(t *testing.T) {
	t.Parallel()

	candidates := []ProductWithPrice{
		{Product: Product{ProductID: 1, Name: "Origins Booster Box", CleanName: "Origins Booster Box"}},
	}

	if got := ResolveProduct("Teemo", candidates); got != nil {
		t.Fatalf("expected no match, got product %d", got.ProductID)
	}
	if got := ResolveProduct("", candidates); got != nil {
		t.Fatalf("expected no match for empty target, got product %d", got.ProductID)
	}
}

func TestResolveCoverProduct_PrefersHintOverName(t *testing.T) {
	t.Parallel()

	candidates := []ProductWithPrice{
		{Product: Product{ProductID: 1, CleanName: "Champion Deck Kai'Sa"}},
		{Product: Product{ProductID: 2, CleanName: "Kai'Sa Playmat"}},
	}

	got := ResolveCoverProduct("Champion Deck (Kai'Sa)", "Kai'Sa", candidates)
	if got != nil {
		t.Fatalf("hint with parentheses should not substring-match, got product %d", got.ProductID)
	}

	got = ResolveCoverProduct("Champion Deck Kai'Sa", "Kai'Sa", candidates)
	if got == nil || got.ProductID != 1 {
		t.Fatalf("expected product 1 via hint, got %+v", got)
	}
}

func TestResolveCoverProduct_FallsBackToDisplayName(t *testing.T) {
	t.Parallel()

	candidates := []ProductWithPrice{
		{Product: Product{ProductID: 5, Name: "Teemo Deck Display"}},
	}

	got := ResolveCoverProduct("", "Teemo", candidates)
	if got == nil || got.ProductID != 5 {
		t.Fatalf("expected fallback match on product 5, got %+v", got)
	}
}
