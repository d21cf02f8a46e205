package deck

import (
	"strings"
	"testing"
)

func TestParseTier(t *testing.T) {
	t.Parallel()

	for _, tier := range []string{"S", "A", "B", "C", "s", "b "} {
		if _, err := ParseTier(tier); err != nil {
			t.Fatalf("tier %q should parse: %v", tier, err)
		}
	}
	for _, tier := range []string{"", "D", "SS"} {
		if _, err := ParseTier(tier); err == nil {
			t.Fatalf("tier %q should be rejected", tier)
		}
	}
}

func TestDeckValidate(t *testing.T) {
	t.Parallel()

	valid := Deck{
		Slug:      "kaisa",
		Name:      "Kai'Sa",
		Tier:      TierS,
		Cards:     []Card{{Name: "Fury Rune", Quantity: 7}},
		Sideboard: []Card{{Name: "Fae - Sprite Mother", Quantity: 3}},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid deck rejected: %v", err)
	}

	cases := []struct {
		name    string
		mutate  func(*Deck)
		wantSub string
	}{
		{"missing slug", func(d *Deck) { d.Slug = "" }, "slug"},
		{"missing name", func(d *Deck) { d.Name = "" }, "name"},
		{"bad tier", func(d *Deck) { d.Tier = "D" }, "tier"},
		{"zero quantity", func(d *Deck) { d.Cards[0].Quantity = 0 }, "quantity"},
		{"negative sideboard quantity", func(d *Deck) { d.Sideboard[0].Quantity = -1 }, "quantity"},
		{"unnamed card", func(d *Deck) { d.Cards[0].Name = "" }, "card name"},
	}
	for _, tc := range cases {
		d := valid
		d.Cards = append([]Card(nil), valid.Cards...)
		d.Sideboard = append([]Card(nil), valid.Sideboard...)
		tc.mutate(&d)
		err := d.Validate()
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.wantSub) {
			t.Fatalf("%s: error %q does not mention %q", tc.name, err, tc.wantSub)
		}
	}
}

func TestDeckCardCounts(t *testing.T) {
	t.Parallel()

	d := Deck{
		Cards:     []Card{{Name: "Fury Rune", Quantity: 7}, {Name: "Mind Rune", Quantity: 5}},
		Sideboard: []Card{{Name: "Kai'Sa - Icathian Rain", Quantity: 2}},
	}
	if got := d.MainDeckCount(); got != 12 {
		t.Fatalf("main deck count = %d, want 12", got)
	}
	if got := d.SideboardCount(); got != 2 {
		t.Fatalf("sideboard count = %d, want 2", got)
	}

	empty := Deck{}
	if empty.MainDeckCount() != 0 || empty.SideboardCount() != 0 {
		t.Fatal("empty deck must count zero cards")
	}
}
