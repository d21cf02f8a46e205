package deck

import (
	"fmt"
	"strings"
)

// Tier is a coarse strength ranking, S strongest.
type Tier string

const (
	TierS Tier = "S"
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
)

// Tiers lists every tier in ranking order.
var Tiers = []Tier{TierS, TierA, TierB, TierC}

// ParseTier validates a free-form tier label. Matching is
// case-insensitive so URL segments like "s" work.
func ParseTier(value string) (Tier, error) {
	tier := Tier(strings.ToUpper(strings.TrimSpace(value)))
	switch tier {
	case TierS, TierA, TierB, TierC:
		return tier, nil
	default:
		return "", fmt.Errorf("unknown tier %q", value)
	}
}

// Card is one (name, quantity) line of a deck list.
type Card struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Deck is a hand-authored tier-list entry. Decks are read-only reference
// data and are never mutated at runtime.
type Deck struct {
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	Tier             Tier     `json:"tier"`
	Champions        []string `json:"champions"`
	Archetype        string   `json:"archetype"`
	ShortDescription string   `json:"shortDescription"`
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
	LastUpdated      string   `json:"lastUpdated"`
	Cards            []Card   `json:"cards,omitempty"`
	Sideboard        []Card   `json:"sideboard,omitempty"`
	CoverImageHint   string   `json:"coverImageHint,omitempty"`
}

func (d Deck) Validate() error {
	if d.Slug == "" {
		return fmt.Errorf("deck slug is required")
	}
	if d.Name == "" {
		return fmt.Errorf("deck name is required")
	}
	if _, err := ParseTier(string(d.Tier)); err != nil {
		return fmt.Errorf("deck %s: %w", d.Slug, err)
	}
	for _, c := range d.Cards {
		if err := c.validate(); err != nil {
			return fmt.Errorf("deck %s main deck: %w", d.Slug, err)
		}
	}
	for _, c := range d.Sideboard {
		if err := c.validate(); err != nil {
			return fmt.Errorf("deck %s sideboard: %w", d.Slug, err)
		}
	}
	return nil
}

func (c Card) validate() error {
	if c.Name == "" {
		return fmt.Errorf("card name is required")
	}
	if c.Quantity <= 0 {
		return fmt.Errorf("card %s: quantity must be positive", c.Name)
	}
	return nil
}

// MainDeckCount is the total number of main-deck cards.
func (d Deck) MainDeckCount() int {
	return countCards(d.Cards)
}

// SideboardCount is the total number of sideboard cards.
func (d Deck) SideboardCount() int {
	return countCards(d.Sideboard)
}

func countCards(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Quantity
	}
	return total
}

// MetaDescription is the curated blurb shown above the tier list.
const MetaDescription = "Click on a deck name to view the list, as well as the latest explanation and report on how the decks were placed here. Meta Tier List is updated for the global release of Riftbound."

// TierExplanations describes what placement in each tier means.
var TierExplanations = map[Tier]string{
	TierS: "These decks are at the top of the metagame, and are the decks to beat based on both power and popularity. You can expect to see a lot of players playing these decks, and you should prepare for them when choosing your own deck for a tournament or event.",
	TierA: "These decks are also going to be pretty popular, and contend for the top of the metagame. You should be aware of them, and they're still going to be great picks into the early days of Riftbound.",
	TierB: "While not the best of the metagame, these decks are still viable and are either rogue decks or just need a bit more support to be pushed over the edge to reach the higher tiers.",
	TierC: "These decks are fun, but don't really have enough support to be at the top of the metagame, due to a lack of good cards or a major hole in their game plan.",
}
