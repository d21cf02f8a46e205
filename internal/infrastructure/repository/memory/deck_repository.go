package memory

import (
	"context"
	"sync"

	"github.com/riftwatch/riftwatch/internal/domain/deck"
)

// DeckRepository serves the curated tier-list dataset. Decks are loaded
// once at construction and never mutated.
type DeckRepository struct {
	mu     sync.RWMutex
	decks  []deck.Deck
	bySlug map[string]deck.Deck
}

func NewDeckRepository(decks []deck.Deck) *DeckRepository {
	bySlug := make(map[string]deck.Deck, len(decks))
	ordered := make([]deck.Deck, 0, len(decks))
	for _, d := range decks {
		if _, exists := bySlug[d.Slug]; exists {
			continue
		}
		bySlug[d.Slug] = d
		ordered = append(ordered, d)
	}

	return &DeckRepository{decks: ordered, bySlug: bySlug}
}

func (r *DeckRepository) List(_ context.Context) ([]deck.Deck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]deck.Deck, 0, len(r.decks))
	out = append(out, r.decks...)
	return out, nil
}

func (r *DeckRepository) ListByTier(_ context.Context, tier deck.Tier) ([]deck.Deck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]deck.Deck, 0, len(r.decks))
	for _, d := range r.decks {
		if d.Tier == tier {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *DeckRepository) GetBySlug(_ context.Context, slug string) (deck.Deck, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.bySlug[slug]
	return d, ok, nil
}
