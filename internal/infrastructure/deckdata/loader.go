// Package deckdata loads the curated deck dataset from a JSON file so
// the tier list can be swapped without a rebuild.
package deckdata

import (
	"fmt"
	"os"

	sonic "github.com/bytedance/sonic"

	"github.com/riftwatch/riftwatch/internal/domain/deck"
)

// LoadFile reads and validates a deck dataset. Every entry must pass
// deck.Validate and slugs must be unique.
func LoadFile(path string) ([]deck.Deck, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck dataset: %w", err)
	}

	var decks []deck.Deck
	if err := sonic.Unmarshal(raw, &decks); err != nil {
		return nil, fmt.Errorf("decode deck dataset %s: %w", path, err)
	}

	seen := make(map[string]struct{}, len(decks))
	for _, d := range decks {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("deck dataset %s: %w", path, err)
		}
		if _, dup := seen[d.Slug]; dup {
			return nil, fmt.Errorf("deck dataset %s: duplicate slug %q", path, d.Slug)
		}
		seen[d.Slug] = struct{}{}
	}

	return decks, nil
}
