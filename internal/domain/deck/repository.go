package deck

import "context"

// Repository describes read access to the curated deck dataset.
type Repository interface {
	List(ctx context.Context) ([]Deck, error)
	ListByTier(ctx context.Context, tier Tier) ([]Deck, error)
	GetBySlug(ctx context.Context, slug string) (Deck, bool, error)
}
