package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/riftwatch/riftwatch/internal/domain/catalog"
	"github.com/riftwatch/riftwatch/internal/domain/deck"
)

const deckCardWorkerCount = 8

// DeckSummary is a deck as shown on the tier list page, with its cover
// product resolved against the card catalog when one matches.
type DeckSummary struct {
	deck.Deck
	CoverImageURL string `json:"coverImageUrl,omitempty"`
	CoverURL      string `json:"coverUrl,omitempty"`
}

// TierSection groups the decks of one tier together with the curated
// explanation text for that tier.
type TierSection struct {
	Tier        deck.Tier     `json:"tier"`
	Explanation string        `json:"explanation"`
	Decks       []DeckSummary `json:"decks"`
}

// TierList is the full tier list page payload.
type TierList struct {
	MetaDescription string        `json:"metaDescription"`
	Sections        []TierSection `json:"sections"`
}

// DeckCardRow is one card of a deck enriched with catalog data. Cards
// that resolve no product keep only their curated name and quantity.
type DeckCardRow struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	ImageURL    string `json:"imageUrl,omitempty"`
	ProductURL  string `json:"productUrl,omitempty"`
	MarketPrice string `json:"marketPrice,omitempty"`
}

// DeckDetail is the deck page payload: the curated deck plus enriched
// card rows and quantity totals.
type DeckDetail struct {
	Deck            deck.Deck     `json:"deck"`
	TierExplanation string        `json:"tierExplanation"`
	CoverImageURL   string        `json:"coverImageUrl,omitempty"`
	Cards           []DeckCardRow `json:"cards"`
	Sideboard       []DeckCardRow `json:"sideboard,omitempty"`
	MainDeckCount   int           `json:"mainDeckCount"`
	SideboardCount  int           `json:"sideboardCount"`
}

type DeckService struct {
	deckRepo   deck.Repository
	catalogSvc *CatalogService
	logger     *slog.Logger
}

func NewDeckService(deckRepo deck.Repository, catalogSvc *CatalogService, logger *slog.Logger) *DeckService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeckService{
		deckRepo:   deckRepo,
		catalogSvc: catalogSvc,
		logger:     logger,
	}
}

// ListDecks builds the tier list page: every tier in strength order with
// its explanation and decks. Cover resolution is best effort; when the
// catalog is unreachable the list ships without cover images.
func (s *DeckService) ListDecks(ctx context.Context) (TierList, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DeckService.ListDecks")
	defer span.End()

	decks, err := s.deckRepo.List(ctx)
	if err != nil {
		return TierList{}, fmt.Errorf("list decks: %w", err)
	}

	products := s.catalogProducts(ctx)

	byTier := make(map[deck.Tier][]DeckSummary, len(deck.Tiers))
	for _, d := range decks {
		byTier[d.Tier] = append(byTier[d.Tier], s.summarize(d, products))
	}

	sections := make([]TierSection, 0, len(deck.Tiers))
	for _, tier := range deck.Tiers {
		sections = append(sections, TierSection{
			Tier:        tier,
			Explanation: deck.TierExplanations[tier],
			Decks:       byTier[tier],
		})
	}

	return TierList{
		MetaDescription: deck.MetaDescription,
		Sections:        sections,
	}, nil
}

// ListDecksByTier returns the decks of a single tier in curated order.
func (s *DeckService) ListDecksByTier(ctx context.Context, rawTier string) ([]DeckSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DeckService.ListDecksByTier")
	defer span.End()

	tier, err := deck.ParseTier(rawTier)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	decks, err := s.deckRepo.ListByTier(ctx, tier)
	if err != nil {
		return nil, fmt.Errorf("list decks by tier: %w", err)
	}

	products := s.catalogProducts(ctx)
	summaries := make([]DeckSummary, 0, len(decks))
	for _, d := range decks {
		summaries = append(summaries, s.summarize(d, products))
	}

	return summaries, nil
}

// GetDeckBySlug returns one curated deck without catalog enrichment.
func (s *DeckService) GetDeckBySlug(ctx context.Context, slug string) (deck.Deck, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DeckService.GetDeckBySlug")
	defer span.End()

	slug = strings.TrimSpace(slug)
	if slug == "" {
		return deck.Deck{}, fmt.Errorf("%w: deck slug is required", ErrInvalidInput)
	}

	d, exists, err := s.deckRepo.GetBySlug(ctx, slug)
	if err != nil {
		return deck.Deck{}, fmt.Errorf("get deck: %w", err)
	}
	if !exists {
		return deck.Deck{}, fmt.Errorf("%w: deck=%s", ErrNotFound, slug)
	}

	return d, nil
}

// GetDeckDetail returns the deck page payload with every card row
// resolved against the catalog on a bounded worker pool. Catalog
// unavailability degrades to bare rows instead of failing the page.
func (s *DeckService) GetDeckDetail(ctx context.Context, slug string) (DeckDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DeckService.GetDeckDetail")
	defer span.End()

	d, err := s.GetDeckBySlug(ctx, slug)
	if err != nil {
		return DeckDetail{}, err
	}

	products := s.catalogProducts(ctx)

	detail := DeckDetail{
		Deck:            d,
		TierExplanation: deck.TierExplanations[d.Tier],
		MainDeckCount:   d.MainDeckCount(),
		SideboardCount:  d.SideboardCount(),
	}
	if cover := catalog.ResolveCoverProduct(d.CoverImageHint, d.Name, products); cover != nil {
		detail.CoverImageURL = cover.ImageURL
	}

	detail.Cards, err = resolveCardRows(d.Cards, products)
	if err != nil {
		return DeckDetail{}, err
	}
	detail.Sideboard, err = resolveCardRows(d.Sideboard, products)
	if err != nil {
		return DeckDetail{}, err
	}

	return detail, nil
}

// catalogProducts fetches the combined catalog for enrichment, treating
// failure as an empty catalog so deck pages stay up when pricing is down.
func (s *DeckService) catalogProducts(ctx context.Context) []catalog.ProductWithPrice {
	if s.catalogSvc == nil {
		return nil
	}
	products, err := s.catalogSvc.FetchAll(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "deck enrichment skipped, catalog unavailable",
			slog.String("error", err.Error()),
		)
		return nil
	}
	return products
}

func (s *DeckService) summarize(d deck.Deck, products []catalog.ProductWithPrice) DeckSummary {
	summary := DeckSummary{Deck: d}
	if cover := catalog.ResolveCoverProduct(d.CoverImageHint, d.Name, products); cover != nil {
		summary.CoverImageURL = cover.ImageURL
		summary.CoverURL = cover.URL
	}
	return summary
}

func resolveCardRows(cards []deck.Card, products []catalog.ProductWithPrice) ([]DeckCardRow, error) {
	if len(cards) == 0 {
		return nil, nil
	}

	workerCount := deckCardWorkerCount
	if len(cards) < workerCount {
		workerCount = len(cards)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create card resolution pool: %w", err)
	}
	defer pool.Release()

	rows := make([]DeckCardRow, len(cards))
	var workers sync.WaitGroup
	for i, card := range cards {
		i, card := i, card
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			rows[i] = resolveCardRow(card, products)
		}); err != nil {
			workers.Done()
			rows[i] = DeckCardRow{Name: card.Name, Quantity: card.Quantity}
		}
	}
	workers.Wait()

	return rows, nil
}

func resolveCardRow(card deck.Card, products []catalog.ProductWithPrice) DeckCardRow {
	row := DeckCardRow{Name: card.Name, Quantity: card.Quantity}

	match := catalog.ResolveProduct(card.Name, products)
	if match == nil {
		return row
	}

	row.ImageURL = match.ImageURL
	row.ProductURL = match.URL
	if match.Price != nil {
		amount := match.Price.MarketPrice
		if amount == nil {
			amount = match.Price.MidPrice
		}
		if amount != nil {
			row.MarketPrice = fmt.Sprintf("$%.2f", *amount)
		}
	}

	return row
}
