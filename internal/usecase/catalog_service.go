package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/riftwatch/riftwatch/internal/domain/catalog"
	"github.com/riftwatch/riftwatch/internal/platform/cache"
)

// ProductSource fetches priced products from the upstream card catalog.
type ProductSource interface {
	FetchGroupProductsWithPrices(ctx context.Context, groupID int64) ([]catalog.ProductWithPrice, error)
	FetchAllGroupsProductsWithPrices(ctx context.Context) ([]catalog.ProductWithPrice, error)
}

type CatalogService struct {
	source ProductSource
	store  *cache.Store[[]catalog.ProductWithPrice]
	logger *slog.Logger
}

func NewCatalogService(source ProductSource, store *cache.Store[[]catalog.ProductWithPrice], logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		source: source,
		store:  store,
		logger: logger,
	}
}

// ListGroups returns the known card set registry in release order. The
// result is a copy so callers cannot mutate the registry.
func (s *CatalogService) ListGroups(ctx context.Context) ([]catalog.Group, error) {
	_, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListGroups")
	defer span.End()

	groups := make([]catalog.Group, len(catalog.Groups))
	copy(groups, catalog.Groups)
	return groups, nil
}

// FetchGroup returns the priced products of one set, served from cache
// when fresh. Unknown group ids fail before any upstream call.
func (s *CatalogService) FetchGroup(ctx context.Context, groupID int64) ([]catalog.ProductWithPrice, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.FetchGroup")
	defer span.End()

	if _, ok := catalog.GroupByID(groupID); !ok {
		return nil, fmt.Errorf("%w: group=%d", ErrNotFound, groupID)
	}

	items, err := s.cached(ctx, "group:"+strconv.FormatInt(groupID, 10), func(ctx context.Context) ([]catalog.ProductWithPrice, error) {
		return s.source.FetchGroupProductsWithPrices(ctx, groupID)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "fetch group failed",
			slog.Int64("group_id", groupID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: fetch group %d: %v", ErrDependencyUnavailable, groupID, err)
	}

	return items, nil
}

// FetchAll returns the priced products of every known set concatenated
// in registry order.
func (s *CatalogService) FetchAll(ctx context.Context) ([]catalog.ProductWithPrice, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.FetchAll")
	defer span.End()

	items, err := s.cached(ctx, "all", s.source.FetchAllGroupsProductsWithPrices)
	if err != nil {
		s.logger.ErrorContext(ctx, "fetch all groups failed",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: fetch all groups: %v", ErrDependencyUnavailable, err)
	}

	return items, nil
}

// cached routes a load through the TTL store, or straight to the
// loader when caching is disabled.
func (s *CatalogService) cached(ctx context.Context, key string, loader func(context.Context) ([]catalog.ProductWithPrice, error)) ([]catalog.ProductWithPrice, error) {
	if s.store == nil {
		return loader(ctx)
	}
	return s.store.GetOrLoad(ctx, key, loader)
}

// BrowseProducts fetches the full catalog and applies a search query
// plus pagination over it.
func (s *CatalogService) BrowseProducts(ctx context.Context, query string, page int) (CatalogPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.BrowseProducts")
	defer span.End()

	items, err := s.FetchAll(ctx)
	if err != nil {
		return CatalogPage{}, err
	}

	return SearchCatalog(items, query, page), nil
}

// LatestModified reports the most recent upstream modification timestamp
// across the given products. Timestamps compare lexicographically in the
// upstream format; unparseable or empty values are skipped.
func LatestModified(items []catalog.ProductWithPrice) (time.Time, bool) {
	latest := ""
	for _, item := range items {
		if item.ModifiedOn > latest {
			latest = item.ModifiedOn
		}
	}
	if latest == "" {
		return time.Time{}, false
	}
	ts, err := time.Parse("2006-01-02T15:04:05.999", latest)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
