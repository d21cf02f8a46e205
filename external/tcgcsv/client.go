// Package tcgcsv reads the public TCGCSV mirror of TCGplayer product and
// price data. All endpoints are unauthenticated GETs returning JSON.
package tcgcsv

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"

	"github.com/riftwatch/riftwatch/internal/domain/catalog"
	"github.com/riftwatch/riftwatch/internal/platform/logging"
	"github.com/riftwatch/riftwatch/internal/platform/resilience"
)

const (
	defaultBaseURL    = "https://tcgcsv.com/tcgplayer"
	defaultCategoryID = 89 // Riftbound (League of Legends TCG)
	maxResponseBytes  = 6 << 20
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	CategoryID     int64
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches per-group product and price listings. A failed fetch is
// fatal to the enclosing operation: there is no retry and no
// partial-success mode.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	categoryID     int64
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	categoryID := cfg.CategoryID
	if categoryID <= 0 {
		categoryID = defaultCategoryID
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		categoryID:     categoryID,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		circuitEnabled: cfg.CircuitBreaker.Enabled,
	}
}

// FetchGroupProducts returns the raw product list for one release group.
func (c *Client) FetchGroupProducts(ctx context.Context, groupID int64) ([]catalog.Product, error) {
	if groupID <= 0 {
		return nil, crerr.New("group id must be greater than zero")
	}

	var envelope productsEnvelope
	url := fmt.Sprintf("%s/%d/%d/products", c.baseURL, c.categoryID, groupID)
	if err := c.getJSON(ctx, url, &envelope); err != nil {
		return nil, crerr.Wrapf(err, "fetch products group=%d", groupID)
	}

	if !envelope.Success {
		c.logger.WarnContext(ctx, "tcgcsv products payload reported errors",
			"group_id", groupID,
			"errors", envelope.Errors,
		)
	}

	return envelope.Results, nil
}

// FetchGroupPrices returns every price row for one release group,
// including all finish subtypes.
func (c *Client) FetchGroupPrices(ctx context.Context, groupID int64) ([]catalog.Price, error) {
	if groupID <= 0 {
		return nil, crerr.New("group id must be greater than zero")
	}

	var envelope pricesEnvelope
	url := fmt.Sprintf("%s/%d/%d/prices", c.baseURL, c.categoryID, groupID)
	if err := c.getJSON(ctx, url, &envelope); err != nil {
		return nil, crerr.Wrapf(err, "fetch prices group=%d", groupID)
	}

	if !envelope.Success {
		c.logger.WarnContext(ctx, "tcgcsv prices payload reported errors",
			"group_id", groupID,
			"errors", envelope.Errors,
		)
	}

	return envelope.Results, nil
}

// FetchGroupProductsWithPrices fetches the product and price lists for a
// group concurrently and merges them. If either fetch fails the whole
// operation fails and no partial result is returned.
func (c *Client) FetchGroupProductsWithPrices(ctx context.Context, groupID int64) ([]catalog.ProductWithPrice, error) {
	var (
		products []catalog.Product
		prices   []catalog.Price
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		products, err = c.FetchGroupProducts(ctx, groupID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		prices, err = c.FetchGroupPrices(ctx, groupID)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return catalog.MergeProductsWithPrices(products, prices), nil
}

// FetchAllGroupsProductsWithPrices fetches every known group concurrently
// and concatenates the merged lists in registry order. No cross-group
// deduplication: a product listed in two groups appears twice.
func (c *Client) FetchAllGroupsProductsWithPrices(ctx context.Context) ([]catalog.ProductWithPrice, error) {
	lists := make([][]catalog.ProductWithPrice, len(catalog.Groups))

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	for i, group := range catalog.Groups {
		p.Go(func(ctx context.Context) error {
			items, err := c.FetchGroupProductsWithPrices(ctx, group.ID)
			if err != nil {
				return err
			}
			lists[i] = items
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, list := range lists {
		total += len(list)
	}
	combined := make([]catalog.ProductWithPrice, 0, total)
	for _, list := range lists {
		combined = append(combined, list...)
	}
	return combined, nil
}

func (c *Client) getJSON(ctx context.Context, fullURL string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "tcgcsv circuit breaker rejected request", "state", c.breaker.State())
			return crerr.Wrap(err, "price mirror is temporarily unavailable")
		}
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			switch {
			case reqErr == nil:
				c.breaker.RecordSuccess()
			case isCircuitFailure(reqErr):
				c.breaker.RecordFailure()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return crerr.Newf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrap(err, "decode tcgcsv payload")
	}

	return nil
}

// isCircuitFailure reports whether an error should count against the
// breaker. Cancellations come from the caller or a failed sibling fetch
// in an all-or-fail join, not from the upstream mirror, so they must
// not open the circuit.
func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, crerr.Wrap(err, "send request")
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, crerr.Wrap(err, "read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, crerr.Newf("unexpected status %d", resp.StatusCode)
	}

	return raw, nil
}
