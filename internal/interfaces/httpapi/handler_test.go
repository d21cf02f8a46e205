package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riftwatch/riftwatch/internal/domain/catalog"
	"github.com/riftwatch/riftwatch/internal/infrastructure/repository/memory"
	"github.com/riftwatch/riftwatch/internal/platform/cache"
	"github.com/riftwatch/riftwatch/internal/usecase"
)

type fakeProductSource struct {
	items []catalog.ProductWithPrice
	err   error
}

func (f *fakeProductSource) FetchGroupProductsWithPrices(context.Context, int64) ([]catalog.ProductWithPrice, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeProductSource) FetchAllGroupsProductsWithPrices(context.Context) ([]catalog.ProductWithPrice, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func newTestRouter(t *testing.T, source usecase.ProductSource) http.Handler {
	t.Helper()

	catalogSvc := usecase.NewCatalogService(source, cache.NewStore[[]catalog.ProductWithPrice](time.Minute), nil)
	deckSvc := usecase.NewDeckService(memory.NewDeckRepository(memory.SeedDecks()), catalogSvc, nil)
	handler := NewHandler(catalogSvc, deckSvc, nil)

	return NewRouter(handler, nil, []string{"*"})
}

func catalogFixture() []catalog.ProductWithPrice {
	market := 9.99
	items := make([]catalog.ProductWithPrice, 0, 30)
	items = append(items, catalog.ProductWithPrice{
		Product: catalog.Product{
			ProductID: 615873,
			Name:      "Kai'Sa - Daughter of the Void",
			CleanName: "Kaisa Daughter of the Void",
			GroupID:   24344,
			ImageURL:  "https://product-images.tcgplayer.com/615873.jpg",
			URL:       "https://www.tcgplayer.com/product/615873",
		},
		Price: &catalog.Price{ProductID: 615873, MarketPrice: &market, SubTypeName: catalog.SubTypeNormal},
	})
	for i := int64(0); i < 29; i++ {
		items = append(items, catalog.ProductWithPrice{
			Product: catalog.Product{
				ProductID: 700000 + i,
				Name:      "Origins Filler Card",
				CleanName: "Origins Filler Card",
				GroupID:   24344,
			},
		})
	}
	return items
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t, &fakeProductSource{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_ListGroups(t *testing.T) {
	router := newTestRouter(t, &fakeProductSource{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/groups", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	data, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("expected data array, got %T", body["data"])
	}
	if len(data) != 5 {
		t.Fatalf("unexpected group count: %d", len(data))
	}
}

func TestRouter_ListGroupProducts(t *testing.T) {
	router := newTestRouter(t, &fakeProductSource{items: catalogFixture()})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/groups/24344/products", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %T", body["data"])
	}
	if got, _ := data["totalItems"].(float64); int(got) != 30 {
		t.Fatalf("unexpected totalItems: %v", data["totalItems"])
	}
}

func TestRouter_ListGroupProducts_UnknownGroup(t *testing.T) {
	router := newTestRouter(t, &fakeProductSource{items: catalogFixture()})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/groups/11111/products", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRouter_ListGroupProducts_BadGroupID(t *testing.T) {
	router := newTestRouter(t, &fakeProductSource{items: catalogFixture()})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/groups/origins/products", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRouter_BrowseProducts_SearchAndPaginate(t *testing.T) {
	router := newTestRouter(t, &fakeProductSource{items: catalogFixture()})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/products?q=filler&page=2", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	data := body["data"].(map[string]any)
	if got := int(data["totalItems"].(float64)); got != 29 {
		t.Fatalf("unexpected totalItems: %d", got)
	}
	if got := int(data["currentPage"].(float64)); got != 2 {
		t.Fatalf("unexpected currentPage: %d", got)
	}
	if got := int(data["totalPages"].(float64)); got != 2 {
		t.Fatalf("unexpected totalPages: %d", got)
	}
	items := data["items"].([]any)
	if len(items) != 5 {
		t.Fatalf("unexpected page size: %d", len(items))
	}
}

func TestRouter_BrowseProducts_BadPage(t *testing.T) {
	router := newTestRouter(t, &fakeProductSource{items: catalogFixture()})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/products?page=two", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRouter_BrowseProducts_UpstreamDown(t *testing.T) {
	router := newTestRouter(t, &fakeProductSource{err: errors.New("connection refused")})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/products", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestRouter_ListDecks(t *testing.T) {
	router := newTestRouter(t, &fakeProductSource{items: catalogFixture()})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/decks", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	data := body["data"].(map[string]any)
	sections, ok := data["sections"].([]any)
	if !ok {
		t.Fatalf("expected sections array, got %T", data["sections"])
	}
	if len(sections) != 4 {
		t.Fatalf("unexpected section count: %d", len(sections))
	}
	if data["metaDescription"].(string) == "" {
		t.Fatal("expected a meta description")
	}
}

func TestRouter_ListDecksByTier(t *testing.T) {
	router := newTestRouter(t, &fakeProductSource{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/decks/tiers/s", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	data := body["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("unexpected S tier deck count: %d", len(data))
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/decks/tiers/x", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown tier, got %d", rec.Code)
	}
}

func TestRouter_GetDeckDetail(t *testing.T) {
	router := newTestRouter(t, &fakeProductSource{items: catalogFixture()})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/decks/kaisa", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	data := body["data"].(map[string]any)
	deckObj := data["deck"].(map[string]any)
	if deckObj["slug"].(string) != "kaisa" {
		t.Fatalf("unexpected deck: %v", deckObj["slug"])
	}
	if got := int(data["mainDeckCount"].(float64)); got != 58 {
		t.Fatalf("unexpected main deck count: %d", got)
	}
	cards := data["cards"].([]any)
	if len(cards) != 22 {
		t.Fatalf("unexpected card row count: %d", len(cards))
	}
}

func TestRouter_GetDeckDetail_NotFound(t *testing.T) {
	router := newTestRouter(t, &fakeProductSource{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/decks/nonexistent", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
