package usecase

import (
	"strconv"
	"strings"

	"github.com/riftwatch/riftwatch/internal/domain/catalog"
)

// PageSize is the fixed number of products per catalog page.
const PageSize = 24

// CatalogPage is one visible page of search results plus the metadata a
// caller needs to render "showing X-Y of Z" and prev/next controls.
type CatalogPage struct {
	Items       []catalog.ProductWithPrice `json:"items"`
	TotalItems  int                        `json:"totalItems"`
	CurrentPage int                        `json:"currentPage"`
	TotalPages  int                        `json:"totalPages"`
}

// SearchCatalog filters products by a case-insensitive substring query
// and slices out the requested page. The query matches any of: raw name,
// clean name, representative price subtype, or the decimal product id.
// An empty query matches everything. The page is clamped to
// [1, totalPages]; totalPages is never below 1 even with no matches.
func SearchCatalog(items []catalog.ProductWithPrice, query string, page int) CatalogPage {
	q := strings.ToLower(strings.TrimSpace(query))

	matched := items
	if q != "" {
		matched = make([]catalog.ProductWithPrice, 0, len(items))
		for _, item := range items {
			if productMatchesQuery(item, q) {
				matched = append(matched, item)
			}
		}
	}

	totalItems := len(matched)
	totalPages := (totalItems + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	current := page
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	start := (current - 1) * PageSize
	end := start + PageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return CatalogPage{
		Items:       matched[start:end],
		TotalItems:  totalItems,
		CurrentPage: current,
		TotalPages:  totalPages,
	}
}

func productMatchesQuery(item catalog.ProductWithPrice, q string) bool {
	subType := ""
	if item.Price != nil {
		subType = strings.ToLower(item.Price.SubTypeName)
	}
	return strings.Contains(strings.ToLower(item.Name), q) ||
		strings.Contains(strings.ToLower(item.CleanName), q) ||
		strings.Contains(subType, q) ||
		strings.Contains(strconv.FormatInt(item.ProductID, 10), q)
}

// CatalogView holds interactive browse state for callers that keep a
// query and page across interactions. Changing the query always snaps
// the view back to the first page.
type CatalogView struct {
	query string
	page  int
}

func NewCatalogView() *CatalogView {
	return &CatalogView{page: 1}
}

func (v *CatalogView) SetQuery(query string) {
	if query == v.query {
		return
	}
	v.query = query
	v.page = 1
}

func (v *CatalogView) SetPage(page int) {
	v.page = page
}

func (v *CatalogView) Query() string { return v.query }

// Apply runs the current query and page against the product list.
func (v *CatalogView) Apply(items []catalog.ProductWithPrice) CatalogPage {
	return SearchCatalog(items, v.query, v.page)
}
