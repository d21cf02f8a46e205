package catalog

// PresaleInfo marks a product that is not yet released.
type PresaleInfo struct {
	IsPresale  bool    `json:"isPresale"`
	ReleasedOn *string `json:"releasedOn"`
	Note       *string `json:"note"`
}

// Product is one sealed item as listed by the upstream price mirror.
// Immutable once fetched; it lives only for one fetch cycle.
type Product struct {
	ProductID  int64       `json:"productId"`
	Name       string      `json:"name"`
	CleanName  string      `json:"cleanName"`
	ImageURL   string      `json:"imageUrl"`
	CategoryID int64       `json:"categoryId"`
	GroupID    int64       `json:"groupId"`
	URL        string      `json:"url"`
	ModifiedOn string      `json:"modifiedOn"`
	ImageCount int         `json:"imageCount"`
	Presale    PresaleInfo `json:"presaleInfo"`
}

// Price is one quotation line for a product variant. ProductID is not
// unique across price rows: finishes (subtypes) share it.
type Price struct {
	ProductID      int64    `json:"productId"`
	LowPrice       *float64 `json:"lowPrice"`
	MidPrice       *float64 `json:"midPrice"`
	HighPrice      *float64 `json:"highPrice"`
	MarketPrice    *float64 `json:"marketPrice"`
	DirectLowPrice *float64 `json:"directLowPrice"`
	SubTypeName    string   `json:"subTypeName"`
}

// SubTypeNormal is the default finish. When several price rows share a
// product id, the Normal row wins; otherwise the first row seen is kept.
const SubTypeNormal = "Normal"

// ProductWithPrice pairs a product with its representative price, if any.
type ProductWithPrice struct {
	Product
	Price *Price `json:"price,omitempty"`
}

// Group is one release set in the upstream catalog.
type Group struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Groups is the fixed registry of known Riftbound release sets, in the
// order combined fetches concatenate them.
var Groups = []Group{
	{ID: 24343, Name: "Riftbound Promotional Cards"},
	{ID: 24344, Name: "Origins"},
	{ID: 24439, Name: "Origins: Proving Grounds"},
	{ID: 24502, Name: "Riftbound Worlds Bundle 2025"},
	{ID: 24519, Name: "Spiritforged"},
}

// GroupByID looks a group up in the registry.
func GroupByID(id int64) (Group, bool) {
	for _, g := range Groups {
		if g.ID == id {
			return g, true
		}
	}
	return Group{}, false
}

// BuildPriceMap picks one representative price per product id out of the
// fetched price rows. The Normal subtype is preferred over any other;
// when no Normal row exists the first row in fetch order is kept.
func BuildPriceMap(prices []Price) map[int64]Price {
	priceByID := make(map[int64]Price, len(prices))
	for _, p := range prices {
		existing, ok := priceByID[p.ProductID]
		if !ok {
			priceByID[p.ProductID] = p
			continue
		}
		if p.SubTypeName == SubTypeNormal && existing.SubTypeName != SubTypeNormal {
			priceByID[p.ProductID] = p
		}
	}
	return priceByID
}

// MergeProductsWithPrices pairs every product with its representative
// price. Products without any price row are kept with a nil price.
func MergeProductsWithPrices(products []Product, prices []Price) []ProductWithPrice {
	priceByID := BuildPriceMap(prices)

	out := make([]ProductWithPrice, 0, len(products))
	for _, product := range products {
		item := ProductWithPrice{Product: product}
		if price, ok := priceByID[product.ProductID]; ok {
			p := price
			item.Price = &p
		}
		out = append(out, item)
	}
	return out
}
