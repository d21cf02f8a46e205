package tcgcsv

import "github.com/riftwatch/riftwatch/internal/domain/catalog"

// productsEnvelope is the upstream /products payload. Success=false with
// HTTP 200 is a soft failure: the errors list is logged and results are
// consumed as-is.
type productsEnvelope struct {
	TotalItems int               `json:"totalItems"`
	Success    bool              `json:"success"`
	Errors     []any             `json:"errors"`
	Results    []catalog.Product `json:"results"`
}

// pricesEnvelope is the upstream /prices payload.
type pricesEnvelope struct {
	Success bool            `json:"success"`
	Errors  []any           `json:"errors"`
	Results []catalog.Price `json:"results"`
}
