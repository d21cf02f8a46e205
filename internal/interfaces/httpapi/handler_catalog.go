package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/riftwatch/riftwatch/internal/domain/catalog"
	"github.com/riftwatch/riftwatch/internal/usecase"
)

func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGroups")
	defer span.End()

	groups, err := h.catalogService.ListGroups(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list groups failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]groupDTO, 0, len(groups))
	for _, g := range groups {
		items = append(items, groupToDTO(ctx, g))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListGroupProducts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGroupProducts")
	defer span.End()

	rawGroupID := strings.TrimSpace(r.PathValue("groupID"))
	groupID, err := strconv.ParseInt(rawGroupID, 10, 64)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: group id must be numeric, got %q", usecase.ErrInvalidInput, rawGroupID))
		return
	}

	products, err := h.catalogService.FetchGroup(ctx, groupID)
	if err != nil {
		h.logger.WarnContext(ctx, "fetch group products failed", "group_id", groupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, groupProductsDTO{
		GroupID:    groupID,
		TotalItems: len(products),
		Products:   productsToDTOs(ctx, products),
	})
}

type browseProductsRequest struct {
	Query string `validate:"max=200"`
	Page  int    `validate:"min=0,max=100000"`
}

func (h *Handler) BrowseProducts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BrowseProducts")
	defer span.End()

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	page := 1
	if rawPage := strings.TrimSpace(r.URL.Query().Get("page")); rawPage != "" {
		parsed, err := strconv.Atoi(rawPage)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: page must be numeric, got %q", usecase.ErrInvalidInput, rawPage))
			return
		}
		page = parsed
	}
	if err := h.validateRequest(ctx, browseProductsRequest{Query: query, Page: page}); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.catalogService.BrowseProducts(ctx, query, page)
	if err != nil {
		h.logger.WarnContext(ctx, "browse products failed", "query", query, "page", page, "error", err)
		writeError(ctx, w, err)
		return
	}

	payload := productPageDTO{
		Items:       productsToDTOs(ctx, result.Items),
		TotalItems:  result.TotalItems,
		CurrentPage: result.CurrentPage,
		TotalPages:  result.TotalPages,
	}
	if updated, ok := usecase.LatestModified(result.Items); ok {
		payload.UpdatedAt = updated.UTC().Format(time.RFC3339)
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

type groupDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type groupProductsDTO struct {
	GroupID    int64        `json:"groupId"`
	TotalItems int          `json:"totalItems"`
	Products   []productDTO `json:"products"`
}

type productPageDTO struct {
	Items       []productDTO `json:"items"`
	TotalItems  int          `json:"totalItems"`
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
	UpdatedAt   string       `json:"updatedAt,omitempty"`
}

type productDTO struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	CleanName  string    `json:"cleanName"`
	ImageURL   string    `json:"imageUrl"`
	URL        string    `json:"url"`
	GroupID    int64     `json:"groupId"`
	ModifiedOn string    `json:"modifiedOn"`
	Price      *priceDTO `json:"price,omitempty"`
}

type priceDTO struct {
	Market      *float64 `json:"market"`
	Mid         *float64 `json:"mid"`
	Low         *float64 `json:"low"`
	High        *float64 `json:"high"`
	DirectLow   *float64 `json:"directLow"`
	SubTypeName string   `json:"subTypeName"`
}

func groupToDTO(ctx context.Context, g catalog.Group) groupDTO {
	ctx, span := startSpan(ctx, "httpapi.groupToDTO")
	defer span.End()

	return groupDTO{
		ID:   g.ID,
		Name: g.Name,
	}
}

func productsToDTOs(ctx context.Context, items []catalog.ProductWithPrice) []productDTO {
	dtos := make([]productDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, productToDTO(ctx, item))
	}
	return dtos
}

func productToDTO(ctx context.Context, item catalog.ProductWithPrice) productDTO {
	ctx, span := startSpan(ctx, "httpapi.productToDTO")
	defer span.End()

	dto := productDTO{
		ID:         item.ProductID,
		Name:       item.Name,
		CleanName:  item.CleanName,
		ImageURL:   item.ImageURL,
		URL:        item.URL,
		GroupID:    item.GroupID,
		ModifiedOn: item.ModifiedOn,
	}
	if item.Price != nil {
		dto.Price = &priceDTO{
			Market:      item.Price.MarketPrice,
			Mid:         item.Price.MidPrice,
			Low:         item.Price.LowPrice,
			High:        item.Price.HighPrice,
			DirectLow:   item.Price.DirectLowPrice,
			SubTypeName: item.Price.SubTypeName,
		}
	}
	return dto
}
