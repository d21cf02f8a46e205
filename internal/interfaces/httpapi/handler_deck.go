package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListDecks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDecks")
	defer span.End()

	list, err := h.deckService.ListDecks(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list decks failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, list)
}

func (h *Handler) ListDecksByTier(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDecksByTier")
	defer span.End()

	tier := strings.TrimSpace(r.PathValue("tier"))
	decks, err := h.deckService.ListDecksByTier(ctx, tier)
	if err != nil {
		h.logger.WarnContext(ctx, "list decks by tier failed", "tier", tier, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, decks)
}

func (h *Handler) GetDeckDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDeckDetail")
	defer span.End()

	slug := strings.TrimSpace(r.PathValue("slug"))
	detail, err := h.deckService.GetDeckDetail(ctx, slug)
	if err != nil {
		h.logger.WarnContext(ctx, "get deck detail failed", "slug", slug, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, detail)
}
