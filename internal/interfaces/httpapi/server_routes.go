package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/groups", handler.ListGroups)
	mux.HandleFunc("GET /v1/groups/{groupID}/products", handler.ListGroupProducts)
	mux.HandleFunc("GET /v1/products", handler.BrowseProducts)
}

func registerDeckRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/decks", handler.ListDecks)
	mux.HandleFunc("GET /v1/decks/tiers/{tier}", handler.ListDecksByTier)
	mux.HandleFunc("GET /v1/decks/{slug}", handler.GetDeckDetail)
}
