package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/riftwatch/riftwatch/external/tcgcsv"
	"github.com/riftwatch/riftwatch/internal/config"
	"github.com/riftwatch/riftwatch/internal/domain/catalog"
	"github.com/riftwatch/riftwatch/internal/domain/deck"
	"github.com/riftwatch/riftwatch/internal/infrastructure/deckdata"
	"github.com/riftwatch/riftwatch/internal/infrastructure/repository/memory"
	"github.com/riftwatch/riftwatch/internal/interfaces/httpapi"
	"github.com/riftwatch/riftwatch/internal/platform/cache"
	"github.com/riftwatch/riftwatch/internal/platform/logging"
	"github.com/riftwatch/riftwatch/internal/platform/resilience"
	"github.com/riftwatch/riftwatch/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	decks, err := loadDecks(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("load deck dataset: %w", err)
	}
	deckRepo := memory.NewDeckRepository(decks)

	client := tcgcsv.NewClient(tcgcsv.ClientConfig{
		HTTPClient: &http.Client{Timeout: cfg.TCGCSVTimeout},
		BaseURL:    cfg.TCGCSVBaseURL,
		CategoryID: cfg.TCGCSVCategoryID,
		Timeout:    cfg.TCGCSVTimeout,
		Logger:     logging.NewJSON(cfg.LogLevel),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.TCGCSVCircuitEnabled,
			FailureThreshold: cfg.TCGCSVCircuitFailureCount,
			OpenTimeout:      cfg.TCGCSVCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.TCGCSVCircuitHalfOpenMaxReq,
		},
	})

	var store *cache.Store[[]catalog.ProductWithPrice]
	if cfg.CacheEnabled {
		store = cache.NewStore[[]catalog.ProductWithPrice](cfg.CacheTTL)
	}

	catalogSvc := usecase.NewCatalogService(client, store, logger)
	deckSvc := usecase.NewDeckService(deckRepo, catalogSvc, logger)

	handler := httpapi.NewHandler(catalogSvc, deckSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: 5 * time.Second,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func loadDecks(cfg config.Config, logger *slog.Logger) ([]deck.Deck, error) {
	if cfg.DecksFile == "" {
		return memory.SeedDecks(), nil
	}

	decks, err := deckdata.LoadFile(cfg.DecksFile)
	if err != nil {
		return nil, err
	}
	logger.Info("deck dataset loaded from file", "path", cfg.DecksFile, "decks", len(decks))

	return decks, nil
}
