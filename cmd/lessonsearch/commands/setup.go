// ABOUTME: Shared service construction for CLI commands
// ABOUTME: Assembles backend, embedder, and catalog from configuration
package commands

import (
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"

	"github.com/coursekit/lessonsearch/internal/catalog"
	"github.com/coursekit/lessonsearch/internal/charm"
	"github.com/coursekit/lessonsearch/internal/config"
	"github.com/coursekit/lessonsearch/internal/embed"
	"github.com/coursekit/lessonsearch/internal/search"
	"github.com/coursekit/lessonsearch/internal/storage"
	"github.com/coursekit/lessonsearch/internal/storage/sqlite"
)

// buildService assembles the search service from configuration. The
// returned cleanup drains pending log writes and closes the backend.
func buildService() (*search.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, nil, err
	}

	embedder, err := buildEmbedder(cfg)
	if err != nil {
		return nil, nil, err
	}

	var (
		chunks   storage.ChunkRepository
		queryLog storage.QueryLogRepository
		closer   func()
	)

	switch cfg.Backend {
	case config.BackendMemory:
		store := storage.NewMemoryStore()
		chunks, queryLog = store, store
		closer = func() {}

	case config.BackendSQLite:
		path := cfg.DBPath
		if path == "" {
			path = sqlite.DefaultDBPath()
		}
		db, err := sqlite.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		chunks = sqlite.NewChunkStore(db)
		queryLog = sqlite.NewQueryLogStore(db)
		closer = func() { _ = db.Close() }

	case config.BackendCharm:
		client, err := charm.NewClient(&charm.Config{
			Host:     cfg.CharmHost,
			DBName:   cfg.CharmDBName,
			AutoSync: cfg.AutoSync,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("opening charm kv: %w", err)
		}
		store := storage.NewCharmStore(client)
		chunks, queryLog = store, store
		closer = func() { _ = client.Close() }

	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	service := search.NewService(chunks, queryLog, embedder, cat)
	cleanup := func() {
		service.Flush()
		closer()
	}

	return service, cleanup, nil
}

// loadCatalog reads the catalog fixture file when one is configured.
func loadCatalog(cfg *config.Config) (search.LessonDirectory, error) {
	if cfg.CatalogPath == "" {
		return catalog.Empty(), nil
	}
	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return cat, nil
}

// buildEmbedder picks the OpenAI embedder when a key is configured, else
// the mock. Either way vectors are cached by content hash.
func buildEmbedder(cfg *config.Config) (embed.Embedder, error) {
	if cfg.OpenAIKey == "" {
		if verbose {
			log.Println("OPENAI_API_KEY not set - using mock embedder (scores are not semantic)")
		}
		return embed.NewCachedEmbedder(embed.NewMockEmbedder()), nil
	}

	oc := embed.DefaultOpenAIConfig(cfg.OpenAIKey)
	oc.Model = openai.EmbeddingModel(cfg.EmbeddingModel)
	oc.Dimension = cfg.VectorDimension
	oc.Timeout = cfg.Timeout
	oc.MaxRetries = cfg.MaxRetries
	oc.RetryDelay = cfg.RetryDelay

	embedder, err := embed.NewOpenAIEmbedderWithConfig(oc)
	if err != nil {
		return nil, fmt.Errorf("initializing OpenAI embedder: %w", err)
	}
	return embed.NewCachedEmbedder(embedder), nil
}
