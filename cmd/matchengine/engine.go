package main

import (
	"context"
	"fmt"

	"github.com/jonathan/talent-matcher/internal/catalog"
	"github.com/jonathan/talent-matcher/internal/config"
	"github.com/jonathan/talent-matcher/internal/index"
	"github.com/jonathan/talent-matcher/internal/match"
	"github.com/jonathan/talent-matcher/internal/recommend"
	"github.com/jonathan/talent-matcher/internal/scoring"
	"github.com/jonathan/talent-matcher/internal/taxonomy"
	"github.com/jonathan/talent-matcher/internal/types"
)

// engine bundles the collaborators the commands share.
type engine struct {
	taxonomy     *taxonomy.Taxonomy
	orchestrator *match.Orchestrator
	recommender  *recommend.Recommender
	entries      []types.CatalogEntry
}

// resolveConfig loads the optional config file and merges in defaults.
func resolveConfig(configPath string) (config.Config, error) {
	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded.MergeWithDefaults(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// catalogStore is the slice of catalog.Store the commands need.
type catalogStore interface {
	LoadEntries(ctx context.Context) ([]types.CatalogEntry, error)
	Close()
}

// openCatalogStore dials Postgres; tests swap it out.
var openCatalogStore = func(ctx context.Context, databaseURL string) (catalogStore, error) {
	return catalog.Connect(ctx, databaseURL)
}

// loadCatalog loads and validates catalog entries. A configured database
// takes precedence over JSONL files.
func loadCatalog(ctx context.Context, cfg config.Config) ([]types.CatalogEntry, error) {
	if cfg.DatabaseURL != "" {
		store, err := openCatalogStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.LoadEntries(ctx)
	}
	if len(cfg.CatalogPaths) == 0 {
		return nil, fmt.Errorf("no catalog source configured; set database_url, catalog_paths or pass --catalog")
	}
	loader, err := catalog.NewLoader()
	if err != nil {
		return nil, err
	}
	return loader.LoadFiles(cfg.CatalogPaths...)
}

// buildEngine assembles the orchestrator and recommender from configuration.
func buildEngine(ctx context.Context, cfg config.Config) (*engine, error) {
	if cfg.TaxonomyPath == "" {
		return nil, fmt.Errorf("no taxonomy file configured; set taxonomy_path or pass --taxonomy")
	}
	tax, err := taxonomy.Load(cfg.TaxonomyPath)
	if err != nil {
		return nil, err
	}

	entries, err := loadCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}

	idx, err := index.Build(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to build index: %w", err)
	}

	weights := types.DefaultWeights()
	if cfg.WeightsPath != "" {
		weights, err = scoring.LoadWeights(cfg.WeightsPath)
		if err != nil {
			return nil, err
		}
	}

	orchestrator := match.New(idx, taxonomy.NewNormalizer(tax), weights, match.Config{
		RetrievalWidth: cfg.RetrievalWidth,
		MaxParallel:    cfg.MaxParallel,
	}, nil)

	return &engine{
		taxonomy:     tax,
		orchestrator: orchestrator,
		recommender:  recommend.New(entries, tax.Label, nil),
		entries:      entries,
	}, nil
}
