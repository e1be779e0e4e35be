package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-matcher/internal/index"
	"github.com/jonathan/talent-matcher/internal/types"
)

var buildIndexCmd = &cobra.Command{
	Use:   "build-index",
	Short: "Validate the catalog and report index statistics",
	Long:  "Loads and validates the configured catalog source (JSONL files or Postgres), builds the retrieval index in memory and reports entry counts and the embedding dimension.",
	RunE:  runBuildIndex,
}

var (
	buildIndexConfigPath   string
	buildIndexCatalogPaths []string
)

func init() {
	buildIndexCmd.Flags().StringVarP(&buildIndexConfigPath, "config", "c", "", "Path to JSON config file")
	buildIndexCmd.Flags().StringSliceVar(&buildIndexCatalogPaths, "catalog", nil, "JSONL catalog files (overrides config)")

	rootCmd.AddCommand(buildIndexCmd)
}

func runBuildIndex(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(buildIndexConfigPath)
	if err != nil {
		return err
	}
	if len(buildIndexCatalogPaths) > 0 {
		cfg.CatalogPaths = buildIndexCatalogPaths
	}

	entries, err := loadCatalog(context.Background(), cfg)
	if err != nil {
		return err
	}

	idx, err := index.Build(entries)
	if err != nil {
		return fmt.Errorf("failed to build index: %w", err)
	}

	var roles, courses int
	for _, e := range entries {
		switch e.Kind {
		case types.KindRole:
			roles++
		case types.KindCourse:
			courses++
		}
	}

	fmt.Fprintf(os.Stdout, "Index built: %d entries (%d roles, %d courses), embedding dimension %d\n",
		idx.Size(), roles, courses, idx.Dimension())
	return nil
}
