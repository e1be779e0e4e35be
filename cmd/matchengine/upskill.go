package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-matcher/internal/llm"
	"github.com/jonathan/talent-matcher/internal/observability"
	"github.com/jonathan/talent-matcher/internal/recommend"
)

var upskillCmd = &cobra.Command{
	Use:   "upskill",
	Short: "Build an upskilling plan for skill gaps",
	Long:  "Builds a per-skill learning plan from the course catalog for the given gap skills, with practice tasks and a weekly time estimate.",
	RunE:  runUpskill,
}

var (
	upskillConfigPath   string
	upskillCatalogPaths []string
	upskillTaxonomyPath string
	upskillGaps         []string
	upskillTargetRole   string
	upskillOutput       string
	upskillNarrative    bool
	upskillVerbose      bool
)

func init() {
	upskillCmd.Flags().StringVarP(&upskillConfigPath, "config", "c", "", "Path to JSON config file")
	upskillCmd.Flags().StringSliceVar(&upskillCatalogPaths, "catalog", nil, "JSONL catalog files (overrides config)")
	upskillCmd.Flags().StringVar(&upskillTaxonomyPath, "taxonomy", "", "Skill taxonomy CSV file (overrides config)")
	upskillCmd.Flags().StringSliceVarP(&upskillGaps, "gaps", "g", nil, "Canonical skill IDs to plan for (required)")
	upskillCmd.Flags().StringVar(&upskillTargetRole, "target-role", "", "Target role for the plan")
	upskillCmd.Flags().StringVarP(&upskillOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	upskillCmd.Flags().BoolVar(&upskillNarrative, "narrative", false, "Generate an LLM narrative (requires GEMINI_API_KEY)")
	upskillCmd.Flags().BoolVarP(&upskillVerbose, "verbose", "v", false, "Print a formatted plan summary to stderr")

	if err := upskillCmd.MarkFlagRequired("gaps"); err != nil {
		panic(fmt.Sprintf("failed to mark gaps flag as required: %v", err))
	}

	rootCmd.AddCommand(upskillCmd)
}

func runUpskill(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(upskillConfigPath)
	if err != nil {
		return err
	}
	if len(upskillCatalogPaths) > 0 {
		cfg.CatalogPaths = upskillCatalogPaths
	}
	if upskillTaxonomyPath != "" {
		cfg.TaxonomyPath = upskillTaxonomyPath
	}

	ctx := context.Background()
	eng, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}

	recommender := eng.recommender
	if upskillNarrative {
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for --narrative")
		}

		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close()

		recommender = recommend.New(eng.entries, eng.taxonomy.Label, llm.NewPlanNarrator(client))
	}

	plan, err := recommender.BuildPlan(ctx, upskillGaps, upskillTargetRole)
	if err != nil {
		return fmt.Errorf("failed to build upskilling plan: %w", err)
	}

	if upskillVerbose {
		observability.NewPrinter(os.Stderr).PrintUpskillPlan(&plan)
	}
	return writeJSON(upskillOutput, plan)
}
