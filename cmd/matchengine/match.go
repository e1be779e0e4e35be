package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-matcher/internal/match"
	"github.com/jonathan/talent-matcher/internal/observability"
	"github.com/jonathan/talent-matcher/internal/schemas"
	"github.com/jonathan/talent-matcher/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank catalog entries for a candidate profile",
	Long:  "Loads a candidate profile JSON file, runs the matching pipeline against the configured catalog and writes the ranked results as JSON.",
	RunE:  runMatch,
}

var (
	matchConfigPath   string
	matchProfilePath  string
	matchCatalogPaths []string
	matchTaxonomyPath string
	matchWeightsPath  string
	matchOutput       string
	matchCount        int
	matchBasic        bool
	matchVerbose      bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchConfigPath, "config", "c", "", "Path to JSON config file")
	matchCmd.Flags().StringVarP(&matchProfilePath, "profile", "p", "", "Path to candidate profile JSON file (required)")
	matchCmd.Flags().StringSliceVar(&matchCatalogPaths, "catalog", nil, "JSONL catalog files (overrides config)")
	matchCmd.Flags().StringVar(&matchTaxonomyPath, "taxonomy", "", "Skill taxonomy CSV file (overrides config)")
	matchCmd.Flags().StringVar(&matchWeightsPath, "weights", "", "YAML factor weights file (overrides config)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().IntVarP(&matchCount, "count", "n", 0, "Number of results to return")
	matchCmd.Flags().BoolVar(&matchBasic, "basic", false, "Use the legacy similarity-blend pipeline")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a formatted result summary to stderr")

	if err := matchCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(matchConfigPath)
	if err != nil {
		return err
	}
	if len(matchCatalogPaths) > 0 {
		cfg.CatalogPaths = matchCatalogPaths
	}
	if matchTaxonomyPath != "" {
		cfg.TaxonomyPath = matchTaxonomyPath
	}
	if matchWeightsPath != "" {
		cfg.WeightsPath = matchWeightsPath
	}
	if matchCount > 0 {
		cfg.ResultCount = matchCount
	}

	profile, err := loadProfile(matchProfilePath)
	if err != nil {
		return err
	}

	eng, err := buildEngine(context.Background(), cfg)
	if err != nil {
		return err
	}

	opts := match.Options{Count: cfg.ResultCount}
	var output any
	if matchBasic {
		resp, err := eng.orchestrator.MatchBasic(context.Background(), profile, opts)
		if err != nil {
			return fmt.Errorf("basic match failed: %w", err)
		}
		if matchVerbose {
			observability.NewPrinter(os.Stderr).PrintBasicResults(resp)
		}
		output = resp
	} else {
		resp, err := eng.orchestrator.Match(context.Background(), profile, opts)
		if err != nil {
			return fmt.Errorf("match failed: %w", err)
		}
		if matchVerbose {
			observability.NewPrinter(os.Stderr).PrintMatchResults(resp)
		}
		output = resp
	}

	return writeJSON(matchOutput, output)
}

// loadProfile reads a candidate profile, validating it against the profile
// schema when the schema file can be resolved.
func loadProfile(path string) (*types.CandidateProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/candidate_profile.schema.json"); schemaPath != "" {
		schemaContent, err := os.ReadFile(schemaPath)
		if err == nil {
			if err := schemas.ValidateJSONString(string(schemaContent), string(content)); err != nil {
				return nil, fmt.Errorf("profile failed schema validation: %w", err)
			}
		}
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile JSON: %w", err)
	}
	return &profile, nil
}

// writeJSON marshals data with indentation to the given path, or stdout
// when the path is empty.
func writeJSON(path string, data any) error {
	jsonOutput, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}

	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return err
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
