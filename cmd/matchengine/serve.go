package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-matcher/internal/llm"
	"github.com/jonathan/talent-matcher/internal/logger"
	"github.com/jonathan/talent-matcher/internal/recommend"
	"github.com/jonathan/talent-matcher/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Starts an HTTP server exposing the matching and upskilling endpoints.",
	RunE:  runServe,
}

var (
	serveConfigPath string
	servePort       int
	serveJSONLogs   bool
	serveDebug      bool
)

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to JSON config file")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveJSONLogs, "json-logs", true, "Emit JSON-encoded logs")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Port = servePort
	}

	log, err := logger.New(serveJSONLogs, serveDebug || cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck // stdout sync errors are not actionable

	eng, err := buildEngine(context.Background(), cfg)
	if err != nil {
		return err
	}

	recommender := eng.recommender
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey != "" {
		client, err := llm.NewClient(context.Background(), llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close()
		recommender = recommend.New(eng.entries, eng.taxonomy.Label, llm.NewPlanNarrator(client))
	}

	srv := server.New(server.Config{Port: cfg.Port}, eng.orchestrator, recommender, log)
	return srv.Start()
}
