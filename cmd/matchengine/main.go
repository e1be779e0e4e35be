// Package main provides the entry point for the talent matching engine CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matchengine",
	Short: "Talent matching engine",
	Long:  "Matches candidate profiles against a catalog of roles and courses using embedding retrieval, six-factor scoring and per-result explanations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
