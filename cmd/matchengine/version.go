package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the engine version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Fprintf(os.Stdout, "matchengine %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
