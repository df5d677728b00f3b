package main

import (
	"os"

	"github.com/spf13/cobra"

	"cyan/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cyan",
	Short: "cyan semantic-analysis driver",
	Long:  "cyan drives the semantic-analysis core over chunks and prints its diagnostics.",
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(semaCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("json", false, "emit diagnostics as JSON instead of text")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
