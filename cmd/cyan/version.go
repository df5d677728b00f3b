package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cyan/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cyan version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Version)
	},
}
