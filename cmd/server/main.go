// Package main is the entry point for the loadout server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "loadout-api",
	Short: "Loadout editor replication server",
	Long:  `Serves the loadout editor's action protocol over websockets: saved-loadout persistence, storage mutations, and the admin loadout pool.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
