// Package main provides the entry point for the Franchise Advisor CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "advisor_agent",
	Short: "Franchise Advisor conversational intake agent",
	Long:  "Franchise Advisor runs a staged intake conversation that builds an investor profile, filters the franchise listing dataset against it, and composes a grounded recommendation, via terminal chat or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
