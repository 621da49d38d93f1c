package main

import (
	"context"
	"fmt"

	"github.com/jonathan/franchise-advisor/internal/config"
	"github.com/jonathan/franchise-advisor/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the intake conversation over REST: session creation, chat turns (with SSE streaming), transcripts, and the listing catalog.`,
	RunE:  runServe,
}

var (
	serveConfigPath  string
	servePort        int
	serveDataset     string
	serveDatabaseURL string
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to PORT env var, then 8080)")
	serveCmd.Flags().StringVarP(&serveDataset, "dataset", "d", "", "Path to the franchise listings CSV (defaults to ADVISOR_DATASET env var)")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(serveConfigPath, config.Config{
		Port:        servePort,
		Dataset:     serveDataset,
		DatabaseURL: serveDatabaseURL,
	})
	if err != nil {
		return err
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	listings, cleanup, err := loadListings(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	client, err := buildClient(ctx, cfg)
	if err != nil {
		return err
	}
	if client != nil {
		defer func() { _ = client.Close() }()
	}

	engine := buildEngine(client, listings, cfg.TopK)

	srv, err := server.New(server.Config{Port: cfg.Port}, engine, listings)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
