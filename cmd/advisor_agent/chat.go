package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/franchise-advisor/internal/compose"
	"github.com/jonathan/franchise-advisor/internal/config"
	"github.com/jonathan/franchise-advisor/internal/dialogue"
	"github.com/jonathan/franchise-advisor/internal/matching"
	"github.com/jonathan/franchise-advisor/internal/observability"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Run an interactive advisor conversation in the terminal",
	Long: `Starts the staged intake conversation on stdin/stdout: interests, liquid
capital, time commitment, and size preference, ending with a recommendation
drawn from the franchise dataset. Type "exit" or "quit" to leave early.`,
	RunE: runChat,
}

var (
	chatConfigPath  string
	chatDataset     string
	chatAPIKey      string
	chatModel       string
	chatTopK        int
	chatDatabaseURL string
	chatVerbose     bool
)

func init() {
	chatCmd.Flags().StringVar(&chatConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	chatCmd.Flags().StringVarP(&chatDataset, "dataset", "d", "", "Path to the franchise listings CSV (defaults to ADVISOR_DATASET env var)")
	chatCmd.Flags().StringVar(&chatAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	chatCmd.Flags().StringVar(&chatModel, "model", "", "Model override for response composition")
	chatCmd.Flags().IntVar(&chatTopK, "top-k", 0, "Maximum franchises per recommendation")
	chatCmd.Flags().StringVar(&chatDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	chatCmd.Flags().BoolVarP(&chatVerbose, "verbose", "v", false, "Print the profile and filter trace as the conversation progresses")

	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(chatConfigPath, config.Config{
		Dataset:     chatDataset,
		APIKey:      chatAPIKey,
		Model:       chatModel,
		TopK:        chatTopK,
		DatabaseURL: chatDatabaseURL,
		Verbose:     chatVerbose,
	})
	if err != nil {
		return err
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
	printer := observability.NewPrinter(os.Stdout)

	st := dialogue.NewState()
	fmt.Println(engine.Greet(st))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "exit" || text == "quit" {
			break
		}

		result := engine.HandleTurn(ctx, st, text)
		for _, msg := range result.Messages {
			fmt.Println()
			fmt.Println(msg)
		}

		if cfg.Verbose {
			printer.PrintProfile(&st.Profile)
		}

		if st.Stage.Terminal() {
			if cfg.Verbose && len(result.Messages) > 0 {
				matched, traces := matching.FilterWithTrace(&st.Profile, listings, cfg.TopK)
				printer.PrintFilterTrace(traces, len(listings))
				printer.PrintMatches(matched)
				printer.PrintGrounding(compose.Grounded(result.Messages[len(result.Messages)-1], matched))
			}
			break
		}
	}
	return scanner.Err()
}
