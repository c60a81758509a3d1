package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dexboard/internal/orchestrators/ingest"
	"github.com/KirkDiggler/dexboard/internal/pkg/idgen"
)

var (
	fetchFirstID     int
	fetchLastID      int
	fetchConcurrency int
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Crawl the creature API and replace the snapshot",
	Long: `Fetch every creature in the id range, clean the records and overwrite the
configured snapshot. The previous snapshot is kept if the crawl fails.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().IntVar(&fetchFirstID, "first", 1, "First creature id")
	fetchCmd.Flags().IntVar(&fetchLastID, "last", 0, "Last creature id (defaults to api.max_id)")
	fetchCmd.Flags().IntVar(&fetchConcurrency, "concurrency", 0, "Creatures fetched in parallel (defaults to api.concurrency)")
}

func runFetch(_ *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, cleanup, err := newAPIClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create api client: %w", err)
	}
	defer cleanup()

	repo, err := openRecords(cfg)
	if err != nil {
		return fmt.Errorf("failed to open snapshot: %w", err)
	}

	concurrency := cfg.API.Concurrency
	if fetchConcurrency > 0 {
		concurrency = fetchConcurrency
	}
	lastID := cfg.API.MaxID
	if fetchLastID > 0 {
		lastID = fetchLastID
	}

	orch, err := ingest.NewOrchestrator(&ingest.Config{
		Client:      client,
		Records:     repo,
		IDGenerator: idgen.NewUUID("run"),
		Concurrency: concurrency,
	})
	if err != nil {
		return fmt.Errorf("failed to create ingest orchestrator: %w", err)
	}

	out, err := orch.Run(ctx, &ingest.RunInput{
		FirstID: fetchFirstID,
		LastID:  lastID,
	})
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	fmt.Printf("Wrote %d creatures to %s (run %s)\n", out.Written, cfg.Data.Path, out.RunID)
	for _, skip := range out.Skipped {
		fmt.Printf("  skipped #%d: %s\n", skip.ID, skip.Reason)
	}

	return nil
}
