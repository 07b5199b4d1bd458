package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/messianicchords/mc/internal/config"
	"github.com/messianicchords/mc/internal/index"
	"github.com/spf13/cobra"
)

func indexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Scan the library and index chord sheets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			db, err := index.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			fmt.Fprintf(os.Stderr, "Scanning %s...\n", cfg.LibraryRoot)

			ix := &index.Indexer{DB: db, Root: cfg.LibraryRoot, Logger: slog.Default()}
			stats, err := ix.IndexAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("index: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Done. %s\n", stats)
			return nil
		},
	}
}

// refreshIndex brings the index up to date before a query. Failures are
// logged and the existing index is used as is.
func refreshIndex(ctx context.Context, db *index.DB, cfg *config.Config) {
	ix := &index.Indexer{DB: db, Root: cfg.LibraryRoot, Logger: slog.Default()}
	if _, err := ix.IndexAll(ctx); err != nil {
		slog.Warn("auto-index failed", "root", cfg.LibraryRoot, "error", err)
	}
}
