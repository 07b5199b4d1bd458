package main

import (
	"github.com/messianicchords/mc/internal/config"
	"github.com/messianicchords/mc/internal/index"
	"github.com/messianicchords/mc/internal/render"
	"github.com/messianicchords/mc/internal/search"
	"github.com/messianicchords/mc/internal/tui"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var artist, format string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Browse all sheets sorted by title",
		Long:  `Opens a TUI panel showing all indexed sheets sorted by title. Type to filter by title, artist or chart text.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := index.OpenDB(cfg.DBPath)
			if err != nil {
				return err
			}
			defer db.Close()

			refreshIndex(cmd.Context(), db, cfg)

			cache, err := render.NewChartCache(cfg.CacheSize)
			if err != nil {
				return err
			}

			opts := search.Options{
				Artist: artist,
				Format: format,
				Limit:  limit,
			}

			return tui.RunList(db, cache, opts)
		},
	}

	cmd.Flags().StringVar(&artist, "artist", "", "Filter by artist")
	cmd.Flags().StringVar(&format, "format", "", "Filter by format (text/document)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results (0 = no limit)")

	return cmd
}
