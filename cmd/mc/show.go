package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/messianicchords/mc/internal/config"
	"github.com/messianicchords/mc/internal/index"
	"github.com/messianicchords/mc/internal/render"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func showCmd() *cobra.Command {
	var transpose, width int
	var noColor bool
	var query string

	cmd := &cobra.Command{
		Use:   "show <sheetId>",
		Short: "Print a chord sheet, optionally transposed",
		Args:  cobra.ExactArgs(1),
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

			cache, err := render.NewChartCache(cfg.CacheSize)
			if err != nil {
				return err
			}

			out, err := render.RenderSheet(db, cache, args[0], render.Options{
				Transpose: transpose,
				Color:     !noColor && term.IsTerminal(int(os.Stdout.Fd())),
				Width:     width,
				Query:     query,
				Logger:    slog.Default(),
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVarP(&transpose, "transpose", "t", 0, "Half steps to transpose (negative = down)")
	cmd.Flags().IntVar(&width, "width", 0, "Wrap lines at this width (0 = no wrap)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable ANSI colours")
	cmd.Flags().StringVar(&query, "query", "", "Search query for keyword highlighting")

	return cmd
}
