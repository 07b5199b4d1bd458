package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/messianicchords/mc/internal/config"
	"github.com/messianicchords/mc/internal/index"
	"github.com/messianicchords/mc/internal/render"
	"github.com/messianicchords/mc/internal/search"
	"github.com/messianicchords/mc/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	sColorReset   = "\033[0m"
	sColorBoldRed = "\033[1;31m"
	sColorKey     = "\033[1;33m"
	sColorDim     = "\033[2m"
)

func colorizeSnippet(snippet string) string {
	snippet = strings.ReplaceAll(snippet, ">>>", sColorBoldRed)
	snippet = strings.ReplaceAll(snippet, "<<<", sColorReset)
	return snippet
}

// tsvField flattens s into a single TSV column.
func tsvField(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	if s == "" {
		return "-"
	}
	return s
}

func searchCmd() *cobra.Command {
	var artist, format string
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Full-text search across song titles, artists and chord charts",
		Long: `Search indexed chord sheets using FTS5. Queries containing Hebrew
letters match titles by substring instead. Output is TSV for fzf integration:
  sheetId, key, title, artist, snippet

Recommended shell function (add to .zshrc):
  mcf() {
    mc search "$*" | fzf \
      --ansi \
      --delimiter='\t' --with-nth=2.. \
      --preview 'mc show {1} --width $FZF_PREVIEW_COLUMNS' \
      --preview-window=right:60%:wrap \
      --bind 'enter:execute(mc open {1})'
  }`,
		Args: cobra.ExactArgs(1),
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

			opts := search.Options{
				Artist: artist,
				Format: format,
				Limit:  limit,
			}

			// Interactive TUI when stdout is a terminal; TSV output for pipes
			if term.IsTerminal(int(os.Stdout.Fd())) {
				cache, err := render.NewChartCache(cfg.CacheSize)
				if err != nil {
					return err
				}
				return tui.Run(db, cache, args[0], opts)
			}

			opts.Query = args[0]
			results, err := search.Search(db, opts)
			if err != nil {
				return err
			}

			if len(results) == 0 {
				fmt.Fprintln(os.Stderr, "No results found.")
				return nil
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				// first field stays plain for fzf {1}
				fmt.Fprintf(out, "%s\t%s%s%s\t%s\t%s%s%s\t%s\n",
					r.SheetID,
					sColorKey, tsvField(r.Key), sColorReset,
					tsvField(r.Title()),
					sColorDim, tsvField(r.Artist), sColorReset,
					colorizeSnippet(tsvField(r.Snippet)),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&artist, "artist", "", "Filter by artist")
	cmd.Flags().StringVar(&format, "format", "", "Filter by format (text/document)")
	cmd.Flags().IntVar(&limit, "limit", 100, "Max results")

	return cmd
}
