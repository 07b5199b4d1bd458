package main

import (
	"fmt"
	"strings"

	"github.com/messianicchords/mc/internal/names"
	"github.com/spf13/cobra"
)

func splitNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split-name <title>",
		Short: "Split a song title into its English and Hebrew parts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			english, hebrew := names.SplitEnglishHebrew(strings.Join(args, " "))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "English: %s\n", english)
			fmt.Fprintf(out, "Hebrew:  %s\n", hebrew)
			return nil
		},
	}
}
