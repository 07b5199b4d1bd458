package main

import (
	"github.com/messianicchords/mc/internal/config"
	"github.com/messianicchords/mc/internal/index"
	"github.com/messianicchords/mc/internal/open"
	"github.com/spf13/cobra"
)

func openCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <sheetId>",
		Short: "Open the original sheet file in $EDITOR or the default viewer",
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

			return open.OpenSheet(db, args[0])
		},
	}
}
