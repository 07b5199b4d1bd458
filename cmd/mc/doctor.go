package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/messianicchords/mc/internal/config"
	"github.com/messianicchords/mc/internal/index"
	"github.com/messianicchords/mc/internal/scan"
	"github.com/spf13/cobra"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify library root, DB, FTS5, and show stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Library ===")
			checkDir("Root", cfg.LibraryRoot)

			fmt.Println("\n=== File Scan ===")
			files, err := scan.ScanLibrary(cfg.LibraryRoot)
			if err != nil {
				fmt.Printf("  scan error: %v\n", err)
			} else {
				textCount, docCount := 0, 0
				for _, f := range files {
					if f.Format == scan.FormatText {
						textCount++
					} else {
						docCount++
					}
				}
				fmt.Printf("  Text charts: %d\n", textCount)
				fmt.Printf("  Documents:   %d\n", docCount)
			}

			fmt.Println("\n=== Database ===")
			fmt.Printf("  Path: %s\n", cfg.DBPath)
			if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
				fmt.Println("  Status: NOT FOUND (run 'mc index' first)")
				return nil
			}

			db, err := index.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			sheetCount, err := db.SheetCount()
			if err != nil {
				return fmt.Errorf("count sheets: %w", err)
			}

			chartCount, err := db.ChartCount()
			if err != nil {
				return fmt.Errorf("count charts: %w", err)
			}

			fmt.Printf("  Sheets: %d\n", sheetCount)
			fmt.Printf("  Charts: %d\n", chartCount)

			fmt.Println("\n=== FTS5 ===")
			ftsCount, err := db.FTSCount()
			if err != nil {
				fmt.Printf("  FTS5 error: %v\n", err)
			} else {
				fmt.Printf("  FTS5 entries: %d\n", ftsCount)
				if ftsCount == sheetCount {
					fmt.Println("  Status: OK (synced)")
				} else {
					fmt.Printf("  Status: MISMATCH (sheets=%d, fts=%d)\n", sheetCount, ftsCount)
				}
			}

			if info, err := os.Stat(cfg.DBPath); err == nil {
				fmt.Printf("\n=== DB Size: %s ===\n", humanize.Bytes(uint64(info.Size())))
			}

			return nil
		},
	}
}

func checkDir(name, path string) {
	if info, err := os.Stat(path); err != nil {
		fmt.Printf("  %s: %s (NOT FOUND)\n", name, path)
	} else if !info.IsDir() {
		fmt.Printf("  %s: %s (NOT A DIRECTORY)\n", name, path)
	} else {
		fmt.Printf("  %s: %s (OK)\n", name, path)
	}
}
