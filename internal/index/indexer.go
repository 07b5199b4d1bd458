package index

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/messianicchords/mc/internal/logging"
	"github.com/messianicchords/mc/internal/parse"
	"github.com/messianicchords/mc/internal/scan"
)

type Stats struct {
	Scanned int
	Updated int
	Skipped int
	Pruned  int
	Errors  int
}

func (s Stats) String() string {
	return fmt.Sprintf("scanned=%d updated=%d skipped=%d pruned=%d errors=%d",
		s.Scanned, s.Updated, s.Skipped, s.Pruned, s.Errors)
}

// Indexer mirrors a library folder into the database.
type Indexer struct {
	DB     *DB
	Root   string
	Logger *slog.Logger
}

func (ix *Indexer) log() *slog.Logger {
	if ix.Logger == nil {
		return logging.Discard()
	}
	return ix.Logger
}

// IndexAll re-parses new and changed sheets and drops sheets whose files
// are gone. A file that fails to parse is counted and skipped.
func (ix *Indexer) IndexAll(ctx context.Context) (Stats, error) {
	var stats Stats
	log := ix.log()

	files, err := scan.ScanLibrary(ix.Root)
	if err != nil {
		return stats, fmt.Errorf("scan: %w", err)
	}
	stats.Scanned = len(files)

	// track which sheets we see, for pruning
	seen := make(map[string]struct{})

	for _, fi := range files {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		id := parse.SheetID(parse.RelPath(ix.Root, fi.Path))
		seen[id] = struct{}{}

		needs, err := ix.needsUpdate(id, fi.Mtime, fi.Size)
		if err != nil {
			stats.Errors++
			log.Warn("check sheet", "path", fi.Path, "err", err)
			continue
		}
		if !needs {
			stats.Skipped++
			continue
		}

		sheet, err := parse.ParseSheet(fi, ix.Root)
		if err != nil {
			stats.Errors++
			log.Warn("parse sheet", "path", fi.Path, "err", err)
			continue
		}

		if err := ix.DB.UpsertSheet(sheet); err != nil {
			stats.Errors++
			log.Warn("index sheet", "path", fi.Path, "err", err)
			continue
		}
		log.Debug("indexed sheet", "id", sheet.ID, "song", sheet.Song, "key", sheet.Key)
		stats.Updated++
	}

	// prune sheets whose files no longer exist, only after a full pass
	pruned, err := ix.prune(seen)
	if err != nil {
		return stats, fmt.Errorf("prune: %w", err)
	}
	stats.Pruned = pruned

	log.Info("index complete", "root", ix.Root, "stats", stats.String())
	return stats, nil
}

func (ix *Indexer) needsUpdate(sheetID string, mtime, size int64) (bool, error) {
	info, err := ix.DB.GetSheetInfo(sheetID)
	if err != nil {
		return false, err
	}
	if info == nil {
		return true, nil // new sheet
	}
	return info.Mtime != mtime || info.Size != size, nil
}

func (ix *Indexer) prune(seen map[string]struct{}) (int, error) {
	all, err := ix.DB.AllSheetIDs()
	if err != nil {
		return 0, err
	}

	pruned := 0
	for id := range all {
		if _, ok := seen[id]; ok {
			continue
		}
		if err := ix.DB.DeleteSheet(id); err != nil {
			return pruned, err
		}
		ix.log().Info("pruned sheet", "id", id)
		pruned++
	}
	return pruned, nil
}
