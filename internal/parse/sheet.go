package parse

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/messianicchords/mc/internal/chords"
	"github.com/messianicchords/mc/internal/names"
	"github.com/messianicchords/mc/internal/scan"
	"github.com/zeebo/blake3"
	"golang.org/x/text/unicode/norm"
)

const maxChartSize = 256 * 1024 // larger text files are not charts

// sheetNamespace scopes the name-based UUIDs of sheet IDs.
var sheetNamespace = uuid.MustParse("6f1c2a7e-3d5b-4c8e-9a0f-2b7d1e4c6a93")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SheetID derives the stable ID of a sheet from its path relative to the
// library root.
func SheetID(relPath string) string {
	return uuid.NewSHA1(sheetNamespace, []byte(filepath.ToSlash(relPath))).String()
}

// RelPath returns path relative to the library root, slash-separated and
// NFC-normalised so IDs do not depend on how the filesystem spells names.
func RelPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return norm.NFC.String(filepath.ToSlash(rel))
}

// ParseSheet reads a library file and derives its catalog record. Mtime and
// size are taken from fi as scanned, so they match what the indexer compares.
func ParseSheet(fi scan.FileInfo, root string) (*Sheet, error) {
	data, err := os.ReadFile(fi.Path)
	if err != nil {
		return nil, err
	}

	rel := RelPath(root, fi.Path)

	sum := blake3.Sum256(data)
	sheet := &Sheet{
		ID:       SheetID(rel),
		FilePath: fi.Path,
		RelPath:  rel,
		Format:   fi.Format,
		Hash:     hex.EncodeToString(sum[:]),
		Mtime:    time.Unix(fi.Mtime, 0),
		Size:     fi.Size,
	}

	title, artist := SplitFileName(rel)
	sheet.Song, sheet.HebrewName = names.SplitEnglishHebrew(title)
	sheet.Artist = artist

	if fi.Format == scan.FormatText && len(data) <= maxChartSize {
		text := string(bytes.TrimPrefix(data, utf8BOM))
		sheet.Chords = text
		if key, ok := chords.ParseChart(text).Key(); ok {
			sheet.Key = key.Name()
		}
	}

	return sheet, nil
}

// SplitFileName splits a library path like "Joel Chernoff/Adonai Li אדוני לי - Joel Chernoff.txt"
// into the title and artist. The artist follows the last " - " of the file
// name; without one, the parent folder names the artist.
func SplitFileName(relPath string) (title, artist string) {
	relPath = norm.NFC.String(filepath.ToSlash(relPath))
	dir, base := "", relPath
	if i := strings.LastIndex(relPath, "/"); i >= 0 {
		dir, base = relPath[:i], relPath[i+1:]
	}
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}

	if i := strings.LastIndex(base, " - "); i >= 0 {
		return strings.TrimSpace(base[:i]), strings.TrimSpace(base[i+3:])
	}
	if dir != "" {
		artist = dir
		if j := strings.LastIndex(dir, "/"); j >= 0 {
			artist = dir[j+1:]
		}
	}
	return strings.TrimSpace(base), strings.TrimSpace(artist)
}
