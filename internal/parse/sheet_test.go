package parse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/messianicchords/mc/internal/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFileName(t *testing.T) {
	tests := []struct {
		rel    string
		title  string
		artist string
	}{
		{"Adonai Li אדוני לי - Joel Chernoff.txt", "Adonai Li אדוני לי", "Joel Chernoff"},
		{"Paul Wilbur/Days of Elijah.pdf", "Days of Elijah", "Paul Wilbur"},
		{"a/b/Baruch Hashem - Live - Marty Goetz.docx", "Baruch Hashem - Live", "Marty Goetz"},
		{"Hineh Ma Tov.txt", "Hineh Ma Tov", ""},
		{"Cafe\u0301 - Band.txt", "Caf\u00e9", "Band"},
	}
	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			title, artist := SplitFileName(tt.rel)
			assert.Equal(t, tt.title, title)
			assert.Equal(t, tt.artist, artist)
		})
	}
}

func scanned(t *testing.T, path, format string) scan.FileInfo {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	return scan.FileInfo{Path: path, Format: format, Mtime: info.ModTime().Unix(), Size: info.Size()}
}

func TestParseSheet_Text(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "Adonai Li אדוני לי - Joel Chernoff.txt")
	body := "\xEF\xBB\xBFIntro\n   Em7     C\nAdonai li\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	sheet, err := ParseSheet(scanned(t, path, scan.FormatText), root)
	require.NoError(t, err)

	assert.Equal(t, "Adonai Li", sheet.Song)
	assert.Equal(t, "אדוני לי", sheet.HebrewName)
	assert.Equal(t, "Joel Chernoff", sheet.Artist)
	assert.Equal(t, "Em", sheet.Key)
	assert.Equal(t, "Intro\n   Em7     C\nAdonai li\n", sheet.Chords)
	assert.Equal(t, "Adonai Li אדוני לי - Joel Chernoff.txt", sheet.RelPath)
	assert.Equal(t, int64(len(body)), sheet.Size)
	assert.Len(t, sheet.Hash, 64)
	assert.Equal(t, "Adonai Li אדוני לי", sheet.Title())

	_, err = uuid.Parse(sheet.ID)
	require.NoError(t, err)
	assert.Equal(t, SheetID(sheet.RelPath), sheet.ID)
}

func TestParseSheet_Document(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "Paul Wilbur")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "Days of Elijah.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 G D"), 0o644))

	sheet, err := ParseSheet(scanned(t, path, scan.FormatDocument), root)
	require.NoError(t, err)
	assert.Equal(t, "Days of Elijah", sheet.Song)
	assert.Equal(t, "Paul Wilbur", sheet.Artist)
	assert.Empty(t, sheet.Chords)
	assert.Empty(t, sheet.Key)
	assert.Equal(t, "Paul Wilbur/Days of Elijah.pdf", sheet.RelPath)
}

func TestParseSheet_UsesScannedStat(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "Shalom.txt")
	require.NoError(t, os.WriteFile(path, []byte("G\nShalom\n"), 0o644))

	fi := scan.FileInfo{Path: path, Format: scan.FormatText, Mtime: 1700000000, Size: 42}
	sheet, err := ParseSheet(fi, root)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), sheet.Mtime.Unix())
	assert.Equal(t, int64(42), sheet.Size)
}

func TestSheetID_Stable(t *testing.T) {
	assert.Equal(t, SheetID("a/b.txt"), SheetID("a/b.txt"))
	assert.NotEqual(t, SheetID("a/b.txt"), SheetID("a/c.txt"))
}

func TestSheetTitle(t *testing.T) {
	assert.Equal(t, "שלום", (&Sheet{HebrewName: "שלום"}).Title())
	assert.Equal(t, "Shalom", (&Sheet{Song: "Shalom"}).Title())
}
