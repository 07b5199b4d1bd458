package index

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/messianicchords/mc/internal/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSheet(t *testing.T, root, rel, body string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "db", "mc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestIndexAll(t *testing.T) {
	root := t.TempDir()
	db := openTestDB(t)
	ix := &Indexer{DB: db, Root: root}

	writeSheet(t, root, "Adonai Li אדוני לי - Joel Chernoff.txt", "   Em   C\nAdonai li\n")
	writeSheet(t, root, "Paul Wilbur/Days of Elijah.pdf", "%PDF")

	stats, err := ix.IndexAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{Scanned: 2, Updated: 2}, stats)

	n, err := db.SheetCount()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	charts, err := db.ChartCount()
	require.NoError(t, err)
	assert.Equal(t, 1, charts)

	fts, err := db.FTSCount()
	require.NoError(t, err)
	assert.Equal(t, 2, fts)

	sheet, err := db.GetSheet(parse.SheetID("Adonai Li אדוני לי - Joel Chernoff.txt"))
	require.NoError(t, err)
	require.NotNil(t, sheet)
	assert.Equal(t, "Adonai Li", sheet.Song)
	assert.Equal(t, "אדוני לי", sheet.HebrewName)
	assert.Equal(t, "Joel Chernoff", sheet.Artist)
	assert.Equal(t, "Em", sheet.Key)
	assert.Equal(t, "   Em   C\nAdonai li\n", sheet.Chords)
	assert.Equal(t, "text", sheet.Format)
	assert.False(t, sheet.Mtime.IsZero())

	// second pass: nothing changed
	stats, err = ix.IndexAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{Scanned: 2, Skipped: 2}, stats)
}

func TestIndexAll_UpdateAndPrune(t *testing.T) {
	root := t.TempDir()
	db := openTestDB(t)
	ix := &Indexer{DB: db, Root: root}

	path := writeSheet(t, root, "Hineh Ma Tov.txt", "G\nHineh ma tov\n")
	gone := writeSheet(t, root, "Old Song.txt", "C\nold\n")

	_, err := ix.IndexAll(context.Background())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("Am\nHineh ma tov u'ma nayim\n"), 0o644))
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))
	require.NoError(t, os.Remove(gone))

	stats, err := ix.IndexAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{Scanned: 1, Updated: 1, Pruned: 1}, stats)

	sheet, err := db.GetSheet(parse.SheetID("Hineh Ma Tov.txt"))
	require.NoError(t, err)
	require.NotNil(t, sheet)
	assert.Equal(t, "Am", sheet.Key)

	missing, err := db.GetSheet(parse.SheetID("Old Song.txt"))
	require.NoError(t, err)
	assert.Nil(t, missing)

	fts, err := db.FTSCount()
	require.NoError(t, err)
	assert.Equal(t, 1, fts)
}

func TestIndexAll_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeSheet(t, root, "A.txt", "G")
	ix := &Indexer{DB: openTestDB(t), Root: root}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ix.IndexAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpenDB_SchemaVersionResetsMtime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mc.db")
	db, err := OpenDB(path)
	require.NoError(t, err)

	sheet := &parse.Sheet{ID: "x", FilePath: "/x.txt", RelPath: "x.txt", Format: "text", Mtime: time.Unix(100, 0), Size: 5}
	require.NoError(t, db.UpsertSheet(sheet))
	_, err = db.Raw().Exec("UPDATE meta SET value = 'old' WHERE key = 'schema_version'")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	info, err := db.GetSheetInfo("x")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, SheetInfo{}, *info)
}

func TestStatsString(t *testing.T) {
	s := Stats{Scanned: 3, Updated: 1, Skipped: 2}
	assert.Equal(t, "scanned=3 updated=1 skipped=2 pruned=0 errors=0", s.String())
}
