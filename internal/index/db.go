package index

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/messianicchords/mc/internal/parse"
	_ "modernc.org/sqlite"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA cache_size = -64000;
PRAGMA busy_timeout = 5000;

CREATE TABLE IF NOT EXISTS sheets (
    sheet_id    TEXT PRIMARY KEY,
    file_path   TEXT NOT NULL,
    rel_path    TEXT NOT NULL,
    format      TEXT NOT NULL,
    song        TEXT NOT NULL DEFAULT '',
    hebrew_name TEXT NOT NULL DEFAULT '',
    artist      TEXT NOT NULL DEFAULT '',
    song_key    TEXT NOT NULL DEFAULT '',
    chords      TEXT NOT NULL DEFAULT '',
    hash        TEXT NOT NULL DEFAULT '',
    updated_at  TEXT NOT NULL DEFAULT '',
    mtime       INTEGER NOT NULL DEFAULT 0,
    size        INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS sheets_artist ON sheets(artist);

CREATE VIRTUAL TABLE IF NOT EXISTS sheets_fts USING fts5(
    song,
    hebrew_name,
    artist,
    chords,
    content=sheets,
    content_rowid=rowid,
    tokenize='unicode61'
);

-- triggers to keep FTS in sync
CREATE TRIGGER IF NOT EXISTS sheets_ai AFTER INSERT ON sheets BEGIN
    INSERT INTO sheets_fts(rowid, song, hebrew_name, artist, chords)
    VALUES (new.rowid, new.song, new.hebrew_name, new.artist, new.chords);
END;

CREATE TRIGGER IF NOT EXISTS sheets_ad AFTER DELETE ON sheets BEGIN
    INSERT INTO sheets_fts(sheets_fts, rowid, song, hebrew_name, artist, chords)
    VALUES ('delete', old.rowid, old.song, old.hebrew_name, old.artist, old.chords);
END;

CREATE TRIGGER IF NOT EXISTS sheets_au AFTER UPDATE ON sheets BEGIN
    INSERT INTO sheets_fts(sheets_fts, rowid, song, hebrew_name, artist, chords)
    VALUES ('delete', old.rowid, old.song, old.hebrew_name, old.artist, old.chords);
    INSERT INTO sheets_fts(rowid, song, hebrew_name, artist, chords)
    VALUES (new.rowid, new.song, new.hebrew_name, new.artist, new.chords);
END;

CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT);
`

const timeLayout = "2006-01-02T15:04:05Z"

type DB struct {
	db *sql.DB
}

func OpenDB(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	d := &DB{db: db}
	if err := d.migrateSchemaVersion(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return d, nil
}

// schemaVersion should be bumped whenever sheet parsing changes (name
// splitting, key detection) to force a full re-index.
const schemaVersion = "1"

func (d *DB) migrateSchemaVersion() error {
	var ver string
	err := d.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&ver)
	if err == nil && ver == schemaVersion {
		return nil
	}
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	// force re-index by resetting all sheet mtime/size to 0
	if _, err := d.db.Exec("UPDATE sheets SET mtime = 0, size = 0"); err != nil {
		return err
	}
	_, err = d.db.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)", schemaVersion)
	return err
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) Raw() *sql.DB {
	return d.db
}

type SheetInfo struct {
	Mtime int64
	Size  int64
}

func (d *DB) GetSheetInfo(sheetID string) (*SheetInfo, error) {
	var info SheetInfo
	err := d.db.QueryRow(
		"SELECT mtime, size FROM sheets WHERE sheet_id = ?",
		sheetID,
	).Scan(&info.Mtime, &info.Size)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (d *DB) AllSheetIDs() (map[string]struct{}, error) {
	rows, err := d.db.Query("SELECT sheet_id FROM sheets")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}

func (d *DB) DeleteSheet(sheetID string) error {
	_, err := d.db.Exec("DELETE FROM sheets WHERE sheet_id = ?", sheetID)
	return err
}

// UpsertSheet replaces the stored row for s.ID.
func (d *DB) UpsertSheet(s *parse.Sheet) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM sheets WHERE sheet_id = ?", s.ID); err != nil {
		return err
	}
	_, err = tx.Exec(
		`INSERT INTO sheets (sheet_id, file_path, rel_path, format, song, hebrew_name, artist, song_key, chords, hash, updated_at, mtime, size)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID,
		s.FilePath,
		s.RelPath,
		s.Format,
		s.Song,
		s.HebrewName,
		s.Artist,
		s.Key,
		s.Chords,
		s.Hash,
		s.Mtime.UTC().Format(timeLayout),
		s.Mtime.Unix(),
		s.Size,
	)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (d *DB) SheetCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM sheets").Scan(&n)
	return n, err
}

// ChartCount counts sheets that carry a plain-text chart.
func (d *DB) ChartCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM sheets WHERE chords != ''").Scan(&n)
	return n, err
}

func (d *DB) FTSCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM sheets_fts").Scan(&n)
	return n, err
}

const sheetColumns = "sheet_id, file_path, rel_path, format, song, hebrew_name, artist, song_key, chords, hash, updated_at, size"

// GetSheet returns the sheet with the given ID, or nil when there is none.
func (d *DB) GetSheet(sheetID string) (*parse.Sheet, error) {
	row := d.db.QueryRow("SELECT "+sheetColumns+" FROM sheets WHERE sheet_id = ?", sheetID)
	s, err := scanSheet(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSheet(row rowScanner) (*parse.Sheet, error) {
	var s parse.Sheet
	var updated string
	if err := row.Scan(
		&s.ID, &s.FilePath, &s.RelPath, &s.Format,
		&s.Song, &s.HebrewName, &s.Artist, &s.Key,
		&s.Chords, &s.Hash, &updated, &s.Size,
	); err != nil {
		return nil, err
	}
	if t, err := time.Parse(timeLayout, updated); err == nil {
		s.Mtime = t
	}
	return &s, nil
}
