package parse

import "time"

// Sheet is one chord sheet of the library, ready to be indexed.
type Sheet struct {
	ID         string
	FilePath   string
	RelPath    string // slash-separated, relative to the library root
	Format     string // scan.FormatText or scan.FormatDocument
	Song       string // English title
	HebrewName string
	Artist     string
	Key        string // first chord of a text chart, e.g. "Em"
	Chords     string // chart text; empty for documents
	Hash       string // blake3 of the file contents, hex
	Mtime      time.Time
	Size       int64
}

// Title returns the display title, "Song שיר" style.
func (s *Sheet) Title() string {
	switch {
	case s.Song == "":
		return s.HebrewName
	case s.HebrewName == "":
		return s.Song
	default:
		return s.Song + " " + s.HebrewName
	}
}
