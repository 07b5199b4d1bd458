package search

import (
	"database/sql"
	"fmt"
	"strings"
	"unicode"

	"github.com/messianicchords/mc/internal/index"
	"github.com/messianicchords/mc/internal/names"
)

type Result struct {
	SheetID    string
	Song       string
	HebrewName string
	Artist     string
	Key        string
	Format     string
	UpdatedAt  string
	Snippet    string
	Rank       float64
}

// Title returns "Song שיר", or whichever half exists.
func (r Result) Title() string {
	switch {
	case r.Song == "":
		return r.HebrewName
	case r.HebrewName == "":
		return r.Song
	default:
		return r.Song + " " + r.HebrewName
	}
}

type Options struct {
	Query  string
	Artist string // "" = all
	Format string // "" = all, "text", "document"
	Limit  int
}

// makeSnippet extracts a snippet around the first occurrence of query in text.
func makeSnippet(text, query string, contextChars int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	qRunes := []rune(query)

	lower := strings.ToLower(text)
	idx := strings.Index(lower, strings.ToLower(query))
	if query == "" || idx < 0 || len(lower) != len(text) {
		// no match (or case folding moved byte offsets), return head
		if len(runes) > contextChars*2 {
			return string(runes[:contextChars*2]) + "..."
		}
		return text
	}
	// find rune position of idx
	runePos := len([]rune(text[:idx]))
	start := runePos - contextChars
	if start < 0 {
		start = 0
	}
	end := runePos + len(qRunes) + contextChars
	if end > len(runes) {
		end = len(runes)
	}
	prefix := ""
	suffix := ""
	if start > 0 {
		prefix = "..."
	}
	if end < len(runes) {
		suffix = "..."
	}
	// wrap the matched part with markers
	snippet := string(runes[start:runePos]) +
		">>>" + string(runes[runePos:runePos+len(qRunes)]) + "<<<" +
		string(runes[runePos+len(qRunes):end])
	return prefix + snippet + suffix
}

// Search finds sheets matching opts.Query. Queries containing Hebrew use
// substring matching because FTS tokens do not split Hebrew prefixes
// (ו, ה, ב) from the word.
func Search(db *index.DB, opts Options) ([]Result, error) {
	if opts.Limit <= 0 {
		opts.Limit = 100
	}
	if strings.TrimSpace(opts.Query) == "" {
		return ListAll(db, opts)
	}
	if names.ContainsHebrew(opts.Query) {
		return searchLike(db, opts)
	}
	return searchFTS(db, opts)
}

// filters returns the WHERE conditions shared by every query.
func filters(opts Options) ([]string, []any) {
	var conditions []string
	var args []any

	// artist filter
	if opts.Artist != "" {
		conditions = append(conditions, "s.artist = ? COLLATE NOCASE")
		args = append(args, opts.Artist)
	}

	// format filter
	if opts.Format != "" {
		conditions = append(conditions, "s.format = ?")
		args = append(args, opts.Format)
	}

	return conditions, args
}

func searchFTS(db *index.DB, opts Options) ([]Result, error) {
	match := ftsQuery(opts.Query)
	if match == "" {
		return nil, nil
	}
	conditions, args := filters(opts)

	// FTS match
	conditions = append([]string{"sheets_fts MATCH ?"}, conditions...)
	args = append([]any{match}, args...)

	where := strings.Join(conditions, " AND ")

	// Title columns weigh more than the chart body.
	query := fmt.Sprintf(`
		SELECT
			s.sheet_id,
			s.song,
			s.hebrew_name,
			s.artist,
			s.song_key,
			s.format,
			s.updated_at,
			snippet(sheets_fts, -1, '>>>', '<<<', '...', 12) AS snip,
			bm25(sheets_fts, 10.0, 10.0, 5.0, 1.0) AS rank
		FROM sheets_fts
		JOIN sheets s ON sheets_fts.rowid = s.rowid
		WHERE %s
		ORDER BY rank
		LIMIT ?
	`, where)

	args = append(args, opts.Limit)

	rows, err := db.Raw().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("search query: %w", err)
	}
	defer rows.Close()

	return scanResults(rows, true)
}

// ftsQuery quotes each term and adds prefix matching to the last one, so
// user input like `days of eli` never trips the FTS5 query syntax.
// Terms without letters or digits are dropped.
func ftsQuery(q string) string {
	var terms []string
	for _, t := range strings.Fields(q) {
		if !strings.ContainsFunc(t, isWordRune) {
			continue
		}
		terms = append(terms, `"`+strings.ReplaceAll(t, `"`, `""`)+`"`)
	}
	if len(terms) == 0 {
		return ""
	}
	terms[len(terms)-1] += "*"
	return strings.Join(terms, " ")
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// escapeLike makes LIKE wildcards in s match literally under ESCAPE '\'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func searchLike(db *index.DB, opts Options) ([]Result, error) {
	conditions, args := filters(opts)

	// LIKE match for Hebrew substring search
	like := "%" + escapeLike(opts.Query) + "%"
	conditions = append([]string{`(s.song LIKE ? ESCAPE '\' OR s.hebrew_name LIKE ? ESCAPE '\' OR s.artist LIKE ? ESCAPE '\' OR s.chords LIKE ? ESCAPE '\')`}, conditions...)
	args = append([]any{like, like, like, like}, args...)

	where := strings.Join(conditions, " AND ")

	query := fmt.Sprintf(`
		SELECT
			s.sheet_id,
			s.song,
			s.hebrew_name,
			s.artist,
			s.song_key,
			s.format,
			s.updated_at,
			s.chords
		FROM sheets s
		WHERE %s
		ORDER BY (s.hebrew_name LIKE ? ESCAPE '\') DESC, s.song
		LIMIT ?
	`, where)

	args = append(args, like, opts.Limit)

	rows, err := db.Raw().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("search query: %w", err)
	}
	defer rows.Close()

	results, err := scanResults(rows, false)
	if err != nil {
		return nil, err
	}
	for i := range results {
		// scanResults left the full chart in Snippet
		results[i].Snippet = makeSnippet(results[i].Snippet, opts.Query, 30)
	}
	return results, nil
}

// ListAll returns every sheet passing the filters, ordered by title.
// opts.Query is ignored.
func ListAll(db *index.DB, opts Options) ([]Result, error) {
	conditions, args := filters(opts)
	where := "1 = 1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT
			s.sheet_id,
			s.song,
			s.hebrew_name,
			s.artist,
			s.song_key,
			s.format,
			s.updated_at,
			s.chords
		FROM sheets s
		WHERE %s
		ORDER BY CASE WHEN s.song = '' THEN s.hebrew_name ELSE s.song END COLLATE NOCASE, s.artist
	`, where)

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := db.Raw().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list query: %w", err)
	}
	defer rows.Close()

	results, err := scanResults(rows, false)
	if err != nil {
		return nil, err
	}
	for i := range results {
		results[i].Snippet = makeSnippet(results[i].Snippet, "", 30)
	}
	return results, nil
}

func scanResults(rows *sql.Rows, ranked bool) ([]Result, error) {
	var results []Result
	for rows.Next() {
		var r Result
		dest := []any{
			&r.SheetID, &r.Song, &r.HebrewName, &r.Artist,
			&r.Key, &r.Format, &r.UpdatedAt, &r.Snippet,
		}
		if ranked {
			dest = append(dest, &r.Rank)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
