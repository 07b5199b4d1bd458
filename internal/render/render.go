package render

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/messianicchords/mc/internal/chords"
	"github.com/messianicchords/mc/internal/index"
	"github.com/messianicchords/mc/internal/scan"
)

const (
	colorReset   = "\033[0m"
	colorChord   = "\033[1;34m" // bold blue
	colorTitle   = "\033[1;32m" // bold green
	colorDim     = "\033[2m"
	colorBoldRed = "\033[1;31m" // bold red for keyword highlights
)

// ChartOptions control how a parsed chart is printed.
type ChartOptions struct {
	Transpose int    // half steps, any sign
	Color     bool   // ANSI colours for chords and highlights
	Width     int    // wrap width (0 = no wrap)
	Query     string // search query for keyword highlighting in lyrics
	Warn      chords.WarnFunc
}

type Options struct {
	Transpose int
	Color     bool
	Width     int
	Query     string
	Logger    *slog.Logger
}

func paint(on bool, color, s string) string {
	if !on || s == "" {
		return s
	}
	return color + s + colorReset
}

// highlightKeywords wraps case-insensitive matches of query terms in bold red ANSI codes.
func highlightKeywords(text, query string) string {
	if query == "" {
		return text
	}
	for _, term := range strings.Fields(query) {
		lower := strings.ToLower(term)
		i := 0
		for i < len(text) {
			idx := strings.Index(strings.ToLower(text[i:]), lower)
			if idx < 0 {
				break
			}
			pos := i + idx
			if pos+len(term) > len(text) {
				break
			}
			orig := text[pos : pos+len(term)]
			replacement := colorBoldRed + orig + colorReset
			text = text[:pos] + replacement + text[pos+len(term):]
			i = pos + len(replacement)
		}
	}
	return text
}

// wrapLine breaks a single line into multiple lines that fit within maxWidth
// visible columns, correctly skipping ANSI escape sequences when measuring width.
func wrapLine(line string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{line}
	}

	var result []string
	var cur strings.Builder
	visW := 0

	i := 0
	for i < len(line) {
		// check for ANSI escape sequence: ESC[ ... m
		if i+1 < len(line) && line[i] == '\033' && line[i+1] == '[' {
			j := i + 2
			for j < len(line) && line[j] != 'm' {
				j++
			}
			if j < len(line) {
				j++ // include 'm'
			}
			cur.WriteString(line[i:j])
			i = j
			continue
		}

		r, size := utf8.DecodeRuneInString(line[i:])
		rw := runewidth.RuneWidth(r)

		if visW+rw > maxWidth {
			result = append(result, cur.String())
			cur.Reset()
			visW = 0
		}

		cur.WriteRune(r)
		visW += rw
		i += size
	}

	if cur.Len() > 0 {
		result = append(result, cur.String())
	}

	if len(result) == 0 {
		return []string{""}
	}
	return result
}

// RenderChart transposes chart and lays it out for a terminal. Chord lines
// keep their spacing so chords stay over the right syllables.
func RenderChart(chart chords.Chart, opts ChartOptions) string {
	chart = chords.TransposeChart(chart, opts.Transpose, opts.Warn)

	var out []string
	for _, l := range chart {
		var s string
		if l.Kind == chords.LineChords {
			s = renderChordLine(l, opts.Color)
		} else {
			s = strings.TrimRight(l.String(), "\r")
			if opts.Color {
				s = highlightKeywords(s, opts.Query)
			}
		}
		out = append(out, wrapLine(s, opts.Width)...)
	}
	return strings.Join(out, "\n")
}

func renderChordLine(l chords.Line, color bool) string {
	var b strings.Builder
	for _, sp := range l.Spans {
		v := strings.TrimRight(sp.Value, "\r")
		if sp.Kind != chords.SpanChord || !color {
			b.WriteString(v)
			continue
		}
		tok := sp.Token()
		start := strings.Index(v, tok)
		b.WriteString(v[:start])
		b.WriteString(paint(true, colorChord, tok))
		b.WriteString(v[start+len(tok):])
	}
	return b.String()
}

// RenderSheet renders a stored sheet: a header with titles and key, then the
// chart. Sheets without a plain-text chart point at their file instead.
func RenderSheet(db *index.DB, cache *ChartCache, sheetID string, opts Options) (string, error) {
	sheet, err := db.GetSheet(sheetID)
	if err != nil {
		return "", fmt.Errorf("get sheet: %w", err)
	}
	if sheet == nil {
		return "", fmt.Errorf("sheet not found: %s", sheetID)
	}

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	var b strings.Builder
	b.WriteString(paint(opts.Color, colorTitle, sheet.Title()))
	b.WriteString("\n")
	if sheet.Artist != "" {
		b.WriteString(sheet.Artist)
		b.WriteString("\n")
	}
	if line := keyLine(sheet.Key, opts.Transpose); line != "" {
		b.WriteString(paint(opts.Color, colorDim, line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if sheet.Format != scan.FormatText || sheet.Chords == "" {
		b.WriteString(paint(opts.Color, colorDim, "(no plain-text chart; open "+sheet.FilePath+")"))
		b.WriteString("\n")
		return b.String(), nil
	}

	b.WriteString(RenderChart(cache.Chart(sheet.Chords), ChartOptions{
		Transpose: opts.Transpose,
		Color:     opts.Color,
		Width:     opts.Width,
		Query:     opts.Query,
		Warn: func(token string, err error) {
			log.Warn("chord not transposed", "sheet", sheetID, "token", token, "err", err)
		},
	}))
	return b.String(), nil
}

// keyLine describes the sheet key, e.g. "Key: A (from G, +2)".
func keyLine(key string, transpose int) string {
	if key == "" {
		return ""
	}
	steps := chords.NormalizeSteps(transpose)
	if steps == 0 {
		return "Key: " + key
	}
	c, ok := chords.ParseChord(key)
	if !ok {
		return "Key: " + key
	}
	next, err := c.Transpose(steps)
	if err != nil {
		return "Key: " + key
	}
	return fmt.Sprintf("Key: %s (from %s, %+d)", next, key, transpose%12)
}
