package chords

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// LineKind tells chord lines apart from lyric lines.
type LineKind int

const (
	LineLyrics LineKind = iota
	LineChords
)

func (k LineKind) String() string {
	if k == LineChords {
		return "chords"
	}
	return "lyrics"
}

// SpanKind tells chord spans apart from any other text.
type SpanKind int

const (
	SpanOther SpanKind = iota
	SpanChord
)

func (k SpanKind) String() string {
	if k == SpanChord {
		return "chord"
	}
	return "other"
}

// Span is a piece of a line. Value keeps the whitespace around the token so
// that chords stay aligned over the lyrics.
type Span struct {
	Value string
	Kind  SpanKind
}

// Token returns the span text without its surrounding whitespace.
func (s Span) Token() string {
	return strings.TrimSpace(s.Value)
}

// Line is one line of a chart.
type Line struct {
	Kind  LineKind
	Spans []Span
}

// String reassembles the line exactly as it appeared in the source text.
func (l Line) String() string {
	if len(l.Spans) == 1 {
		return l.Spans[0].Value
	}
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Value)
	}
	return b.String()
}

// Chart is a parsed chord chart.
type Chart []Line

// String reassembles the chart text; ParseChart(s).String() == s.
func (c Chart) String() string {
	lines := make([]string, len(c))
	for i, l := range c {
		lines[i] = l.String()
	}
	return strings.Join(lines, "\n")
}

// Key returns the first chord of the chart, which by convention is the key
// the sheet is written in.
func (c Chart) Key() (Chord, bool) {
	for _, l := range c {
		if l.Kind != LineChords {
			continue
		}
		for _, s := range l.Spans {
			if s.Kind != SpanChord {
				continue
			}
			if ch, ok := ParseChord(s.Token()); ok {
				return ch, true
			}
		}
	}
	return Chord{}, false
}

// ChordCount returns the number of chord spans in the chart.
func (c Chart) ChordCount() int {
	n := 0
	for _, l := range c {
		for _, s := range l.Spans {
			if s.Kind == SpanChord {
				n++
			}
		}
	}
	return n
}

// ParseChart splits raw chart text into lines and classifies each one. An
// empty string yields an empty chart.
func ParseChart(raw string) Chart {
	if raw == "" {
		return nil
	}
	lines := strings.Split(raw, "\n")
	chart := make(Chart, len(lines))
	for i, l := range lines {
		chart[i] = ParseLine(l)
	}
	return chart
}

type token struct {
	lead string
	text string
}

// ParseLine classifies a single line (without its line break). A line is a
// chord line when chord tokens make up more than half of its non-space
// characters; "Amazing grace" has a chord-shaped first word but stays a
// lyric line.
func ParseLine(line string) Line {
	toks, trailing := tokenize(line)

	var total, chordRunes int
	isChord := make([]bool, len(toks))
	for i, t := range toks {
		n := utf8.RuneCountInString(t.text)
		if IsChord(t.text) {
			isChord[i] = true
			chordRunes += n
		}
		if isChord[i] || !isMarkup(t.text) {
			total += n
		}
	}

	if chordRunes == 0 || 2*chordRunes <= total {
		return Line{Kind: LineLyrics, Spans: []Span{{Value: line, Kind: SpanOther}}}
	}

	spans := make([]Span, len(toks))
	for i, t := range toks {
		kind := SpanOther
		if isChord[i] {
			kind = SpanChord
		}
		spans[i] = Span{Value: t.lead + t.text, Kind: kind}
	}
	spans[len(spans)-1].Value += trailing
	return Line{Kind: LineChords, Spans: spans}
}

// annotations are chart markers that sit on chord lines without being chords.
var annotations = map[string]bool{
	"N.C.": true,
	"N.C":  true,
	"NC":   true,
}

// isMarkup reports whether tok is notation rather than text: bar lines,
// repeat signs, slashes and dashes, or a known annotation.
func isMarkup(tok string) bool {
	if annotations[strings.ToUpper(tok)] {
		return true
	}
	return strings.IndexFunc(tok, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) < 0
}

// tokenize cuts line into whitespace-separated tokens, each carrying the
// whitespace in front of it. Whitespace after the last token is returned
// separately.
func tokenize(line string) (toks []token, trailing string) {
	i := 0
	for i < len(line) {
		start := i
		i = skip(line, i, true)
		if i == len(line) {
			return toks, line[start:]
		}
		wsEnd := i
		i = skip(line, i, false)
		toks = append(toks, token{lead: line[start:wsEnd], text: line[wsEnd:i]})
	}
	return toks, ""
}

// skip advances from i over runes whose IsSpace equals space.
func skip(s string, i int, space bool) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) != space {
			break
		}
		i += size
	}
	return i
}
