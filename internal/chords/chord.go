// Package chords models plain-text chord charts: chord symbols, the
// chord-over-lyric line structure of a chart, and transposition.
//
// Everything in this package is pure and allocation-only, so it is safe
// for concurrent use.
package chords

import "strings"

// Note is a natural note letter, 'A' through 'G'.
type Note byte

func (n Note) valid() bool {
	return n >= 'A' && n <= 'G'
}

// Accidental is the sharp or flat written after a chord root.
type Accidental int

const (
	Natural Accidental = iota
	Sharp
	Flat
)

func (a Accidental) String() string {
	switch a {
	case Sharp:
		return "#"
	case Flat:
		return "b"
	default:
		return ""
	}
}

// Chord is a parsed chord symbol such as "F#m7" or "Bbsus4/F".
type Chord struct {
	Root       Note
	Accidental Accidental
	Minor      bool
	// Suffix is everything after the root, accidental and minor marker,
	// e.g. "7", "sus4", "add9", "/G". It is never transposed.
	Suffix string
}

// suffixKeywords begin with a letter that could otherwise be read as the
// minor marker ("maj7" is not minor + "aj7").
var suffixKeywords = []string{"maj", "sus", "dim", "add"}

// ParseChord reads token as a chord symbol. It reports false when token is
// not chord-shaped; callers treat such text as lyrics.
func ParseChord(token string) (Chord, bool) {
	if token == "" {
		return Chord{}, false
	}

	c := Chord{Root: Note(token[0])}
	if !c.Root.valid() {
		return Chord{}, false
	}
	rest := token[1:]

	if rest != "" {
		switch rest[0] {
		case '#':
			c.Accidental = Sharp
			rest = rest[1:]
		case 'b':
			c.Accidental = Flat
			rest = rest[1:]
		}
	}

	if strings.HasPrefix(rest, "m") && !hasKeywordPrefix(rest) {
		c.Minor = true
		rest = rest[1:]
	}

	for i := 0; i < len(rest); i++ {
		if !isSuffixByte(rest[i]) {
			return Chord{}, false
		}
	}
	c.Suffix = rest
	return c, true
}

func hasKeywordPrefix(s string) bool {
	for _, kw := range suffixKeywords {
		if strings.HasPrefix(s, kw) {
			return true
		}
	}
	return false
}

func isSuffixByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '(', ')', '#', '/', '+', '-':
		return true
	}
	return false
}

// IsChord reports whether token parses as a chord symbol.
func IsChord(token string) bool {
	_, ok := ParseChord(token)
	return ok
}

// Name returns the transposable part of the chord: root, accidental and
// minor marker.
func (c Chord) Name() string {
	var b strings.Builder
	b.WriteByte(byte(c.Root))
	b.WriteString(c.Accidental.String())
	if c.Minor {
		b.WriteByte('m')
	}
	return b.String()
}

// String returns the full chord symbol as written.
func (c Chord) String() string {
	return c.Name() + c.Suffix
}
