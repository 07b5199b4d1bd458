package chords

import (
	"errors"
	"fmt"
)

// ErrUnknownRoot is returned when a chord's root has no entry in the
// chromatic scales (Cb, Fb, E#, B#). The chord is left as written.
var ErrUnknownRoot = errors.New("chords: root not in chromatic scale")

// Scales start at A and never change after init.
var (
	majorFlat  = [12]string{"A", "Bb", "B", "C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab"}
	majorSharp = [12]string{"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}
	minorFlat  = minorOf(majorFlat)
	minorSharp = minorOf(majorSharp)
)

func minorOf(major [12]string) [12]string {
	var minor [12]string
	for i, n := range major {
		minor[i] = n + "m"
	}
	return minor
}

// scaleFor picks the spelling used when transposing c. Only chords written
// with a sharp are spelled with sharps; naturals and flats use flats.
func scaleFor(c Chord) *[12]string {
	switch {
	case c.Accidental == Sharp && c.Minor:
		return &minorSharp
	case c.Accidental == Sharp:
		return &majorSharp
	case c.Minor:
		return &minorFlat
	default:
		return &majorFlat
	}
}

func indexOf(scale *[12]string, name string) int {
	for i, n := range scale {
		if n == name {
			return i
		}
	}
	return -1
}

// NormalizeSteps folds any half-step offset into [0, 11].
func NormalizeSteps(halfSteps int) int {
	n := halfSteps % 12
	if n < 0 {
		n += 12
	}
	return n
}

// Semitone returns the pitch class of the chord root, 0 for A up to 11 for
// G#/Ab.
func Semitone(c Chord) (int, bool) {
	i := indexOf(scaleFor(c), c.Name())
	return i, i >= 0
}

// Transpose shifts the chord by halfSteps semitones, up for positive values
// and down for negative ones. The suffix is carried over unchanged.
func (c Chord) Transpose(halfSteps int) (Chord, error) {
	steps := NormalizeSteps(halfSteps)
	if steps == 0 {
		return c, nil
	}

	scale := scaleFor(c)
	i := indexOf(scale, c.Name())
	if i < 0 {
		return c, fmt.Errorf("transpose %q: %w", c.String(), ErrUnknownRoot)
	}

	next, ok := ParseChord(scale[(i+steps)%12])
	if !ok {
		return c, fmt.Errorf("transpose %q: %w", c.String(), ErrUnknownRoot)
	}
	next.Suffix = c.Suffix
	return next, nil
}
