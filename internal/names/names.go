// Package names splits bilingual song titles such as "Adonai Li אדוני לי"
// into their English and Hebrew parts.
package names

import "strings"

const (
	aleph = 0x5D0
	tav   = 0x5EA
)

// IsHebrewLetter reports whether r is one of the 27 Hebrew letters
// (Aleph through Tav, final forms included). Niqqud, cantillation marks and
// Hebrew punctuation are not letters.
func IsHebrewLetter(r rune) bool {
	return r >= aleph && r <= tav
}

// ContainsHebrew reports whether s contains at least one Hebrew letter.
func ContainsHebrew(s string) bool {
	return strings.IndexFunc(s, IsHebrewLetter) >= 0
}

// SplitEnglishHebrew returns the trimmed text before the first Hebrew letter
// and the trimmed text from that letter onward. Titles without Hebrew come
// back whole in english.
func SplitEnglishHebrew(input string) (english, hebrew string) {
	idx := strings.IndexFunc(input, IsHebrewLetter)
	if idx < 0 {
		return strings.TrimSpace(input), ""
	}
	return strings.TrimSpace(input[:idx]), strings.TrimSpace(input[idx:])
}
