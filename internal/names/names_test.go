package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitEnglishHebrew(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		english string
		hebrew  string
	}{
		{"english only", "Adonai Li", "Adonai Li", ""},
		{"bilingual", "Adonai Li אדוני לי", "Adonai Li", "אדוני לי"},
		{"hebrew only", "אדוני לי", "", "אדוני לי"},
		{"empty", "", "", ""},
		{"whitespace only", "  \t ", "", ""},
		{"padded", "  Hineh Ma Tov   הנה מה טוב  ", "Hineh Ma Tov", "הנה מה טוב"},
		{"final letter", "Shalom ם", "Shalom", "ם"},
		{"trailing english after hebrew", "Ose Shalom עושה שלום (live)", "Ose Shalom", "עושה שלום (live)"},
		// U+05B0 (sheva) is a point, not a letter, so it stays on the English side.
		{"niqqud before letter", "Song ְשיר", "Song ְ", "שיר"},
		// Maqaf (U+05BE) is punctuation.
		{"maqaf only", "Kol־Ha", "Kol־Ha", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			english, hebrew := SplitEnglishHebrew(tt.input)
			assert.Equal(t, tt.english, english)
			assert.Equal(t, tt.hebrew, hebrew)
		})
	}
}

func TestIsHebrewLetter(t *testing.T) {
	assert.True(t, IsHebrewLetter('א'))
	assert.True(t, IsHebrewLetter('ת'))
	assert.True(t, IsHebrewLetter('ך'))
	assert.False(t, IsHebrewLetter('׃')) // sof pasuq
	assert.False(t, IsHebrewLetter('׳')) // geresh
	assert.False(t, IsHebrewLetter('A'))
}

func TestContainsHebrew(t *testing.T) {
	assert.True(t, ContainsHebrew("Baruch ברוך"))
	assert.False(t, ContainsHebrew("Baruch"))
	assert.False(t, ContainsHebrew(""))
}
