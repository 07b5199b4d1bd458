package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/messianicchords/mc/internal/search"
)

// linesPerItem is the number of terminal lines each result occupies.
const linesPerItem = 2

// renderList renders the left panel: search results list with scrolling.
func (m model) renderList(width, height int) string {
	if len(m.results) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No sheets")
		return empty
	}

	var lines []string
	for i, r := range m.results {
		if i < m.listOffset {
			continue
		}
		if len(lines)+linesPerItem > height {
			break
		}
		rows := formatResultLine(r, width, i == m.cursor)
		lines = append(lines, rows...)
	}

	// Pad remaining lines
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// formatResultLine formats a single sheet as two lines:
//
//	line 1: [>] key  title
//	line 2:    artist  snippet (dimmed)
func formatResultLine(r search.Result, width int, selected bool) []string {
	key := r.Key
	if key == "" {
		key = "-"
	}

	// Truncate title to fit width: leave room for prefix "> " and the key column
	title := strings.ReplaceAll(r.Title(), "\n", " ")
	titleMax := width - 2 - 5
	if titleMax < 0 {
		titleMax = 0
	}
	if runewidth.StringWidth(title) > titleMax {
		title = runewidth.Truncate(title, titleMax, "")
	}

	line1 := fmt.Sprintf("%s %s", styleKey.Render(key), title)
	if selected {
		line1 = styleListSelected.Render("> ") + line1
	} else {
		line1 = "  " + line1
	}

	// Line 2: artist and snippet (dimmed, indented)
	artist := r.Artist
	if artist == "" && r.Format != "text" {
		artist = "(" + r.Format + ")"
	}
	snippet := strings.Join(strings.Fields(r.Snippet), " ")
	snippet = strings.ReplaceAll(snippet, ">>>", "")
	snippet = strings.ReplaceAll(snippet, "<<<", "")
	rest := width - 4 // indent
	if rest < 0 {
		rest = 0
	}
	if runewidth.StringWidth(artist) > rest {
		artist = runewidth.Truncate(artist, rest, "")
	}
	snippetMax := rest - runewidth.StringWidth(artist) - 2
	if snippetMax < 0 {
		snippetMax = 0
	}
	if runewidth.StringWidth(snippet) > snippetMax {
		snippet = runewidth.Truncate(snippet, snippetMax, "")
	}
	line2 := "    " + styleArtist.Render(artist)
	if snippet != "" {
		line2 += "  " + lipgloss.NewStyle().Foreground(colorDim).Render(snippet)
	}

	return []string{line1, line2}
}

// adjustListScroll keeps the cursor visible within the list viewport.
func (m *model) adjustListScroll(listHeight int) {
	visibleItems := listHeight / linesPerItem
	if visibleItems < 1 {
		visibleItems = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+visibleItems {
		m.listOffset = m.cursor - visibleItems + 1
	}
}
