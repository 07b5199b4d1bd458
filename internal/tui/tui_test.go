package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/messianicchords/mc/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel() model {
	m := newModel(nil, nil, modeSearch, "adonai", search.Options{})
	m.results = []search.Result{
		{SheetID: "a", Song: "Adonai Li", HebrewName: "אדוני לי", Artist: "Joel Chernoff", Key: "Em", Format: "text"},
		{SheetID: "b", Song: "Days of Elijah", Format: "document"},
	}
	m.width, m.height, m.ready = 120, 30, true
	return m
}

func press(t *testing.T, m model, msg tea.KeyMsg) model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(model)
	require.True(t, ok)
	return nm
}

func TestTransposeKeys(t *testing.T) {
	m := testModel()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftUp})
	assert.Equal(t, 1, m.transpose)
	assert.Equal(t, "a:1", m.wantPreviewKey())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftDown})
	assert.Equal(t, -1, m.transpose)
	assert.Contains(t, m.statusBar(), "transpose -1")

	for i := 0; i < 11; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftDown})
	}
	assert.Equal(t, 0, m.transpose)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.Equal(t, 0, m.transpose)
}

func TestMovingResetsTranspose(t *testing.T) {
	m := testModel()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftUp})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)
	assert.Equal(t, 0, m.transpose)
	assert.Equal(t, "b:0", m.wantPreviewKey())
}

func TestStalePreviewIgnored(t *testing.T) {
	m := testModel()
	m.transpose = 2

	next, _ := m.Update(previewRenderedMsg{sheetID: "a", transpose: 0, content: "old"})
	assert.Equal(t, "", next.(model).previewKey)

	next, _ = m.Update(previewRenderedMsg{sheetID: "a", transpose: 2, content: "new"})
	assert.Equal(t, "a:2", next.(model).previewKey)
}

func TestEnterSelects(t *testing.T) {
	m := testModel()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.openResult)
	assert.Equal(t, "a", m.openResult.SheetID)
	assert.True(t, m.quitting)
}

func TestFormatResultLine(t *testing.T) {
	m := testModel()
	lines := formatResultLine(m.results[0], 60, true)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Adonai Li אדוני לי")
	assert.Contains(t, lines[0], "Em")
	assert.Contains(t, lines[1], "Joel Chernoff")

	lines = formatResultLine(m.results[1], 60, false)
	assert.True(t, strings.HasPrefix(lines[0], "  "))
	assert.Contains(t, lines[0], "-")
	assert.Contains(t, lines[1], "(document)")
}

func TestAdjustListScroll(t *testing.T) {
	m := testModel()
	m.cursor = 1
	m.adjustListScroll(2)
	assert.Equal(t, 1, m.listOffset)

	m.cursor = 0
	m.adjustListScroll(2)
	assert.Equal(t, 0, m.listOffset)
}
