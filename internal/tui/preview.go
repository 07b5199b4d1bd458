package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/messianicchords/mc/internal/index"
	"github.com/messianicchords/mc/internal/render"
	"github.com/messianicchords/mc/internal/search"
)

// previewRenderedMsg is sent when an async preview render completes.
type previewRenderedMsg struct {
	sheetID   string
	transpose int
	content   string
	err       error
}

// loadPreviewCmd returns a tea.Cmd that renders the sheet preview async.
func loadPreviewCmd(db *index.DB, cache *render.ChartCache, r search.Result, query string, width, transpose int) tea.Cmd {
	return func() tea.Msg {
		content, err := render.RenderSheet(db, cache, r.SheetID, render.Options{
			Transpose: transpose,
			Color:     true,
			Width:     width,
			Query:     query,
			Logger:    slog.Default(),
		})
		return previewRenderedMsg{
			sheetID:   r.SheetID,
			transpose: transpose,
			content:   content,
			err:       err,
		}
	}
}

func previewCacheKey(sheetID string, transpose int) string {
	return fmt.Sprintf("%s:%d", sheetID, transpose)
}

// newViewport creates a new viewport model with the given dimensions.
func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.Style = stylePanelBorder
	return vp
}
