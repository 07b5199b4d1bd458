package open

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/messianicchords/mc/internal/index"
	"github.com/messianicchords/mc/internal/scan"
)

// OpenSheet opens the original file of a sheet: text charts in $EDITOR,
// documents with the desktop's default application.
func OpenSheet(db *index.DB, sheetID string) error {
	sheet, err := db.GetSheet(sheetID)
	if err != nil {
		return fmt.Errorf("get sheet: %w", err)
	}
	if sheet == nil {
		return fmt.Errorf("sheet not found: %s", sheetID)
	}

	filePath := sheet.FilePath
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file not found: %s", filePath)
	}

	cmd := Command(sheet.Format, os.Getenv("EDITOR"), runtime.GOOS, filePath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Command builds the command that opens filePath.
func Command(format, editor, goos, filePath string) *exec.Cmd {
	if format != scan.FormatText {
		switch goos {
		case "darwin":
			return exec.Command("open", filePath)
		case "windows":
			return exec.Command("cmd", "/c", "start", "", filePath)
		default:
			return exec.Command("xdg-open", filePath)
		}
	}

	if editor == "" {
		editor = "less"
	}
	switch {
	case strings.Contains(editor, "code"):
		return exec.Command(editor, "--wait", filePath)
	default:
		return exec.Command(editor, filePath)
	}
}
