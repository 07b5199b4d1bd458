package open

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		name   string
		format string
		editor string
		goos   string
		want   []string
	}{
		{"text with vim", "text", "vim", "linux", []string{"vim", "/l/a.txt"}},
		{"text without editor", "text", "", "linux", []string{"less", "/l/a.txt"}},
		{"text with vscode", "text", "code", "darwin", []string{"code", "--wait", "/l/a.txt"}},
		{"pdf on mac", "document", "vim", "darwin", []string{"open", "/l/a.txt"}},
		{"pdf on linux", "document", "", "linux", []string{"xdg-open", "/l/a.txt"}},
		{"pdf on windows", "document", "", "windows", []string{"cmd", "/c", "start", "", "/l/a.txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Command(tt.format, tt.editor, tt.goos, "/l/a.txt")
			assert.Equal(t, tt.want, cmd.Args)
		})
	}
}
