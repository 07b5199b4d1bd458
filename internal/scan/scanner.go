package scan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	FormatText     = "text"     // plain-text chord chart
	FormatDocument = "document" // pdf, word or image; shown as a file only
)

var formats = map[string]string{
	".txt":    FormatText,
	".chords": FormatText,
	".pdf":    FormatDocument,
	".doc":    FormatDocument,
	".docx":   FormatDocument,
	".jpg":    FormatDocument,
	".jpeg":   FormatDocument,
	".png":    FormatDocument,
}

type FileInfo struct {
	Path   string
	Format string // FormatText or FormatDocument
	Mtime  int64
	Size   int64
}

// FormatOf returns the sheet format for a file name, or "" when the file is
// not a chord sheet.
func FormatOf(name string) string {
	return formats[strings.ToLower(filepath.Ext(name))]
}

// ScanLibrary walks the library root and returns every chord sheet in path
// order. A missing root yields no files.
func ScanLibrary(root string) ([]FileInfo, error) {
	if root == "" {
		return nil, nil
	}

	var files []FileInfo
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable dirs
		}
		base := filepath.Base(path)
		if info.IsDir() {
			if path != root && strings.HasPrefix(base, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(base, ".") || strings.HasPrefix(base, "~$") {
			return nil
		}
		format := FormatOf(base)
		if format == "" {
			return nil
		}
		files = append(files, FileInfo{
			Path:   path,
			Format: format,
			Mtime:  info.ModTime().Unix(),
			Size:   info.Size(),
		})
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}
