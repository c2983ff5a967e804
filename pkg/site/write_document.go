package site

import (
	"os"
	"path/filepath"
)

// WriteDocument writes the index file of a document directory, creating
// the directory when absent. The content is written as-is in UTF-8.
func (w *realWriter) WriteDocument(dir string, content string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, IndexFile), []byte(content), 0644)
}
