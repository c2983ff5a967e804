package site

import (
	"io"
	"os"
	"path/filepath"
)

// WriteAsset streams an asset into a directory, creating it when absent.
func (w *realWriter) WriteAsset(dir, filename string, r io.Reader) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
