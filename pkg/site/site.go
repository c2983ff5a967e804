// Package site persists rendered documents onto the filesystem.
package site

import "io"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=site.go -destination=mocks/site.gen.go -package=mocks

// IndexFile is the name of the index document written into every
// document directory.
const IndexFile = "README.md"

// Writer interface provides the write operations of the documentation
// tree. All operations are write-only and idempotent: ancestors are
// created on demand, existing files are overwritten, nothing is pruned.
type Writer interface {
	// WriteDocument writes the index file of a document directory,
	// creating the directory when absent.
	WriteDocument(dir string, content string) error

	// WriteAsset streams an asset into a directory, creating it when
	// absent.
	WriteAsset(dir, filename string, r io.Reader) error
}

type realWriter struct {
	// No fields needed for basic file system operations
}

// NewWriter creates a new Writer instance.
func NewWriter() Writer {
	return &realWriter{}
}
