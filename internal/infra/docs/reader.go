// Package docs reads project documents from the filesystem.
package docs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/luciuz/gh-seed/internal/domain"
)

// Reader implements domain.DocumentReader rooted at a docs directory.
type Reader struct {
	root string
}

// Ensure Reader implements domain.DocumentReader interface.
var _ domain.DocumentReader = (*Reader)(nil)

// NewReader creates a Reader for documents under root.
func NewReader(root string) *Reader {
	return &Reader{root: root}
}

// Root returns the docs directory.
func (r *Reader) Root() string {
	return r.root
}

// ReadDocument reads a UTF-8 document by name relative to the root.
// Absolute names are read as-is.
func (r *Reader) ReadDocument(name string) (string, error) {
	path := name
	if !filepath.IsAbs(name) {
		path = filepath.Join(r.root, name)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from configuration
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, path)
		}
		return "", fmt.Errorf("read document %s: %w", path, err)
	}
	return string(data), nil
}
