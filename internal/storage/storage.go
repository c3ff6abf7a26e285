// Package storage is the narrow on-disk collaborator for report outputs.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dir is a handle on the output directory.
type Dir struct {
	base string
}

// Open ensures the directory exists and returns a handle. Creation is
// idempotent: an existing directory is not an error.
func Open(base string) (*Dir, error) {
	if base == "" {
		base = "./out"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &Dir{base: base}, nil
}

// Save writes one artifact under the directory and returns its full path.
func (d *Dir) Save(name string, data []byte) (string, error) {
	path := d.Path(name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}

// Path resolves an artifact name under the directory.
func (d *Dir) Path(name string) string {
	return filepath.Join(d.base, name)
}
