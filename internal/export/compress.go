package export

import (
	"bytes"
	"fmt"

	"github.com/andybalholm/brotli"
)

// Compress returns a brotli-compressed copy of data, used for the optional
// .br sibling of the CSV export.
func Compress(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := brotli.NewWriter(buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress close: %w", err)
	}
	return buf.Bytes(), nil
}
