package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesDirectoryIdempotently(t *testing.T) {
	base := filepath.Join(t.TempDir(), "out", "nested")

	_, err := Open(base)
	require.NoError(t, err)
	assert.DirExists(t, base)

	// already existing is not an error
	_, err = Open(base)
	require.NoError(t, err)
}

func TestSaveAndPath(t *testing.T) {
	base := t.TempDir()
	dir, err := Open(base)
	require.NoError(t, err)

	path, err := dir.Save("report.csv", []byte("a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "report.csv"), path)
	assert.Equal(t, path, dir.Path("report.csv"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))
}

func TestSaveOverwrites(t *testing.T) {
	dir, err := Open(t.TempDir())
	require.NoError(t, err)

	_, err = dir.Save("report.csv", []byte("old"))
	require.NoError(t, err)
	path, err := dir.Save("report.csv", []byte("new"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}
