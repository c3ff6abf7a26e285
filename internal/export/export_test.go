package export

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"courseId", "role", "available"},
		Rows: []map[string]string{
			{"courseId": "CS101-2025FA", "role": "Instructor", "available": "Yes"},
			{"courseId": "HIST200-2025FA", "role": "Student", "available": "No"},
		},
	}
}

func TestRenderCSV(t *testing.T) {
	out, err := RenderCSV(sampleDataset())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "courseId,role,available", lines[0])
	assert.Equal(t, "CS101-2025FA,Instructor,Yes", lines[1])
	assert.Equal(t, "HIST200-2025FA,Student,No", lines[2])
}

func TestRenderCSVMissingCellsStayEmpty(t *testing.T) {
	ds := Dataset{
		Headers: []string{"a", "b"},
		Rows:    []map[string]string{{"a": "1"}},
	}
	out, err := RenderCSV(ds)
	require.NoError(t, err)
	assert.Contains(t, string(out), "1,\n")
}

func TestRenderCSVRequiresHeaders(t *testing.T) {
	_, err := RenderCSV(Dataset{})
	assert.Error(t, err)
}

func TestRenderCSVIsDeterministic(t *testing.T) {
	first, err := RenderCSV(sampleDataset())
	require.NoError(t, err)
	second, err := RenderCSV(sampleDataset())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCompressRoundTrip(t *testing.T) {
	payload := []byte(strings.Repeat("courseId,role,available\n", 50))
	compressed, err := Compress(payload)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(payload))

	restored, err := io.ReadAll(brotli.NewReader(bytes.NewReader(compressed)))
	require.NoError(t, err)
	assert.Equal(t, payload, restored)
}

func TestRenderPDF(t *testing.T) {
	out, err := RenderPDF(sampleDataset(), "Enrollment Report")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderPDFRequiresHeaders(t *testing.T) {
	_, err := RenderPDF(Dataset{}, "x")
	assert.Error(t, err)
}
