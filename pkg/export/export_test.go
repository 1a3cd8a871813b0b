package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rooms = Dataset{
	Title:   "Building Usage",
	Headers: []string{"Room", "Available"},
	Rows: []map[string]string{
		{"Room": "A101", "Available": "yes"},
		{"Room": "B202", "Available": "no"},
	},
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(rooms)
	require.NoError(t, err)
	assert.Equal(t, "Room,Available\nA101,yes\nB202,no\n", string(out))
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter().Render(rooms)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
