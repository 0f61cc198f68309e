package alerts

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpamies/worldcup-squad-selector/internal/cmd/output"
)

func TestAlertString(t *testing.T) {
	tests := []struct {
		alert *Alert
		want  string
	}{
		{NewSuccess("Spain squad saved: 26 players"), "✓ Spain squad saved: 26 players"},
		{NewWarning("Imported 2 squad(s)"), "! Imported 2 squad(s)"},
		{NewError("Selection rejected").WithError(errors.New("Maximum 3 goalkeepers allowed!")), "✗ Selection rejected: Maximum 3 goalkeepers allowed!"},
		{New(Level(9), "odd"), "? odd"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.alert.String())
	}
	assert.Equal(t, "unknown(9)", Level(9).String())
}

func TestWriterText(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, output.FormatTable, false)

	require.NoError(t, w.Write(NewInfo("No squad saved").WithDetails("Use squad add", "Or import a token")))
	assert.Equal(t, "i No squad saved\n   Use squad add\n   Or import a token\n", buf.String())
}

func TestWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, output.FormatJSON, true)

	require.NoError(t, w.Write(NewError("Import failed").WithError(errors.New("invalid base64"))))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "error", got["level"])
	assert.Equal(t, "Import failed", got["message"])
	assert.Equal(t, "invalid base64", got["error"])
	assert.NotContains(t, got, "details")
}
