package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBatch = `{
	"generated_at": "2024-12-01T00:00:00Z",
	"entries": [
		1733032145,
		"2024-12-01",
		{"input": 1733032145000, "pattern": "DD/MM/YYYY"},
		{"input": "1733032145", "pattern": "HH:mm"},
		1.733032145e9,
		1733032145123.5,
		true,
		{"pattern": "YYYY"},
		{"input": 1, "pattern": 7}
	]
}`

func TestParse(t *testing.T) {
	data, entries, err := Parse([]byte(sampleBatch))
	require.NoError(t, err)

	require.NotNil(t, data.GeneratedAt)
	assert.True(t, data.GeneratedAt.Equal(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)))
	require.Len(t, entries, 9)

	tests := []struct {
		index       int
		wantInput   any
		wantPattern string
		wantErr     string
	}{
		{index: 0, wantInput: int64(1733032145)},
		{index: 1, wantInput: "2024-12-01"},
		{index: 2, wantInput: int64(1733032145000), wantPattern: "DD/MM/YYYY"},
		{index: 3, wantInput: "1733032145", wantPattern: "HH:mm"},
		{index: 4, wantInput: int64(1733032145)},
		{index: 5, wantInput: 1733032145123.5},
		{index: 6, wantInput: true},
		{index: 7, wantErr: `no "input" field`},
		{index: 8, wantErr: `"pattern" must be a string`},
	}

	for _, tt := range tests {
		entry := entries[tt.index]
		assert.Equal(t, tt.index, entry.Index)

		if tt.wantErr != "" {
			require.Error(t, entry.Err, "entry %d", tt.index)
			assert.Contains(t, entry.Err.Error(), tt.wantErr)
			continue
		}

		assert.NoError(t, entry.Err, "entry %d", tt.index)
		assert.Equal(t, tt.wantInput, entry.Input, "entry %d", tt.index)
		assert.Equal(t, tt.wantPattern, entry.Pattern, "entry %d", tt.index)
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	_, _, err := Parse([]byte(`{"entries": [1, 2`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse batch")
}

func TestParse_EmptyEntries(t *testing.T) {
	data, entries, err := Parse([]byte(`{"entries": []}`))
	require.NoError(t, err)
	assert.Nil(t, data.GeneratedAt)
	assert.Empty(t, entries)
}

func TestLoader_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleBatch), 0o644))

	_, entries, err := NewLoader(nil).Load(path)
	require.NoError(t, err)
	assert.Len(t, entries, 9)
}

func TestLoader_LoadStdin(t *testing.T) {
	loader := NewLoader(strings.NewReader(`{"entries": ["2024-12-01"]}`))

	_, entries, err := loader.Load(StdinPath)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2024-12-01", entries[0].Input)
}

func TestLoader_LoadMissingFile(t *testing.T) {
	_, _, err := NewLoader(nil).Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read batch file")
}

func TestNarrowNumber(t *testing.T) {
	tests := []struct {
		name     string
		number   string
		expected any
	}{
		{name: "integer", number: "1733032145", expected: int64(1733032145)},
		{name: "exponent seconds", number: "1.733032145e9", expected: int64(1733032145)},
		{name: "exponent milliseconds", number: "1.733032145123e12", expected: int64(1733032145123)},
		{name: "negative exponent", number: "-1.5e3", expected: int64(-1500)},
		{name: "fraction", number: "1733032145123.5", expected: 1733032145123.5},
		{name: "integral beyond int64", number: "1e19", expected: 1e19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := narrowNumber(json.Number(tt.number))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
