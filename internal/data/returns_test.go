package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReturnsJSON(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "returns.json")
		raw := `[{"SPY": 0.01, "TLT": -0.005}, {"SPY": 0.007, "TLT": 0.002}]`
		require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

		rows, err := LoadReturnsJSON(path)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 0.01, rows[0]["SPY"])
		assert.Equal(t, 0.002, rows[1]["TLT"])
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "returns.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		_, err := LoadReturnsJSON(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse returns file")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadReturnsJSON(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
	})
}

func TestAssets(t *testing.T) {
	rows := []map[string]float64{
		{"SPY": 0.01},
		{"SPY": 0.02, "TLT": 0.001},
	}
	assets := Assets(rows)
	assert.Equal(t, map[string]bool{"SPY": true, "TLT": true}, assets)
}
