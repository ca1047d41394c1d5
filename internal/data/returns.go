package data

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadReturnsJSON reads a historical monthly returns file: a JSON array of
// objects mapping asset label to that month's return, one object per month.
func LoadReturnsJSON(path string) ([]map[string]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rows []map[string]float64
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("parse returns file %s: %w", path, err)
	}
	return rows, nil
}

// Assets collects the union of asset labels present across all rows.
func Assets(rows []map[string]float64) map[string]bool {
	out := map[string]bool{}
	for _, row := range rows {
		for label := range row {
			out[label] = true
		}
	}
	return out
}
