// Package dataset owns the bundled air-quality sample: creating it on first
// run and producing the Data Analyst's local statistics report from it.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPath is the sample dataset location relative to the working
// directory.
const DefaultPath = "sample_air_quality.csv"

// Column names the analysis path knows about. PM25 and CO2 are optional in
// user-supplied files; Year is required for a file to count as a dataset.
const (
	ColumnYear = "Year"
	ColumnPM25 = "PM2.5"
	ColumnCO2  = "CO2"
)

// sampleRows are the illustrative values written on first run.
var sampleRows = [][]string{
	{"2021", "55", "400"},
	{"2022", "48", "395"},
	{"2023", "42", "390"},
}

// EnsureSample writes the fallback sample table to path if no file exists
// there. A second call is a no-op. Filesystem failures are returned to the
// caller, which treats them as fatal.
func EnsureSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create dataset directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{ColumnYear, ColumnPM25, ColumnCO2}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range sampleRows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
