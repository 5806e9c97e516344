package dataset

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Table is a loaded CSV dataset: a header plus string cells, with numeric
// columns parsed on demand.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Load reads a CSV file into a Table. An empty or headerless file is an
// error; ragged rows are rejected by the csv reader.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("dataset %s is empty", path)
	}

	return &Table{Columns: records[0], Rows: records[1:]}, nil
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	return t.columnIndex(name) >= 0
}

func (t *Table) columnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// NumericColumn returns the parsed values of a column, skipping cells that
// do not parse as numbers. The second return is false when the column does
// not exist or holds no numeric values.
func (t *Table) NumericColumn(name string) ([]float64, bool) {
	idx := t.columnIndex(name)
	if idx < 0 {
		return nil, false
	}

	var values []float64
	for _, row := range t.Rows {
		if idx >= len(row) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, false
	}
	return values, true
}

// Mean returns the arithmetic mean of a numeric column.
func (t *Table) Mean(name string) (float64, bool) {
	values, ok := t.NumericColumn(name)
	if !ok {
		return 0, false
	}
	return mean(values), true
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev is the sample standard deviation, matching what pandas-style
// describe tables report.
func stddev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

// Describe renders a fixed-width summary table (count, mean, std, min, max)
// over every numeric column.
func (t *Table) Describe() string {
	stats := []string{"count", "mean", "std", "min", "max"}

	type colStats struct {
		name   string
		values map[string]string
	}

	var cols []colStats
	for _, name := range t.Columns {
		values, ok := t.NumericColumn(name)
		if !ok {
			continue
		}
		min, max := values[0], values[0]
		for _, v := range values {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		cols = append(cols, colStats{
			name: name,
			values: map[string]string{
				"count": strconv.Itoa(len(values)),
				"mean":  fmt.Sprintf("%.2f", mean(values)),
				"std":   fmt.Sprintf("%.2f", stddev(values)),
				"min":   fmt.Sprintf("%.2f", min),
				"max":   fmt.Sprintf("%.2f", max),
			},
		})
	}

	if len(cols) == 0 {
		return "(no numeric columns)"
	}

	// Column widths: wide enough for the header and every cell.
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = len(c.name)
		for _, v := range c.values {
			if len(v) > widths[i] {
				widths[i] = len(v)
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-6s", ""))
	for i, c := range cols {
		sb.WriteString(fmt.Sprintf("  %*s", widths[i], c.name))
	}
	sb.WriteString("\n")
	for _, stat := range stats {
		sb.WriteString(fmt.Sprintf("%-6s", stat))
		for i, c := range cols {
			sb.WriteString(fmt.Sprintf("  %*s", widths[i], c.values[stat]))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Analyze loads the dataset and formats the Data Analyst report: the
// describe table plus a trend line per optional column that is present.
// Missing optional columns are not an error; a missing or corrupt file is.
func Analyze(path string) (string, error) {
	table, err := Load(path)
	if err != nil {
		return "", err
	}

	var trends []string
	if avg, ok := table.Mean(ColumnPM25); ok {
		trends = append(trends, fmt.Sprintf("🌫️ **Average PM2.5:** %.2f μg/m³", avg))
	}
	if avg, ok := table.Mean(ColumnCO2); ok {
		trends = append(trends, fmt.Sprintf("🌍 **Average CO2:** %.2f ppm", avg))
	}

	var sb strings.Builder
	sb.WriteString("📊 **Dataset Summary:**\n```\n")
	sb.WriteString(table.Describe())
	sb.WriteString("\n```\n\n**Environmental Trends:**\n")
	sb.WriteString(strings.Join(trends, "\n"))
	return sb.String(), nil
}
