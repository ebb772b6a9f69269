package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Load reads the stroke risk dataset from a CSV file on disk.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("failed to close dataset file", "path", path, "error", closeErr)
		}
	}()

	records, err := LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return records, nil
}

// LoadReader parses CSV rows from r, validating the fixed column
// schema. A missing or malformed header is fatal; cell-level problems
// are left for preparation to impute or drop.
func LoadReader(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("dataset is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("dataset is missing required column %q", col)
		}
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		record := make(Record, len(requiredColumns))
		for _, col := range requiredColumns {
			record[col] = row[index[col]]
		}
		records = append(records, record)
	}

	slog.Debug("loaded dataset", "rows", len(records))
	return records, nil
}
