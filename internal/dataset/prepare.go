package dataset

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/fdelorme/stroke-rules/internal/model"
)

// Summary reports what preparation did to the raw records.
type Summary struct {
	Imputed       map[string]int
	RowsIn        int
	RowsOut       int
	RowsDropped   int
	DistinctItems int
}

// Prepare cleans raw records and encodes each surviving row as a
// transaction of field=value items. Missing or unparseable cells are
// imputed or dropped per the configured policy and logged; they are
// never fatal. A malformed schema is caught earlier, at load time.
func Prepare(records []Record, opts Options) ([]model.Transaction, Summary, error) {
	if err := opts.Validate(); err != nil {
		return nil, Summary{}, fmt.Errorf("invalid preparation options: %w", err)
	}

	discretizers, err := buildDiscretizers(opts)
	if err != nil {
		return nil, Summary{}, err
	}

	numericFill, err := numericFillValues(records, opts)
	if err != nil {
		return nil, Summary{}, err
	}
	categoricalFill := categoricalFillValues(records)

	summary := Summary{
		RowsIn:  len(records),
		Imputed: make(map[string]int),
	}

	transactions := make([]model.Transaction, 0, len(records))
	distinct := make(map[string]struct{})

rows:
	for row, record := range records {
		items := make([]string, 0, len(continuousColumns)+len(categoricalColumns))

		for col, field := range continuousColumns {
			value, ok := parseNumeric(record[col])
			if !ok {
				if opts.Numeric == NumericDrop {
					summary.RowsDropped++
					continue rows
				}
				value = numericFill[col]
				summary.Imputed[col]++
			}
			items = append(items, field+"="+discretizers[col].Band(value))
		}

		for col, field := range categoricalColumns {
			value := strings.TrimSpace(record[col])
			if value == "" {
				if opts.Categorical == CategoricalDrop {
					summary.RowsDropped++
					continue rows
				}
				value = categoricalFill[col]
				summary.Imputed[col]++
			}
			items = append(items, field+"="+normalizeValue(value))
		}

		txn := model.NewTransaction(row, items)
		for _, item := range txn.Items {
			distinct[item] = struct{}{}
		}
		transactions = append(transactions, txn)
	}

	summary.RowsOut = len(transactions)
	summary.DistinctItems = len(distinct)

	for col, n := range summary.Imputed {
		slog.Warn("imputed missing values", "column", col, "cells", n)
	}
	slog.Info("prepared dataset",
		"rows_in", summary.RowsIn,
		"rows_out", summary.RowsOut,
		"rows_dropped", summary.RowsDropped,
		"distinct_items", summary.DistinctItems)

	return transactions, summary, nil
}

func buildDiscretizers(opts Options) (map[string]*Discretizer, error) {
	bins := map[string][]float64{
		colAge:     opts.AgeBins,
		colBMI:     opts.BMIBins,
		colGlucose: opts.GlucoseBins,
	}

	out := make(map[string]*Discretizer, len(bins))
	for col, cuts := range bins {
		d, err := NewDiscretizer(cuts)
		if err != nil {
			return nil, fmt.Errorf("invalid bins for %s: %w", col, err)
		}
		out[col] = d
	}
	return out, nil
}

// numericFillValues computes the per-column replacement value for
// missing numerics under the configured policy.
func numericFillValues(records []Record, opts Options) (map[string]float64, error) {
	fill := make(map[string]float64, len(continuousColumns))
	if opts.Numeric == NumericDrop {
		return fill, nil
	}

	for col := range continuousColumns {
		var values []float64
		for _, record := range records {
			if v, ok := parseNumeric(record[col]); ok {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			return nil, fmt.Errorf("column %q has no usable numeric values", col)
		}

		switch opts.Numeric {
		case NumericMedian:
			fill[col] = median(values)
		default:
			fill[col] = mean(values)
		}
	}
	return fill, nil
}

// categoricalFillValues computes the mode of every categorical column.
// Ties break on the lexicographically smallest value so preparation is
// deterministic.
func categoricalFillValues(records []Record) map[string]string {
	fill := make(map[string]string, len(categoricalColumns))
	for col := range categoricalColumns {
		counts := make(map[string]int)
		for _, record := range records {
			if v := strings.TrimSpace(record[col]); v != "" {
				counts[v]++
			}
		}

		best, bestCount := "", -1
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if counts[k] > bestCount {
				best, bestCount = k, counts[k]
			}
		}
		fill[col] = best
	}
	return fill
}

// parseNumeric parses a cell as float64. Placeholder strings such as
// "N/A" or "Unknown" and anything unparseable count as missing.
func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "n/a", "na", "nan", "null", "unknown":
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// normalizeValue makes a categorical value safe for item labels.
func normalizeValue(v string) string {
	return strings.ReplaceAll(v, " ", "_")
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
