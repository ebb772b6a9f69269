package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fdelorme/stroke-rules/internal/model"
)

// csvHeader is the column layout of exported rule tables.
var csvHeader = []string{
	"antecedent", "consequent",
	"support", "confidence", "lift", "leverage", "conviction",
	"jaccard", "certainty", "information",
}

// WriteCSV exports the rules in their current order as a CSV table.
// Infinite conviction is written as "inf".
func WriteCSV(w io.Writer, rules model.Rules) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, rule := range rules {
		record := []string{
			strings.Join(rule.Antecedent.Items, " + "),
			strings.Join(rule.Consequent.Items, " + "),
			formatCSVValue(rule.Metrics.Support),
			formatCSVValue(rule.Metrics.Confidence),
			formatCSVValue(rule.Metrics.Lift),
			formatCSVValue(rule.Metrics.Leverage),
			formatCSVValue(rule.Metrics.Conviction),
			formatCSVValue(rule.Metrics.Jaccard),
			formatCSVValue(rule.Metrics.Certainty),
			formatCSVValue(rule.Metrics.Information),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write rule %s: %w", rule, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func formatCSVValue(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
