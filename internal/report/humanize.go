// Package report renders ranked association rules as terminal tables,
// CSV exports, and charts.
package report

import (
	"strings"

	"github.com/fdelorme/stroke-rules/internal/model"
)

// fieldNames maps encoded field names to display names.
var fieldNames = map[string]string{
	"age":            "Age",
	"bmi":            "BMI",
	"glucose":        "Glucose",
	"gender":         "Gender",
	"ever_married":   "Ever married",
	"work_type":      "Work type",
	"residence":      "Residence",
	"smoking_status": "Smoking",
	"hypertension":   "Hypertension",
	"heart_disease":  "Heart disease",
	"stroke":         "Stroke",
}

// binaryFields render their 0/1 values as no/yes.
var binaryFields = map[string]bool{
	"hypertension":  true,
	"heart_disease": true,
	"stroke":        true,
}

// DisplayItem turns an encoded item label such as "age=>60" or
// "hypertension=1" into a readable phrase, "Age > 60" or
// "Hypertension yes". Unknown fields fall back to the raw label.
func DisplayItem(item string) string {
	field, value, ok := strings.Cut(item, "=")
	if !ok {
		return item
	}

	name, known := fieldNames[field]
	if !known {
		name = strings.ReplaceAll(field, "_", " ")
	}

	if binaryFields[field] {
		switch value {
		case "0":
			value = "no"
		case "1":
			value = "yes"
		}
	}

	value = strings.ReplaceAll(value, "_", " ")
	switch {
	case strings.HasPrefix(value, "<"):
		value = "< " + value[1:]
	case strings.HasPrefix(value, ">"):
		value = "> " + value[1:]
	}

	return name + " " + value
}

// DisplayRule renders a rule as "Age > 60 + Hypertension yes ⇒ Stroke yes".
func DisplayRule(r model.Rule) string {
	return displayItems(r.Antecedent.Items) + " ⇒ " + displayItems(r.Consequent.Items)
}

func displayItems(items []string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = DisplayItem(item)
	}
	return strings.Join(parts, " + ")
}
