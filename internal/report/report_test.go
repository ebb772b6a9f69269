package report

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fdelorme/stroke-rules/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRules() model.Rules {
	return model.Rules{
		{
			Antecedent: model.NewItemset("age=>60", "hypertension=1"),
			Consequent: model.NewItemset("stroke=1"),
			Metrics: model.Metrics{
				Support: 0.12, Confidence: 0.8, Lift: 2.5,
				Leverage: 0.07, Conviction: 4.2, Jaccard: 0.3,
				Certainty: 0.6, Information: 0.15,
			},
		},
		{
			Antecedent: model.NewItemset("glucose=<100"),
			Consequent: model.NewItemset("stroke=0"),
			Metrics: model.Metrics{
				Support: 0.4, Confidence: 1.0, Lift: 1.05,
				Leverage: 0.02, Conviction: math.Inf(1), Jaccard: 0.42,
				Certainty: 0.9, Information: 0.03,
			},
		},
	}
}

func TestDisplayItem(t *testing.T) {
	tests := []struct {
		name string
		item string
		want string
	}{
		{name: "upper band", item: "age=>60", want: "Age > 60"},
		{name: "lower band", item: "bmi=<18.5", want: "BMI < 18.5"},
		{name: "middle band", item: "glucose=100-150", want: "Glucose 100-150"},
		{name: "binary yes", item: "stroke=1", want: "Stroke yes"},
		{name: "binary no", item: "hypertension=0", want: "Hypertension no"},
		{name: "categorical", item: "smoking_status=never_smoked", want: "Smoking never smoked"},
		{name: "unknown field", item: "blood_type=A", want: "blood type A"},
		{name: "no separator", item: "raw", want: "raw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayItem(tt.item))
		})
	}
}

func TestDisplayRule(t *testing.T) {
	rule := sampleRules()[0]

	got := DisplayRule(rule)
	assert.Equal(t, "Age > 60 + Hypertension yes ⇒ Stroke yes", got)
}

func TestFormatter_FormatRanking(t *testing.T) {
	f := NewFormatter(5)

	out := f.FormatRanking(model.MetricLift, sampleRules())

	assert.Contains(t, out, "Lift (independence)")
	// Highest lift first.
	first := strings.Index(out, "Age > 60")
	second := strings.Index(out, "Glucose < 100")
	require.Positive(t, first)
	require.Positive(t, second)
	assert.Less(t, first, second)
}

func TestFormatter_FormatRanking_Empty(t *testing.T) {
	f := NewFormatter(5)

	out := f.FormatRanking(model.MetricLift, nil)
	assert.Contains(t, out, "No rules to display")
}

func TestFormatter_TopLimit(t *testing.T) {
	f := NewFormatter(1)

	out := f.FormatRanking(model.MetricConfidence, sampleRules())

	assert.Contains(t, out, "Glucose < 100")
	assert.NotContains(t, out, "Age > 60")
}

func TestFormatMetricValue(t *testing.T) {
	assert.Equal(t, "0.500", FormatMetricValue(0.5))
	assert.Equal(t, "∞", FormatMetricValue(math.Inf(1)))
}

func TestFormatRuleDetail_ShowsInfiniteConviction(t *testing.T) {
	out := FormatRuleDetail(sampleRules()[1])

	assert.Contains(t, out, "Conviction")
	assert.Contains(t, out, "∞")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	err := WriteCSV(&buf, sampleRules())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, strings.Join(csvHeader, ","), lines[0])
	assert.Contains(t, lines[1], "age=>60 + hypertension=1")
	assert.Contains(t, lines[2], "inf")
}

func TestWriteScatter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.png")

	err := WriteScatter(sampleRules(), path)
	require.NoError(t, err)

	assert.FileExists(t, path)
}

func TestWriteScatter_NoRules(t *testing.T) {
	err := WriteScatter(nil, filepath.Join(t.TempDir(), "rules.png"))
	require.Error(t, err)
}
