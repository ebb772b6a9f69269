package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/fdelorme/stroke-rules/internal/cli"
	"github.com/fdelorme/stroke-rules/internal/model"
)

// metricTitles carry the interpretation each metric is ranked for.
var metricTitles = map[model.Metric]string{
	model.MetricSupport:     "Support (frequency)",
	model.MetricConfidence:  "Confidence (reliability)",
	model.MetricLift:        "Lift (independence)",
	model.MetricLeverage:    "Leverage (difference)",
	model.MetricConviction:  "Conviction (dependence)",
	model.MetricJaccard:     "Jaccard (similarity)",
	model.MetricCertainty:   "Certainty factor (certainty)",
	model.MetricInformation: "Information gain (information)",
}

// Formatter renders ranked rule reports for the terminal.
type Formatter struct {
	top int
}

// NewFormatter creates a formatter that shows the top n rules per
// ranking.
func NewFormatter(top int) *Formatter {
	if top <= 0 {
		top = 5
	}
	return &Formatter{top: top}
}

// FormatRanking renders the top rules under one metric as a titled
// section.
func (f *Formatter) FormatRanking(metric model.Metric, rules model.Rules) string {
	var b strings.Builder

	b.WriteString(cli.FormatTitle("Top rules by " + metricTitle(metric)))
	b.WriteString("\n")

	ranked := rules.RankedBy(metric).Top(f.top)
	if len(ranked) == 0 {
		b.WriteString(cli.FormatWarning("No rules to display"))
		return b.String()
	}

	for i, rule := range ranked {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, DisplayRule(rule)))
		b.WriteString(cli.SubtleStyle.Render("   " + f.formatMetrics(rule.Metrics)))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatReport renders one section per requested metric.
func (f *Formatter) FormatReport(rules model.Rules, metrics []model.Metric) string {
	sections := make([]string, 0, len(metrics))
	for _, metric := range metrics {
		sections = append(sections, f.FormatRanking(metric, rules))
	}
	return strings.Join(sections, "\n")
}

// FormatRuleDetail renders every metric of a single rule, one per line.
func FormatRuleDetail(rule model.Rule) string {
	var b strings.Builder
	b.WriteString(DisplayRule(rule))
	b.WriteString("\n")
	for _, metric := range model.AllMetrics() {
		b.WriteString(fmt.Sprintf("  %-12s %s\n", metricLabel(metric), FormatMetricValue(rule.Metrics.Value(metric))))
	}
	return b.String()
}

func (f *Formatter) formatMetrics(m model.Metrics) string {
	return fmt.Sprintf("sup=%s conf=%s lift=%s lev=%s conv=%s jac=%s cf=%s ig=%s",
		FormatMetricValue(m.Support),
		FormatMetricValue(m.Confidence),
		FormatMetricValue(m.Lift),
		FormatMetricValue(m.Leverage),
		FormatMetricValue(m.Conviction),
		FormatMetricValue(m.Jaccard),
		FormatMetricValue(m.Certainty),
		FormatMetricValue(m.Information))
}

// FormatMetricValue renders a metric value to three decimals, with an
// infinity sign for unbounded conviction.
func FormatMetricValue(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.3f", v)
}

func metricTitle(metric model.Metric) string {
	if title, ok := metricTitles[metric]; ok {
		return title
	}
	return string(metric)
}

func metricLabel(metric model.Metric) string {
	return strings.ToUpper(string(metric)[:1]) + string(metric)[1:]
}
