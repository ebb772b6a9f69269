package model

import (
	"fmt"
	"math"
)

// Metric identifies one rule interestingness measure.
type Metric string

// Supported ranking metrics. The first five are the classic bundle;
// jaccard, certainty and information follow the recommendations the
// analysis is based on.
const (
	MetricSupport     Metric = "support"
	MetricConfidence  Metric = "confidence"
	MetricLift        Metric = "lift"
	MetricLeverage    Metric = "leverage"
	MetricConviction  Metric = "conviction"
	MetricJaccard     Metric = "jaccard"
	MetricCertainty   Metric = "certainty"
	MetricInformation Metric = "information"
)

// AllMetrics returns every supported metric in display order.
func AllMetrics() []Metric {
	return []Metric{
		MetricSupport,
		MetricConfidence,
		MetricLift,
		MetricLeverage,
		MetricConviction,
		MetricJaccard,
		MetricCertainty,
		MetricInformation,
	}
}

// ParseMetric validates and normalizes a metric name.
func ParseMetric(name string) (Metric, error) {
	for _, m := range AllMetrics() {
		if string(m) == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown metric %q", name)
}

// Metrics bundles the interestingness measures of a single rule. All
// values derive from the joint and marginal support fractions; there is
// no independent lifecycle.
type Metrics struct {
	Support     float64
	Confidence  float64
	Lift        float64
	Leverage    float64
	Conviction  float64
	Jaccard     float64
	Certainty   float64
	Information float64
}

// ComputeMetrics derives the full bundle from support fractions:
// joint is support(antecedent ∪ consequent), antecedent and consequent
// are the marginals. All three are fractions of the transaction count.
//
// Conviction is +Inf when confidence equals 1; it is never computed by
// dividing by zero.
func ComputeMetrics(joint, antecedent, consequent float64) Metrics {
	confidence := joint / antecedent
	lift := confidence / consequent

	m := Metrics{
		Support:    joint,
		Confidence: confidence,
		Lift:       lift,
		Leverage:   joint - antecedent*consequent,
		Jaccard:    joint / (antecedent + consequent - joint),
	}

	if confidence >= 1 {
		m.Conviction = math.Inf(1)
	} else {
		m.Conviction = (1 - consequent) / (1 - confidence)
	}

	// Certainty factor compares confidence against the consequent's
	// baseline; a consequent present in every transaction leaves no
	// room for improvement.
	if consequent < 1 {
		m.Certainty = (confidence - consequent) / (1 - consequent)
	}

	if joint > 0 {
		m.Information = joint * math.Log2(lift)
	}

	return m
}

// Value returns the named metric from the bundle.
func (m Metrics) Value(metric Metric) float64 {
	switch metric {
	case MetricSupport:
		return m.Support
	case MetricConfidence:
		return m.Confidence
	case MetricLift:
		return m.Lift
	case MetricLeverage:
		return m.Leverage
	case MetricConviction:
		return m.Conviction
	case MetricJaccard:
		return m.Jaccard
	case MetricCertainty:
		return m.Certainty
	case MetricInformation:
		return m.Information
	default:
		return math.NaN()
	}
}

// Validate checks the bundle for values outside their defined ranges.
func (m Metrics) Validate() error {
	if m.Support < 0 || m.Support > 1 {
		return fmt.Errorf("support must be between 0 and 1, got %v", m.Support)
	}
	if m.Confidence < 0 || m.Confidence > 1+1e-9 {
		return fmt.Errorf("confidence must be between 0 and 1, got %v", m.Confidence)
	}
	if m.Lift < 0 {
		return fmt.Errorf("lift must be non-negative, got %v", m.Lift)
	}
	if m.Conviction < 0 {
		return fmt.Errorf("conviction must be non-negative, got %v", m.Conviction)
	}
	return nil
}
