package model

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestComputeMetrics(t *testing.T) {
	// Transactions: {A,B}, {A,B,C}, {A}, {B,C}. For the rule A => B:
	// support(A)=0.75, support(B)=0.75, support(A∪B)=0.5.
	m := ComputeMetrics(0.5, 0.75, 0.75)

	if math.Abs(m.Support-0.5) > epsilon {
		t.Errorf("support = %v, want 0.5", m.Support)
	}
	if math.Abs(m.Confidence-2.0/3.0) > epsilon {
		t.Errorf("confidence = %v, want 2/3", m.Confidence)
	}
	if math.Abs(m.Lift-(2.0/3.0)/0.75) > epsilon {
		t.Errorf("lift = %v, want %v", m.Lift, (2.0/3.0)/0.75)
	}
	if math.Abs(m.Leverage-(0.5-0.75*0.75)) > epsilon {
		t.Errorf("leverage = %v, want %v", m.Leverage, 0.5-0.75*0.75)
	}
	wantConviction := (1 - 0.75) / (1 - 2.0/3.0)
	if math.Abs(m.Conviction-wantConviction) > epsilon {
		t.Errorf("conviction = %v, want %v", m.Conviction, wantConviction)
	}
	wantJaccard := 0.5 / (0.75 + 0.75 - 0.5)
	if math.Abs(m.Jaccard-wantJaccard) > epsilon {
		t.Errorf("jaccard = %v, want %v", m.Jaccard, wantJaccard)
	}
}

func TestComputeMetrics_ConvictionInfiniteAtFullConfidence(t *testing.T) {
	// Antecedent always implies consequent: confidence is exactly 1.
	m := ComputeMetrics(0.5, 0.5, 0.75)

	if m.Confidence != 1 {
		t.Fatalf("confidence = %v, want 1", m.Confidence)
	}
	if !math.IsInf(m.Conviction, 1) {
		t.Errorf("conviction = %v, want +Inf", m.Conviction)
	}
}

func TestComputeMetrics_LiftOneUnderIndependence(t *testing.T) {
	// Joint support equals the product of the marginals.
	m := ComputeMetrics(0.25, 0.5, 0.5)

	if math.Abs(m.Lift-1) > epsilon {
		t.Errorf("lift = %v, want 1", m.Lift)
	}
	if math.Abs(m.Leverage) > epsilon {
		t.Errorf("leverage = %v, want 0", m.Leverage)
	}
	if math.Abs(m.Information) > epsilon {
		t.Errorf("information gain = %v, want 0", m.Information)
	}
}

func TestComputeMetrics_CertaintyGuardedAtUnitConsequent(t *testing.T) {
	m := ComputeMetrics(0.5, 0.5, 1.0)

	if m.Certainty != 0 {
		t.Errorf("certainty = %v, want 0 when consequent support is 1", m.Certainty)
	}
}

func TestParseMetric(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Metric
		wantErr bool
	}{
		{name: "lift", input: "lift", want: MetricLift},
		{name: "conviction", input: "conviction", want: MetricConviction},
		{name: "unknown", input: "piquancy", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMetric(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMetric(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMetric(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMetrics_Value_CoversAllMetrics(t *testing.T) {
	m := ComputeMetrics(0.5, 0.75, 0.75)

	for _, metric := range AllMetrics() {
		if math.IsNaN(m.Value(metric)) {
			t.Errorf("Value(%s) is NaN", metric)
		}
	}
	if !math.IsNaN(m.Value(Metric("bogus"))) {
		t.Error("Value of unknown metric should be NaN")
	}
}
