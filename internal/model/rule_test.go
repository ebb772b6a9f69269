package model

import (
	"reflect"
	"testing"
)

func makeRule(ant, cons []string, metrics Metrics) Rule {
	return Rule{
		Antecedent: NewItemset(ant...),
		Consequent: NewItemset(cons...),
		Metrics:    metrics,
	}
}

func TestRule_Validate(t *testing.T) {
	valid := Metrics{Support: 0.5, Confidence: 0.6, Lift: 1.2, Conviction: 1.1}

	tests := []struct {
		name    string
		rule    Rule
		wantErr bool
	}{
		{
			name:    "valid rule",
			rule:    makeRule([]string{"age=>60"}, []string{"stroke=1"}, valid),
			wantErr: false,
		},
		{
			name:    "empty antecedent",
			rule:    makeRule(nil, []string{"stroke=1"}, valid),
			wantErr: true,
		},
		{
			name:    "empty consequent",
			rule:    makeRule([]string{"age=>60"}, nil, valid),
			wantErr: true,
		},
		{
			name:    "overlapping sides",
			rule:    makeRule([]string{"age=>60", "stroke=1"}, []string{"stroke=1"}, valid),
			wantErr: true,
		},
		{
			name:    "support out of range",
			rule:    makeRule([]string{"a"}, []string{"b"}, Metrics{Support: 1.5}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRule_String(t *testing.T) {
	r := makeRule([]string{"hypertension=1", "age=>60"}, []string{"stroke=1"}, Metrics{})

	want := "age=>60 + hypertension=1 => stroke=1"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRules_SortBy_DescendingWithStableTies(t *testing.T) {
	rs := Rules{
		makeRule([]string{"b"}, []string{"x"}, Metrics{Lift: 1.0}),
		makeRule([]string{"a"}, []string{"x"}, Metrics{Lift: 1.0}),
		makeRule([]string{"c"}, []string{"x"}, Metrics{Lift: 2.0}),
	}

	rs.SortBy(MetricLift)

	got := []string{rs[0].String(), rs[1].String(), rs[2].String()}
	want := []string{"c => x", "a => x", "b => x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestRules_Top(t *testing.T) {
	rs := Rules{
		makeRule([]string{"a"}, []string{"x"}, Metrics{}),
		makeRule([]string{"b"}, []string{"x"}, Metrics{}),
	}

	if got := rs.Top(1); len(got) != 1 {
		t.Errorf("Top(1) returned %d rules", len(got))
	}
	if got := rs.Top(10); len(got) != 2 {
		t.Errorf("Top(10) returned %d rules", len(got))
	}
	if got := rs.Top(0); len(got) != 0 {
		t.Errorf("Top(0) returned %d rules", len(got))
	}
}

func TestRules_RankedBy_LeavesReceiverUntouched(t *testing.T) {
	rs := Rules{
		makeRule([]string{"a"}, []string{"x"}, Metrics{Lift: 1.0}),
		makeRule([]string{"b"}, []string{"x"}, Metrics{Lift: 2.0}),
	}

	ranked := rs.RankedBy(MetricLift)

	if ranked[0].String() != "b => x" {
		t.Errorf("ranked[0] = %s, want b => x", ranked[0])
	}
	if rs[0].String() != "a => x" {
		t.Errorf("receiver order changed: rs[0] = %s", rs[0])
	}
}

func TestRules_Validate_RejectsDuplicates(t *testing.T) {
	valid := Metrics{Support: 0.5, Confidence: 0.6, Lift: 1.2, Conviction: 1.1}
	rs := Rules{
		makeRule([]string{"a"}, []string{"x"}, valid),
		makeRule([]string{"a"}, []string{"x"}, valid),
	}

	if err := rs.Validate(); err == nil {
		t.Error("expected duplicate rule error")
	}
}
