package dataset

import (
	"reflect"
	"testing"
)

func TestNewDiscretizer_Labels(t *testing.T) {
	d, err := NewDiscretizer([]float64{18.5, 25, 30})
	if err != nil {
		t.Fatalf("NewDiscretizer() error = %v", err)
	}

	want := []string{"<18.5", "18.5-25", "25-30", ">30"}
	if got := d.Labels(); !reflect.DeepEqual(got, want) {
		t.Errorf("Labels() = %v, want %v", got, want)
	}
}

func TestNewDiscretizer_RejectsBadCuts(t *testing.T) {
	if _, err := NewDiscretizer(nil); err == nil {
		t.Error("expected error for empty cuts")
	}
	if _, err := NewDiscretizer([]float64{60, 30}); err == nil {
		t.Error("expected error for descending cuts")
	}
}

func TestDiscretizer_Band(t *testing.T) {
	d, err := NewDiscretizer([]float64{30, 60})
	if err != nil {
		t.Fatalf("NewDiscretizer() error = %v", err)
	}

	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "below first cut", value: 12, want: "<30"},
		{name: "on first cut is right-inclusive", value: 30, want: "<30"},
		{name: "middle band", value: 45, want: "30-60"},
		{name: "on last cut", value: 60, want: "30-60"},
		{name: "above last cut", value: 82, want: ">60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Band(tt.value); got != tt.want {
				t.Errorf("Band(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
