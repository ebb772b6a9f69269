package model

import (
	"reflect"
	"testing"
)

func TestNewItemset_SortsAndDeduplicates(t *testing.T) {
	s := NewItemset("stroke=1", "age=>60", "stroke=1", "hypertension=1")

	want := []string{"age=>60", "hypertension=1", "stroke=1"}
	if !reflect.DeepEqual(s.Items, want) {
		t.Errorf("items = %v, want %v", s.Items, want)
	}
}

func TestItemset_Union(t *testing.T) {
	a := NewItemset("age=>60", "stroke=1")
	b := NewItemset("stroke=1", "bmi=>30")

	got := a.Union(b)
	want := []string{"age=>60", "bmi=>30", "stroke=1"}
	if !reflect.DeepEqual(got.Items, want) {
		t.Errorf("union = %v, want %v", got.Items, want)
	}
}

func TestItemset_Minus(t *testing.T) {
	full := NewItemset("age=>60", "bmi=>30", "stroke=1")
	ant := NewItemset("age=>60")

	got := full.Minus(ant)
	want := []string{"bmi=>30", "stroke=1"}
	if !reflect.DeepEqual(got.Items, want) {
		t.Errorf("minus = %v, want %v", got.Items, want)
	}
}

func TestItemset_Contains(t *testing.T) {
	tests := []struct {
		name  string
		set   Itemset
		other Itemset
		want  bool
	}{
		{
			name:  "subset",
			set:   NewItemset("a", "b", "c"),
			other: NewItemset("a", "c"),
			want:  true,
		},
		{
			name:  "equal sets",
			set:   NewItemset("a", "b"),
			other: NewItemset("a", "b"),
			want:  true,
		},
		{
			name:  "missing item",
			set:   NewItemset("a", "b"),
			other: NewItemset("a", "z"),
			want:  false,
		},
		{
			name:  "empty subset",
			set:   NewItemset("a"),
			other: NewItemset(),
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Contains(tt.other); got != tt.want {
				t.Errorf("Contains() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestItemset_Support(t *testing.T) {
	s := NewItemset("a")
	s.Count = 3

	if got := s.Support(4); got != 0.75 {
		t.Errorf("Support(4) = %v, want 0.75", got)
	}
	if got := s.Support(0); got != 0 {
		t.Errorf("Support(0) = %v, want 0", got)
	}
}

func TestTransaction_KeyRoundTrip(t *testing.T) {
	txn := NewTransaction(7, []string{"stroke=1", "age=<30"})

	got := ParseItems(txn.Key())
	if !reflect.DeepEqual(got, txn.Items) {
		t.Errorf("ParseItems(Key()) = %v, want %v", got, txn.Items)
	}

	if ParseItems("") != nil {
		t.Error("ParseItems of empty key should be nil")
	}
}
