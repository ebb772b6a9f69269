package model

import (
	"fmt"
	"sort"
	"strings"
)

// Itemset is a sorted set of item labels together with its absolute
// support count (the number of transactions containing every item).
//
// Support is anti-monotone: for any itemsets A ⊆ B,
// support(A) ≥ support(B). The miner relies on this to prune
// candidates, and tests assert it over the mined lattice.
type Itemset struct {
	Items []string
	Count int
}

// NewItemset builds an itemset with a zero count. The input is copied,
// sorted, and deduplicated.
func NewItemset(items ...string) Itemset {
	t := NewTransaction(0, items)
	return Itemset{Items: t.Items}
}

// Size returns the number of items.
func (s Itemset) Size() int {
	return len(s.Items)
}

// Key returns the canonical lookup key for the itemset.
func (s Itemset) Key() string {
	return strings.Join(s.Items, itemSeparator)
}

// Support returns the support fraction given the total transaction
// count n.
func (s Itemset) Support(n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(s.Count) / float64(n)
}

// Contains reports whether other is a subset of s.
func (s Itemset) Contains(other Itemset) bool {
	return containsSorted(s.Items, other.Items)
}

// Union returns the sorted union of two itemsets with a zero count.
func (s Itemset) Union(other Itemset) Itemset {
	merged := make([]string, 0, len(s.Items)+len(other.Items))
	merged = append(merged, s.Items...)
	merged = append(merged, other.Items...)
	return NewItemset(merged...)
}

// Minus returns the items of s that are not in other, with a zero count.
func (s Itemset) Minus(other Itemset) Itemset {
	var rest []string
	j := 0
	for _, item := range s.Items {
		for j < len(other.Items) && other.Items[j] < item {
			j++
		}
		if j < len(other.Items) && other.Items[j] == item {
			continue
		}
		rest = append(rest, item)
	}
	out := Itemset{Items: rest}
	sort.Strings(out.Items)
	return out
}

// String renders the itemset as {a, b, c}.
func (s Itemset) String() string {
	return fmt.Sprintf("{%s}", strings.Join(s.Items, ", "))
}
