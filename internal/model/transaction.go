package model

import (
	"sort"
	"strings"
)

// itemSeparator joins item labels into a canonical key. The unit
// separator never appears in encoded items.
const itemSeparator = "\x1f"

// Transaction is the encoded form of one dataset row: a set of discrete
// item labels such as "age=30-60" or "hypertension=1". Items are kept
// sorted and deduplicated; a Transaction is immutable once built.
type Transaction struct {
	Items []string
	Row   int
}

// NewTransaction builds a transaction from a row index and its item
// labels. The input slice is copied, sorted, and deduplicated.
func NewTransaction(row int, items []string) Transaction {
	sorted := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		sorted = append(sorted, item)
	}
	sort.Strings(sorted)
	return Transaction{Row: row, Items: sorted}
}

// Contains reports whether every item in the sorted slice items is
// present in the transaction. Both slices must be sorted.
func (t Transaction) Contains(items []string) bool {
	return containsSorted(t.Items, items)
}

// Key returns the canonical string form of the transaction's items,
// suitable for storage.
func (t Transaction) Key() string {
	return strings.Join(t.Items, itemSeparator)
}

// ParseItems splits a canonical key back into item labels.
func ParseItems(key string) []string {
	if key == "" {
		return nil
	}
	return strings.Split(key, itemSeparator)
}

// containsSorted reports whether sorted slice sub is a subset of sorted
// slice set, using a single merge pass.
func containsSorted(set, sub []string) bool {
	if len(sub) > len(set) {
		return false
	}
	i := 0
	for _, want := range sub {
		for i < len(set) && set[i] < want {
			i++
		}
		if i >= len(set) || set[i] != want {
			return false
		}
		i++
	}
	return true
}
