package model

import (
	"fmt"
	"sort"
	"strings"
)

// Rule is a directed association between two disjoint itemsets whose
// union is frequent. The metric bundle is derived from the support
// counts recorded during mining.
type Rule struct {
	Antecedent Itemset
	Consequent Itemset
	Metrics    Metrics
}

// String renders the rule as "a + b => c".
func (r Rule) String() string {
	return fmt.Sprintf("%s => %s",
		strings.Join(r.Antecedent.Items, " + "),
		strings.Join(r.Consequent.Items, " + "))
}

// Validate ensures the rule is structurally sound.
func (r Rule) Validate() error {
	if r.Antecedent.Size() == 0 {
		return fmt.Errorf("rule antecedent cannot be empty")
	}
	if r.Consequent.Size() == 0 {
		return fmt.Errorf("rule consequent cannot be empty")
	}
	for _, item := range r.Consequent.Items {
		if containsSorted(r.Antecedent.Items, []string{item}) {
			return fmt.Errorf("antecedent and consequent must be disjoint, both contain %q", item)
		}
	}
	if err := r.Metrics.Validate(); err != nil {
		return fmt.Errorf("invalid metrics for rule %s: %w", r, err)
	}
	return nil
}

// Rules is a slice of rules supporting deterministic ranking.
type Rules []Rule

// SortBy orders the rules by the given metric, descending. Ties break
// on the rule's string form so identical inputs always produce
// identical rankings.
func (rs Rules) SortBy(metric Metric) {
	sort.SliceStable(rs, func(i, j int) bool {
		vi, vj := rs[i].Metrics.Value(metric), rs[j].Metrics.Value(metric)
		if vi != vj {
			return vi > vj
		}
		return rs[i].String() < rs[j].String()
	})
}

// Top returns the first n rules, or all of them if fewer exist. The
// receiver is not modified.
func (rs Rules) Top(n int) Rules {
	if n <= 0 {
		return Rules{}
	}
	if n > len(rs) {
		n = len(rs)
	}
	out := make(Rules, n)
	copy(out, rs[:n])
	return out
}

// RankedBy returns a sorted copy without disturbing the receiver's
// order.
func (rs Rules) RankedBy(metric Metric) Rules {
	out := make(Rules, len(rs))
	copy(out, rs)
	out.SortBy(metric)
	return out
}

// Validate checks every rule and rejects duplicates.
func (rs Rules) Validate() error {
	seen := make(map[string]bool, len(rs))
	for i, rule := range rs {
		if err := rule.Validate(); err != nil {
			return fmt.Errorf("invalid rule at index %d: %w", i, err)
		}
		key := rule.String()
		if seen[key] {
			return fmt.Errorf("duplicate rule %s", key)
		}
		seen[key] = true
	}
	return nil
}
