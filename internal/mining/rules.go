package mining

import (
	"sort"

	"github.com/fdelorme/stroke-rules/internal/model"
)

// deriveRules generates every non-trivial antecedent/consequent split
// of each frequent itemset of size ≥ 2 and keeps the splits meeting
// the confidence threshold. All marginals are present in the support
// table because every subset of a frequent itemset is itself frequent.
func (m *Miner) deriveRules(itemsets []model.Itemset, supports map[string]int, n int) model.Rules {
	var rules model.Rules

	for _, full := range itemsets {
		size := full.Size()
		if size < 2 {
			continue
		}

		// Enumerate antecedents as bitmasks over the itemset, skipping
		// the empty set and the full set.
		for mask := 1; mask < (1<<size)-1; mask++ {
			var ant, cons []string
			for i, item := range full.Items {
				if mask&(1<<i) != 0 {
					ant = append(ant, item)
				} else {
					cons = append(cons, item)
				}
			}

			antecedent := model.Itemset{Items: ant, Count: supports[model.Itemset{Items: ant}.Key()]}
			consequent := model.Itemset{Items: cons, Count: supports[model.Itemset{Items: cons}.Key()]}

			metrics := model.ComputeMetrics(
				full.Support(n),
				antecedent.Support(n),
				consequent.Support(n),
			)
			if metrics.Confidence < m.cfg.MinConfidence {
				continue
			}

			rules = append(rules, model.Rule{
				Antecedent: antecedent,
				Consequent: consequent,
				Metrics:    metrics,
			})
		}
	}

	// Canonicalize the output order; callers re-rank by metric.
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].String() < rules[j].String()
	})

	return rules
}
