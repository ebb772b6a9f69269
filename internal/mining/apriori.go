package mining

import (
	"context"
	"fmt"
	"sort"

	"github.com/fdelorme/stroke-rules/internal/model"
	"github.com/schollz/progressbar/v3"
)

// frequentItemsets enumerates the frequent itemset lattice level by
// level. It returns every frequent itemset, a key→count support table
// covering all of them, and the number of levels explored.
func (m *Miner) frequentItemsets(ctx context.Context, transactions []model.Transaction) ([]model.Itemset, map[string]int, int, error) {
	n := len(transactions)

	var all []model.Itemset
	supports := make(map[string]int)

	level := m.frequentSingles(transactions)
	levels := 0

	for len(level) > 0 {
		levels++
		for _, s := range level {
			supports[s.Key()] = s.Count
		}
		all = append(all, level...)

		if m.cfg.MaxItems > 0 && levels >= m.cfg.MaxItems {
			break
		}

		select {
		case <-ctx.Done():
			return nil, nil, 0, fmt.Errorf("mining canceled at level %d: %w", levels, ctx.Err())
		default:
		}

		candidates := joinLevel(level)
		candidates = pruneByInfrequentSubsets(candidates, supports)
		if len(candidates) == 0 {
			break
		}

		m.countSupports(transactions, candidates, levels+1)

		var next []model.Itemset
		for _, c := range candidates {
			if m.isFrequent(c.Count, n) {
				next = append(next, c)
			}
		}
		level = next
	}

	return all, supports, levels, nil
}

// frequentSingles counts every item in one pass and keeps the frequent
// ones sorted lexicographically for deterministic candidate joins.
func (m *Miner) frequentSingles(transactions []model.Transaction) []model.Itemset {
	counts := make(map[string]int)
	for _, txn := range transactions {
		for _, item := range txn.Items {
			counts[item]++
		}
	}

	items := make([]string, 0, len(counts))
	for item := range counts {
		items = append(items, item)
	}
	sort.Strings(items)

	var level []model.Itemset
	for _, item := range items {
		if m.isFrequent(counts[item], len(transactions)) {
			level = append(level, model.Itemset{Items: []string{item}, Count: counts[item]})
		}
	}
	return level
}

// isFrequent applies the support threshold as a fraction of n.
func (m *Miner) isFrequent(count, n int) bool {
	return float64(count)/float64(n) >= m.cfg.MinSupport
}

// joinLevel generates (k+1)-item candidates from the sorted frequent
// k-itemsets by joining pairs sharing their first k-1 items. The input
// ordering guarantees candidates come out sorted and unique.
func joinLevel(level []model.Itemset) []model.Itemset {
	var candidates []model.Itemset
	k := level[0].Size()

	for i := 0; i < len(level); i++ {
		for j := i + 1; j < len(level); j++ {
			if !samePrefix(level[i].Items, level[j].Items, k-1) {
				break
			}
			items := make([]string, 0, k+1)
			items = append(items, level[i].Items...)
			items = append(items, level[j].Items[k-1])
			candidates = append(candidates, model.Itemset{Items: items})
		}
	}
	return candidates
}

func samePrefix(a, b []string, n int) bool {
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// pruneByInfrequentSubsets drops candidates containing any infrequent
// (k-1)-subset. Support is anti-monotone, so such candidates can never
// be frequent.
func pruneByInfrequentSubsets(candidates []model.Itemset, supports map[string]int) []model.Itemset {
	kept := candidates[:0]

subsets:
	for _, c := range candidates {
		sub := make([]string, len(c.Items)-1)
		for skip := range c.Items {
			sub = sub[:0]
			for i, item := range c.Items {
				if i != skip {
					sub = append(sub, item)
				}
			}
			if _, ok := supports[model.Itemset{Items: sub}.Key()]; !ok {
				continue subsets
			}
		}
		kept = append(kept, c)
	}
	return kept
}

// countSupports counts each candidate's support in one pass over the
// transactions, reporting progress when a writer is configured.
func (m *Miner) countSupports(transactions []model.Transaction, candidates []model.Itemset, level int) {
	var bar *progressbar.ProgressBar
	if m.cfg.ProgressWriter != nil {
		bar = progressbar.NewOptions(len(transactions),
			progressbar.OptionSetWriter(m.cfg.ProgressWriter),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription(fmt.Sprintf("Counting %d-item candidates...", level)),
		)
	}

	for _, txn := range transactions {
		for i := range candidates {
			if txn.Contains(candidates[i].Items) {
				candidates[i].Count++
			}
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}
}
