// Package mining implements support-threshold frequent itemset
// enumeration (Apriori) and association rule derivation with
// interestingness scoring.
package mining

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fdelorme/stroke-rules/internal/model"
)

// Config holds the mining thresholds.
type Config struct {
	// ProgressWriter receives the per-level progress bar. Nil disables
	// progress output entirely.
	ProgressWriter io.Writer
	// MinSupport is the minimum support fraction an itemset must reach
	// to be considered frequent.
	MinSupport float64
	// MinConfidence is the minimum confidence a rule must reach to be
	// emitted.
	MinConfidence float64
	// MaxItems caps the itemset size; 0 means unbounded.
	MaxItems int
}

// Validate ensures the thresholds are usable.
func (c Config) Validate() error {
	if c.MinSupport <= 0 || c.MinSupport > 1 {
		return fmt.Errorf("min support must be in (0, 1], got %v", c.MinSupport)
	}
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return fmt.Errorf("min confidence must be in [0, 1], got %v", c.MinConfidence)
	}
	if c.MaxItems < 0 {
		return fmt.Errorf("max items cannot be negative, got %d", c.MaxItems)
	}
	return nil
}

// Result is the outcome of one mining run. Rules come back in a
// canonical order so identical inputs produce identical output.
type Result struct {
	Rules        model.Rules
	Itemsets     []model.Itemset
	Transactions int
	Levels       int
}

// Miner runs Apriori and rule derivation over a transaction set. A
// Miner is stateless between runs and safe to reuse.
type Miner struct {
	cfg Config
}

// NewMiner creates a miner with validated thresholds.
func NewMiner(cfg Config) (*Miner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mining config: %w", err)
	}
	return &Miner{cfg: cfg}, nil
}

// Mine enumerates frequent itemsets over the transactions and derives
// every rule meeting both thresholds. Degenerate thresholds yield an
// empty result, not an error. Cancellation is honored between lattice
// levels.
func (m *Miner) Mine(ctx context.Context, transactions []model.Transaction) (*Result, error) {
	if len(transactions) == 0 {
		return nil, fmt.Errorf("no transactions to mine")
	}

	itemsets, supports, levels, err := m.frequentItemsets(ctx, transactions)
	if err != nil {
		return nil, err
	}

	rules := m.deriveRules(itemsets, supports, len(transactions))

	slog.Info("mining complete",
		"transactions", len(transactions),
		"frequent_itemsets", len(itemsets),
		"levels", levels,
		"rules", len(rules),
		"min_support", m.cfg.MinSupport,
		"min_confidence", m.cfg.MinConfidence)

	return &Result{
		Rules:        rules,
		Itemsets:     itemsets,
		Transactions: len(transactions),
		Levels:       levels,
	}, nil
}
