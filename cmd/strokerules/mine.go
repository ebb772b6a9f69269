package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fdelorme/stroke-rules/internal/cli"
	"github.com/fdelorme/stroke-rules/internal/common"
	"github.com/fdelorme/stroke-rules/internal/mining"
	"github.com/fdelorme/stroke-rules/internal/model"
	"github.com/fdelorme/stroke-rules/internal/storage"
)

func mineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mine",
		Short: "Mine association rules from the prepared dataset",
		Long: `Enumerate frequent itemsets over the most recently prepared dataset
(or a fresh one when --input is given), derive every rule meeting the
support and confidence thresholds, and store the scored rule set.`,
		RunE: runMine,
	}

	cmd.Flags().StringP("input", "i", "", "prepare this CSV first instead of using the stored dataset")
	cmd.Flags().Float64P("min-support", "s", 0.001, "minimum support fraction for frequent itemsets")
	cmd.Flags().Float64P("min-confidence", "c", 0.3, "minimum confidence for emitted rules")
	cmd.Flags().Int("max-items", 0, "cap on itemset size (0 = unbounded)")

	return cmd
}

func runMine(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// Bound at run time: prepare, mine, and flow share these keys.
	_ = viper.BindPFlag("data.input", cmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("mining.min_support", cmd.Flags().Lookup("min-support"))
	_ = viper.BindPFlag("mining.min_confidence", cmd.Flags().Lookup("min-confidence"))
	_ = viper.BindPFlag("mining.max_items", cmd.Flags().Lookup("max-items"))

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	_, rules, err := minePhase(ctx, store)
	if err != nil {
		return err
	}

	if len(rules) > 0 {
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Mined %d rules", len(rules))))
	}
	return nil
}

// minePhase loads the transactions (preparing them first when an input
// is configured), runs the miner, and stores the run. An empty rule
// set is a reported outcome, not an error.
func minePhase(ctx context.Context, store *storage.SQLiteStorage) (int64, model.Rules, error) {
	var datasetID int64
	var transactions []model.Transaction

	if viper.GetString("data.input") != "" {
		var err error
		datasetID, transactions, err = preparePhase(ctx, store)
		if err != nil {
			return 0, nil, err
		}
	} else {
		ds, err := store.LatestDataset(ctx)
		if errors.Is(err, storage.ErrNotFound) {
			return 0, nil, common.NewUserError("run 'strokerules prepare' first or pass --input", common.ErrNoDataset)
		}
		if err != nil {
			return 0, nil, err
		}

		transactions, err = store.GetTransactions(ctx, ds.ID)
		if err != nil {
			return 0, nil, err
		}
		datasetID = ds.ID
		slog.Info("Using stored dataset", "id", ds.ID, "source", ds.Source, "rows", ds.Rows)
	}

	cfg := miningConfig()
	miner, err := mining.NewMiner(cfg)
	if err != nil {
		return 0, nil, err
	}

	slog.Info(cli.FormatTitle("Mining association rules"))
	slog.Info("Thresholds", "min_support", cfg.MinSupport, "min_confidence", cfg.MinConfidence)

	result, err := miner.Mine(ctx, transactions)
	if err != nil {
		return 0, nil, fmt.Errorf("mining failed: %w", err)
	}

	if len(result.Rules) == 0 {
		fmt.Println(cli.FormatWarning("No rules matched the thresholds; try lowering --min-support or --min-confidence"))
		return 0, nil, nil
	}

	runID, err := store.SaveRun(ctx, datasetID, cfg.MinSupport, cfg.MinConfidence, result.Rules)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to save run: %w", err)
	}

	slog.Info("Stored mining run", "id", runID,
		"frequent_itemsets", len(result.Itemsets), "rules", len(result.Rules))

	return runID, result.Rules, nil
}
