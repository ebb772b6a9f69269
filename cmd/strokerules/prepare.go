package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fdelorme/stroke-rules/internal/cli"
	"github.com/fdelorme/stroke-rules/internal/common"
	"github.com/fdelorme/stroke-rules/internal/dataset"
	"github.com/fdelorme/stroke-rules/internal/model"
	"github.com/fdelorme/stroke-rules/internal/storage"
)

func prepareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Load, clean, and encode the stroke dataset",
		Long: `Load the stroke risk CSV, impute missing values, discretize the
continuous columns into bands, and encode every row as a transaction of
field=value items. The encoded snapshot is stored for mining.`,
		RunE: runPrepare,
	}

	cmd.Flags().StringP("input", "i", "", "path to the stroke dataset CSV")
	cmd.Flags().String("impute-numeric", "", "numeric imputation policy (mean, median, drop)")
	cmd.Flags().String("impute-categorical", "", "categorical imputation policy (mode, drop)")

	return cmd
}

func runPrepare(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// Bound at run time: prepare, mine, and flow share these keys.
	_ = viper.BindPFlag("data.input", cmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("data.impute_numeric", cmd.Flags().Lookup("impute-numeric"))
	_ = viper.BindPFlag("data.impute_categorical", cmd.Flags().Lookup("impute-categorical"))

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	_, _, err = preparePhase(ctx, store)
	return err
}

// preparePhase loads, cleans, encodes, and stores the dataset named by
// data.input. It is shared by the prepare, mine, and flow commands.
func preparePhase(ctx context.Context, store *storage.SQLiteStorage) (int64, []model.Transaction, error) {
	input := viper.GetString("data.input")
	if input == "" {
		return 0, nil, common.NewUserError("no input file; pass --input or set data.input", common.ErrMissingConfig)
	}

	slog.Info(cli.FormatTitle("Preparing dataset"))
	slog.Info("Loading", "path", input)

	records, err := dataset.Load(input)
	if err != nil {
		return 0, nil, err
	}

	transactions, summary, err := dataset.Prepare(records, prepareOptions())
	if err != nil {
		return 0, nil, fmt.Errorf("failed to prepare dataset: %w", err)
	}

	datasetID, err := store.SaveDataset(ctx, input, transactions)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to save dataset: %w", err)
	}

	content := fmt.Sprintf("Rows read:       %d\nRows encoded:    %d\nRows dropped:    %d\nDistinct items:  %d",
		summary.RowsIn, summary.RowsOut, summary.RowsDropped, summary.DistinctItems)
	for col, n := range summary.Imputed {
		content += fmt.Sprintf("\nImputed %s: %d", col, n)
	}
	fmt.Println(cli.RenderBox("Preparation summary", content))
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Stored dataset #%d", datasetID)))

	return datasetID, transactions, nil
}
