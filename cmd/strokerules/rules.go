package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fdelorme/stroke-rules/internal/cli"
	"github.com/fdelorme/stroke-rules/internal/common"
	"github.com/fdelorme/stroke-rules/internal/model"
	"github.com/fdelorme/stroke-rules/internal/report"
	"github.com/fdelorme/stroke-rules/internal/storage"
)

// reportMetrics are the rankings shown by default, in display order.
var reportMetrics = []model.Metric{
	model.MetricLift,
	model.MetricConfidence,
	model.MetricConviction,
	model.MetricJaccard,
	model.MetricCertainty,
	model.MetricInformation,
}

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Report ranked rules from the last mining run",
		Long: `Print the best rules of the most recent mining run, ranked by one or
all interestingness metrics, with optional CSV and chart export.`,
		RunE: runRules,
	}

	cmd.Flags().String("by", "", "rank by a single metric (support, confidence, lift, leverage, conviction, jaccard, certainty, information)")
	cmd.Flags().IntP("top", "n", 5, "number of rules per ranking")
	cmd.Flags().String("csv", "", "export the full ranked rule table to this CSV file")
	cmd.Flags().String("chart", "", "write a support/confidence scatter chart to this file")

	return cmd
}

func runRules(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// Bound at run time: rules and flow share the report keys.
	_ = viper.BindPFlag("report.by", cmd.Flags().Lookup("by"))
	_ = viper.BindPFlag("report.top", cmd.Flags().Lookup("top"))
	_ = viper.BindPFlag("report.csv", cmd.Flags().Lookup("csv"))
	_ = viper.BindPFlag("report.chart", cmd.Flags().Lookup("chart"))

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	rules, err := loadLatestRules(ctx, store)
	if err != nil {
		return err
	}

	return reportPhase(rules)
}

// loadLatestRules fetches the rules of the most recent mining run.
func loadLatestRules(ctx context.Context, store *storage.SQLiteStorage) (model.Rules, error) {
	run, err := store.LatestRun(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, common.NewUserError("run 'strokerules mine' first", common.ErrNoRules)
	}
	if err != nil {
		return nil, err
	}

	rules, err := store.GetRules(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	return rules, nil
}

// reportPhase renders rankings and handles CSV/chart export. It is
// shared by the rules and flow commands.
func reportPhase(rules model.Rules) error {
	metrics := reportMetrics
	if name := viper.GetString("report.by"); name != "" {
		metric, err := model.ParseMetric(name)
		if err != nil {
			return common.NewUserError("invalid --by metric", err)
		}
		metrics = []model.Metric{metric}
	}

	formatter := report.NewFormatter(viper.GetInt("report.top"))
	fmt.Println(formatter.FormatReport(rules, metrics))

	if path := viper.GetString("report.csv"); path != "" {
		if err := exportCSV(rules, metrics[0], path); err != nil {
			return err
		}
		fmt.Println(cli.FormatSuccess("Exported rules to " + path))
	}

	if path := viper.GetString("report.chart"); path != "" {
		if err := report.WriteScatter(rules, path); err != nil {
			return fmt.Errorf("failed to write chart: %w", err)
		}
		fmt.Println(cli.FormatSuccess("Wrote chart to " + path))
	}

	return nil
}

func exportCSV(rules model.Rules, metric model.Metric, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := report.WriteCSV(f, rules.RankedBy(metric)); err != nil {
		return fmt.Errorf("failed to export CSV: %w", err)
	}
	return f.Sync()
}
