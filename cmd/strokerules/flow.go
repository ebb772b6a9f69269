package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func flowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flow",
		Short: "Run the whole pipeline: prepare, mine, report",
		Long: `Run the full analysis in one invocation: load and encode the CSV,
mine frequent itemsets and rules with the given thresholds, and print
the ranked report.`,
		RunE: runFlow,
	}

	cmd.Flags().StringP("input", "i", "", "path to the stroke dataset CSV")
	cmd.Flags().Float64P("min-support", "s", 0.001, "minimum support fraction for frequent itemsets")
	cmd.Flags().Float64P("min-confidence", "c", 0.3, "minimum confidence for emitted rules")
	cmd.Flags().IntP("top", "n", 5, "number of rules per ranking")
	cmd.Flags().String("csv", "", "export the full ranked rule table to this CSV file")
	cmd.Flags().String("chart", "", "write a support/confidence scatter chart to this file")

	return cmd
}

func runFlow(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// Bound at run time: prepare, mine, rules, and flow share these keys.
	_ = viper.BindPFlag("data.input", cmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("mining.min_support", cmd.Flags().Lookup("min-support"))
	_ = viper.BindPFlag("mining.min_confidence", cmd.Flags().Lookup("min-confidence"))
	_ = viper.BindPFlag("report.top", cmd.Flags().Lookup("top"))
	_ = viper.BindPFlag("report.csv", cmd.Flags().Lookup("csv"))
	_ = viper.BindPFlag("report.chart", cmd.Flags().Lookup("chart"))

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	_, rules, err := minePhase(ctx, store)
	if err != nil || len(rules) == 0 {
		return err
	}

	return reportPhase(rules)
}
