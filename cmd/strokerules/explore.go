package main

import (
	"github.com/spf13/cobra"

	"github.com/fdelorme/stroke-rules/internal/tui"
)

func exploreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Browse mined rules interactively",
		Long: `Open an interactive terminal explorer over the most recent mining
run: one tab per ranking metric, a scrollable rule table, and a detail
pane showing every metric of the selected rule.`,
		RunE: runExplore,
	}
}

func runExplore(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	rules, err := loadLatestRules(ctx, store)
	if err != nil {
		return err
	}

	return tui.Run(ctx, rules)
}
