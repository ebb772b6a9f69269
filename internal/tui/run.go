package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fdelorme/stroke-rules/internal/model"
)

// Run starts the interactive rule explorer and blocks until the user
// quits or the context is canceled.
func Run(ctx context.Context, rules model.Rules) error {
	if len(rules) == 0 {
		return fmt.Errorf("no rules to explore")
	}

	p := tea.NewProgram(New(rules), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("explorer failed: %w", err)
	}
	return nil
}
