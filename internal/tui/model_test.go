package tui

import (
	"math"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdelorme/stroke-rules/internal/model"
)

func explorerRules() model.Rules {
	return model.Rules{
		{
			Antecedent: model.NewItemset("age=>60"),
			Consequent: model.NewItemset("stroke=1"),
			Metrics:    model.Metrics{Support: 0.1, Confidence: 0.8, Lift: 3.0, Conviction: 2.0},
		},
		{
			Antecedent: model.NewItemset("glucose=<100"),
			Consequent: model.NewItemset("stroke=0"),
			Metrics:    model.Metrics{Support: 0.4, Confidence: 1.0, Lift: 1.1, Conviction: math.Inf(1)},
		},
	}
}

func TestNew_StartsOnLift(t *testing.T) {
	m := New(explorerRules())

	assert.Equal(t, model.MetricLift, m.ActiveMetric())
}

func TestModel_CyclesMetrics(t *testing.T) {
	m := New(explorerRules())
	start := m.ActiveMetric()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	assert.NotEqual(t, start, m.ActiveMetric())

	prev, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = prev.(Model)
	assert.Equal(t, start, m.ActiveMetric())
}

func TestModel_CycleWrapsAround(t *testing.T) {
	m := New(explorerRules())
	count := len(model.AllMetrics())

	var updated tea.Model = m
	for i := 0; i < count; i++ {
		updated, _ = updated.(Model).Update(tea.KeyMsg{Type: tea.KeyRight})
	}

	assert.Equal(t, model.MetricLift, updated.(Model).ActiveMetric())
}

func TestModel_QuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		m := New(explorerRules())
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd, "key %v should quit", msg)
	}
}

func TestModel_ViewShowsRankedRules(t *testing.T) {
	m := New(explorerRules())

	resized, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := resized.(Model).View()

	assert.Contains(t, view, "Association rule explorer")
	assert.Contains(t, view, "Age > 60")
	assert.Contains(t, view, "lift")
}

func TestModel_HelpToggle(t *testing.T) {
	m := New(explorerRules())

	toggled, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.True(t, toggled.(Model).showHelp)

	back, _ := toggled.(Model).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.False(t, back.(Model).showHelp)
}
