// Package tui provides an interactive terminal explorer for mined
// rules: one tab per ranking metric, a scrollable rule table, and a
// detail pane for the selected rule.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fdelorme/stroke-rules/internal/model"
	"github.com/fdelorme/stroke-rules/internal/report"
)

const (
	defaultTableHeight = 12
	ruleColumnWidth    = 64
	valueColumnWidth   = 12
)

// Model holds the explorer state.
type Model struct {
	keymap   KeyMap
	help     help.Model
	table    table.Model
	rules    model.Rules
	ranked   model.Rules
	metrics  []model.Metric
	active   int
	width    int
	height   int
	showHelp bool
	quitting bool
}

// New creates an explorer over the given rules, initially ranked by
// lift.
func New(rules model.Rules) Model {
	metrics := model.AllMetrics()

	m := Model{
		keymap:  DefaultKeyMap(),
		help:    help.New(),
		rules:   rules,
		metrics: metrics,
	}
	for i, metric := range metrics {
		if metric == model.MetricLift {
			m.active = i
		}
	}

	m.table = table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(defaultTableHeight),
	)
	m.rerank()
	return m
}

// ActiveMetric returns the metric the rules are currently ranked by.
func (m Model) ActiveMetric() model.Metric {
	return m.metrics[m.active]
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(max(4, m.height-16))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit), key.Matches(msg, m.keymap.ForceQuit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.NextMetric):
			m.active = (m.active + 1) % len(m.metrics)
			m.rerank()
			return m, nil
		case key.Matches(msg, m.keymap.PrevMetric):
			m.active = (m.active - 1 + len(m.metrics)) % len(m.metrics)
			m.rerank()
			return m, nil
		case key.Matches(msg, m.keymap.ToggleHelp):
			m.showHelp = !m.showHelp
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render("Association rule explorer"),
		m.tabBar(),
		m.table.View(),
		m.detail(),
	}

	if m.showHelp {
		sections = append(sections, m.help.FullHelpView(m.keymap.FullHelp()))
	} else {
		sections = append(sections, m.help.ShortHelpView(m.keymap.ShortHelp()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// rerank re-sorts the rules by the active metric and rebuilds the
// table while keeping the cursor in range.
func (m *Model) rerank() {
	m.ranked = m.rules.RankedBy(m.ActiveMetric())

	rows := make([]table.Row, len(m.ranked))
	for i, rule := range m.ranked {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			truncate(report.DisplayRule(rule), ruleColumnWidth),
			report.FormatMetricValue(rule.Metrics.Value(m.ActiveMetric())),
			report.FormatMetricValue(rule.Metrics.Support),
			report.FormatMetricValue(rule.Metrics.Confidence),
		}
	}

	m.table.SetColumns(m.columns())
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

func (m Model) columns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Rule", Width: ruleColumnWidth},
		{Title: string(m.ActiveMetric()), Width: valueColumnWidth},
		{Title: "support", Width: valueColumnWidth},
		{Title: "confidence", Width: valueColumnWidth},
	}
}

func (m Model) tabBar() string {
	tabs := make([]string, len(m.metrics))
	for i, metric := range m.metrics {
		if i == m.active {
			tabs[i] = activeTabStyle.Render(string(metric))
		} else {
			tabs[i] = tabStyle.Render(string(metric))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) detail() string {
	if len(m.ranked) == 0 {
		return detailStyle.Render("No rules mined for these thresholds.")
	}
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.ranked) {
		cursor = 0
	}
	return detailStyle.Render(report.FormatRuleDetail(m.ranked[cursor]))
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
