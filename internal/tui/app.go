// Package tui provides the interactive Bubble Tea dashboard for cashcast.
package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"cashcast/internal/cli"
	"cashcast/internal/forecast"
	"cashcast/internal/model"
	"cashcast/internal/tui/components"
	"cashcast/internal/tui/theme"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabChart = iota
	tabLedger
	tabItems
	tabCount
)

var tabNames = []string{"Chart", "Ledger", "Items"}

const (
	minWeeks = 1
	maxWeeks = 104
)

// App is the root Bubble Tea model.
type App struct {
	balance float64
	weeks   int
	items   []*model.BudgetItem
	source  string

	result *model.ForecastResult
	trend  forecast.Trend

	width     int
	height    int
	activeTab int
	ledger    viewport.Model
	ready     bool
}

// NewApp creates the dashboard model and runs the initial forecast.
func NewApp(balance float64, weeks int, items []*model.BudgetItem, source string) App {
	a := App{
		balance: balance,
		weeks:   weeks,
		items:   items,
		source:  source,
	}
	a.recompute()
	return a
}

// Run starts the Bubble Tea program.
func Run(a App) error {
	_, err := tea.NewProgram(a, tea.WithAltScreen()).Run()
	return err
}

func (a *App) recompute() {
	a.result = forecast.Forecast(a.balance, time.Now(), a.weeks, a.items)
	a.trend = forecast.FitTrend(a.result.Balances)
	if a.ready {
		a.ledger.SetContent(a.renderLedgerRows())
		a.ledger.GotoTop()
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		contentH := a.height - 4 // tab bar + status bar
		if contentH < 3 {
			contentH = 3
		}
		if !a.ready {
			a.ledger = viewport.New(a.width, contentH)
			a.ready = true
		} else {
			a.ledger.Width = a.width
			a.ledger.Height = contentH
		}
		a.ledger.SetContent(a.renderLedgerRows())
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "tab", "l":
			a.activeTab = (a.activeTab + 1) % tabCount
			return a, nil
		case "shift+tab", "h":
			a.activeTab = (a.activeTab + tabCount - 1) % tabCount
			return a, nil
		case "1", "2", "3":
			a.activeTab = int(msg.String()[0] - '1')
			return a, nil
		case "+", "right":
			if a.weeks < maxWeeks {
				a.weeks++
				a.recompute()
			}
			return a, nil
		case "-", "left":
			if a.weeks > minWeeks {
				a.weeks--
				a.recompute()
			}
			return a, nil
		}
	}

	if a.activeTab == tabLedger && a.ready {
		var cmd tea.Cmd
		a.ledger, cmd = a.ledger.Update(msg)
		return a, cmd
	}
	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	if !a.ready {
		return "  loading..."
	}
	t := theme.Active

	var b strings.Builder
	b.WriteString(a.renderTabBar())
	b.WriteString("\n")

	switch a.activeTab {
	case tabChart:
		b.WriteString(a.renderChartTab())
	case tabLedger:
		b.WriteString(a.ledger.View())
	case tabItems:
		b.WriteString(a.renderItemsTab())
	}

	status := lipgloss.NewStyle().Foreground(t.TextDim).Render(
		fmt.Sprintf("  %d items (%s)  ·  +/- weeks  ·  tab switch  ·  q quit", len(a.items), a.source))
	b.WriteString("\n")
	b.WriteString(status)
	return b.String()
}

func (a App) renderTabBar() string {
	t := theme.Active
	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	idleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	parts := make([]string, 0, tabCount+1)
	for i, name := range tabNames {
		label := fmt.Sprintf(" %d %s ", i+1, name)
		if i == a.activeTab {
			parts = append(parts, activeStyle.Render(label))
		} else {
			parts = append(parts, idleStyle.Render(label))
		}
	}
	parts = append(parts, idleStyle.Render(fmt.Sprintf("  %dw from %s", a.weeks, a.result.Start.Format("Jan 02"))))
	return strings.Join(parts, "")
}

func (a App) renderChartTab() string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	chartH := a.height - 9
	if chartH < 5 {
		chartH = 5
	}
	chart := components.BalanceLine(a.dates(), a.result.Balances, a.trend.Line(len(a.result.Balances)), a.width-4, chartH)

	lowDate, lowBalance := a.result.Lowest()
	summary := fmt.Sprintf("%s %s    %s %s (%s)    %s %s/week",
		labelStyle.Render("final"), valueStyle.Render(cli.FormatMoney(a.result.Final)),
		labelStyle.Render("lowest"), valueStyle.Render(cli.FormatMoney(lowBalance)), lowDate.Format("Jan 02"),
		labelStyle.Render("trend"), valueStyle.Render(cli.FormatMoney(a.trend.Slope*7)))

	return "\n" + chart + "\n\n  " + summary + "\n"
}

func (a App) renderLedgerRows() string {
	t := theme.Active
	dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	posStyle := lipgloss.NewStyle().Foreground(t.Green)
	negStyle := lipgloss.NewStyle().Foreground(t.Red)
	transStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for _, e := range a.result.Entries {
		style := posStyle
		if e.Balance < 0 {
			style = negStyle
		}

		names := make([]string, 0, len(e.Transactions))
		for name := range e.Transactions {
			names = append(names, name)
		}
		sort.Strings(names)

		b.WriteString(fmt.Sprintf("  %s %s  %s  %s\n",
			dateStyle.Render(cli.FormatDate(e.Date)),
			dateStyle.Render(cli.FormatDayOfWeek(int(e.Date.Weekday()))),
			style.Render(fmt.Sprintf("%14s", cli.FormatMoney(e.Balance))),
			transStyle.Render(cli.FormatTransactions(e.Transactions, names)),
		))
	}
	return b.String()
}

func (a App) renderItemsTab() string {
	t := theme.Active
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	posStyle := lipgloss.NewStyle().Foreground(t.Green)
	negStyle := lipgloss.NewStyle().Foreground(t.Red)
	metaStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString("\n")
	for _, item := range a.items {
		style := posStyle
		if item.Amount < 0 {
			style = negStyle
		}
		b.WriteString(fmt.Sprintf("  %s %s  %s\n",
			nameStyle.Render(fmt.Sprintf("%-14s", item.Name)),
			style.Render(fmt.Sprintf("%12s", cli.FormatSignedMoney(item.Amount))),
			metaStyle.Render(fmt.Sprintf("%s, %s", item.Cycle, item.DueLabel())),
		))
	}
	return b.String()
}

func (a App) dates() []time.Time {
	dates := make([]time.Time, len(a.result.Entries))
	for i, e := range a.result.Entries {
		dates[i] = e.Date
	}
	return dates
}
