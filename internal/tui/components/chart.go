// Package components holds reusable render pieces for the dashboard.
package components

import (
	"fmt"
	"math"
	"strings"
	"time"

	"cashcast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// BalanceLine renders the balance series as a themed line chart with
// the fitted trend drawn underneath. Sized to fit width x height.
func BalanceLine(dates []time.Time, balances, trend []float64, width, height int) string {
	if len(balances) == 0 || len(dates) != len(balances) {
		return ""
	}
	t := theme.Active

	if height < 5 {
		height = 5
	}

	lo, hi := balances[0], balances[0]
	for _, v := range balances {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	for _, v := range trend {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}
	span := hi - lo
	hi += span * 0.05
	lo -= span * 0.05

	labelTop := axisLabel(hi)
	labelMid := axisLabel((hi + lo) / 2)
	labelBot := axisLabel(lo)
	yLabelW := len(labelTop)
	for _, l := range []string{labelMid, labelBot} {
		if len(l) > yLabelW {
			yLabelW = len(l)
		}
	}

	plotW := width - yLabelW - 1
	if plotW < 10 {
		plotW = 10
	}
	if plotW > len(balances) {
		plotW = len(balances)
	}

	sample := func(series []float64, c int) float64 {
		step := len(series) - 1
		if plotW > 1 {
			return series[c*step/(plotW-1)]
		}
		return series[0]
	}
	toRow := func(v float64) int {
		r := int(math.Round((hi - v) / (hi - lo) * float64(height-1)))
		if r < 0 {
			return 0
		}
		if r >= height {
			return height - 1
		}
		return r
	}

	type cell struct {
		ch    rune
		style lipgloss.Style
	}
	bgStyle := lipgloss.NewStyle().Background(t.Surface)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	trendStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	posStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	negStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)

	grid := make([][]cell, height)
	for r := range grid {
		grid[r] = make([]cell, plotW)
		for c := range grid[r] {
			grid[r][c] = cell{' ', bgStyle}
		}
	}

	if lo < 0 && hi > 0 {
		zr := toRow(0)
		for c := 0; c < plotW; c++ {
			grid[zr][c] = cell{'─', axisStyle}
		}
	}
	if len(trend) == len(balances) {
		for c := 0; c < plotW; c++ {
			grid[toRow(sample(trend, c))][c] = cell{'·', trendStyle}
		}
	}
	for c := 0; c < plotW; c++ {
		v := sample(balances, c)
		style := posStyle
		if v < 0 {
			style = negStyle
		}
		grid[toRow(v)][c] = cell{'●', style}
	}

	var b strings.Builder
	for r := 0; r < height; r++ {
		label := ""
		switch r {
		case 0:
			label = labelTop
		case height / 2:
			label = labelMid
		case height - 1:
			label = labelBot
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))
		for c := 0; c < plotW; c++ {
			b.WriteString(grid[r][c].style.Render(string(grid[r][c].ch)))
		}
		b.WriteString("\n")
	}

	b.WriteString(bgStyle.Render(strings.Repeat(" ", yLabelW)))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", plotW)))
	b.WriteString("\n")

	// Sparse date labels along the x axis.
	buf := make([]byte, plotW)
	for i := range buf {
		buf[i] = ' '
	}
	step := plotW / 4
	if step < 10 {
		step = 10
	}
	for c := 0; c < plotW; c += step {
		idx := 0
		if plotW > 1 {
			idx = c * (len(dates) - 1) / (plotW - 1)
		}
		lbl := dates[idx].Format("Jan 02")
		if c+len(lbl) > plotW {
			break
		}
		copy(buf[c:], lbl)
	}
	b.WriteString(bgStyle.Render(strings.Repeat(" ", yLabelW+1)))
	b.WriteString(axisStyle.Render(strings.TrimRight(string(buf), " ")))

	return b.String()
}

func axisLabel(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%s%.1fM", sign, v/1e6)
	case v >= 1e4:
		return fmt.Sprintf("%s%.1fk", sign, v/1e3)
	default:
		return fmt.Sprintf("%s%.0f", sign, v)
	}
}
