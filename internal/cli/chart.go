package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBalanceChart renders the balance timeline as a terminal line
// chart with the fitted trend overlaid. Negative balances are
// supported; a zero axis is drawn when the series crosses it.
func RenderBalanceChart(dates []time.Time, balances, trend []float64, width, height int) string {
	if len(balances) == 0 || len(dates) != len(balances) {
		return ""
	}
	if height < 4 {
		height = 4
	}
	if width < 30 {
		width = 30
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
	// Headroom so the extremes don't sit on the frame.
	pad := (hi - lo) * 0.05
	hi += pad
	lo -= pad

	yLabels := []string{chartMoneyLabel(hi), chartMoneyLabel((hi + lo) / 2), chartMoneyLabel(lo)}
	yLabelW := 0
	for _, l := range yLabels {
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

	// Downsample each series onto plotW columns.
	col := func(series []float64, c int) float64 {
		idx := c * (len(series) - 1) / maxInt(plotW-1, 1)
		return series[idx]
	}
	colDate := func(c int) time.Time {
		idx := c * (len(dates) - 1) / maxInt(plotW-1, 1)
		return dates[idx]
	}
	toRow := func(v float64) int {
		r := int(math.Round((hi - v) / (hi - lo) * float64(height-1)))
		if r < 0 {
			r = 0
		}
		if r >= height {
			r = height - 1
		}
		return r
	}

	const (
		blank = iota
		trendMark
		zeroMark
		balanceMark
		balanceNeg
	)
	grid := make([][]int, height)
	for r := range grid {
		grid[r] = make([]int, plotW)
	}

	if lo < 0 && hi > 0 {
		zr := toRow(0)
		for c := 0; c < plotW; c++ {
			grid[zr][c] = zeroMark
		}
	}
	if len(trend) == len(balances) {
		for c := 0; c < plotW; c++ {
			grid[toRow(col(trend, c))][c] = trendMark
		}
	}
	for c := 0; c < plotW; c++ {
		v := col(balances, c)
		if v < 0 {
			grid[toRow(v)][c] = balanceNeg
		} else {
			grid[toRow(v)][c] = balanceMark
		}
	}

	axisStyle := lipgloss.NewStyle().Foreground(ColorTextDim)
	trendStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)
	posStyle := lipgloss.NewStyle().Foreground(ColorGreen)
	negStyle := lipgloss.NewStyle().Foreground(ColorRed)

	var b strings.Builder
	for r := 0; r < height; r++ {
		label := ""
		switch r {
		case 0:
			label = yLabels[0]
		case height / 2:
			label = yLabels[1]
		case height - 1:
			label = yLabels[2]
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for c := 0; c < plotW; c++ {
			switch grid[r][c] {
			case balanceMark:
				b.WriteString(posStyle.Render("●"))
			case balanceNeg:
				b.WriteString(negStyle.Render("●"))
			case trendMark:
				b.WriteString(trendStyle.Render("·"))
			case zeroMark:
				b.WriteString(axisStyle.Render("─"))
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	// X axis with a handful of date labels.
	b.WriteString(strings.Repeat(" ", yLabelW))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", plotW)))
	b.WriteString("\n")

	buf := make([]byte, plotW)
	for i := range buf {
		buf[i] = ' '
	}
	step := maxInt(plotW/4, 10)
	for c := 0; c < plotW; c += step {
		lbl := colDate(c).Format("Jan 02")
		if c+len(lbl) > plotW {
			break
		}
		copy(buf[c:], lbl)
	}
	b.WriteString(strings.Repeat(" ", yLabelW+1))
	b.WriteString(axisStyle.Render(strings.TrimRight(string(buf), " ")))
	b.WriteString("\n")

	return b.String()
}

func chartMoneyLabel(v float64) string {
	switch {
	case math.Abs(v) >= 1e6:
		return fmt.Sprintf("%s%.1fM", signPrefix(v), math.Abs(v)/1e6)
	case math.Abs(v) >= 1e4:
		return fmt.Sprintf("%s%.1fk", signPrefix(v), math.Abs(v)/1e3)
	default:
		return fmt.Sprintf("%s%.0f", signPrefix(v), math.Abs(v))
	}
}

func signPrefix(v float64) string {
	if v < 0 {
		return "-"
	}
	return ""
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
