package cmd

import (
	"fmt"
	"os"
	"sort"
	"time"

	"cashcast/internal/cli"
	"cashcast/internal/forecast"
	"cashcast/internal/model"

	"github.com/spf13/cobra"
)

func entryDates(r *model.ForecastResult) []time.Time {
	dates := make([]time.Time, len(r.Entries))
	for i, e := range r.Entries {
		dates[i] = e.Date
	}
	return dates
}

var flagNoChart bool

func init() {
	rootCmd.Flags().BoolVar(&flagNoChart, "no-chart", false, "Skip the balance chart")
}

func runForecast(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	applyCurrency(cfg)

	balance, err := parseBalance(args[0])
	if err != nil {
		return err
	}
	weeks, err := parseWeeks(args, cfg)
	if err != nil {
		return err
	}

	items, source, err := loadItems(cfg)
	if err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Forecasting %d weeks with %d items (%s)\n", weeks, len(items), source)
	}

	start := time.Now()
	result := forecast.Forecast(balance, start, weeks, items)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY BALANCE PROJECTION  %dw", weeks)))
	fmt.Println()

	rows := make([][]string, 0, len(result.Entries))
	for _, e := range result.Entries {
		names := make([]string, 0, len(e.Transactions))
		for name := range e.Transactions {
			names = append(names, name)
		}
		sort.Strings(names)

		rows = append(rows, []string{
			cli.FormatDate(e.Date),
			cli.FormatDayOfWeek(int(e.Date.Weekday())),
			cli.FormatMoney(e.Balance),
			cli.FormatTransactions(e.Transactions, names),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Balance", "Transactions"},
		Rows:    rows,
	}))

	trend := forecast.FitTrend(result.Balances)
	if !flagNoChart {
		fmt.Println()
		fmt.Print(cli.RenderBalanceChart(entryDates(result), result.Balances, trend.Line(len(result.Balances)), 100, 14))
	}

	lowDate, lowBalance := result.Lowest()
	fmt.Println()
	fmt.Printf("  Final balance: %s\n", cli.FormatMoney(result.Final))
	fmt.Printf("  Lowest day:    %s on %s\n", cli.FormatMoney(lowBalance), cli.FormatDate(lowDate))
	fmt.Printf("  Trend:         %s/day (%s/week)\n\n",
		cli.FormatMoney(trend.Slope), cli.FormatMoney(trend.Slope*7))

	return nil
}
