package cmd

import (
	"fmt"

	"cashcast/internal/cli"

	"github.com/spf13/cobra"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List the budget items a forecast would use",
	Args:  cobra.NoArgs,
	RunE:  runItems,
}

func init() {
	rootCmd.AddCommand(itemsCmd)
}

func runItems(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	applyCurrency(cfg)

	items, source, err := loadItems(cfg)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET ITEMS"))
	fmt.Println()

	rows := make([][]string, 0, len(items))
	var net float64
	for _, item := range items {
		rows = append(rows, []string{
			item.Name,
			cli.FormatSignedMoney(item.Amount),
			item.Cycle.String(),
			item.DueLabel(),
		})
		net += item.Amount
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"NET PER MATCH", cli.FormatSignedMoney(net), "", ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Source: %s", source),
		Headers: []string{"Name", "Amount", "Cycle", "Due"},
		Rows:    rows,
	}))

	return nil
}
