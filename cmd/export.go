package cmd

import (
	"fmt"
	"os"

	"cashcast/internal/budget"

	"github.com/spf13/cobra"
)

var flagOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the current budget items as JSON",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	items, source, err := loadItems(cfg)
	if err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Exporting %d items (%s)\n", len(items), source)
	}

	if flagOut != "" {
		return budget.WriteFile(flagOut, items)
	}

	data, err := budget.Encode(items)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
