package cmd

import (
	"fmt"

	"cashcast/internal/budget"
	"cashcast/internal/store"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Validate a budget JSON file and store its items",
	Long:  "Decodes the given budget file and replaces the item store with its contents. Decoding is all-or-nothing: one bad record rejects the whole file.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	items, err := budget.LoadFile(args[0])
	if err != nil {
		return err
	}

	st, err := store.Open(flagDB)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Replace(items); err != nil {
		return fmt.Errorf("storing items: %w", err)
	}

	fmt.Printf("  Imported %d items from %s\n", len(items), args[0])
	return nil
}
