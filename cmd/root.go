// Package cmd wires up the cashcast command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"cashcast/internal/budget"
	"cashcast/internal/cli"
	"cashcast/internal/config"
	"cashcast/internal/model"
	"cashcast/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagFile  string
	flagDB    string
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "cashcast <balance> [weeks]",
	Short: "Daily cash balance forecaster",
	Long:  "Project a daily cash balance forward from a starting balance and a set of recurring budget items.",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runForecast,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "JSON file with budget items")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", store.DefaultPath(), "Budget item database path")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadConfig returns the config, falling back to defaults on error.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
		}
		return config.DefaultConfig()
	}
	return cfg
}

// loadItems is the shared item loading path used by all commands.
// Order: --file, then the config's budget_file, then the item store,
// then the built-in example budget.
func loadItems(cfg config.Config) ([]*model.BudgetItem, string, error) {
	path := flagFile
	if path == "" {
		path = cfg.General.BudgetFile
	}
	if path != "" {
		items, err := budget.LoadFile(path)
		if err != nil {
			return nil, "", err
		}
		return items, path, nil
	}

	st, err := store.Open(flagDB)
	if err == nil {
		defer st.Close()
		if count, err := st.Count(); err == nil && count > 0 {
			items, err := st.LoadAll()
			if err != nil {
				return nil, "", fmt.Errorf("loading stored items: %w", err)
			}
			return items, "item store", nil
		}
	}

	return budget.Example(), "built-in example", nil
}

func parseBalance(arg string) (float64, error) {
	balance, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("balance %q is not a number", arg)
	}
	return balance, nil
}

func parseWeeks(args []string, cfg config.Config) (int, error) {
	if len(args) < 2 {
		return cfg.General.DefaultWeeks, nil
	}
	weeks, err := strconv.Atoi(args[1])
	if err != nil || weeks < 1 {
		return 0, fmt.Errorf("weeks %q is not a positive integer", args[1])
	}
	return weeks, nil
}

func applyCurrency(cfg config.Config) {
	if cfg.Appearance.Currency != "" {
		cli.Currency = cfg.Appearance.Currency
	}
}
