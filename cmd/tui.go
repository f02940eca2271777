package cmd

import (
	"cashcast/internal/tui"
	"cashcast/internal/tui/theme"

	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui <balance> [weeks]",
	Short: "Interactive forecast dashboard",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	applyCurrency(cfg)
	theme.SetActive(cfg.Appearance.Theme)

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

	return tui.Run(tui.NewApp(balance, weeks, items, source))
}
