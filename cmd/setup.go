package cmd

import (
	"fmt"

	"cashcast/internal/config"
	"cashcast/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	weeks := cfg.General.DefaultWeeks
	currency := cfg.Appearance.Currency
	themeName := cfg.Appearance.Theme
	budgetFile := cfg.General.BudgetFile

	themeOptions := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOptions = append(themeOptions, huh.NewOption(t.Name, t.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Default forecast length").
				Options(
					huh.NewOption("4 weeks", 4),
					huh.NewOption("12 weeks", 12),
					huh.NewOption("26 weeks", 26),
					huh.NewOption("52 weeks", 52),
				).
				Value(&weeks),
			huh.NewInput().
				Title("Currency symbol").
				CharLimit(3).
				Value(&currency),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOptions...).
				Value(&themeName),
			huh.NewInput().
				Title("Budget file").
				Placeholder("leave blank to use the item store").
				Value(&budgetFile),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.General.DefaultWeeks = weeks
	cfg.General.BudgetFile = budgetFile
	cfg.Appearance.Currency = currency
	cfg.Appearance.Theme = themeName

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Printf("  Saved to %s\n", config.Path())
	return nil
}
