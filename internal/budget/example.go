package budget

import (
	"time"

	"cashcast/internal/model"
)

// Example returns the built-in demo budget used when no budget file or
// stored items are available. Fixed dates sit in the past so the
// overdue normalization path is exercised on first run.
func Example() []*model.BudgetItem {
	mk := func(name string, amount float64, cycle model.Cycle, due any) *model.BudgetItem {
		item, err := model.NewItem(name, amount, cycle, due)
		if err != nil {
			// All example due dates are supported types.
			panic(err)
		}
		return item
	}

	return []*model.BudgetItem{
		mk("Salary", 1000.00, model.Weekly, model.Friday),
		mk("Insurance", -200.99, model.Monthly, 25),
		mk("Food", -36.00, model.Daily, nil),
		mk("Internet", -90.99, model.Monthly, 15),
		mk("Savings", -100.00, model.Weekly, model.Monday),
		mk("Mortgage", -876.54, model.Monthly, 15),
		mk("Sewer", -165.00, model.Quarterly, time.Date(2019, time.January, 10, 0, 0, 0, 0, time.UTC)),
		mk("Gas", -40.00, model.Weekly, model.Friday),
		mk("Hair-do", -60.00, model.Bimonthly, time.Date(2019, time.January, 5, 0, 0, 0, 0, time.UTC)),
		mk("Taxes", -1000.00, model.Yearly, time.Date(2019, time.April, 14, 0, 0, 0, 0, time.UTC)),
	}
}
