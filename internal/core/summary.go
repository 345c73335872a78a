package core

import (
	"fmt"
	"strings"
)

// Summary is a point-in-time report of a profile.
type Summary struct {
	Name       string
	Count      int   // number of expenses
	Total      Money // sum of all category totals
	Remaining  Money
	ByCategory []CategoryAmount
}

// String renders the report with a dollar sign on category lines.
func (s Summary) String() string {
	return s.Format("$")
}

// Format renders the report using currency as the category-line symbol.
func (s Summary) Format(currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User: %s\n", s.Name)
	fmt.Fprintf(&b, "Total Expenses: %s\n", s.Total)
	fmt.Fprintf(&b, "Remaining Budget: %s\n", s.Remaining)
	b.WriteString("Expenses by Category:\n")
	for _, c := range s.ByCategory {
		fmt.Fprintf(&b, "  %s: %s%s\n", c.Name, currency, c.Amount)
	}
	return b.String()
}

// Overspent reports whether expenses exceed the monthly budget.
func (s Summary) Overspent() bool {
	return s.Remaining.IsNegative()
}
