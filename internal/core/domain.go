package core

import "time"

type (
	// Expense is one recorded spending event. Values are never modified after
	// AddExpense returns them.
	Expense struct {
		Amount      Money
		Category    string // free-form, case-sensitive
		Description string
		Timestamp   time.Time
	}

	// CategoryAmount represents an amount aggregated by category name.
	CategoryAmount struct {
		Name   string
		Amount Money
	}
)

// CategoryTotals is an ordered running-sum map keyed by category label.
// Keys keep the order in which they were first added. The zero value is
// ready to use.
type CategoryTotals struct {
	order  []string
	totals map[string]Money
}

// Add inserts category with a zero total if it is new, then adds amount.
func (c *CategoryTotals) Add(category string, amount Money) {
	if c.totals == nil {
		c.totals = make(map[string]Money)
	}
	cur, ok := c.totals[category]
	if !ok {
		cur = Zero
		c.order = append(c.order, category)
	}
	c.totals[category] = cur.Add(amount)
}

// Get returns the total for category, or zero if it has never been added.
func (c *CategoryTotals) Get(category string) Money {
	return c.totals[category]
}

// Has reports whether category has an entry, even a zero one.
func (c *CategoryTotals) Has(category string) bool {
	_, ok := c.totals[category]
	return ok
}

// Keys returns the categories in first-seen order.
func (c *CategoryTotals) Keys() []string {
	return append([]string(nil), c.order...)
}

// Len returns the number of categories.
func (c *CategoryTotals) Len() int {
	return len(c.order)
}

// Sum totals every category.
func (c *CategoryTotals) Sum() Money {
	total := Zero
	for _, k := range c.order {
		total = total.Add(c.totals[k])
	}
	return total
}

// Amounts returns the entries in first-seen order.
func (c *CategoryTotals) Amounts() []CategoryAmount {
	out := make([]CategoryAmount, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, CategoryAmount{Name: k, Amount: c.totals[k]})
	}
	return out
}
