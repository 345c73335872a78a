package core

import (
	"sync"
	"time"
)

// Profile is a single user's budget state: identity, income, the monthly
// ceiling and every expense recorded against it.
//
// A Profile accepts any amount, including zero and negative values
// (refunds); validation belongs to whoever reads user input. All methods are
// safe to call from multiple goroutines, but the profile is meant to have one
// owner per session.
type Profile struct {
	mu sync.Mutex

	name          string
	income        Money
	monthlyBudget Money

	expenses []Expense
	totals   CategoryTotals

	now func() time.Time
}

// Option configures a Profile.
type Option func(*Profile)

// WithClock overrides the source of expense timestamps.
func WithClock(now func() time.Time) Option {
	return func(p *Profile) {
		if now != nil {
			p.now = now
		}
	}
}

// NewProfile creates an empty profile.
func NewProfile(name string, income, monthlyBudget Money, opts ...Option) *Profile {
	p := &Profile{
		name:          name,
		income:        income,
		monthlyBudget: monthlyBudget,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddExpense records an expense stamped with the current time and returns it.
func (p *Profile) AddExpense(amount Money, category, description string) Expense {
	p.mu.Lock()
	defer p.mu.Unlock()

	e := Expense{
		Amount:      amount,
		Category:    category,
		Description: description,
		Timestamp:   p.now(),
	}
	p.expenses = append(p.expenses, e)
	p.totals.Add(category, amount)
	return e
}

// RemainingBudget returns the monthly budget minus every expense so far.
// The result is negative when the budget is overspent.
func (p *Profile) RemainingBudget() Money {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.remainingLocked()
}

// ExpenseSummary returns the current totals per category and overall.
func (p *Profile) ExpenseSummary() Summary {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Summary{
		Name:       p.name,
		Count:      len(p.expenses),
		Total:      p.totals.Sum(),
		Remaining:  p.remainingLocked(),
		ByCategory: p.totals.Amounts(),
	}
}

func (p *Profile) remainingLocked() Money {
	spent := Zero
	for _, e := range p.expenses {
		spent = spent.Add(e.Amount)
	}
	return p.monthlyBudget.Sub(spent)
}

// Name returns the profile owner.
func (p *Profile) Name() string { return p.name }

// Income returns the monthly income given at creation.
func (p *Profile) Income() Money { return p.income }

// MonthlyBudget returns the spending ceiling.
func (p *Profile) MonthlyBudget() Money { return p.monthlyBudget }

// Expenses returns a copy of the recorded expenses in insertion order.
func (p *Profile) Expenses() []Expense {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Expense(nil), p.expenses...)
}

// Len returns the number of recorded expenses.
func (p *Profile) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.expenses)
}

// CategoryTotal returns the running total for category, zero if unseen.
func (p *Profile) CategoryTotal(category string) Money {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totals.Get(category)
}

// HasCategory reports whether any expense was recorded under category.
func (p *Profile) HasCategory(category string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totals.Has(category)
}

// Categories returns the known categories in first-seen order.
func (p *Profile) Categories() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totals.Keys()
}

// TotalExpenses sums every expense amount.
func (p *Profile) TotalExpenses() Money {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totals.Sum()
}
