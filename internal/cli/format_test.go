package cli

import (
	"errors"
	"strings"
	"testing"

	"budget/internal/core"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in       string
		currency string
		want     string
	}{
		{"0", "$", "$0.00"},
		{"12.5", "$", "$12.50"},
		{"1234.567", "€", "€1,234.57"},
		{"-20", "$", "-$20.00"},
		{"1000000", "$", "$1,000,000.00"},
		{"0.005", "$", "$0.01"},
		{"-1234.5", "€", "-€1,234.50"},
		{"123456789012345678901234.5", "$", "$123,456,789,012,345,678,901,234.50"},
	}
	for _, tc := range cases {
		got := FormatMoney(core.MustMoney(tc.in), tc.currency)
		if got != tc.want {
			t.Errorf("FormatMoney(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatNumberAndPercent(t *testing.T) {
	if got := FormatNumber(1234567); got != "1,234,567" {
		t.Errorf("FormatNumber = %q", got)
	}
	if got := FormatPercent(0.155); got != "15.5%" {
		t.Errorf("FormatPercent = %q", got)
	}
}

func TestShare(t *testing.T) {
	if got := Share(core.MoneyFromInt(25), core.MoneyFromInt(100)); got != 0.25 {
		t.Errorf("Share = %v, want 0.25", got)
	}
	if got := Share(core.MoneyFromInt(25), core.Zero); got != 0 {
		t.Errorf("Share with zero total = %v, want 0", got)
	}
}

func TestRenderSummary(t *testing.T) {
	p := core.NewProfile("Ana", core.MoneyFromInt(3000), core.MoneyFromInt(1000))
	p.AddExpense(core.MoneyFromInt(100), "Food", "Groceries")
	p.AddExpense(core.MoneyFromInt(50), "Utilities", "Electricity bill")

	out := RenderSummary(p.ExpenseSummary(), p.MonthlyBudget(), "$")

	for _, want := range []string{"BUDGET  Ana", "Total Expenses", "Expense Count", "$150.00", "$850.00", "15.0%", "Food", "$100.00", "66.7%", "Utilities", "Expenses by Category"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummaryOverspentAndEmpty(t *testing.T) {
	p := core.NewProfile("Ana", core.Zero, core.MoneyFromInt(10))
	out := RenderSummary(p.ExpenseSummary(), p.MonthlyBudget(), "$")
	if !strings.Contains(out, "No expenses recorded yet.") {
		t.Errorf("empty summary should say so:\n%s", out)
	}

	p.AddExpense(core.MoneyFromInt(15), "", "")
	out = RenderSummary(p.ExpenseSummary(), p.MonthlyBudget(), "$")
	if !strings.Contains(out, "-$5.00 over") || !strings.Contains(out, "(none)") {
		t.Errorf("overspent summary:\n%s", out)
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Name", "Amount"},
		Rows:    [][]string{{"a", "1"}, {"---"}, {"long name", "1000"}},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[3], "a        ") || !strings.Contains(lines[3], "    1") {
		t.Errorf("unexpected alignment: %q", lines[3])
	}
	if RenderTable(Table{}) != "" {
		t.Error("empty table should render nothing")
	}
}

func TestValidators(t *testing.T) {
	if err := ValidateName("  "); err == nil {
		t.Error("blank name should fail")
	}
	if err := ValidateName("Ana"); err != nil {
		t.Errorf("ValidateName: %v", err)
	}
	if err := ValidateAmountField("ten"); !errors.Is(err, core.ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
	if err := ValidateAmountField("-1"); !errors.Is(err, core.ErrNegativeAmount) {
		t.Errorf("expected ErrNegativeAmount, got %v", err)
	}
	if err := ValidateAmountField("1000,50"); err != nil {
		t.Errorf("ValidateAmountField: %v", err)
	}
}

func TestProfileFormBuilds(t *testing.T) {
	v := ProfileValues{Name: "Ana"}
	if ProfileForm(&v) == nil {
		t.Fatal("expected a form")
	}
}
