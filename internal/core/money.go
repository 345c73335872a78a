// Package core holds the budget domain: money, expenses and the profile.
//
// This file contains the Money type and the parsers used at the console
// boundary to turn user text into amounts.
package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeAmount = errors.New("negative amount")
)

// Money is an exact decimal quantity. The zero value is zero.
type Money struct {
	d decimal.Decimal
}

// Zero is the additive identity.
var Zero = Money{}

// NewMoney parses s as a plain decimal ("12.34", "-20").
// It is meant for literals and trusted input; user text goes through ParseAmount.
func NewMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Money{d: d}, nil
}

// MustMoney is NewMoney that panics, for tests and constants.
func MustMoney(s string) Money {
	m, err := NewMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MoneyFromInt returns n whole units.
func MoneyFromInt(n int64) Money {
	return Money{d: decimal.NewFromInt(n)}
}

// ParseAmount converts user text to Money.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and an
// optional leading sign, so refunds can be typed as "-20". Surrounding
// whitespace is ignored. Anything else, including words like "ten", returns
// an error wrapping ErrInvalidAmount.
//
// Examples:
//
//	ParseAmount("12.34")  -> 12.34, nil
//	ParseAmount("12,34")  -> 12.34, nil
//	ParseAmount("-20")    -> -20, nil
//	ParseAmount("ten")    -> 0, ErrInvalidAmount
func ParseAmount(s string) (Money, error) {
	raw := s
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, fmt.Errorf("%w: empty input", ErrInvalidAmount)
	}
	if strings.Contains(s, ",") {
		if strings.Contains(s, ".") {
			// "1,234.5" is ambiguous; refuse rather than guess
			return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
		}
		s = strings.Replace(s, ",", ".", 1)
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	// decimal also accepts exponents ("1e3"); users type plain digits only
	if s == "" || s == "." {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	dots := 0
	for _, r := range s {
		switch {
		case r == '.':
			dots++
		case r < '0' || r > '9':
			return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
		}
	}
	if dots > 1 {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if neg {
		d = d.Neg()
	}
	return Money{d: d}, nil
}

// ParseNonNegativeAmount is ParseAmount for fields that cannot go below
// zero, such as income and the monthly budget.
func ParseNonNegativeAmount(s string) (Money, error) {
	m, err := ParseAmount(s)
	if err != nil {
		return Money{}, err
	}
	if m.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s", ErrNegativeAmount, m)
	}
	return m, nil
}

// Add returns m + o.
func (m Money) Add(o Money) Money { return Money{d: m.d.Add(o.d)} }

// Sub returns m - o.
func (m Money) Sub(o Money) Money { return Money{d: m.d.Sub(o.d)} }

// Neg returns -m.
func (m Money) Neg() Money { return Money{d: m.d.Neg()} }

// Equal compares by value, so 1.50 equals 1.5.
func (m Money) Equal(o Money) bool { return m.d.Equal(o.d) }

// IsZero reports whether m is zero.
func (m Money) IsZero() bool { return m.d.IsZero() }

// IsNegative reports whether m is below zero.
func (m Money) IsNegative() bool { return m.d.IsNegative() }

// Cmp returns -1, 0 or +1 as m is less than, equal to or greater than o.
func (m Money) Cmp(o Money) int { return m.d.Cmp(o.d) }

// Decimal exposes the underlying value for formatting.
func (m Money) Decimal() decimal.Decimal { return m.d }

// Float64 returns the value for display math such as percentages.
// Use Money arithmetic for anything that is summed.
func (m Money) Float64() float64 {
	f, _ := m.d.Float64()
	return f
}

// String renders the shortest exact decimal: "100", "12.5", "-20".
func (m Money) String() string {
	return m.d.String()
}

// StringFixed renders with exactly places decimals, rounding half away from zero.
func (m Money) StringFixed(places int32) string {
	return m.d.StringFixed(places)
}
