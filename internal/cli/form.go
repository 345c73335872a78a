package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"budget/internal/core"
)

// ProfileValues are the startup answers collected by the form.
type ProfileValues struct {
	Name          string
	Income        string
	MonthlyBudget string
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ProfileForm builds the interactive startup form. Fields already set in v
// are shown pre-filled.
func ProfileForm(v *ProfileValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your name").
				Value(&v.Name).
				Validate(ValidateName),
			huh.NewInput().
				Title("Monthly income").
				Placeholder("3000").
				Value(&v.Income).
				Validate(ValidateAmountField),
			huh.NewInput().
				Title("Monthly budget").
				Placeholder("1000").
				Value(&v.MonthlyBudget).
				Validate(ValidateAmountField),
		),
	)
}

// PromptProfile runs the form and fills v.
func PromptProfile(v *ProfileValues) error {
	return ProfileForm(v).Run()
}

// ValidateName rejects blank names.
func ValidateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("name is required")
	}
	return nil
}

// ValidateAmountField accepts a non-negative decimal.
func ValidateAmountField(s string) error {
	_, err := core.ParseNonNegativeAmount(s)
	return err
}
