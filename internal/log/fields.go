package log

import "sort"

// Common field names for structured logging
const (
	FieldComponent     = "component"
	FieldSessionID     = "session_id"
	FieldError         = "error"
	FieldErrorType     = "error_type"
	FieldOperation     = "operation"
	FieldProfile       = "profile"
	FieldAmount        = "amount"
	FieldCategory      = "category"
	FieldCategoryTotal = "category_total"
	FieldDescription   = "description"
	FieldRemaining     = "remaining"
	FieldIncome        = "income"
	FieldTotal         = "total"
	FieldExpenses      = "expenses"
	FieldChoice        = "choice"
	FieldInput         = "input"
	FieldConfigPath    = "config_path"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentConsole = "console"
	ComponentConfig  = "config"
)

// Operations defines standard operation names
const (
	OpStartup    = "startup"
	OpAddExpense = "add_expense"
	OpSummary    = "summary"
	OpParse      = "parse"
	OpMenu       = "menu"
	OpShutdown   = "shutdown"
	OpLoadConfig = "load_config"
	OpSaveConfig = "save_config"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeIO            = "io_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithErrorType adds the error category field
func (f LogFields) WithErrorType(errorType string) LogFields {
	f[FieldErrorType] = errorType
	return f
}

// WithInput adds the raw text the user typed, cut to a loggable length
func (f LogFields) WithInput(input string) LogFields {
	const maxLen = 64
	if len(input) > maxLen {
		input = input[:maxLen] + "..."
	}
	f[FieldInput] = input
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithExpense adds expense-related fields. Amount is passed as its decimal
// string so handlers never round it.
func (f LogFields) WithExpense(amount, category, description string) LogFields {
	f[FieldAmount] = amount
	f[FieldCategory] = category
	f[FieldDescription] = description
	return f
}

// ToSlice converts LogFields to a slice for slog, keys sorted for stable output
func (f LogFields) ToSlice() []any {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	slice := make([]any, 0, len(f)*2)
	for _, k := range keys {
		slice = append(slice, k, f[k])
	}
	return slice
}
