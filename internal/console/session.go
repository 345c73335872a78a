// Package console runs the line-oriented budget menu over any reader/writer
// pair. It owns input parsing; the profile it drives never sees raw text.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"budget/internal/core"
	"budget/internal/log"
)

// Menu choices.
const (
	ChoiceAddExpense = "1"
	ChoiceSummary    = "2"
	ChoiceExit       = "3"
)

// Prompts and messages shown to the user.
const (
	msgWelcome     = "Welcome to Personal Budget Tracking System!"
	msgGoodbye     = "Thank you for using the Personal Budget Tracking System. Goodbye!"
	msgMenu        = "\nMenu:\n1. Add Expense\n2. View Summary\n3. Exit"
	msgInvalid     = "Invalid choice. Please try again."
	msgAdded       = "Expense added successfully!"
	promptName     = "Enter your name: "
	promptIncome   = "Enter your monthly income: "
	promptBudget   = "Enter your monthly budget: "
	promptChoice   = "Choose an option: "
	promptAmount   = "Enter expense amount: "
	promptCategory = "Enter expense category (e.g., Food, Utilities, etc.): "
	promptDesc     = "Enter a description for the expense: "
)

// MaxLineLength is the longest input line accepted, in bytes. Longer lines
// are rejected and the prompt is repeated.
const MaxLineLength = 1 << 20

var (
	// ErrInputClosed is returned by prompts when the input reaches EOF.
	ErrInputClosed = errors.New("input closed")
	// ErrLineTooLong reports an input line over MaxLineLength.
	ErrLineTooLong = errors.New("input line too long")
)

// Renderer turns a summary into the text printed for menu option 2.
type Renderer func(s core.Summary, monthlyBudget core.Money) string

// PlainRenderer prints the summary in the classic text layout.
func PlainRenderer(currency string) Renderer {
	return func(s core.Summary, _ core.Money) string {
		return s.Format(currency)
	}
}

// Options configures a Session. Zero values are prompted for or defaulted.
type Options struct {
	Name          string
	Income        *core.Money
	MonthlyBudget *core.Money

	// SuggestDistance enables the "did you mean" hint for new categories
	// within this edit distance of a known one. 0 disables it.
	SuggestDistance int

	Render Renderer
	// Notice styles one-line notes such as the category hint.
	Notice func(string) string
	Logger *log.Logger
	Clock  func() time.Time
}

// Session is one run of the menu loop. It owns exactly one profile.
type Session struct {
	out  *printer
	in   io.Reader
	opts Options
	id   string
	log  *log.Logger

	lines   <-chan inputLine
	profile *core.Profile
}

// NewSession creates a session reading from in and writing to out.
func NewSession(in io.Reader, out io.Writer, opts Options) *Session {
	if opts.Render == nil {
		opts.Render = PlainRenderer("$")
	}
	if opts.Notice == nil {
		opts.Notice = func(msg string) string { return msg }
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	id := uuid.NewString()
	return &Session{
		out:  &printer{w: out},
		in:   in,
		opts: opts,
		id:   id,
		log:  logger.WithComponent(log.ComponentConsole).With(log.FieldSessionID, id),
	}
}

// ID returns the session id used in logs.
func (s *Session) ID() string { return s.id }

// Profile returns the session's profile, or nil before startup completed.
func (s *Session) Profile() *core.Profile { return s.profile }

// Run prompts for the profile, then serves the menu until the user exits,
// the input ends or ctx is cancelled. Input problems are reported to the
// user and never end the session; only read and write failures and
// cancellation are returned as errors.
func (s *Session) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	s.lines = readLines(s.in, done)

	s.out.println(msgWelcome)
	if err := s.startup(ctx); err != nil {
		if errors.Is(err, ErrInputClosed) {
			s.log.InfoContext(ctx, "Input closed before profile was created", log.FieldOperation, log.OpStartup)
			s.out.println("")
			s.out.println(msgGoodbye)
			return s.out.err
		}
		return err
	}
	s.log.InfoContext(ctx, "Session started",
		log.FieldOperation, log.OpStartup,
		log.FieldProfile, s.profile.Name(),
		log.FieldIncome, s.profile.Income().String(),
		log.FieldRemaining, s.profile.RemainingBudget().String())

	for {
		if s.out.err != nil {
			return fmt.Errorf("write output: %w", s.out.err)
		}
		s.out.println(msgMenu)
		choice, err := s.prompt(ctx, promptChoice)
		if err != nil {
			if errors.Is(err, ErrInputClosed) {
				s.out.println("")
				return s.exit(ctx)
			}
			return err
		}

		switch strings.TrimSpace(choice) {
		case ChoiceAddExpense:
			if err := s.addExpense(ctx); err != nil {
				if errors.Is(err, ErrInputClosed) {
					s.out.println("")
					return s.exit(ctx)
				}
				return err
			}
		case ChoiceSummary:
			s.out.println(s.opts.Render(s.profile.ExpenseSummary(), s.profile.MonthlyBudget()))
			s.log.DebugContext(ctx, "Summary printed", log.FieldOperation, log.OpSummary)
		case ChoiceExit:
			return s.exit(ctx)
		default:
			s.log.DebugContext(ctx, "Unknown menu choice", log.FieldOperation, log.OpMenu, log.FieldChoice, choice)
			s.out.println(msgInvalid)
		}
	}
}

func (s *Session) exit(ctx context.Context) error {
	s.out.println(msgGoodbye)
	s.log.InfoContext(ctx, "Session finished",
		log.FieldOperation, log.OpShutdown,
		log.FieldExpenses, s.profile.Len(),
		log.FieldTotal, s.profile.TotalExpenses().String(),
		log.FieldRemaining, s.profile.RemainingBudget().String())
	if s.out.err != nil {
		return fmt.Errorf("write output: %w", s.out.err)
	}
	return nil
}

func (s *Session) startup(ctx context.Context) error {
	name := s.opts.Name
	if name == "" {
		v, err := s.prompt(ctx, promptName)
		if err != nil {
			return err
		}
		name = v
	}

	income, err := s.amountOrPrompt(ctx, s.opts.Income, promptIncome)
	if err != nil {
		return err
	}
	budget, err := s.amountOrPrompt(ctx, s.opts.MonthlyBudget, promptBudget)
	if err != nil {
		return err
	}

	var popts []core.Option
	if s.opts.Clock != nil {
		popts = append(popts, core.WithClock(s.opts.Clock))
	}
	s.profile = core.NewProfile(name, income, budget, popts...)
	return nil
}

func (s *Session) amountOrPrompt(ctx context.Context, preset *core.Money, label string) (core.Money, error) {
	if preset != nil {
		return *preset, nil
	}
	return s.promptAmount(ctx, label, core.ParseNonNegativeAmount)
}

// promptAmount asks until parse accepts the input.
func (s *Session) promptAmount(ctx context.Context, label string, parse func(string) (core.Money, error)) (core.Money, error) {
	for {
		raw, err := s.prompt(ctx, label)
		if err != nil {
			return core.Zero, err
		}
		m, err := parse(raw)
		if err == nil {
			return m, nil
		}
		s.log.WarnContext(ctx, "Rejected numeric input", log.NewFields().
			WithOperation(log.OpParse).
			WithErrorType(log.ErrorTypeValidation).
			WithInput(raw).
			WithError(err).
			ToSlice()...)
		s.out.println(invalidInputMessage(err))
	}
}

func (s *Session) addExpense(ctx context.Context) error {
	amount, err := s.promptAmount(ctx, promptAmount, core.ParseAmount)
	if err != nil {
		return err
	}
	category, err := s.prompt(ctx, promptCategory)
	if err != nil {
		return err
	}
	description, err := s.prompt(ctx, promptDesc)
	if err != nil {
		return err
	}

	known := s.profile.Categories()
	isNew := !s.profile.HasCategory(category)

	e := s.profile.AddExpense(amount, category, description)
	s.out.println(msgAdded)
	fields := log.NewFields().
		WithOperation(log.OpAddExpense).
		WithExpense(e.Amount.String(), e.Category, e.Description)
	fields[log.FieldCategoryTotal] = s.profile.CategoryTotal(category).String()
	s.log.InfoContext(ctx, "Expense added", fields.ToSlice()...)

	if isNew {
		if match, ok := closestCategory(category, known, s.opts.SuggestDistance); ok {
			s.out.println(s.opts.Notice(fmt.Sprintf("Note: %q is a new category. Did you mean %q?", category, match)))
		}
	}
	return nil
}

// prompt writes label and waits for one line of input. Over-long lines are
// reported and the label is shown again.
func (s *Session) prompt(ctx context.Context, label string) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		s.out.print(label)
		if s.out.err != nil {
			return "", fmt.Errorf("write output: %w", s.out.err)
		}

		var line inputLine
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case l, ok := <-s.lines:
			if !ok {
				return "", ErrInputClosed
			}
			line = l
		}

		switch {
		case line.err == nil:
			return line.text, nil
		case errors.Is(line.err, ErrLineTooLong):
			s.log.WarnContext(ctx, "Rejected input line", log.NewFields().
				WithOperation(log.OpParse).
				WithErrorType(log.ErrorTypeValidation).
				WithError(line.err).
				ToSlice()...)
			s.out.println(invalidInputMessage(line.err))
		default:
			s.log.ErrorContext(ctx, "Failed to read input", log.NewFields().
				WithErrorType(log.ErrorTypeIO).
				WithError(line.err).
				ToSlice()...)
			return "", fmt.Errorf("read input: %w", line.err)
		}
	}
}

func invalidInputMessage(err error) string {
	switch {
	case errors.Is(err, ErrLineTooLong):
		return fmt.Sprintf("Invalid input: lines are limited to %d bytes.", MaxLineLength)
	case errors.Is(err, core.ErrNegativeAmount):
		return "Invalid input: the value cannot be negative."
	default:
		return "Invalid input: please enter a number (e.g. 12.50)."
	}
}

type inputLine struct {
	text string
	err  error
}

// readLines feeds the lines of r into a channel that is closed at EOF, so
// prompts can also wait on context cancellation. An over-long line is sent as
// ErrLineTooLong and reading goes on; any other read error is sent and ends
// the reader. The reader also stops once done is closed.
func readLines(r io.Reader, done <-chan struct{}) <-chan inputLine {
	ch := make(chan inputLine)
	go func() {
		defer close(ch)
		br := bufio.NewReader(r)
		for {
			text, err := readLine(br, MaxLineLength)
			if errors.Is(err, io.EOF) {
				return
			}
			select {
			case ch <- inputLine{text: text, err: err}:
			case <-done:
				return
			}
			if err != nil && !errors.Is(err, ErrLineTooLong) {
				return
			}
		}
	}()
	return ch
}

// readLine returns the next line without its line ending. It stops buffering
// once a line passes limit bytes and drains the rest. A final line with no
// newline is returned as is; io.EOF means there was nothing left.
func readLine(br *bufio.Reader, limit int) (string, error) {
	var (
		buf  []byte
		read int
	)
	for {
		chunk, err := br.ReadSlice('\n')
		read += len(chunk)
		if len(buf) <= limit {
			buf = append(buf, chunk...)
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && (!errors.Is(err, io.EOF) || read == 0) {
			return "", err
		}
		break
	}
	text := strings.TrimSuffix(string(buf), "\n")
	text = strings.TrimSuffix(text, "\r")
	if len(text) > limit {
		return "", ErrLineTooLong
	}
	return text, nil
}

// printer remembers the first write error so the loop can stop cleanly.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) print(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) println(s string) {
	p.print(s + "\n")
}
