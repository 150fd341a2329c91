package executor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when the input source ends before a valid answer.
var ErrNoInput = errors.New("no answer available on input")

// ErrTooManyAttempts is returned when MaxAttempts invalid answers were given.
var ErrTooManyAttempts = errors.New("too many invalid answers")

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	// MaxAttempts bounds re-prompting on invalid input. Zero means unbounded.
	MaxAttempts int
}

// NewPrompter creates a prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// AskYesNo repeats question until the answer is "yes" or "no" (any case).
func (p *Prompter) AskYesNo(question string) (bool, error) {
	for attempt := 1; ; attempt++ {
		if _, err := fmt.Fprintf(p.out, "%s [yes/no]: ", question); err != nil {
			return false, err
		}

		line, err := p.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "yes":
			return true, nil
		case "no":
			return false, nil
		}

		if p.MaxAttempts > 0 && attempt >= p.MaxAttempts {
			return false, ErrTooManyAttempts
		}
	}
}

// ConfirmLiteral asks once and reports whether the answer is exactly literal.
// Only the line terminator is stripped, so case and spaces matter. End of input declines.
func (p *Prompter) ConfirmLiteral(question, literal string) (bool, error) {
	if _, err := fmt.Fprintf(p.out, "%s Type '%s' to confirm: ", question, literal); err != nil {
		return false, err
	}

	line, err := p.readLine()
	if errors.Is(err, ErrNoInput) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.TrimRight(line, "\r\n") == literal, nil
}

// readLine returns the next line, or the trailing partial line at EOF.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", ErrNoInput
		}
		return line, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return line, nil
}
