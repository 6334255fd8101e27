package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// InputValidationError is a non-numeric or out-of-range entry. It is
// handled by re-prompting and never leaves this package.
type InputValidationError struct {
	Input    string
	Min, Max int
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("invalid input %q: want a number from %d to %d", e.Input, e.Min, e.Max)
}

// parseChoice parses s as an integer in [min, max].
func parseChoice(s string, min, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < min || n > max {
		return 0, &InputValidationError{Input: s, Min: min, Max: max}
	}
	return n, nil
}

// prompter reads line-oriented answers from the player.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// line prints prompt and returns the next input line. It returns io.EOF
// when input is exhausted.
func (p *prompter) line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		fmt.Fprintln(p.out)
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// choice prompts until the player enters a number in [min, max].
// retry is printed before each re-prompt.
func (p *prompter) choice(prompt, retry string, min, max int) (int, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		n, err := parseChoice(s, min, max)
		if err == nil {
			return n, nil
		}
		if retry != "" {
			fmt.Fprintln(p.out, retry)
		}
	}
}

// nonEmpty prompts until the player enters a non-blank line.
func (p *prompter) nonEmpty(prompt string) (string, error) {
	for {
		s, err := p.line(prompt)
		if err != nil || s != "" {
			return s, err
		}
	}
}

// yes prompts once and reports whether the answer starts with y or Y.
func (p *prompter) yes(prompt string) (bool, error) {
	s, err := p.line(prompt)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(s), "y"), nil
}
