// Package prompt implements line-oriented user prompting with retry loops.
// Prompters read from an io.Reader and write to an io.Writer so workflows
// can be driven by scripted input in tests.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads user responses one line at a time.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New returns a Prompter reading from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Out returns the prompter's output writer.
func (p *Prompter) Out() io.Writer {
	return p.out
}

// Line prints the label and returns the next input line, trimmed.
// Returns io.EOF when input is exhausted.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Until re-prompts with label until parse accepts the input, printing the
// parse error on each rejection. There is no retry limit.
func Until[T any](p *Prompter, label string, parse func(string) (T, error)) (T, error) {
	var zero T
	for {
		raw, err := p.Line(label)
		if err != nil {
			return zero, err
		}
		v, perr := parse(raw)
		if perr != nil {
			fmt.Fprintf(p.out, "Invalid input: %v.\n", perr)
			continue
		}
		return v, nil
	}
}

// Confirm asks a yes/no question, re-asking until the answer is y or n.
func (p *Prompter) Confirm(label string) (bool, error) {
	for {
		raw, err := p.Line(label)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(raw) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}
