package prompt

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLine(t *testing.T) {
	var out strings.Builder
	p := New(strings.NewReader("  hello  \n"), &out)

	got, err := p.Line("Name: ")
	if err != nil {
		t.Fatalf("Line() error = %v", err)
	}
	if got != "hello" {
		t.Errorf("Line() = %q, want %q", got, "hello")
	}
	if out.String() != "Name: " {
		t.Errorf("prompt output = %q, want %q", out.String(), "Name: ")
	}
}

func TestLineEOF(t *testing.T) {
	p := New(strings.NewReader(""), io.Discard)
	if _, err := p.Line("x: "); err != io.EOF {
		t.Errorf("Line() error = %v, want io.EOF", err)
	}
}

func TestUntilRetriesUntilValid(t *testing.T) {
	var out strings.Builder
	p := New(strings.NewReader("bad\nworse\nok\n"), &out)

	parse := func(raw string) (string, error) {
		if raw != "ok" {
			return "", errors.New("not ok")
		}
		return raw, nil
	}

	got, err := Until(p, "val: ", parse)
	if err != nil {
		t.Fatalf("Until() error = %v", err)
	}
	if got != "ok" {
		t.Errorf("Until() = %q, want %q", got, "ok")
	}
	if n := strings.Count(out.String(), "Invalid input"); n != 2 {
		t.Errorf("rejection messages = %d, want 2", n)
	}
	if n := strings.Count(out.String(), "val: "); n != 3 {
		t.Errorf("prompts shown = %d, want 3", n)
	}
}

func TestUntilEOF(t *testing.T) {
	p := New(strings.NewReader("bad\n"), io.Discard)
	parse := func(raw string) (int, error) { return 0, errors.New("no") }

	if _, err := Until(p, "n: ", parse); err != io.EOF {
		t.Errorf("Until() error = %v, want io.EOF", err)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"n\n", false},
		{"N\n", false},
		{"maybe\nyes\ny\n", true}, // invalid answers re-ask
	}
	for _, tt := range tests {
		var out strings.Builder
		p := New(strings.NewReader(tt.input), &out)
		got, err := p.Confirm("proceed? ")
		if err != nil {
			t.Fatalf("Confirm(%q) error = %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
