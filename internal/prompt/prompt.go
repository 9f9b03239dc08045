// Package prompt reads sign-up answers from an interactive terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks questions on out and reads answers from in.
// Secrets are read without echo when in is a terminal.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	fd     int
	isTerm bool
}

// New creates a Prompter on stdin/stderr
func New() *Prompter {
	fd := int(os.Stdin.Fd())
	return &Prompter{
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stderr,
		fd:     fd,
		isTerm: term.IsTerminal(fd),
	}
}

// NewWithIO creates a Prompter on arbitrary streams; secrets are read as plain lines
func NewWithIO(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Line asks label and returns the trimmed answer
func (p *Prompter) Line(label string) (string, error) {
	line, err := p.rawLine(label)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// rawLine asks label and returns the answer with only the line ending removed
func (p *Prompter) rawLine(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Confirm asks a yes/no question; only "y" and "yes" count as yes
func (p *Prompter) Confirm(label string) (bool, error) {
	answer, err := p.Line(label + " [y/N]")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// Password reads a secret without echoing it.
// Caller must zero the returned slice after use for security.
func (p *Prompter) Password(label string) ([]byte, error) {
	if !p.isTerm {
		line, err := p.rawLine(label)
		if err != nil {
			return nil, err
		}
		return []byte(line), nil
	}

	fmt.Fprintf(p.out, "%s: ", label)
	defer fmt.Fprintln(p.out)

	raw, err := term.ReadPassword(p.fd)
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}

	out := make([]byte, len(raw))
	copy(out, raw)
	clear(raw)
	return out, nil
}
