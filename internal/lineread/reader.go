package lineread

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrInterrupted is returned by ReadLine when the user pressed Ctrl-C.
var ErrInterrupted = errors.New("interrupted")

// Reader is an interactive line source with its associated output streams.
type Reader interface {
	// ReadLine shows the session prompt and returns the next line without
	// its line terminator.
	ReadLine() (string, error)

	// Prompt shows question instead of the session prompt and returns the
	// answer line.
	Prompt(question string) (string, error)

	// Stdout and Stderr are where the session writes regular output and
	// diagnostics. They must be used instead of os.Stdout/os.Stderr while
	// the reader is open, since a raw-mode terminal needs CRLF endings.
	Stdout() io.Writer
	Stderr() io.Writer

	// Close releases the reader and restores the terminal state.
	Close() error
}

// New returns a terminal reader when in and out are both terminals and a
// Plain reader otherwise.
func New(in, out, errOut *os.File, prompt string) (Reader, error) {
	if term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd())) {
		t, err := newTerminal(in, out, errOut, prompt)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	return NewPlain(in, out, errOut, prompt), nil
}

// Plain reads lines from any io.Reader. The prompt is written to out
// before each read so that transcripts look like interactive use.
type Plain struct {
	scanner *bufio.Scanner
	out     io.Writer
	errOut  io.Writer
	prompt  string
}

// NewPlain creates a Plain reader.
func NewPlain(in io.Reader, out, errOut io.Writer, prompt string) *Plain {
	return &Plain{
		scanner: bufio.NewScanner(in),
		out:     out,
		errOut:  errOut,
		prompt:  prompt,
	}
}

// ReadLine implements Reader.
func (p *Plain) ReadLine() (string, error) {
	return p.Prompt(p.prompt)
}

// Prompt implements Reader.
func (p *Plain) Prompt(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}
	if p.scanner.Scan() {
		return p.scanner.Text(), nil
	}
	if err := p.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Stdout implements Reader.
func (p *Plain) Stdout() io.Writer { return p.out }

// Stderr implements Reader.
func (p *Plain) Stderr() io.Writer { return p.errOut }

// Close implements Reader. Plain does not own its streams.
func (p *Plain) Close() error { return nil }
