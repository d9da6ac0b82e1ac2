package lineread

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// keyCtrlC is the byte a raw-mode terminal delivers for Ctrl-C.
const keyCtrlC = 3

// interruptWatcher passes input through and counts the Ctrl-C bytes that
// went by. term.Terminal reports both Ctrl-C and Ctrl-D as io.EOF, so this
// is how the two are told apart. The count is only consumed by an EOF: a
// Ctrl-C read in the same chunk as an earlier line stays pending in
// term.Terminal's buffer until a later ReadLine reaches it.
type interruptWatcher struct {
	r       io.Reader
	pending int
}

func (w *interruptWatcher) Read(p []byte) (int, error) {
	n, err := w.r.Read(p)
	w.pending += bytes.Count(p[:n], []byte{keyCtrlC})
	return n, err
}

// consume reports whether a Ctrl-C is pending and marks it handled.
func (w *interruptWatcher) consume() bool {
	if w.pending == 0 {
		return false
	}
	w.pending--
	return true
}

// crlfWriter translates LF to CRLF for streams that bypass term.Terminal
// while the terminal is in raw mode.
type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}

type terminal struct {
	fd       int
	oldState *term.State
	term     *term.Terminal
	watcher  *interruptWatcher
	errOut   io.Writer
	prompt   string
}

func newTerminal(in, out, errOut *os.File, prompt string) (*terminal, error) {
	fd := int(in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to set terminal to raw mode: %w", err)
	}

	t := wrapTerminal(in, out, errOut, prompt)
	t.fd = fd
	t.oldState = oldState
	if width, height, err := term.GetSize(int(out.Fd())); err == nil {
		_ = t.term.SetSize(width, height)
	}
	return t, nil
}

// wrapTerminal builds the line editor over already-raw streams.
func wrapTerminal(in io.Reader, out, errOut io.Writer, prompt string) *terminal {
	watcher := &interruptWatcher{r: in}
	rw := struct {
		io.Reader
		io.Writer
	}{watcher, out}

	return &terminal{
		term:    term.NewTerminal(rw, prompt),
		watcher: watcher,
		errOut:  crlfWriter{w: errOut},
		prompt:  prompt,
	}
}

func (t *terminal) ReadLine() (string, error) {
	line, err := t.term.ReadLine()
	if errors.Is(err, io.EOF) && t.watcher.consume() {
		return "", ErrInterrupted
	}
	return line, err
}

func (t *terminal) Prompt(question string) (string, error) {
	t.term.SetPrompt(question)
	defer t.term.SetPrompt(t.prompt)
	return t.ReadLine()
}

// Stdout returns the term.Terminal itself, which redraws the prompt
// around any output and handles line endings.
func (t *terminal) Stdout() io.Writer { return t.term }

func (t *terminal) Stderr() io.Writer { return t.errOut }

func (t *terminal) Close() error {
	if t.oldState == nil {
		return nil
	}
	return term.Restore(t.fd, t.oldState)
}
