// Package session implements the interactive read-eval-print loop of
// numlist: it reads lines, dispatches commands against the number list it
// owns, and reports every outcome to the user.
//
// Lines are tokenized with shell quoting rules (github.com/google/shlex)
// and the first token must match a command name exactly. A line that is
// not a command, or names a command that needs values while the list is
// empty, is parsed as a number and appended.
package session

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/google/shlex"
	"go.uber.org/zap"

	"github.com/mmr-tortoise/numlist/internal/lineread"
	"github.com/mmr-tortoise/numlist/internal/model"
	"github.com/mmr-tortoise/numlist/internal/numfile"
	"github.com/mmr-tortoise/numlist/internal/numlist"
)

// LineReader is the input side the session needs. lineread.Reader
// satisfies it.
type LineReader interface {
	ReadLine() (string, error)
	Prompt(question string) (string, error)
	Stdout() io.Writer
	Stderr() io.Writer
}

// Options configures a Session.
type Options struct {
	// NaN is the NaN policy for typed and imported values.
	// Empty means model.NaNAllow.
	NaN model.NaNPolicy

	// Banner prints the greeting when Run starts.
	Banner bool

	// Logger receives debug records. Nil disables logging.
	Logger *zap.Logger
}

// Session owns the number list for the lifetime of the loop.
type Session struct {
	list     *numlist.List
	reader   LineReader
	out      io.Writer
	errOut   io.Writer
	importer *numfile.Importer
	exporter *numfile.Exporter
	nan      model.NaNPolicy
	banner   bool
	logger   *zap.Logger
	reg      *registry
}

// New creates a Session with an empty list, reading from reader.
func New(reader LineReader, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	nan := opts.NaN
	if nan == "" {
		nan = model.NaNAllow
	}
	return &Session{
		list:     numlist.New(),
		reader:   reader,
		out:      reader.Stdout(),
		errOut:   reader.Stderr(),
		importer: numfile.NewImporter(nan, logger),
		exporter: numfile.NewExporter(reader, logger),
		nan:      nan,
		banner:   opts.Banner,
		logger:   logger,
		reg:      newCommandRegistry(),
	}
}

// List returns the session's number list.
func (s *Session) List() *numlist.List {
	return s.list
}

// Run reads and executes lines until exit, end of input or interrupt, all
// of which return nil. Any other read error ends the loop and is returned
// for the caller to report.
func (s *Session) Run() error {
	if s.banner {
		s.println("Enter a number and it will be added to the list")
		s.println(`Type "help" for list of commands`)
	}

	for {
		line, err := s.reader.ReadLine()
		switch {
		case errors.Is(err, lineread.ErrInterrupted):
			s.println("CTRL-C")
			return nil
		case errors.Is(err, io.EOF):
			s.println("CTRL-D")
			return nil
		case err != nil:
			return fmt.Errorf("failed to read input: %w", err)
		}

		if s.Execute(line) {
			s.logger.Debug("session finished", zap.Int("values", s.list.Len()))
			return nil
		}
	}
}

// Execute runs a single input line and reports whether the session should
// end. Every outcome, including failures, is reported on the session's
// output streams.
func (s *Session) Execute(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}

	// An unbalanced quote is not a command; it falls through to number
	// parsing and is reported as invalid input there.
	tokens, err := shlex.Split(trimmed)
	if err == nil && len(tokens) > 0 {
		cmd, ok := s.reg.resolve(tokens[0])
		if ok && s.accepts(cmd, tokens[1:]) {
			s.logger.Debug("command", zap.String("name", cmd.Name), zap.Strings("args", tokens[1:]))
			return cmd.Run(s, tokens[1:])
		}
	}

	s.appendLiteral(trimmed)
	return false
}

func (s *Session) accepts(cmd command, args []string) bool {
	if len(args) > 0 && !cmd.TakesArg {
		return false
	}
	return !cmd.NeedsValues || !s.list.IsEmpty()
}

// ImportFile imports the numbers file at path, reports skipped lines on the
// error stream, and appends the values. On failure the list is unchanged.
func (s *Session) ImportFile(path string) bool {
	res, err := s.importer.Import(path)
	if err != nil {
		s.eprintf("Error importing file: %v\n", err)
		return false
	}
	for _, w := range res.Warnings {
		s.eprintf("%s\n", w)
	}
	s.printf("Imported numbers: %s\n", numlist.FormatList(res.Values))
	s.list.Extend(res.Values)
	return true
}

func (s *Session) appendLiteral(text string) {
	v, err := numlist.ParseValue(text)
	if err != nil || (math.IsNaN(v) && s.nan == model.NaNReject) {
		s.println("Invalid Input")
		return
	}
	s.list.Append(v)
}

func (s *Session) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Session) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Session) eprintf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.errOut, format, a...)
}
