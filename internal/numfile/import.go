package numfile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/mmr-tortoise/numlist/internal/model"
	"github.com/mmr-tortoise/numlist/internal/numlist"
)

// maxLineLength bounds a single line of a numbers file. Longer lines are a
// read error rather than a parse warning.
const maxLineLength = 1024 * 1024

// Warning describes a line of a numbers file that was skipped because it
// did not hold a usable number.
type Warning struct {
	// Line is the 1-based line number in the file.
	Line int

	// Text is the trimmed content of the offending line.
	Text string

	// Reason explains why the line was skipped.
	Reason string
}

// String renders the warning in the form printed to the user.
func (w Warning) String() string {
	if w.Reason != "" {
		return fmt.Sprintf("Invalid numeric value found in line %d: %s (%s)", w.Line, w.Text, w.Reason)
	}
	return fmt.Sprintf("Invalid numeric value found in line %d: %s", w.Line, w.Text)
}

// Result holds the outcome of a successful import.
type Result struct {
	// Values are the parsed numbers in file order.
	Values []float64

	// Warnings lists the skipped lines in file order.
	Warnings []Warning
}

// Importer reads numbers files.
type Importer struct {
	// NaN decides whether NaN lines are kept or reported as warnings.
	// The zero value behaves like model.NaNAllow.
	NaN model.NaNPolicy

	logger *zap.Logger
}

// NewImporter creates an Importer. A nil logger disables logging.
func NewImporter(policy model.NaNPolicy, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{NaN: policy, logger: logger}
}

// Import reads the numbers file at path. The file is closed before Import
// returns. When the file cannot be opened or a line cannot be read, the
// error is returned and no partial result is.
func (im *Importer) Import(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	res, err := im.Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	im.logger.Debug("imported numbers file",
		zap.String("path", path),
		zap.Int("values", len(res.Values)),
		zap.Int("warnings", len(res.Warnings)))
	return res, nil
}

// Read parses numbers from r, one per line. A line that is not valid UTF-8
// fails the whole read, like any other I/O error.
func (im *Importer) Read(r io.Reader) (*Result, error) {
	res := &Result{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if !utf8.Valid(scanner.Bytes()) {
			return nil, fmt.Errorf("line %d: stream did not contain valid UTF-8", lineNo)
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		v, err := numlist.ParseValue(text)
		if err != nil {
			res.Warnings = append(res.Warnings, Warning{Line: lineNo, Text: text})
			continue
		}
		if math.IsNaN(v) && im.NaN == model.NaNReject {
			res.Warnings = append(res.Warnings, Warning{Line: lineNo, Text: text, Reason: "NaN values are rejected"})
			continue
		}
		res.Values = append(res.Values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
