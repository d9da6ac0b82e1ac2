package numfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/mmr-tortoise/numlist/internal/numlist"
)

// Prompter asks the user a question and returns the raw answer line.
// It returns io.EOF when input has ended.
type Prompter interface {
	Prompt(question string) (string, error)
}

// ExportResult describes what Export did.
type ExportResult struct {
	// Path is the absolute path of the target file.
	Path string

	// Written is false when the user declined to overwrite an existing file.
	Written bool
}

// IsAffirmative reports whether answer is "y" or "yes", ignoring case and
// surrounding whitespace.
func IsAffirmative(answer string) bool {
	a := strings.ToLower(strings.TrimSpace(answer))
	return a == "y" || a == "yes"
}

// Exporter writes numbers files.
type Exporter struct {
	prompter Prompter
	logger   *zap.Logger
}

// NewExporter creates an Exporter that asks prompter before overwriting.
// A nil logger disables logging.
func NewExporter(prompter Prompter, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{prompter: prompter, logger: logger}
}

// Export writes values to path, one per line in list order, each followed by
// a newline. If path already exists the user is asked first; any answer
// other than y/yes (including end of input) leaves the file untouched and
// returns a result with Written set to false.
func (ex *Exporter) Export(path string, values []float64) (ExportResult, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	res := ExportResult{Path: abs}

	if _, statErr := os.Stat(path); statErr == nil {
		question := fmt.Sprintf("File '%s' already exists. Do you want to overwrite it? (y/n): ", path)
		answer, err := ex.prompter.Prompt(question)
		if err != nil && !errors.Is(err, io.EOF) {
			return res, fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !IsAffirmative(answer) {
			ex.logger.Debug("export declined", zap.String("path", abs))
			return res, nil
		}
	}

	if err := writeValues(path, values); err != nil {
		return res, err
	}

	ex.logger.Debug("exported numbers file", zap.String("path", abs), zap.Int("values", len(values)))
	res.Written = true
	return res, nil
}

// writeValues creates or truncates path and writes values to it.
// The file is closed on every path; a failed close is reported.
func writeValues(path string, values []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	for _, v := range values {
		if _, err := w.WriteString(numlist.FormatValue(v) + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
