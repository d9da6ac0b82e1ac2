// Package cli: stats.go implements the "numlist stats" command.
//
// The stats command reads a numbers file and prints the same aggregates the
// interactive session offers, without starting a session. Skipped lines are
// reported on stderr as during an interactive import. Output is a text
// table or, with --json, a single JSON object.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/numlist/internal/model"
	"github.com/mmr-tortoise/numlist/internal/numfile"
	"github.com/mmr-tortoise/numlist/internal/numlist"
)

// NewStatsCommand creates the "stats" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Summarize a numbers file",
		Long: `Summarize a file holding one number per line.

Prints count, total, product, mean, median, standard deviation,
smallest, largest and range. Blank lines are ignored and lines that are
not numbers are skipped with a warning.

Examples:
  numlist stats measurements.txt
  numlist stats --json measurements.txt`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0])
		},
	}
}

// statsSummary holds the aggregates of one file.
type statsSummary struct {
	Path    string
	Count   int
	Sum     float64
	Product float64
	Mean    float64
	Median  float64
	StdDev  float64
	Min     float64
	Max     float64
	Range   float64
}

// summarize computes every aggregate over a non-empty slice.
func summarize(path string, values []float64) statsSummary {
	return statsSummary{
		Path:    path,
		Count:   len(values),
		Sum:     numlist.Sum(values),
		Product: numlist.Product(values),
		Mean:    numlist.Mean(values),
		Median:  numlist.Median(values),
		StdDev:  numlist.StdDev(values),
		Min:     numlist.Min(values),
		Max:     numlist.Max(values),
		Range:   numlist.Range(values),
	}
}

// runStats is the main logic function for the stats command.
func runStats(out, errOut io.Writer, path string) error {
	importer := numfile.NewImporter(resolveNaNPolicy(model.NaNAllow), logger)
	res, err := importer.Import(path)
	if err != nil {
		return model.WrapCLIError(model.ExitFileError, fmt.Sprintf("failed to import %s", path), err)
	}
	for _, w := range res.Warnings {
		fmt.Fprintln(errOut, w)
	}
	VerboseLog("Read %d values from %s (%d skipped)", len(res.Values), path, len(res.Warnings))

	if len(res.Values) == 0 {
		return model.NewCLIError(model.ExitEmptyList, fmt.Sprintf("no values in %s", path))
	}

	summary := summarize(path, res.Values)
	if IsJSONOutput() {
		return printStatsJSON(out, summary)
	}
	printStatsText(out, summary)
	return nil
}

// printStatsText writes one aligned "label value" row per aggregate.
//
//	count    3
//	total    16
//	mean     5.333333333333333
func printStatsText(out io.Writer, s statsSummary) {
	rows := []struct {
		label string
		value string
	}{
		{"count", fmt.Sprintf("%d", s.Count)},
		{"total", numlist.FormatValue(s.Sum)},
		{"product", numlist.FormatValue(s.Product)},
		{"mean", numlist.FormatValue(s.Mean)},
		{"median", numlist.FormatValue(s.Median)},
		{"stddev", numlist.FormatValue(s.StdDev)},
		{"min", numlist.FormatValue(s.Min)},
		{"max", numlist.FormatValue(s.Max)},
		{"range", numlist.FormatValue(s.Range)},
	}
	for _, r := range rows {
		fmt.Fprintf(out, "%-8s %s\n", r.label, r.value)
	}
}

// statsJSON is the JSON output structure of the stats command.
// Aggregates are numbers when finite and strings ("inf", "-inf", "NaN")
// otherwise, since JSON has no literal for non-finite values.
type statsJSON struct {
	Path    string `json:"path"`
	Count   int    `json:"count"`
	Sum     any    `json:"sum"`
	Product any    `json:"product"`
	Mean    any    `json:"mean"`
	Median  any    `json:"median"`
	StdDev  any    `json:"stddev"`
	Min     any    `json:"min"`
	Max     any    `json:"max"`
	Range   any    `json:"range"`
}

func jsonValue(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return numlist.FormatValue(v)
	}
	return v
}

func printStatsJSON(out io.Writer, s statsSummary) error {
	result := statsJSON{
		Path:    s.Path,
		Count:   s.Count,
		Sum:     jsonValue(s.Sum),
		Product: jsonValue(s.Product),
		Mean:    jsonValue(s.Mean),
		Median:  jsonValue(s.Median),
		StdDev:  jsonValue(s.StdDev),
		Min:     jsonValue(s.Min),
		Max:     jsonValue(s.Max),
		Range:   jsonValue(s.Range),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to encode stats", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}
