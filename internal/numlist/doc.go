// Package numlist implements the in-memory number list and the aggregate
// operations computed over it.
//
// List is an ordered, mutable sequence of float64 values kept in insertion
// order. The aggregate functions (Sum, Product, Mean, Max, Min, Range,
// Median, StdDev and the sorted views) are pure functions over a []float64
// snapshot and never mutate their input.
//
// Max, Min, Mean, Range and Median require a non-empty input. Callers are
// expected to guard against the empty case; the functions panic otherwise,
// in the same way indexing an empty slice would.
//
// The package also owns the text form of a value: ParseValue is the single
// text-to-float entry point used by the prompt and by file import, and
// FormatValue/FormatList render values for export files and for display.
package numlist
