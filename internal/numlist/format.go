package numlist

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseValue parses a decimal number the way the prompt and the import
// reader accept it. Surrounding whitespace is not trimmed.
//
// Only plain decimal syntax is accepted: Go's digit separators (1_000) and
// hexadecimal floats (0x1p-2) are rejected. nan, inf and infinity are
// matched case-insensitively and may carry a sign.
//
// Literals whose magnitude is out of range are not an error: they parse to
// ±Inf (overflow) or ±0 (underflow), which is what a user typing 1e400
// expects.
func ParseValue(s string) (float64, error) {
	if strings.ContainsAny(s, "_xX") {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if isNaNLiteral(s) {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// isNaNLiteral reports whether s is nan in any case, optionally signed.
// strconv.ParseFloat only accepts the unsigned form.
func isNaNLiteral(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return strings.EqualFold(s, "nan")
}

// FormatValue renders v as plain decimal text without an exponent, using the
// fewest digits that parse back to the same value: 16, 2.5, 0.1, -0.
// Infinities render as inf and -inf, NaN as NaN; all three parse back with
// ParseValue.
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatListValue renders one element of a list. Finite values at or above
// 1e16 or below 1e-4 in magnitude use exponent form (1e16, -2.5e-7); other
// values are FormatValue with a trailing ".0" on integral values, so a list
// of whole numbers still reads as floats: [3.0, 5.0].
func formatListValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return FormatValue(v)
	}
	if abs := math.Abs(v); abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		return formatExponent(v)
	}
	s := FormatValue(v)
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

// formatExponent renders v in shortest exponent form without a plus sign or
// leading zeros in the exponent: 1e16, 1.5e20, 1e-7.
func formatExponent(v float64) string {
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := ""
	if exp[0] == '-' {
		sign = "-"
	}
	exp = strings.TrimLeft(exp[1:], "0")
	if exp == "" {
		exp = "0"
	}
	return mantissa + "e" + sign + exp
}

// FormatList renders values as a bracketed, comma-separated list:
// [3.0, 5.0, 8.5]. An empty slice renders as [].
func FormatList(xs []float64) string {
	parts := make([]string, 0, len(xs))
	for _, x := range xs {
		parts = append(parts, formatListValue(x))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
