package calc

import (
	"math"
	"strconv"
	"strings"
)

// roundScale fixes results to 10 decimal places, hiding float artifacts
// like 0.30000000000000004.
const roundScale = 1e10

func roundResult(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r := math.Round(v*roundScale) / roundScale
	if math.IsInf(r, 0) {
		return v
	}
	return r
}

// formatNumber converts a computed value back to an operand string.
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if s == "-0" {
		return "0"
	}
	return s
}

// Format prepares an operand for display: thousands grouping on the
// integer part, the in-progress fraction and trailing point kept
// verbatim, sentinel values passed through.
func Format(s string) string {
	if s == "" || s == "-" || s == ErrorText {
		return s
	}

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasDot := strings.Cut(s, ".")
	if !allDigits(intPart) {
		// Overflow spellings like "+Inf" pass through ungrouped.
		return sign + s
	}

	out := sign + groupThousands(intPart)
	if hasDot {
		out += "." + frac
	}
	return out
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// groupThousands inserts a comma every three digits from the right.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(n + (n-1)/3)
	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
