package engine

import (
	"math"
	"strconv"
)

// MaxPrecision is the largest number of decimal digits a caller may request.
const MaxPrecision = 12

// Format renders a result for display. Exact integers print without a
// decimal point; reals print fixed-point with the requested number of
// decimals, clamped to [0, MaxPrecision]. Non-finite reals cannot be
// fixed-point formatted and fall back to the generic conversion.
func Format(n Number, precision int) string {
	if precision < 0 {
		precision = 0
	}
	if precision > MaxPrecision {
		precision = MaxPrecision
	}
	if n.IsExact() {
		return n.String()
	}
	if math.IsNaN(n.real) || math.IsInf(n.real, 0) {
		return n.String()
	}
	return strconv.FormatFloat(n.real, 'f', precision, 64)
}
