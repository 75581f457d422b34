package engine

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Number is one numeric result. It tracks whether the value is an exact
// integer (factorial results) or a real number, so formatting never has to
// guess the kind after the fact.
type Number struct {
	real  float64
	exact *big.Int
}

// Real wraps a floating-point result.
func Real(v float64) Number {
	return Number{real: v}
}

// Exact wraps an exact integer result.
func Exact(i *big.Int) Number {
	return Number{exact: i}
}

// IsExact reports whether the value is an exact integer.
func (n Number) IsExact() bool {
	return n.exact != nil
}

// Float64 returns the value as a float64. Exact integers beyond float
// precision are approximated.
func (n Number) Float64() float64 {
	if n.exact == nil {
		return n.real
	}
	f, _ := new(big.Float).SetInt(n.exact).Float64()
	return f
}

// String is the generic conversion: full-precision, no fixed decimal count.
// It backs copy-last-result and the formatting fallback for non-finite values.
func (n Number) String() string {
	if n.exact != nil {
		return n.exact.String()
	}
	return strconv.FormatFloat(n.real, 'g', -1, 64)
}

// MarshalJSON renders exact integers as integer literals and reals as
// floats. JSON has no NaN or infinities, so non-finite reals are emitted as
// quoted strings instead of failing the enclosing document.
func (n Number) MarshalJSON() ([]byte, error) {
	if n.exact != nil {
		return []byte(n.exact.String()), nil
	}
	if math.IsNaN(n.real) || math.IsInf(n.real, 0) {
		return json.Marshal(n.String())
	}
	return json.Marshal(n.real)
}

// UnmarshalJSON accepts what MarshalJSON produces: plain integer literals
// become exact integers, fractional or exponent literals become reals, and
// quoted strings are the non-finite escape hatch.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return err
		}
		*n = Real(f)
		return nil
	}

	if !strings.ContainsAny(s, ".eE") {
		if i, ok := new(big.Int).SetString(s, 10); ok {
			*n = Exact(i)
			return nil
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*n = Real(f)
	return nil
}
