package engine

import (
	"math"
	"math/big"
	"testing"
)

func TestFormatFixedPointPrecision(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		precision int
		want      string
	}{
		{name: "default six decimals", value: 0.5, precision: 6, want: "0.500000"},
		{name: "zero decimals", value: 3.7, precision: 0, want: "4"},
		{name: "integer valued real keeps decimals", value: 3, precision: 6, want: "3.000000"},
		{name: "twelve decimals", value: 1.0 / 3.0, precision: 12, want: "0.333333333333"},
		{name: "negative value", value: -2.25, precision: 2, want: "-2.25"},
		{name: "rounds the stored double not the literal", value: 1.005, precision: 2, want: "1.00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Format(Real(tc.value), tc.precision); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFormatClampsPrecision(t *testing.T) {
	if got := Format(Real(0.5), -3); got != "0" {
		t.Fatalf("expected %q, got %q", "0", got)
	}
	if got := Format(Real(0.5), 40); got != "0.500000000000" {
		t.Fatalf("expected 12 decimals, got %q", got)
	}
}

func TestFormatExactIntegersHaveNoDecimalPoint(t *testing.T) {
	fact20 := new(big.Int).MulRange(1, 20)

	tests := []struct {
		n    Number
		want string
	}{
		{n: Exact(big.NewInt(120)), want: "120"},
		{n: Exact(big.NewInt(1)), want: "1"},
		{n: Exact(fact20), want: "2432902008176640000"},
	}

	for _, tc := range tests {
		if got := Format(tc.n, 6); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestFormatNonFiniteFallsBackToGenericForm(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{value: math.NaN(), want: "NaN"},
		{value: math.Inf(1), want: "+Inf"},
		{value: math.Inf(-1), want: "-Inf"},
	}

	for _, tc := range tests {
		if got := Format(Real(tc.value), 6); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}
