package engine

import (
	"math"
	"testing"
)

func fptr(v float64) *float64 { return &v }

func TestEvaluateComputesNumericResults(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		op       string
		operands Operands
		mode     AngleMode
		want     float64
		within   float64
	}{
		{name: "add", category: Basic, op: "Add", operands: Operands{X: 2, Y: fptr(3)}, want: 5},
		{name: "subtract", category: Basic, op: "Subtract", operands: Operands{X: 2, Y: fptr(3)}, want: -1},
		{name: "multiply", category: Basic, op: "Multiply", operands: Operands{X: 4, Y: fptr(2.5)}, want: 10},
		{name: "divide", category: Basic, op: "Divide", operands: Operands{X: 7, Y: fptr(2)}, want: 3.5},
		{name: "power", category: Advanced, op: "Power", operands: Operands{X: 2, Y: fptr(10)}, want: 1024},
		{name: "square root", category: Advanced, op: "Square Root", operands: Operands{X: 9}, want: 3},
		{name: "square root of zero", category: Advanced, op: "Square Root", operands: Operands{X: 0}, want: 0},
		{name: "exponential", category: Advanced, op: "Exponential", operands: Operands{X: 1}, want: math.E, within: 1e-15},
		{name: "natural log", category: Advanced, op: "Natural Log", operands: Operands{X: math.E}, want: 1, within: 1e-15},
		{name: "log base 10", category: Advanced, op: "Log Base 10", operands: Operands{X: 100}, want: 2, within: 1e-15},
		{name: "log custom base", category: Advanced, op: "Log Custom Base", operands: Operands{X: 8, Base: fptr(2)}, want: 3, within: 1e-12},
		{name: "sin degrees", category: Trigonometry, op: "sin", operands: Operands{X: 30}, mode: Degrees, want: 0.5, within: 1e-12},
		{name: "cos degrees", category: Trigonometry, op: "cos", operands: Operands{X: 60}, mode: Degrees, want: 0.5, within: 1e-12},
		{name: "tan degrees", category: Trigonometry, op: "tan", operands: Operands{X: 45}, mode: Degrees, want: 1, within: 1e-12},
		{name: "sin radians", category: Trigonometry, op: "sin", operands: Operands{X: math.Pi / 2}, mode: Radians, want: 1, within: 1e-15},
		{name: "arcsin degrees", category: InverseTrig, op: "arcsin", operands: Operands{X: 0.5}, mode: Degrees, want: 30, within: 1e-9},
		{name: "arccos degrees", category: InverseTrig, op: "arccos", operands: Operands{X: -1}, mode: Degrees, want: 180, within: 1e-9},
		{name: "arctan degrees", category: InverseTrig, op: "arctan", operands: Operands{X: 1}, mode: Degrees, want: 45, within: 1e-9},
		{name: "arctan radians", category: InverseTrig, op: "arctan", operands: Operands{X: 1}, mode: Radians, want: math.Pi / 4, within: 1e-15},
		{name: "absolute", category: Misc, op: "Absolute", operands: Operands{X: -5}, want: 5},
		{name: "percentage", category: Misc, op: "Percentage", operands: Operands{X: 15, Y: fptr(200)}, want: 30, within: 1e-12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mode := tc.mode
			if mode == "" {
				mode = Radians
			}

			out := Evaluate(tc.category, tc.op, tc.operands, mode)
			if !out.OK {
				t.Fatalf("expected success, got failure %q", out.Message)
			}
			if out.Result.IsExact() {
				t.Fatalf("expected a real result, got exact integer %s", out.Result)
			}

			got := out.Result.Float64()
			if math.Abs(got-tc.want) > tc.within {
				t.Fatalf("expected %v within %v, got %v", tc.want, tc.within, got)
			}
		})
	}
}

func TestEvaluateRejectsDomainViolations(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		op       string
		operands Operands
		want     string
	}{
		{name: "divide by zero", category: Basic, op: "Divide", operands: Operands{X: 5, Y: fptr(0)},
			want: "Division by zero is undefined."},
		{name: "negative square root", category: Advanced, op: "Square Root", operands: Operands{X: -4},
			want: "Square root domain error: x must be ≥ 0."},
		{name: "natural log of zero", category: Advanced, op: "Natural Log", operands: Operands{X: 0},
			want: "Log domain error: x must be > 0."},
		{name: "natural log of negative", category: Advanced, op: "Natural Log", operands: Operands{X: -1},
			want: "Log domain error: x must be > 0."},
		{name: "log base 10 of zero", category: Advanced, op: "Log Base 10", operands: Operands{X: 0},
			want: "Log domain error: x must be > 0."},
		{name: "custom log base one", category: Advanced, op: "Log Custom Base", operands: Operands{X: 8, Base: fptr(1)},
			want: "For log_b(x): x>0, b>0, b≠1."},
		{name: "custom log base zero", category: Advanced, op: "Log Custom Base", operands: Operands{X: 8, Base: fptr(0)},
			want: "For log_b(x): x>0, b>0, b≠1."},
		{name: "custom log missing base", category: Advanced, op: "Log Custom Base", operands: Operands{X: 8},
			want: "For log_b(x): x>0, b>0, b≠1."},
		{name: "custom log negative value", category: Advanced, op: "Log Custom Base", operands: Operands{X: -8, Base: fptr(2)},
			want: "For log_b(x): x>0, b>0, b≠1."},
		{name: "arcsin above one", category: InverseTrig, op: "arcsin", operands: Operands{X: 1.5},
			want: "Domain error: input must be in [-1, 1]."},
		{name: "arccos below minus one", category: InverseTrig, op: "arccos", operands: Operands{X: -1.01},
			want: "Domain error: input must be in [-1, 1]."},
		{name: "negative factorial", category: Misc, op: "Factorial", operands: Operands{X: -1},
			want: "Factorial requires a non-negative integer."},
		{name: "fractional factorial", category: Misc, op: "Factorial", operands: Operands{X: 3.5},
			want: "Factorial requires a non-negative integer."},
		{name: "oversized factorial", category: Misc, op: "Factorial", operands: Operands{X: 10001},
			want: "Factorial input is too large."},
		{name: "missing second operand", category: Basic, op: "Add", operands: Operands{X: 1},
			want: "Operation requires a second operand (y)."},
		{name: "missing divisor", category: Basic, op: "Divide", operands: Operands{X: 1},
			want: "Operation requires a second operand (y)."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := Evaluate(tc.category, tc.op, tc.operands, Radians)
			if out.OK {
				t.Fatalf("expected failure, got result %s", out.Result)
			}
			if out.Message != tc.want {
				t.Fatalf("expected message %q, got %q", tc.want, out.Message)
			}
		})
	}
}

func TestEvaluateRejectsUnknownOperations(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		op       string
		want     string
	}{
		{name: "unknown operation", category: Basic, op: "Modulo",
			want: "Unknown operation: Basic → Modulo."},
		{name: "unknown category", category: Category("Algebra"), op: "Add",
			want: "Unknown operation: Algebra → Add."},
		{name: "operation in wrong category", category: Basic, op: "Factorial",
			want: "Unknown operation: Basic → Factorial."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := Evaluate(tc.category, tc.op, Operands{X: 1, Y: fptr(1)}, Radians)
			if out.OK {
				t.Fatalf("expected failure, got result %s", out.Result)
			}
			if out.Message != tc.want {
				t.Fatalf("expected message %q, got %q", tc.want, out.Message)
			}
		})
	}
}

func TestEvaluateFactorialIsExact(t *testing.T) {
	tests := []struct {
		x    float64
		want string
	}{
		{x: 0, want: "1"},
		{x: 1, want: "1"},
		{x: 5, want: "120"},
		{x: 20, want: "2432902008176640000"},
		{x: 25, want: "15511210043330985984000000"},
	}

	for _, tc := range tests {
		out := Evaluate(Misc, "Factorial", Operands{X: tc.x}, Radians)
		if !out.OK {
			t.Fatalf("factorial %v: expected success, got failure %q", tc.x, out.Message)
		}
		if !out.Result.IsExact() {
			t.Fatalf("factorial %v: expected an exact integer result", tc.x)
		}
		if got := out.Result.String(); got != tc.want {
			t.Fatalf("factorial %v: expected %s, got %s", tc.x, tc.want, got)
		}
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	attempts := []struct {
		category Category
		op       string
		operands Operands
		mode     AngleMode
	}{
		{Basic, "Divide", Operands{X: 5, Y: fptr(0)}, Radians},
		{Advanced, "Log Custom Base", Operands{X: 8, Base: fptr(2)}, Radians},
		{Trigonometry, "sin", Operands{X: 30}, Degrees},
		{Misc, "Factorial", Operands{X: 12}, Radians},
	}

	for _, a := range attempts {
		first := Evaluate(a.category, a.op, a.operands, a.mode)
		second := Evaluate(a.category, a.op, a.operands, a.mode)

		if first.OK != second.OK || first.Message != second.Message {
			t.Fatalf("%s → %s: outcomes diverged: %+v vs %+v", a.category, a.op, first, second)
		}
		if first.OK && first.Result.String() != second.Result.String() {
			t.Fatalf("%s → %s: results diverged: %s vs %s",
				a.category, a.op, first.Result, second.Result)
		}
	}
}

func TestArcsinInvertsSinUnderDegrees(t *testing.T) {
	for x := -90.0; x <= 90; x += 7.5 {
		sin := Evaluate(Trigonometry, "sin", Operands{X: x}, Degrees)
		if !sin.OK {
			t.Fatalf("sin(%v°): unexpected failure %q", x, sin.Message)
		}

		back := Evaluate(InverseTrig, "arcsin", Operands{X: sin.Result.Float64()}, Degrees)
		if !back.OK {
			t.Fatalf("arcsin(sin(%v°)): unexpected failure %q", x, back.Message)
		}

		if got := back.Result.Float64(); math.Abs(got-x) > 1e-9 {
			t.Fatalf("arcsin(sin(%v°)): expected %v, got %v", x, x, got)
		}
	}
}

func TestEvaluateToleratesNonFiniteComputeResults(t *testing.T) {
	// Power has no domain precondition, so a negative base with a fractional
	// exponent legitimately produces NaN. That is a Success, not a crash.
	out := Evaluate(Advanced, "Power", Operands{X: -8, Y: fptr(0.5)}, Radians)
	if !out.OK {
		t.Fatalf("expected success, got failure %q", out.Message)
	}
	if !math.IsNaN(out.Result.Float64()) {
		t.Fatalf("expected NaN, got %v", out.Result.Float64())
	}

	out = Evaluate(Advanced, "Exponential", Operands{X: 1e4}, Radians)
	if !out.OK {
		t.Fatalf("expected success, got failure %q", out.Message)
	}
	if !math.IsInf(out.Result.Float64(), 1) {
		t.Fatalf("expected +Inf, got %v", out.Result.Float64())
	}
}
