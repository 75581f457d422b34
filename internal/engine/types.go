package engine

import "strings"

// Category identifies one of the fixed operation groups.
type Category string

const (
	Basic        Category = "Basic"
	Advanced     Category = "Advanced"
	Trigonometry Category = "Trigonometry"
	InverseTrig  Category = "Inverse Trig"
	Misc         Category = "Misc"
)

// AngleAware reports whether operations in this category interpret their
// input or output as an angle, and therefore consult the angle mode.
func (c Category) AngleAware() bool {
	return c == Trigonometry || c == InverseTrig
}

// AngleMode selects the unit convention for trigonometric and
// inverse-trigonometric operations.
type AngleMode string

const (
	Degrees AngleMode = "Degrees"
	Radians AngleMode = "Radians"
)

// ParseAngleMode maps a caller-supplied string onto an AngleMode. The empty
// string selects Degrees, the calculator's default. Anything else is rejected
// so that a typo cannot silently flip the unit convention.
func ParseAngleMode(s string) (AngleMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "degrees":
		return Degrees, true
	case "radians":
		return Radians, true
	}
	return "", false
}

// Operands carries the concrete values supplied for one evaluation attempt.
// X is required by every operation; Y and Base are nil when the operation
// does not use them.
type Operands struct {
	X    float64
	Y    *float64
	Base *float64
}

// Outcome is the result of one evaluation attempt: a success carrying the
// computed Number, or a failure carrying a user-facing message. Exactly one
// branch is meaningful, discriminated by OK.
type Outcome struct {
	OK      bool
	Result  Number
	Message string
}

// Success wraps a computed result.
func Success(n Number) Outcome {
	return Outcome{OK: true, Result: n}
}

// Failure wraps a domain-violation message.
func Failure(msg string) Outcome {
	return Outcome{Message: msg}
}
