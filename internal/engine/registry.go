package engine

import (
	"math"
	"math/big"
)

// Failure messages are part of the public contract: the caller renders them
// verbatim, and the test suite pins the exact strings.
const (
	msgDivideByZero      = "Division by zero is undefined."
	msgSqrtDomain        = "Square root domain error: x must be ≥ 0."
	msgLogDomain         = "Log domain error: x must be > 0."
	msgLogBaseDomain     = "For log_b(x): x>0, b>0, b≠1."
	msgInverseTrigDomain = "Domain error: input must be in [-1, 1]."
	msgFactorialDomain   = "Factorial requires a non-negative integer."
	msgFactorialTooLarge = "Factorial input is too large."
	msgMissingY          = "Operation requires a second operand (y)."
)

// maxFactorialInput bounds factorial so a single request cannot pin the
// process computing an astronomically large product.
const maxFactorialInput = 10000

// Operation describes one registered calculator operation: which operand
// slots it consumes, its domain precondition, and its computation. The
// validate func returns a user-facing message when a precondition fails and
// the empty string otherwise; compute is only called on validated operands.
type Operation struct {
	Name     string
	NeedY    bool
	NeedBase bool

	validate func(Operands) string
	compute  func(Operands, AngleMode) Number
}

// Slots lists the operand slots the operation consumes, in x, y, base order.
func (op Operation) Slots() []string {
	slots := []string{"x"}
	if op.NeedY {
		slots = append(slots, "y")
	}
	if op.NeedBase {
		slots = append(slots, "base")
	}
	return slots
}

// CategoryOperations groups the operations of one category in presentation
// order.
type CategoryOperations struct {
	Category   Category
	Operations []Operation
}

// catalog is the dispatch table: every category and operation the evaluator
// accepts, in the order the caller's operation picker presents them.
// Adding an operation is an edit here, not a new branch in Evaluate.
var catalog = []CategoryOperations{
	{Basic, []Operation{
		{Name: "Add", NeedY: true,
			compute: func(o Operands, _ AngleMode) Number { return Real(o.X + *o.Y) }},
		{Name: "Subtract", NeedY: true,
			compute: func(o Operands, _ AngleMode) Number { return Real(o.X - *o.Y) }},
		{Name: "Multiply", NeedY: true,
			compute: func(o Operands, _ AngleMode) Number { return Real(o.X * *o.Y) }},
		{Name: "Divide", NeedY: true,
			validate: func(o Operands) string {
				if *o.Y == 0 {
					return msgDivideByZero
				}
				return ""
			},
			compute: func(o Operands, _ AngleMode) Number { return Real(o.X / *o.Y) }},
	}},
	{Advanced, []Operation{
		{Name: "Power", NeedY: true,
			compute: func(o Operands, _ AngleMode) Number { return Real(math.Pow(o.X, *o.Y)) }},
		{Name: "Square Root",
			validate: func(o Operands) string {
				if o.X < 0 {
					return msgSqrtDomain
				}
				return ""
			},
			compute: func(o Operands, _ AngleMode) Number { return Real(math.Sqrt(o.X)) }},
		{Name: "Exponential",
			compute: func(o Operands, _ AngleMode) Number { return Real(math.Exp(o.X)) }},
		{Name: "Natural Log",
			validate: validateLogInput,
			compute:  func(o Operands, _ AngleMode) Number { return Real(math.Log(o.X)) }},
		{Name: "Log Base 10",
			validate: validateLogInput,
			compute:  func(o Operands, _ AngleMode) Number { return Real(math.Log10(o.X)) }},
		{Name: "Log Custom Base", NeedBase: true,
			validate: func(o Operands) string {
				if o.X <= 0 || o.Base == nil || *o.Base <= 0 || *o.Base == 1 {
					return msgLogBaseDomain
				}
				return ""
			},
			compute: func(o Operands, _ AngleMode) Number {
				return Real(math.Log(o.X) / math.Log(*o.Base))
			}},
	}},
	{Trigonometry, []Operation{
		{Name: "sin",
			compute: func(o Operands, m AngleMode) Number { return Real(math.Sin(ToRadians(o.X, m))) }},
		{Name: "cos",
			compute: func(o Operands, m AngleMode) Number { return Real(math.Cos(ToRadians(o.X, m))) }},
		{Name: "tan",
			compute: func(o Operands, m AngleMode) Number { return Real(math.Tan(ToRadians(o.X, m))) }},
	}},
	{InverseTrig, []Operation{
		{Name: "arcsin",
			validate: validateUnitInterval,
			compute:  func(o Operands, m AngleMode) Number { return Real(FromRadians(math.Asin(o.X), m)) }},
		{Name: "arccos",
			validate: validateUnitInterval,
			compute:  func(o Operands, m AngleMode) Number { return Real(FromRadians(math.Acos(o.X), m)) }},
		{Name: "arctan",
			compute: func(o Operands, m AngleMode) Number { return Real(FromRadians(math.Atan(o.X), m)) }},
	}},
	{Misc, []Operation{
		{Name: "Absolute",
			compute: func(o Operands, _ AngleMode) Number { return Real(math.Abs(o.X)) }},
		{Name: "Factorial",
			validate: func(o Operands) string {
				if o.X != math.Trunc(o.X) || o.X < 0 {
					return msgFactorialDomain
				}
				if o.X > maxFactorialInput {
					return msgFactorialTooLarge
				}
				return ""
			},
			compute: func(o Operands, _ AngleMode) Number {
				return Exact(new(big.Int).MulRange(1, int64(o.X)))
			}},
		{Name: "Percentage", NeedY: true,
			compute: func(o Operands, _ AngleMode) Number { return Real(o.X / 100 * *o.Y) }},
	}},
}

func validateLogInput(o Operands) string {
	if o.X <= 0 {
		return msgLogDomain
	}
	return ""
}

func validateUnitInterval(o Operands) string {
	if o.X < -1 || o.X > 1 {
		return msgInverseTrigDomain
	}
	return ""
}

// index gives O(1) lookup into the catalog. Built once at load; read-only
// afterwards.
var index = buildIndex()

func buildIndex() map[Category]map[string]*Operation {
	idx := make(map[Category]map[string]*Operation, len(catalog))
	for i := range catalog {
		ops := make(map[string]*Operation, len(catalog[i].Operations))
		for j := range catalog[i].Operations {
			op := &catalog[i].Operations[j]
			ops[op.Name] = op
		}
		idx[catalog[i].Category] = ops
	}
	return idx
}

func lookup(cat Category, name string) (*Operation, bool) {
	ops, ok := index[cat]
	if !ok {
		return nil, false
	}
	op, ok := ops[name]
	return op, ok
}

// Catalog returns the full operation table in presentation order. The
// returned slices are copies; mutating them does not affect dispatch.
func Catalog() []CategoryOperations {
	out := make([]CategoryOperations, len(catalog))
	for i, group := range catalog {
		ops := make([]Operation, len(group.Operations))
		copy(ops, group.Operations)
		out[i] = CategoryOperations{Category: group.Category, Operations: ops}
	}
	return out
}

// Categories lists the category identifiers in presentation order.
func Categories() []Category {
	out := make([]Category, len(catalog))
	for i, group := range catalog {
		out[i] = group.Category
	}
	return out
}

// OperationsFor lists the operations of one category in presentation order,
// or nil for an unknown category.
func OperationsFor(cat Category) []Operation {
	for _, group := range catalog {
		if group.Category == cat {
			ops := make([]Operation, len(group.Operations))
			copy(ops, group.Operations)
			return ops
		}
	}
	return nil
}
