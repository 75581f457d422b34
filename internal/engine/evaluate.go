// Package engine evaluates calculator operations. It maps a (category,
// operation) pair onto a registered descriptor, checks the operation's
// domain preconditions, and runs its pure computation. Every failure path
// is returned as a Failure outcome; the engine never panics on caller input
// and holds no state between attempts.
package engine

import "fmt"

// Evaluate runs one attempt against the operation registry. The angle mode
// is consulted only by trigonometric and inverse-trigonometric operations.
// An unknown (category, operation) pair is rejected with a Failure rather
// than an error: the caller's picker normally prevents it, but the engine
// does not trust that.
func Evaluate(cat Category, operation string, operands Operands, mode AngleMode) Outcome {
	op, ok := lookup(cat, operation)
	if !ok {
		return Failure(fmt.Sprintf("Unknown operation: %s → %s.", cat, operation))
	}

	if op.NeedY && operands.Y == nil {
		return Failure(msgMissingY)
	}

	if op.validate != nil {
		if msg := op.validate(operands); msg != "" {
			return Failure(msg)
		}
	}

	return Success(op.compute(operands, mode))
}
