// Package history keeps the append-only audit trail of evaluation attempts
// for one session. Entries are immutable once recorded; the ledger only ever
// grows, or resets to empty when cleared.
package history

import (
	"sync"
	"time"

	"github.com/Turab-IE/Calcu-App/internal/engine"
)

// Inputs is the operand snapshot stored with an entry: exactly what the
// caller supplied, including the angle mode in effect.
type Inputs struct {
	X         float64  `json:"x"`
	Y         *float64 `json:"y"`
	Base      *float64 `json:"base"`
	AngleMode string   `json:"angle_mode"`
}

// Entry is one immutable audit record: when the attempt happened, which
// operation ran, what the inputs were, and how it turned out. Failures are
// recorded exactly like successes.
type Entry struct {
	Time      time.Time
	Operation string
	Inputs    Inputs
	Outcome   engine.Outcome
}

// Ledger is the ordered, append-only record of every attempt in one
// session. One session owns one ledger; the mutex makes the ledger safe
// when the owning caller races its own requests.
type Ledger struct {
	mu      sync.Mutex
	now     func() time.Time
	entries []Entry
}

// New returns an empty ledger stamped by the wall clock.
func New() *Ledger {
	return NewWithClock(time.Now)
}

// NewWithClock returns an empty ledger with an injected clock, for tests
// that need deterministic timestamps.
func NewWithClock(now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}
	return &Ledger{now: now}
}

// Record appends one entry stamped with the current time at second
// resolution. It never fails, validates nothing, and never reorders or
// overwrites what is already recorded.
func (l *Ledger) Record(operation string, inputs Inputs, outcome engine.Outcome) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, Entry{
		Time:      l.now().UTC().Truncate(time.Second),
		Operation: operation,
		Inputs:    inputs,
		Outcome:   outcome,
	})
}

// Entries returns a snapshot of the ledger in insertion order, oldest
// first. The snapshot is detached: later appends or a clear do not change
// it, and mutating it does not touch the ledger.
func (l *Ledger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Last returns the most recently appended entry, if any.
func (l *Ledger) Last() (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Len returns the number of recorded entries.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}

// Clear empties the ledger. Irreversible; the next Record starts a fresh
// sequence.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = nil
}
