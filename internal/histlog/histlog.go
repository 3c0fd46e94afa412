// Package histlog keeps a bounded log of completed calculations.
package histlog

import "github.com/google/uuid"

// DefaultCap is the number of entries kept when no cap is configured.
const DefaultCap = 50

// Entry is one completed evaluation.
type Entry struct {
	ID     uuid.UUID
	Expr   string
	Result string
}

func (e Entry) String() string {
	return e.Expr + " = " + e.Result
}

// Log is a capped, newest-first sequence of entries.
// Entries beyond the cap are evicted oldest-first.
type Log struct {
	max     int
	entries []Entry
}

func New(max int) *Log {
	if max <= 0 {
		max = DefaultCap
	}
	return &Log{max: max}
}

// Add prepends a new entry, evicting the oldest if the log is full.
func (l *Log) Add(expr, result string) Entry {
	e := Entry{ID: uuid.New(), Expr: expr, Result: result}
	l.entries = append([]Entry{e}, l.entries...)
	if len(l.entries) > l.max {
		l.entries = l.entries[:l.max]
	}
	return e
}

// Entries returns the log contents, newest first.
// The returned slice is owned by the log and must not be modified.
func (l *Log) Entries() []Entry {
	return l.entries
}

func (l *Log) Len() int {
	return len(l.entries)
}

// Clear empties the log.
func (l *Log) Clear() {
	l.entries = nil
}
