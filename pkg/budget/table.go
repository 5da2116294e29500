package budget

import (
	"fmt"
	"time"
)

// Table maps every bot size to the longest a transaction of that size is
// expected to take. A Table is immutable once built.
type Table struct {
	budgets map[BotSize]time.Duration
}

// Entry is one row of a Table.
type Entry struct {
	Size   BotSize
	Budget time.Duration
}

var defaultTable = mustNewTable(map[BotSize]time.Duration{
	Small:     2 * time.Hour,
	Medium:    1 * time.Hour,
	Large:     30 * time.Minute,
	XtraLarge: 5 * time.Minute,
	Ultimate:  2 * time.Minute,
})

// Default returns the built-in budget table.
func Default() *Table {
	return defaultTable
}

// NewTable builds a Table from budgets. Every bot size must be present with a
// positive duration, and no unknown sizes are allowed.
func NewTable(budgets map[BotSize]time.Duration) (*Table, error) {
	t := &Table{budgets: make(map[BotSize]time.Duration, len(budgets))}

	for size, d := range budgets {
		if !size.Valid() {
			return nil, fmt.Errorf("unknown bot size %q", size)
		}
		if d <= 0 {
			return nil, fmt.Errorf("budget for %s must be positive, got %s", size, d)
		}
		t.budgets[size] = d
	}

	for _, size := range Sizes() {
		if _, ok := t.budgets[size]; !ok {
			return nil, fmt.Errorf("missing budget for %s", size)
		}
	}

	return t, nil
}

func mustNewTable(budgets map[BotSize]time.Duration) *Table {
	t, err := NewTable(budgets)
	if err != nil {
		panic(err)
	}
	return t
}

// Budget returns the expected duration for size.
// ok is false if size is not a known bot size.
func (t *Table) Budget(size BotSize) (d time.Duration, ok bool) {
	d, ok = t.budgets[size]
	return d, ok
}

// Entries returns the table rows in Sizes order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.budgets))
	for _, size := range Sizes() {
		entries = append(entries, Entry{Size: size, Budget: t.budgets[size]})
	}
	return entries
}
