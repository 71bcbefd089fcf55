// Package numbering assigns the two independent document number sequences:
// sequential invoice numbers and date-prefixed receipt numbers. Both
// counters persist as small JSON files and serialize their read-modify-write
// cycles, so concurrent requests cannot lose an increment.
package numbering

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// InvoiceCounter hands out sequential invoice numbers. PeekNext never
// mutates; Commit is called exactly once, on the first successful save of
// an invoice that had no identity yet.
type InvoiceCounter struct {
	mu   sync.Mutex
	path string
}

type invoiceCounterState struct {
	Next int `json:"next"`
}

func NewInvoiceCounter(path string) *InvoiceCounter {
	return &InvoiceCounter{path: path}
}

// PeekNext returns the next available number without advancing the
// counter. A missing or unreadable counter file means the sequence starts
// at 1.
func (c *InvoiceCounter) PeekNext() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadLocked()
}

// Commit records that `used` was assigned, so the next draft gets used+1.
// Driving it from the assigned number rather than a blind increment keeps
// the counter consistent if an operator typed a higher number by hand.
func (c *InvoiceCounter) Commit(used int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := invoiceCounterState{Next: used + 1}
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding invoice counter: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("creating counter directory: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("writing invoice counter: %w", err)
	}
	return nil
}

func (c *InvoiceCounter) loadLocked() int {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return 1
	}
	var state invoiceCounterState
	if err := json.Unmarshal(data, &state); err != nil || state.Next < 1 {
		return 1
	}
	return state.Next
}

// FormatInvoiceNumber renders the display form, INV- plus a zero-padded
// 4-digit number. Numbers past 9999 simply render wider.
func FormatInvoiceNumber(n int) string {
	return fmt.Sprintf("INV-%04d", n)
}

// ParseInvoiceNumber extracts the sequence value from a display number.
func ParseInvoiceNumber(s string) (int, bool) {
	_, digits, found := strings.Cut(s, "-")
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
