package numbering

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ReceiptCounter issues RCT-YYYYMMDD-#### numbers from a single global
// sequence persisted server-side. The sequence is not reset daily; only
// the date prefix changes. Number assignment must never block a receipt,
// so any counter I/O failure degrades to a random 4-digit suffix for that
// one request and leaves the persisted value untouched.
type ReceiptCounter struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

type receiptCounterState struct {
	Last int `json:"last"`
}

func NewReceiptCounter(path string) *ReceiptCounter {
	return &ReceiptCounter{path: path, now: time.Now}
}

// Next increments the durable counter and returns the formatted number.
// Each call is a full read-modify-write under the counter lock.
func (c *ReceiptCounter) Next() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	datePart := c.now().Format("20060102")

	state := receiptCounterState{}
	data, err := os.ReadFile(c.path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &state); err != nil || state.Last < 0 {
			slog.Warn("receipt counter unreadable, using random suffix", "path", c.path, "error", err)
			return randomReceiptNumber(datePart)
		}
	case os.IsNotExist(err):
		// empty store, sequence starts at 1
	default:
		slog.Warn("receipt counter read failed, using random suffix", "path", c.path, "error", err)
		return randomReceiptNumber(datePart)
	}

	state.Last++
	out, err := json.Marshal(state)
	if err == nil {
		err = os.MkdirAll(filepath.Dir(c.path), 0755)
	}
	if err == nil {
		err = os.WriteFile(c.path, out, 0644)
	}
	if err != nil {
		slog.Warn("receipt counter write failed, using random suffix", "path", c.path, "error", err)
		return randomReceiptNumber(datePart)
	}

	return fmt.Sprintf("RCT-%s-%04d", datePart, state.Last)
}

func randomReceiptNumber(datePart string) string {
	return fmt.Sprintf("RCT-%s-%04d", datePart, rand.Intn(9000)+1000)
}
