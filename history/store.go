// Package history keeps the local record of every saved invoice and
// receipt. The store is an ordered list, most recently touched entry
// first, persisted as a single JSON file. Entries are never deleted; a
// paid invoice accumulates one receipt entry per mark-paid action.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lessycomm/invoicer/models"
)

// ErrNotFound is returned when no entry matches a lookup.
var ErrNotFound = errors.New("history entry not found")

// Entry is one history row. Amount is the formatted display total captured
// at save time; Payload is the full document for later editing and
// re-rendering.
type Entry struct {
	Number  string           `json:"number"`
	Type    models.Kind      `json:"type"`
	Date    time.Time        `json:"date"`
	Client  string           `json:"client"`
	Amount  string           `json:"amount"`
	Payload *models.Document `json:"payload"`
}

// Store is the document history. All mutations rewrite the backing file
// before returning.
type Store struct {
	mu      sync.Mutex
	path    string
	entries []*Entry
	now     func() time.Time
}

// Open loads the history file at path. A missing file is an empty store; a
// corrupt one is an error so we never silently clobber saved documents.
func Open(path string) (*Store, error) {
	s := &Store{path: path, now: time.Now}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading history: %w", err)
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		return nil, fmt.Errorf("parsing history %s: %w", path, err)
	}
	return s, nil
}

// UpsertInvoice saves a document as an invoice entry. An existing entry
// with the same number keeps its position and is overwritten field by
// field; otherwise a new entry goes to the front. The second return value
// reports whether a new entry was created, which is what decides if the
// invoice counter advances.
func (s *Store) UpsertInvoice(doc *models.Document) (*Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc.Kind = models.KindInvoice
	entry := s.entryFor(doc, models.KindInvoice)

	if i := s.indexOfLocked(doc.InvoiceNumber, models.KindInvoice); i >= 0 {
		// keep the prior value so a failed write leaves memory matching
		// the file
		prev := *s.entries[i]
		*s.entries[i] = *entry
		if err := s.persistLocked(); err != nil {
			*s.entries[i] = prev
			return nil, false, err
		}
		return s.entries[i], false, nil
	}

	prev := s.entries
	s.entries = append([]*Entry{entry}, s.entries...)
	if err := s.persistLocked(); err != nil {
		s.entries = prev
		return nil, false, err
	}
	return entry, true, nil
}

// UpsertReceipt records a payment. It always inserts a fresh receipt entry
// at the front, even when a receipt with this number already exists
// (marking paid again produces another receipt record), and flips the
// sibling invoice entry's stored status to paid without moving it.
func (s *Store) UpsertReceipt(doc *models.Document) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc.Kind = models.KindReceipt
	doc.Status = models.StatusPaid
	entry := s.entryFor(doc, models.KindReceipt)

	sibling := s.indexOfLocked(doc.InvoiceNumber, models.KindInvoice)
	var prevPayload *models.Document
	if sibling >= 0 {
		prevPayload = s.entries[sibling].Payload
		merged := doc.Clone()
		merged.Kind = models.KindInvoice
		merged.Status = models.StatusPaid
		s.entries[sibling].Payload = merged
	}

	prev := s.entries
	s.entries = append([]*Entry{entry}, s.entries...)
	if err := s.persistLocked(); err != nil {
		s.entries = prev
		if sibling >= 0 {
			s.entries[sibling].Payload = prevPayload
		}
		return nil, err
	}
	return entry, nil
}

// FindByNumber returns the first entry with the given number. With no kind
// arguments any kind matches; otherwise the first entry whose kind is one
// of the given kinds wins. Store order means "first" is the most recent.
func (s *Store) FindByNumber(number string, kinds ...models.Kind) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.Number != number {
			continue
		}
		if len(kinds) == 0 {
			return e, nil
		}
		for _, k := range kinds {
			if e.Type == k {
				return e, nil
			}
		}
	}
	return nil, ErrNotFound
}

// List returns all entries, most recent first.
func (s *Store) List() []*Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Entry(nil), s.entries...)
}

// ListInvoices returns the invoice-kind entries in store order.
func (s *Store) ListInvoices() []*Entry {
	return s.listKind(models.KindInvoice)
}

// ListReceipts returns the receipt-kind entries in store order. This feeds
// the receipts dashboard.
func (s *Store) ListReceipts() []*Entry {
	return s.listKind(models.KindReceipt)
}

// Latest returns the most recently upserted entry of any kind, which is
// what a generic "download most recent" means.
func (s *Store) Latest() (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return nil, ErrNotFound
	}
	return s.entries[0], nil
}

func (s *Store) listKind(kind models.Kind) []*Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*Entry{}
	for _, e := range s.entries {
		if e.Type == kind {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) entryFor(doc *models.Document, kind models.Kind) *Entry {
	totals := doc.Totals()
	return &Entry{
		Number:  doc.InvoiceNumber,
		Type:    kind,
		Date:    s.now(),
		Client:  doc.HistoryClientName(),
		Amount:  models.FormatMoney(totals.Total, doc.Currency),
		Payload: doc.Clone(),
	}
}

func (s *Store) indexOfLocked(number string, kind models.Kind) int {
	for i, e := range s.entries {
		if e.Number == number && e.Type == kind {
			return i
		}
	}
	return -1
}

func (s *Store) persistLocked() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}
