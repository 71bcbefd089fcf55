package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lessycomm/invoicer/models"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s, path
}

func invoiceDoc(number string) *models.Document {
	return &models.Document{
		Kind:          models.KindInvoice,
		InvoiceNumber: number,
		ClientName:    "Acme Ltd",
		Currency:      "USD",
		Status:        models.StatusPending,
		TaxRate:       16,
		Discount:      10,
		Services: []models.ServiceLine{
			{Desc: "Design", Qty: 2, Rate: 50},
			{Desc: "Hosting", Qty: 1, Rate: 20},
		},
	}
}

func TestUpsertInvoiceCreatesThenMerges(t *testing.T) {
	s, _ := newTestStore(t)

	entry, created, err := s.UpsertInvoice(invoiceDoc("INV-0001"))
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if !created {
		t.Fatal("first save should create a new entry")
	}
	if entry.Amount != "$129.20" {
		t.Errorf("entry amount = %q, want $129.20", entry.Amount)
	}
	if entry.Client != "Acme Ltd" {
		t.Errorf("entry client = %q", entry.Client)
	}

	// second entry goes to the front
	if _, _, err := s.UpsertInvoice(invoiceDoc("INV-0002")); err != nil {
		t.Fatal(err)
	}
	list := s.List()
	if len(list) != 2 || list[0].Number != "INV-0002" {
		t.Fatalf("expected INV-0002 at index 0, got %+v", list)
	}

	// re-saving INV-0001 merges in place, keeping its position
	doc := invoiceDoc("INV-0001")
	doc.ClientName = "Acme Holdings"
	_, created, err = s.UpsertInvoice(doc)
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Fatal("re-save must not create a second entry")
	}
	list = s.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
	if list[1].Number != "INV-0001" || list[1].Client != "Acme Holdings" {
		t.Errorf("merged entry wrong: %+v", list[1])
	}
}

func TestUpsertReceiptFlipsInvoiceAndAddsEntry(t *testing.T) {
	s, _ := newTestStore(t)

	if _, _, err := s.UpsertInvoice(invoiceDoc("INV-0007")); err != nil {
		t.Fatal(err)
	}

	paid := invoiceDoc("INV-0007")
	paid.ReceiptNumber = "RCT-20260829-0001"
	if _, err := s.UpsertReceipt(paid); err != nil {
		t.Fatal(err)
	}

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
	if list[0].Type != models.KindReceipt || list[0].Number != "INV-0007" {
		t.Errorf("index 0 should be the receipt entry, got %+v", list[0])
	}
	if list[0].Payload.ReceiptNumber != "RCT-20260829-0001" {
		t.Errorf("receipt payload missing receipt number")
	}

	inv, err := s.FindByNumber("INV-0007", models.KindInvoice)
	if err != nil {
		t.Fatalf("invoice entry gone: %v", err)
	}
	if inv.Payload.Status != models.StatusPaid {
		t.Errorf("invoice status = %q, want paid", inv.Payload.Status)
	}
	if inv.Payload.InvoiceNumber != "INV-0007" {
		t.Errorf("invoice number changed: %q", inv.Payload.InvoiceNumber)
	}

	// marking paid again adds another receipt record
	if _, err := s.UpsertReceipt(paid); err != nil {
		t.Fatal(err)
	}
	if got := len(s.ListReceipts()); got != 2 {
		t.Fatalf("expected 2 receipt entries, got %d", got)
	}
	if got := len(s.ListInvoices()); got != 1 {
		t.Fatalf("expected 1 invoice entry, got %d", got)
	}
}

func TestUpsertReceiptWithoutInvoice(t *testing.T) {
	s, _ := newTestStore(t)

	paid := invoiceDoc("INV-0042")
	paid.ReceiptNumber = "RCT-20260829-0009"
	if _, err := s.UpsertReceipt(paid); err != nil {
		t.Fatal(err)
	}

	// no sibling invoice entry is invented
	if got := len(s.ListInvoices()); got != 0 {
		t.Fatalf("expected no invoice entries, got %d", got)
	}
	if got := len(s.ListReceipts()); got != 1 {
		t.Fatalf("expected 1 receipt entry, got %d", got)
	}
}

func TestFindByNumber(t *testing.T) {
	s, _ := newTestStore(t)
	s.UpsertInvoice(invoiceDoc("INV-0001"))
	s.UpsertReceipt(invoiceDoc("INV-0001"))

	if e, err := s.FindByNumber("INV-0001"); err != nil || e.Type != models.KindReceipt {
		t.Errorf("kindless lookup should return the most recent entry, got %+v, %v", e, err)
	}
	if e, err := s.FindByNumber("INV-0001", models.KindInvoice); err != nil || e.Type != models.KindInvoice {
		t.Errorf("invoice lookup failed: %+v, %v", e, err)
	}
	if _, err := s.FindByNumber("INV-9999"); err != ErrNotFound {
		t.Errorf("missing number should be ErrNotFound, got %v", err)
	}
}

func TestLatest(t *testing.T) {
	s, _ := newTestStore(t)
	if _, err := s.Latest(); err != ErrNotFound {
		t.Fatalf("empty store Latest = %v, want ErrNotFound", err)
	}

	s.UpsertInvoice(invoiceDoc("INV-0001"))
	s.UpsertReceipt(invoiceDoc("INV-0001"))

	latest, err := s.Latest()
	if err != nil {
		t.Fatal(err)
	}
	// most recent regardless of kind
	if latest.Type != models.KindReceipt {
		t.Errorf("latest = %+v, want the receipt entry", latest)
	}
}

func TestReloadPreservesEntries(t *testing.T) {
	s, path := newTestStore(t)
	s.UpsertInvoice(invoiceDoc("INV-0001"))
	s.UpsertInvoice(invoiceDoc("INV-0002"))
	s.UpsertReceipt(invoiceDoc("INV-0001"))

	reloaded, err := Open(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}

	before, after := s.List(), reloaded.List()
	if len(after) != len(before) {
		t.Fatalf("entry count changed on reload: %d != %d", len(after), len(before))
	}
	for i := range before {
		if before[i].Number != after[i].Number || before[i].Type != after[i].Type {
			t.Errorf("entry %d changed on reload: %+v != %+v", i, before[i], after[i])
		}
	}
}

func TestFailedPersistLeavesMemoryUnchanged(t *testing.T) {
	s, _ := newTestStore(t)
	if _, _, err := s.UpsertInvoice(invoiceDoc("INV-0001")); err != nil {
		t.Fatal(err)
	}

	// a path under a regular file cannot be created, so every write fails
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	s.path = filepath.Join(blocker, "history.json")

	if _, _, err := s.UpsertInvoice(invoiceDoc("INV-0002")); err == nil {
		t.Fatal("expected a write error")
	}
	if list := s.List(); len(list) != 1 || list[0].Number != "INV-0001" {
		t.Fatalf("failed create left entries behind: %+v", list)
	}

	doc := invoiceDoc("INV-0001")
	doc.ClientName = "Acme Holdings"
	if _, _, err := s.UpsertInvoice(doc); err == nil {
		t.Fatal("expected a write error")
	}
	if e, _ := s.FindByNumber("INV-0001", models.KindInvoice); e.Client != "Acme Ltd" {
		t.Errorf("failed merge changed the entry: %q", e.Client)
	}

	paid := invoiceDoc("INV-0001")
	paid.ReceiptNumber = "RCT-20260829-0001"
	if _, err := s.UpsertReceipt(paid); err == nil {
		t.Fatal("expected a write error")
	}
	if got := len(s.ListReceipts()); got != 0 {
		t.Errorf("failed receipt save left %d receipt entries", got)
	}
	if e, _ := s.FindByNumber("INV-0001", models.KindInvoice); e.Payload.Status != models.StatusPending {
		t.Errorf("failed receipt save flipped the invoice to %q", e.Payload.Status)
	}
}

func TestResaveWithoutEditsKeepsPayload(t *testing.T) {
	s, _ := newTestStore(t)
	s.now = func() time.Time { return time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC) }

	first, _, err := s.UpsertInvoice(invoiceDoc("INV-0001"))
	if err != nil {
		t.Fatal(err)
	}
	firstPayload, _ := json.Marshal(first.Payload)
	firstDate := first.Date

	s.now = func() time.Time { return time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC) }
	second, _, err := s.UpsertInvoice(invoiceDoc("INV-0001"))
	if err != nil {
		t.Fatal(err)
	}
	secondPayload, _ := json.Marshal(second.Payload)

	// payload identical field for field; only the save timestamp moves
	if string(firstPayload) != string(secondPayload) {
		t.Errorf("payload changed on no-edit re-save:\n%s\n%s", firstPayload, secondPayload)
	}
	if !second.Date.After(firstDate) {
		t.Errorf("save timestamp did not advance: %v -> %v", firstDate, second.Date)
	}
}
