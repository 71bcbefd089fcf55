package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/lessycomm/invoicer/config"
	"github.com/lessycomm/invoicer/models"
)

func testRenderer() *Renderer {
	r := New(config.Default())
	r.now = func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) }
	return r
}

func testDoc() *models.Document {
	return &models.Document{
		Kind:          models.KindInvoice,
		InvoiceNumber: "INV-0007",
		IssueDate:     "2026-08-29",
		DueDate:       "2026-09-12",
		ClientName:    "Acme Ltd",
		PaymentMethod: "M-Pesa",
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

func renderHTML(t *testing.T, doc *models.Document) string {
	t.Helper()
	var buf bytes.Buffer
	if err := testRenderer().HTML(&buf, doc); err != nil {
		t.Fatalf("render html: %v", err)
	}
	return buf.String()
}

func TestHTMLInvoice(t *testing.T) {
	out := renderHTML(t, testDoc())

	for _, want := range []string{
		"INVOICE",
		"INV-0007",
		"August 29, 2026",
		"September 12, 2026",
		"Acme Ltd",
		"$120.00",       // subtotal
		"Tax (16%):",    // tax line with the entered rate
		"$19.20",        // tax amount
		"-$10.00",       // discount line
		"$129.20",       // total
		"Lessy Communication Agency",
		"Bank / Payment Details",
		"Bank of Africa Kenya Limited",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q", want)
		}
	}
	if strings.Contains(out, "Payment received") {
		t.Error("invoice preview must not carry the receipt payment statement")
	}
}

func TestHTMLOmitsZeroTaxAndDiscount(t *testing.T) {
	doc := testDoc()
	doc.TaxRate = 0
	doc.Discount = 0
	out := renderHTML(t, doc)

	if strings.Contains(out, "Tax (") {
		t.Error("tax line shown for zero tax rate")
	}
	if strings.Contains(out, "Discount:") {
		t.Error("discount line shown for zero discount")
	}
	if !strings.Contains(out, "$120.00") {
		t.Error("total should equal the subtotal")
	}
}

func TestHTMLReceipt(t *testing.T) {
	doc := testDoc()
	doc.Kind = models.KindReceipt
	doc.ReceiptNumber = "RCT-20260829-0001"
	out := renderHTML(t, doc)

	for _, want := range []string{
		"RECEIPT",
		"RCT-20260829-0001",
		"Payment received on August 29, 2026 via M-Pesa",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("receipt preview missing %q", want)
		}
	}
}

func TestHTMLNotesConditional(t *testing.T) {
	doc := testDoc()
	out := renderHTML(t, doc)
	if strings.Contains(out, ">Notes<") {
		t.Error("notes block shown without notes")
	}

	doc.Notes = "Payment due within 14 days."
	out = renderHTML(t, doc)
	if !strings.Contains(out, "Payment due within 14 days.") {
		t.Error("notes text missing")
	}
}

func TestHTMLEmptyServices(t *testing.T) {
	doc := testDoc()
	doc.Services = nil
	out := renderHTML(t, doc)
	if !strings.Contains(out, "No services added") {
		t.Error("empty-table placeholder missing")
	}
}

func TestPDFInvoice(t *testing.T) {
	var buf bytes.Buffer
	if err := testRenderer().PDF(&buf, testDoc()); err != nil {
		t.Fatalf("render pdf: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("output is not a PDF stream")
	}
}

func TestPDFReceiptWithEuroSymbol(t *testing.T) {
	doc := testDoc()
	doc.Kind = models.KindReceipt
	doc.ReceiptNumber = "RCT-20260829-0002"
	doc.Currency = "EURO"

	var buf bytes.Buffer
	if err := testRenderer().PDF(&buf, doc); err != nil {
		t.Fatalf("render pdf: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty pdf output")
	}
}

func TestPDFPaginatesLongDocuments(t *testing.T) {
	doc := testDoc()
	doc.Services = nil
	for i := 0; i < 120; i++ {
		doc.Services = append(doc.Services, models.ServiceLine{Desc: "Line item", Qty: 1, Rate: 10})
	}

	var short, long bytes.Buffer
	if err := testRenderer().PDF(&short, testDoc()); err != nil {
		t.Fatal(err)
	}
	if err := testRenderer().PDF(&long, doc); err != nil {
		t.Fatal(err)
	}

	// 120 rows cannot fit one A4 page; the long render must carry more pages
	if bytes.Count(long.Bytes(), []byte("/Page")) <= bytes.Count(short.Bytes(), []byte("/Page")) {
		t.Error("long document did not paginate")
	}
}

func TestLongDate(t *testing.T) {
	if got := longDate("2026-08-29"); got != "August 29, 2026" {
		t.Errorf("longDate = %q", got)
	}
	if got := longDate(""); got != "" {
		t.Errorf("empty date = %q", got)
	}
	// unparseable input passes through untouched
	if got := longDate("soon"); got != "soon" {
		t.Errorf("unparseable date = %q", got)
	}
}
