package models

import "time"

// Kind discriminates the two document renderings.
type Kind string

const (
	KindInvoice Kind = "invoice"
	KindReceipt Kind = "receipt"
)

// Status is the payment state of an invoice.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// DateLayout is the wire format for issue and due dates.
const DateLayout = "2006-01-02"

// ServiceLine is one billable row. Quantity and rate are entered in the
// document's selected currency; there is no per-line currency.
type ServiceLine struct {
	Desc string `json:"desc"`
	Qty  Number `json:"qty"`
	Rate Number `json:"rate"`
}

// Amount is the derived line amount.
func (l ServiceLine) Amount() float64 {
	return l.Qty.Float() * l.Rate.Float()
}

// Document is an invoice or payment receipt. Field names match the wire
// payload of the form client.
type Document struct {
	Kind          Kind          `json:"type,omitempty"`
	InvoiceNumber string        `json:"invoiceNumber"`
	ReceiptNumber string        `json:"receiptNumber,omitempty"`
	IssueDate     string        `json:"issueDate"`
	DueDate       string        `json:"dueDate"`
	ClientName    string        `json:"clientName"`
	ClientCompany string        `json:"clientCompany"`
	ClientEmail   string        `json:"clientEmail"`
	ClientPhone   string        `json:"clientPhone"`
	ClientAddress string        `json:"clientAddress"`
	PaymentMethod string        `json:"paymentMethod"`
	Notes         string        `json:"invoiceNotes"`
	Status        Status        `json:"invoiceStatus"`
	TaxRate       Number        `json:"taxRate"`
	Discount      Number        `json:"discount"`
	Currency      string        `json:"currency"`
	Services      []ServiceLine `json:"services"`
}

// NewDraft returns an empty draft with dates prefilled: issue today, due
// dueInDays later. The draft has no committed identity yet.
func NewDraft(now time.Time, dueInDays int, currency, payMethod string) *Document {
	return &Document{
		Kind:          KindInvoice,
		IssueDate:     now.Format(DateLayout),
		DueDate:       now.AddDate(0, 0, dueInDays).Format(DateLayout),
		Status:        StatusPending,
		Currency:      currency,
		PaymentMethod: payMethod,
		Services:      []ServiceLine{},
	}
}

// Normalize fills the defaults the wire contract allows clients to omit.
func (d *Document) Normalize() {
	if d.Kind == "" {
		d.Kind = KindInvoice
	}
	if d.Status == "" {
		d.Status = StatusPending
	}
	if d.Currency == "" {
		d.Currency = "USD"
	}
}

// Validate checks the fields a save must reject; rendering is deliberately
// more permissive.
func (d *Document) Validate() string {
	switch d.Kind {
	case "", KindInvoice, KindReceipt:
	default:
		return "type must be one of: invoice, receipt"
	}
	switch d.Status {
	case "", StatusPending, StatusPaid:
	default:
		return "invoiceStatus must be one of: pending, paid"
	}
	if d.TaxRate < 0 {
		return "taxRate must be non-negative"
	}
	if d.Discount < 0 {
		return "discount must be non-negative"
	}
	return ""
}

// Totals recomputes the derived amounts from the current lines.
func (d *Document) Totals() Totals {
	return ComputeTotals(d.Services, d.TaxRate.Float(), d.Discount.Float())
}

// DisplayClientName is the bill-to fallback used on renderings.
func (d *Document) DisplayClientName() string {
	if d.ClientName == "" {
		return "Client Name"
	}
	return d.ClientName
}

// HistoryClientName is the fallback used on history rows.
func (d *Document) HistoryClientName() string {
	if d.ClientName == "" {
		return "Unnamed Client"
	}
	return d.ClientName
}

// Clone returns a deep copy, for duplicating a saved document into a new
// draft without sharing line slices.
func (d *Document) Clone() *Document {
	c := *d
	c.Services = make([]ServiceLine, len(d.Services))
	copy(c.Services, d.Services)
	return &c
}
