package render

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/lessycomm/invoicer/models"
)

const (
	pageMargin = 50.0
	rowHeight  = 14.0

	// table column layout, absolute x offsets on an A4 page in points
	colDescX   = 50.0
	colDescW   = 240.0
	colQtyX    = 300.0
	colQtyW    = 50.0
	colRateX   = 360.0
	colRateW   = 80.0
	colAmountX = 450.0
	colAmountW = 90.0
)

// PDF writes the paginated document to w. Page breaks happen at a fixed
// height cursor via the auto page break; a row is never split across pages
// because each row is a single cell line.
func (r *Renderer) PDF(w io.Writer, doc *models.Document) error {
	symbol := models.Symbol(doc.Currency)
	totals := doc.Totals()

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(26, 54, 93)
	pdf.CellFormat(0, 24, title(doc.Kind), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, rowHeight, tr("Invoice #: "+doc.InvoiceNumber), "", 1, "L", false, 0, "")
	if doc.Kind == models.KindReceipt && doc.ReceiptNumber != "" {
		pdf.CellFormat(0, rowHeight, tr("Receipt #: "+doc.ReceiptNumber), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, rowHeight, tr("Issue Date: "+longDate(doc.IssueDate)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, rowHeight, tr("Due Date: "+longDate(doc.DueDate)), "", 1, "L", false, 0, "")
	pdf.Ln(rowHeight)

	// From block
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, rowHeight, "From:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, rowHeight, tr(r.cfg.Company.Name), "", 1, "L", false, 0, "")
	for _, line := range r.cfg.Company.Address {
		pdf.CellFormat(0, rowHeight, tr(line), "", 1, "L", false, 0, "")
	}
	if r.cfg.Company.Phone != "" {
		pdf.CellFormat(0, rowHeight, tr("Phone: "+r.cfg.Company.Phone), "", 1, "L", false, 0, "")
	}
	if r.cfg.Company.Email != "" {
		pdf.CellFormat(0, rowHeight, tr("Email: "+r.cfg.Company.Email), "", 1, "L", false, 0, "")
	}
	pdf.Ln(rowHeight / 2)

	// Bill-to block
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, rowHeight, "Bill To:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, rowHeight, tr(doc.DisplayClientName()), "", 1, "L", false, 0, "")
	if doc.ClientCompany != "" {
		pdf.CellFormat(0, rowHeight, tr(doc.ClientCompany), "", 1, "L", false, 0, "")
	}
	if doc.ClientAddress != "" {
		pdf.CellFormat(0, rowHeight, tr(doc.ClientAddress), "", 1, "L", false, 0, "")
	}
	if doc.ClientPhone != "" {
		pdf.CellFormat(0, rowHeight, tr("Phone: "+doc.ClientPhone), "", 1, "L", false, 0, "")
	}
	if doc.ClientEmail != "" {
		pdf.CellFormat(0, rowHeight, tr("Email: "+doc.ClientEmail), "", 1, "L", false, 0, "")
	}
	pdf.Ln(rowHeight)

	// Line-item table
	pdf.SetFont("Helvetica", "B", 10)
	r.tableRow(pdf, tr, "Description", "Qty", "Rate", "Amount")
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range doc.Services {
		desc := line.Desc
		if desc == "" {
			desc = "-"
		}
		r.tableRow(pdf, tr,
			desc,
			line.Qty.String(),
			symbol+fmt.Sprintf("%.2f", line.Rate.Float()),
			symbol+fmt.Sprintf("%.2f", line.Amount()),
		)
	}
	pdf.Ln(rowHeight)

	// Totals
	pdf.CellFormat(0, rowHeight, tr(fmt.Sprintf("Subtotal: %s%.2f", symbol, totals.Subtotal)), "", 1, "R", false, 0, "")
	if doc.TaxRate > 0 {
		pdf.CellFormat(0, rowHeight, tr(fmt.Sprintf("Tax (%s%%): %s%.2f", doc.TaxRate.String(), symbol, totals.TaxAmount)), "", 1, "R", false, 0, "")
	}
	if doc.Discount > 0 {
		pdf.CellFormat(0, rowHeight, tr(fmt.Sprintf("Discount: -%s%.2f", symbol, doc.Discount.Float())), "", 1, "R", false, 0, "")
	}
	pdf.Ln(rowHeight / 2)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, rowHeight, tr(fmt.Sprintf("Total Due: %s%.2f", symbol, totals.Total)), "", 1, "R", false, 0, "")

	// Payment details block
	pdf.Ln(rowHeight)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, rowHeight, "Bank / Payment Details", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	bank := r.cfg.Bank
	pdf.CellFormat(0, rowHeight, tr("A/C Name: "+bank.AccountName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, rowHeight, tr("Currency: "+bank.Currency), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, rowHeight, tr("Account Number: "+bank.AccountNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, rowHeight, tr("Bank Name: "+bank.BankName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, rowHeight, tr("Branch: "+bank.Branch), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, rowHeight, tr(fmt.Sprintf("Bank Code: %s  Branch Code: %s  Swift: %s", bank.BankCode, bank.BranchCode, bank.Swift)), "", 1, "L", false, 0, "")
	if bank.MpesaPaybill != "" {
		pdf.CellFormat(0, rowHeight, tr(fmt.Sprintf("Mpesa Paybill: %s  Account: %s", bank.MpesaPaybill, bank.MpesaAccount)), "", 1, "L", false, 0, "")
	}

	// Notes
	if doc.Notes != "" {
		pdf.Ln(rowHeight)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, rowHeight, "Notes:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, rowHeight, tr(doc.Notes), "", "L", false)
	}

	// Receipt payment statement
	if doc.Kind == models.KindReceipt {
		pdf.Ln(rowHeight)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(21, 128, 61)
		pdf.CellFormat(0, rowHeight, tr(r.paymentLine(doc)), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	return nil
}

func (r *Renderer) tableRow(pdf *fpdf.Fpdf, tr func(string) string, desc, qty, rate, amount string) {
	pdf.SetX(colDescX)
	pdf.CellFormat(colDescW, rowHeight, tr(desc), "", 0, "L", false, 0, "")
	pdf.SetX(colQtyX)
	pdf.CellFormat(colQtyW, rowHeight, tr(qty), "", 0, "R", false, 0, "")
	pdf.SetX(colRateX)
	pdf.CellFormat(colRateW, rowHeight, tr(rate), "", 0, "R", false, 0, "")
	pdf.SetX(colAmountX)
	pdf.CellFormat(colAmountW, rowHeight, tr(amount), "", 1, "R", false, 0, "")
}
