package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/lessycomm/invoicer/config"
	"github.com/lessycomm/invoicer/models"
)

type htmlRow struct {
	Desc   string
	Qty    string
	Rate   string
	Amount string
}

type htmlView struct {
	Title         string
	InvoiceNumber string
	ReceiptNumber string
	IssueDate     string
	DueDate       string
	Company       config.CompanyConfig
	Bank          config.BankConfig
	ClientName    string
	ClientCompany string
	ClientAddress string
	ClientPhone   string
	ClientEmail   string
	Rows          []htmlRow
	Subtotal      string
	TaxLabel      string
	TaxAmount     string
	Discount      string
	Total         string
	Notes         string
	PaymentLine   string
}

// HTML writes the preview fragment for a document. The fragment carries
// the exact same formatted amounts as the PDF rendering.
func (r *Renderer) HTML(w io.Writer, doc *models.Document) error {
	symbol := models.Symbol(doc.Currency)
	totals := doc.Totals()

	view := htmlView{
		Title:         title(doc.Kind),
		InvoiceNumber: doc.InvoiceNumber,
		IssueDate:     longDate(doc.IssueDate),
		DueDate:       longDate(doc.DueDate),
		Company:       r.cfg.Company,
		Bank:          r.cfg.Bank,
		ClientName:    doc.DisplayClientName(),
		ClientCompany: doc.ClientCompany,
		ClientAddress: doc.ClientAddress,
		ClientPhone:   doc.ClientPhone,
		ClientEmail:   doc.ClientEmail,
		Subtotal:      fmt.Sprintf("%s%.2f", symbol, totals.Subtotal),
		Total:         fmt.Sprintf("%s%.2f", symbol, totals.Total),
		Notes:         doc.Notes,
	}
	if doc.TaxRate > 0 {
		view.TaxLabel = fmt.Sprintf("Tax (%s%%):", doc.TaxRate.String())
		view.TaxAmount = fmt.Sprintf("%s%.2f", symbol, totals.TaxAmount)
	}
	if doc.Discount > 0 {
		view.Discount = fmt.Sprintf("-%s%.2f", symbol, doc.Discount.Float())
	}
	if doc.Kind == models.KindReceipt {
		view.ReceiptNumber = doc.ReceiptNumber
		view.PaymentLine = r.paymentLine(doc)
	}
	for _, line := range doc.Services {
		desc := line.Desc
		if desc == "" {
			desc = "-"
		}
		view.Rows = append(view.Rows, htmlRow{
			Desc:   desc,
			Qty:    line.Qty.String(),
			Rate:   fmt.Sprintf("%s%.2f", symbol, line.Rate.Float()),
			Amount: fmt.Sprintf("%s%.2f", symbol, line.Amount()),
		})
	}

	return previewTemplate.Execute(w, view)
}

var previewTemplate = template.Must(template.New("preview").Parse(`<div class="document-preview">
  <div class="flex justify-between items-start mb-8">
    <h2 class="text-2xl font-bold">{{.Title}}</h2>
    <div class="text-right">
      <p class="text-sm text-gray-500">Invoice #</p>
      <p class="font-semibold">{{.InvoiceNumber}}</p>
      {{if .ReceiptNumber}}<p class="text-sm text-gray-500 mt-2">Receipt #</p>
      <p class="font-semibold">{{.ReceiptNumber}}</p>{{end}}
      <p class="text-sm text-gray-500 mt-2">Issue Date</p>
      <p class="font-semibold">{{.IssueDate}}</p>
      <p class="text-sm text-gray-500 mt-2">Due Date</p>
      <p class="font-semibold">{{.DueDate}}</p>
    </div>
  </div>

  <div class="grid grid-cols-2 gap-8 mb-8">
    <div>
      <h3 class="text-sm font-medium text-gray-500 mb-1">From</h3>
      <p class="font-bold">{{.Company.Name}}</p>
      {{range .Company.Address}}<p class="text-sm">{{.}}</p>
      {{end}}{{if .Company.Phone}}<p class="text-sm">Phone: {{.Company.Phone}}</p>{{end}}
      {{if .Company.Email}}<p class="text-sm">Email: {{.Company.Email}}</p>{{end}}
    </div>
    <div>
      <h3 class="text-sm font-medium text-gray-500 mb-1">Bill To</h3>
      <p class="font-bold">{{.ClientName}}</p>
      {{if .ClientCompany}}<p class="text-sm">{{.ClientCompany}}</p>{{end}}
      {{if .ClientAddress}}<p class="text-sm">{{.ClientAddress}}</p>{{end}}
      {{if .ClientPhone}}<p class="text-sm">Phone: {{.ClientPhone}}</p>{{end}}
      {{if .ClientEmail}}<p class="text-sm">Email: {{.ClientEmail}}</p>{{end}}
    </div>
  </div>

  <table class="w-full mb-6">
    <thead>
      <tr class="border-b border-t">
        <th class="text-left py-3">Description</th>
        <th class="text-right py-3">Qty</th>
        <th class="text-right py-3">Rate</th>
        <th class="text-right py-3">Amount</th>
      </tr>
    </thead>
    <tbody>
      {{range .Rows}}<tr class="border-b">
        <td class="py-2">{{.Desc}}</td>
        <td class="py-2 text-right">{{.Qty}}</td>
        <td class="py-2 text-right">{{.Rate}}</td>
        <td class="py-2 text-right">{{.Amount}}</td>
      </tr>
      {{else}}<tr><td colspan="4" class="py-4 text-center text-gray-400">No services added</td></tr>
      {{end}}
    </tbody>
  </table>

  <div class="totals">
    <div class="flex justify-between py-2"><span>Subtotal:</span><span>{{.Subtotal}}</span></div>
    {{if .TaxLabel}}<div class="flex justify-between py-2"><span>{{.TaxLabel}}</span><span>{{.TaxAmount}}</span></div>
    {{end}}{{if .Discount}}<div class="flex justify-between py-2"><span>Discount:</span><span>{{.Discount}}</span></div>
    {{end}}<div class="flex justify-between py-2 border-t border-b font-bold"><span>Total Due:</span><span>{{.Total}}</span></div>
  </div>

  <div class="mt-6 pt-4 border-t">
    <h3 class="text-sm font-medium text-gray-500 mb-2">Bank / Payment Details</h3>
    <p class="text-sm">A/C Name: {{.Bank.AccountName}}</p>
    <p class="text-sm">Currency: {{.Bank.Currency}}</p>
    <p class="text-sm">Account Number: {{.Bank.AccountNumber}}</p>
    <p class="text-sm">Bank Name: {{.Bank.BankName}}</p>
    <p class="text-sm">Branch: {{.Bank.Branch}}</p>
    <p class="text-sm">Bank Code: {{.Bank.BankCode}} &middot; Branch Code: {{.Bank.BranchCode}} &middot; Swift: {{.Bank.Swift}}</p>
    {{if .Bank.MpesaPaybill}}<p class="text-sm">Mpesa Paybill: {{.Bank.MpesaPaybill}} &middot; Account: {{.Bank.MpesaAccount}}</p>{{end}}
  </div>

  {{if .Notes}}<div class="mt-8 pt-4 border-t">
    <h3 class="text-sm font-medium text-gray-500 mb-2">Notes</h3>
    <p class="text-sm">{{.Notes}}</p>
  </div>{{end}}

  {{if .PaymentLine}}<div class="mt-4 p-3 bg-green-50 rounded-md">
    <p class="text-green-700 text-sm">{{.PaymentLine}}</p>
  </div>{{end}}
</div>
`))
