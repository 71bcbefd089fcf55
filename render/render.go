// Package render turns a computed document into its two deliverable forms:
// a paginated PDF and an HTML preview fragment. Both are driven by the
// same totals and formatting so a preview always matches the download.
package render

import (
	"time"

	"github.com/lessycomm/invoicer/config"
	"github.com/lessycomm/invoicer/models"
)

// Renderer binds the business profile (from/bank blocks) to the two
// rendering paths.
type Renderer struct {
	cfg *config.Config
	now func() time.Time
}

func New(cfg *config.Config) *Renderer {
	return &Renderer{cfg: cfg, now: time.Now}
}

const longDateLayout = "January 2, 2006"

// longDate reformats a wire date into the long human form. Anything that
// doesn't parse is shown as-is rather than dropped.
func longDate(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format(longDateLayout)
}

func title(kind models.Kind) string {
	if kind == models.KindReceipt {
		return "RECEIPT"
	}
	return "INVOICE"
}

// paymentLine is the receipt's payment-received statement.
func (r *Renderer) paymentLine(doc *models.Document) string {
	line := "Payment received on " + r.now().Format(longDateLayout)
	if doc.PaymentMethod != "" {
		line += " via " + doc.PaymentMethod
	}
	return line
}
