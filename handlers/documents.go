package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/lessycomm/invoicer/models"
)

// GenerateDocument renders a document payload to PDF
// @Summary      Generate PDF
// @Description  Render an invoice or receipt payload to a downloadable PDF. The type field selects the rendering; it defaults to invoice.
// @Tags         documents
// @Accept       json
// @Produce      application/pdf
// @Param        document  body      models.Document  true  "Document payload"
// @Success      200       {file}    binary
// @Failure      400       {object}  Response{error=string}
// @Failure      500       {object}  Response{error=string}
// @Router       /invoice [post]
func GenerateDocument(w http.ResponseWriter, r *http.Request) {
	var doc models.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	doc.Normalize()
	servePDF(w, &doc)
}

// Preview renders a document payload to an HTML fragment
// @Summary      Preview document
// @Description  Render the HTML preview of an invoice or receipt payload. Totals match the PDF rendering exactly.
// @Tags         documents
// @Accept       json
// @Produce      html
// @Param        document  body      models.Document  true  "Document payload"
// @Success      200       {string}  string
// @Failure      400       {object}  Response{error=string}
// @Failure      500       {object}  Response{error=string}
// @Router       /preview [post]
func Preview(w http.ResponseWriter, r *http.Request) {
	var doc models.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	doc.Normalize()

	var buf bytes.Buffer
	if err := Renderer.HTML(&buf, &doc); err != nil {
		slog.Error("preview rendering failed", "invoice", doc.InvoiceNumber, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to render preview")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// servePDF renders the document and writes it as an attachment. The
// filename uses the receipt number for receipts when one is assigned.
func servePDF(w http.ResponseWriter, doc *models.Document) {
	var buf bytes.Buffer
	if err := Renderer.PDF(&buf, doc); err != nil {
		slog.Error("pdf rendering failed", "invoice", doc.InvoiceNumber, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to generate document")
		return
	}

	base := "invoice"
	name := doc.InvoiceNumber
	if doc.Kind == models.KindReceipt {
		base = "receipt"
		if doc.ReceiptNumber != "" {
			name = doc.ReceiptNumber
		}
	}
	if name == "" {
		name = "invoice"
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s_%s.pdf", base, name))
	w.Write(buf.Bytes())
}
