package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lessycomm/invoicer/history"
	"github.com/lessycomm/invoicer/models"
	"github.com/lessycomm/invoicer/numbering"
)

// NextInvoiceNumber peeks the next invoice number
// @Summary      Next invoice number
// @Description  Return the next available invoice number without advancing the counter. The counter only advances on the first save of a new invoice.
// @Tags         history
// @Produce      json
// @Success      200  {object}  Response{data=map[string]string}
// @Router       /history/next-number [get]
func NextInvoiceNumber(w http.ResponseWriter, r *http.Request) {
	n := numbering.FormatInvoiceNumber(InvoiceNumbers.PeekNext())
	writeJSON(w, http.StatusOK, map[string]string{"invoiceNumber": n})
}

// SaveInvoice saves a document as an invoice
// @Summary      Save invoice
// @Description  Upsert an invoice into history. A blank invoice number gets the next available one; the counter advances only when this save creates a new entry.
// @Tags         history
// @Accept       json
// @Produce      json
// @Param        document  body      models.Document  true  "Invoice payload"
// @Success      200       {object}  Response{data=history.Entry}
// @Success      201       {object}  Response{data=history.Entry}
// @Failure      400       {object}  Response{error=string}
// @Router       /history [post]
func SaveInvoice(w http.ResponseWriter, r *http.Request) {
	var doc models.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	doc.Normalize()
	doc.Kind = models.KindInvoice
	if msg := doc.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if doc.InvoiceNumber == "" {
		doc.InvoiceNumber = numbering.FormatInvoiceNumber(InvoiceNumbers.PeekNext())
	}

	entry, created, err := Store.UpsertInvoice(&doc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if created {
		if n, ok := numbering.ParseInvoiceNumber(doc.InvoiceNumber); ok {
			if err := InvoiceNumbers.Commit(n); err != nil {
				// The save itself is durable; a counter write failure only
				// risks re-offering the same number next time.
				slog.Warn("invoice counter commit failed", "number", doc.InvoiceNumber, "error", err)
			}
		}
		slog.Info("invoice saved", "number", doc.InvoiceNumber, "client", entry.Client)
		writeJSON(w, http.StatusCreated, entry)
		return
	}
	slog.Info("invoice updated", "number", doc.InvoiceNumber)
	writeJSON(w, http.StatusOK, entry)
}

// ListHistory lists all history entries
// @Summary      List history
// @Description  Get every saved invoice and receipt record, most recently touched first.
// @Tags         history
// @Produce      json
// @Success      200  {object}  Response{data=[]history.Entry}
// @Router       /history [get]
func ListHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Store.List())
}

// GetHistoryEntry fetches one entry by number
// @Summary      Get history entry
// @Description  Get the most recent history entry carrying the given invoice number.
// @Tags         history
// @Produce      json
// @Param        number  path      string  true  "Invoice number"
// @Success      200     {object}  Response{data=history.Entry}
// @Failure      404     {object}  Response{error=string}
// @Router       /history/{number} [get]
func GetHistoryEntry(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	entry, err := Store.FindByNumber(number)
	if err != nil {
		writeError(w, http.StatusNotFound, "history entry not found")
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// MarkPaid marks an invoice paid and records a receipt
// @Summary      Mark invoice paid
// @Description  Record a payment: the saved invoice flips to paid and a distinct receipt entry is created. A body overrides the saved payload; marking paid again creates another receipt record reusing the assigned receipt number.
// @Tags         history
// @Accept       json
// @Produce      json
// @Param        number    path      string           true   "Invoice number"
// @Param        document  body      models.Document  false  "Current form payload"
// @Success      200       {object}  Response{data=history.Entry}
// @Failure      404       {object}  Response{error=string}
// @Router       /history/{number}/paid [post]
func MarkPaid(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	doc, ok := documentFromRequest(w, r, number)
	if !ok {
		return
	}
	doc.Normalize()
	doc.Kind = models.KindReceipt
	doc.Status = models.StatusPaid
	if doc.ReceiptNumber == "" {
		doc.ReceiptNumber = ReceiptNumbers.Next()
	}

	entry, err := Store.UpsertReceipt(doc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	slog.Info("invoice marked paid", "number", number, "receipt", doc.ReceiptNumber)
	writeJSON(w, http.StatusOK, entry)
}

// MarkPending marks an invoice pending again
// @Summary      Mark invoice pending
// @Description  Force a saved invoice back to pending. This is a plain invoice save; receipt records from earlier payments stay in history.
// @Tags         history
// @Accept       json
// @Produce      json
// @Param        number    path      string           true   "Invoice number"
// @Param        document  body      models.Document  false  "Current form payload"
// @Success      200       {object}  Response{data=history.Entry}
// @Failure      404       {object}  Response{error=string}
// @Router       /history/{number}/pending [post]
func MarkPending(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	doc, ok := documentFromRequest(w, r, number)
	if !ok {
		return
	}
	doc.Normalize()
	doc.Kind = models.KindInvoice
	doc.Status = models.StatusPending

	entry, _, err := Store.UpsertInvoice(doc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	slog.Info("invoice marked pending", "number", number)
	writeJSON(w, http.StatusOK, entry)
}

// DuplicateInvoice copies a saved invoice into a new draft
// @Summary      Duplicate invoice
// @Description  Build a new draft from a saved invoice: same content, next available number prefilled (not committed), fresh dates, pending status. The draft is returned, not stored.
// @Tags         history
// @Produce      json
// @Param        number  path      string  true  "Invoice number to duplicate"
// @Success      200     {object}  Response{data=models.Document}
// @Failure      404     {object}  Response{error=string}
// @Router       /history/{number}/duplicate [post]
func DuplicateInvoice(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	entry, err := Store.FindByNumber(number, models.KindInvoice)
	if err != nil {
		writeError(w, http.StatusNotFound, "no saved invoice found to duplicate")
		return
	}

	src := entry.Payload
	draft := models.NewDraft(time.Now(), Cfg.Invoice.DueInDays, src.Currency, src.PaymentMethod)
	draft.InvoiceNumber = numbering.FormatInvoiceNumber(InvoiceNumbers.PeekNext())
	draft.ClientName = src.ClientName
	draft.ClientCompany = src.ClientCompany
	draft.ClientEmail = src.ClientEmail
	draft.ClientPhone = src.ClientPhone
	draft.ClientAddress = src.ClientAddress
	draft.Notes = src.Notes
	draft.TaxRate = src.TaxRate
	draft.Discount = src.Discount
	draft.Services = append([]models.ServiceLine{}, src.Services...)

	writeJSON(w, http.StatusOK, draft)
}

// DownloadLatest renders the most recent history entry
// @Summary      Download latest
// @Description  Render the most recently saved entry, invoice or receipt, to PDF.
// @Tags         history
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      404  {object}  Response{error=string}
// @Router       /history/latest/download [get]
func DownloadLatest(w http.ResponseWriter, r *http.Request) {
	entry, err := Store.Latest()
	if err != nil {
		writeError(w, http.StatusNotFound, "no history to download from")
		return
	}
	doc := entry.Payload.Clone()
	doc.Kind = entry.Type
	doc.Normalize()
	servePDF(w, doc)
}

// documentFromRequest resolves the payload a paid/pending action operates
// on: the request body when one is sent, otherwise the saved payload for
// the number. Writes the error response itself when neither works.
func documentFromRequest(w http.ResponseWriter, r *http.Request, number string) (*models.Document, bool) {
	var doc models.Document
	err := json.NewDecoder(r.Body).Decode(&doc)
	switch {
	case err == nil:
		doc.InvoiceNumber = number
		return &doc, true
	case errors.Is(err, io.EOF):
		// no body, fall through to the saved payload
	default:
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return nil, false
	}

	entry, ferr := Store.FindByNumber(number, models.KindInvoice)
	if errors.Is(ferr, history.ErrNotFound) {
		entry, ferr = Store.FindByNumber(number)
	}
	if ferr != nil {
		writeError(w, http.StatusNotFound, "no saved invoice found")
		return nil, false
	}
	return entry.Payload.Clone(), true
}
