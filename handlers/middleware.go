package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lessycomm/invoicer/config"
	"github.com/lessycomm/invoicer/history"
	"github.com/lessycomm/invoicer/numbering"
	"github.com/lessycomm/invoicer/render"
)

// Response is the standard JSON envelope for history and numbering
// endpoints. Error responses carry only the error field, matching the wire
// contract of the document endpoints.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Shared dependencies, set once at startup.
var (
	Store          *history.Store
	InvoiceNumbers *numbering.InvoiceCounter
	ReceiptNumbers *numbering.ReceiptCounter
	Renderer       *render.Renderer
	Cfg            *config.Config
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Data: data})
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Error: msg})
}
