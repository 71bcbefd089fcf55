package handlers

import (
	"encoding/json"
	"net/http"
)

// NextReceiptNumber issues the next receipt number
// @Summary      Next receipt number
// @Description  Increment the durable receipt counter and return the next RCT number. Counter failures degrade to a random suffix instead of blocking.
// @Tags         receipts
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /receipt-number [post]
func NextReceiptNumber(w http.ResponseWriter, r *http.Request) {
	// Assignment never fails: counter I/O trouble falls back to a random
	// suffix inside the counter, per the degrade-not-fail policy.
	rn := ReceiptNumbers.Next()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"receiptNumber": rn})
}

// ListReceipts lists receipt records
// @Summary      List receipts
// @Description  Get the receipt-kind history entries, most recent first. This feeds the receipts dashboard.
// @Tags         receipts
// @Produce      json
// @Success      200  {object}  Response{data=[]history.Entry}
// @Router       /receipts [get]
func ListReceipts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Store.ListReceipts())
}
