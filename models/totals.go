package models

// Totals are the derived amounts of a document. They are never stored on
// their own; callers recompute them from the service lines whenever needed.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"taxAmount"`
	Total     float64 `json:"total"`
}

// ComputeTotals sums the service lines in order, then applies tax and
// discount in that order. Intermediate sums keep full float precision;
// nothing is rounded until display. A discount larger than subtotal plus
// tax drives the total negative, which is accepted.
func ComputeTotals(lines []ServiceLine, taxRatePercent, discount float64) Totals {
	var subtotal float64
	for _, l := range lines {
		subtotal += l.Amount()
	}
	tax := subtotal * (taxRatePercent / 100)
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     subtotal + tax - discount,
	}
}
