package sales

import "strconv"

// Record is one ledger row, immutable once appended. The Sales tab's
// column order is fixed and two reserved columns sit between the timestamp
// and the customer id.
type Record struct {
	Timestamp     string
	CustomerID    string
	ProductID     string
	ShortID       string
	Qty           int
	UnitPrice     float64
	CommissionPct string
	Total         float64
	PaymentMethod string
}

func (r Record) Row() []string {
	return []string{
		r.Timestamp,
		"", "",
		r.CustomerID,
		r.ProductID,
		r.ShortID,
		strconv.Itoa(r.Qty),
		formatAmount(r.UnitPrice),
		r.CommissionPct,
		formatAmount(r.Total),
		r.PaymentMethod,
	}
}

func formatAmount(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
