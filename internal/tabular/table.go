package tabular

import "context"

// Tab names in the backing store.
const (
	TabProducts = "Products"
	TabPricing  = "ResellerPricing"
	TabStock    = "Stock"
	TabSales    = "Sales"
)

// Row is one record keyed by the table's header row.
type Row map[string]string

// Table is an ordered snapshot of one tab: the header row plus data rows.
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// Records maps data rows onto the header. Cells missing from a short row
// come back as "", cells past the header are dropped. Scan order is
// preserved; resolution tie-breaks depend on it.
func (t Table) Records() []Row {
	out := make([]Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		rec := make(Row, len(t.Header))
		for i, h := range t.Header {
			if i < len(r) {
				rec[h] = r[i]
			} else {
				rec[h] = ""
			}
		}
		out = append(out, rec)
	}
	return out
}

// Store is the gateway to the external tabular store. Reads return a fresh
// snapshot on every call; AppendRow is the only write path (the Sales
// ledger) and rows are never updated or deleted.
type Store interface {
	ReadTable(ctx context.Context, tab string) (Table, error)
	AppendRow(ctx context.Context, tab string, row []string) error
}
