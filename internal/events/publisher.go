package events

import "context"

// SaleCompleted is the payload fired after a ledger row lands.
type SaleCompleted struct {
	ResellerID string  `json:"reseller_id"`
	CustomerID string  `json:"customer_id"`
	Total      float64 `json:"total"`
	ProductID  string  `json:"product_id"`
	Qty        int     `json:"qty"`
}

// Publisher delivers best-effort notifications. Implementations log and
// swallow their own failures; a publish never affects the caller's result.
type Publisher interface {
	Publish(ctx context.Context, name string, payload any)
}

// Fanout sends each event to every sink.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, name string, payload any) {
	for _, p := range f {
		p.Publish(ctx, name, payload)
	}
}

// Nop discards everything, for tests.
type Nop struct{}

func (Nop) Publish(context.Context, string, any) {}
