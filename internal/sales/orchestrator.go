package sales

import (
	"context"
	"errors"
	"time"

	"github.com/rkleiv/pos-backend/internal/catalog"
	"github.com/rkleiv/pos-backend/internal/config"
	"github.com/rkleiv/pos-backend/internal/events"
	"github.com/rkleiv/pos-backend/internal/pricing"
	"github.com/rkleiv/pos-backend/internal/tabular"
)

type Request struct {
	ResellerID    string
	ProductID     string
	ShortID       string
	Qty           int
	CustomerID    string
	PaymentMethod string
	AsOf          time.Time // zero means today
}

type Result struct {
	Status string  `json:"status"`
	Total  float64 `json:"total"`
}

// Orchestrator runs one sale end to end: resolve the product, resolve the
// price in effect, append the ledger row, notify. The ledger append is the
// one mandatory write; the notification is best-effort and fires only after
// the row landed.
type Orchestrator struct {
	Store     tabular.Store
	Catalog   catalog.Resolver
	Pricing   pricing.Resolver
	Publisher events.Publisher
	Opts      config.Provider
	Now       func() time.Time
}

func NewOrchestrator(store tabular.Store, opts config.Provider, pub events.Publisher) *Orchestrator {
	return &Orchestrator{
		Store:     store,
		Catalog:   catalog.Resolver{Store: store},
		Pricing:   pricing.Resolver{Store: store},
		Publisher: pub,
		Opts:      opts,
		Now:       time.Now,
	}
}

func (o *Orchestrator) RecordSale(ctx context.Context, req Request) (Result, error) {
	if req.ProductID == "" && req.ShortID == "" {
		return Result{}, ValidationError{"product_id or short_id required"}
	}
	if req.Qty <= 0 {
		return Result{}, ValidationError{"qty must be a positive integer"}
	}

	prod, err := o.Catalog.Resolve(ctx, req.ProductID, req.ShortID)
	if errors.Is(err, catalog.ErrNotFound) {
		return Result{}, NotFoundError{"product not found"}
	}
	if err != nil {
		return Result{}, DependencyError{Op: "read products", Err: err}
	}

	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = o.Now()
	}
	rule, ok, err := o.Pricing.Resolve(ctx, req.ResellerID, prod.ProductID, asOf)
	if err != nil {
		return Result{}, DependencyError{Op: "read pricing", Err: err}
	}

	// Price fallback chain: rule price, then base price, then zero. An
	// unparseable value degrades to the next step, never fails the sale.
	unit := pricing.ParsePriceOrDefault(prod.BasePrice, 0)
	commission := "0"
	if ok {
		unit = pricing.ParsePriceOrDefault(rule.Price, unit)
		commission = rule.CommissionPct
	}
	total := unit * float64(req.Qty)

	rec := Record{
		Timestamp:     o.Now().Format(time.RFC3339),
		CustomerID:    req.CustomerID,
		ProductID:     prod.ProductID,
		ShortID:       prod.ShortID,
		Qty:           req.Qty,
		UnitPrice:     unit,
		CommissionPct: commission,
		Total:         total,
		PaymentMethod: req.PaymentMethod,
	}
	if err := o.Store.AppendRow(ctx, tabular.TabSales, rec.Row()); err != nil {
		return Result{}, DependencyError{Op: "append sale", Err: err}
	}

	o.Publisher.Publish(ctx, o.Opts.Options().EventName(), events.SaleCompleted{
		ResellerID: req.ResellerID,
		CustomerID: req.CustomerID,
		Total:      total,
		ProductID:  prod.ProductID,
		Qty:        req.Qty,
	})

	return Result{Status: "ok", Total: total}, nil
}
