package catalog

import (
	"context"
	"errors"

	"github.com/rkleiv/pos-backend/internal/tabular"
)

var ErrNotFound = errors.New("product not found")

// Product is one row of the Products tab. BasePrice stays a string: the
// sheet is hand-edited and an unparseable price falls back later instead of
// failing the lookup.
type Product struct {
	ProductID   string `json:"product_id"`
	ShortID     string `json:"short_id"`
	Name        string `json:"name"`
	PackageSize string `json:"package_size"`
	BasePrice   string `json:"base_price"`
	Producer    string `json:"producer"`
}

type Resolver struct{ Store tabular.Store }

// Resolve returns the first product matching either identifier, in stored
// order. A row wins on whichever key matches first, with no priority
// between the two; that is how the sheet has always been scanned and
// callers rely on it.
func (c Resolver) Resolve(ctx context.Context, productID, shortID string) (Product, error) {
	if productID == "" && shortID == "" {
		return Product{}, ErrNotFound
	}
	t, err := c.Store.ReadTable(ctx, tabular.TabProducts)
	if err != nil {
		return Product{}, err
	}
	for _, r := range t.Records() {
		if productID != "" && r["product_id"] == productID {
			return fromRow(r), nil
		}
		if shortID != "" && r["short_id"] == shortID {
			return fromRow(r), nil
		}
	}
	return Product{}, ErrNotFound
}

func fromRow(r tabular.Row) Product {
	return Product{
		ProductID:   r["product_id"],
		ShortID:     r["short_id"],
		Name:        r["name"],
		PackageSize: r["package_size"],
		BasePrice:   r["base_price"],
		Producer:    r["producer"],
	}
}
