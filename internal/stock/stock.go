package stock

import (
	"context"

	"github.com/rkleiv/pos-backend/internal/tabular"
)

// Service lists the read-only stock snapshot. The tab's columns are owned
// by whoever maintains the sheet, so rows pass through untyped.
type Service struct{ Store tabular.Store }

func (s Service) List(ctx context.Context, resellerID string) ([]tabular.Row, error) {
	t, err := s.Store.ReadTable(ctx, tabular.TabStock)
	if err != nil {
		return nil, err
	}
	items := t.Records()
	if resellerID == "" {
		return items, nil
	}
	out := make([]tabular.Row, 0, len(items))
	for _, it := range items {
		if it["reseller_id"] == resellerID {
			out = append(out, it)
		}
	}
	return out, nil
}
