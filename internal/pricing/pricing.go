package pricing

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rkleiv/pos-backend/internal/tabular"
)

const dateLayout = "2006-01-02"

// Open bounds substituted for blank or malformed validity dates. A rule
// with no parsable window is always in effect, never an error.
var (
	OpenFrom = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	OpenTo   = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// Rule is one row of the ResellerPricing tab: a time-bounded price that
// overrides the product's base price for one reseller. Windows for the same
// (reseller, product) pair may overlap or leave gaps.
type Rule struct {
	ResellerID    string
	ProductID     string
	Price         string
	CommissionPct string
	ValidFrom     string
	ValidTo       string
}

// ParseDateOrDefault returns def when s is blank or not a calendar date.
func ParseDateOrDefault(s string, def time.Time) time.Time {
	if s == "" {
		return def
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return def
	}
	return d
}

// ParsePriceOrDefault returns def when s is not a decimal number.
func ParsePriceOrDefault(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return v
}

// DateOf truncates a timestamp to its calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Resolver struct{ Store tabular.Store }

// Resolve returns the rule in effect for the pair on asOf, or ok=false when
// no override applies and the caller falls back to the base price.
//
// Among qualifying windows the greatest valid_from wins. Equal valid_from
// keeps the later row in scan order; that tie-break is how the sheet's
// single pass has always behaved, so it is preserved even though it looks
// more like an accident than a rule (see DESIGN.md).
func (p Resolver) Resolve(ctx context.Context, resellerID, productID string, asOf time.Time) (Rule, bool, error) {
	t, err := p.Store.ReadTable(ctx, tabular.TabPricing)
	if err != nil {
		return Rule{}, false, err
	}
	asOf = DateOf(asOf)

	var best Rule
	var bestFrom time.Time
	found := false
	for _, r := range t.Records() {
		if r["reseller_id"] != resellerID || r["product_id"] != productID {
			continue
		}
		vf := ParseDateOrDefault(r["valid_from"], OpenFrom)
		vt := ParseDateOrDefault(r["valid_to"], OpenTo)
		if asOf.Before(vf) || asOf.After(vt) {
			continue
		}
		if !found || !vf.Before(bestFrom) {
			best, bestFrom, found = fromRow(r), vf, true
		}
	}
	return best, found, nil
}

func fromRow(r tabular.Row) Rule {
	return Rule{
		ResellerID:    r["reseller_id"],
		ProductID:     r["product_id"],
		Price:         r["price"],
		CommissionPct: r["commission_pct"],
		ValidFrom:     r["valid_from"],
		ValidTo:       r["valid_to"],
	}
}
