package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkleiv/pos-backend/internal/tabular"
)

type fakeStore struct {
	table   tabular.Table
	readErr error
}

func (f *fakeStore) ReadTable(ctx context.Context, tab string) (tabular.Table, error) {
	if f.readErr != nil {
		return tabular.Table{}, f.readErr
	}
	return f.table, nil
}

func (f *fakeStore) AppendRow(ctx context.Context, tab string, row []string) error {
	return nil
}

var pricingHeader = []string{"reseller_id", "product_id", "price", "commission_pct", "valid_from", "valid_to"}

func pricingTable(rows ...[]string) tabular.Table {
	return tabular.Table{Header: pricingHeader, Rows: rows}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveGreatestValidFromWins(t *testing.T) {
	store := &fakeStore{table: pricingTable(
		[]string{"R1", "P1", "100", "5", "2024-01-01", "2024-06-30"},
		[]string{"R1", "P1", "120", "7", "2024-04-01", "2024-12-31"},
	)}
	r := Resolver{Store: store}

	rule, ok, err := r.Resolve(context.Background(), "R1", "P1", date(2024, time.May, 1))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "120", rule.Price)

	rule, ok, err = r.Resolve(context.Background(), "R1", "P1", date(2024, time.February, 1))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "100", rule.Price)

	_, ok, err = r.Resolve(context.Background(), "R1", "P1", date(2025, time.January, 1))
	require.NoError(t, err)
	assert.False(t, ok, "outside every window: no override")
}

func TestResolveTieBreakLastRowWins(t *testing.T) {
	store := &fakeStore{table: pricingTable(
		[]string{"R1", "P1", "100", "5", "2024-01-01", "2024-12-31"},
		[]string{"R1", "P1", "110", "6", "2024-01-01", "2024-12-31"},
	)}
	r := Resolver{Store: store}

	rule, ok, err := r.Resolve(context.Background(), "R1", "P1", date(2024, time.May, 1))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "110", rule.Price, "equal valid_from keeps the later row")
}

func TestResolveFiltersResellerAndProduct(t *testing.T) {
	store := &fakeStore{table: pricingTable(
		[]string{"R2", "P1", "80", "5", "", ""},
		[]string{"R1", "P2", "90", "5", "", ""},
	)}
	r := Resolver{Store: store}

	_, ok, err := r.Resolve(context.Background(), "R1", "P1", date(2024, time.May, 1))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolveBlankAndMalformedDatesAreOpenBounds(t *testing.T) {
	store := &fakeStore{table: pricingTable(
		[]string{"R1", "P1", "55", "3", "", "garbage"},
	)}
	r := Resolver{Store: store}

	rule, ok, err := r.Resolve(context.Background(), "R1", "P1", date(1999, time.January, 1))
	require.NoError(t, err)
	require.True(t, ok, "open window qualifies on any date")
	assert.Equal(t, "55", rule.Price)
}

func TestResolveReadErrorPropagates(t *testing.T) {
	store := &fakeStore{readErr: errors.New("boom")}
	r := Resolver{Store: store}

	_, _, err := r.Resolve(context.Background(), "R1", "P1", date(2024, time.May, 1))
	assert.Error(t, err)
}

func TestParseDateOrDefault(t *testing.T) {
	assert.Equal(t, OpenFrom, ParseDateOrDefault("", OpenFrom))
	assert.Equal(t, OpenTo, ParseDateOrDefault("not-a-date", OpenTo))
	assert.Equal(t, date(2024, time.April, 1), ParseDateOrDefault("2024-04-01", OpenFrom))
}

func TestParsePriceOrDefault(t *testing.T) {
	assert.Equal(t, 12.5, ParsePriceOrDefault("12.5", 0))
	assert.Equal(t, 12.5, ParsePriceOrDefault(" 12.5 ", 0))
	assert.Equal(t, 99.0, ParsePriceOrDefault("", 99))
	assert.Equal(t, 99.0, ParsePriceOrDefault("abc", 99))
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2024, time.May, 1, 13, 37, 12, 0, time.UTC)
	assert.Equal(t, date(2024, time.May, 1), DateOf(ts))
}
