package tabular

import (
	"context"
	"fmt"

	"github.com/rkleiv/pos-backend/internal/config"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsStore backs the gateway with a Google spreadsheet. The credentials
// path and spreadsheet id come from the options provider on every call, so
// a reconfigured add-on takes effect without a restart.
type SheetsStore struct{ Opts config.Provider }

func (s SheetsStore) service(ctx context.Context) (*sheets.Service, string, error) {
	o := s.Opts.Options()
	if o.SheetID == "" || o.ServiceAccountJSON == "" {
		return nil, "", fmt.Errorf("sheets: google_sheet_id or service_account_json not configured")
	}
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(o.ServiceAccountJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, "", fmt.Errorf("sheets: service: %w", err)
	}
	return svc, o.SheetID, nil
}

func (s SheetsStore) ReadTable(ctx context.Context, tab string) (Table, error) {
	svc, id, err := s.service(ctx)
	if err != nil {
		return Table{}, err
	}
	res, err := svc.Spreadsheets.Values.Get(id, tab+"!A:Z").Context(ctx).Do()
	if err != nil {
		return Table{}, fmt.Errorf("sheets: read %s: %w", tab, err)
	}
	var t Table
	for i, r := range res.Values {
		cells := make([]string, len(r))
		for j, v := range r {
			cells[j] = fmt.Sprint(v)
		}
		if i == 0 {
			t.Header = cells
			continue
		}
		t.Rows = append(t.Rows, cells)
	}
	return t, nil
}

func (s SheetsStore) AppendRow(ctx context.Context, tab string, row []string) error {
	svc, id, err := s.service(ctx)
	if err != nil {
		return err
	}
	vals := make([]interface{}, len(row))
	for i, c := range row {
		vals[i] = c
	}
	_, err = svc.Spreadsheets.Values.
		Append(id, tab+"!A:Z", &sheets.ValueRange{Values: [][]interface{}{vals}}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: append %s: %w", tab, err)
	}
	return nil
}
