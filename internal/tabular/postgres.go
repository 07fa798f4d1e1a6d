package tabular

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres backend for self-hosted deployments without Google credentials.
// Each tab maps to a table with a serial "ordinal" column so rows keep the
// same stored order a sheet tab has.

var pgTables = map[string]string{
	TabProducts: "products",
	TabPricing:  "reseller_pricing",
	TabStock:    "stock",
	TabSales:    "sales",
}

var pgColumns = map[string][]string{
	TabProducts: {"product_id", "short_id", "name", "package_size", "base_price", "producer"},
	TabPricing:  {"reseller_id", "product_id", "price", "commission_pct", "valid_from", "valid_to"},
	TabStock:    {"reseller_id", "product_id", "short_id", "qty", "updated_at"},
	TabSales:    {"ts", "ref_a", "ref_b", "customer_id", "product_id", "short_id", "qty", "unit_price", "commission_pct", "total", "payment_method"},
}

type PostgresStore struct{ DB *pgxpool.Pool }

func ConnectPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 8
	cfg.MinConns = 1
	cfg.HealthCheckPeriod = 30 * time.Second
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func (s PostgresStore) ReadTable(ctx context.Context, tab string) (Table, error) {
	table, cols, err := pgTab(tab)
	if err != nil {
		return Table{}, err
	}
	q := fmt.Sprintf(`SELECT %s FROM %s ORDER BY ordinal`, strings.Join(cols, ", "), table)
	rows, err := s.DB.Query(ctx, q)
	if err != nil {
		return Table{}, fmt.Errorf("postgres: read %s: %w", tab, err)
	}
	defer rows.Close()

	t := Table{Header: cols}
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return Table{}, fmt.Errorf("postgres: read %s: %w", tab, err)
		}
		cells := make([]string, len(vals))
		for i, v := range vals {
			if v == nil {
				continue
			}
			cells[i] = fmt.Sprint(v)
		}
		t.Rows = append(t.Rows, cells)
	}
	if err := rows.Err(); err != nil {
		return Table{}, fmt.Errorf("postgres: read %s: %w", tab, err)
	}
	return t, nil
}

func (s PostgresStore) AppendRow(ctx context.Context, tab string, row []string) error {
	table, cols, err := pgTab(tab)
	if err != nil {
		return err
	}
	args := make([]any, len(cols))
	ph := make([]string, len(cols))
	for i := range cols {
		if i < len(row) {
			args[i] = row[i]
		} else {
			args[i] = ""
		}
		ph[i] = fmt.Sprintf("$%d", i+1)
	}
	q := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		table, strings.Join(cols, ", "), strings.Join(ph, ", "))
	if _, err := s.DB.Exec(ctx, q, args...); err != nil {
		return fmt.Errorf("postgres: append %s: %w", tab, err)
	}
	return nil
}

func pgTab(tab string) (string, []string, error) {
	table, ok := pgTables[tab]
	if !ok {
		return "", nil, fmt.Errorf("postgres: unknown tab %q", tab)
	}
	return table, pgColumns[tab], nil
}
