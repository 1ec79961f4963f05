package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	pq "github.com/lib/pq"

	"github.com/guttosm/stockscore/internal/domain/models"
)

// PostgresStore persists the datasets so they survive restarts and can be
// shared between API instances. Aggregates are never stored.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an open, migrated connection pool.
//
// Parameters:
//   - db (*sql.DB): pool with the dataset tables from db/migrations applied.
//
// Returns:
//   - *PostgresStore: a DatasetStore safe for concurrent use.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

var _ DatasetStore = (*PostgresStore)(nil)

const upsertImport = `
	INSERT INTO dataset_imports (kind, source, row_count)
	VALUES ($1, $2, $3)
	ON CONFLICT (kind)
	DO UPDATE SET source = EXCLUDED.source,
				  row_count = EXCLUDED.row_count,
				  imported_at = NOW()
	RETURNING imported_at`

// ReplaceSales swaps the sales dataset in a single transaction.
func (s *PostgresStore) ReplaceSales(ctx context.Context, source string, rows []models.SalesRecord) (models.DatasetInfo, error) {
	return s.replace(ctx, models.KindSales, source, len(rows),
		`DELETE FROM sales_records`,
		pq.CopyIn("sales_records", "row_no", "item_code", "item_name", "category", "units_sold", "total_price"),
		func(stmt *sql.Stmt) error {
			for i, r := range rows {
				if _, err := stmt.ExecContext(ctx, i+1, r.ItemCode, r.ItemName, r.Category, r.UnitsSold, r.TotalPrice); err != nil {
					return err
				}
			}
			return nil
		})
}

// ReplacePurchases swaps the purchase dataset in a single transaction.
func (s *PostgresStore) ReplacePurchases(ctx context.Context, source string, rows []models.PurchaseRecord) (models.DatasetInfo, error) {
	return s.replace(ctx, models.KindPurchases, source, len(rows),
		`DELETE FROM purchase_records`,
		pq.CopyIn("purchase_records", "row_no", "item_code", "units_sold"),
		func(stmt *sql.Stmt) error {
			for i, r := range rows {
				if _, err := stmt.ExecContext(ctx, i+1, r.ItemCode, r.UnitsSold); err != nil {
					return err
				}
			}
			return nil
		})
}

func (s *PostgresStore) replace(ctx context.Context, kind models.DatasetKind, source string, n int, clear, copyIn string, load func(*sql.Stmt) error) (models.DatasetInfo, error) {
	info := models.DatasetInfo{Kind: kind, Loaded: true, Source: source, Rows: n}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return info, err
	}

	if _, err := tx.ExecContext(ctx, clear); err != nil {
		_ = tx.Rollback()
		return info, fmt.Errorf("clear %s: %w", kind, err)
	}

	stmt, err := tx.PrepareContext(ctx, copyIn)
	if err != nil {
		_ = tx.Rollback()
		return info, fmt.Errorf("prepare copy %s: %w", kind, err)
	}
	if err := load(stmt); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return info, fmt.Errorf("copy %s: %w", kind, err)
	}
	// flush the COPY buffer
	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return info, fmt.Errorf("flush copy %s: %w", kind, err)
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return info, err
	}

	if err := tx.QueryRowContext(ctx, upsertImport, string(kind), source, n).Scan(&info.ImportedAt); err != nil {
		_ = tx.Rollback()
		return info, fmt.Errorf("record import %s: %w", kind, err)
	}

	return info, tx.Commit()
}

// Sales reads the sales dataset in file order.
func (s *PostgresStore) Sales(ctx context.Context) ([]models.SalesRecord, models.DatasetInfo, error) {
	var out []models.SalesRecord
	info, err := s.read(ctx, models.KindSales,
		`SELECT item_code, item_name, category, units_sold, total_price FROM sales_records ORDER BY row_no`,
		func(rows *sql.Rows) error {
			var r models.SalesRecord
			if err := rows.Scan(&r.ItemCode, &r.ItemName, &r.Category, &r.UnitsSold, &r.TotalPrice); err != nil {
				return err
			}
			out = append(out, r)
			return nil
		})
	return out, info, err
}

// Purchases reads the purchase dataset in file order.
func (s *PostgresStore) Purchases(ctx context.Context) ([]models.PurchaseRecord, models.DatasetInfo, error) {
	var out []models.PurchaseRecord
	info, err := s.read(ctx, models.KindPurchases,
		`SELECT item_code, units_sold FROM purchase_records ORDER BY row_no`,
		func(rows *sql.Rows) error {
			var r models.PurchaseRecord
			if err := rows.Scan(&r.ItemCode, &r.UnitsSold); err != nil {
				return err
			}
			out = append(out, r)
			return nil
		})
	return out, info, err
}

// read loads the import record and the rows from one snapshot so a
// concurrent replace is never observed half way.
func (s *PostgresStore) read(ctx context.Context, kind models.DatasetKind, query string, scan func(*sql.Rows) error) (models.DatasetInfo, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return models.DatasetInfo{Kind: kind}, err
	}
	defer func() { _ = tx.Rollback() }()

	info, err := queryInfo(ctx, tx, kind)
	if err != nil || !info.Loaded {
		return info, err
	}

	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return info, fmt.Errorf("query %s: %w", kind, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return info, fmt.Errorf("scan %s: %w", kind, err)
		}
	}
	if err := rows.Err(); err != nil {
		return info, err
	}
	return info, tx.Commit()
}

// Info reports what is loaded for kind.
func (s *PostgresStore) Info(ctx context.Context, kind models.DatasetKind) (models.DatasetInfo, error) {
	return queryInfo(ctx, s.db, kind)
}

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func queryInfo(ctx context.Context, q rowQuerier, kind models.DatasetKind) (models.DatasetInfo, error) {
	info := models.DatasetInfo{Kind: kind}
	err := q.QueryRowContext(ctx,
		`SELECT source, row_count, imported_at FROM dataset_imports WHERE kind = $1`, string(kind),
	).Scan(&info.Source, &info.Rows, &info.ImportedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return info, nil
	}
	if err != nil {
		return info, fmt.Errorf("query import %s: %w", kind, err)
	}
	info.Loaded = true
	return info, nil
}

// Ping checks database connectivity.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
