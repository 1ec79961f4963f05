package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"os"
	"testing"

	"github.com/guttosm/stockscore/internal/domain/apperrors"
	"github.com/guttosm/stockscore/internal/domain/models"
	"github.com/guttosm/stockscore/internal/ingestion"
	"github.com/guttosm/stockscore/internal/logger"
	"github.com/guttosm/stockscore/internal/storage"
)

var _ ingestion.Importer = (ScoreService)(nil)

type stubStore struct {
	storage.DatasetStore
	err error
}

func (s stubStore) Sales(context.Context) ([]models.SalesRecord, models.DatasetInfo, error) {
	return nil, models.DatasetInfo{}, s.err
}

func (s stubStore) Info(context.Context, models.DatasetKind) (models.DatasetInfo, error) {
	return models.DatasetInfo{}, s.err
}

func loadedService(t *testing.T) ScoreService {
	t.Helper()
	svc := NewScoreService(storage.NewMemoryStore())
	ctx := context.Background()
	if _, err := svc.ImportSales(ctx, "sales.xlsx", []models.SalesRecord{
		{ItemCode: "A1", ItemName: "Kopi Bubuk", UnitsSold: 5, TotalPrice: 100},
		{ItemCode: "B2", ItemName: "Gula", UnitsSold: 7, TotalPrice: 70},
		{ItemCode: "A1", ItemName: "Kopi Bubuk", UnitsSold: 3, TotalPrice: 50},
	}); err != nil {
		t.Fatalf("import sales: %v", err)
	}
	if _, err := svc.ImportPurchases(ctx, "purchases.xlsx", []models.PurchaseRecord{{ItemCode: "A1", UnitsSold: 10}}); err != nil {
		t.Fatalf("import purchases: %v", err)
	}
	return svc
}

func TestCalculate_Success(t *testing.T) {
	svc := loadedService(t)

	res, err := svc.Calculate(context.Background(), "  A1 ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.ItemCode != "A1" || res.ItemName != "Kopi Bubuk" {
		t.Fatalf("unexpected identity: %+v", res)
	}
	if res.Inputs != (models.ItemAggregate{TransactionFrequency: 2, TotalRevenue: 150, UnitsPurchased: 10}) {
		t.Fatalf("unexpected inputs: %+v", res.Inputs)
	}
	if math.Abs(res.Y-17.15) > 1e-9 {
		t.Fatalf("Y=%v want 17.15", res.Y)
	}
}

func TestCalculate_ErrorOrder(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name  string
		svc   func() ScoreService
		item  string
		want  error
		kinds []string
	}{
		{
			name:  "no files and no input",
			svc:   func() ScoreService { return NewScoreService(storage.NewMemoryStore()) },
			item:  "",
			want:  apperrors.ErrMissingFile,
			kinds: []string{"sales", "purchases"},
		},
		{
			name: "purchases missing",
			svc: func() ScoreService {
				s := NewScoreService(storage.NewMemoryStore())
				_, _ = s.ImportSales(ctx, "s.xlsx", []models.SalesRecord{{ItemCode: "A1"}})
				return s
			},
			item:  "A1",
			want:  apperrors.ErrMissingFile,
			kinds: []string{"purchases"},
		},
		{name: "blank input", svc: func() ScoreService { return loadedService(t) }, item: "   ", want: apperrors.ErrMissingInput},
		{name: "not in purchases", svc: func() ScoreService { return loadedService(t) }, item: "B2", want: apperrors.ErrItemNotFound},
		{name: "unknown", svc: func() ScoreService { return loadedService(t) }, item: "Z9", want: apperrors.ErrItemNotFound},
		{
			name: "empty datasets",
			svc: func() ScoreService {
				s := NewScoreService(storage.NewMemoryStore())
				_, _ = s.ImportSales(ctx, "s.xlsx", nil)
				_, _ = s.ImportPurchases(ctx, "p.xlsx", nil)
				return s
			},
			item: "A1",
			want: apperrors.ErrItemNotFound,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.svc().Calculate(ctx, tc.item)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err=%v want %v", err, tc.want)
			}
			if tc.kinds != nil {
				var mf *apperrors.MissingFileError
				if !errors.As(err, &mf) || len(mf.Kinds) != len(tc.kinds) {
					t.Fatalf("unexpected missing kinds: %v", err)
				}
			}
		})
	}
}

func TestCalculate_StoreError(t *testing.T) {
	svc := NewScoreService(stubStore{err: errors.New("db down")})
	if _, err := svc.Calculate(context.Background(), "A1"); err == nil || err.Error() != "db down" {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestSalesByName(t *testing.T) {
	svc := loadedService(t)
	bars, err := svc.SalesByName(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(bars) != 2 || bars[0] != (models.NameTotal{ItemName: "Kopi Bubuk", TotalUnits: 8}) || bars[1].TotalUnits != 7 {
		t.Fatalf("unexpected bars: %+v", bars)
	}

	empty := NewScoreService(storage.NewMemoryStore())
	if _, err := empty.SalesByName(context.Background()); !errors.Is(err, apperrors.ErrMissingFile) {
		t.Fatalf("expected missing file, got %v", err)
	}
}

func TestStatus(t *testing.T) {
	svc := loadedService(t)
	sales, purchases, err := svc.Status(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !sales.Loaded || sales.Rows != 3 || sales.Source != "sales.xlsx" {
		t.Fatalf("unexpected sales info %+v", sales)
	}
	if !purchases.Loaded || purchases.Rows != 1 {
		t.Fatalf("unexpected purchases info %+v", purchases)
	}

	if _, _, err := NewScoreService(stubStore{err: errors.New("db down")}).Status(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestImportSales_LogsImport(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stdout) })

	svc := NewScoreService(storage.NewMemoryStore())
	if _, err := svc.ImportSales(context.Background(), "penjualan.xlsx", []models.SalesRecord{{ItemCode: "A1"}}); err != nil {
		t.Fatalf("import sales: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid log line %q: %v", buf.String(), err)
	}
	if entry["component"] != "service" || entry["message"] != "dataset imported" || entry["source"] != "penjualan.xlsx" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if entry["rows"] != float64(1) || entry["kind"] != "sales" {
		t.Fatalf("unexpected entry %v", entry)
	}
}
