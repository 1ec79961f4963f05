package storage

import (
	"context"

	"github.com/guttosm/stockscore/internal/domain/models"
)

// DatasetStore keeps the last imported sales and purchase datasets.
//
// Replace* swaps a dataset wholesale (last write wins). Readers of a kind that
// was never imported get a DatasetInfo with Loaded=false and no rows.
type DatasetStore interface {
	ReplaceSales(ctx context.Context, source string, rows []models.SalesRecord) (models.DatasetInfo, error)
	ReplacePurchases(ctx context.Context, source string, rows []models.PurchaseRecord) (models.DatasetInfo, error)
	Sales(ctx context.Context) ([]models.SalesRecord, models.DatasetInfo, error)
	Purchases(ctx context.Context) ([]models.PurchaseRecord, models.DatasetInfo, error)
	Info(ctx context.Context, kind models.DatasetKind) (models.DatasetInfo, error)
	Ping(ctx context.Context) error
}
