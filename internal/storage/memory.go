package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/guttosm/stockscore/internal/domain/models"
)

// MemoryStore keeps datasets for the lifetime of the process.
type MemoryStore struct {
	mu            sync.RWMutex
	sales         []models.SalesRecord
	purchases     []models.PurchaseRecord
	salesInfo     models.DatasetInfo
	purchasesInfo models.DatasetInfo
	now           func() time.Time
}

// NewMemoryStore returns an empty store; both datasets report Loaded=false
// until their first import.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		salesInfo:     models.DatasetInfo{Kind: models.KindSales},
		purchasesInfo: models.DatasetInfo{Kind: models.KindPurchases},
		now:           time.Now,
	}
}

var _ DatasetStore = (*MemoryStore)(nil)

// ReplaceSales swaps in a copy of rows as the sales dataset and stamps the
// import time.
func (s *MemoryStore) ReplaceSales(_ context.Context, source string, rows []models.SalesRecord) (models.DatasetInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = append([]models.SalesRecord(nil), rows...)
	s.salesInfo = models.DatasetInfo{Kind: models.KindSales, Loaded: true, Source: source, Rows: len(rows), ImportedAt: s.now().UTC()}
	return s.salesInfo, nil
}

// ReplacePurchases swaps in a copy of rows as the purchase dataset.
func (s *MemoryStore) ReplacePurchases(_ context.Context, source string, rows []models.PurchaseRecord) (models.DatasetInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purchases = append([]models.PurchaseRecord(nil), rows...)
	s.purchasesInfo = models.DatasetInfo{Kind: models.KindPurchases, Loaded: true, Source: source, Rows: len(rows), ImportedAt: s.now().UTC()}
	return s.purchasesInfo, nil
}

// Sales returns a copy of the sales rows.
func (s *MemoryStore) Sales(_ context.Context) ([]models.SalesRecord, models.DatasetInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.SalesRecord(nil), s.sales...), s.salesInfo, nil
}

// Purchases returns a copy of the purchase rows.
func (s *MemoryStore) Purchases(_ context.Context) ([]models.PurchaseRecord, models.DatasetInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.PurchaseRecord(nil), s.purchases...), s.purchasesInfo, nil
}

// Info reports what is loaded for kind. Unknown kinds are an error.
func (s *MemoryStore) Info(_ context.Context, kind models.DatasetKind) (models.DatasetInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch kind {
	case models.KindSales:
		return s.salesInfo, nil
	case models.KindPurchases:
		return s.purchasesInfo, nil
	default:
		return models.DatasetInfo{}, fmt.Errorf("unknown dataset kind %q", kind)
	}
}

// Ping always succeeds.
func (s *MemoryStore) Ping(context.Context) error { return nil }
