package service

import (
	"context"
	"strings"

	"github.com/guttosm/stockscore/internal/domain/apperrors"
	"github.com/guttosm/stockscore/internal/domain/models"
	"github.com/guttosm/stockscore/internal/logger"
	"github.com/guttosm/stockscore/internal/scoring"
	"github.com/guttosm/stockscore/internal/storage"
)

// ScoreService is the use-case layer shared by the CLI and the HTTP API.
type ScoreService interface {
	ImportSales(ctx context.Context, source string, rows []models.SalesRecord) (models.DatasetInfo, error)
	ImportPurchases(ctx context.Context, source string, rows []models.PurchaseRecord) (models.DatasetInfo, error)
	Calculate(ctx context.Context, itemCode string) (models.ScoreResult, error)
	SalesByName(ctx context.Context) ([]models.NameTotal, error)
	Status(ctx context.Context) (sales, purchases models.DatasetInfo, err error)
}

type scoreService struct {
	store storage.DatasetStore
}

// NewScoreService builds the service on top of a dataset store.
//
// Parameters:
//   - store (storage.DatasetStore): memory or postgres backend holding the imported datasets.
//
// Returns:
//   - ScoreService: ready to be shared by the CLI and the HTTP handlers.
func NewScoreService(store storage.DatasetStore) ScoreService {
	return &scoreService{store: store}
}

// ImportSales replaces the sales dataset.
func (s *scoreService) ImportSales(ctx context.Context, source string, rows []models.SalesRecord) (models.DatasetInfo, error) {
	info, err := s.store.ReplaceSales(ctx, source, rows)
	if err != nil {
		return info, err
	}
	logger.With("service").Info().Str("kind", string(info.Kind)).Str("source", source).Int("rows", info.Rows).Msg("dataset imported")
	return info, nil
}

// ImportPurchases replaces the purchase dataset.
func (s *scoreService) ImportPurchases(ctx context.Context, source string, rows []models.PurchaseRecord) (models.DatasetInfo, error) {
	info, err := s.store.ReplacePurchases(ctx, source, rows)
	if err != nil {
		return info, err
	}
	logger.With("service").Info().Str("kind", string(info.Kind)).Str("source", source).Int("rows", info.Rows).Msg("dataset imported")
	return info, nil
}

// Calculate scores one item code. Checks run in this order: both datasets
// imported, item code given, item present in both aggregates.
func (s *scoreService) Calculate(ctx context.Context, itemCode string) (models.ScoreResult, error) {
	sales, salesInfo, err := s.store.Sales(ctx)
	if err != nil {
		return models.ScoreResult{}, err
	}
	purchases, purchasesInfo, err := s.store.Purchases(ctx)
	if err != nil {
		return models.ScoreResult{}, err
	}
	if err := requireLoaded(salesInfo, purchasesInfo); err != nil {
		return models.ScoreResult{}, err
	}

	code := strings.TrimSpace(itemCode)
	if code == "" {
		return models.ScoreResult{}, apperrors.MissingInput("item code")
	}

	res, err := scoring.Evaluate(code, scoring.ItemName(sales, code),
		scoring.AggregateSales(sales), scoring.AggregatePurchases(purchases))
	if err != nil {
		return models.ScoreResult{}, err
	}

	logger.With("service").Debug().
		Str("item", code).
		Int("x1", res.Inputs.TransactionFrequency).
		Float64("x2", res.Inputs.TotalRevenue).
		Float64("x3", res.Inputs.UnitsPurchased).
		Float64("y", res.Y).
		Msg("item scored")
	return res, nil
}

// SalesByName returns the chart series. Only the sales dataset is required.
func (s *scoreService) SalesByName(ctx context.Context) ([]models.NameTotal, error) {
	sales, info, err := s.store.Sales(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireLoaded(info); err != nil {
		return nil, err
	}
	return scoring.SalesByName(sales), nil
}

// Status reports what is loaded for both dataset kinds.
func (s *scoreService) Status(ctx context.Context) (models.DatasetInfo, models.DatasetInfo, error) {
	sales, err := s.store.Info(ctx, models.KindSales)
	if err != nil {
		return models.DatasetInfo{}, models.DatasetInfo{}, err
	}
	purchases, err := s.store.Info(ctx, models.KindPurchases)
	if err != nil {
		return models.DatasetInfo{}, models.DatasetInfo{}, err
	}
	return sales, purchases, nil
}

func requireLoaded(infos ...models.DatasetInfo) error {
	var missing []string
	for _, info := range infos {
		if !info.Loaded {
			missing = append(missing, string(info.Kind))
		}
	}
	if len(missing) > 0 {
		return &apperrors.MissingFileError{Kinds: missing}
	}
	return nil
}
