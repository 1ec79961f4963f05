package ingestion

import (
	"context"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/stockscore/internal/domain/apperrors"
	"github.com/guttosm/stockscore/internal/domain/models"
	"github.com/guttosm/stockscore/internal/logger"
)

// Importer receives freshly parsed datasets. Each call replaces the previous
// dataset of that kind.
type Importer interface {
	ImportSales(ctx context.Context, source string, rows []models.SalesRecord) (models.DatasetInfo, error)
	ImportPurchases(ctx context.Context, source string, rows []models.PurchaseRecord) (models.DatasetInfo, error)
}

// Pair holds both datasets read from disk.
type Pair struct {
	Sales     []models.SalesRecord
	Purchases []models.PurchaseRecord
}

// LoadPair reads the sales and purchase files concurrently. Both paths are
// required; the first failure cancels the other read.
func LoadPair(ctx context.Context, salesPath, purchasePath string) (Pair, error) {
	if err := requirePaths(salesPath, purchasePath); err != nil {
		return Pair{}, err
	}

	var p Pair
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := loadSales(gctx, salesPath)
		p.Sales = rows
		return err
	})
	g.Go(func() error {
		rows, err := loadPurchases(gctx, purchasePath)
		p.Purchases = rows
		return err
	})
	if err := g.Wait(); err != nil {
		return Pair{}, err
	}
	return p, nil
}

// ImportFiles reads whichever paths are non-empty and hands the rows to imp.
// Nothing is imported unless every given file parses.
func ImportFiles(ctx context.Context, imp Importer, salesPath, purchasePath string) error {
	if salesPath == "" && purchasePath == "" {
		return &apperrors.MissingFileError{Kinds: []string{string(models.KindSales), string(models.KindPurchases)}}
	}

	var p Pair
	g, gctx := errgroup.WithContext(ctx)
	if salesPath != "" {
		g.Go(func() error {
			rows, err := loadSales(gctx, salesPath)
			p.Sales = rows
			return err
		})
	}
	if purchasePath != "" {
		g.Go(func() error {
			rows, err := loadPurchases(gctx, purchasePath)
			p.Purchases = rows
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if salesPath != "" {
		if _, err := imp.ImportSales(ctx, filepath.Base(salesPath), p.Sales); err != nil {
			return err
		}
	}
	if purchasePath != "" {
		if _, err := imp.ImportPurchases(ctx, filepath.Base(purchasePath), p.Purchases); err != nil {
			return err
		}
	}
	return nil
}

func requirePaths(salesPath, purchasePath string) error {
	var missing []string
	if salesPath == "" {
		missing = append(missing, string(models.KindSales))
	}
	if purchasePath == "" {
		missing = append(missing, string(models.KindPurchases))
	}
	if len(missing) > 0 {
		return &apperrors.MissingFileError{Kinds: missing}
	}
	return nil
}

func loadSales(ctx context.Context, path string) ([]models.SalesRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := logger.With("ingestion")
	start := time.Now()
	rows, err := ReadSalesFile(path)
	if err != nil {
		log.Error().Str("file", filepath.Base(path)).Err(err).Msg("sales file failed")
		return nil, err
	}
	log.Info().Str("file", filepath.Base(path)).Int("rows", len(rows)).Dur("elapsed", time.Since(start)).Msg("sales file loaded")
	return rows, nil
}

func loadPurchases(ctx context.Context, path string) ([]models.PurchaseRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := logger.With("ingestion")
	start := time.Now()
	rows, err := ReadPurchasesFile(path)
	if err != nil {
		log.Error().Str("file", filepath.Base(path)).Err(err).Msg("purchase file failed")
		return nil, err
	}
	log.Info().Str("file", filepath.Base(path)).Int("rows", len(rows)).Dur("elapsed", time.Since(start)).Msg("purchase file loaded")
	return rows, nil
}
