package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockscore/config"
	"github.com/guttosm/stockscore/internal/api"
	"github.com/guttosm/stockscore/internal/ingestion"
	"github.com/guttosm/stockscore/internal/logger"
	"github.com/guttosm/stockscore/internal/service"
	"github.com/guttosm/stockscore/internal/storage"
)

const defaultUploadMB = 10

// InitializeApp wires the store, service, handlers and router from
// config.AppConfig and preloads SALES_FILE / PURCHASE_FILE when set.
//
// Returns:
//   - *gin.Engine: router with /api/v1, /swagger and the health probes.
//   - func(): cleanup closing the store; call it on shutdown.
//   - error: store or preload failure. Nothing needs cleaning up in that case.
func InitializeApp(ctx context.Context) (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	store, cleanup, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	svc := service.NewScoreService(store)

	if err := Preload(ctx, svc, cfg.Datasets); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to preload datasets: %w", err)
	}

	handler := api.NewHandler(svc)
	router := api.NewRouter(handler, uploadLimit(cfg.Server.MaxUploadMB))

	api.NewHealthHandler(store.Ping).Register(router)

	return router, cleanup, nil
}

// OpenStore builds the dataset store selected by cfg.Store.Driver. The
// returned cleanup is never nil when err is nil.
func OpenStore(ctx context.Context, cfg config.Config) (storage.DatasetStore, func(), error) {
	if !cfg.UsesPostgres() {
		logger.With("app").Info().Str("driver", config.StoreMemory).Msg("dataset store ready")
		return storage.NewMemoryStore(), func() {}, nil
	}

	conn, err := postgresOpener(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}
	if err := migrator(conn); err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	logger.With("app").Info().
		Str("driver", config.StorePostgres).
		Str("host", cfg.Postgres.Host).
		Str("db", cfg.Postgres.DBName).
		Msg("dataset store ready")
	return storage.NewPostgresStore(conn), func() { _ = conn.Close() }, nil
}

// Preload imports the configured workbooks. It is a no-op when neither is set.
func Preload(ctx context.Context, imp ingestion.Importer, files config.DatasetsConfig) error {
	if files.SalesFile == "" && files.PurchaseFile == "" {
		return nil
	}
	return ingestion.ImportFiles(ctx, imp, files.SalesFile, files.PurchaseFile)
}

func uploadLimit(mb int64) int64 {
	if mb <= 0 {
		mb = defaultUploadMB
	}
	return mb << 20
}
