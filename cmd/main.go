package main

//
//  @title           stockscore API
//  @version         1.0
//  @description     Sales and purchase workbook import with per-item regression scoring.
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/stockscore
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        datasets
//  @tag.description Workbook imports
//
//  @tag.name        score
//  @tag.description Per-item regression score
//
//  @tag.name        sales
//  @tag.description Units sold per item name
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/guttosm/stockscore/config"
	"github.com/guttosm/stockscore/internal/app"
	"github.com/guttosm/stockscore/internal/domain/apperrors"
	"github.com/guttosm/stockscore/internal/domain/models"
	"github.com/guttosm/stockscore/internal/ingestion"
	"github.com/guttosm/stockscore/internal/logger"
	"github.com/guttosm/stockscore/internal/report"
	"github.com/guttosm/stockscore/internal/scoring"
	"github.com/guttosm/stockscore/internal/service"
	"github.com/guttosm/stockscore/internal/storage"
)

// options are the command line flags shared by every mode.
type options struct {
	sales     string
	purchases string
	item      string
	out       string
}

// startServer initializes and starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown waits for SIGINT or SIGTERM, drains the server and then
// runs cleanup to release the dataset store.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runScore reads both workbooks and prints the score of one item to w.
func runScore(ctx context.Context, opts options, w io.Writer) error {
	pair, err := ingestion.LoadPair(ctx, opts.sales, opts.purchases)
	if err != nil {
		return err
	}

	svc := service.NewScoreService(storage.NewMemoryStore())
	if _, err := svc.ImportSales(ctx, filepath.Base(opts.sales), pair.Sales); err != nil {
		return err
	}
	if _, err := svc.ImportPurchases(ctx, filepath.Base(opts.purchases), pair.Purchases); err != nil {
		return err
	}

	res, err := svc.Calculate(ctx, opts.item)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, scoring.FormatResult(res))
	return err
}

// runChart writes the sales chart workbook to opts.out.
func runChart(ctx context.Context, opts options, w io.Writer) error {
	if opts.sales == "" {
		return &apperrors.MissingFileError{Kinds: []string{string(models.KindSales)}}
	}
	if opts.out == "" {
		return errors.New("--out is required in chart mode")
	}
	svc := service.NewScoreService(storage.NewMemoryStore())
	if err := ingestion.ImportFiles(ctx, svc, opts.sales, ""); err != nil {
		return err
	}
	totals, err := svc.SalesByName(ctx)
	if err != nil {
		return err
	}
	if err := report.SaveSalesChart(opts.out, totals); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s written (%d items)\n", opts.out, len(totals))
	return err
}

// runImport loads whichever workbooks are given into the configured store.
func runImport(ctx context.Context, cfg config.Config, opts options) error {
	store, cleanup, err := app.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	svc := service.NewScoreService(store)
	return ingestion.ImportFiles(ctx, svc, opts.sales, opts.purchases)
}

// main is the entry point of the stockscore application.
//
// Modes (selected via --mode flag):
//   - score:  Prints Y for --item using --sales and --purchases.
//   - chart:  Writes the units-sold-per-name chart workbook to --out.
//   - import: Stores the given workbooks in the configured dataset store.
//   - api:    Starts the REST API.
//
// --sales and --purchases default to SALES_FILE and PURCHASE_FILE.
func main() {
	ctx := context.Background()

	config.LoadConfig()

	// stdout carries results in the CLI modes
	logger.SetOutput(os.Stderr)

	mode := flag.String("mode", "api", "Mode: score, chart, import or api")
	sales := flag.String("sales", config.AppConfig.Datasets.SalesFile, "Sales workbook (.xlsx or .csv)")
	purchases := flag.String("purchases", config.AppConfig.Datasets.PurchaseFile, "Purchase workbook (.xlsx or .csv)")
	item := flag.String("item", "", "Item code to score (score mode)")
	out := flag.String("out", "grafik-penjualan.xlsx", "Chart workbook path (chart mode)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	opts := options{sales: *sales, purchases: *purchases, item: *item, out: *out}

	switch *mode {
	case "score":
		if err := runScore(ctx, opts, os.Stdout); err != nil {
			logger.L().Fatal().Err(err).Msg("score failed")
		}

	case "chart":
		if err := runChart(ctx, opts, os.Stdout); err != nil {
			logger.L().Fatal().Err(err).Msg("chart failed")
		}

	case "import":
		if err := runImport(ctx, config.AppConfig, opts); err != nil {
			logger.L().Fatal().Err(err).Msg("import failed")
		}
		logger.L().Info().Str("driver", config.AppConfig.Store.Driver).Msg("import completed successfully")

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp(ctx)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
