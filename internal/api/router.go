package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/guttosm/stockscore/docs"
	"github.com/guttosm/stockscore/internal/middleware"
)

// RequestTimeout bounds every request handled by the API.
const RequestTimeout = 10 * time.Second

// NewRouter creates the Gin engine with middlewares, Swagger and the /api/v1 routes.
// Uploads larger than maxUploadBytes are rejected with 413.
//
// Health and readiness endpoints are registered by app.InitializeApp.
func NewRouter(handler *Handler, maxUploadBytes int64) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = maxUploadBytes

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), RequestTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		datasets := v1.Group("/datasets")
		datasets.GET("", handler.GetDatasets)
		datasets.POST("/sales", middleware.BodyLimit(maxUploadBytes), handler.ImportSales)
		datasets.POST("/purchases", middleware.BodyLimit(maxUploadBytes), handler.ImportPurchases)

		v1.GET("/score", handler.GetScore)

		v1.GET("/sales/by-name", handler.GetSalesByName)
		v1.GET("/sales/chart.xlsx", handler.GetSalesChart)
	}

	return router
}
