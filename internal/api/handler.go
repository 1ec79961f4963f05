package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockscore/internal/domain/apperrors"
	"github.com/guttosm/stockscore/internal/domain/dto"
	"github.com/guttosm/stockscore/internal/domain/models"
	"github.com/guttosm/stockscore/internal/ingestion"
	"github.com/guttosm/stockscore/internal/middleware"
	"github.com/guttosm/stockscore/internal/report"
	"github.com/guttosm/stockscore/internal/scoring"
	"github.com/guttosm/stockscore/internal/service"
)

// uploadField is the multipart form field carrying the workbook.
const uploadField = "file"

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler exposes the score service over HTTP.
//
// Responsibilities:
//   - Accept workbook uploads and hand the parsed rows to the service
//   - Translate service results into response DTOs
//   - Map domain errors to HTTP status codes
type Handler struct {
	svc service.ScoreService
}

// NewHandler constructs a Handler around the given service.
func NewHandler(svc service.ScoreService) *Handler {
	return &Handler{svc: svc}
}

// ImportSales godoc
// @Summary      Import the sales workbook
// @Description  Replaces the sales dataset. Required columns: Kode Item, Nama Item, Kategori, Unit Terjual, Harga Total
// @Tags         datasets
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Sales workbook (.xlsx or .csv)"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse  "No file uploaded"
// @Failure      413   {object}  dto.ErrorResponse  "Upload too large"
// @Failure      422   {object}  dto.ErrorResponse  "Unreadable workbook"
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/datasets/sales [post]
func (h *Handler) ImportSales(c *gin.Context) {
	name, rows, ok := readUpload(c, models.KindSales, ingestion.ReadSales)
	if !ok {
		return
	}
	info, err := h.svc.ImportSales(c.Request.Context(), name, rows)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ImportResponse{Kind: info.Kind, Source: info.Source, Rows: info.Rows})
}

// ImportPurchases godoc
// @Summary      Import the purchase workbook
// @Description  Replaces the purchase dataset. Required columns: Kode Item, Unit Terjual
// @Tags         datasets
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Purchase workbook (.xlsx or .csv)"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse  "No file uploaded"
// @Failure      413   {object}  dto.ErrorResponse  "Upload too large"
// @Failure      422   {object}  dto.ErrorResponse  "Unreadable workbook"
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/datasets/purchases [post]
func (h *Handler) ImportPurchases(c *gin.Context) {
	name, rows, ok := readUpload(c, models.KindPurchases, ingestion.ReadPurchases)
	if !ok {
		return
	}
	info, err := h.svc.ImportPurchases(c.Request.Context(), name, rows)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ImportResponse{Kind: info.Kind, Source: info.Source, Rows: info.Rows})
}

// GetDatasets godoc
// @Summary      Show imported datasets
// @Tags         datasets
// @Produce      json
// @Success      200  {object}  dto.DatasetsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/datasets [get]
func (h *Handler) GetDatasets(c *gin.Context) {
	sales, purchases, err := h.svc.Status(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DatasetsResponse{Sales: sales, Purchases: purchases})
}

// GetScore handles GET /api/v1/score.
//
// Query Parameters:
//   - item (string, required): item code, surrounding spaces are ignored.
//
// GetScore godoc
// @Summary      Score an item
// @Description  Computes Y = 0.5 + 2.1*X1 + 0.003*X2 + 1.2*X3 from the imported datasets
// @Tags         score
// @Produce      json
// @Param        item  query     string  true  "Item code" example(A1)
// @Success      200   {object}  dto.ScoreResponse
// @Failure      400   {object}  dto.ErrorResponse  "Item code missing"
// @Failure      404   {object}  dto.ErrorResponse  "Item not in both datasets"
// @Failure      409   {object}  dto.ErrorResponse  "Datasets not imported"
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/score [get]
func (h *Handler) GetScore(c *gin.Context) {
	res, err := h.svc.Calculate(c.Request.Context(), c.Query("item"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewScoreResponse(res, scoring.FormatResult(res)))
}

// GetSalesByName godoc
// @Summary      Units sold per item name
// @Description  Bar chart series in order of first appearance in the sales workbook
// @Tags         sales
// @Produce      json
// @Success      200  {object}  dto.SalesChartResponse
// @Failure      409  {object}  dto.ErrorResponse  "Sales dataset not imported"
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/sales/by-name [get]
func (h *Handler) GetSalesByName(c *gin.Context) {
	totals, err := h.svc.SalesByName(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if totals == nil {
		totals = []models.NameTotal{}
	}
	c.JSON(http.StatusOK, dto.SalesChartResponse{
		Title:  report.ChartTitle,
		YLabel: report.ChartYLabel,
		Bars:   totals,
	})
}

// GetSalesChart godoc
// @Summary      Sales chart workbook
// @Description  Downloads an .xlsx holding the series and a native column chart
// @Tags         sales
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      409  {object}  dto.ErrorResponse  "Sales dataset not imported"
// @Failure      422  {object}  dto.ErrorResponse  "Sales dataset has no rows"
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/sales/chart.xlsx [get]
func (h *Handler) GetSalesChart(c *gin.Context) {
	totals, err := h.svc.SalesByName(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteSalesChart(&buf, totals); err != nil {
		if errors.Is(err, report.ErrNoData) {
			middleware.AbortWithError(c, http.StatusUnprocessableEntity, "Sales dataset has no rows", err)
			return
		}
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="grafik-penjualan.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// readUpload pulls the workbook out of the multipart form and parses it.
// On failure the response is already written and ok is false.
func readUpload[T any](c *gin.Context, kind models.DatasetKind, parse func(io.Reader, string) ([]T, error)) (name string, rows []T, ok bool) {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			middleware.AbortWithError(c, http.StatusRequestEntityTooLarge, "Upload too large",
				fmt.Errorf("limit is %d bytes", tooLarge.Limit))
			return "", nil, false
		}
		middleware.AbortWithError(c, http.StatusBadRequest,
			fmt.Sprintf("Upload the %s workbook in the %q form field", kind, uploadField), err)
		return "", nil, false
	}

	rows, err = parseUpload(fh, parse)
	if err != nil {
		respondError(c, err)
		return "", nil, false
	}
	return fh.Filename, rows, true
}

func parseUpload[T any](fh *multipart.FileHeader, parse func(io.Reader, string) ([]T, error)) ([]T, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return parse(f, fh.Filename)
}

// respondError maps domain errors to status codes. Anything unknown is a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrMissingFile):
		middleware.AbortWithError(c, http.StatusConflict, "Datasets not imported", err)
	case errors.Is(err, apperrors.ErrMissingInput):
		middleware.AbortWithError(c, http.StatusBadRequest, "Item code is required", err)
	case errors.Is(err, apperrors.ErrItemNotFound):
		middleware.AbortWithError(c, http.StatusNotFound, "Item not found", err)
	case errors.Is(err, apperrors.ErrParse):
		middleware.AbortWithError(c, http.StatusUnprocessableEntity, "Unable to read spreadsheet", err)
	default:
		middleware.AbortWithError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
