package dto

import "github.com/guttosm/stockscore/internal/domain/models"

// ImportResponse is returned after a workbook upload replaced a dataset.
type ImportResponse struct {
	Kind   models.DatasetKind `json:"kind" example:"sales"`
	Source string             `json:"source" example:"penjualan.xlsx"`
	Rows   int                `json:"rows" example:"120"`
}

// DatasetsResponse lists what is currently loaded.
type DatasetsResponse struct {
	Sales     models.DatasetInfo `json:"sales"`
	Purchases models.DatasetInfo `json:"purchases"`
}

// SalesChartResponse carries the bar chart series: one bar per item name.
type SalesChartResponse struct {
	Title  string             `json:"title" example:"Grafik Penjualan (Unit Terjual)"`
	YLabel string             `json:"y_label" example:"Unit Terjual"`
	Bars   []models.NameTotal `json:"bars"`
}
