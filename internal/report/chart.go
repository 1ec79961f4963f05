// Package report renders the sales chart as a workbook with a native column chart.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/guttosm/stockscore/internal/domain/models"
)

const (
	ChartSheet  = "Penjualan"
	ChartTitle  = "Grafik Penjualan (Unit Terjual)"
	ChartYLabel = "Unit Terjual"
	barColor    = "8E44AD"
)

// ErrNoData is returned when there is nothing to chart.
var ErrNoData = errors.New("no sales data to chart")

// WriteSalesChart writes a workbook holding the totals table and a column
// chart over it.
func WriteSalesChart(w io.Writer, totals []models.NameTotal) error {
	f, err := build(totals)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return f.Write(w)
}

// SaveSalesChart is WriteSalesChart to a file path.
func SaveSalesChart(path string, totals []models.NameTotal) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSalesChart(out, totals); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func build(totals []models.NameTotal) (*excelize.File, error) {
	if len(totals) == 0 {
		return nil, ErrNoData
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), ChartSheet); err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := f.SetSheetRow(ChartSheet, "A1", &[]any{"Nama Item", ChartYLabel}); err != nil {
		_ = f.Close()
		return nil, err
	}
	for i, t := range totals {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(ChartSheet, cell, &[]any{t.ItemName, t.TotalUnits}); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	last := len(totals) + 1
	chart := &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$B$1", ChartSheet),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", ChartSheet, last),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", ChartSheet, last),
			Fill:       excelize.Fill{Type: "pattern", Color: []string{barColor}, Pattern: 1},
		}},
		Title:     []excelize.RichTextRun{{Text: ChartTitle}},
		Legend:    excelize.ChartLegend{Position: "none"},
		YAxis:     excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: ChartYLabel}}},
		Dimension: excelize.ChartDimension{Width: 640, Height: 400},
	}
	if err := f.AddChart(ChartSheet, "D2", chart); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("add chart: %w", err)
	}
	return f, nil
}
