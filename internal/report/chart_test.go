package report

import (
	"archive/zip"
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/guttosm/stockscore/internal/domain/models"
)

func TestWriteSalesChart(t *testing.T) {
	totals := []models.NameTotal{{ItemName: "Kopi", TotalUnits: 8}, {ItemName: "Teh", TotalUnits: 2.5}}
	var buf bytes.Buffer

	require.NoError(t, WriteSalesChart(&buf, totals))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows(ChartSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Nama Item", "Unit Terjual"}, {"Kopi", "8"}, {"Teh", "2.5"}}, rows)

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	var hasChart bool
	for _, zf := range zr.File {
		if zf.Name == "xl/charts/chart1.xml" {
			hasChart = true
		}
	}
	assert.True(t, hasChart, "workbook should contain a chart part")
}

func TestWriteSalesChart_NoData(t *testing.T) {
	err := WriteSalesChart(&bytes.Buffer{}, nil)
	assert.True(t, errors.Is(err, ErrNoData))
}

func TestSaveSalesChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.xlsx")

	require.NoError(t, SaveSalesChart(path, []models.NameTotal{{ItemName: "Kopi", TotalUnits: 1}}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, []string{ChartSheet}, f.GetSheetList())
}

func TestSaveSalesChart_BadPath(t *testing.T) {
	err := SaveSalesChart(filepath.Join(t.TempDir(), "missing", "chart.xlsx"), []models.NameTotal{{ItemName: "Kopi", TotalUnits: 1}})
	assert.Error(t, err)
}
