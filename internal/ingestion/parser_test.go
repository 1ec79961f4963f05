package ingestion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/stockscore/internal/domain/apperrors"
	"github.com/guttosm/stockscore/internal/domain/models"
	"github.com/guttosm/stockscore/internal/ingestion/ingestiontest"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestReadSalesFile_Workbook(t *testing.T) {
	path := ingestiontest.WriteWorkbook(t, t.TempDir(), "penjualan.xlsx", ingestiontest.ExampleSales())

	rows, err := ReadSalesFile(path)

	require.NoError(t, err)
	assert.Equal(t, []models.SalesRecord{
		{ItemCode: "A1", ItemName: "Kopi Bubuk", Category: "Minuman", UnitsSold: 5, TotalPrice: 100},
		{ItemCode: "B2", ItemName: "Gula Pasir", Category: "Sembako", UnitsSold: 7, TotalPrice: 70},
		{ItemCode: "A1", ItemName: "Kopi Bubuk", Category: "Minuman", UnitsSold: 3, TotalPrice: 50},
	}, rows)
}

func TestReadSales_ColumnOrderAndExtras(t *testing.T) {
	rows := [][]any{
		{"Harga Total", "Catatan", "Unit Terjual", " Kode Item ", "Kategori", "Nama Item"},
		{1500.5, "promo", 2, 1001, "Sembako", "Beras"},
	}

	got, err := ReadSales(ingestiontest.Reader(t, rows), "sales.xlsx")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.SalesRecord{ItemCode: "1001", ItemName: "Beras", Category: "Sembako", UnitsSold: 2, TotalPrice: 1500.5}, got[0])
}

func TestReadSales_MissingColumn(t *testing.T) {
	rows := [][]any{
		{"Kode Item", "Nama Item", "Kategori", "Unit Terjual"},
		{"A1", "Kopi", "Minuman", 1},
	}

	_, err := ReadSales(ingestiontest.Reader(t, rows), "sales.xlsx")

	require.ErrorIs(t, err, apperrors.ErrParse)
	assert.Contains(t, err.Error(), `"Harga Total"`)
}

func TestReadSales_EmptyAndBlankRows(t *testing.T) {
	rows := [][]any{
		ingestiontest.SalesHeader,
		{"A1", "Kopi", "Minuman", nil, nil},
		{nil, nil, nil, nil, nil},
		{"A1", "Kopi", "Minuman", 2, 20},
	}

	got, err := ReadSales(ingestiontest.Reader(t, rows), "sales.xlsx")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Zero(t, got[0].UnitsSold)
	assert.Zero(t, got[0].TotalPrice)
	assert.Equal(t, 20.0, got[1].TotalPrice)
}

func TestReadSales_InvalidNumber(t *testing.T) {
	rows := [][]any{
		ingestiontest.SalesHeader,
		{"A1", "Kopi", "Minuman", 1, 10},
		{"A1", "Kopi", "Minuman", "banyak", 10},
	}

	_, err := ReadSales(ingestiontest.Reader(t, rows), "sales.xlsx")

	require.ErrorIs(t, err, apperrors.ErrParse)
	var pe *apperrors.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Row)
	assert.Equal(t, "sales.xlsx", pe.Source)
}

func TestReadPurchases_CSV(t *testing.T) {
	dir := t.TempDir()
	content := "\ufeffKode Item,Unit Terjual,Supplier\nA1,10,PT Maju\nA1,\"1,000\",PT Maju\n,,\nB2,,CV Jaya\n"
	path := writeTempFile(t, dir, "pembelian.csv", content)

	rows, err := ReadPurchasesFile(path)

	require.NoError(t, err)
	assert.Equal(t, []models.PurchaseRecord{
		{ItemCode: "A1", UnitsSold: 10},
		{ItemCode: "A1", UnitsSold: 1000},
		{ItemCode: "B2", UnitsSold: 0},
	}, rows)
}

func TestReadNumbers_RejectsMalformedCells(t *testing.T) {
	cases := []struct {
		name string
		cell string
	}{
		{name: "nan", cell: "NaN"},
		{name: "infinity", cell: "Inf"},
		{name: "comma as decimal point", cell: "\"1,5\""},
		{name: "scattered commas", cell: "\"1,2,3,4\""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			purchases := "Kode Item,Unit Terjual\nA1,10\nA1," + tc.cell + "\n"
			_, err := ReadPurchases(strings.NewReader(purchases), "pembelian.csv")

			require.ErrorIs(t, err, apperrors.ErrParse)
			var pe *apperrors.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, 3, pe.Row)

			sales := "Kode Item,Nama Item,Kategori,Unit Terjual,Harga Total\nA1,Kopi,Minuman,1," + tc.cell + "\n"
			_, err = ReadSales(strings.NewReader(sales), "penjualan.csv")

			require.ErrorIs(t, err, apperrors.ErrParse)
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, 2, pe.Row)
			assert.Contains(t, err.Error(), "Harga Total")
		})
	}
}

func TestReadTable_Failures(t *testing.T) {
	cases := []struct {
		name    string
		file    string
		content string
		wantMsg string
	}{
		{name: "unsupported extension", file: "x.txt", content: "Kode Item;Unit Terjual\n", wantMsg: "unsupported file type"},
		{name: "empty csv", file: "x.csv", content: "", wantMsg: "file is empty"},
		{name: "not a workbook", file: "x.xlsx", content: "definitely not zip", wantMsg: "open workbook"},
		{name: "wrong header", file: "x.csv", content: "Code,Qty\nA1,1\n", wantMsg: "missing required column"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadPurchases(strings.NewReader(tc.content), tc.file)

			require.ErrorIs(t, err, apperrors.ErrParse)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestReadSalesFile_NotExist(t *testing.T) {
	_, err := ReadSalesFile(filepath.Join(t.TempDir(), "nope.xlsx"))

	require.ErrorIs(t, err, apperrors.ErrParse)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "", want: 0},
		{in: "  ", want: 0},
		{in: "12", want: 12},
		{in: "12.5", want: 12.5},
		{in: "1,250", want: 1250},
		{in: "1e3", want: 1000},
		{in: "-3", want: -3},
		{in: ".5", want: 0.5},
		{in: "12,345,678.25", want: 12345678.25},
		{in: "1.5E+2", want: 150},
		{in: "abc", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "Inf", wantErr: true},
		{in: "-infinity", wantErr: true},
		{in: "0x1p3", wantErr: true},
		{in: "1e400", wantErr: true},
		{in: "1,5", wantErr: true},
		{in: "1,2,3,4", wantErr: true},
		{in: "1234,567", wantErr: true},
		{in: ",100", wantErr: true},
		{in: "1_000", wantErr: true},
	}
	for _, tc := range cases {
		got, err := parseNumber(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestColumnIndex_FirstOccurrenceWins(t *testing.T) {
	cols, err := columnIndex([]string{"Kode Item", "Unit Terjual", "Kode Item"}, purchaseHeaders)

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Kode Item": 0, "Unit Terjual": 1}, cols)
}
