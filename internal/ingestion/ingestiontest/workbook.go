// Package ingestiontest builds sales and purchase workbooks for tests.
package ingestiontest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

var (
	SalesHeader    = []any{"Kode Item", "Nama Item", "Kategori", "Unit Terjual", "Harga Total"}
	PurchaseHeader = []any{"Kode Item", "Unit Terjual"}
)

// ExampleSales holds the two A1 rows used throughout the tests plus one unrelated item.
func ExampleSales() [][]any {
	return [][]any{
		SalesHeader,
		{"A1", "Kopi Bubuk", "Minuman", 5, 100},
		{"B2", "Gula Pasir", "Sembako", 7, 70},
		{"A1", "Kopi Bubuk", "Minuman", 3, 50},
	}
}

// ExamplePurchases holds a single A1 purchase of 10 units.
func ExamplePurchases() [][]any {
	return [][]any{
		PurchaseHeader,
		{"A1", 10},
	}
}

// WorkbookBytes renders rows into the first sheet of a new workbook.
func WorkbookBytes(t testing.TB, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatalf("set row %d: %v", i+1, err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return append([]byte(nil), buf.Bytes()...)
}

// WriteWorkbook saves rows as dir/name and returns the full path.
func WriteWorkbook(t testing.TB, dir, name string, rows [][]any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, WorkbookBytes(t, rows), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

// Reader is a convenience for upload-style tests.
func Reader(t testing.TB, rows [][]any) *bytes.Reader {
	t.Helper()
	return bytes.NewReader(WorkbookBytes(t, rows))
}
