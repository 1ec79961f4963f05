package ingestion

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/guttosm/stockscore/internal/domain/apperrors"
	"github.com/guttosm/stockscore/internal/domain/models"
)

// Column names are a hard contract with the workbooks. Order does not matter
// and extra columns are ignored, but every name listed here must be present.
const (
	colItemCode   = "Kode Item"
	colItemName   = "Nama Item"
	colCategory   = "Kategori"
	colUnitsSold  = "Unit Terjual"
	colTotalPrice = "Harga Total"
)

var (
	salesHeaders    = []string{colItemCode, colItemName, colCategory, colUnitsSold, colTotalPrice}
	purchaseHeaders = []string{colItemCode, colUnitsSold}
)

var errUnsupportedFormat = errors.New("unsupported file type, expected .xlsx or .csv")

// ReadSalesFile reads a sales workbook from disk.
func ReadSalesFile(path string) ([]models.SalesRecord, error) {
	var out []models.SalesRecord
	err := withFile(path, func(f *os.File) error {
		var err error
		out, err = ReadSales(f, path)
		return err
	})
	return out, err
}

// ReadPurchasesFile reads a purchase workbook from disk.
func ReadPurchasesFile(path string) ([]models.PurchaseRecord, error) {
	var out []models.PurchaseRecord
	err := withFile(path, func(f *os.File) error {
		var err error
		out, err = ReadPurchases(f, path)
		return err
	})
	return out, err
}

// ReadSales parses sales rows from r. name is only used for its extension
// and for error messages.
func ReadSales(r io.Reader, name string) ([]models.SalesRecord, error) {
	t, err := readTable(r, name, salesHeaders)
	if err != nil {
		return nil, err
	}

	out := make([]models.SalesRecord, 0, len(t.rows))
	for _, row := range t.rows {
		units, err := parseNumber(row.cell(t.cols[colUnitsSold]))
		if err != nil {
			return nil, t.rowError(row, colUnitsSold, err)
		}
		price, err := parseNumber(row.cell(t.cols[colTotalPrice]))
		if err != nil {
			return nil, t.rowError(row, colTotalPrice, err)
		}
		out = append(out, models.SalesRecord{
			ItemCode:   row.cell(t.cols[colItemCode]),
			ItemName:   row.cell(t.cols[colItemName]),
			Category:   row.cell(t.cols[colCategory]),
			UnitsSold:  units,
			TotalPrice: price,
		})
	}
	return out, nil
}

// ReadPurchases parses purchase rows from r.
func ReadPurchases(r io.Reader, name string) ([]models.PurchaseRecord, error) {
	t, err := readTable(r, name, purchaseHeaders)
	if err != nil {
		return nil, err
	}

	out := make([]models.PurchaseRecord, 0, len(t.rows))
	for _, row := range t.rows {
		units, err := parseNumber(row.cell(t.cols[colUnitsSold]))
		if err != nil {
			return nil, t.rowError(row, colUnitsSold, err)
		}
		out = append(out, models.PurchaseRecord{
			ItemCode:  row.cell(t.cols[colItemCode]),
			UnitsSold: units,
		})
	}
	return out, nil
}

func withFile(path string, fn func(f *os.File) error) error {
	f, err := os.Open(path)
	if err != nil {
		return &apperrors.ParseError{Source: filepath.Base(path), Err: err}
	}
	defer func() { _ = f.Close() }()
	return fn(f)
}

// table is a header-validated sheet: column positions plus the non-blank data rows.
type table struct {
	source string
	cols   map[string]int
	rows   []tableRow
}

type tableRow struct {
	number int // 1-based, header is row 1
	cells  []string
}

// cell returns the trimmed value at idx; short rows yield "".
func (r tableRow) cell(idx int) string {
	if idx < 0 || idx >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[idx])
}

func (t *table) rowError(row tableRow, col string, err error) error {
	return &apperrors.ParseError{Source: t.source, Row: row.number, Err: fmt.Errorf("column %q: %w", col, err)}
}

func readTable(r io.Reader, name string, required []string) (*table, error) {
	source := filepath.Base(name)

	var raw [][]string
	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		raw, err = readWorkbook(r)
	case ".csv":
		raw, err = readCSV(r)
	default:
		err = errUnsupportedFormat
	}
	if err != nil {
		return nil, &apperrors.ParseError{Source: source, Err: err}
	}
	if len(raw) == 0 {
		return nil, &apperrors.ParseError{Source: source, Err: errors.New("file is empty, header row expected")}
	}

	cols, err := columnIndex(raw[0], required)
	if err != nil {
		return nil, &apperrors.ParseError{Source: source, Row: 1, Err: err}
	}

	t := &table{source: source, cols: cols}
	for i, cells := range raw[1:] {
		if blank(cells) {
			continue
		}
		t.rows = append(t.rows, tableRow{number: i + 2, cells: cells})
	}
	return t, nil
}

// readWorkbook returns the raw cell values of the first sheet.
func readWorkbook(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return rows, nil
}

// columnIndex maps each required header to its position. The first
// occurrence wins when a header is repeated.
func columnIndex(header []string, required []string) (map[string]int, error) {
	found := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, dup := found[h]; !dup {
			found[h] = i
		}
	}

	cols := make(map[string]int, len(required))
	var missing []string
	for _, name := range required {
		idx, ok := found[name]
		if !ok {
			missing = append(missing, strconv.Quote(name))
			continue
		}
		cols[name] = idx
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required column(s) %s; expected header %q", strings.Join(missing, ", "), required)
	}
	return cols, nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

var (
	plainNumber   = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
	groupedNumber = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d+)?$`)
	errNotANumber = errors.New("not a finite decimal number")
)

// parseNumber accepts plain decimals ("1500.5", "1e3") and comma thousands
// separators in groups of three ("1,500"). Empty cells count as zero.
// NaN, infinities, hex floats and stray commas ("1,5") are rejected.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	switch {
	case plainNumber.MatchString(s):
	case groupedNumber.MatchString(s):
		s = strings.ReplaceAll(s, ",", "")
	default:
		return 0, fmt.Errorf("invalid number %q: %w", s, errNotANumber)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number %q: %w", s, errNotANumber)
	}
	return v, nil
}
