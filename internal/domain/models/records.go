package models

// SalesRecord represents a single row in the sales workbook.
//
// Column mapping (header → field):
//   - Kode Item    → ItemCode
//   - Nama Item    → ItemName
//   - Kategori     → Category
//   - Unit Terjual → UnitsSold
//   - Harga Total  → TotalPrice
type SalesRecord struct {
	ItemCode   string  `json:"item_code"`
	ItemName   string  `json:"item_name"`
	Category   string  `json:"category"`
	UnitsSold  float64 `json:"units_sold"`
	TotalPrice float64 `json:"total_price"`
}

// PurchaseRecord represents a single row in the purchase workbook.
//
// Column mapping (header → field):
//   - Kode Item    → ItemCode
//   - Unit Terjual → UnitsSold
type PurchaseRecord struct {
	ItemCode  string  `json:"item_code"`
	UnitsSold float64 `json:"units_sold"`
}
