package models

import "time"

// DatasetKind identifies one of the two imported workbooks.
type DatasetKind string

const (
	KindSales     DatasetKind = "sales"
	KindPurchases DatasetKind = "purchases"
)

// DatasetInfo describes the dataset currently loaded for a kind.
// Loaded is false when nothing has been imported yet.
type DatasetInfo struct {
	Kind       DatasetKind `json:"kind"`
	Loaded     bool        `json:"loaded"`
	Source     string      `json:"source,omitempty"`
	Rows       int         `json:"rows"`
	ImportedAt time.Time   `json:"imported_at,omitempty"`
}
