package models

import "math"

// SalesAggregate is the per-item summary of the sales dataset.
type SalesAggregate struct {
	TransactionFrequency int     // number of sales rows for the item (X1)
	TotalRevenue         float64 // sum of Harga Total (X2)
}

// ItemAggregate bundles the three scoring inputs for one item.
// It is built per calculation and never stored.
type ItemAggregate struct {
	TransactionFrequency int
	TotalRevenue         float64
	UnitsPurchased       float64
}

// NameTotal is one bar of the sales chart: units sold summed by item name.
type NameTotal struct {
	ItemName   string  `json:"item_name"`
	TotalUnits float64 `json:"total_units"`
}

// ScoreResult is the outcome of scoring one item.
// Y keeps full precision; use Rounded for display.
type ScoreResult struct {
	ItemCode string
	ItemName string
	Inputs   ItemAggregate
	Y        float64
}

// Rounded returns Y rounded to two decimal places.
func (r ScoreResult) Rounded() float64 {
	return math.Round(r.Y*100) / 100
}
