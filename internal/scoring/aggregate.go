// Package scoring holds the aggregation and scoring rules. Every function is
// pure: it reads its inputs, allocates fresh results and touches no state.
package scoring

import "github.com/guttosm/stockscore/internal/domain/models"

// AggregateSales groups sales rows by item code. TransactionFrequency counts
// rows, TotalRevenue sums TotalPrice. Rows without a code are skipped.
func AggregateSales(rows []models.SalesRecord) map[string]models.SalesAggregate {
	out := make(map[string]models.SalesAggregate)
	for _, r := range rows {
		if r.ItemCode == "" {
			continue
		}
		agg := out[r.ItemCode]
		agg.TransactionFrequency++
		agg.TotalRevenue += r.TotalPrice
		out[r.ItemCode] = agg
	}
	return out
}

// AggregatePurchases sums purchased units per item code.
func AggregatePurchases(rows []models.PurchaseRecord) map[string]float64 {
	out := make(map[string]float64)
	for _, r := range rows {
		if r.ItemCode == "" {
			continue
		}
		out[r.ItemCode] += r.UnitsSold
	}
	return out
}

// SalesByName sums units sold per item name, in order of first appearance.
// The same name under different codes lands in one bar.
func SalesByName(rows []models.SalesRecord) []models.NameTotal {
	index := make(map[string]int)
	var out []models.NameTotal
	for _, r := range rows {
		if r.ItemName == "" {
			continue
		}
		i, ok := index[r.ItemName]
		if !ok {
			i = len(out)
			index[r.ItemName] = i
			out = append(out, models.NameTotal{ItemName: r.ItemName})
		}
		out[i].TotalUnits += r.UnitsSold
	}
	return out
}

// ItemName returns the display name of the first sales row carrying code,
// or the code itself when no row has a name.
func ItemName(rows []models.SalesRecord, code string) string {
	for _, r := range rows {
		if r.ItemCode == code && r.ItemName != "" {
			return r.ItemName
		}
	}
	return code
}
