package scoring

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/guttosm/stockscore/internal/domain/models"
)

// FormatResult renders the result text shown to the user.
func FormatResult(r models.ScoreResult) string {
	var b strings.Builder
	label := r.ItemCode
	if r.ItemName != "" && r.ItemName != r.ItemCode {
		label = fmt.Sprintf("%s (%s)", r.ItemCode, r.ItemName)
	}
	fmt.Fprintf(&b, "Regression Calculation for Item '%s':\n\n", label)
	fmt.Fprintf(&b, "Frekuensi Transaksi (X1): %d\n", r.Inputs.TransactionFrequency)
	fmt.Fprintf(&b, "Total Pengeluaran Konsumen (X2): %s\n", number(r.Inputs.TotalRevenue))
	fmt.Fprintf(&b, "Pembelian Pemilik Toko (X3): %s\n\n", number(r.Inputs.UnitsPurchased))
	fmt.Fprintf(&b, "Hasil Y (Jumlah Barang Dibeli): %.2f", r.Y)
	return b.String()
}

// number prints whole values without a fraction and keeps others exact.
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
